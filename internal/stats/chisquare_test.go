package stats

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"breedlab/internal/dataset"
)

func TestChiSquareIndependence(t *testing.T) {
	// Balanced 2x2 with marginals 30/30: expected 15 per cell,
	// chi2 = 4 * 25/15 = 20/3, df = 1, V = sqrt(chi2/60).
	observed := [][]float64{
		{20, 10},
		{10, 20},
	}

	r, err := ChiSquareIndependence(observed)
	require.NoError(t, err)

	assert.InDelta(t, 20.0/3.0, r.Chi2, 1e-9)
	assert.Equal(t, 1, r.DF)
	assert.InDelta(t, 1.0/3.0, r.CramersV, 1e-9)
	assert.InDelta(t, 0.00983, r.P, 1e-4)
}

func TestChiSquareIndependenceUniform(t *testing.T) {
	observed := [][]float64{
		{10, 10},
		{10, 10},
	}

	r, err := ChiSquareIndependence(observed)
	require.NoError(t, err)
	assert.InDelta(t, 0, r.Chi2, 1e-12)
	assert.InDelta(t, 1, r.P, 1e-9)
	assert.InDelta(t, 0, r.CramersV, 1e-12)
}

func TestChiSquareIndependenceErrors(t *testing.T) {
	tests := []struct {
		name     string
		observed [][]float64
		want     error
	}{
		{"one row", [][]float64{{1, 2}}, ErrTooFewGroups},
		{"one column", [][]float64{{1}, {2}}, ErrTooFewGroups},
		{"zero column marginal", [][]float64{{1, 0}, {2, 0}}, ErrEmptyGroup},
		{"zero row marginal", [][]float64{{0, 0}, {1, 2}}, ErrEmptyGroup},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ChiSquareIndependence(tt.observed)
			if !errors.Is(err, tt.want) {
				t.Errorf("got %v, want %v", err, tt.want)
			}
		})
	}

	if _, err := ChiSquareIndependence([][]float64{{1, 2}, {3}}); err == nil {
		t.Error("expected error for ragged table")
	}
	if _, err := ChiSquareIndependence([][]float64{{1, -2}, {3, 4}}); err == nil {
		t.Error("expected error for negative count")
	}
}

func TestCrosstab(t *testing.T) {
	cats := []dataset.Cat{
		{Breed: "Persian", HasPKD: true},
		{Breed: "Persian", HasPKD: true},
		{Breed: "Persian", HasPKD: false},
		{Breed: "Siamese", HasPKD: false},
		{Breed: "Siamese", HasPKD: false},
	}

	table := Crosstab(cats, func(c dataset.Cat) bool { return c.HasPKD })
	require.Len(t, table, 2)

	// Registry order puts Persian before Siamese.
	assert.Equal(t, []float64{1, 2}, table[0])
	assert.Equal(t, []float64{2, 0}, table[1])
}
