package stats

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOneWayANOVA(t *testing.T) {
	// Three groups with means 2, 3, 4 and identical spread.
	// SS_between = 6, SS_within = 6, df = (2, 6), so F = 3 and eta2 = 0.5.
	groups := [][]float64{
		{1, 2, 3},
		{2, 3, 4},
		{3, 4, 5},
	}

	r, err := OneWayANOVA(groups)
	require.NoError(t, err)

	assert.InDelta(t, 3.0, r.F, 1e-9)
	assert.InDelta(t, 0.5, r.EtaSquared, 1e-9)
	assert.Equal(t, 2, r.DFBetween)
	assert.Equal(t, 6, r.DFWithin)
	// Survival of F(2,6) at 3: (6/(6+2*3))^3 = 0.125.
	assert.InDelta(t, 0.125, r.P, 1e-9)
}

func TestOneWayANOVAIdenticalMeans(t *testing.T) {
	groups := [][]float64{
		{1, 2, 3},
		{1, 2, 3},
	}

	r, err := OneWayANOVA(groups)
	require.NoError(t, err)

	assert.InDelta(t, 0, r.F, 1e-9)
	assert.InDelta(t, 0, r.EtaSquared, 1e-9)
	assert.InDelta(t, 1, r.P, 1e-9)
}

func TestOneWayANOVAErrors(t *testing.T) {
	tests := []struct {
		name   string
		groups [][]float64
		want   error
	}{
		{"one group", [][]float64{{1, 2}}, ErrTooFewGroups},
		{"empty group", [][]float64{{1, 2}, {}}, ErrEmptyGroup},
		{"singletons", [][]float64{{1}, {2}}, ErrTooFewGroups},
		{"no within variance", [][]float64{{1, 1}, {2, 2}}, ErrZeroVariance},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := OneWayANOVA(tt.groups)
			if !errors.Is(err, tt.want) {
				t.Errorf("got error %v, want %v", err, tt.want)
			}
		})
	}
}
