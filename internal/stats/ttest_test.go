package stats

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTwoSampleTTest(t *testing.T) {
	// Pooled std is 1, so t = -1/sqrt(2/3) and d = -1 exactly.
	a := []float64{1, 2, 3}
	b := []float64{2, 3, 4}

	r, err := TwoSampleTTest(a, b)
	require.NoError(t, err)

	assert.InDelta(t, -1.224744871, r.T, 1e-6)
	assert.InDelta(t, -1.0, r.CohensD, 1e-9)
	assert.InDelta(t, 2.0, r.MeanA, 1e-9)
	assert.InDelta(t, 3.0, r.MeanB, 1e-9)
	assert.Equal(t, 4, r.DF)
	// Two-sided p from Student's t with 4 df.
	assert.InDelta(t, 0.28786, r.P, 1e-4)
}

func TestTwoSampleTTestSymmetry(t *testing.T) {
	a := []float64{10, 12, 14, 16}
	b := []float64{11, 13, 15, 17}

	ab, err := TwoSampleTTest(a, b)
	require.NoError(t, err)
	ba, err := TwoSampleTTest(b, a)
	require.NoError(t, err)

	assert.InDelta(t, -ba.T, ab.T, 1e-12)
	assert.InDelta(t, ba.P, ab.P, 1e-12)
	assert.InDelta(t, -ba.CohensD, ab.CohensD, 1e-12)
}

func TestTwoSampleTTestIdenticalSamples(t *testing.T) {
	a := []float64{1, 2, 3, 4}

	r, err := TwoSampleTTest(a, a)
	require.NoError(t, err)

	assert.InDelta(t, 0, r.T, 1e-12)
	assert.InDelta(t, 1, r.P, 1e-9)
	assert.InDelta(t, 0, r.CohensD, 1e-12)
}

func TestTwoSampleTTestErrors(t *testing.T) {
	if _, err := TwoSampleTTest([]float64{1}, []float64{2, 3}); !errors.Is(err, ErrTooFewGroups) {
		t.Errorf("got %v, want ErrTooFewGroups", err)
	}
	if _, err := TwoSampleTTest([]float64{1, 1}, []float64{2, 2}); !errors.Is(err, ErrZeroVariance) {
		t.Errorf("got %v, want ErrZeroVariance", err)
	}
}
