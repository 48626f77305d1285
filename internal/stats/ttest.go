package stats

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/gonum/stat/distuv"
)

// TTestResult holds an independent two-sample t-test outcome.
type TTestResult struct {
	T       float64
	P       float64 // two-sided
	CohensD float64
	MeanA   float64
	MeanB   float64
	DF      int
}

// TwoSampleTTest runs a pooled-variance independent t-test of mean(a) vs
// mean(b). Both samples need at least two observations.
func TwoSampleTTest(a, b []float64) (TTestResult, error) {
	if len(a) < 2 || len(b) < 2 {
		return TTestResult{}, fmt.Errorf("%w: t-test needs at least 2 observations per group (got %d and %d)",
			ErrTooFewGroups, len(a), len(b))
	}

	na, nb := float64(len(a)), float64(len(b))
	meanA, meanB := stat.Mean(a, nil), stat.Mean(b, nil)
	varA, varB := stat.Variance(a, nil), stat.Variance(b, nil)

	df := len(a) + len(b) - 2
	pooledVar := ((na-1)*varA + (nb-1)*varB) / float64(df)
	if pooledVar == 0 {
		return TTestResult{}, ErrZeroVariance
	}
	pooledStd := math.Sqrt(pooledVar)

	t := (meanA - meanB) / (pooledStd * math.Sqrt(1/na+1/nb))
	dist := distuv.StudentsT{Mu: 0, Sigma: 1, Nu: float64(df)}

	return TTestResult{
		T:       t,
		P:       2 * dist.Survival(math.Abs(t)),
		CohensD: (meanA - meanB) / pooledStd,
		MeanA:   meanA,
		MeanB:   meanB,
		DF:      df,
	}, nil
}
