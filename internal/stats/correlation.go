package stats

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/gonum/stat/distuv"
)

// CorrelationResult holds a Pearson correlation with its significance test.
type CorrelationResult struct {
	R float64
	P float64 // two-sided, via the t transform with n-2 df
	N int
}

// PearsonTest computes the Pearson correlation between two equal-length
// samples and its two-sided p-value.
func PearsonTest(x, y []float64) (CorrelationResult, error) {
	if len(x) != len(y) {
		return CorrelationResult{}, fmt.Errorf("sample length mismatch: %d vs %d", len(x), len(y))
	}
	if len(x) < 3 {
		return CorrelationResult{}, fmt.Errorf("%w: correlation needs at least 3 observations, got %d",
			ErrTooFewGroups, len(x))
	}

	r := stat.Correlation(x, y, nil)
	if math.IsNaN(r) {
		return CorrelationResult{}, ErrZeroVariance
	}

	n := len(x)
	res := CorrelationResult{R: r, N: n}
	if r2 := r * r; r2 >= 1 {
		// Perfectly collinear: the t transform diverges.
		res.P = 0
	} else {
		t := r * math.Sqrt(float64(n-2)/(1-r*r))
		dist := distuv.StudentsT{Mu: 0, Sigma: 1, Nu: float64(n - 2)}
		res.P = 2 * dist.Survival(math.Abs(t))
	}
	return res, nil
}

// CorrelationPair is one off-diagonal entry of the correlation matrix.
type CorrelationPair struct {
	VarA string
	VarB string
	R    float64
	P    float64
}

// CorrelationMatrix computes the full Pearson matrix over the named columns.
// Column order follows names; columns[i] pairs with names[i].
func CorrelationMatrix(names []string, columns [][]float64) ([][]float64, error) {
	if len(names) != len(columns) {
		return nil, fmt.Errorf("got %d names for %d columns", len(names), len(columns))
	}

	m := make([][]float64, len(columns))
	for i := range columns {
		m[i] = make([]float64, len(columns))
		for j := range columns {
			if i == j {
				m[i][j] = 1
				continue
			}
			m[i][j] = stat.Correlation(columns[i], columns[j], nil)
		}
	}
	return m, nil
}

// StrongPairs scans the upper triangle for correlations with |r| above the
// threshold, attaching p-values. Pair order is deterministic in names order.
func StrongPairs(names []string, columns [][]float64, threshold float64) ([]CorrelationPair, error) {
	if len(names) != len(columns) {
		return nil, fmt.Errorf("got %d names for %d columns", len(names), len(columns))
	}

	var pairs []CorrelationPair
	for i := 0; i < len(names); i++ {
		for j := i + 1; j < len(names); j++ {
			res, err := PearsonTest(columns[i], columns[j])
			if err != nil {
				return nil, fmt.Errorf("%s vs %s: %w", names[i], names[j], err)
			}
			if math.Abs(res.R) > threshold {
				pairs = append(pairs, CorrelationPair{
					VarA: names[i],
					VarB: names[j],
					R:    res.R,
					P:    res.P,
				})
			}
		}
	}
	return pairs, nil
}
