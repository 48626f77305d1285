package stats

import (
	"fmt"

	"math"

	"gonum.org/v1/gonum/stat/distuv"

	"breedlab/internal/catalog"
	"breedlab/internal/dataset"
)

// ChiSquareResult holds a chi-square test of independence outcome.
type ChiSquareResult struct {
	Chi2     float64
	P        float64
	DF       int
	CramersV float64
}

// ChiSquareIndependence tests independence of the row and column factors of
// an observed-count contingency table. Every row and column marginal must be
// positive, otherwise the expected counts are undefined.
func ChiSquareIndependence(observed [][]float64) (ChiSquareResult, error) {
	rows := len(observed)
	if rows < 2 {
		return ChiSquareResult{}, fmt.Errorf("%w: contingency table needs at least 2 rows", ErrTooFewGroups)
	}
	cols := len(observed[0])
	if cols < 2 {
		return ChiSquareResult{}, fmt.Errorf("%w: contingency table needs at least 2 columns", ErrTooFewGroups)
	}

	rowSums := make([]float64, rows)
	colSums := make([]float64, cols)
	var n float64
	for i, row := range observed {
		if len(row) != cols {
			return ChiSquareResult{}, fmt.Errorf("ragged contingency table: row %d has %d columns, want %d", i, len(row), cols)
		}
		for j, v := range row {
			if v < 0 {
				return ChiSquareResult{}, fmt.Errorf("negative count at [%d][%d]", i, j)
			}
			rowSums[i] += v
			colSums[j] += v
			n += v
		}
	}
	for i, s := range rowSums {
		if s == 0 {
			return ChiSquareResult{}, fmt.Errorf("%w: row %d has zero marginal", ErrEmptyGroup, i)
		}
	}
	for j, s := range colSums {
		if s == 0 {
			return ChiSquareResult{}, fmt.Errorf("%w: column %d has zero marginal", ErrEmptyGroup, j)
		}
	}

	var chi2 float64
	for i := range observed {
		for j := range observed[i] {
			expected := rowSums[i] * colSums[j] / n
			d := observed[i][j] - expected
			chi2 += d * d / expected
		}
	}

	df := (rows - 1) * (cols - 1)
	minDim := float64(rows)
	if cols < rows {
		minDim = float64(cols)
	}
	dist := distuv.ChiSquared{K: float64(df)}

	return ChiSquareResult{
		Chi2:     chi2,
		P:        dist.Survival(chi2),
		DF:       df,
		CramersV: math.Sqrt(chi2 / (n * (minDim - 1))),
	}, nil
}

// Crosstab builds a breed x {absent, present} contingency table for a
// condition accessor. Rows follow registry order; breeds without records are
// omitted.
func Crosstab(cats []dataset.Cat, has func(dataset.Cat) bool) [][]float64 {
	counts := make(map[string][2]float64)
	for _, c := range cats {
		cell := counts[c.Breed]
		if has(c) {
			cell[1]++
		} else {
			cell[0]++
		}
		counts[c.Breed] = cell
	}

	var table [][]float64
	for _, breed := range catalog.Names() {
		cell, ok := counts[breed]
		if !ok {
			continue
		}
		table = append(table, []float64{cell[0], cell[1]})
	}
	return table
}
