package stats

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/gonum/stat/distuv"
)

var (
	// ErrTooFewGroups is returned when a test needs more groups than given.
	ErrTooFewGroups = errors.New("too few groups")
	// ErrEmptyGroup is returned when a group carries no observations.
	ErrEmptyGroup = errors.New("empty group")
	// ErrZeroVariance is returned when a test statistic is undefined
	// because the data shows no within-group variation.
	ErrZeroVariance = errors.New("zero within-group variance")
)

// ANOVAResult holds a one-way analysis of variance outcome.
type ANOVAResult struct {
	F          float64
	P          float64
	EtaSquared float64 // SS_between / SS_total
	DFBetween  int
	DFWithin   int
}

// OneWayANOVA tests whether the group means differ. Groups are observation
// slices, one per level; at least two non-empty groups are required and the
// total observation count must exceed the group count.
func OneWayANOVA(groups [][]float64) (ANOVAResult, error) {
	if len(groups) < 2 {
		return ANOVAResult{}, fmt.Errorf("%w: ANOVA needs at least 2 groups, got %d", ErrTooFewGroups, len(groups))
	}

	var total int
	for i, g := range groups {
		if len(g) == 0 {
			return ANOVAResult{}, fmt.Errorf("%w: group %d", ErrEmptyGroup, i)
		}
		total += len(g)
	}
	dfBetween := len(groups) - 1
	dfWithin := total - len(groups)
	if dfWithin <= 0 {
		return ANOVAResult{}, fmt.Errorf("%w: %d observations across %d groups", ErrTooFewGroups, total, len(groups))
	}

	var all []float64
	for _, g := range groups {
		all = append(all, g...)
	}
	grandMean := stat.Mean(all, nil)

	var ssBetween, ssWithin float64
	for _, g := range groups {
		mean := stat.Mean(g, nil)
		d := mean - grandMean
		ssBetween += float64(len(g)) * d * d
		for _, v := range g {
			ssWithin += (v - mean) * (v - mean)
		}
	}
	if ssWithin == 0 {
		return ANOVAResult{}, ErrZeroVariance
	}

	f := (ssBetween / float64(dfBetween)) / (ssWithin / float64(dfWithin))
	dist := distuv.F{D1: float64(dfBetween), D2: float64(dfWithin)}

	return ANOVAResult{
		F:          f,
		P:          dist.Survival(f),
		EtaSquared: ssBetween / (ssBetween + ssWithin),
		DFBetween:  dfBetween,
		DFWithin:   dfWithin,
	}, nil
}
