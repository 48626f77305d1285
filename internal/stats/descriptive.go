// Package stats implements the statistical battery run over the synthetic
// dataset: descriptive summaries, one-way ANOVA, two-sample t-tests, Pearson
// correlation, and chi-square tests of independence, each with the matching
// effect-size measure. Numeric kernels come from gonum.
package stats

import (
	"fmt"
	"sort"

	"gonum.org/v1/gonum/stat"

	"breedlab/internal/catalog"
	"breedlab/internal/dataset"
)

// Numeric column names, matching the cats table.
const (
	VarLifeExpectancy = "life_expectancy"
	VarWeight         = "weight_lbs"
	VarAge            = "age"
	VarHealthScore    = "health_score"
	VarVocalization   = "vocalization_frequency"
	VarSocialNeed     = "social_interaction_need"
	VarAffection      = "affection_level"
)

// Condition column names.
const (
	CondHCM          = "has_hcm"
	CondPKD          = "has_pkd"
	CondHipDysplasia = "has_hip_dysplasia"
)

// ContinuousVars are the variables tested for breed differences (ANOVA) and
// gender differences (t-test).
var ContinuousVars = []string{
	VarLifeExpectancy, VarWeight, VarHealthScore,
	VarVocalization, VarSocialNeed, VarAffection,
}

// CorrelationVars are the variables entering the correlation matrix.
var CorrelationVars = []string{
	VarLifeExpectancy, VarWeight, VarAge, VarHealthScore,
	VarVocalization, VarSocialNeed, VarAffection,
}

// ConditionVars are the binary health condition columns.
var ConditionVars = []string{CondHCM, CondPKD, CondHipDysplasia}

// Column extracts a named numeric column from the dataset.
func Column(cats []dataset.Cat, name string) ([]float64, error) {
	out := make([]float64, len(cats))
	for i, c := range cats {
		switch name {
		case VarLifeExpectancy:
			out[i] = c.LifeExpectancy
		case VarWeight:
			out[i] = c.WeightLbs
		case VarAge:
			out[i] = float64(c.Age)
		case VarHealthScore:
			out[i] = float64(c.HealthScore)
		case VarVocalization:
			out[i] = float64(c.Vocalization)
		case VarSocialNeed:
			out[i] = float64(c.SocialNeed)
		case VarAffection:
			out[i] = float64(c.Affection)
		default:
			return nil, fmt.Errorf("unknown numeric column %q", name)
		}
	}
	return out, nil
}

// Condition extracts a named condition column as a bool accessor.
func Condition(name string) (func(dataset.Cat) bool, error) {
	switch name {
	case CondHCM:
		return func(c dataset.Cat) bool { return c.HasHCM }, nil
	case CondPKD:
		return func(c dataset.Cat) bool { return c.HasPKD }, nil
	case CondHipDysplasia:
		return func(c dataset.Cat) bool { return c.HasHipDysplasia }, nil
	default:
		return nil, fmt.Errorf("unknown condition column %q", name)
	}
}

// Summary holds the descriptive statistics for one variable.
type Summary struct {
	Count  int
	Mean   float64
	Std    float64
	Min    float64
	Max    float64
	Median float64
}

// Describe computes descriptive statistics for a sample. The standard
// deviation is the sample (n-1) estimate.
func Describe(values []float64) Summary {
	if len(values) == 0 {
		return Summary{}
	}

	sorted := append([]float64(nil), values...)
	sort.Float64s(sorted)

	s := Summary{
		Count:  len(values),
		Mean:   stat.Mean(values, nil),
		Min:    sorted[0],
		Max:    sorted[len(sorted)-1],
		Median: stat.Quantile(0.5, stat.Empirical, sorted, nil),
	}
	if len(values) > 1 {
		s.Std = stat.StdDev(values, nil)
	}
	return s
}

// BreedSummary is the per-breed aggregate row, mirroring breed_statistics.
type BreedSummary struct {
	Breed                  string
	AvgLifeExpectancy      float64
	StdLifeExpectancy      float64
	MinLifeExpectancy      float64
	MaxLifeExpectancy      float64
	AvgWeight              float64
	StdWeight              float64
	HCMPrevalence          float64
	PKDPrevalence          float64
	HipDysplasiaPrevalence float64
	AvgVocalization        float64
	AvgSocialNeed          float64
	AvgAffection           float64
	AvgHealthScore         float64
	SampleSize             int
}

// BreedSummaries aggregates the raw records into one row per breed, in
// registry order. Breeds absent from the dataset are skipped.
func BreedSummaries(cats []dataset.Cat) []BreedSummary {
	byBreed := make(map[string][]dataset.Cat)
	for _, c := range cats {
		byBreed[c.Breed] = append(byBreed[c.Breed], c)
	}

	var out []BreedSummary
	for _, breed := range catalog.Names() {
		group := byBreed[breed]
		if len(group) == 0 {
			continue
		}

		life := make([]float64, len(group))
		weight := make([]float64, len(group))
		voc := make([]float64, len(group))
		social := make([]float64, len(group))
		affection := make([]float64, len(group))
		health := make([]float64, len(group))
		var hcm, pkd, hip int

		for i, c := range group {
			life[i] = c.LifeExpectancy
			weight[i] = c.WeightLbs
			voc[i] = float64(c.Vocalization)
			social[i] = float64(c.SocialNeed)
			affection[i] = float64(c.Affection)
			health[i] = float64(c.HealthScore)
			if c.HasHCM {
				hcm++
			}
			if c.HasPKD {
				pkd++
			}
			if c.HasHipDysplasia {
				hip++
			}
		}

		lifeSummary := Describe(life)
		n := float64(len(group))
		out = append(out, BreedSummary{
			Breed:                  breed,
			AvgLifeExpectancy:      lifeSummary.Mean,
			StdLifeExpectancy:      lifeSummary.Std,
			MinLifeExpectancy:      lifeSummary.Min,
			MaxLifeExpectancy:      lifeSummary.Max,
			AvgWeight:              stat.Mean(weight, nil),
			StdWeight:              stat.StdDev(weight, nil),
			HCMPrevalence:          float64(hcm) / n,
			PKDPrevalence:          float64(pkd) / n,
			HipDysplasiaPrevalence: float64(hip) / n,
			AvgVocalization:        stat.Mean(voc, nil),
			AvgSocialNeed:          stat.Mean(social, nil),
			AvgAffection:           stat.Mean(affection, nil),
			AvgHealthScore:         stat.Mean(health, nil),
			SampleSize:             len(group),
		})
	}
	return out
}

// PrevalencePercent computes the overall prevalence (as a percentage) of each
// condition column.
func PrevalencePercent(cats []dataset.Cat) map[string]float64 {
	out := make(map[string]float64, len(ConditionVars))
	if len(cats) == 0 {
		return out
	}
	for _, cond := range ConditionVars {
		has, _ := Condition(cond)
		var n int
		for _, c := range cats {
			if has(c) {
				n++
			}
		}
		out[cond] = 100 * float64(n) / float64(len(cats))
	}
	return out
}
