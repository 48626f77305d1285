package stats

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"breedlab/internal/catalog"
	"breedlab/internal/dataset"
)

// Analysis type labels stored in the analysis_results table.
const (
	AnalysisANOVA       = "ANOVA"
	AnalysisCorrelation = "Pearson Correlation"
	AnalysisTTest       = "Independent t-test"
	AnalysisChiSquare   = "Chi-square test"
)

// Finding is one persisted analysis outcome.
type Finding struct {
	Type           string
	Statistic      float64
	PValue         float64
	EffectSize     float64
	DF             int
	Variables      string
	Interpretation string
}

// Recorder persists findings. The SQLite store implements it.
type Recorder interface {
	RecordFinding(ctx context.Context, f Finding) error
}

// Options tunes the analysis battery.
type Options struct {
	// Alpha is the significance level gating which correlation, t-test and
	// chi-square findings are persisted.
	Alpha float64
	// MinGroupSize triggers a warning when any tested group is smaller.
	MinGroupSize int
	// CorrelationThreshold is the minimum |r| for a pair to be reported.
	CorrelationThreshold float64
}

// DefaultOptions mirrors the configuration defaults.
func DefaultOptions() Options {
	return Options{Alpha: 0.05, MinGroupSize: 30, CorrelationThreshold: 0.3}
}

// Results aggregates the full battery's outputs.
type Results struct {
	Descriptive    map[string]Summary
	Prevalence     map[string]float64 // percent, by condition
	BreedSummaries []BreedSummary
	ANOVA          map[string]ANOVAResult
	Correlations   []CorrelationPair
	GenderTests    map[string]TTestResult
	HealthTests    map[string]ChiSquareResult
	FindingsSaved  int
}

// Analyzer runs the statistical battery over a dataset and persists the
// findings through a Recorder.
type Analyzer struct {
	rec  Recorder
	log  *zap.Logger
	opts Options
}

// NewAnalyzer wires an analyzer. A nil logger disables logging.
func NewAnalyzer(rec Recorder, log *zap.Logger, opts Options) *Analyzer {
	if log == nil {
		log = zap.NewNop()
	}
	return &Analyzer{rec: rec, log: log, opts: opts}
}

// Run executes descriptive statistics, breed ANOVA, the correlation scan,
// gender t-tests and per-condition chi-squares, in that order. Results are
// deterministic for a given dataset.
func (a *Analyzer) Run(ctx context.Context, cats []dataset.Cat) (*Results, error) {
	if len(cats) == 0 {
		return nil, fmt.Errorf("no records to analyze")
	}

	a.warnSmallGroups(cats)

	res := &Results{
		Descriptive: make(map[string]Summary),
		ANOVA:       make(map[string]ANOVAResult),
		GenderTests: make(map[string]TTestResult),
		HealthTests: make(map[string]ChiSquareResult),
	}

	for _, name := range CorrelationVars {
		col, err := Column(cats, name)
		if err != nil {
			return nil, err
		}
		res.Descriptive[name] = Describe(col)
	}
	res.Prevalence = PrevalencePercent(cats)
	res.BreedSummaries = BreedSummaries(cats)

	if err := a.runANOVA(ctx, cats, res); err != nil {
		return nil, err
	}
	if err := a.runCorrelations(ctx, cats, res); err != nil {
		return nil, err
	}
	if err := a.runGenderTests(ctx, cats, res); err != nil {
		return nil, err
	}
	if err := a.runHealthTests(ctx, cats, res); err != nil {
		return nil, err
	}

	a.log.Info("analysis battery complete",
		zap.Int("records", len(cats)),
		zap.Int("findings_saved", res.FindingsSaved))
	return res, nil
}

func (a *Analyzer) warnSmallGroups(cats []dataset.Cat) {
	for _, breed := range dataset.SmallGroups(cats, a.opts.MinGroupSize) {
		a.log.Warn("breed group below minimum size",
			zap.String("breed", breed),
			zap.Int("min_group_size", a.opts.MinGroupSize))
	}

	var males, females int
	for _, c := range cats {
		if c.Gender == dataset.Male {
			males++
		} else {
			females++
		}
	}
	if males < a.opts.MinGroupSize || females < a.opts.MinGroupSize {
		a.log.Warn("gender group below minimum size",
			zap.Int("males", males),
			zap.Int("females", females),
			zap.Int("min_group_size", a.opts.MinGroupSize))
	}
}

func (a *Analyzer) runANOVA(ctx context.Context, cats []dataset.Cat, res *Results) error {
	byBreed := make(map[string][]dataset.Cat)
	for _, c := range cats {
		byBreed[c.Breed] = append(byBreed[c.Breed], c)
	}

	for _, name := range ContinuousVars {
		var groups [][]float64
		for _, breed := range catalog.Names() {
			group := byBreed[breed]
			if len(group) == 0 {
				continue
			}
			col, err := Column(group, name)
			if err != nil {
				return err
			}
			groups = append(groups, col)
		}

		r, err := OneWayANOVA(groups)
		if err != nil {
			return fmt.Errorf("ANOVA on %s: %w", name, err)
		}
		res.ANOVA[name] = r

		a.log.Debug("anova",
			zap.String("variable", name),
			zap.Float64("f", r.F),
			zap.Float64("p", r.P),
			zap.Float64("eta_squared", r.EtaSquared))

		interp := fmt.Sprintf("%s. %s. Breeds differ in %s (F=%.3f, p=%.6f, eta2=%.3f)",
			SignificanceLabel(r.P), EtaSquaredLabel(r.EtaSquared), name, r.F, r.P, r.EtaSquared)
		if err := a.record(ctx, res, Finding{
			Type:           AnalysisANOVA,
			Statistic:      r.F,
			PValue:         r.P,
			EffectSize:     r.EtaSquared,
			DF:             r.DFBetween,
			Variables:      name,
			Interpretation: interp,
		}); err != nil {
			return err
		}
	}
	return nil
}

func (a *Analyzer) runCorrelations(ctx context.Context, cats []dataset.Cat, res *Results) error {
	columns := make([][]float64, len(CorrelationVars))
	for i, name := range CorrelationVars {
		col, err := Column(cats, name)
		if err != nil {
			return err
		}
		columns[i] = col
	}

	pairs, err := StrongPairs(CorrelationVars, columns, a.opts.CorrelationThreshold)
	if err != nil {
		return fmt.Errorf("correlation scan: %w", err)
	}
	res.Correlations = pairs

	for _, p := range pairs {
		a.log.Debug("correlation",
			zap.String("pair", p.VarA+" vs "+p.VarB),
			zap.Float64("r", p.R),
			zap.Float64("p", p.P))

		if p.P >= a.opts.Alpha {
			continue
		}
		vars := fmt.Sprintf("%s vs %s", p.VarA, p.VarB)
		interp := fmt.Sprintf("Moderate to strong correlation between %s and %s (r=%.3f, p=%.6f)",
			p.VarA, p.VarB, p.R, p.P)
		if err := a.record(ctx, res, Finding{
			Type:           AnalysisCorrelation,
			Statistic:      p.R,
			PValue:         p.P,
			EffectSize:     p.R * p.R,
			DF:             len(cats) - 2,
			Variables:      vars,
			Interpretation: interp,
		}); err != nil {
			return err
		}
	}
	return nil
}

func (a *Analyzer) runGenderTests(ctx context.Context, cats []dataset.Cat, res *Results) error {
	var males, females []dataset.Cat
	for _, c := range cats {
		if c.Gender == dataset.Male {
			males = append(males, c)
		} else {
			females = append(females, c)
		}
	}

	for _, name := range ContinuousVars {
		maleCol, err := Column(males, name)
		if err != nil {
			return err
		}
		femaleCol, err := Column(females, name)
		if err != nil {
			return err
		}

		r, err := TwoSampleTTest(maleCol, femaleCol)
		if err != nil {
			return fmt.Errorf("t-test on %s: %w", name, err)
		}
		res.GenderTests[name] = r

		a.log.Debug("gender t-test",
			zap.String("variable", name),
			zap.Float64("t", r.T),
			zap.Float64("p", r.P),
			zap.Float64("cohens_d", r.CohensD))

		if r.P >= a.opts.Alpha {
			continue
		}
		interp := fmt.Sprintf("Significant gender difference in %s (t=%.3f, p=%.6f, d=%.3f). %s.",
			name, r.T, r.P, r.CohensD, CohensDLabel(r.CohensD))
		if err := a.record(ctx, res, Finding{
			Type:           AnalysisTTest,
			Statistic:      r.T,
			PValue:         r.P,
			EffectSize:     r.CohensD,
			DF:             r.DF,
			Variables:      "Gender differences in " + name,
			Interpretation: interp,
		}); err != nil {
			return err
		}
	}
	return nil
}

func (a *Analyzer) runHealthTests(ctx context.Context, cats []dataset.Cat, res *Results) error {
	for _, cond := range ConditionVars {
		has, err := Condition(cond)
		if err != nil {
			return err
		}

		r, err := ChiSquareIndependence(Crosstab(cats, has))
		if err != nil {
			// A condition absent from the whole dataset gives a zero
			// marginal; skip the test rather than fail the run.
			a.log.Warn("chi-square skipped",
				zap.String("condition", cond),
				zap.Error(err))
			continue
		}
		res.HealthTests[cond] = r

		a.log.Debug("chi-square",
			zap.String("condition", cond),
			zap.Float64("chi2", r.Chi2),
			zap.Float64("p", r.P),
			zap.Float64("cramers_v", r.CramersV))

		if r.P >= a.opts.Alpha {
			continue
		}
		interp := fmt.Sprintf("Significant breed differences in %s prevalence (chi2=%.3f, p=%.6f, V=%.3f)",
			cond, r.Chi2, r.P, r.CramersV)
		if err := a.record(ctx, res, Finding{
			Type:           AnalysisChiSquare,
			Statistic:      r.Chi2,
			PValue:         r.P,
			EffectSize:     r.CramersV,
			DF:             r.DF,
			Variables:      "Breed differences in " + cond,
			Interpretation: interp,
		}); err != nil {
			return err
		}
	}
	return nil
}

func (a *Analyzer) record(ctx context.Context, res *Results, f Finding) error {
	if a.rec == nil {
		return nil
	}
	if err := a.rec.RecordFinding(ctx, f); err != nil {
		return fmt.Errorf("failed to record %s finding: %w", f.Type, err)
	}
	res.FindingsSaved++
	return nil
}
