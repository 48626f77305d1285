// Package report assembles the text and JSON summary reports from the
// persisted dataset, breed aggregates, and analysis findings.
package report

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"go.uber.org/zap"

	"breedlab/internal/dataset"
	"breedlab/internal/stats"
	"breedlab/internal/store"
)

// Report file names written under the results directory.
const (
	FileText = "cat_breed_analysis_report.txt"
	FileJSON = "cat_breed_analysis_summary.json"
)

// RunMeta identifies the pipeline run a report describes.
type RunMeta struct {
	RunID string
	Seed  uint64
}

// Reporter builds reports from the store.
type Reporter struct {
	store *store.Store
	log   *zap.Logger
}

// NewReporter wires a reporter. A nil logger disables logging.
func NewReporter(s *store.Store, log *zap.Logger) *Reporter {
	if log == nil {
		log = zap.NewNop()
	}
	return &Reporter{store: s, log: log}
}

// WriteText writes the full text report, overwriting any prior file.
func (r *Reporter) WriteText(ctx context.Context, path string, meta RunMeta) error {
	body, err := r.buildText(ctx, meta)
	if err != nil {
		return err
	}
	if err := writeFile(path, []byte(body)); err != nil {
		return err
	}
	r.log.Info("text report written", zap.String("path", path))
	return nil
}

func (r *Reporter) buildText(ctx context.Context, meta RunMeta) (string, error) {
	cats, err := r.store.Cats(ctx)
	if err != nil {
		return "", err
	}
	if len(cats) == 0 {
		return "", fmt.Errorf("no records in database; run the pipeline first")
	}
	breedStats, err := r.store.BreedStatistics(ctx)
	if err != nil {
		return "", err
	}
	results, err := r.store.AnalysisResults(ctx)
	if err != nil {
		return "", err
	}

	var b strings.Builder
	rule := strings.Repeat("=", 78)

	fmt.Fprintln(&b, rule)
	fmt.Fprintln(&b, "CAT BREED STATISTICAL ANALYSIS - SUMMARY REPORT")
	fmt.Fprintln(&b, rule)
	fmt.Fprintf(&b, "Report date: %s\n", time.Now().Format("January 2, 2006"))
	fmt.Fprintf(&b, "Run id: %s (seed %d)\n", meta.RunID, meta.Seed)
	fmt.Fprintf(&b, "Dataset: %d cats across %d breeds\n\n", len(cats), len(breedStats))

	writeExecutiveSummary(&b, cats, breedStats)
	writeDetailedFindings(&b, results)
	writeMethodology(&b, len(cats))

	return b.String(), nil
}

func writeExecutiveSummary(b *strings.Builder, cats []dataset.Cat, breedStats []store.BreedStatRow) {
	fmt.Fprintln(b, "KEY FINDINGS")
	fmt.Fprintln(b, strings.Repeat("-", 40))

	if len(breedStats) > 0 {
		fmt.Fprintln(b, "\n1. HEALTH & PHYSIOLOGY")

		longest := maxBy(breedStats, func(r store.BreedStatRow) float64 { return r.AvgLifeExpectancy })
		shortest := minBy(breedStats, func(r store.BreedStatRow) float64 { return r.AvgLifeExpectancy })
		fmt.Fprintf(b, "   - Longest-lived breed: %s (%.1f +/- %.1f years)\n",
			longest.Breed, longest.AvgLifeExpectancy, longest.StdLifeExpectancy)
		fmt.Fprintf(b, "   - Shortest-lived breed: %s (%.1f +/- %.1f years)\n",
			shortest.Breed, shortest.AvgLifeExpectancy, shortest.StdLifeExpectancy)

		heaviest := maxBy(breedStats, func(r store.BreedStatRow) float64 { return r.AvgWeight })
		lightest := minBy(breedStats, func(r store.BreedStatRow) float64 { return r.AvgWeight })
		fmt.Fprintf(b, "   - Heaviest breed: %s (%.1f lbs average)\n", heaviest.Breed, heaviest.AvgWeight)
		fmt.Fprintf(b, "   - Lightest breed: %s (%.1f lbs average)\n", lightest.Breed, lightest.AvgWeight)

		maleMean, femaleMean := genderWeightMeans(cats)
		fmt.Fprintf(b, "   - Gender dimorphism: males average %.1f lbs heavier than females (%.1f vs %.1f lbs)\n",
			maleMean-femaleMean, maleMean, femaleMean)

		prev := stats.PrevalencePercent(cats)
		conditions := []struct {
			label string
			cond  string
			by    func(store.BreedStatRow) float64
		}{
			{"Hypertrophic Cardiomyopathy (HCM)", stats.CondHCM, func(r store.BreedStatRow) float64 { return r.HCMPrevalence }},
			{"Polycystic Kidney Disease (PKD)", stats.CondPKD, func(r store.BreedStatRow) float64 { return r.PKDPrevalence }},
			{"Hip Dysplasia", stats.CondHipDysplasia, func(r store.BreedStatRow) float64 { return r.HipDysplasiaPrevalence }},
		}
		fmt.Fprintln(b, "\n   Health condition prevalence:")
		for _, c := range conditions {
			worst := maxBy(breedStats, c.by)
			fmt.Fprintf(b, "   - %s: overall %.1f%%, highest risk %s (%.1f%%)\n",
				c.label, prev[c.cond], worst.Breed, 100*c.by(worst))
		}

		fmt.Fprintln(b, "\n2. PERSONALITY CHARACTERISTICS")

		mostVocal := maxBy(breedStats, func(r store.BreedStatRow) float64 { return r.AvgVocalization })
		leastVocal := minBy(breedStats, func(r store.BreedStatRow) float64 { return r.AvgVocalization })
		fmt.Fprintf(b, "   - Vocalization (1=Low..3=High): most vocal %s (%.2f), least vocal %s (%.2f)\n",
			mostVocal.Breed, mostVocal.AvgVocalization, leastVocal.Breed, leastVocal.AvgVocalization)

		mostSocial := maxBy(breedStats, func(r store.BreedStatRow) float64 { return r.AvgSocialNeed })
		leastSocial := minBy(breedStats, func(r store.BreedStatRow) float64 { return r.AvgSocialNeed })
		fmt.Fprintf(b, "   - Social need (1=Independent..3=High): most social %s (%.2f), most independent %s (%.2f)\n",
			mostSocial.Breed, mostSocial.AvgSocialNeed, leastSocial.Breed, leastSocial.AvgSocialNeed)

		mostAffectionate := maxBy(breedStats, func(r store.BreedStatRow) float64 { return r.AvgAffection })
		leastAffectionate := minBy(breedStats, func(r store.BreedStatRow) float64 { return r.AvgAffection })
		fmt.Fprintf(b, "   - Affection (1=Aloof..4=Dog-like): most affectionate %s (%.2f), most aloof %s (%.2f)\n",
			mostAffectionate.Breed, mostAffectionate.AvgAffection, leastAffectionate.Breed, leastAffectionate.AvgAffection)

		if social, err := stats.Column(cats, stats.VarSocialNeed); err == nil {
			if affection, err := stats.Column(cats, stats.VarAffection); err == nil {
				if res, err := stats.PearsonTest(social, affection); err == nil {
					fmt.Fprintf(b, "   - Correlation between social need and affection: r = %.3f\n", res.R)
				}
			}
		}
	}
	fmt.Fprintln(b)
}

func writeDetailedFindings(b *strings.Builder, results []store.AnalysisResult) {
	fmt.Fprintln(b, strings.Repeat("=", 78))
	fmt.Fprintln(b, "DETAILED STATISTICAL RESULTS")
	fmt.Fprintln(b, strings.Repeat("=", 78))

	sections := []struct {
		heading string
		typ     string
		line    func(store.AnalysisResult) string
	}{
		{"ANOVA (breed differences)", stats.AnalysisANOVA, func(r store.AnalysisResult) string {
			return fmt.Sprintf("   - %s: F = %.2f, p = %.6f, eta2 = %.3f (%s)",
				r.Variables, r.Statistic, r.PValue, r.EffectSize, stats.EtaSquaredLabel(r.EffectSize))
		}},
		{"Correlation analysis", stats.AnalysisCorrelation, func(r store.AnalysisResult) string {
			return fmt.Sprintf("   - %s: r = %.3f%s, p = %.6f",
				r.Variables, r.Statistic, stats.SignificanceStars(r.PValue), r.PValue)
		}},
		{"Gender differences (t-tests)", stats.AnalysisTTest, func(r store.AnalysisResult) string {
			return fmt.Sprintf("   - %s: t = %.2f, p = %.6f, d = %.3f (%s)",
				r.Variables, r.Statistic, r.PValue, r.EffectSize, stats.CohensDLabel(r.EffectSize))
		}},
		{"Health conditions (chi-square)", stats.AnalysisChiSquare, func(r store.AnalysisResult) string {
			return fmt.Sprintf("   - %s: chi2 = %.2f, p = %.6f, V = %.3f (%s)",
				r.Variables, r.Statistic, r.PValue, r.EffectSize, stats.CramersVLabel(r.EffectSize))
		}},
	}

	for _, s := range sections {
		var lines []string
		for _, r := range results {
			if r.Type == s.typ {
				lines = append(lines, s.line(r))
			}
		}
		fmt.Fprintf(b, "\n%s:\n", s.heading)
		if len(lines) == 0 {
			fmt.Fprintln(b, "   (no significant findings recorded)")
			continue
		}
		for _, l := range lines {
			fmt.Fprintln(b, l)
		}
	}

	var significant int
	for _, r := range results {
		if r.PValue < 0.05 {
			significant++
		}
	}
	fmt.Fprintf(b, "\nSignificant findings (p < 0.05): %d of %d recorded analyses\n\n", significant, len(results))
}

func writeMethodology(b *strings.Builder, n int) {
	fmt.Fprintln(b, strings.Repeat("=", 78))
	fmt.Fprintln(b, "METHODOLOGY & DATA QUALITY")
	fmt.Fprintln(b, strings.Repeat("=", 78))
	fmt.Fprintf(b, `
Synthetic dataset of %d records drawn from per-breed trait distributions
(normal draws for lifespan, weight and age; Bernoulli draws for condition
flags; jittered ordinal personality scores), clipped to valid ranges.

Statistical methods: descriptive statistics, one-way ANOVA with eta-squared
effect sizes, pooled-variance independent t-tests with Cohen's d, Pearson
correlation, and chi-square tests of independence with Cramer's V.

Data quality: no missing values, balanced design (equal samples per breed),
validated value ranges, fully reproducible from the configured seed.
`, n)
}

// JSONReport is the machine-readable summary document.
type JSONReport struct {
	Name        string             `json:"name"`
	RunID       string             `json:"run_id"`
	Seed        uint64             `json:"seed"`
	GeneratedAt string             `json:"generated_at"`
	Dataset     JSONDatasetSection `json:"dataset"`
	BreedStats  []JSONBreedStats   `json:"breed_statistics"`
	Findings    []JSONFinding      `json:"analysis_results"`
}

// JSONDatasetSection summarizes the raw table.
type JSONDatasetSection struct {
	TotalCats         int                `json:"total_cats"`
	Breeds            int                `json:"breeds"`
	PrevalencePercent map[string]float64 `json:"prevalence_percent"`
}

// JSONBreedStats is one breed_statistics row for the JSON document.
type JSONBreedStats struct {
	Breed                  string  `json:"breed"`
	AvgLifeExpectancy      float64 `json:"avg_life_expectancy"`
	StdLifeExpectancy      float64 `json:"std_life_expectancy"`
	MinLifeExpectancy      float64 `json:"min_life_expectancy"`
	MaxLifeExpectancy      float64 `json:"max_life_expectancy"`
	AvgWeight              float64 `json:"avg_weight"`
	StdWeight              float64 `json:"std_weight"`
	HCMPrevalence          float64 `json:"hcm_prevalence"`
	PKDPrevalence          float64 `json:"pkd_prevalence"`
	HipDysplasiaPrevalence float64 `json:"hip_dysplasia_prevalence"`
	AvgVocalization        float64 `json:"avg_vocalization"`
	AvgSocialNeed          float64 `json:"avg_social_need"`
	AvgAffection           float64 `json:"avg_affection"`
	AvgHealthScore         float64 `json:"avg_health_score"`
	SampleSize             int     `json:"sample_size"`
	LastUpdated            string  `json:"last_updated"`
}

// JSONFinding is one analysis_results row for the JSON document.
type JSONFinding struct {
	ID             int64   `json:"analysis_id"`
	RunID          string  `json:"run_id"`
	Type           string  `json:"analysis_type"`
	Statistic      float64 `json:"test_statistic"`
	PValue         float64 `json:"p_value"`
	EffectSize     float64 `json:"effect_size"`
	DF             int     `json:"degrees_freedom"`
	Variables      string  `json:"variables_tested"`
	Interpretation string  `json:"result_interpretation"`
	AnalysisDate   string  `json:"analysis_date"`
}

// WriteJSON writes the JSON summary report, overwriting any prior file.
func (r *Reporter) WriteJSON(ctx context.Context, path string, meta RunMeta) error {
	cats, err := r.store.Cats(ctx)
	if err != nil {
		return err
	}
	if len(cats) == 0 {
		return fmt.Errorf("no records in database; run the pipeline first")
	}
	breedStats, err := r.store.BreedStatistics(ctx)
	if err != nil {
		return err
	}
	results, err := r.store.AnalysisResults(ctx)
	if err != nil {
		return err
	}

	doc := JSONReport{
		Name:        "breedlab",
		RunID:       meta.RunID,
		Seed:        meta.Seed,
		GeneratedAt: time.Now().Format(time.RFC3339),
		Dataset: JSONDatasetSection{
			TotalCats:         len(cats),
			Breeds:            len(breedStats),
			PrevalencePercent: stats.PrevalencePercent(cats),
		},
	}
	for _, row := range breedStats {
		doc.BreedStats = append(doc.BreedStats, JSONBreedStats{
			Breed:                  row.Breed,
			AvgLifeExpectancy:      row.AvgLifeExpectancy,
			StdLifeExpectancy:      row.StdLifeExpectancy,
			MinLifeExpectancy:      row.MinLifeExpectancy,
			MaxLifeExpectancy:      row.MaxLifeExpectancy,
			AvgWeight:              row.AvgWeight,
			StdWeight:              row.StdWeight,
			HCMPrevalence:          row.HCMPrevalence,
			PKDPrevalence:          row.PKDPrevalence,
			HipDysplasiaPrevalence: row.HipDysplasiaPrevalence,
			AvgVocalization:        row.AvgVocalization,
			AvgSocialNeed:          row.AvgSocialNeed,
			AvgAffection:           row.AvgAffection,
			AvgHealthScore:         row.AvgHealthScore,
			SampleSize:             row.SampleSize,
			LastUpdated:            row.LastUpdated,
		})
	}
	for _, r := range results {
		doc.Findings = append(doc.Findings, JSONFinding{
			ID:             r.ID,
			RunID:          r.RunID,
			Type:           r.Type,
			Statistic:      r.Statistic,
			PValue:         r.PValue,
			EffectSize:     r.EffectSize,
			DF:             r.DF,
			Variables:      r.Variables,
			Interpretation: r.Interpretation,
			AnalysisDate:   r.AnalysisDate,
		})
	}

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal JSON report: %w", err)
	}
	if err := writeFile(path, data); err != nil {
		return err
	}
	r.log.Info("json report written", zap.String("path", path))
	return nil
}

func writeFile(path string, data []byte) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create report directory: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}
	return nil
}

func genderWeightMeans(cats []dataset.Cat) (male, female float64) {
	var maleSum, femaleSum float64
	var maleN, femaleN int
	for _, c := range cats {
		if c.Gender == dataset.Male {
			maleSum += c.WeightLbs
			maleN++
		} else {
			femaleSum += c.WeightLbs
			femaleN++
		}
	}
	if maleN > 0 {
		male = maleSum / float64(maleN)
	}
	if femaleN > 0 {
		female = femaleSum / float64(femaleN)
	}
	return male, female
}

func maxBy(rows []store.BreedStatRow, key func(store.BreedStatRow) float64) store.BreedStatRow {
	sorted := append([]store.BreedStatRow(nil), rows...)
	sort.SliceStable(sorted, func(i, j int) bool { return key(sorted[i]) > key(sorted[j]) })
	return sorted[0]
}

func minBy(rows []store.BreedStatRow, key func(store.BreedStatRow) float64) store.BreedStatRow {
	sorted := append([]store.BreedStatRow(nil), rows...)
	sort.SliceStable(sorted, func(i, j int) bool { return key(sorted[i]) < key(sorted[j]) })
	return sorted[0]
}
