package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"breedlab/internal/pipeline"
)

// analyzeCmd runs the statistical battery over persisted data
var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Run the statistical battery over the persisted dataset",
	Long: `Runs descriptive statistics, one-way ANOVA per continuous variable,
the correlation scan, gender t-tests, and per-condition chi-square
tests. Findings are stored in the analysis_results table under a
fresh run id, replacing prior findings.`,
	RunE: runAnalyze,
}

// runAnalyze executes the statistical battery
func runAnalyze(cmd *cobra.Command, args []string) error {
	ctx, cancel := signalContext()
	defer cancel()

	res, runID, err := pipeline.New(cfg, logger).Analyze(ctx)
	if err != nil {
		return err
	}

	fmt.Printf("Analysis complete (run %s)\n", runID)
	fmt.Printf("  ANOVA tests:      %d\n", len(res.ANOVA))
	fmt.Printf("  Correlations:     %d pairs above |r| >= %.2f\n", len(res.Correlations), cfg.Analysis.CorrelationThreshold)
	fmt.Printf("  Gender t-tests:   %d\n", len(res.GenderTests))
	fmt.Printf("  Chi-square tests: %d\n", len(res.HealthTests))
	fmt.Printf("  Findings saved:   %d\n", res.FindingsSaved)
	return nil
}
