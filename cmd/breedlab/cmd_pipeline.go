package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"breedlab/internal/pipeline"
)

// runCmd executes the full pipeline explicitly
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the full pipeline: generate, analyze, visualize, report",
	Long: `Executes every stage in order: dataset generation, CSV and database
persistence, the statistical battery, chart rendering, and report
writing. Prior artifacts are overwritten.`,
	RunE: runPipeline,
}

// runPipeline executes every stage in order
func runPipeline(cmd *cobra.Command, args []string) error {
	ctx, cancel := signalContext()
	defer cancel()

	out, err := pipeline.New(cfg, logger).Run(ctx)
	if err != nil {
		return err
	}

	fmt.Printf("Pipeline complete in %s\n", out.Elapsed.Round(time.Millisecond))
	fmt.Printf("  Run id:    %s\n", out.RunID)
	fmt.Printf("  Dataset:   %d cats (seed %d)\n", out.Cats, cfg.Dataset.Seed)
	fmt.Printf("  Findings:  %d saved\n", out.FindingsSaved)
	fmt.Printf("  Charts:    %d under %s\n", len(out.Charts), cfg.Output.ResultsDir)
	for _, r := range out.Reports {
		fmt.Printf("  Report:    %s\n", r)
	}
	return nil
}
