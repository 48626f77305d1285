package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"breedlab/internal/pipeline"
)

// generateCmd builds the dataset and persists it
var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate the synthetic dataset and persist it to CSV and SQLite",
	Long: `Draws one record per cat from the per-breed trait distributions,
validates the result, and writes it to the configured CSV file and
database. The same seed always produces the same dataset.`,
	RunE: runGenerate,
}

// runGenerate builds and persists the dataset
func runGenerate(cmd *cobra.Command, args []string) error {
	ctx, cancel := signalContext()
	defer cancel()

	cats, err := pipeline.New(cfg, logger).Generate(ctx)
	if err != nil {
		return err
	}

	fmt.Printf("Generated %d cats (seed %d)\n", len(cats), cfg.Dataset.Seed)
	fmt.Printf("  CSV:      %s\n", cfg.Dataset.CSVPath)
	fmt.Printf("  Database: %s\n", cfg.Database.Path)
	return nil
}
