package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"breedlab/internal/pipeline"
)

// reportCmd writes the text and JSON reports
var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Write the text and JSON summary reports",
	RunE:  runReport,
}

// runReport writes the text and JSON reports
func runReport(cmd *cobra.Command, args []string) error {
	ctx, cancel := signalContext()
	defer cancel()

	reports, err := pipeline.New(cfg, logger).Report(ctx)
	if err != nil {
		return err
	}

	for _, r := range reports {
		fmt.Printf("Wrote %s\n", r)
	}
	return nil
}
