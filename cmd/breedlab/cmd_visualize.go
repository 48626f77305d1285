package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"breedlab/internal/pipeline"
)

// visualizeCmd renders the chart set
var visualizeCmd = &cobra.Command{
	Use:   "visualize",
	Short: "Render the PNG chart set from the persisted dataset",
	RunE:  runVisualize,
}

// runVisualize renders the chart set
func runVisualize(cmd *cobra.Command, args []string) error {
	ctx, cancel := signalContext()
	defer cancel()

	charts, err := pipeline.New(cfg, logger).Visualize(ctx)
	if err != nil {
		return err
	}

	fmt.Printf("Rendered %d charts:\n", len(charts))
	for _, c := range charts {
		fmt.Printf("  %s\n", c)
	}
	return nil
}
