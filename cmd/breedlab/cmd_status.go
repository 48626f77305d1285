package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"breedlab/internal/config"
	"breedlab/internal/store"
)

// statusCmd shows table counts and artifact paths
var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show database table counts and configured paths",
	RunE:  showStatus,
}

// configCmd groups configuration helpers
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Configuration helpers",
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write the default configuration to the --config path",
	RunE:  writeDefaultConfig,
}

// showStatus displays the store's table counts and configured paths
func showStatus(cmd *cobra.Command, args []string) error {
	ctx, cancel := signalContext()
	defer cancel()

	fmt.Println("breedlab status")
	fmt.Println("===============")
	fmt.Printf("Config:      %s\n", configPath)
	fmt.Printf("Seed:        %d\n", cfg.Dataset.Seed)
	fmt.Printf("CSV:         %s\n", cfg.Dataset.CSVPath)
	fmt.Printf("Database:    %s\n", cfg.Database.Path)
	fmt.Printf("Results dir: %s\n", cfg.Output.ResultsDir)

	s, err := store.Open(cfg.Database.Path)
	if err != nil {
		return err
	}
	defer s.Close()

	counts, err := s.TableCounts(ctx)
	if err != nil {
		return err
	}
	fmt.Println("\nTable counts:")
	for _, table := range []string{"cats", "breed_statistics", "analysis_results"} {
		fmt.Printf("  %-18s %d\n", table, counts[table])
	}
	return nil
}

// writeDefaultConfig saves the default configuration file
func writeDefaultConfig(cmd *cobra.Command, args []string) error {
	if _, err := os.Stat(configPath); err == nil {
		return fmt.Errorf("%s already exists; remove it first", configPath)
	}
	if err := config.DefaultConfig().Save(configPath); err != nil {
		return err
	}
	fmt.Printf("Wrote default configuration to %s\n", configPath)
	return nil
}
