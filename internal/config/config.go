// Package config holds the pipeline configuration: YAML file with defaults,
// environment overrides, and struct-tag validation.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// Config holds all breedlab configuration.
type Config struct {
	// Name labels reports and logs.
	Name string `yaml:"name"`

	// Dataset generation settings.
	Dataset DatasetConfig `yaml:"dataset"`

	// SQLite persistence.
	Database DatabaseConfig `yaml:"database"`

	// Statistical analysis settings.
	Analysis AnalysisConfig `yaml:"analysis"`

	// Charts and reports.
	Output OutputConfig `yaml:"output"`

	// Logging.
	Logging LoggingConfig `yaml:"logging"`
}

// DatasetConfig configures synthetic data generation.
type DatasetConfig struct {
	// Seed drives every random draw; a fixed seed reproduces the dataset
	// and all downstream statistics exactly.
	Seed         uint64 `yaml:"seed"`
	CatsPerBreed int    `yaml:"cats_per_breed" validate:"gt=0"`
	CSVPath      string `yaml:"csv_path" validate:"required"`
}

// DatabaseConfig configures the SQLite store.
type DatabaseConfig struct {
	Path string `yaml:"path" validate:"required"`
}

// AnalysisConfig tunes the statistical battery.
type AnalysisConfig struct {
	// Alpha is the significance level for persisting findings.
	Alpha float64 `yaml:"alpha" validate:"gt=0,lt=1"`
	// MinGroupSize triggers a validation warning for smaller groups.
	MinGroupSize int `yaml:"min_group_size" validate:"gte=2"`
	// CorrelationThreshold is the minimum |r| worth reporting.
	CorrelationThreshold float64 `yaml:"correlation_threshold" validate:"gte=0,lte=1"`
}

// OutputConfig configures charts and reports.
type OutputConfig struct {
	ResultsDir  string  `yaml:"results_dir" validate:"required"`
	ChartWidth  float64 `yaml:"chart_width_inches" validate:"gt=0"`
	ChartHeight float64 `yaml:"chart_height_inches" validate:"gt=0"`
}

// LoggingConfig configures logging.
type LoggingConfig struct {
	Level  string `yaml:"level" validate:"oneof=debug info warn error"`
	Format string `yaml:"format" validate:"oneof=json text"`
}

// DefaultConfig returns the default configuration: 55 cats per breed from
// seed 42, artifacts under data/ and results/.
func DefaultConfig() *Config {
	return &Config{
		Name: "breedlab",

		Dataset: DatasetConfig{
			Seed:         42,
			CatsPerBreed: 55,
			CSVPath:      "data/cat_breed_dataset.csv",
		},

		Database: DatabaseConfig{
			Path: "data/cat_breed_analysis.db",
		},

		Analysis: AnalysisConfig{
			Alpha:                0.05,
			MinGroupSize:         30,
			CorrelationThreshold: 0.3,
		},

		Output: OutputConfig{
			ResultsDir:  "results",
			ChartWidth:  10,
			ChartHeight: 6,
		},

		Logging: LoggingConfig{
			Level:  "info",
			Format: "json",
		},
	}
}

// Load loads configuration from a YAML file, starting from defaults.
// A missing file is not an error: defaults plus env overrides apply.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			cfg.applyEnvOverrides()
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	cfg.applyEnvOverrides()
	return cfg, nil
}

// Save writes the configuration to a YAML file.
func (c *Config) Save(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	return nil
}

// applyEnvOverrides lets the environment win over file values:
// BREEDLAB_SEED, BREEDLAB_DB_PATH, BREEDLAB_RESULTS_DIR, BREEDLAB_LOG_LEVEL.
func (c *Config) applyEnvOverrides() {
	if v := os.Getenv("BREEDLAB_SEED"); v != "" {
		if seed, err := strconv.ParseUint(v, 10, 64); err == nil {
			c.Dataset.Seed = seed
		}
	}
	if v := os.Getenv("BREEDLAB_DB_PATH"); v != "" {
		c.Database.Path = v
	}
	if v := os.Getenv("BREEDLAB_RESULTS_DIR"); v != "" {
		c.Output.ResultsDir = v
	}
	if v := os.Getenv("BREEDLAB_LOG_LEVEL"); v != "" {
		c.Logging.Level = v
	}
}

// Validate checks the configuration against its struct tags.
func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	return nil
}
