// Package store persists the dataset and analysis outputs in SQLite through
// database/sql with the pure Go modernc.org/sqlite driver. Three tables back
// the pipeline: cats (raw records), breed_statistics (per-breed aggregates),
// and analysis_results (test outcomes, appended per run).
package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"
)

// ErrNotFound is returned by lookups that match no rows.
var ErrNotFound = errors.New("not found")

// Store wraps the SQLite database.
type Store struct {
	db   *sql.DB
	path string
}

// Open initializes the SQLite database at the given path, creating the
// directory and schema when missing. Pass ":memory:" for an ephemeral store.
func Open(path string) (*Store, error) {
	if path != ":memory:" {
		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			return nil, fmt.Errorf("failed to create database directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	// The driver serializes access per connection; a single connection
	// avoids table-lock errors from concurrent writes.
	db.SetMaxOpenConns(1)

	s := &Store{db: db, path: path}
	if err := s.initialize(); err != nil {
		db.Close()
		return nil, err
	}
	return s, nil
}

// Close releases the database handle.
func (s *Store) Close() error {
	return s.db.Close()
}

// Path returns the database file path.
func (s *Store) Path() string {
	return s.path
}

// initialize creates the schema.
func (s *Store) initialize() error {
	catsTable := `
	CREATE TABLE IF NOT EXISTS cats (
		cat_id INTEGER PRIMARY KEY,
		breed TEXT NOT NULL,
		gender TEXT NOT NULL,
		age INTEGER NOT NULL,
		weight_lbs REAL NOT NULL,
		life_expectancy REAL NOT NULL,
		has_hcm BOOLEAN NOT NULL,
		has_pkd BOOLEAN NOT NULL,
		has_hip_dysplasia BOOLEAN NOT NULL,
		vocalization_frequency INTEGER NOT NULL,
		social_interaction_need INTEGER NOT NULL,
		affection_level INTEGER NOT NULL,
		health_score INTEGER NOT NULL,
		total_personality_score INTEGER NOT NULL,
		weight_category TEXT NOT NULL,
		age_category TEXT NOT NULL,
		data_collection_date TEXT NOT NULL
	);
	CREATE INDEX IF NOT EXISTS idx_cats_breed ON cats(breed);
	CREATE INDEX IF NOT EXISTS idx_cats_gender ON cats(gender);
	`

	breedStatsTable := `
	CREATE TABLE IF NOT EXISTS breed_statistics (
		breed TEXT PRIMARY KEY,
		avg_life_expectancy REAL,
		std_life_expectancy REAL,
		min_life_expectancy REAL,
		max_life_expectancy REAL,
		avg_weight REAL,
		std_weight REAL,
		hcm_prevalence REAL,
		pkd_prevalence REAL,
		hip_dysplasia_prevalence REAL,
		avg_vocalization REAL,
		avg_social_need REAL,
		avg_affection REAL,
		avg_health_score REAL,
		sample_size INTEGER,
		last_updated TEXT
	);
	`

	resultsTable := `
	CREATE TABLE IF NOT EXISTS analysis_results (
		analysis_id INTEGER PRIMARY KEY AUTOINCREMENT,
		run_id TEXT NOT NULL,
		analysis_type TEXT NOT NULL,
		test_statistic REAL,
		p_value REAL,
		effect_size REAL,
		degrees_freedom INTEGER,
		variables_tested TEXT,
		result_interpretation TEXT,
		analysis_date TEXT NOT NULL
	);
	CREATE INDEX IF NOT EXISTS idx_results_run ON analysis_results(run_id);
	CREATE INDEX IF NOT EXISTS idx_results_type ON analysis_results(analysis_type);
	`

	for _, schema := range []string{catsTable, breedStatsTable, resultsTable} {
		if _, err := s.db.Exec(schema); err != nil {
			return fmt.Errorf("failed to initialize schema: %w", err)
		}
	}
	return nil
}

// TableCounts returns the row count of each pipeline table.
func (s *Store) TableCounts(ctx context.Context) (map[string]int, error) {
	counts := make(map[string]int, 3)
	for _, table := range []string{"cats", "breed_statistics", "analysis_results"} {
		var n int
		if err := s.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM "+table).Scan(&n); err != nil {
			return nil, fmt.Errorf("failed to count %s: %w", table, err)
		}
		counts[table] = n
	}
	return counts, nil
}
