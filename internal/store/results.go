package store

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"breedlab/internal/stats"
)

// AnalysisResult is one analysis_results row.
type AnalysisResult struct {
	ID             int64
	RunID          string
	Type           string
	Statistic      float64
	PValue         float64
	EffectSize     float64
	DF             int
	Variables      string
	Interpretation string
	AnalysisDate   string
}

// RunRecorder persists findings tagged with a run id. It implements
// stats.Recorder.
type RunRecorder struct {
	store *Store
	runID uuid.UUID
}

// Recorder returns a finding recorder for the given analysis run.
func (s *Store) Recorder(runID uuid.UUID) *RunRecorder {
	return &RunRecorder{store: s, runID: runID}
}

// RecordFinding appends one finding row for this run.
func (r *RunRecorder) RecordFinding(ctx context.Context, f stats.Finding) error {
	_, err := r.store.db.ExecContext(ctx, `
		INSERT INTO analysis_results (
			run_id, analysis_type, test_statistic, p_value, effect_size,
			degrees_freedom, variables_tested, result_interpretation, analysis_date
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		r.runID.String(), f.Type, f.Statistic, f.PValue, f.EffectSize,
		f.DF, f.Variables, f.Interpretation,
		time.Now().Format("2006-01-02 15:04:05"),
	)
	if err != nil {
		return fmt.Errorf("failed to insert analysis result: %w", err)
	}
	return nil
}

// ClearResults deletes all analysis rows; used when a rerun should replace
// prior findings instead of appending a new run.
func (s *Store) ClearResults(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, "DELETE FROM analysis_results"); err != nil {
		return fmt.Errorf("failed to clear analysis_results: %w", err)
	}
	return nil
}

const selectResults = `
	SELECT analysis_id, run_id, analysis_type, test_statistic, p_value,
		effect_size, degrees_freedom, variables_tested,
		result_interpretation, analysis_date
	FROM analysis_results`

// AnalysisResults returns every finding, oldest first.
func (s *Store) AnalysisResults(ctx context.Context) ([]AnalysisResult, error) {
	return s.queryResults(ctx, selectResults+" ORDER BY analysis_id")
}

// AnalysisResultsForRun returns the findings of one run, oldest first.
func (s *Store) AnalysisResultsForRun(ctx context.Context, runID uuid.UUID) ([]AnalysisResult, error) {
	return s.queryResults(ctx, selectResults+" WHERE run_id = ? ORDER BY analysis_id", runID.String())
}

func (s *Store) queryResults(ctx context.Context, query string, args ...any) ([]AnalysisResult, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query analysis_results: %w", err)
	}
	defer rows.Close()

	var out []AnalysisResult
	for rows.Next() {
		var r AnalysisResult
		if err := rows.Scan(
			&r.ID, &r.RunID, &r.Type, &r.Statistic, &r.PValue,
			&r.EffectSize, &r.DF, &r.Variables,
			&r.Interpretation, &r.AnalysisDate,
		); err != nil {
			return nil, fmt.Errorf("failed to scan analysis result: %w", err)
		}
		out = append(out, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate analysis_results: %w", err)
	}
	return out, nil
}
