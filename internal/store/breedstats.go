package store

import (
	"context"
	"fmt"
	"time"

	"breedlab/internal/stats"
)

// BreedStatRow is one breed_statistics row.
type BreedStatRow struct {
	stats.BreedSummary
	LastUpdated string
}

// ReplaceBreedStatistics overwrites the breed_statistics table with freshly
// computed aggregates.
func (s *Store) ReplaceBreedStatistics(ctx context.Context, summaries []stats.BreedSummary) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, "DELETE FROM breed_statistics"); err != nil {
		return fmt.Errorf("failed to clear breed_statistics: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO breed_statistics (
			breed, avg_life_expectancy, std_life_expectancy,
			min_life_expectancy, max_life_expectancy,
			avg_weight, std_weight,
			hcm_prevalence, pkd_prevalence, hip_dysplasia_prevalence,
			avg_vocalization, avg_social_need, avg_affection,
			avg_health_score, sample_size, last_updated
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("failed to prepare insert: %w", err)
	}
	defer stmt.Close()

	now := time.Now().Format("2006-01-02 15:04:05")
	for _, b := range summaries {
		if _, err := stmt.ExecContext(ctx,
			b.Breed, b.AvgLifeExpectancy, b.StdLifeExpectancy,
			b.MinLifeExpectancy, b.MaxLifeExpectancy,
			b.AvgWeight, b.StdWeight,
			b.HCMPrevalence, b.PKDPrevalence, b.HipDysplasiaPrevalence,
			b.AvgVocalization, b.AvgSocialNeed, b.AvgAffection,
			b.AvgHealthScore, b.SampleSize, now,
		); err != nil {
			return fmt.Errorf("failed to insert statistics for %s: %w", b.Breed, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit breed statistics: %w", err)
	}
	return nil
}

// BreedStatistics returns the aggregate rows ordered by breed name.
func (s *Store) BreedStatistics(ctx context.Context) ([]BreedStatRow, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT breed, avg_life_expectancy, std_life_expectancy,
			min_life_expectancy, max_life_expectancy,
			avg_weight, std_weight,
			hcm_prevalence, pkd_prevalence, hip_dysplasia_prevalence,
			avg_vocalization, avg_social_need, avg_affection,
			avg_health_score, sample_size, last_updated
		FROM breed_statistics ORDER BY breed`)
	if err != nil {
		return nil, fmt.Errorf("failed to query breed_statistics: %w", err)
	}
	defer rows.Close()

	var out []BreedStatRow
	for rows.Next() {
		var r BreedStatRow
		if err := rows.Scan(
			&r.Breed, &r.AvgLifeExpectancy, &r.StdLifeExpectancy,
			&r.MinLifeExpectancy, &r.MaxLifeExpectancy,
			&r.AvgWeight, &r.StdWeight,
			&r.HCMPrevalence, &r.PKDPrevalence, &r.HipDysplasiaPrevalence,
			&r.AvgVocalization, &r.AvgSocialNeed, &r.AvgAffection,
			&r.AvgHealthScore, &r.SampleSize, &r.LastUpdated,
		); err != nil {
			return nil, fmt.Errorf("failed to scan breed_statistics row: %w", err)
		}
		out = append(out, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate breed_statistics: %w", err)
	}
	return out, nil
}
