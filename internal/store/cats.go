package store

import (
	"context"
	"database/sql"
	"fmt"

	"breedlab/internal/dataset"
)

// ReplaceCats overwrites the cats table with the given records in a single
// transaction, making reruns idempotent.
func (s *Store) ReplaceCats(ctx context.Context, cats []dataset.Cat) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, "DELETE FROM cats"); err != nil {
		return fmt.Errorf("failed to clear cats table: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO cats (
			cat_id, breed, gender, age, weight_lbs, life_expectancy,
			has_hcm, has_pkd, has_hip_dysplasia,
			vocalization_frequency, social_interaction_need, affection_level,
			health_score, total_personality_score,
			weight_category, age_category, data_collection_date
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("failed to prepare insert: %w", err)
	}
	defer stmt.Close()

	for _, c := range cats {
		if _, err := stmt.ExecContext(ctx,
			c.ID, c.Breed, c.Gender, c.Age, c.WeightLbs, c.LifeExpectancy,
			c.HasHCM, c.HasPKD, c.HasHipDysplasia,
			c.Vocalization, c.SocialNeed, c.Affection,
			c.HealthScore, c.TotalPersonality,
			c.WeightCategory, c.AgeCategory, c.CollectedAt,
		); err != nil {
			return fmt.Errorf("failed to insert cat %d: %w", c.ID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit cats: %w", err)
	}
	return nil
}

// Cats returns every record, ordered by id.
func (s *Store) Cats(ctx context.Context) ([]dataset.Cat, error) {
	return s.queryCats(ctx, selectCats+" ORDER BY cat_id")
}

// CatsByBreed returns the records for one breed, ordered by id.
func (s *Store) CatsByBreed(ctx context.Context, breed string) ([]dataset.Cat, error) {
	cats, err := s.queryCats(ctx, selectCats+" WHERE breed = ? ORDER BY cat_id", breed)
	if err != nil {
		return nil, err
	}
	if len(cats) == 0 {
		return nil, fmt.Errorf("breed %q: %w", breed, ErrNotFound)
	}
	return cats, nil
}

const selectCats = `
	SELECT cat_id, breed, gender, age, weight_lbs, life_expectancy,
		has_hcm, has_pkd, has_hip_dysplasia,
		vocalization_frequency, social_interaction_need, affection_level,
		health_score, total_personality_score,
		weight_category, age_category, data_collection_date
	FROM cats`

func (s *Store) queryCats(ctx context.Context, query string, args ...any) ([]dataset.Cat, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query cats: %w", err)
	}
	defer rows.Close()

	var cats []dataset.Cat
	for rows.Next() {
		var c dataset.Cat
		if err := rows.Scan(
			&c.ID, &c.Breed, &c.Gender, &c.Age, &c.WeightLbs, &c.LifeExpectancy,
			&c.HasHCM, &c.HasPKD, &c.HasHipDysplasia,
			&c.Vocalization, &c.SocialNeed, &c.Affection,
			&c.HealthScore, &c.TotalPersonality,
			&c.WeightCategory, &c.AgeCategory, &c.CollectedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan cat row: %w", err)
		}
		cats = append(cats, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate cats: %w", err)
	}
	return cats, nil
}

// catCount is a convenience used by sanity checks.
func (s *Store) catCount(ctx context.Context) (int, error) {
	var n int
	err := s.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM cats").Scan(&n)
	if err != nil && err != sql.ErrNoRows {
		return 0, fmt.Errorf("failed to count cats: %w", err)
	}
	return n, nil
}
