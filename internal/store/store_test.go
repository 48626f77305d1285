package store

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"

	"breedlab/internal/dataset"
	"breedlab/internal/stats"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(":memory:")
	if err != nil {
		t.Fatalf("failed to open store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func testCats(t *testing.T, perBreed int) []dataset.Cat {
	t.Helper()
	gen, err := dataset.NewGenerator(42, perBreed)
	if err != nil {
		t.Fatalf("NewGenerator failed: %v", err)
	}
	return gen.Generate()
}

func TestOpenCreatesSchema(t *testing.T) {
	s := newTestStore(t)

	counts, err := s.TableCounts(context.Background())
	if err != nil {
		t.Fatalf("TableCounts failed: %v", err)
	}

	for _, table := range []string{"cats", "breed_statistics", "analysis_results"} {
		n, ok := counts[table]
		if !ok {
			t.Errorf("missing table %s", table)
		}
		if n != 0 {
			t.Errorf("table %s: expected 0 rows, got %d", table, n)
		}
	}
}

func TestOpenOnDisk(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data", "breedlab.db")

	s, err := Open(path)
	if err != nil {
		t.Fatalf("failed to open on-disk store: %v", err)
	}
	defer s.Close()

	if s.Path() != path {
		t.Errorf("Path() = %s, want %s", s.Path(), path)
	}
}

func TestReplaceCatsRoundTrip(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()
	cats := testCats(t, 8)

	if err := s.ReplaceCats(ctx, cats); err != nil {
		t.Fatalf("ReplaceCats failed: %v", err)
	}

	loaded, err := s.Cats(ctx)
	if err != nil {
		t.Fatalf("Cats failed: %v", err)
	}

	if diff := cmp.Diff(cats, loaded); diff != "" {
		t.Errorf("round trip mismatch (-inserted +loaded):\n%s", diff)
	}
}

func TestReplaceCatsIdempotent(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	if err := s.ReplaceCats(ctx, testCats(t, 10)); err != nil {
		t.Fatalf("first ReplaceCats failed: %v", err)
	}

	small := testCats(t, 3)
	if err := s.ReplaceCats(ctx, small); err != nil {
		t.Fatalf("second ReplaceCats failed: %v", err)
	}

	n, err := s.catCount(ctx)
	if err != nil {
		t.Fatalf("catCount failed: %v", err)
	}
	if n != len(small) {
		t.Errorf("rerun did not replace rows: got %d, want %d", n, len(small))
	}
}

func TestCatsByBreed(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()
	cats := testCats(t, 6)

	if err := s.ReplaceCats(ctx, cats); err != nil {
		t.Fatalf("ReplaceCats failed: %v", err)
	}

	persians, err := s.CatsByBreed(ctx, "Persian")
	if err != nil {
		t.Fatalf("CatsByBreed failed: %v", err)
	}
	if len(persians) != 6 {
		t.Errorf("expected 6 Persians, got %d", len(persians))
	}
	for _, c := range persians {
		if c.Breed != "Persian" {
			t.Errorf("unexpected breed %s in Persian query", c.Breed)
		}
	}

	if _, err := s.CatsByBreed(ctx, "Sphynx"); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound for unknown breed, got %v", err)
	}
}

func TestBreedStatisticsRoundTrip(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()
	cats := testCats(t, 12)

	summaries := stats.BreedSummaries(cats)
	if err := s.ReplaceBreedStatistics(ctx, summaries); err != nil {
		t.Fatalf("ReplaceBreedStatistics failed: %v", err)
	}

	rows, err := s.BreedStatistics(ctx)
	if err != nil {
		t.Fatalf("BreedStatistics failed: %v", err)
	}
	if len(rows) != len(summaries) {
		t.Fatalf("expected %d rows, got %d", len(summaries), len(rows))
	}

	byBreed := make(map[string]stats.BreedSummary)
	for _, b := range summaries {
		byBreed[b.Breed] = b
	}
	for _, r := range rows {
		want, ok := byBreed[r.Breed]
		if !ok {
			t.Errorf("unexpected breed %s in breed_statistics", r.Breed)
			continue
		}
		if diff := cmp.Diff(want, r.BreedSummary); diff != "" {
			t.Errorf("breed %s mismatch (-computed +stored):\n%s", r.Breed, diff)
		}
		if r.LastUpdated == "" {
			t.Errorf("breed %s: empty last_updated", r.Breed)
		}
	}

	// Rerun replaces rather than appends.
	if err := s.ReplaceBreedStatistics(ctx, summaries); err != nil {
		t.Fatalf("second ReplaceBreedStatistics failed: %v", err)
	}
	rows, err = s.BreedStatistics(ctx)
	if err != nil {
		t.Fatalf("BreedStatistics failed: %v", err)
	}
	if len(rows) != len(summaries) {
		t.Errorf("rerun appended rows: got %d, want %d", len(rows), len(summaries))
	}
}

func TestRecorderAndResults(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	runA := uuid.New()
	runB := uuid.New()

	recA := s.Recorder(runA)
	for i, typ := range []string{stats.AnalysisANOVA, stats.AnalysisTTest} {
		err := recA.RecordFinding(ctx, stats.Finding{
			Type:           typ,
			Statistic:      float64(i) + 1.5,
			PValue:         0.001,
			EffectSize:     0.4,
			DF:             9,
			Variables:      "life_expectancy",
			Interpretation: "test finding",
		})
		if err != nil {
			t.Fatalf("RecordFinding failed: %v", err)
		}
	}

	if err := s.Recorder(runB).RecordFinding(ctx, stats.Finding{
		Type:      stats.AnalysisChiSquare,
		Statistic: 12.3, PValue: 0.02, EffectSize: 0.2, DF: 9,
		Variables: "has_pkd", Interpretation: "test finding",
	}); err != nil {
		t.Fatalf("RecordFinding failed: %v", err)
	}

	all, err := s.AnalysisResults(ctx)
	if err != nil {
		t.Fatalf("AnalysisResults failed: %v", err)
	}
	if len(all) != 3 {
		t.Fatalf("expected 3 results, got %d", len(all))
	}
	if all[0].Type != stats.AnalysisANOVA {
		t.Errorf("expected oldest-first ordering, got %s first", all[0].Type)
	}
	if all[0].AnalysisDate == "" {
		t.Error("empty analysis_date")
	}

	forA, err := s.AnalysisResultsForRun(ctx, runA)
	if err != nil {
		t.Fatalf("AnalysisResultsForRun failed: %v", err)
	}
	if len(forA) != 2 {
		t.Errorf("expected 2 results for run A, got %d", len(forA))
	}
	for _, r := range forA {
		if r.RunID != runA.String() {
			t.Errorf("result %d carries run id %s, want %s", r.ID, r.RunID, runA)
		}
	}

	if err := s.ClearResults(ctx); err != nil {
		t.Fatalf("ClearResults failed: %v", err)
	}
	all, err = s.AnalysisResults(ctx)
	if err != nil {
		t.Fatalf("AnalysisResults failed: %v", err)
	}
	if len(all) != 0 {
		t.Errorf("expected empty results after clear, got %d", len(all))
	}
}
