package report

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"breedlab/internal/dataset"
	"breedlab/internal/stats"
	"breedlab/internal/store"
)

func seededStore(t *testing.T) (*store.Store, RunMeta) {
	t.Helper()
	ctx := context.Background()

	s, err := store.Open(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })

	gen, err := dataset.NewGenerator(42, 40)
	require.NoError(t, err)
	cats := gen.Generate()

	require.NoError(t, s.ReplaceCats(ctx, cats))
	require.NoError(t, s.ReplaceBreedStatistics(ctx, stats.BreedSummaries(cats)))

	runID := uuid.New()
	_, err = stats.NewAnalyzer(s.Recorder(runID), nil, stats.DefaultOptions()).Run(ctx, cats)
	require.NoError(t, err)

	return s, RunMeta{RunID: runID.String(), Seed: 42}
}

func TestWriteText(t *testing.T) {
	s, meta := seededStore(t)
	path := filepath.Join(t.TempDir(), "report.txt")

	r := NewReporter(s, nil)
	require.NoError(t, r.WriteText(context.Background(), path, meta))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	body := string(data)

	for _, want := range []string{
		"CAT BREED STATISTICAL ANALYSIS - SUMMARY REPORT",
		"KEY FINDINGS",
		"DETAILED STATISTICAL RESULTS",
		"METHODOLOGY & DATA QUALITY",
		"Longest-lived breed:",
		"Gender dimorphism:",
		"Hypertrophic Cardiomyopathy (HCM)",
		"ANOVA (breed differences)",
		meta.RunID,
	} {
		assert.Contains(t, body, want)
	}

	// 40 cats across 10 breeds.
	assert.Contains(t, body, "400 cats across 10 breeds")
}

func TestWriteText_EmptyStore(t *testing.T) {
	s, err := store.Open(":memory:")
	require.NoError(t, err)
	defer s.Close()

	r := NewReporter(s, nil)
	err = r.WriteText(context.Background(), filepath.Join(t.TempDir(), "report.txt"), RunMeta{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no records")
}

func TestWriteJSON(t *testing.T) {
	s, meta := seededStore(t)
	path := filepath.Join(t.TempDir(), "summary.json")

	r := NewReporter(s, nil)
	require.NoError(t, r.WriteJSON(context.Background(), path, meta))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var doc JSONReport
	require.NoError(t, json.Unmarshal(data, &doc))

	assert.Equal(t, "breedlab", doc.Name)
	assert.Equal(t, meta.RunID, doc.RunID)
	assert.Equal(t, uint64(42), doc.Seed)
	assert.Equal(t, 400, doc.Dataset.TotalCats)
	assert.Equal(t, 10, doc.Dataset.Breeds)
	assert.Len(t, doc.BreedStats, 10)
	assert.NotEmpty(t, doc.Findings)

	for _, f := range doc.Findings {
		assert.Equal(t, meta.RunID, f.RunID)
	}

	// Every breed row carries a sample size and timestamp.
	for _, b := range doc.BreedStats {
		assert.Equal(t, 40, b.SampleSize, b.Breed)
		assert.NotEmpty(t, b.LastUpdated, b.Breed)
	}
}

func TestReportsOverwrite(t *testing.T) {
	s, meta := seededStore(t)
	dir := t.TempDir()
	txtPath := filepath.Join(dir, FileText)
	jsonPath := filepath.Join(dir, FileJSON)

	require.NoError(t, os.WriteFile(txtPath, []byte("stale"), 0644))
	require.NoError(t, os.WriteFile(jsonPath, []byte("stale"), 0644))

	r := NewReporter(s, nil)
	require.NoError(t, r.WriteText(context.Background(), txtPath, meta))
	require.NoError(t, r.WriteJSON(context.Background(), jsonPath, meta))

	txt, err := os.ReadFile(txtPath)
	require.NoError(t, err)
	assert.False(t, strings.Contains(string(txt), "stale"))
	assert.True(t, strings.HasPrefix(string(txt), strings.Repeat("=", 78)))

	var doc JSONReport
	data, err := os.ReadFile(jsonPath)
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(data, &doc))
}
