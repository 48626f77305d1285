package pipeline

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"breedlab/internal/config"
	"breedlab/internal/dataset"
	"breedlab/internal/report"
	"breedlab/internal/store"
	"breedlab/internal/viz"
)

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	dir := t.TempDir()

	cfg := config.DefaultConfig()
	cfg.Dataset.CatsPerBreed = 35
	cfg.Dataset.CSVPath = filepath.Join(dir, "data", "cats.csv")
	cfg.Database.Path = filepath.Join(dir, "data", "cats.db")
	cfg.Output.ResultsDir = filepath.Join(dir, "results")
	cfg.Output.ChartWidth = 8
	cfg.Output.ChartHeight = 5
	return cfg
}

func TestPipeline_Run(t *testing.T) {
	cfg := testConfig(t)
	ctx := context.Background()

	out, err := New(cfg, nil).Run(ctx)
	require.NoError(t, err)

	assert.Equal(t, 350, out.Cats)
	assert.NotEqual(t, uuid.Nil, out.RunID)
	assert.Greater(t, out.FindingsSaved, 0)
	assert.Len(t, out.Charts, 6)
	assert.Len(t, out.Reports, 2)

	// Artifacts exist on disk.
	for _, path := range append(out.Charts, out.Reports...) {
		_, err := os.Stat(path)
		assert.NoError(t, err, path)
	}
	_, err = os.Stat(cfg.Dataset.CSVPath)
	assert.NoError(t, err)

	// CSV matches what was persisted.
	fromCSV, err := dataset.ReadCSV(cfg.Dataset.CSVPath)
	require.NoError(t, err)
	assert.Len(t, fromCSV, 350)

	s, err := store.Open(cfg.Database.Path)
	require.NoError(t, err)
	defer s.Close()

	counts, err := s.TableCounts(ctx)
	require.NoError(t, err)
	assert.Equal(t, 350, counts["cats"])
	assert.Equal(t, 10, counts["breed_statistics"])
	assert.Equal(t, out.FindingsSaved, counts["analysis_results"])

	// Every finding belongs to this run.
	results, err := s.AnalysisResultsForRun(ctx, out.RunID)
	require.NoError(t, err)
	assert.Len(t, results, out.FindingsSaved)
}

func TestPipeline_RerunReplacesFindings(t *testing.T) {
	cfg := testConfig(t)
	ctx := context.Background()
	p := New(cfg, nil)

	first, err := p.Run(ctx)
	require.NoError(t, err)
	second, err := p.Run(ctx)
	require.NoError(t, err)

	assert.NotEqual(t, first.RunID, second.RunID)
	// Same data and options, so the same battery persists the same count.
	assert.Equal(t, first.FindingsSaved, second.FindingsSaved)

	s, err := store.Open(cfg.Database.Path)
	require.NoError(t, err)
	defer s.Close()

	counts, err := s.TableCounts(ctx)
	require.NoError(t, err)
	assert.Equal(t, second.FindingsSaved, counts["analysis_results"],
		"rerun should replace findings, not append")
}

func TestPipeline_StagesSeparately(t *testing.T) {
	cfg := testConfig(t)
	ctx := context.Background()
	p := New(cfg, nil)

	cats, err := p.Generate(ctx)
	require.NoError(t, err)
	require.Len(t, cats, 350)

	res, runID, err := p.Analyze(ctx)
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, runID)
	assert.Greater(t, res.FindingsSaved, 0)

	charts, err := p.Visualize(ctx)
	require.NoError(t, err)
	assert.Len(t, charts, 6)

	reports, err := p.Report(ctx)
	require.NoError(t, err)
	require.Len(t, reports, 2)
	assert.Equal(t, filepath.Join(cfg.Output.ResultsDir, report.FileText), reports[0])
	assert.Equal(t, filepath.Join(cfg.Output.ResultsDir, viz.FileLifeExpectancy), charts[0])
}

func TestPipeline_AnalyzeWithoutData(t *testing.T) {
	cfg := testConfig(t)

	_, _, err := New(cfg, nil).Analyze(context.Background())
	require.Error(t, err)
}

func TestPipeline_VisualizeWithoutData(t *testing.T) {
	cfg := testConfig(t)

	_, err := New(cfg, nil).Visualize(context.Background())
	require.Error(t, err)
}
