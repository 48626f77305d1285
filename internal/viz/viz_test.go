package viz

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"breedlab/internal/dataset"
	"breedlab/internal/stats"
)

var pngMagic = []byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1a, '\n'}

func analyzed(t *testing.T) ([]dataset.Cat, *stats.Results) {
	t.Helper()
	gen, err := dataset.NewGenerator(42, 30)
	require.NoError(t, err)
	cats := gen.Generate()

	res, err := stats.NewAnalyzer(nil, nil, stats.DefaultOptions()).Run(context.Background(), cats)
	require.NoError(t, err)
	return cats, res
}

func TestRenderAll(t *testing.T) {
	cats, res := analyzed(t)
	dir := filepath.Join(t.TempDir(), "results")

	r := NewRenderer(dir, 10, 6, nil)
	written, err := r.RenderAll(cats, res)
	require.NoError(t, err)
	require.Len(t, written, 6)

	wantFiles := []string{
		FileLifeExpectancy, FileWeightByGender, FileHealthHeatmap,
		FileCorrelationHeatmap, FileANOVASummary, FileGenderDifferences,
	}
	for i, name := range wantFiles {
		assert.Equal(t, filepath.Join(dir, name), written[i])

		data, err := os.ReadFile(written[i])
		require.NoError(t, err, name)
		require.Greater(t, len(data), len(pngMagic), name)
		assert.True(t, bytes.HasPrefix(data, pngMagic), "%s is not a PNG", name)
	}
}

func TestRenderAllOverwrites(t *testing.T) {
	cats, res := analyzed(t)
	dir := t.TempDir()

	stale := filepath.Join(dir, FileLifeExpectancy)
	require.NoError(t, os.WriteFile(stale, []byte("stale"), 0644))

	r := NewRenderer(dir, 8, 5, nil)
	_, err := r.RenderAll(cats, res)
	require.NoError(t, err)

	data, err := os.ReadFile(stale)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(data, pngMagic), "rerun did not overwrite stale chart")
}
