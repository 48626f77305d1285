// Package pipeline orchestrates the end-to-end run: generation, persistence,
// analysis, charts, and reports.
package pipeline

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"breedlab/internal/config"
	"breedlab/internal/dataset"
	"breedlab/internal/report"
	"breedlab/internal/stats"
	"breedlab/internal/store"
	"breedlab/internal/viz"
)

// Pipeline runs the stages described by a configuration.
type Pipeline struct {
	cfg *config.Config
	log *zap.Logger
}

// New wires a pipeline. A nil logger disables logging.
func New(cfg *config.Config, log *zap.Logger) *Pipeline {
	if log == nil {
		log = zap.NewNop()
	}
	return &Pipeline{cfg: cfg, log: log}
}

// Outcome summarizes a full run.
type Outcome struct {
	RunID         uuid.UUID
	Cats          int
	FindingsSaved int
	Charts        []string
	Reports       []string
	Elapsed       time.Duration
}

// Run executes every stage in order. Artifacts from prior runs are
// overwritten; analysis findings are replaced under a fresh run id.
func (p *Pipeline) Run(ctx context.Context) (*Outcome, error) {
	started := time.Now()

	cats, err := p.Generate(ctx)
	if err != nil {
		return nil, err
	}

	s, err := p.openStore()
	if err != nil {
		return nil, err
	}
	defer s.Close()

	res, runID, err := p.analyze(ctx, s, cats)
	if err != nil {
		return nil, err
	}

	charts, err := p.render(cats, res)
	if err != nil {
		return nil, err
	}

	reports, err := p.report(ctx, s, runID)
	if err != nil {
		return nil, err
	}

	out := &Outcome{
		RunID:         runID,
		Cats:          len(cats),
		FindingsSaved: res.FindingsSaved,
		Charts:        charts,
		Reports:       reports,
		Elapsed:       time.Since(started),
	}
	p.log.Info("pipeline complete",
		zap.String("run_id", runID.String()),
		zap.Int("cats", out.Cats),
		zap.Int("findings_saved", out.FindingsSaved),
		zap.Duration("elapsed", out.Elapsed))
	return out, nil
}

// Generate builds the synthetic dataset, validates it, and persists it to
// CSV and the database (raw records plus per-breed aggregates).
func (p *Pipeline) Generate(ctx context.Context) ([]dataset.Cat, error) {
	started := time.Now()

	gen, err := dataset.NewGenerator(p.cfg.Dataset.Seed, p.cfg.Dataset.CatsPerBreed)
	if err != nil {
		return nil, err
	}
	cats := gen.Generate()

	if err := dataset.Validate(cats, p.cfg.Dataset.CatsPerBreed); err != nil {
		return nil, fmt.Errorf("generated dataset failed validation: %w", err)
	}

	if err := dataset.WriteCSV(p.cfg.Dataset.CSVPath, cats); err != nil {
		return nil, err
	}

	s, err := p.openStore()
	if err != nil {
		return nil, err
	}
	defer s.Close()

	if err := s.ReplaceCats(ctx, cats); err != nil {
		return nil, err
	}
	if err := s.ReplaceBreedStatistics(ctx, stats.BreedSummaries(cats)); err != nil {
		return nil, err
	}

	p.log.Info("dataset generated",
		zap.Int("cats", len(cats)),
		zap.Uint64("seed", p.cfg.Dataset.Seed),
		zap.String("csv", p.cfg.Dataset.CSVPath),
		zap.String("db", p.cfg.Database.Path),
		zap.Duration("elapsed", time.Since(started)))
	return cats, nil
}

// Analyze loads the persisted dataset and runs the statistical battery,
// replacing prior findings under a fresh run id.
func (p *Pipeline) Analyze(ctx context.Context) (*stats.Results, uuid.UUID, error) {
	s, err := p.openStore()
	if err != nil {
		return nil, uuid.Nil, err
	}
	defer s.Close()

	cats, err := s.Cats(ctx)
	if err != nil {
		return nil, uuid.Nil, err
	}
	res, runID, err := p.analyze(ctx, s, cats)
	if err != nil {
		return nil, uuid.Nil, err
	}
	return res, runID, nil
}

func (p *Pipeline) analyze(ctx context.Context, s *store.Store, cats []dataset.Cat) (*stats.Results, uuid.UUID, error) {
	started := time.Now()

	if err := s.ClearResults(ctx); err != nil {
		return nil, uuid.Nil, err
	}

	runID := uuid.New()
	analyzer := stats.NewAnalyzer(s.Recorder(runID), p.log, p.analysisOptions())
	res, err := analyzer.Run(ctx, cats)
	if err != nil {
		return nil, uuid.Nil, err
	}

	p.log.Info("analysis complete",
		zap.String("run_id", runID.String()),
		zap.Int("findings_saved", res.FindingsSaved),
		zap.Duration("elapsed", time.Since(started)))
	return res, runID, nil
}

// Visualize loads the persisted dataset, recomputes the battery without
// persisting findings, and renders the chart set.
func (p *Pipeline) Visualize(ctx context.Context) ([]string, error) {
	s, err := p.openStore()
	if err != nil {
		return nil, err
	}
	defer s.Close()

	cats, err := s.Cats(ctx)
	if err != nil {
		return nil, err
	}
	if len(cats) == 0 {
		return nil, fmt.Errorf("no records in database; run generate first")
	}

	res, err := stats.NewAnalyzer(nil, p.log, p.analysisOptions()).Run(ctx, cats)
	if err != nil {
		return nil, err
	}
	return p.render(cats, res)
}

func (p *Pipeline) render(cats []dataset.Cat, res *stats.Results) ([]string, error) {
	started := time.Now()

	r := viz.NewRenderer(p.cfg.Output.ResultsDir, p.cfg.Output.ChartWidth, p.cfg.Output.ChartHeight, p.log)
	charts, err := r.RenderAll(cats, res)
	if err != nil {
		return nil, err
	}

	p.log.Info("charts rendered",
		zap.Int("count", len(charts)),
		zap.String("dir", p.cfg.Output.ResultsDir),
		zap.Duration("elapsed", time.Since(started)))
	return charts, nil
}

// Report writes the text and JSON reports from whatever the store holds.
func (p *Pipeline) Report(ctx context.Context) ([]string, error) {
	s, err := p.openStore()
	if err != nil {
		return nil, err
	}
	defer s.Close()

	runID, err := latestRunID(ctx, s)
	if err != nil {
		return nil, err
	}
	return p.report(ctx, s, runID)
}

func (p *Pipeline) report(ctx context.Context, s *store.Store, runID uuid.UUID) ([]string, error) {
	started := time.Now()

	meta := report.RunMeta{RunID: runID.String(), Seed: p.cfg.Dataset.Seed}
	r := report.NewReporter(s, p.log)

	txtPath := filepath.Join(p.cfg.Output.ResultsDir, report.FileText)
	if err := r.WriteText(ctx, txtPath, meta); err != nil {
		return nil, err
	}
	jsonPath := filepath.Join(p.cfg.Output.ResultsDir, report.FileJSON)
	if err := r.WriteJSON(ctx, jsonPath, meta); err != nil {
		return nil, err
	}

	p.log.Info("reports written",
		zap.String("text", txtPath),
		zap.String("json", jsonPath),
		zap.Duration("elapsed", time.Since(started)))
	return []string{txtPath, jsonPath}, nil
}

func (p *Pipeline) openStore() (*store.Store, error) {
	return store.Open(p.cfg.Database.Path)
}

func (p *Pipeline) analysisOptions() stats.Options {
	return stats.Options{
		Alpha:                p.cfg.Analysis.Alpha,
		MinGroupSize:         p.cfg.Analysis.MinGroupSize,
		CorrelationThreshold: p.cfg.Analysis.CorrelationThreshold,
	}
}

// latestRunID returns the run id of the newest persisted finding, or
// uuid.Nil when no findings exist.
func latestRunID(ctx context.Context, s *store.Store) (uuid.UUID, error) {
	results, err := s.AnalysisResults(ctx)
	if err != nil {
		return uuid.Nil, err
	}
	if len(results) == 0 {
		return uuid.Nil, nil
	}
	id, err := uuid.Parse(results[len(results)-1].RunID)
	if err != nil {
		return uuid.Nil, fmt.Errorf("malformed run id in analysis_results: %w", err)
	}
	return id, nil
}
