// Package viz renders the analysis charts to PNG files with gonum/plot.
package viz

import (
	"fmt"
	"image/color"
	"math"
	"os"
	"path/filepath"

	"go.uber.org/zap"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/palette"
	"gonum.org/v1/plot/palette/moreland"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"breedlab/internal/catalog"
	"breedlab/internal/dataset"
	"breedlab/internal/stats"
)

// Chart file names written under the results directory.
const (
	FileLifeExpectancy     = "life_expectancy_by_breed.png"
	FileWeightByGender     = "weight_by_breed_gender.png"
	FileHealthHeatmap      = "health_conditions_heatmap.png"
	FileCorrelationHeatmap = "correlation_heatmap.png"
	FileANOVASummary       = "anova_results_summary.png"
	FileGenderDifferences  = "gender_differences.png"
)

var (
	maleColor   = color.RGBA{R: 68, G: 119, B: 170, A: 255}
	femaleColor = color.RGBA{R: 204, G: 102, B: 119, A: 255}
	barColor    = color.RGBA{R: 34, G: 136, B: 51, A: 255}
)

// Renderer writes the chart set for one analysis run.
type Renderer struct {
	dir    string
	width  vg.Length
	height vg.Length
	log    *zap.Logger
}

// NewRenderer builds a renderer targeting dir with charts of the given size
// in inches. A nil logger disables logging.
func NewRenderer(dir string, widthInches, heightInches float64, log *zap.Logger) *Renderer {
	if log == nil {
		log = zap.NewNop()
	}
	return &Renderer{
		dir:    dir,
		width:  vg.Length(widthInches) * vg.Inch,
		height: vg.Length(heightInches) * vg.Inch,
		log:    log,
	}
}

// RenderAll writes every chart, overwriting prior files, and returns the
// paths written.
func (r *Renderer) RenderAll(cats []dataset.Cat, res *stats.Results) ([]string, error) {
	if err := os.MkdirAll(r.dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create results directory: %w", err)
	}

	charts := []struct {
		file   string
		render func(string, []dataset.Cat, *stats.Results) error
	}{
		{FileLifeExpectancy, r.lifeExpectancyChart},
		{FileWeightByGender, r.weightByGenderChart},
		{FileHealthHeatmap, r.healthHeatmap},
		{FileCorrelationHeatmap, r.correlationHeatmap},
		{FileANOVASummary, r.anovaSummaryChart},
		{FileGenderDifferences, r.genderDifferencesChart},
	}

	var written []string
	for _, c := range charts {
		path := filepath.Join(r.dir, c.file)
		if err := c.render(path, cats, res); err != nil {
			return written, fmt.Errorf("failed to render %s: %w", c.file, err)
		}
		r.log.Debug("chart written", zap.String("path", path))
		written = append(written, path)
	}
	return written, nil
}

// lifeExpectancyChart draws one box plot per breed.
func (r *Renderer) lifeExpectancyChart(path string, cats []dataset.Cat, _ *stats.Results) error {
	p := plot.New()
	p.Title.Text = "Life Expectancy by Breed"
	p.Y.Label.Text = "Life Expectancy (years)"

	byBreed := groupByBreed(cats)
	names := presentBreeds(byBreed)

	for i, breed := range names {
		values := make(plotter.Values, 0, len(byBreed[breed]))
		for _, c := range byBreed[breed] {
			values = append(values, c.LifeExpectancy)
		}
		box, err := plotter.NewBoxPlot(vg.Points(24), float64(i), values)
		if err != nil {
			return err
		}
		p.Add(box)
	}

	p.NominalX(names...)
	rotateXLabels(p)
	return p.Save(r.width, r.height, path)
}

// weightByGenderChart draws grouped bars of mean weight per breed and sex.
func (r *Renderer) weightByGenderChart(path string, cats []dataset.Cat, _ *stats.Results) error {
	p := plot.New()
	p.Title.Text = "Mean Weight by Breed and Gender"
	p.Y.Label.Text = "Weight (lbs)"

	byBreed := groupByBreed(cats)
	names := presentBreeds(byBreed)

	maleMeans := make(plotter.Values, len(names))
	femaleMeans := make(plotter.Values, len(names))
	for i, breed := range names {
		var maleSum, femaleSum float64
		var maleN, femaleN int
		for _, c := range byBreed[breed] {
			if c.Gender == dataset.Male {
				maleSum += c.WeightLbs
				maleN++
			} else {
				femaleSum += c.WeightLbs
				femaleN++
			}
		}
		if maleN > 0 {
			maleMeans[i] = maleSum / float64(maleN)
		}
		if femaleN > 0 {
			femaleMeans[i] = femaleSum / float64(femaleN)
		}
	}

	w := vg.Points(12)
	maleBars, err := plotter.NewBarChart(maleMeans, w)
	if err != nil {
		return err
	}
	maleBars.Color = maleColor
	maleBars.Offset = -w / 2

	femaleBars, err := plotter.NewBarChart(femaleMeans, w)
	if err != nil {
		return err
	}
	femaleBars.Color = femaleColor
	femaleBars.Offset = w / 2

	p.Add(maleBars, femaleBars)
	p.Legend.Add("Male", maleBars)
	p.Legend.Add("Female", femaleBars)
	p.Legend.Top = true
	p.NominalX(names...)
	rotateXLabels(p)
	return p.Save(r.width, r.height, path)
}

// healthHeatmap draws condition prevalence (percent) per breed.
func (r *Renderer) healthHeatmap(path string, cats []dataset.Cat, res *stats.Results) error {
	summaries := res.BreedSummaries
	if summaries == nil {
		summaries = stats.BreedSummaries(cats)
	}

	data := make([][]float64, len(summaries))
	rowLabels := make([]string, len(summaries))
	for i, b := range summaries {
		data[i] = []float64{
			100 * b.HCMPrevalence,
			100 * b.PKDPrevalence,
			100 * b.HipDysplasiaPrevalence,
		}
		rowLabels[i] = b.Breed
	}

	p := plot.New()
	p.Title.Text = "Health Condition Prevalence by Breed (%)"

	h := plotter.NewHeatMap(&matrixGrid{data: data}, palette.Heat(12, 1))
	p.Add(h)

	setTicks(&p.X, []string{"HCM", "PKD", "Hip Dysplasia"})
	setTicks(&p.Y, rowLabels)
	return p.Save(r.width, r.height, path)
}

// correlationHeatmap draws the Pearson matrix over the numeric variables.
func (r *Renderer) correlationHeatmap(path string, cats []dataset.Cat, _ *stats.Results) error {
	names := stats.CorrelationVars
	columns := make([][]float64, len(names))
	for i, name := range names {
		col, err := stats.Column(cats, name)
		if err != nil {
			return err
		}
		columns[i] = col
	}

	m, err := stats.CorrelationMatrix(names, columns)
	if err != nil {
		return err
	}

	p := plot.New()
	p.Title.Text = "Correlation Matrix"

	cm := moreland.SmoothBlueRed()
	cm.SetMin(-1)
	cm.SetMax(1)
	h := plotter.NewHeatMap(&matrixGrid{data: m}, cm.Palette(255))
	h.Min, h.Max = -1, 1
	p.Add(h)

	setTicks(&p.X, names)
	setTicks(&p.Y, names)
	rotateXLabels(p)
	return p.Save(r.width, r.height, path)
}

// anovaSummaryChart draws eta-squared effect sizes per tested variable.
func (r *Renderer) anovaSummaryChart(path string, _ []dataset.Cat, res *stats.Results) error {
	p := plot.New()
	p.Title.Text = "Breed Differences: ANOVA Effect Sizes"
	p.Y.Label.Text = "Eta-squared"

	values := make(plotter.Values, len(stats.ContinuousVars))
	for i, name := range stats.ContinuousVars {
		values[i] = res.ANOVA[name].EtaSquared
	}

	bars, err := plotter.NewBarChart(values, vg.Points(28))
	if err != nil {
		return err
	}
	bars.Color = barColor
	p.Add(bars)
	p.NominalX(stats.ContinuousVars...)
	rotateXLabels(p)
	return p.Save(r.width, r.height, path)
}

// genderDifferencesChart draws Cohen's d per tested variable.
func (r *Renderer) genderDifferencesChart(path string, _ []dataset.Cat, res *stats.Results) error {
	p := plot.New()
	p.Title.Text = "Gender Differences: Cohen's d (Male - Female)"
	p.Y.Label.Text = "Cohen's d"

	values := make(plotter.Values, len(stats.ContinuousVars))
	for i, name := range stats.ContinuousVars {
		values[i] = res.GenderTests[name].CohensD
	}

	bars, err := plotter.NewBarChart(values, vg.Points(28))
	if err != nil {
		return err
	}
	bars.Color = maleColor
	p.Add(bars)
	p.NominalX(stats.ContinuousVars...)
	rotateXLabels(p)
	return p.Save(r.width, r.height, path)
}

// matrixGrid adapts a row-major matrix to plotter.GridXYZ. Row 0 is drawn at
// the bottom of the heatmap.
type matrixGrid struct {
	data [][]float64
}

func (g *matrixGrid) Dims() (c, r int) {
	if len(g.data) == 0 {
		return 0, 0
	}
	return len(g.data[0]), len(g.data)
}

func (g *matrixGrid) Z(c, r int) float64 { return g.data[r][c] }
func (g *matrixGrid) X(c int) float64    { return float64(c) }
func (g *matrixGrid) Y(r int) float64    { return float64(r) }

func setTicks(axis *plot.Axis, labels []string) {
	ticks := make([]plot.Tick, len(labels))
	for i, l := range labels {
		ticks[i] = plot.Tick{Value: float64(i), Label: l}
	}
	axis.Tick.Marker = plot.ConstantTicks(ticks)
}

func rotateXLabels(p *plot.Plot) {
	p.X.Tick.Label.Rotation = math.Pi / 4
	p.X.Tick.Label.XAlign = draw.XRight
	p.X.Tick.Label.YAlign = draw.YCenter
}

func groupByBreed(cats []dataset.Cat) map[string][]dataset.Cat {
	byBreed := make(map[string][]dataset.Cat)
	for _, c := range cats {
		byBreed[c.Breed] = append(byBreed[c.Breed], c)
	}
	return byBreed
}

func presentBreeds(byBreed map[string][]dataset.Cat) []string {
	var names []string
	for _, breed := range catalog.Names() {
		if len(byBreed[breed]) > 0 {
			names = append(names, breed)
		}
	}
	return names
}
