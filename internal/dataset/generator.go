package dataset

import (
	"fmt"
	"math"
	"time"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/distuv"

	"breedlab/internal/catalog"
)

// Floors applied after sampling so every record stays in a realistic range.
const (
	minAge            = 1
	minLifeExpectancy = 8.0
	minMaleWeight     = 4.0
	minFemaleWeight   = 3.0

	ageMean = 6.0
	ageStd  = 2.5
)

// Generator produces the synthetic dataset. All randomness flows through a
// single seeded source, so a fixed seed yields an identical dataset.
type Generator struct {
	perBreed    int
	src         rand.Source
	rng         *rand.Rand
	collectedAt string
}

// NewGenerator returns a generator drawing perBreed records for each
// registered breed from the given seed.
func NewGenerator(seed uint64, perBreed int) (*Generator, error) {
	if perBreed <= 0 {
		return nil, fmt.Errorf("per-breed sample size must be positive, got %d", perBreed)
	}
	src := rand.NewSource(seed)
	return &Generator{
		perBreed:    perBreed,
		src:         src,
		rng:         rand.New(src),
		collectedAt: time.Now().Format("2006-01-02"),
	}, nil
}

// Generate draws the full table: len(catalog.Profiles()) * perBreed records
// with sequential ids and every column populated.
func (g *Generator) Generate() []Cat {
	profiles := catalog.Profiles()
	cats := make([]Cat, 0, len(profiles)*g.perBreed)

	for _, p := range profiles {
		lifespan := distuv.Normal{Mu: p.LifespanMean, Sigma: p.LifespanStd, Src: g.src}
		maleWeight := distuv.Normal{Mu: p.MaleWeightMean, Sigma: p.MaleWeightStd, Src: g.src}
		femaleWeight := distuv.Normal{Mu: p.FemaleWeightMean, Sigma: p.FemaleWeightStd, Src: g.src}
		age := distuv.Normal{Mu: ageMean, Sigma: ageStd, Src: g.src}
		hcm := distuv.Bernoulli{P: p.HCMPrevalence, Src: g.src}
		pkd := distuv.Bernoulli{P: p.PKDPrevalence, Src: g.src}
		hip := distuv.Bernoulli{P: p.HipDysplasiaPrevalence, Src: g.src}

		for i := 0; i < g.perBreed; i++ {
			c := Cat{
				ID:          len(cats) + 1,
				Breed:       p.Name,
				CollectedAt: g.collectedAt,
			}

			if g.rng.Intn(2) == 0 {
				c.Gender = Male
				c.WeightLbs = roundTenth(math.Max(minMaleWeight, maleWeight.Rand()))
			} else {
				c.Gender = Female
				c.WeightLbs = roundTenth(math.Max(minFemaleWeight, femaleWeight.Rand()))
			}

			c.Age = maxInt(minAge, int(age.Rand()))
			c.LifeExpectancy = roundTenth(math.Max(minLifeExpectancy, lifespan.Rand()))

			c.HasHCM = hcm.Rand() == 1
			c.HasPKD = pkd.Rand() == 1
			c.HasHipDysplasia = hip.Rand() == 1

			// Individual variation: jitter each ordinal by -1/0/+1,
			// then clip back to its scale.
			c.Vocalization = clip(p.Vocalization+g.jitter(), catalog.VocalizationLow, catalog.VocalizationHigh)
			c.SocialNeed = clip(p.SocialNeed+g.jitter(), catalog.SocialIndependent, catalog.SocialHigh)
			c.Affection = clip(p.Affection+g.jitter(), catalog.AffectionAloof, catalog.AffectionDogLike)

			c.deriveFields()
			cats = append(cats, c)
		}
	}

	return cats
}

func (g *Generator) jitter() int {
	return g.rng.Intn(3) - 1
}

func roundTenth(v float64) float64 {
	return math.Round(v*10) / 10
}

func clip(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
