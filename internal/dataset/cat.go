// Package dataset defines the synthetic cat record type and implements
// generation, CSV persistence, and validation of the flat trait table.
package dataset

// Gender values used throughout the dataset.
const (
	Male   = "Male"
	Female = "Female"
)

// Weight and age category labels, derived from the numeric columns.
const (
	WeightSmall  = "Small"  // <= 8 lbs
	WeightMedium = "Medium" // 8-12 lbs
	WeightLarge  = "Large"  // > 12 lbs

	AgeYoung  = "Young"  // <= 3 years
	AgeAdult  = "Adult"  // 4-7 years
	AgeSenior = "Senior" // > 7 years
)

// Cat is one synthetic record: a single simulated animal with health
// measurements, ordinal personality scores, and derived aggregate fields.
// Field order matches the cats table and the CSV column order.
type Cat struct {
	ID              int
	Breed           string
	Gender          string
	Age             int
	WeightLbs       float64
	LifeExpectancy  float64
	HasHCM          bool
	HasPKD          bool
	HasHipDysplasia bool

	// Ordinal personality scores.
	Vocalization int // 1=Low 2=Moderate 3=High
	SocialNeed   int // 1=Independent 2=Moderate 3=High
	Affection    int // 1=Aloof 2=Moderate 3=Lap-sitter 4=Dog-like

	// Derived fields.
	HealthScore      int
	TotalPersonality int
	WeightCategory   string
	AgeCategory      string

	CollectedAt string // YYYY-MM-DD
}

// ComputeHealthScore derives the 0-10 health score from condition flags.
// HCM weighs heaviest (cardiac), the other two conditions weigh equally.
func ComputeHealthScore(hcm, pkd, hip bool) int {
	score := 10
	if hcm {
		score -= 4
	}
	if pkd {
		score -= 3
	}
	if hip {
		score -= 3
	}
	return score
}

// WeightCategoryFor buckets a weight in pounds into Small/Medium/Large.
func WeightCategoryFor(weightLbs float64) string {
	switch {
	case weightLbs <= 8:
		return WeightSmall
	case weightLbs <= 12:
		return WeightMedium
	default:
		return WeightLarge
	}
}

// AgeCategoryFor buckets an age in years into Young/Adult/Senior.
func AgeCategoryFor(age int) string {
	switch {
	case age <= 3:
		return AgeYoung
	case age <= 7:
		return AgeAdult
	default:
		return AgeSenior
	}
}

// deriveFields fills in the calculated columns from the raw ones.
func (c *Cat) deriveFields() {
	c.HealthScore = ComputeHealthScore(c.HasHCM, c.HasPKD, c.HasHipDysplasia)
	c.TotalPersonality = c.Vocalization + c.SocialNeed + c.Affection
	c.WeightCategory = WeightCategoryFor(c.WeightLbs)
	c.AgeCategory = AgeCategoryFor(c.Age)
}

// BreedCounts tallies records per breed.
func BreedCounts(cats []Cat) map[string]int {
	counts := make(map[string]int)
	for _, c := range cats {
		counts[c.Breed]++
	}
	return counts
}
