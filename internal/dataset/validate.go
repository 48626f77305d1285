package dataset

import (
	"fmt"

	"breedlab/internal/catalog"
)

// Validate checks the dataset against its structural contract: exactly
// perBreed records for every registered breed, sequential ids, no missing
// values, valid ranges, and derived columns consistent with the raw ones.
func Validate(cats []Cat, perBreed int) error {
	breeds := catalog.Names()
	want := len(breeds) * perBreed
	if len(cats) != want {
		return fmt.Errorf("expected %d records (%d breeds x %d), got %d", want, len(breeds), perBreed, len(cats))
	}

	counts := BreedCounts(cats)
	for _, breed := range breeds {
		if counts[breed] != perBreed {
			return fmt.Errorf("breed %s has %d records, expected %d", breed, counts[breed], perBreed)
		}
	}
	if len(counts) != len(breeds) {
		return fmt.Errorf("dataset contains %d distinct breeds, expected %d", len(counts), len(breeds))
	}

	for i, c := range cats {
		if c.ID != i+1 {
			return fmt.Errorf("record %d: id %d is not sequential", i, c.ID)
		}
		if err := validateRecord(c); err != nil {
			return fmt.Errorf("record %d: %w", c.ID, err)
		}
	}
	return nil
}

func validateRecord(c Cat) error {
	if c.Breed == "" || c.Gender == "" || c.WeightCategory == "" || c.AgeCategory == "" || c.CollectedAt == "" {
		return fmt.Errorf("missing value in record")
	}
	if c.Gender != Male && c.Gender != Female {
		return fmt.Errorf("invalid gender %q", c.Gender)
	}
	if c.Age < minAge {
		return fmt.Errorf("age %d below minimum %d", c.Age, minAge)
	}
	if c.LifeExpectancy < minLifeExpectancy {
		return fmt.Errorf("life expectancy %.1f below minimum %.1f", c.LifeExpectancy, minLifeExpectancy)
	}
	if c.WeightLbs < minFemaleWeight {
		return fmt.Errorf("weight %.1f below minimum %.1f", c.WeightLbs, minFemaleWeight)
	}
	if c.Vocalization < catalog.VocalizationLow || c.Vocalization > catalog.VocalizationHigh {
		return fmt.Errorf("vocalization score %d out of scale", c.Vocalization)
	}
	if c.SocialNeed < catalog.SocialIndependent || c.SocialNeed > catalog.SocialHigh {
		return fmt.Errorf("social need score %d out of scale", c.SocialNeed)
	}
	if c.Affection < catalog.AffectionAloof || c.Affection > catalog.AffectionDogLike {
		return fmt.Errorf("affection score %d out of scale", c.Affection)
	}

	if want := ComputeHealthScore(c.HasHCM, c.HasPKD, c.HasHipDysplasia); c.HealthScore != want {
		return fmt.Errorf("health score %d inconsistent with conditions (want %d)", c.HealthScore, want)
	}
	if want := c.Vocalization + c.SocialNeed + c.Affection; c.TotalPersonality != want {
		return fmt.Errorf("total personality score %d inconsistent (want %d)", c.TotalPersonality, want)
	}
	if want := WeightCategoryFor(c.WeightLbs); c.WeightCategory != want {
		return fmt.Errorf("weight category %q inconsistent (want %q)", c.WeightCategory, want)
	}
	if want := AgeCategoryFor(c.Age); c.AgeCategory != want {
		return fmt.Errorf("age category %q inconsistent (want %q)", c.AgeCategory, want)
	}
	return nil
}

// SmallGroups returns the breeds whose record count falls below min.
// Undersized groups weaken the inferential tests, so callers surface these
// as warnings rather than errors.
func SmallGroups(cats []Cat, min int) []string {
	counts := BreedCounts(cats)
	var small []string
	for _, breed := range catalog.Names() {
		if n, ok := counts[breed]; ok && n < min {
			small = append(small, breed)
		}
	}
	return small
}
