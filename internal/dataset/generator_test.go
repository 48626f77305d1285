package dataset

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"breedlab/internal/catalog"
)

func TestGenerateShape(t *testing.T) {
	gen, err := NewGenerator(42, 55)
	if err != nil {
		t.Fatalf("NewGenerator failed: %v", err)
	}

	cats := gen.Generate()
	if len(cats) != 550 {
		t.Fatalf("expected 550 records, got %d", len(cats))
	}

	if err := Validate(cats, 55); err != nil {
		t.Fatalf("generated dataset failed validation: %v", err)
	}

	counts := BreedCounts(cats)
	for _, breed := range catalog.Names() {
		if counts[breed] != 55 {
			t.Errorf("breed %s: got %d records, want 55", breed, counts[breed])
		}
	}
}

func TestGenerateDeterministic(t *testing.T) {
	genA, err := NewGenerator(42, 20)
	if err != nil {
		t.Fatalf("NewGenerator failed: %v", err)
	}
	genB, err := NewGenerator(42, 20)
	if err != nil {
		t.Fatalf("NewGenerator failed: %v", err)
	}

	if diff := cmp.Diff(genA.Generate(), genB.Generate()); diff != "" {
		t.Errorf("same seed produced different datasets (-a +b):\n%s", diff)
	}
}

func TestGenerateSeedSensitivity(t *testing.T) {
	genA, _ := NewGenerator(1, 20)
	genB, _ := NewGenerator(2, 20)

	if diff := cmp.Diff(genA.Generate(), genB.Generate()); diff == "" {
		t.Error("different seeds produced identical datasets")
	}
}

func TestGenerateRanges(t *testing.T) {
	gen, _ := NewGenerator(7, 100)

	for _, c := range gen.Generate() {
		if c.Age < 1 {
			t.Fatalf("cat %d: age %d below floor", c.ID, c.Age)
		}
		if c.LifeExpectancy < 8 {
			t.Fatalf("cat %d: life expectancy %.1f below floor", c.ID, c.LifeExpectancy)
		}
		switch c.Gender {
		case Male:
			if c.WeightLbs < 4 {
				t.Fatalf("cat %d: male weight %.1f below floor", c.ID, c.WeightLbs)
			}
		case Female:
			if c.WeightLbs < 3 {
				t.Fatalf("cat %d: female weight %.1f below floor", c.ID, c.WeightLbs)
			}
		default:
			t.Fatalf("cat %d: unexpected gender %q", c.ID, c.Gender)
		}
	}
}

func TestNewGeneratorRejectsBadSampleSize(t *testing.T) {
	for _, n := range []int{0, -5} {
		if _, err := NewGenerator(42, n); err == nil {
			t.Errorf("expected error for per-breed size %d", n)
		}
	}
}

func TestDerivedFields(t *testing.T) {
	tests := []struct {
		name          string
		hcm, pkd, hip bool
		wantScore     int
	}{
		{"healthy", false, false, false, 10},
		{"hcm only", true, false, false, 6},
		{"pkd only", false, true, false, 7},
		{"all three", true, true, true, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ComputeHealthScore(tt.hcm, tt.pkd, tt.hip); got != tt.wantScore {
				t.Errorf("ComputeHealthScore = %d, want %d", got, tt.wantScore)
			}
		})
	}

	if got := WeightCategoryFor(7.9); got != WeightSmall {
		t.Errorf("WeightCategoryFor(7.9) = %s, want Small", got)
	}
	if got := WeightCategoryFor(12.0); got != WeightMedium {
		t.Errorf("WeightCategoryFor(12.0) = %s, want Medium", got)
	}
	if got := WeightCategoryFor(12.1); got != WeightLarge {
		t.Errorf("WeightCategoryFor(12.1) = %s, want Large", got)
	}
	if got := AgeCategoryFor(3); got != AgeYoung {
		t.Errorf("AgeCategoryFor(3) = %s, want Young", got)
	}
	if got := AgeCategoryFor(7); got != AgeAdult {
		t.Errorf("AgeCategoryFor(7) = %s, want Adult", got)
	}
	if got := AgeCategoryFor(8); got != AgeSenior {
		t.Errorf("AgeCategoryFor(8) = %s, want Senior", got)
	}
}

func TestSmallGroups(t *testing.T) {
	gen, _ := NewGenerator(42, 10)
	cats := gen.Generate()

	small := SmallGroups(cats, 30)
	if len(small) != len(catalog.Names()) {
		t.Errorf("expected all %d breeds flagged as small, got %d", len(catalog.Names()), len(small))
	}

	if small := SmallGroups(cats, 5); small != nil {
		t.Errorf("expected no small groups at threshold 5, got %v", small)
	}
}
