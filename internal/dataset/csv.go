package dataset

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
)

// csvHeader is the canonical column order for the dataset file.
var csvHeader = []string{
	"cat_id", "breed", "gender", "age", "weight_lbs", "life_expectancy",
	"has_hcm", "has_pkd", "has_hip_dysplasia",
	"vocalization_frequency", "social_interaction_need", "affection_level",
	"health_score", "total_personality_score",
	"weight_category", "age_category", "data_collection_date",
}

// WriteCSV writes the dataset to path, truncating any previous file.
func WriteCSV(path string, cats []Cat) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create dataset directory: %w", err)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create dataset file: %w", err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(csvHeader); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}

	for _, c := range cats {
		row := []string{
			strconv.Itoa(c.ID),
			c.Breed,
			c.Gender,
			strconv.Itoa(c.Age),
			strconv.FormatFloat(c.WeightLbs, 'f', 1, 64),
			strconv.FormatFloat(c.LifeExpectancy, 'f', 1, 64),
			strconv.FormatBool(c.HasHCM),
			strconv.FormatBool(c.HasPKD),
			strconv.FormatBool(c.HasHipDysplasia),
			strconv.Itoa(c.Vocalization),
			strconv.Itoa(c.SocialNeed),
			strconv.Itoa(c.Affection),
			strconv.Itoa(c.HealthScore),
			strconv.Itoa(c.TotalPersonality),
			c.WeightCategory,
			c.AgeCategory,
			c.CollectedAt,
		}
		if err := w.Write(row); err != nil {
			return fmt.Errorf("failed to write record %d: %w", c.ID, err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("failed to flush dataset: %w", err)
	}
	return nil
}

// ReadCSV loads a dataset file previously written by WriteCSV.
func ReadCSV(path string) ([]Cat, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open dataset file: %w", err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = len(csvHeader)

	rows, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read dataset: %w", err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("dataset file %s is empty", path)
	}

	cats := make([]Cat, 0, len(rows)-1)
	for i, row := range rows[1:] {
		c, err := parseRow(row)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+2, err)
		}
		cats = append(cats, c)
	}
	return cats, nil
}

func parseRow(row []string) (Cat, error) {
	var c Cat
	var err error

	if c.ID, err = strconv.Atoi(row[0]); err != nil {
		return c, fmt.Errorf("bad cat_id %q: %w", row[0], err)
	}
	c.Breed = row[1]
	c.Gender = row[2]
	if c.Age, err = strconv.Atoi(row[3]); err != nil {
		return c, fmt.Errorf("bad age %q: %w", row[3], err)
	}
	if c.WeightLbs, err = strconv.ParseFloat(row[4], 64); err != nil {
		return c, fmt.Errorf("bad weight_lbs %q: %w", row[4], err)
	}
	if c.LifeExpectancy, err = strconv.ParseFloat(row[5], 64); err != nil {
		return c, fmt.Errorf("bad life_expectancy %q: %w", row[5], err)
	}
	if c.HasHCM, err = strconv.ParseBool(row[6]); err != nil {
		return c, fmt.Errorf("bad has_hcm %q: %w", row[6], err)
	}
	if c.HasPKD, err = strconv.ParseBool(row[7]); err != nil {
		return c, fmt.Errorf("bad has_pkd %q: %w", row[7], err)
	}
	if c.HasHipDysplasia, err = strconv.ParseBool(row[8]); err != nil {
		return c, fmt.Errorf("bad has_hip_dysplasia %q: %w", row[8], err)
	}
	if c.Vocalization, err = strconv.Atoi(row[9]); err != nil {
		return c, fmt.Errorf("bad vocalization_frequency %q: %w", row[9], err)
	}
	if c.SocialNeed, err = strconv.Atoi(row[10]); err != nil {
		return c, fmt.Errorf("bad social_interaction_need %q: %w", row[10], err)
	}
	if c.Affection, err = strconv.Atoi(row[11]); err != nil {
		return c, fmt.Errorf("bad affection_level %q: %w", row[11], err)
	}
	if c.HealthScore, err = strconv.Atoi(row[12]); err != nil {
		return c, fmt.Errorf("bad health_score %q: %w", row[12], err)
	}
	if c.TotalPersonality, err = strconv.Atoi(row[13]); err != nil {
		return c, fmt.Errorf("bad total_personality_score %q: %w", row[13], err)
	}
	c.WeightCategory = row[14]
	c.AgeCategory = row[15]
	c.CollectedAt = row[16]

	return c, nil
}
