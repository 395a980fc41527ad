package db

import (
	"context"
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"truth-or-dare/internal/game"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"
	"gorm.io/gorm"
)

// maxSeedPromptLength matches the questions.prompt column.
const maxSeedPromptLength = 280

// SeedQuestion is one global question read from a seed file.
type SeedQuestion struct {
	Type   string `yaml:"type"`
	Rating string `yaml:"rating"`
	Prompt string `yaml:"prompt"`
}

type seedFile struct {
	Questions []SeedQuestion `yaml:"questions"`
}

// ReadSeedFile reads a CSV (type,rating,prompt with a header row) or YAML
// seed file, chosen by extension. Rows with an unknown type or rating, or
// an empty or over-long prompt, are skipped.
func ReadSeedFile(path string) ([]SeedQuestion, error) {
	var (
		seeds []SeedQuestion
		err   error
	)
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		seeds, err = readSeedYAML(path)
	case ".csv":
		seeds, err = readSeedCSV(path)
	default:
		return nil, fmt.Errorf("unsupported seed file %q", path)
	}
	if err != nil {
		return nil, err
	}
	valid := seeds[:0]
	for _, seed := range seeds {
		if clean, ok := seed.normalize(); ok {
			valid = append(valid, clean)
		}
	}
	return valid, nil
}

func readSeedCSV(path string) ([]SeedQuestion, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.TrimLeadingSpace = true
	reader.FieldsPerRecord = -1
	rows, err := reader.ReadAll()
	if err != nil {
		return nil, err
	}

	var seeds []SeedQuestion
	for i, row := range rows {
		if i == 0 || len(row) < 3 {
			continue
		}
		seeds = append(seeds, SeedQuestion{Type: row[0], Rating: row[1], Prompt: row[2]})
	}
	return seeds, nil
}

func readSeedYAML(path string) ([]SeedQuestion, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var file seedFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return file.Questions, nil
}

func (s SeedQuestion) normalize() (SeedQuestion, bool) {
	questionType := game.ParseQuestionType(s.Type)
	rating, ok := game.ParseRating(s.Rating)
	prompt := strings.TrimSpace(s.Prompt)
	if !questionType.Valid() || !ok || prompt == "" || len([]rune(prompt)) > maxSeedPromptLength {
		return SeedQuestion{}, false
	}
	return SeedQuestion{Type: string(questionType), Rating: string(rating), Prompt: prompt}, true
}

// LoadSeedQuestions inserts seeds as global questions, skipping invalid
// ones and any that already exist with the same prompt, type and rating.
func LoadSeedQuestions(ctx context.Context, conn *gorm.DB, seeds []SeedQuestion) (int, error) {
	if conn == nil {
		return 0, ErrNilConnection
	}
	inserted := 0
	for _, raw := range seeds {
		seed, ok := raw.normalize()
		if !ok {
			continue
		}
		var count int64
		if err := conn.WithContext(ctx).Model(&Question{}).
			Where("prompt = ? AND question_type = ? AND rating = ? AND guild_id IS NULL", seed.Prompt, seed.Type, seed.Rating).
			Count(&count).Error; err != nil {
			return inserted, err
		}
		if count > 0 {
			continue
		}
		record := Question{
			UID:          uuid.NewString(),
			Prompt:       seed.Prompt,
			QuestionType: seed.Type,
			Rating:       seed.Rating,
		}
		if err := conn.WithContext(ctx).Create(&record).Error; err != nil {
			return inserted, err
		}
		inserted++
	}
	return inserted, nil
}
