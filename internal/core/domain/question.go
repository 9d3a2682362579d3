package domain

import "time"

// QuestionCategory classifies a question by topic area.
type QuestionCategory string

const (
	CategoryAlgorithm       QuestionCategory = "ALGORITHM"
	CategoryDataStructure   QuestionCategory = "DATA_STRUCTURE"
	CategorySystemDesign    QuestionCategory = "SYSTEM_DESIGN"
	CategoryBehavioral      QuestionCategory = "BEHAVIORAL"
	CategoryDatabase        QuestionCategory = "DATABASE"
	CategoryNetworking      QuestionCategory = "NETWORKING"
	CategoryOperatingSystem QuestionCategory = "OPERATING_SYSTEM"
)

// QuestionDifficulty grades a question.
type QuestionDifficulty string

const (
	DifficultyEasy   QuestionDifficulty = "EASY"
	DifficultyMedium QuestionDifficulty = "MEDIUM"
	DifficultyHard   QuestionDifficulty = "HARD"
)

// ParseCategory validates a raw category label as received on the wire.
func ParseCategory(s string) (QuestionCategory, error) {
	switch c := QuestionCategory(s); c {
	case CategoryAlgorithm, CategoryDataStructure, CategorySystemDesign,
		CategoryBehavioral, CategoryDatabase, CategoryNetworking, CategoryOperatingSystem:
		return c, nil
	}
	return "", ErrInvalidCategory
}

// ParseDifficulty validates a raw difficulty label as received on the wire.
func ParseDifficulty(s string) (QuestionDifficulty, error) {
	switch d := QuestionDifficulty(s); d {
	case DifficultyEasy, DifficultyMedium, DifficultyHard:
		return d, nil
	}
	return "", ErrInvalidDifficulty
}

// Question is a single entry in the interview question bank. Questions are
// independent of sessions; no link between the two is persisted.
type Question struct {
	ID         string             `json:"id"`
	Text       string             `json:"text"`
	Category   QuestionCategory   `json:"category"`
	Difficulty QuestionDifficulty `json:"difficulty"`
	CreatedAt  time.Time          `json:"created_at"`
	UpdatedAt  time.Time          `json:"updated_at"`
}
