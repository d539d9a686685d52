package models

import "time"

// Word difficulties
const (
	DifficultyEasy   = "easy"
	DifficultyMedium = "medium"
	DifficultyHard   = "hard"
)

// ValidDifficulty reports whether s is a known difficulty level
func ValidDifficulty(s string) bool {
	return s == DifficultyEasy || s == DifficultyMedium || s == DifficultyHard
}

// Category groups words by topic
type Category struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

// Word is a dictionary entry available for games
type Word struct {
	ID         int64     `json:"id"`
	CategoryID int64     `json:"category"`
	Text       string    `json:"text"`
	Meaning    string    `json:"meaning"`
	Difficulty string    `json:"difficulty"`
	CreatedAt  time.Time `json:"createdAt"`
}
