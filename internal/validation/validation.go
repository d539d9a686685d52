package validation

import (
	"fmt"
	"regexp"
	"strings"

	"wordscramble/internal/models"
)

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

var wordRegex = regexp.MustCompile(`^[a-zA-Z]+$`)

// ValidationError represents a validation error
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidateEmail checks if an email address is valid
func ValidateEmail(email string) error {
	email = strings.TrimSpace(email)
	if email == "" {
		return ValidationError{Field: "email", Message: "email is required"}
	}
	if !emailRegex.MatchString(email) {
		return ValidationError{Field: "email", Message: "invalid email format"}
	}
	return nil
}

// ValidatePassword checks if a password meets requirements
func ValidatePassword(password string) error {
	if password == "" {
		return ValidationError{Field: "password", Message: "password is required"}
	}
	if len(password) < 8 {
		return ValidationError{Field: "password", Message: "password must be at least 8 characters"}
	}
	return nil
}

// ValidateName checks if a display name is valid
func ValidateName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return ValidationError{Field: "name", Message: "name is required"}
	}
	if len(name) < 2 {
		return ValidationError{Field: "name", Message: "name must be at least 2 characters"}
	}
	return nil
}

// ValidateWordText checks that a word can enter the game pool: ASCII letters
// only, and at least two distinct letters so a scramble different from the
// original exists.
func ValidateWordText(text string) error {
	text = strings.TrimSpace(text)
	if text == "" {
		return ValidationError{Field: "text", Message: "word text is required"}
	}
	if !wordRegex.MatchString(text) {
		return ValidationError{Field: "text", Message: "word must contain only letters"}
	}
	if !hasDistinctLetters(text) {
		return ValidationError{Field: "text", Message: "word must contain at least two distinct letters"}
	}
	return nil
}

// ValidateDifficulty checks that a difficulty level is known
func ValidateDifficulty(difficulty string) error {
	if !models.ValidDifficulty(difficulty) {
		return ValidationError{Field: "difficulty", Message: "difficulty must be easy, medium or hard"}
	}
	return nil
}

// ValidateCategoryName checks if a category name is valid
func ValidateCategoryName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return ValidationError{Field: "name", Message: "category name is required"}
	}
	return nil
}

func hasDistinctLetters(text string) bool {
	if len(text) < 2 {
		return false
	}
	first := text[0]
	for i := 1; i < len(text); i++ {
		if text[i] != first {
			return true
		}
	}
	return false
}
