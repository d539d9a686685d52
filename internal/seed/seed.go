// Package seed installs the stock content catalogue and admin account.
// Seeding is destructive: existing users, categories and words are replaced.
package seed

import (
	"fmt"
	"log"

	"wordscramble/internal/database"
	"wordscramble/internal/models"
	"wordscramble/internal/security"
)

type wordSeed struct {
	Text       string
	Meaning    string
	Difficulty string
}

type categorySeed struct {
	Name        string
	Description string
	Words       []wordSeed
}

// Summary reports what a seeding run installed
type Summary struct {
	AdminEmail string
	Categories int
	Words      int
}

// Run wipes existing accounts and content, then installs the admin user and
// the default catalogue. Game results and sessions are removed through
// foreign key cascades when users are cleared.
func Run(db *database.DB, adminEmail, adminPass string) (*Summary, error) {
	if adminEmail == "" || adminPass == "" {
		return nil, fmt.Errorf("admin email and password are required")
	}

	adminHash, err := security.HashPassword(adminPass)
	if err != nil {
		return nil, fmt.Errorf("failed to hash admin password: %w", err)
	}

	tx, err := db.Begin()
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	for _, table := range []string{"users", "categories", "words"} {
		if _, err := tx.Exec("DELETE FROM " + table); err != nil {
			return nil, fmt.Errorf("failed to clear %s: %w", table, err)
		}
	}

	if _, err := tx.Exec(
		"INSERT INTO users (name, email, password_hash, role) VALUES (?, ?, ?, ?)",
		"Admin", adminEmail, adminHash, models.RoleAdmin,
	); err != nil {
		return nil, fmt.Errorf("failed to create admin user: %w", err)
	}

	wordCount := 0
	for _, category := range defaultCategories {
		categoryID, err := tx.ExecReturningID(
			"INSERT INTO categories (name, description) VALUES (?, ?)",
			category.Name, category.Description,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to create category %s: %w", category.Name, err)
		}

		for _, word := range category.Words {
			if _, err := tx.Exec(
				"INSERT INTO words (category_id, text, meaning, difficulty) VALUES (?, ?, ?, ?)",
				categoryID, word.Text, word.Meaning, word.Difficulty,
			); err != nil {
				return nil, fmt.Errorf("failed to create word %s: %w", word.Text, err)
			}
			wordCount++
		}
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit seed data: %w", err)
	}

	log.Printf("Seeded %d categories and %d words, admin: %s", len(defaultCategories), wordCount, adminEmail)
	return &Summary{
		AdminEmail: adminEmail,
		Categories: len(defaultCategories),
		Words:      wordCount,
	}, nil
}
