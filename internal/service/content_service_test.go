package service

import (
	"errors"
	"os"
	"testing"

	"wordscramble/internal/database"
	"wordscramble/internal/models"
	"wordscramble/internal/repository"
	"wordscramble/internal/validation"
)

func newContentFixture(t *testing.T) *ContentService {
	t.Helper()

	dbPath := t.Name() + ".db"
	db, err := database.Initialize(dbPath)
	if err != nil {
		t.Fatalf("Failed to initialize database: %v", err)
	}
	t.Cleanup(func() {
		db.Close()
		os.Remove(dbPath)
	})
	if err := db.RunMigrations("../../migrations"); err != nil {
		t.Fatalf("Failed to run migrations: %v", err)
	}

	return NewContentService(repository.NewWordRepository(db))
}

func TestContentCategoryLifecycle(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}
	svc := newContentFixture(t)

	category, err := svc.CreateCategory("  Animals ", "Words about animals")
	if err != nil {
		t.Fatalf("CreateCategory failed: %v", err)
	}
	if category.Name != "Animals" {
		t.Errorf("name not trimmed: %q", category.Name)
	}

	// Duplicate names are rejected case-insensitively.
	if _, err := svc.CreateCategory("animals", "dupe"); !errors.Is(err, ErrCategoryExists) {
		t.Errorf("error = %v, want ErrCategoryExists", err)
	}

	if err := svc.DeleteCategory(category.ID); err != nil {
		t.Fatalf("DeleteCategory failed: %v", err)
	}
	if err := svc.DeleteCategory(category.ID); !errors.Is(err, ErrCategoryNotFound) {
		t.Errorf("error = %v, want ErrCategoryNotFound", err)
	}
}

func TestContentCreateWord(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}
	svc := newContentFixture(t)

	category, err := svc.CreateCategory("Animals", "Words about animals")
	if err != nil {
		t.Fatalf("CreateCategory failed: %v", err)
	}

	word, err := svc.CreateWord(category.ID, "  Elephant ", "a large mammal", "EASY")
	if err != nil {
		t.Fatalf("CreateWord failed: %v", err)
	}
	if word.Text != "elephant" || word.Difficulty != models.DifficultyEasy {
		t.Errorf("word not normalized: %+v", word)
	}

	tests := []struct {
		name       string
		categoryID int64
		text       string
		difficulty string
		wantErr    error
	}{
		{"unknown category", category.ID + 999, "tiger", "easy", ErrCategoryNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.CreateWord(tt.categoryID, tt.text, "meaning", tt.difficulty)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("error = %v, want %v", err, tt.wantErr)
			}
		})
	}

	var validationErr validation.ValidationError
	if _, err := svc.CreateWord(category.ID, "not a word!", "meaning", "easy"); !errors.As(err, &validationErr) {
		t.Errorf("error = %v, want a validation error", err)
	}
	if _, err := svc.CreateWord(category.ID, "tiger", "meaning", "extreme"); !errors.As(err, &validationErr) {
		t.Errorf("error = %v, want a validation error", err)
	}
}
