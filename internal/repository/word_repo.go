package repository

import (
	"database/sql"
	"fmt"
	"time"

	"wordscramble/internal/database"
	"wordscramble/internal/models"
)

// WordRepository handles database operations for categories and words
type WordRepository struct {
	db *database.DB
}

// NewWordRepository creates a new word repository
func NewWordRepository(db *database.DB) *WordRepository {
	return &WordRepository{db: db}
}

// GetAllCategories retrieves all categories sorted by name
func (r *WordRepository) GetAllCategories() ([]models.Category, error) {
	query := `
		SELECT id, name, description
		FROM categories
		ORDER BY name ASC
	`
	rows, err := r.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("failed to query categories: %w", err)
	}
	defer rows.Close()

	var categories []models.Category
	for rows.Next() {
		var c models.Category
		if err := rows.Scan(&c.ID, &c.Name, &c.Description); err != nil {
			return nil, fmt.Errorf("failed to scan category: %w", err)
		}
		categories = append(categories, c)
	}

	return categories, rows.Err()
}

// GetCategoryByID retrieves a single category
func (r *WordRepository) GetCategoryByID(id int64) (*models.Category, error) {
	query := "SELECT id, name, description FROM categories WHERE id = ?"

	c := &models.Category{}
	err := r.db.QueryRow(query, id).Scan(&c.ID, &c.Name, &c.Description)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get category: %w", err)
	}

	return c, nil
}

// CreateCategory inserts a new category
func (r *WordRepository) CreateCategory(name, description string) (*models.Category, error) {
	query := "INSERT INTO categories (name, description) VALUES (?, ?)"
	id, err := r.db.ExecReturningID(query, name, description)
	if err != nil {
		return nil, fmt.Errorf("failed to create category: %w", err)
	}

	return &models.Category{ID: id, Name: name, Description: description}, nil
}

// DeleteCategory deletes a category and, via cascade, its words
func (r *WordRepository) DeleteCategory(id int64) error {
	_, err := r.db.Exec("DELETE FROM categories WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("failed to delete category: %w", err)
	}
	return nil
}

// GetAllWords retrieves all words sorted alphabetically
func (r *WordRepository) GetAllWords() ([]models.Word, error) {
	query := `
		SELECT id, category_id, text, meaning, difficulty, created_at
		FROM words
		ORDER BY text ASC
	`
	rows, err := r.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("failed to query words: %w", err)
	}
	defer rows.Close()

	return scanWords(rows)
}

// GetWordsForGame retrieves up to limit words matching a category and
// difficulty, in store order
func (r *WordRepository) GetWordsForGame(categoryID int64, difficulty string, limit int) ([]models.Word, error) {
	query := `
		SELECT id, category_id, text, meaning, difficulty, created_at
		FROM words
		WHERE category_id = ? AND difficulty = ?
		LIMIT ?
	`
	rows, err := r.db.Query(query, categoryID, difficulty, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query game words: %w", err)
	}
	defer rows.Close()

	return scanWords(rows)
}

// CreateWord inserts a new word
func (r *WordRepository) CreateWord(categoryID int64, text, meaning, difficulty string) (*models.Word, error) {
	query := `
		INSERT INTO words (category_id, text, meaning, difficulty)
		VALUES (?, ?, ?, ?)
	`
	id, err := r.db.ExecReturningID(query, categoryID, text, meaning, difficulty)
	if err != nil {
		return nil, fmt.Errorf("failed to create word: %w", err)
	}

	return &models.Word{
		ID:         id,
		CategoryID: categoryID,
		Text:       text,
		Meaning:    meaning,
		Difficulty: difficulty,
		CreatedAt:  time.Now(),
	}, nil
}

// DeleteWord deletes a word
func (r *WordRepository) DeleteWord(id int64) error {
	_, err := r.db.Exec("DELETE FROM words WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("failed to delete word: %w", err)
	}
	return nil
}

func scanWords(rows *sql.Rows) ([]models.Word, error) {
	var words []models.Word
	for rows.Next() {
		var w models.Word
		if err := rows.Scan(&w.ID, &w.CategoryID, &w.Text, &w.Meaning, &w.Difficulty, &w.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan word: %w", err)
		}
		words = append(words, w)
	}
	return words, rows.Err()
}
