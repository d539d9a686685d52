package service

import (
	"errors"
	"strings"

	"wordscramble/internal/models"
	"wordscramble/internal/repository"
	"wordscramble/internal/validation"
)

var ErrCategoryExists = errors.New("category already exists")

// ContentService manages the word and category catalogue
type ContentService struct {
	wordRepo *repository.WordRepository
}

// NewContentService creates a new content service
func NewContentService(wordRepo *repository.WordRepository) *ContentService {
	return &ContentService{wordRepo: wordRepo}
}

// Categories returns all categories ordered by name
func (s *ContentService) Categories() ([]models.Category, error) {
	return s.wordRepo.GetAllCategories()
}

// CreateCategory adds a new category
func (s *ContentService) CreateCategory(name, description string) (*models.Category, error) {
	name = strings.TrimSpace(name)
	if err := validation.ValidateCategoryName(name); err != nil {
		return nil, err
	}

	categories, err := s.wordRepo.GetAllCategories()
	if err != nil {
		return nil, err
	}
	for _, category := range categories {
		if strings.EqualFold(category.Name, name) {
			return nil, ErrCategoryExists
		}
	}

	return s.wordRepo.CreateCategory(name, strings.TrimSpace(description))
}

// DeleteCategory removes a category and its words
func (s *ContentService) DeleteCategory(id int64) error {
	category, err := s.wordRepo.GetCategoryByID(id)
	if err != nil {
		return err
	}
	if category == nil {
		return ErrCategoryNotFound
	}
	return s.wordRepo.DeleteCategory(id)
}

// Words returns the full word catalogue ordered by text
func (s *ContentService) Words() ([]models.Word, error) {
	return s.wordRepo.GetAllWords()
}

// CreateWord adds a word to a category after validating the text, difficulty
// and category
func (s *ContentService) CreateWord(categoryID int64, text, meaning, difficulty string) (*models.Word, error) {
	text = strings.ToLower(strings.TrimSpace(text))
	difficulty = strings.ToLower(strings.TrimSpace(difficulty))

	if err := validation.ValidateWordText(text); err != nil {
		return nil, err
	}
	if err := validation.ValidateDifficulty(difficulty); err != nil {
		return nil, err
	}

	category, err := s.wordRepo.GetCategoryByID(categoryID)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, ErrCategoryNotFound
	}

	return s.wordRepo.CreateWord(categoryID, text, strings.TrimSpace(meaning), difficulty)
}

// DeleteWord removes a word from the catalogue
func (s *ContentService) DeleteWord(id int64) error {
	return s.wordRepo.DeleteWord(id)
}
