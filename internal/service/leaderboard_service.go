package service

import (
	"wordscramble/internal/models"
	"wordscramble/internal/repository"
)

const (
	defaultLeaderboardLimit = 20
	maxLeaderboardLimit     = 100
)

// LeaderboardService exposes the public high-score list
type LeaderboardService struct {
	gameRepo *repository.GameRepository
}

// NewLeaderboardService creates a new leaderboard service
func NewLeaderboardService(gameRepo *repository.GameRepository) *LeaderboardService {
	return &LeaderboardService{gameRepo: gameRepo}
}

// TopResults returns the highest-scoring games as public entries. A limit
// outside (0, 100] falls back to the default of 20.
func (s *LeaderboardService) TopResults(limit int) ([]models.LeaderboardEntry, error) {
	if limit <= 0 || limit > maxLeaderboardLimit {
		limit = defaultLeaderboardLimit
	}

	results, err := s.gameRepo.GetTopResults(limit)
	if err != nil {
		return nil, err
	}

	entries := make([]models.LeaderboardEntry, 0, len(results))
	for _, result := range results {
		entries = append(entries, models.LeaderboardEntry{
			ID:         result.ID,
			UserID:     result.UserID,
			UserName:   result.UserName,
			Score:      result.Score,
			Category:   result.Category,
			Difficulty: result.Difficulty,
			CreatedAt:  result.CreatedAt,
		})
	}
	return entries, nil
}

// RemoveEntry deletes a leaderboard entry and its recorded rounds
func (s *LeaderboardService) RemoveEntry(resultID int64) error {
	return s.gameRepo.DeleteResult(resultID)
}
