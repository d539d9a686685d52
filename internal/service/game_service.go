package service

import (
	"errors"
	"strings"
	"time"

	"wordscramble/internal/models"
	"wordscramble/internal/repository"
	"wordscramble/internal/security"
)

// Game rule constants
const (
	RoundsPerGame = 10
	MaxRoundTime  = 30 // seconds per round
	HintPenalty   = 5
	RecentLimit   = 5
)

// basePoints maps a difficulty tier to its per-round base score
var basePoints = map[string]int{
	models.DifficultyEasy:   10,
	models.DifficultyMedium: 20,
	models.DifficultyHard:   30,
}

var (
	ErrInvalidDifficulty = errors.New("invalid difficulty")
	ErrCategoryNotFound  = errors.New("category not found")
	ErrInsufficientWords = errors.New("not enough words for this category and difficulty")
	ErrSessionNotFound   = errors.New("game session not found")
	ErrSessionExpired    = errors.New("game session expired")
	ErrInvalidRounds     = errors.New("submitted rounds do not match the session")
	ErrUserNotFound      = errors.New("user not found")
)

// RoundSubmission is what the client reports for one played round. Only the
// answer, elapsed time and hint usage are trusted as claims; correctness and
// points are recomputed server-side.
type RoundSubmission struct {
	UserAnswer string `json:"userAnswer"`
	TimeTaken  int    `json:"timeTaken"`
	UsedHint   bool   `json:"usedHint"`
}

// GameService runs the game lifecycle: starting sessions, resolving rounds
// and recording results
type GameService struct {
	gameRepo   *repository.GameRepository
	wordRepo   *repository.WordRepository
	userRepo   *repository.UserRepository
	scrambler  *Scrambler
	sessionTTL time.Duration
}

// NewGameService creates a new game service
func NewGameService(gameRepo *repository.GameRepository, wordRepo *repository.WordRepository, userRepo *repository.UserRepository, scrambler *Scrambler, sessionTTL time.Duration) *GameService {
	return &GameService{
		gameRepo:   gameRepo,
		wordRepo:   wordRepo,
		userRepo:   userRepo,
		scrambler:  scrambler,
		sessionTTL: sessionTTL,
	}
}

// CalculatePoints scores a single round. A wrong answer earns nothing. A
// correct answer earns the difficulty base plus a time bonus worth up to half
// the base, minus a flat penalty if the hint was shown. The result never goes
// below zero.
func CalculatePoints(difficulty string, correct bool, timeTaken int, usedHint bool) int {
	if !correct {
		return 0
	}

	base := basePoints[difficulty]

	if timeTaken < 0 {
		timeTaken = 0
	}
	if timeTaken > MaxRoundTime {
		timeTaken = MaxRoundTime
	}
	timeRemaining := MaxRoundTime - timeTaken
	timeBonus := timeRemaining * base / (2 * MaxRoundTime)

	points := base + timeBonus
	if usedHint {
		points -= HintPenalty
	}
	if points < 0 {
		points = 0
	}
	return points
}

// ResolveRound recomputes the authoritative outcome of one round from the
// server-side word and the client's claims. Answers are compared
// case-insensitively after trimming whitespace.
func ResolveRound(round models.SessionRound, difficulty string, sub RoundSubmission) models.GameRound {
	answer := strings.TrimSpace(sub.UserAnswer)
	correct := answer != "" && strings.EqualFold(answer, round.Word)

	timeTaken := sub.TimeTaken
	if timeTaken < 0 {
		timeTaken = 0
	}
	if timeTaken > MaxRoundTime {
		timeTaken = MaxRoundTime
	}

	return models.GameRound{
		WordID:       round.WordID,
		Word:         round.Word,
		Scrambled:    round.Scrambled,
		UserAnswer:   answer,
		Correct:      correct,
		TimeTaken:    timeTaken,
		UsedHint:     sub.UsedHint,
		PointsEarned: CalculatePoints(difficulty, correct, timeTaken, sub.UsedHint),
	}
}

// StartGame builds a new session of scrambled words for the given category
// and difficulty
func (s *GameService) StartGame(userID, categoryID int64, difficulty string) (*models.GameSession, error) {
	if !models.ValidDifficulty(difficulty) {
		return nil, ErrInvalidDifficulty
	}

	category, err := s.wordRepo.GetCategoryByID(categoryID)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, ErrCategoryNotFound
	}

	words, err := s.wordRepo.GetWordsForGame(categoryID, difficulty, RoundsPerGame)
	if err != nil {
		return nil, err
	}
	if len(words) < RoundsPerGame {
		return nil, ErrInsufficientWords
	}

	session := &models.GameSession{
		ID:         security.GenerateSessionID(),
		UserID:     userID,
		CategoryID: categoryID,
		Difficulty: difficulty,
		CreatedAt:  time.Now().UTC(),
	}
	for _, word := range words {
		session.Rounds = append(session.Rounds, models.SessionRound{
			WordID:    word.ID,
			Word:      word.Text,
			Scrambled: s.scrambler.Scramble(word.Text),
			Meaning:   word.Meaning,
		})
	}

	if err := s.gameRepo.CreateSession(session); err != nil {
		return nil, err
	}
	return session, nil
}

// FinishGame resolves every submitted round against the session, records the
// result and retires the session. The caller must own the session; a session
// belonging to another user is reported as not found.
func (s *GameService) FinishGame(userID int64, sessionID string, submissions []RoundSubmission) (*models.GameResult, error) {
	session, err := s.gameRepo.GetSessionByID(sessionID)
	if err != nil {
		return nil, err
	}
	if session == nil || session.UserID != userID {
		return nil, ErrSessionNotFound
	}
	if session.IsExpired(s.sessionTTL) {
		if err := s.gameRepo.DeleteSession(sessionID); err != nil {
			return nil, err
		}
		return nil, ErrSessionExpired
	}
	if len(submissions) != len(session.Rounds) {
		return nil, ErrInvalidRounds
	}

	user, err := s.userRepo.GetUserByID(userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	category, err := s.wordRepo.GetCategoryByID(session.CategoryID)
	if err != nil {
		return nil, err
	}
	categoryName := ""
	if category != nil {
		categoryName = category.Name
	}

	result := &models.GameResult{
		UserID:     userID,
		UserName:   user.Name,
		Category:   categoryName,
		Difficulty: session.Difficulty,
		CreatedAt:  time.Now().UTC(),
	}
	for i, sub := range submissions {
		round := ResolveRound(session.Rounds[i], session.Difficulty, sub)
		result.Score += round.PointsEarned
		result.Rounds = append(result.Rounds, round)
	}

	saved, err := s.gameRepo.SaveResult(result, sessionID)
	if errors.Is(err, repository.ErrSessionGone) {
		return nil, ErrSessionNotFound
	}
	if err != nil {
		return nil, err
	}
	return saved, nil
}

// RecentResults returns the user's latest finished games
func (s *GameService) RecentResults(userID int64) ([]models.GameResult, error) {
	return s.gameRepo.GetResultsByUser(userID, RecentLimit)
}

// History returns the user's full result history, newest first
func (s *GameService) History(userID int64) ([]models.GameResult, error) {
	return s.gameRepo.GetResultsByUser(userID, 0)
}
