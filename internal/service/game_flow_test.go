package service

import (
	"errors"
	"math/rand"
	"os"
	"testing"
	"time"

	"wordscramble/internal/database"
	"wordscramble/internal/models"
	"wordscramble/internal/repository"
)

type gameFixture struct {
	svc      *GameService
	userRepo *repository.UserRepository
	user     *models.User
	category *models.Category
}

func newGameFixture(t *testing.T, ttl time.Duration) *gameFixture {
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

	userRepo := repository.NewUserRepository(db)
	wordRepo := repository.NewWordRepository(db)
	gameRepo := repository.NewGameRepository(db)

	user, err := userRepo.CreateUser("Player", "player@example.com", "hash")
	if err != nil {
		t.Fatalf("Failed to create user: %v", err)
	}

	category, err := wordRepo.CreateCategory("Animals", "Words about animals")
	if err != nil {
		t.Fatalf("Failed to create category: %v", err)
	}
	words := []string{"dog", "cat", "bird", "fish", "cow", "pig", "duck", "bee", "ant", "fox", "hen", "owl"}
	for _, text := range words {
		if _, err := wordRepo.CreateWord(category.ID, text, "meaning of "+text, models.DifficultyEasy); err != nil {
			t.Fatalf("Failed to create word %q: %v", text, err)
		}
	}

	scrambler := NewScrambler(rand.New(rand.NewSource(1)))
	svc := NewGameService(gameRepo, wordRepo, userRepo, scrambler, ttl)

	return &gameFixture{svc: svc, userRepo: userRepo, user: user, category: category}
}

func TestStartGameBuildsSession(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}
	f := newGameFixture(t, time.Hour)

	session, err := f.svc.StartGame(f.user.ID, f.category.ID, models.DifficultyEasy)
	if err != nil {
		t.Fatalf("StartGame failed: %v", err)
	}

	if session.ID == "" {
		t.Error("session has no id")
	}
	if len(session.Rounds) != RoundsPerGame {
		t.Fatalf("got %d rounds, want %d", len(session.Rounds), RoundsPerGame)
	}
	for _, round := range session.Rounds {
		if round.Word == "" || round.Scrambled == "" || round.Meaning == "" {
			t.Errorf("incomplete round: %+v", round)
		}
		if round.Scrambled == round.Word {
			t.Errorf("round word %q was not scrambled", round.Word)
		}
	}
}

func TestStartGameInsufficientWords(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}
	f := newGameFixture(t, time.Hour)

	_, err := f.svc.StartGame(f.user.ID, f.category.ID, models.DifficultyHard)
	if !errors.Is(err, ErrInsufficientWords) {
		t.Errorf("error = %v, want ErrInsufficientWords", err)
	}

	_, err = f.svc.StartGame(f.user.ID, f.category.ID+999, models.DifficultyEasy)
	if !errors.Is(err, ErrCategoryNotFound) {
		t.Errorf("error = %v, want ErrCategoryNotFound", err)
	}
}

func TestFinishGameRecomputesOutcomes(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}
	f := newGameFixture(t, time.Hour)

	session, err := f.svc.StartGame(f.user.ID, f.category.ID, models.DifficultyEasy)
	if err != nil {
		t.Fatalf("StartGame failed: %v", err)
	}

	// Answer the first round correctly, claim an inflated score elsewhere.
	submissions := make([]RoundSubmission, len(session.Rounds))
	submissions[0] = RoundSubmission{UserAnswer: session.Rounds[0].Word, TimeTaken: 0}
	for i := 1; i < len(submissions); i++ {
		submissions[i] = RoundSubmission{UserAnswer: "wrong-guess", TimeTaken: 0}
	}

	result, err := f.svc.FinishGame(f.user.ID, session.ID, submissions)
	if err != nil {
		t.Fatalf("FinishGame failed: %v", err)
	}

	// One correct easy round with full time remaining scores 15.
	if result.Score != 15 {
		t.Errorf("score = %d, want 15", result.Score)
	}
	if !result.Rounds[0].Correct {
		t.Error("first round should be correct")
	}
	for i := 1; i < len(result.Rounds); i++ {
		if result.Rounds[i].Correct || result.Rounds[i].PointsEarned != 0 {
			t.Errorf("round %d should be an unscored miss: %+v", i, result.Rounds[i])
		}
	}

	// Finishing the same session again fails.
	if _, err := f.svc.FinishGame(f.user.ID, session.ID, submissions); !errors.Is(err, ErrSessionNotFound) {
		t.Errorf("second finish error = %v, want ErrSessionNotFound", err)
	}

	updated, err := f.userRepo.GetUserByID(f.user.ID)
	if err != nil {
		t.Fatalf("Failed to reload user: %v", err)
	}
	if updated.GamesPlayed != 1 || updated.BestScore != 15 {
		t.Errorf("stats = %d games / best %d, want 1 / 15", updated.GamesPlayed, updated.BestScore)
	}

	// A second game scoring zero still counts as played but leaves the best
	// score where it was.
	second, err := f.svc.StartGame(f.user.ID, f.category.ID, models.DifficultyEasy)
	if err != nil {
		t.Fatalf("StartGame failed: %v", err)
	}
	misses := make([]RoundSubmission, len(second.Rounds))
	for i := range misses {
		misses[i] = RoundSubmission{UserAnswer: "wrong-guess", TimeTaken: 0}
	}
	result, err = f.svc.FinishGame(f.user.ID, second.ID, misses)
	if err != nil {
		t.Fatalf("FinishGame failed: %v", err)
	}
	if result.Score != 0 {
		t.Errorf("score = %d, want 0", result.Score)
	}

	updated, err = f.userRepo.GetUserByID(f.user.ID)
	if err != nil {
		t.Fatalf("Failed to reload user: %v", err)
	}
	if updated.GamesPlayed != 2 || updated.BestScore != 15 {
		t.Errorf("stats = %d games / best %d, want 2 / 15", updated.GamesPlayed, updated.BestScore)
	}
}

func TestFinishGameRejectsForeignSession(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}
	f := newGameFixture(t, time.Hour)

	other, err := f.userRepo.CreateUser("Other", "other@example.com", "hash")
	if err != nil {
		t.Fatalf("Failed to create user: %v", err)
	}

	session, err := f.svc.StartGame(f.user.ID, f.category.ID, models.DifficultyEasy)
	if err != nil {
		t.Fatalf("StartGame failed: %v", err)
	}

	submissions := make([]RoundSubmission, len(session.Rounds))
	if _, err := f.svc.FinishGame(other.ID, session.ID, submissions); !errors.Is(err, ErrSessionNotFound) {
		t.Errorf("error = %v, want ErrSessionNotFound", err)
	}
}

func TestFinishGameRoundCountMismatch(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}
	f := newGameFixture(t, time.Hour)

	session, err := f.svc.StartGame(f.user.ID, f.category.ID, models.DifficultyEasy)
	if err != nil {
		t.Fatalf("StartGame failed: %v", err)
	}

	if _, err := f.svc.FinishGame(f.user.ID, session.ID, []RoundSubmission{{}}); !errors.Is(err, ErrInvalidRounds) {
		t.Errorf("error = %v, want ErrInvalidRounds", err)
	}
}

func TestFinishGameExpiredSession(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}
	f := newGameFixture(t, time.Millisecond)

	session, err := f.svc.StartGame(f.user.ID, f.category.ID, models.DifficultyEasy)
	if err != nil {
		t.Fatalf("StartGame failed: %v", err)
	}

	time.Sleep(5 * time.Millisecond)

	submissions := make([]RoundSubmission, len(session.Rounds))
	if _, err := f.svc.FinishGame(f.user.ID, session.ID, submissions); !errors.Is(err, ErrSessionExpired) {
		t.Errorf("error = %v, want ErrSessionExpired", err)
	}

	// The expired session was deleted, so a retry reports not found.
	if _, err := f.svc.FinishGame(f.user.ID, session.ID, submissions); !errors.Is(err, ErrSessionNotFound) {
		t.Errorf("retry error = %v, want ErrSessionNotFound", err)
	}
}
