package repository

import (
	"errors"
	"os"
	"testing"
	"time"

	"wordscramble/internal/database"
	"wordscramble/internal/models"
)

func newTestDB(t *testing.T) *database.DB {
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
	return db
}

func TestUserRepositoryFirstUserIsAdmin(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}
	db := newTestDB(t)
	repo := NewUserRepository(db)

	first, err := repo.CreateUser("First", "first@example.com", "hash1")
	if err != nil {
		t.Fatalf("Failed to create first user: %v", err)
	}
	if first.Role != models.RoleAdmin {
		t.Errorf("first user role = %q, want admin", first.Role)
	}

	second, err := repo.CreateUser("Second", "second@example.com", "hash2")
	if err != nil {
		t.Fatalf("Failed to create second user: %v", err)
	}
	if second.Role != models.RoleUser {
		t.Errorf("second user role = %q, want user", second.Role)
	}

	found, err := repo.GetUserByEmail("second@example.com")
	if err != nil {
		t.Fatalf("Failed to look up user: %v", err)
	}
	if found == nil || found.ID != second.ID {
		t.Errorf("lookup returned %+v, want id %d", found, second.ID)
	}

	missing, err := repo.GetUserByEmail("nobody@example.com")
	if err != nil {
		t.Fatalf("unexpected error for missing user: %v", err)
	}
	if missing != nil {
		t.Errorf("expected nil for missing user, got %+v", missing)
	}
}

func TestWordRepositoryGameSelection(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}
	db := newTestDB(t)
	repo := NewWordRepository(db)

	category, err := repo.CreateCategory("Animals", "Words about animals")
	if err != nil {
		t.Fatalf("Failed to create category: %v", err)
	}

	easy := []string{"dog", "cat", "bird", "fish", "cow", "pig", "duck", "bee", "ant", "fox", "hen"}
	for _, text := range easy {
		if _, err := repo.CreateWord(category.ID, text, "meaning of "+text, models.DifficultyEasy); err != nil {
			t.Fatalf("Failed to create word %q: %v", text, err)
		}
	}
	if _, err := repo.CreateWord(category.ID, "elephant", "a big mammal", models.DifficultyHard); err != nil {
		t.Fatalf("Failed to create hard word: %v", err)
	}

	words, err := repo.GetWordsForGame(category.ID, models.DifficultyEasy, 10)
	if err != nil {
		t.Fatalf("Failed to select words: %v", err)
	}
	if len(words) != 10 {
		t.Errorf("got %d words, want 10", len(words))
	}
	for _, word := range words {
		if word.Difficulty != models.DifficultyEasy {
			t.Errorf("word %q has difficulty %q, want easy", word.Text, word.Difficulty)
		}
	}

	hard, err := repo.GetWordsForGame(category.ID, models.DifficultyHard, 10)
	if err != nil {
		t.Fatalf("Failed to select hard words: %v", err)
	}
	if len(hard) != 1 {
		t.Errorf("got %d hard words, want 1", len(hard))
	}
}

func seedGameFixture(t *testing.T, db *database.DB) (*models.User, *models.GameSession) {
	t.Helper()

	userRepo := NewUserRepository(db)
	user, err := userRepo.CreateUser("Player", "player@example.com", "hash")
	if err != nil {
		t.Fatalf("Failed to create user: %v", err)
	}

	session := &models.GameSession{
		ID:         "session-test",
		UserID:     user.ID,
		CategoryID: 1,
		Difficulty: models.DifficultyMedium,
		CreatedAt:  time.Now().UTC(),
	}
	for i := 0; i < 3; i++ {
		session.Rounds = append(session.Rounds, models.SessionRound{
			WordID:    int64(i + 1),
			Word:      "word",
			Scrambled: "drow",
			Meaning:   "a unit of language",
		})
	}

	gameRepo := NewGameRepository(db)
	if err := gameRepo.CreateSession(session); err != nil {
		t.Fatalf("Failed to create session: %v", err)
	}
	return user, session
}

func TestGameRepositorySessionRoundTrip(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}
	db := newTestDB(t)
	repo := NewGameRepository(db)

	_, session := seedGameFixture(t, db)

	loaded, err := repo.GetSessionByID(session.ID)
	if err != nil {
		t.Fatalf("Failed to load session: %v", err)
	}
	if loaded == nil {
		t.Fatal("session not found after create")
	}
	if len(loaded.Rounds) != len(session.Rounds) {
		t.Errorf("got %d rounds, want %d", len(loaded.Rounds), len(session.Rounds))
	}
	for i, round := range loaded.Rounds {
		if round.WordID != session.Rounds[i].WordID {
			t.Errorf("round %d word id = %d, want %d", i, round.WordID, session.Rounds[i].WordID)
		}
	}

	missing, err := repo.GetSessionByID("no-such-session")
	if err != nil {
		t.Fatalf("unexpected error for missing session: %v", err)
	}
	if missing != nil {
		t.Errorf("expected nil for missing session, got %+v", missing)
	}
}

func TestGameRepositorySaveResult(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}
	db := newTestDB(t)
	repo := NewGameRepository(db)
	userRepo := NewUserRepository(db)

	user, session := seedGameFixture(t, db)

	result := &models.GameResult{
		UserID:     user.ID,
		UserName:   user.Name,
		Score:      85,
		Category:   "Animals",
		Difficulty: models.DifficultyMedium,
		CreatedAt:  time.Now().UTC(),
		Rounds: []models.GameRound{
			{WordID: 1, Word: "word", Scrambled: "drow", UserAnswer: "word", Correct: true, TimeTaken: 5, PointsEarned: 28},
		},
	}

	saved, err := repo.SaveResult(result, session.ID)
	if err != nil {
		t.Fatalf("Failed to save result: %v", err)
	}
	if saved.ID == 0 {
		t.Error("expected a non-zero result id")
	}

	// The session is retired and cannot be finished again.
	if _, err := repo.SaveResult(result, session.ID); !errors.Is(err, ErrSessionGone) {
		t.Errorf("second finish error = %v, want ErrSessionGone", err)
	}

	// Owner stats were updated in the same transaction.
	updated, err := userRepo.GetUserByID(user.ID)
	if err != nil {
		t.Fatalf("Failed to reload user: %v", err)
	}
	if updated.GamesPlayed != 1 {
		t.Errorf("games played = %d, want 1", updated.GamesPlayed)
	}
	if updated.BestScore != 85 {
		t.Errorf("best score = %d, want 85", updated.BestScore)
	}

	// Result history includes the recorded rounds.
	results, err := repo.GetResultsByUser(user.ID, 0)
	if err != nil {
		t.Fatalf("Failed to load history: %v", err)
	}
	if len(results) != 1 {
		t.Fatalf("got %d results, want 1", len(results))
	}
	if len(results[0].Rounds) != 1 {
		t.Errorf("got %d rounds, want 1", len(results[0].Rounds))
	}

	// A lower-scoring game increments games played without touching the best.
	second := &models.GameSession{
		ID:         "session-test-2",
		UserID:     user.ID,
		CategoryID: 1,
		Difficulty: models.DifficultyMedium,
		CreatedAt:  time.Now().UTC(),
		Rounds: []models.SessionRound{
			{WordID: 1, Word: "word", Scrambled: "drow", Meaning: "a unit of language"},
		},
	}
	if err := repo.CreateSession(second); err != nil {
		t.Fatalf("Failed to create session: %v", err)
	}
	lower := &models.GameResult{
		UserID:     user.ID,
		UserName:   user.Name,
		Score:      40,
		Category:   "Animals",
		Difficulty: models.DifficultyMedium,
		CreatedAt:  time.Now().UTC(),
	}
	if _, err := repo.SaveResult(lower, second.ID); err != nil {
		t.Fatalf("Failed to save result: %v", err)
	}
	updated, err = userRepo.GetUserByID(user.ID)
	if err != nil {
		t.Fatalf("Failed to reload user: %v", err)
	}
	if updated.GamesPlayed != 2 {
		t.Errorf("games played = %d, want 2", updated.GamesPlayed)
	}
	if updated.BestScore != 85 {
		t.Errorf("best score = %d, want 85", updated.BestScore)
	}
}

func TestGameRepositoryTopResultsOrdering(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}
	db := newTestDB(t)
	repo := NewGameRepository(db)
	userRepo := NewUserRepository(db)

	user, err := userRepo.CreateUser("Player", "player@example.com", "hash")
	if err != nil {
		t.Fatalf("Failed to create user: %v", err)
	}

	base := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	scores := []struct {
		score int
		at    time.Time
	}{
		{100, base.Add(2 * time.Hour)}, // later 100
		{100, base},                    // earlier 100, wins the tie
		{120, base.Add(time.Hour)},
		{80, base},
	}
	for i, s := range scores {
		if _, err := db.Exec(
			"INSERT INTO game_results (user_id, user_name, score, category, difficulty, created_at) VALUES (?, ?, ?, ?, ?, ?)",
			user.ID, user.Name, s.score, "Animals", "easy", s.at); err != nil {
			t.Fatalf("Failed to insert result %d: %v", i, err)
		}
	}

	top, err := repo.GetTopResults(3)
	if err != nil {
		t.Fatalf("Failed to load top results: %v", err)
	}
	if len(top) != 3 {
		t.Fatalf("got %d results, want 3", len(top))
	}
	if top[0].Score != 120 {
		t.Errorf("top score = %d, want 120", top[0].Score)
	}
	if top[1].Score != 100 || !top[1].CreatedAt.Equal(base) {
		t.Errorf("tie not broken by earliest time: %+v", top[1])
	}
	if top[2].Score != 100 {
		t.Errorf("third score = %d, want 100", top[2].Score)
	}
}

func TestGameRepositorySweep(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}
	db := newTestDB(t)
	repo := NewGameRepository(db)

	_, session := seedGameFixture(t, db)

	// A cutoff in the past sweeps nothing.
	swept, err := repo.DeleteSessionsBefore(time.Now().UTC().Add(-time.Hour))
	if err != nil {
		t.Fatalf("Failed to sweep: %v", err)
	}
	if swept != 0 {
		t.Errorf("swept %d sessions, want 0", swept)
	}

	// A future cutoff sweeps the session.
	swept, err = repo.DeleteSessionsBefore(time.Now().UTC().Add(time.Hour))
	if err != nil {
		t.Fatalf("Failed to sweep: %v", err)
	}
	if swept != 1 {
		t.Errorf("swept %d sessions, want 1", swept)
	}

	loaded, err := repo.GetSessionByID(session.ID)
	if err != nil {
		t.Fatalf("Failed to load session: %v", err)
	}
	if loaded != nil {
		t.Error("session survived the sweep")
	}
}
