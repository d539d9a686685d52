package database

import (
	"os"
	"testing"
	"time"
)

// TestDatabaseIntegration exercises the full lifecycle against SQLite:
// initialization, migrations and basic game data flow.
func TestDatabaseIntegration(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	dbPath := "test_integration.db"
	defer os.Remove(dbPath)

	db, err := Initialize(dbPath)
	if err != nil {
		t.Fatalf("Failed to initialize database: %v", err)
	}
	defer db.Close()

	if err := db.RunMigrations("../../migrations"); err != nil {
		t.Fatalf("Failed to run migrations: %v", err)
	}

	tables := []string{
		"users", "categories", "words",
		"game_sessions", "session_rounds",
		"game_results", "result_rounds",
		"bad_words",
	}
	for _, table := range tables {
		var name string
		err := db.QueryRow("SELECT name FROM sqlite_master WHERE type='table' AND name=?", table).Scan(&name)
		if err != nil {
			t.Errorf("Table %s not found: %v", table, err)
		}
	}

	// Migrations must be idempotent.
	if err := db.RunMigrations("../../migrations"); err != nil {
		t.Fatalf("Second migration run failed: %v", err)
	}
}

func TestDatabaseTransactions(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	dbPath := "test_transactions.db"
	defer os.Remove(dbPath)

	db, err := Initialize(dbPath)
	if err != nil {
		t.Fatalf("Failed to initialize database: %v", err)
	}
	defer db.Close()

	if err := db.RunMigrations("../../migrations"); err != nil {
		t.Fatalf("Failed to run migrations: %v", err)
	}

	// Committed transaction persists.
	tx, err := db.Begin()
	if err != nil {
		t.Fatalf("Failed to begin transaction: %v", err)
	}
	id, err := tx.ExecReturningID(
		"INSERT INTO users (name, email, password_hash, role) VALUES (?, ?, ?, ?)",
		"Test Player", "player@example.com", "hashedpass", "user")
	if err != nil {
		tx.Rollback()
		t.Fatalf("Failed to insert in transaction: %v", err)
	}
	if err := tx.Commit(); err != nil {
		t.Fatalf("Failed to commit transaction: %v", err)
	}
	if id == 0 {
		t.Error("expected a non-zero user id")
	}

	// Rolled back transaction leaves no trace.
	tx, err = db.Begin()
	if err != nil {
		t.Fatalf("Failed to begin transaction: %v", err)
	}
	if _, err := tx.Exec(
		"INSERT INTO users (name, email, password_hash, role) VALUES (?, ?, ?, ?)",
		"Ghost", "ghost@example.com", "hashedpass", "user"); err != nil {
		tx.Rollback()
		t.Fatalf("Failed to insert in transaction: %v", err)
	}
	if err := tx.Rollback(); err != nil {
		t.Fatalf("Failed to roll back transaction: %v", err)
	}

	var count int
	if err := db.QueryRow("SELECT COUNT(*) FROM users WHERE email = ?", "ghost@example.com").Scan(&count); err != nil {
		t.Fatalf("Failed to count users: %v", err)
	}
	if count != 0 {
		t.Errorf("rolled back insert is visible, count = %d", count)
	}
}

func TestSessionCascadeDelete(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	dbPath := "test_cascade.db"
	defer os.Remove(dbPath)

	db, err := Initialize(dbPath)
	if err != nil {
		t.Fatalf("Failed to initialize database: %v", err)
	}
	defer db.Close()

	if err := db.RunMigrations("../../migrations"); err != nil {
		t.Fatalf("Failed to run migrations: %v", err)
	}

	userID, err := db.ExecReturningID(
		"INSERT INTO users (name, email, password_hash, role) VALUES (?, ?, ?, ?)",
		"Cascade", "cascade@example.com", "hashedpass", "user")
	if err != nil {
		t.Fatalf("Failed to insert user: %v", err)
	}

	if _, err := db.Exec(
		"INSERT INTO game_sessions (id, user_id, category_id, difficulty, created_at) VALUES (?, ?, ?, ?, ?)",
		"session-1", userID, 1, "easy", time.Now()); err != nil {
		t.Fatalf("Failed to insert session: %v", err)
	}
	if _, err := db.Exec(
		"INSERT INTO session_rounds (session_id, round_index, word_id, word, scrambled, meaning) VALUES (?, ?, ?, ?, ?, ?)",
		"session-1", 0, 1, "cat", "tca", "a feline pet"); err != nil {
		t.Fatalf("Failed to insert session round: %v", err)
	}

	if _, err := db.Exec("DELETE FROM game_sessions WHERE id = ?", "session-1"); err != nil {
		t.Fatalf("Failed to delete session: %v", err)
	}

	var count int
	if err := db.QueryRow("SELECT COUNT(*) FROM session_rounds WHERE session_id = ?", "session-1").Scan(&count); err != nil {
		t.Fatalf("Failed to count rounds: %v", err)
	}
	if count != 0 {
		t.Errorf("session rounds survived the cascade, count = %d", count)
	}
}
