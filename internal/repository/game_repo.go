package repository

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"wordscramble/internal/database"
	"wordscramble/internal/models"
)

// ErrSessionGone is returned by SaveResult when the session row was already
// deleted, i.e. the game was finished concurrently or never existed.
var ErrSessionGone = errors.New("game session already deleted")

// GameRepository handles database operations for game sessions and results
type GameRepository struct {
	db *database.DB
}

// NewGameRepository creates a new game repository
func NewGameRepository(db *database.DB) *GameRepository {
	return &GameRepository{db: db}
}

// CreateSession persists an ephemeral game session with its rounds
func (r *GameRepository) CreateSession(session *models.GameSession) error {
	tx, err := r.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	query := `
		INSERT INTO game_sessions (id, user_id, category_id, difficulty, created_at)
		VALUES (?, ?, ?, ?, ?)
	`
	if _, err := tx.Exec(query, session.ID, session.UserID, session.CategoryID, session.Difficulty, session.CreatedAt); err != nil {
		return fmt.Errorf("failed to create session: %w", err)
	}

	roundQuery := `
		INSERT INTO session_rounds (session_id, round_index, word_id, word, scrambled, meaning)
		VALUES (?, ?, ?, ?, ?, ?)
	`
	for i, round := range session.Rounds {
		if _, err := tx.Exec(roundQuery, session.ID, i, round.WordID, round.Word, round.Scrambled, round.Meaning); err != nil {
			return fmt.Errorf("failed to create session round: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit session: %w", err)
	}
	return nil
}

// GetSessionByID retrieves a session with its rounds
func (r *GameRepository) GetSessionByID(id string) (*models.GameSession, error) {
	query := `
		SELECT id, user_id, category_id, difficulty, created_at
		FROM game_sessions
		WHERE id = ?
	`
	session := &models.GameSession{}
	err := r.db.QueryRow(query, id).Scan(
		&session.ID,
		&session.UserID,
		&session.CategoryID,
		&session.Difficulty,
		&session.CreatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get session: %w", err)
	}

	roundQuery := `
		SELECT word_id, word, scrambled, meaning
		FROM session_rounds
		WHERE session_id = ?
		ORDER BY round_index ASC
	`
	rows, err := r.db.Query(roundQuery, id)
	if err != nil {
		return nil, fmt.Errorf("failed to query session rounds: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var round models.SessionRound
		if err := rows.Scan(&round.WordID, &round.Word, &round.Scrambled, &round.Meaning); err != nil {
			return nil, fmt.Errorf("failed to scan session round: %w", err)
		}
		session.Rounds = append(session.Rounds, round)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read session rounds: %w", err)
	}

	return session, nil
}

// DeleteSession removes a session and its rounds
func (r *GameRepository) DeleteSession(id string) error {
	_, err := r.db.Exec("DELETE FROM game_sessions WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("failed to delete session: %w", err)
	}
	return nil
}

// DeleteSessionsBefore removes sessions created before the cutoff and
// returns how many were swept
func (r *GameRepository) DeleteSessionsBefore(cutoff time.Time) (int64, error) {
	result, err := r.db.Exec("DELETE FROM game_sessions WHERE created_at < ?", cutoff)
	if err != nil {
		return 0, fmt.Errorf("failed to delete expired sessions: %w", err)
	}
	return result.RowsAffected()
}

// SaveResult atomically persists a finished game: the permanent result with
// its rounds, the owner's updated stats, and the session delete. If the
// session row is already gone the transaction is rolled back and
// ErrSessionGone is returned, so finishing the same session twice fails.
func (r *GameRepository) SaveResult(result *models.GameResult, sessionID string) (*models.GameResult, error) {
	tx, err := r.db.Begin()
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	deleted, err := tx.Exec("DELETE FROM game_sessions WHERE id = ?", sessionID)
	if err != nil {
		return nil, fmt.Errorf("failed to delete session: %w", err)
	}
	rows, err := deleted.RowsAffected()
	if err != nil {
		return nil, fmt.Errorf("failed to read session delete result: %w", err)
	}
	if rows == 0 {
		return nil, ErrSessionGone
	}

	resultQuery := `
		INSERT INTO game_results (user_id, user_name, score, category, difficulty, created_at)
		VALUES (?, ?, ?, ?, ?, ?)
	`
	resultID, err := tx.ExecReturningID(resultQuery,
		result.UserID, result.UserName, result.Score, result.Category, result.Difficulty, result.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to create result: %w", err)
	}

	roundQuery := `
		INSERT INTO result_rounds (result_id, round_index, word_id, word, scrambled, user_answer, correct, time_taken, used_hint, points_earned)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`
	for i, round := range result.Rounds {
		if _, err := tx.Exec(roundQuery, resultID, i,
			round.WordID, round.Word, round.Scrambled, round.UserAnswer,
			round.Correct, round.TimeTaken, round.UsedHint, round.PointsEarned); err != nil {
			return nil, fmt.Errorf("failed to create result round: %w", err)
		}
	}

	statsQuery := `
		UPDATE users
		SET games_played = games_played + 1,
		    best_score = CASE WHEN ? > best_score THEN ? ELSE best_score END
		WHERE id = ?
	`
	if _, err := tx.Exec(statsQuery, result.Score, result.Score, result.UserID); err != nil {
		return nil, fmt.Errorf("failed to update user stats: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit result: %w", err)
	}

	result.ID = resultID
	return result, nil
}

// GetResultsByUser retrieves a user's results, newest first. A limit of 0
// returns the full history.
func (r *GameRepository) GetResultsByUser(userID int64, limit int) ([]models.GameResult, error) {
	query := `
		SELECT id, user_id, user_name, score, category, difficulty, created_at
		FROM game_results
		WHERE user_id = ?
		ORDER BY created_at DESC
	`
	var rows *sql.Rows
	var err error
	if limit > 0 {
		rows, err = r.db.Query(query+" LIMIT ?", userID, limit)
	} else {
		rows, err = r.db.Query(query, userID)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query results: %w", err)
	}
	defer rows.Close()

	results, err := scanResults(rows)
	if err != nil {
		return nil, err
	}

	for i := range results {
		rounds, err := r.getResultRounds(results[i].ID)
		if err != nil {
			return nil, err
		}
		results[i].Rounds = rounds
	}

	return results, nil
}

// GetTopResults retrieves the highest-scoring results. Ties are broken by
// creation time, earliest first.
func (r *GameRepository) GetTopResults(limit int) ([]models.GameResult, error) {
	query := `
		SELECT id, user_id, user_name, score, category, difficulty, created_at
		FROM game_results
		ORDER BY score DESC, created_at ASC
		LIMIT ?
	`
	rows, err := r.db.Query(query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query top results: %w", err)
	}
	defer rows.Close()

	return scanResults(rows)
}

// DeleteResult removes a result and its rounds
func (r *GameRepository) DeleteResult(id int64) error {
	_, err := r.db.Exec("DELETE FROM game_results WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("failed to delete result: %w", err)
	}
	return nil
}

func (r *GameRepository) getResultRounds(resultID int64) ([]models.GameRound, error) {
	query := `
		SELECT word_id, word, scrambled, user_answer, correct, time_taken, used_hint, points_earned
		FROM result_rounds
		WHERE result_id = ?
		ORDER BY round_index ASC
	`
	rows, err := r.db.Query(query, resultID)
	if err != nil {
		return nil, fmt.Errorf("failed to query result rounds: %w", err)
	}
	defer rows.Close()

	var rounds []models.GameRound
	for rows.Next() {
		var round models.GameRound
		if err := rows.Scan(
			&round.WordID,
			&round.Word,
			&round.Scrambled,
			&round.UserAnswer,
			&round.Correct,
			&round.TimeTaken,
			&round.UsedHint,
			&round.PointsEarned,
		); err != nil {
			return nil, fmt.Errorf("failed to scan result round: %w", err)
		}
		rounds = append(rounds, round)
	}
	return rounds, rows.Err()
}

func scanResults(rows *sql.Rows) ([]models.GameResult, error) {
	var results []models.GameResult
	for rows.Next() {
		var result models.GameResult
		if err := rows.Scan(
			&result.ID,
			&result.UserID,
			&result.UserName,
			&result.Score,
			&result.Category,
			&result.Difficulty,
			&result.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan result: %w", err)
		}
		results = append(results, result)
	}
	return results, rows.Err()
}
