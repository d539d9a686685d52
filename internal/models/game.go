package models

import "time"

// SessionRound is a single puzzle inside an ephemeral game session.
// The true word is kept server-side so the finisher can recompute outcomes.
type SessionRound struct {
	WordID    int64  `json:"wordId"`
	Word      string `json:"word"`
	Scrambled string `json:"scrambled"`
	Meaning   string `json:"meaning"`
}

// GameSession is the ephemeral state of one in-progress game. It is created
// when a game starts and deleted when the game finishes.
type GameSession struct {
	ID         string         `json:"id"`
	UserID     int64          `json:"userId"`
	CategoryID int64          `json:"category"`
	Difficulty string         `json:"difficulty"`
	Rounds     []SessionRound `json:"rounds"`
	CreatedAt  time.Time      `json:"createdAt"`
}

// IsExpired reports whether the session is older than the given TTL
func (s *GameSession) IsExpired(ttl time.Duration) bool {
	return time.Now().After(s.CreatedAt.Add(ttl))
}

// GameRound is the recorded outcome of one round in a finished game
type GameRound struct {
	WordID       int64  `json:"wordId"`
	Word         string `json:"word"`
	Scrambled    string `json:"scrambled"`
	UserAnswer   string `json:"userAnswer"`
	Correct      bool   `json:"correct"`
	TimeTaken    int    `json:"timeTaken"`
	UsedHint     bool   `json:"usedHint"`
	PointsEarned int    `json:"pointsEarned"`
}

// GameResult is the permanent record of a finished game
type GameResult struct {
	ID         int64       `json:"id"`
	UserID     int64       `json:"userId"`
	UserName   string      `json:"userName"`
	Score      int         `json:"score"`
	Category   string      `json:"category"`
	Difficulty string      `json:"difficulty"`
	Rounds     []GameRound `json:"rounds"`
	CreatedAt  time.Time   `json:"createdAt"`
}

// LeaderboardEntry is the public projection of a game result
type LeaderboardEntry struct {
	ID         int64     `json:"id"`
	UserID     int64     `json:"userId"`
	UserName   string    `json:"userName"`
	Score      int       `json:"score"`
	Category   string    `json:"category"`
	Difficulty string    `json:"difficulty"`
	CreatedAt  time.Time `json:"createdAt"`
}
