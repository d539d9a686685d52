package database

import (
	"bufio"
	"fmt"
	"log"
	"net/http"
	"strings"
	"time"
)

const badWordsURL = "https://raw.githubusercontent.com/LDNOOBW/List-of-Dirty-Naughty-Obscene-and-Otherwise-Bad-Words/refs/heads/master/en"

// SeedBadWords fetches and seeds the bad words list used to screen public
// display names. Skips the download when the table is already populated.
func (db *DB) SeedBadWords() error {
	var count int
	err := db.QueryRow("SELECT COUNT(*) FROM bad_words").Scan(&count)
	if err != nil {
		return fmt.Errorf("failed to check bad words count: %w", err)
	}

	if count > 0 {
		log.Printf("Bad words filter already populated with %d words", count)
		return nil
	}

	log.Println("Downloading bad words list...")

	client := &http.Client{Timeout: 30 * time.Second}
	resp, err := client.Get(badWordsURL)
	if err != nil {
		return fmt.Errorf("failed to download bad words list: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("bad status code from bad words URL: %d", resp.StatusCode)
	}

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	insertQuery := db.Dialect.RewriteQuery("INSERT INTO bad_words (word) VALUES (?)")
	stmt, err := tx.Prepare(insertQuery)
	if err != nil {
		return fmt.Errorf("failed to prepare statement: %w", err)
	}
	defer stmt.Close()

	wordsAdded := 0
	scanner := bufio.NewScanner(resp.Body)
	for scanner.Scan() {
		word := strings.ToLower(strings.TrimSpace(scanner.Text()))
		if word == "" {
			continue
		}
		if _, err := stmt.Exec(word); err != nil {
			return fmt.Errorf("failed to insert bad word: %w", err)
		}
		wordsAdded++
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("failed to read bad words list: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit bad words: %w", err)
	}

	log.Printf("Bad words filter seeded with %d words", wordsAdded)
	return nil
}

// ContainsBadWord reports whether any whitespace-separated token of the given
// text appears in the bad words table. Comparison is case-insensitive.
func (db *DB) ContainsBadWord(text string) (bool, error) {
	for _, token := range strings.Fields(strings.ToLower(text)) {
		var count int
		err := db.QueryRow("SELECT COUNT(*) FROM bad_words WHERE word = ?", token).Scan(&count)
		if err != nil {
			return false, fmt.Errorf("failed to check bad words: %w", err)
		}
		if count > 0 {
			return true, nil
		}
	}
	return false, nil
}
