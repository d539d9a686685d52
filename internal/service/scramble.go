package service

import (
	"math/rand"
)

// Scrambler shuffles word letters for game rounds
type Scrambler struct {
	rng *rand.Rand
}

// NewScrambler creates a scrambler using the given random source. Tests pass
// a seeded source for reproducibility.
func NewScrambler(rng *rand.Rand) *Scrambler {
	return &Scrambler{rng: rng}
}

// maxScrambleAttempts bounds the reshuffle loop for words like "aab" where
// most permutations collide with the original.
const maxScrambleAttempts = 20

// Scramble returns a random permutation of the word's letters that differs
// from the original. Words too short or too uniform to have a distinct
// permutation are returned unchanged.
func (s *Scrambler) Scramble(word string) string {
	if !hasDistinctPermutation(word) {
		return word
	}

	letters := []rune(word)
	for attempt := 0; attempt < maxScrambleAttempts; attempt++ {
		for i := len(letters) - 1; i > 0; i-- {
			j := s.rng.Intn(i + 1)
			letters[i], letters[j] = letters[j], letters[i]
		}
		if scrambled := string(letters); scrambled != word {
			return scrambled
		}
	}

	// Every shuffle collided with the original. Swap the first pair of
	// distinct letters so the result is guaranteed to differ.
	for i := 1; i < len(letters); i++ {
		if letters[i] != letters[0] {
			letters[0], letters[i] = letters[i], letters[0]
			break
		}
	}
	return string(letters)
}

// hasDistinctPermutation reports whether the word contains at least two
// different letters, so a permutation other than the identity exists.
func hasDistinctPermutation(word string) bool {
	if len(word) < 2 {
		return false
	}
	runes := []rune(word)
	for _, r := range runes[1:] {
		if r != runes[0] {
			return true
		}
	}
	return false
}
