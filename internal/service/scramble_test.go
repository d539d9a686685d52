package service

import (
	"math/rand"
	"sort"
	"strings"
	"testing"
)

func sortedLetters(word string) string {
	letters := strings.Split(word, "")
	sort.Strings(letters)
	return strings.Join(letters, "")
}

func TestScramblePreservesLetters(t *testing.T) {
	scrambler := NewScrambler(rand.New(rand.NewSource(1)))

	words := []string{"elephant", "keyboard", "photosynthesis", "ox", "banana"}
	for _, word := range words {
		t.Run(word, func(t *testing.T) {
			scrambled := scrambler.Scramble(word)
			if sortedLetters(scrambled) != sortedLetters(word) {
				t.Errorf("Scramble(%q) = %q, letters do not match", word, scrambled)
			}
		})
	}
}

func TestScrambleDiffersFromOriginal(t *testing.T) {
	scrambler := NewScrambler(rand.New(rand.NewSource(42)))

	words := []string{"cat", "elephant", "keyboard", "ab"}
	for _, word := range words {
		for i := 0; i < 50; i++ {
			if scrambled := scrambler.Scramble(word); scrambled == word {
				t.Errorf("Scramble(%q) returned the original word", word)
				break
			}
		}
	}
}

func TestScrambleDegenerateWords(t *testing.T) {
	scrambler := NewScrambler(rand.New(rand.NewSource(7)))

	tests := []struct {
		name string
		word string
	}{
		{"empty", ""},
		{"single letter", "a"},
		{"repeated letter", "aaaa"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := scrambler.Scramble(tt.word); got != tt.word {
				t.Errorf("Scramble(%q) = %q, want unchanged", tt.word, got)
			}
		})
	}
}

// collidingSource feeds math/rand values that make every Intn(2) call return
// 1, so each Fisher-Yates pass over a two-letter word reproduces the input.
type collidingSource struct{}

func (collidingSource) Int63() int64 { return 1 << 32 }
func (collidingSource) Seed(int64)   {}

func TestScrambleForcesDifferenceAfterCollisions(t *testing.T) {
	scrambler := NewScrambler(rand.New(collidingSource{}))

	if got := scrambler.Scramble("ab"); got != "ba" {
		t.Errorf(`Scramble("ab") = %q, want "ba"`, got)
	}
}

func TestScrambleDeterministicWithSeed(t *testing.T) {
	a := NewScrambler(rand.New(rand.NewSource(99)))
	b := NewScrambler(rand.New(rand.NewSource(99)))

	for i := 0; i < 10; i++ {
		wordA := a.Scramble("dinosaur")
		wordB := b.Scramble("dinosaur")
		if wordA != wordB {
			t.Fatalf("same seed produced %q and %q", wordA, wordB)
		}
	}
}
