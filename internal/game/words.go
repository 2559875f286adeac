package game

import (
	"errors"
	"strings"
)

// ErrEmptyWordBank is returned when no usable secret word is configured.
var ErrEmptyWordBank = errors.New("word bank is empty")

// RandSource is the slice of *rand.Rand the word bank needs.
type RandSource interface {
	Intn(n int) int
}

// WordBank holds the candidate secret words for a session.
type WordBank struct {
	words []string
	rng   RandSource
}

// NewWordBank lowercases and trims words, keeping only purely alphabetic
// entries. It fails with ErrEmptyWordBank if nothing survives.
func NewWordBank(words []string, rng RandSource) (*WordBank, error) {
	kept := make([]string, 0, len(words))
	for _, w := range words {
		w = strings.ToLower(strings.TrimSpace(w))
		if w != "" && isLetters(w) {
			kept = append(kept, w)
		}
	}
	if len(kept) == 0 {
		return nil, ErrEmptyWordBank
	}
	return &WordBank{words: kept, rng: rng}, nil
}

// PickRandom draws a word uniformly. Draws are independent; a word may repeat.
func (b *WordBank) PickRandom() string {
	return b.words[b.rng.Intn(len(b.words))]
}

// Len returns the number of candidate words.
func (b *WordBank) Len() int { return len(b.words) }

// isLetters reports whether s is all lowercase ASCII letters.
func isLetters(s string) bool {
	for _, r := range s {
		if r < 'a' || r > 'z' {
			return false
		}
	}
	return true
}
