package game

import (
	"errors"
	"sort"
	"strings"
	"unicode"
)

// ErrRoundOver is returned when a letter is applied to a finished round.
var ErrRoundOver = errors.New("round is over")

// MaskPlaceholder stands in for an unrevealed letter.
const MaskPlaceholder = "_"

// RoundState tracks where a round is in its lifecycle.
type RoundState uint8

const (
	StateInProgress RoundState = iota
	StateWon
	StateLost
)

func (s RoundState) String() string {
	switch s {
	case StateInProgress:
		return "in progress"
	case StateWon:
		return "won"
	case StateLost:
		return "lost"
	}
	return "unknown"
}

// Round is the mutable state of one round. The outcome is derived from the
// secret word, the guessed letters and the mistake count on every call.
type Round struct {
	secret      string
	maxMistakes int
	guessed     map[rune]bool
	accepted    int
	mistakes    int
}

// NewRound starts a round with no guesses and no mistakes.
func NewRound(secret string, maxMistakes int) *Round {
	return &Round{
		secret:      strings.ToLower(secret),
		maxMistakes: maxMistakes,
		guessed:     make(map[rune]bool),
	}
}

// Secret returns the secret word.
func (r *Round) Secret() string { return r.secret }

// Mistakes returns the current mistake count.
func (r *Round) Mistakes() int { return r.mistakes }

// MaxMistakes returns the mistake budget.
func (r *Round) MaxMistakes() int { return r.maxMistakes }

// GuessCount returns the number of accepted guesses.
func (r *Round) GuessCount() int { return r.accepted }

// Guessed reports whether letter has already been accepted.
func (r *Round) Guessed(letter rune) bool { return r.guessed[unicode.ToLower(letter)] }

// State computes the round's state.
func (r *Round) State() RoundState {
	if r.complete() {
		return StateWon
	}
	if r.mistakes >= r.maxMistakes {
		return StateLost
	}
	return StateInProgress
}

func (r *Round) complete() bool {
	for _, c := range r.secret {
		if !r.guessed[c] {
			return false
		}
	}
	return true
}

// Apply records an accepted letter. It reports how many times the letter
// occurs in the secret word; zero means the guess cost a mistake.
func (r *Round) Apply(letter rune) (int, error) {
	if r.State() != StateInProgress {
		return 0, ErrRoundOver
	}
	letter = unicode.ToLower(letter)
	if rej := CheckNotRepeated(letter, r.guessed); rej != nil {
		return 0, rej
	}
	r.guessed[letter] = true
	r.accepted++
	n := strings.Count(r.secret, string(letter))
	if n == 0 {
		r.mistakes++
	}
	return n, nil
}

// Mask renders the secret word with unguessed positions hidden, e.g. "C _ T".
func (r *Round) Mask() string {
	parts := make([]string, 0, len(r.secret))
	for _, c := range r.secret {
		if r.guessed[c] {
			parts = append(parts, string(unicode.ToUpper(c)))
		} else {
			parts = append(parts, MaskPlaceholder)
		}
	}
	return strings.Join(parts, " ")
}

// Partition splits the guessed letters into hits and misses, each sorted.
func (r *Round) Partition() (correct, incorrect []rune) {
	for c := range r.guessed {
		if strings.ContainsRune(r.secret, c) {
			correct = append(correct, c)
		} else {
			incorrect = append(incorrect, c)
		}
	}
	sort.Slice(correct, func(i, j int) bool { return correct[i] < correct[j] })
	sort.Slice(incorrect, func(i, j int) bool { return incorrect[i] < incorrect[j] })
	return correct, incorrect
}
