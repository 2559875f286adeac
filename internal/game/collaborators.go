package game

import "errors"

// ErrQuit is returned by an InputSource when the player abandons the session.
var ErrQuit = errors.New("player quit")

// Snapshot is what the renderer needs to draw the current round.
type Snapshot struct {
	Stage       int // equals the mistake count
	MaxMistakes int
	Art         string
	Masked      string
	Correct     []rune // sorted
	Incorrect   []rune // sorted
}

// Health is the number of mistakes still allowed.
func (s Snapshot) Health() int { return s.MaxMistakes - s.Stage }

// GuessFeedback describes the effect of one accepted guess.
type GuessFeedback struct {
	Letter      rune
	Occurrences int
	Remaining   int // mistakes left after this guess
}

// Hit reports whether the letter was in the word.
func (f GuessFeedback) Hit() bool { return f.Occurrences > 0 }

// Renderer presents the game. Implementations own all message text.
type Renderer interface {
	ShowWelcome()
	ShowRoundStart(wordLength, maxMistakes int)
	ShowState(s Snapshot)
	ShowGuessResult(f GuessFeedback)
	ShowRejection(r *Rejection)
	ShowRoundResult(outcome RoundState, secretWord string, guessCount int)
	ShowReplayHint()
	ShowReplayAccepted()
	ShowSessionSummary(s SessionStats)
}

// InputSource yields raw, unvalidated lines from the player.
type InputSource interface {
	NextGuess() (string, error)
	NextReplayChoice() (string, error)
}
