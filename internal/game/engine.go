package game

import (
	"fmt"

	"github.com/rs/zerolog"
)

// Engine plays single rounds against a renderer and an input source.
type Engine struct {
	stages   StageTable
	words    *WordBank
	renderer Renderer
	input    InputSource
	log      zerolog.Logger
}

// NewEngine wires an engine. Pass zerolog.Nop() to discard logs.
func NewEngine(stages StageTable, words *WordBank, r Renderer, in InputSource, log zerolog.Logger) *Engine {
	return &Engine{stages: stages, words: words, renderer: r, input: in, log: log}
}

// RunRound draws a fresh word and blocks until the round is won or lost.
// The returned state is always StateWon or StateLost when err is nil.
func (e *Engine) RunRound() (RoundState, error) {
	round := NewRound(e.words.PickRandom(), e.stages.MaxMistakes())
	e.log.Debug().Str("secret", round.Secret()).Msg("round started")

	e.renderer.ShowRoundStart(len([]rune(round.Secret())), round.MaxMistakes())
	e.renderer.ShowState(e.snapshot(round))

	for round.State() == StateInProgress {
		letter, err := e.nextLetter(round)
		if err != nil {
			return StateInProgress, err
		}
		n, err := round.Apply(letter)
		if err != nil {
			return StateInProgress, fmt.Errorf("apply %q: %w", string(letter), err)
		}
		e.renderer.ShowGuessResult(GuessFeedback{
			Letter:      letter,
			Occurrences: n,
			Remaining:   round.MaxMistakes() - round.Mistakes(),
		})
		e.renderer.ShowState(e.snapshot(round))
	}

	outcome := round.State()
	e.renderer.ShowRoundResult(outcome, round.Secret(), round.GuessCount())
	e.log.Info().
		Stringer("outcome", outcome).
		Int("guesses", round.GuessCount()).
		Int("mistakes", round.Mistakes()).
		Msg("round finished")
	return outcome, nil
}

// nextLetter asks for guesses until one passes validation.
func (e *Engine) nextLetter(round *Round) (rune, error) {
	for {
		raw, err := e.input.NextGuess()
		if err != nil {
			return 0, err
		}
		letter, rej := Validate(raw, round.guessed)
		if rej == nil {
			return letter, nil
		}
		e.log.Debug().Stringer("reason", rej.Reason).Str("input", rej.Input).Msg("guess rejected")
		e.renderer.ShowRejection(rej)
	}
}

func (e *Engine) snapshot(round *Round) Snapshot {
	correct, incorrect := round.Partition()
	return Snapshot{
		Stage:       round.Mistakes(),
		MaxMistakes: round.MaxMistakes(),
		Art:         e.stages.Stage(round.Mistakes()),
		Masked:      round.Mask(),
		Correct:     correct,
		Incorrect:   incorrect,
	}
}
