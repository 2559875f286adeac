package game

import (
	"errors"
	"strings"

	"github.com/rs/zerolog"
)

// SessionStats counts finished rounds for one process run.
type SessionStats struct {
	GamesPlayed int
	GamesWon    int
}

// WinRate returns GamesWon/GamesPlayed as a percentage, or 0 before any game.
func (s SessionStats) WinRate() float64 {
	if s.GamesPlayed == 0 {
		return 0
	}
	return float64(s.GamesWon) / float64(s.GamesPlayed) * 100
}

// ReplayDecision reports whether another round should be played.
type ReplayDecision func() (bool, error)

// Session repeats rounds until the replay decision says stop.
type Session struct {
	engine   *Engine
	renderer Renderer
	stats    SessionStats
	log      zerolog.Logger
}

// NewSession wraps an engine. The renderer receives the banners and summary.
func NewSession(engine *Engine, r Renderer, log zerolog.Logger) *Session {
	return &Session{engine: engine, renderer: r, log: log}
}

// Run plays rounds until replay returns false. ErrQuit from the input source
// ends the session like a "no" would, after the summary is shown; any other
// error aborts without a summary.
func (s *Session) Run(replay ReplayDecision) (SessionStats, error) {
	s.renderer.ShowWelcome()
	for {
		outcome, err := s.engine.RunRound()
		if err != nil {
			return s.stop(err)
		}
		s.stats.GamesPlayed++
		if outcome == StateWon {
			s.stats.GamesWon++
		}

		again, err := replay()
		if err != nil {
			return s.stop(err)
		}
		if !again {
			return s.stop(nil)
		}
		s.renderer.ShowReplayAccepted()
	}
}

func (s *Session) stop(err error) (SessionStats, error) {
	if err != nil && !errors.Is(err, ErrQuit) {
		return s.stats, err
	}
	s.renderer.ShowSessionSummary(s.stats)
	s.log.Info().
		Int("played", s.stats.GamesPlayed).
		Int("won", s.stats.GamesWon).
		Float64("win_rate", s.stats.WinRate()).
		Msg("session finished")
	return s.stats, err
}

// ParseReplayChoice maps y/yes and n/no, in any case, to a decision.
// ok is false for anything else.
func ParseReplayChoice(raw string) (again, ok bool) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "y", "yes":
		return true, true
	case "n", "no":
		return false, true
	}
	return false, false
}

// PromptReplay builds a ReplayDecision that re-asks until the answer parses.
func PromptReplay(in InputSource, r Renderer) ReplayDecision {
	return func() (bool, error) {
		for {
			raw, err := in.NextReplayChoice()
			if err != nil {
				return false, err
			}
			if again, ok := ParseReplayChoice(raw); ok {
				return again, nil
			}
			r.ShowReplayHint()
		}
	}
}
