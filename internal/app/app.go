// Package app wires the word bank, stage table and a frontend into a session.
package app

import (
	"errors"
	"fmt"
	"io"

	"snowman-meltdown/assets"
	"snowman-meltdown/internal/config"
	"snowman-meltdown/internal/game"
	"snowman-meltdown/internal/input"
	"snowman-meltdown/internal/random"
	"snowman-meltdown/internal/render"

	"github.com/gdamore/tcell/v2"
	"github.com/rs/zerolog"
)

// Content is the fixed game content a session is built from.
type Content struct {
	Words  []string
	Stages []string
}

// DefaultContent is the bundled word list and snowman art.
func DefaultContent() Content {
	return Content{Words: assets.Words, Stages: assets.Stages}
}

// App runs one session with the configured frontend.
type App struct {
	cfg     config.Config
	content Content
	log     zerolog.Logger
	stdin   io.Reader
	stdout  io.Writer

	// newScreen is swapped in tests for a simulation screen.
	newScreen func() (tcell.Screen, error)
}

// New returns an App reading from stdin and writing to stdout in console mode.
func New(cfg config.Config, content Content, log zerolog.Logger, stdin io.Reader, stdout io.Writer) *App {
	return &App{
		cfg:       cfg,
		content:   content,
		log:       log,
		stdin:     stdin,
		stdout:    stdout,
		newScreen: tcell.NewScreen,
	}
}

// Run plays until the player declines a replay or quits. A quit is not an
// error. Bad content fails before anything is drawn.
func (a *App) Run() (game.SessionStats, error) {
	stages, err := game.NewStageTable(a.content.Stages)
	if err != nil {
		return game.SessionStats{}, fmt.Errorf("stage table: %w", err)
	}
	rng, seed, err := random.New(a.cfg.Seed)
	if err != nil {
		return game.SessionStats{}, err
	}
	words, err := game.NewWordBank(a.content.Words, rng)
	if err != nil {
		return game.SessionStats{}, fmt.Errorf("word bank: %w", err)
	}
	a.log.Info().
		Str("ui", a.cfg.UI).
		Int64("seed", seed).
		Int("words", words.Len()).
		Int("max_mistakes", stages.MaxMistakes()).
		Msg("session starting")

	var stats game.SessionStats
	if a.cfg.UI == config.UIConsole {
		out := render.NewConsole(a.stdout)
		stats, err = a.play(stages, words, out, input.NewConsole(a.stdin, a.stdout))
		if err == nil || errors.Is(err, game.ErrQuit) {
			if werr := out.Err(); werr != nil {
				err = werr
			}
		}
	} else {
		stats, err = a.runScreen(stages, words)
	}
	if errors.Is(err, game.ErrQuit) {
		a.log.Info().Msg("player quit")
		err = nil
	}
	return stats, err
}

func (a *App) runScreen(stages game.StageTable, words *game.WordBank) (game.SessionStats, error) {
	screen, err := a.newScreen()
	if err != nil {
		return game.SessionStats{}, fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return game.SessionStats{}, fmt.Errorf("init screen: %w", err)
	}
	defer screen.Fini()

	view := render.NewScreen(screen)
	in := input.NewScreen(screen, view)
	stats, err := a.play(stages, words, view, in)
	if err == nil || errors.Is(err, game.ErrQuit) {
		in.WaitKey()
	}
	return stats, err
}

func (a *App) play(stages game.StageTable, words *game.WordBank, r game.Renderer, in game.InputSource) (game.SessionStats, error) {
	engine := game.NewEngine(stages, words, r, in, a.log)
	return game.NewSession(engine, r, a.log).Run(game.PromptReplay(in, r))
}
