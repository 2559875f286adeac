package input

import (
	"snowman-meltdown/internal/game"

	"github.com/gdamore/tcell/v2"
)

// maxLineLen bounds the edit buffer; anything longer is rejected anyway.
const maxLineLen = 32

// Prompter displays the prompt and the text typed so far.
type Prompter interface {
	DrawPrompt(label, text string)
	DrawConfirm(question string)
	Sync()
}

// Screen reads lines from tcell key events, echoing them through a Prompter.
type Screen struct {
	screen tcell.Screen
	view   Prompter
}

// NewScreen returns an InputSource backed by screen.
func NewScreen(screen tcell.Screen, view Prompter) *Screen {
	return &Screen{screen: screen, view: view}
}

// NextGuess reads one guess line.
func (s *Screen) NextGuess() (string, error) { return s.readLine(guessPrompt) }

// NextReplayChoice reads one y/n line.
func (s *Screen) NextReplayChoice() (string, error) { return s.readLine(replayPrompt) }

// readLine blocks until Enter and returns the typed text. Ctrl-C, a
// confirmed Esc or a finalised screen returns game.ErrQuit.
func (s *Screen) readLine(prompt string) (string, error) {
	var buf []rune
	s.view.DrawPrompt(prompt, "")
	for {
		ev := s.screen.PollEvent()
		switch ev := ev.(type) {
		case nil:
			return "", game.ErrQuit
		case *tcell.EventResize:
			s.view.Sync()
		case *tcell.EventKey:
			edit, r := keyToEdit(ev)
			switch edit {
			case EditInsert:
				if len(buf) < maxLineLen {
					buf = append(buf, r)
				}
			case EditBackspace:
				if len(buf) > 0 {
					buf = buf[:len(buf)-1]
				}
			case EditClear:
				buf = buf[:0]
			case EditSubmit:
				line := string(buf)
				s.view.DrawPrompt(prompt, "")
				return line, nil
			case EditCancel:
				if s.confirmQuit() {
					return "", game.ErrQuit
				}
			case EditQuit:
				return "", game.ErrQuit
			default:
				continue
			}
			s.view.DrawPrompt(prompt, string(buf))
		}
	}
}

// confirmQuit shows a "Really quit? (y/n)" box. Returns true if confirmed.
func (s *Screen) confirmQuit() bool {
	for {
		s.view.DrawConfirm("Really quit? (y/n)")
		switch ev := s.screen.PollEvent().(type) {
		case nil:
			return true
		case *tcell.EventResize:
			s.view.Sync()
		case *tcell.EventKey:
			if ev.Key() == tcell.KeyEscape {
				return false
			}
			switch ev.Rune() {
			case 'y', 'Y':
				return true
			case 'n', 'N':
				return false
			}
		}
	}
}

// WaitKey blocks until any key is pressed or the screen is finalised.
func (s *Screen) WaitKey() {
	for {
		switch s.screen.PollEvent().(type) {
		case nil, *tcell.EventKey:
			return
		case *tcell.EventResize:
			s.view.Sync()
		}
	}
}
