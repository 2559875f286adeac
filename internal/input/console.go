package input

import (
	"bufio"
	"errors"
	"fmt"
	"io"

	"snowman-meltdown/assets"
	"snowman-meltdown/internal/game"
)

const (
	guessPrompt  = assets.GlyphTarget + " Guess a letter: "
	replayPrompt = assets.GlyphReplay + " Would you like to play again? (y/n): "
)

// maxConsoleLine caps the bytes kept per line; the rest of a longer line is
// read and discarded so the truncated text is still rejected as too long.
const maxConsoleLine = 256

// Console reads lines from r, writing prompts to w.
type Console struct {
	r *bufio.Reader
	w io.Writer
}

// NewConsole returns an InputSource over a line-oriented reader.
func NewConsole(r io.Reader, w io.Writer) *Console {
	return &Console{r: bufio.NewReader(r), w: w}
}

// NextGuess prompts for and reads one guess line.
func (c *Console) NextGuess() (string, error) { return c.readLine(guessPrompt) }

// NextReplayChoice prompts for and reads one y/n line.
func (c *Console) NextReplayChoice() (string, error) { return c.readLine("\n" + replayPrompt) }

// readLine returns game.ErrQuit at end of input.
func (c *Console) readLine(prompt string) (string, error) {
	if _, err := fmt.Fprint(c.w, prompt); err != nil {
		return "", fmt.Errorf("write prompt: %w", err)
	}
	var line []byte
	for {
		chunk, isPrefix, err := c.r.ReadLine()
		if err != nil {
			if errors.Is(err, io.EOF) {
				fmt.Fprintln(c.w)
				return "", game.ErrQuit
			}
			return "", fmt.Errorf("read input: %w", err)
		}
		if room := maxConsoleLine - len(line); room > 0 {
			line = append(line, chunk[:min(room, len(chunk))]...)
		}
		if !isPrefix {
			return string(line), nil
		}
	}
}
