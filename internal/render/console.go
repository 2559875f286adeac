package render

import (
	"fmt"
	"io"
	"strings"

	"snowman-meltdown/assets"
	"snowman-meltdown/internal/game"
)

const separatorWidth = 50

// Console renders the game as plain lines of text, for pipes and dumb terminals.
type Console struct {
	w   io.Writer
	err error
}

// NewConsole returns a Console writing to w.
func NewConsole(w io.Writer) *Console { return &Console{w: w} }

// Err returns the first write error. Nothing is written after it.
func (c *Console) Err() error { return c.err }

func (c *Console) println(lines ...string) {
	for _, l := range lines {
		if c.err != nil {
			return
		}
		if _, err := fmt.Fprintln(c.w, l); err != nil {
			c.err = fmt.Errorf("write output: %w", err)
		}
	}
}

func (c *Console) separator() {
	c.println(strings.Repeat("═", separatorWidth))
}

// ShowWelcome prints the session banner.
func (c *Console) ShowWelcome() {
	banner := strings.Repeat("🎭", 20)
	c.println("", banner)
	c.println(welcomeLines()...)
	c.println(banner)
}

// ShowRoundStart prints the new-game banner.
func (c *Console) ShowRoundStart(wordLength, maxMistakes int) {
	c.println("", fmt.Sprintf("%s %s NEW GAME %s %s", assets.GlyphGame,
		strings.Repeat("=", 20), strings.Repeat("=", 20), assets.GlyphGame))
	c.println(roundStartLines(wordLength, maxMistakes)...)
}

// ShowState prints the snowman, the masked word and the guessed letters.
func (c *Console) ShowState(s game.Snapshot) {
	c.separator()
	c.println(s.Art, "")
	c.println(wordLine(s), healthLine(s))
	if len(s.Correct) > 0 {
		c.println(fmt.Sprintf("%s Correct guesses: %s", assets.GlyphCorrect, letterList(s.Correct)))
	}
	if len(s.Incorrect) > 0 {
		c.println(fmt.Sprintf("%s Wrong guesses: %s", assets.GlyphWrong, letterList(s.Incorrect)))
	}
	c.separator()
}

// ShowGuessResult prints the hit/miss feedback for one guess.
func (c *Console) ShowGuessResult(f game.GuessFeedback) {
	c.println("")
	c.println(guessResultLines(f)...)
}

// ShowRejection explains why the last input was ignored.
func (c *Console) ShowRejection(r *game.Rejection) {
	c.println(rejectionLine(r))
}

// ShowRoundResult prints the victory or meltdown banner.
func (c *Console) ShowRoundResult(outcome game.RoundState, secretWord string, guessCount int) {
	deco := strings.Repeat(assets.GlyphParty, 15)
	if outcome != game.StateWon {
		deco = strings.Repeat(assets.GlyphSnowflake, 15)
	}
	c.println("", deco)
	c.println(roundResultLines(outcome, secretWord, guessCount)...)
	c.println(deco)
}

// ShowReplayHint asks for a y/n answer again.
func (c *Console) ShowReplayHint() {
	c.println(replayHintLine())
}

// ShowReplayAccepted announces the next round.
func (c *Console) ShowReplayAccepted() {
	c.println(replayAcceptedLine())
}

// ShowSessionSummary prints the farewell and statistics.
func (c *Console) ShowSessionSummary(s game.SessionStats) {
	c.println("")
	c.println(summaryLines(s)...)
}
