package render

import (
	"strings"

	"snowman-meltdown/assets"
	"snowman-meltdown/internal/game"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
)

const maxMessages = 50

// Screen draws the game onto a tcell screen. Every Show call redraws the
// whole frame from the latest snapshot and the message log.
type Screen struct {
	screen   tcell.Screen
	state    game.Snapshot
	hasState bool
	messages []string
	prompt   string
	input    string
	confirm  string
}

// NewScreen creates a Screen renderer for an initialised tcell screen.
func NewScreen(screen tcell.Screen) *Screen {
	return &Screen{screen: screen}
}

// ShowWelcome starts the message log with the session banner.
func (r *Screen) ShowWelcome() {
	r.messages = nil
	r.addMessages(welcomeLines()...)
	r.draw()
}

// ShowRoundStart logs the round intro below the banner or replay notice.
func (r *Screen) ShowRoundStart(wordLength, maxMistakes int) {
	r.addMessages(roundStartLines(wordLength, maxMistakes)...)
	r.draw()
}

// ShowState replaces the snapshot drawn above the message log.
func (r *Screen) ShowState(s game.Snapshot) {
	r.state = s
	r.hasState = true
	r.draw()
}

// ShowGuessResult logs hit/miss feedback.
func (r *Screen) ShowGuessResult(f game.GuessFeedback) {
	r.addMessages(guessResultLines(f)...)
	r.draw()
}

// ShowRejection logs why the last input was ignored.
func (r *Screen) ShowRejection(rej *game.Rejection) {
	r.addMessages(rejectionLine(rej))
	r.draw()
}

// ShowRoundResult logs the victory or meltdown lines.
func (r *Screen) ShowRoundResult(outcome game.RoundState, secretWord string, guessCount int) {
	r.addMessages(roundResultLines(outcome, secretWord, guessCount)...)
	r.draw()
}

// ShowReplayHint logs the y/n reminder.
func (r *Screen) ShowReplayHint() {
	r.addMessages(replayHintLine())
	r.draw()
}

// ShowReplayAccepted starts a fresh log for the next round.
func (r *Screen) ShowReplayAccepted() {
	r.messages = nil
	r.addMessages(replayAcceptedLine())
	r.draw()
}

// ShowSessionSummary clears the board and shows the farewell.
func (r *Screen) ShowSessionSummary(s game.SessionStats) {
	r.hasState = false
	r.messages = nil
	r.prompt, r.input = "", ""
	r.addMessages(summaryLines(s)...)
	r.addMessages("", "Press any key to exit.")
	r.draw()
}

// DrawPrompt shows label and the text typed so far on the bottom row.
func (r *Screen) DrawPrompt(label, text string) {
	r.prompt, r.input = label, text
	r.confirm = ""
	r.draw()
}

// DrawConfirm overlays a centred question box until the next DrawPrompt.
func (r *Screen) DrawConfirm(question string) {
	r.confirm = question
	r.draw()
}

// Sync repaints after a terminal resize.
func (r *Screen) Sync() {
	r.screen.Sync()
	r.draw()
}

func (r *Screen) addMessages(msgs ...string) {
	r.messages = append(r.messages, msgs...)
	if len(r.messages) > maxMessages {
		r.messages = r.messages[len(r.messages)-maxMessages:]
	}
}

// draw renders title, snowman, status panel, message log and prompt.
func (r *Screen) draw() {
	r.screen.Clear()
	_, h := r.screen.Size()

	title := assets.GlyphSnowman + " SNOWMAN MELTDOWN " + assets.GlyphSnowman
	r.centerText(0, title, tcell.StyleDefault.Foreground(tcell.NewRGBColor(150, 220, 255)).Bold(true))
	r.drawHLine(1, tcell.ColorGray)

	y := 2
	if r.hasState {
		y = r.drawArt(y, r.state)
		y = r.drawStatus(y+1, r.state)
		r.drawHLine(y, tcell.ColorGray)
		y++
	}

	promptY := h - 1
	r.drawMessages(y, promptY-1)
	r.drawHLine(promptY-1, tcell.ColorGray)

	if r.prompt == "" {
		r.screen.HideCursor()
	} else {
		end := r.drawText(0, promptY, r.prompt+r.input, tcell.StyleDefault.Foreground(tcell.ColorWhite))
		r.screen.ShowCursor(end, promptY)
	}
	if r.confirm != "" {
		r.screen.HideCursor()
		r.drawConfirmBox(r.confirm)
	}
	r.screen.Show()
}

// drawConfirmBox draws question inside a bordered box in the middle of the screen.
func (r *Screen) drawConfirmBox(question string) {
	text := " " + question + " "
	width := runewidth.StringWidth(text) + 4
	hdrStyle := tcell.StyleDefault.Foreground(tcell.ColorYellow).Bold(true)
	borderStyle := tcell.StyleDefault.Foreground(tcell.ColorGray)

	sw, sh := r.screen.Size()
	boxH := 3
	x0 := max((sw-width)/2, 0)
	y0 := max((sh-boxH)/2, 0)

	for col := x0; col < x0+width; col++ {
		r.screen.SetContent(col, y0, '─', nil, borderStyle)
		r.screen.SetContent(col, y0+1, ' ', nil, hdrStyle)
		r.screen.SetContent(col, y0+boxH-1, '─', nil, borderStyle)
	}
	for row := y0; row < y0+boxH; row++ {
		r.screen.SetContent(x0, row, '│', nil, borderStyle)
		r.screen.SetContent(x0+width-1, row, '│', nil, borderStyle)
	}
	r.screen.SetContent(x0, y0, '┌', nil, borderStyle)
	r.screen.SetContent(x0+width-1, y0, '┐', nil, borderStyle)
	r.screen.SetContent(x0, y0+boxH-1, '└', nil, borderStyle)
	r.screen.SetContent(x0+width-1, y0+boxH-1, '┘', nil, borderStyle)
	r.drawText(x0+2, y0+1, text, hdrStyle)
}

// drawArt renders the stage art centred as a block and returns the next free row.
func (r *Screen) drawArt(y int, s game.Snapshot) int {
	w, _ := r.screen.Size()
	lines := strings.Split(s.Art, "\n")
	widest := 0
	for _, l := range lines {
		widest = max(widest, runewidth.StringWidth(l))
	}
	x := max((w-widest)/2, 0)
	style := tcell.StyleDefault.Foreground(stageColor(s.Stage, s.MaxMistakes))
	for i, l := range lines {
		r.drawText(x, y+i, l, style)
	}
	return y + len(lines)
}

// putGlyph draws a single glyph (ASCII or multi-rune emoji) at screen position (x, y).
func (r *Screen) putGlyph(x, y int, glyph string, style tcell.Style) {
	runes := []rune(glyph)
	if len(runes) == 0 {
		return
	}
	mainc := runes[0]
	var combc []rune
	if len(runes) > 1 {
		combc = runes[1:]
	}
	r.screen.SetContent(x, y, mainc, combc, style)
	if runewidth.StringWidth(glyph) == 2 {
		// Fill the second column to avoid rendering artifacts.
		r.screen.SetContent(x+1, y, ' ', nil, style)
	}
}

// drawText writes text starting at (x, y), keeping zero-width runes such as
// variation selectors attached to the glyph before them. Text past the right
// edge is dropped. It returns the column after the last glyph.
func (r *Screen) drawText(x, y int, text string, style tcell.Style) int {
	w, _ := r.screen.Size()
	runes := []rune(text)
	col := x
	for i := 0; i < len(runes); {
		j := i + 1
		for j < len(runes) && runewidth.RuneWidth(runes[j]) == 0 {
			j++
		}
		glyph := string(runes[i:j])
		gw := max(runewidth.StringWidth(glyph), 1)
		if col+gw > w {
			break
		}
		r.putGlyph(col, y, glyph, style)
		col += gw
		i = j
	}
	return col
}

func (r *Screen) centerText(y int, text string, style tcell.Style) {
	w, _ := r.screen.Size()
	r.drawText(max((w-runewidth.StringWidth(text))/2, 0), y, text, style)
}
