package render

import (
	"fmt"
	"strings"

	"snowman-meltdown/assets"
	"snowman-meltdown/internal/game"

	"github.com/gdamore/tcell/v2"
)

// drawStatus renders the masked word, health bar and guessed letters.
// It returns the row below the panel.
func (r *Screen) drawStatus(y int, s game.Snapshot) int {
	white := tcell.StyleDefault.Foreground(tcell.ColorWhite)

	r.centerText(y, wordLine(s), white.Bold(true))
	y++

	bar := healthBar(s.Health(), s.MaxMistakes)
	end := r.drawText(2, y, healthLine(s)+"  ", white)
	r.drawText(end, y, bar, tcell.StyleDefault.Foreground(healthColor(s.Health(), s.MaxMistakes)))
	y++

	if len(s.Correct) > 0 {
		r.drawText(2, y, fmt.Sprintf("%s Correct guesses: %s", assets.GlyphCorrect, letterList(s.Correct)),
			tcell.StyleDefault.Foreground(tcell.ColorGreen))
		y++
	}
	if len(s.Incorrect) > 0 {
		r.drawText(2, y, fmt.Sprintf("%s Wrong guesses: %s", assets.GlyphWrong, letterList(s.Incorrect)),
			tcell.StyleDefault.Foreground(tcell.ColorRed))
		y++
	}
	return y
}

// drawMessages fills rows [top, bottom) with the newest messages.
func (r *Screen) drawMessages(top, bottom int) {
	rows := bottom - top
	if rows <= 0 {
		return
	}
	start := max(len(r.messages)-rows, 0)
	for i, msg := range r.messages[start:] {
		r.drawText(1, top+i, msg, tcell.StyleDefault.Foreground(tcell.ColorLightYellow))
	}
}

func (r *Screen) drawHLine(y int, color tcell.Color) {
	w, _ := r.screen.Size()
	style := tcell.StyleDefault.Foreground(color)
	for x := 0; x < w; x++ {
		r.screen.SetContent(x, y, '─', nil, style)
	}
}

// healthBar renders e.g. "[████░░]" for 4 of 6.
func healthBar(health, maxHealth int) string {
	if maxHealth <= 0 {
		return "[]"
	}
	health = min(max(health, 0), maxHealth)
	return "[" + strings.Repeat("█", health) + strings.Repeat("░", maxHealth-health) + "]"
}
