package render

import (
	"strings"
	"testing"

	"snowman-meltdown/internal/game"

	"github.com/gdamore/tcell/v2"
)

// ─── helpers ──────────────────────────────────────────────────────────────────

func newSimScreen(t *testing.T) tcell.SimulationScreen {
	t.Helper()
	ss := tcell.NewSimulationScreen("UTF-8")
	ss.SetSize(80, 24)
	if err := ss.Init(); err != nil {
		t.Fatalf("SimulationScreen.Init: %v", err)
	}
	t.Cleanup(ss.Fini)
	return ss
}

// screenRows returns each row's first runes as a string.
func screenRows(ss tcell.SimulationScreen) []string {
	cells, w, h := ss.GetContents()
	rows := make([]string, h)
	for y := 0; y < h; y++ {
		var sb strings.Builder
		for x := 0; x < w; x++ {
			c := cells[y*w+x]
			if len(c.Runes) == 0 {
				sb.WriteRune(' ')
				continue
			}
			sb.WriteRune(c.Runes[0])
		}
		rows[y] = sb.String()
	}
	return rows
}

func screenContains(ss tcell.SimulationScreen, text string) bool {
	for _, row := range screenRows(ss) {
		if strings.Contains(row, text) {
			return true
		}
	}
	return false
}

// ─── screen renderer ──────────────────────────────────────────────────────────

func TestScreenShowState(t *testing.T) {
	ss := newSimScreen(t)
	r := NewScreen(ss)
	r.ShowState(game.Snapshot{
		Stage:       1,
		MaxMistakes: 6,
		Art:         "  ___\n (o o)",
		Masked:      "C _ T",
		Correct:     []rune{'c', 't'},
		Incorrect:   []rune{'z'},
	})
	for _, want := range []string{"(o o)", "C _ T", "Health: 5/6", "C, T", "Z"} {
		if !screenContains(ss, want) {
			t.Errorf("screen missing %q", want)
		}
	}
}

func TestScreenMessagesAndPrompt(t *testing.T) {
	ss := newSimScreen(t)
	r := NewScreen(ss)
	r.ShowRoundStart(6, 6)
	r.ShowRejection(&game.Rejection{Reason: game.RejectTooLong, Input: "ab"})
	r.DrawPrompt("Guess a letter: ", "q")
	if !screenContains(ss, "The word has 6 letters.") {
		t.Error("round intro not drawn")
	}
	if !screenContains(ss, "only ONE letter") {
		t.Error("rejection not drawn")
	}
	rows := screenRows(ss)
	if !strings.HasPrefix(rows[len(rows)-1], "Guess a letter: q") {
		t.Errorf("prompt row = %q", rows[len(rows)-1])
	}
}

func TestScreenReplayStartsFreshLog(t *testing.T) {
	ss := newSimScreen(t)
	r := NewScreen(ss)
	r.ShowWelcome()
	r.ShowRoundStart(3, 6)
	if !screenContains(ss, "WELCOME TO SNOWMAN MELTDOWN") || !screenContains(ss, "The word has 3 letters.") {
		t.Fatal("first round should show banner and intro")
	}
	r.ShowReplayAccepted()
	r.ShowRoundStart(8, 6)
	if screenContains(ss, "WELCOME TO SNOWMAN MELTDOWN") {
		t.Error("banner still drawn after replay")
	}
	for _, want := range []string{"Starting a new game...", "The word has 8 letters."} {
		if !screenContains(ss, want) {
			t.Errorf("screen missing %q", want)
		}
	}
}

func TestScreenSummaryClearsBoard(t *testing.T) {
	ss := newSimScreen(t)
	r := NewScreen(ss)
	r.ShowState(game.Snapshot{MaxMistakes: 6, Art: "ART", Masked: "_ _ _"})
	r.ShowSessionSummary(game.SessionStats{GamesPlayed: 2, GamesWon: 1})
	if screenContains(ss, "ART") {
		t.Error("snowman still drawn after summary")
	}
	if !screenContains(ss, "50.0% success rate") {
		t.Error("summary not drawn")
	}
}

func TestScreenMessageLogCapped(t *testing.T) {
	r := NewScreen(newSimScreen(t))
	for i := 0; i < maxMessages+10; i++ {
		r.ShowReplayHint()
	}
	if len(r.messages) != maxMessages {
		t.Errorf("len(messages) = %d; want %d", len(r.messages), maxMessages)
	}
}

func TestDrawTextClipsAtEdge(t *testing.T) {
	ss := newSimScreen(t)
	r := NewScreen(ss)
	end := r.drawText(75, 3, "abcdefghij", tcell.StyleDefault)
	if end != 80 {
		t.Errorf("end column = %d; want 80", end)
	}
}

// ─── hud helpers ──────────────────────────────────────────────────────────────

func TestHealthBar(t *testing.T) {
	cases := []struct {
		health, max int
		want        string
	}{
		{6, 6, "[██████]"},
		{4, 6, "[████░░]"},
		{0, 6, "[░░░░░░]"},
		{-1, 3, "[░░░]"},
		{0, 0, "[]"},
	}
	for _, tc := range cases {
		if got := healthBar(tc.health, tc.max); got != tc.want {
			t.Errorf("healthBar(%d, %d) = %q; want %q", tc.health, tc.max, got, tc.want)
		}
	}
}

func TestStageColorEndpoints(t *testing.T) {
	if got := stageColor(0, 6); got != tcell.NewRGBColor(255, 255, 255) {
		t.Errorf("stage 0 colour = %v; want white", got)
	}
	if got := stageColor(6, 6); got != tcell.NewRGBColor(70, 130, 255) {
		t.Errorf("last stage colour = %v; want meltwater", got)
	}
	if got := healthColor(0, 6); got != tcell.NewRGBColor(230, 50, 50) {
		t.Errorf("zero health colour = %v; want red", got)
	}
}

func TestScreenConfirmBox(t *testing.T) {
	ss := newSimScreen(t)
	r := NewScreen(ss)
	r.DrawPrompt("Guess a letter: ", "")
	r.DrawConfirm("Really quit? (y/n)")
	if !screenContains(ss, "Really quit? (y/n)") {
		t.Error("confirm box not drawn")
	}
	r.DrawPrompt("Guess a letter: ", "a")
	if screenContains(ss, "Really quit?") {
		t.Error("confirm box still drawn after prompt redraw")
	}
}
