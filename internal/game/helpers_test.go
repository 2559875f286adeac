package game

import (
	"fmt"
	"testing"

	"github.com/rs/zerolog"
)

// ─── helpers ──────────────────────────────────────────────────────────────────

// testStages gives a budget of six mistakes, like the bundled art.
var testStages = []string{"s0", "s1", "s2", "s3", "s4", "s5", "s6"}

func newTestStages(t *testing.T) StageTable {
	t.Helper()
	st, err := NewStageTable(testStages)
	if err != nil {
		t.Fatalf("NewStageTable: %v", err)
	}
	return st
}

// seqRand replays a fixed sequence of indices.
type seqRand struct {
	vals []int
	i    int
}

func (s *seqRand) Intn(n int) int {
	v := s.vals[s.i%len(s.vals)] % n
	s.i++
	return v
}

func newTestBank(t *testing.T, words []string, picks ...int) *WordBank {
	t.Helper()
	if len(picks) == 0 {
		picks = []int{0}
	}
	b, err := NewWordBank(words, &seqRand{vals: picks})
	if err != nil {
		t.Fatalf("NewWordBank: %v", err)
	}
	return b
}

// scriptedInput hands out canned lines and reports ErrQuit when it runs dry.
type scriptedInput struct {
	guesses []string
	replies []string
	err     error // returned instead of ErrQuit when set
}

func (s *scriptedInput) NextGuess() (string, error) {
	if len(s.guesses) == 0 {
		return "", s.exhausted()
	}
	g := s.guesses[0]
	s.guesses = s.guesses[1:]
	return g, nil
}

func (s *scriptedInput) NextReplayChoice() (string, error) {
	if len(s.replies) == 0 {
		return "", s.exhausted()
	}
	r := s.replies[0]
	s.replies = s.replies[1:]
	return r, nil
}

func (s *scriptedInput) exhausted() error {
	if s.err != nil {
		return s.err
	}
	return ErrQuit
}

// recorder is a Renderer that remembers every call.
type recorder struct {
	calls      []string
	states     []Snapshot
	feedback   []GuessFeedback
	rejections []*Rejection
	results    []RoundState
	guessCount []int
	summaries  []SessionStats
	hints      int
}

func (r *recorder) ShowWelcome() { r.calls = append(r.calls, "welcome") }

func (r *recorder) ShowRoundStart(wordLength, maxMistakes int) {
	r.calls = append(r.calls, fmt.Sprintf("start %d/%d", wordLength, maxMistakes))
}

func (r *recorder) ShowState(s Snapshot) {
	r.calls = append(r.calls, "state")
	r.states = append(r.states, s)
}

func (r *recorder) ShowGuessResult(f GuessFeedback) {
	r.calls = append(r.calls, "guess")
	r.feedback = append(r.feedback, f)
}

func (r *recorder) ShowRejection(rej *Rejection) {
	r.calls = append(r.calls, "reject")
	r.rejections = append(r.rejections, rej)
}

func (r *recorder) ShowRoundResult(outcome RoundState, _ string, guessCount int) {
	r.calls = append(r.calls, "result")
	r.results = append(r.results, outcome)
	r.guessCount = append(r.guessCount, guessCount)
}

func (r *recorder) ShowReplayHint() {
	r.calls = append(r.calls, "hint")
	r.hints++
}

func (r *recorder) ShowReplayAccepted() { r.calls = append(r.calls, "replay") }

func (r *recorder) ShowSessionSummary(s SessionStats) {
	r.calls = append(r.calls, "summary")
	r.summaries = append(r.summaries, s)
}

func (r *recorder) lastState() Snapshot { return r.states[len(r.states)-1] }

func newTestEngine(t *testing.T, bank *WordBank, in InputSource, r Renderer) *Engine {
	t.Helper()
	return NewEngine(newTestStages(t), bank, r, in, zerolog.Nop())
}
