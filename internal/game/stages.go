package game

import "errors"

// ErrTooFewStages is returned when a stage table cannot hold both a perfect
// and a fully melted stage.
var ErrTooFewStages = errors.New("stage table needs at least two stages")

// StageTable is the ordered list of snowman stages, indexed by mistake count.
// Stage 0 is the untouched snowman; the last stage is the puddle.
type StageTable struct {
	stages []string
}

// NewStageTable copies stages into an immutable table.
func NewStageTable(stages []string) (StageTable, error) {
	if len(stages) < 2 {
		return StageTable{}, ErrTooFewStages
	}
	cp := make([]string, len(stages))
	copy(cp, stages)
	return StageTable{stages: cp}, nil
}

// Len returns the number of stages.
func (t StageTable) Len() int { return len(t.stages) }

// MaxMistakes is the mistake budget implied by the table.
func (t StageTable) MaxMistakes() int { return len(t.stages) - 1 }

// Stage returns the art for index i, clamped into range.
func (t StageTable) Stage(i int) string {
	if len(t.stages) == 0 {
		return ""
	}
	if i < 0 {
		i = 0
	}
	if i >= len(t.stages) {
		i = len(t.stages) - 1
	}
	return t.stages[i]
}
