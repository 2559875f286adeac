package game

import (
	"errors"
	"testing"
)

func TestStageTableMaxMistakes(t *testing.T) {
	st := newTestStages(t)
	if st.MaxMistakes() != st.Len()-1 {
		t.Errorf("MaxMistakes = %d; want %d", st.MaxMistakes(), st.Len()-1)
	}
	if st.Stage(0) != "s0" || st.Stage(6) != "s6" {
		t.Errorf("unexpected stage content")
	}
	if st.Stage(-1) != "s0" || st.Stage(99) != "s6" {
		t.Errorf("out-of-range stage not clamped")
	}
}

func TestStageTableTooShort(t *testing.T) {
	for _, stages := range [][]string{nil, {"only"}} {
		if _, err := NewStageTable(stages); !errors.Is(err, ErrTooFewStages) {
			t.Errorf("NewStageTable(%q) err = %v; want ErrTooFewStages", stages, err)
		}
	}
}

func TestStageTableCopiesInput(t *testing.T) {
	src := []string{"a", "b"}
	st, err := NewStageTable(src)
	if err != nil {
		t.Fatal(err)
	}
	src[0] = "changed"
	if st.Stage(0) != "a" {
		t.Error("stage table aliases caller slice")
	}
}
