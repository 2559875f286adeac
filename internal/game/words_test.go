package game

import (
	"errors"
	"math/rand"
	"testing"
)

func TestWordBankEmpty(t *testing.T) {
	for _, words := range [][]string{nil, {}, {"", "  ", "n0pe", "two words"}} {
		if _, err := NewWordBank(words, rand.New(rand.NewSource(1))); !errors.Is(err, ErrEmptyWordBank) {
			t.Errorf("NewWordBank(%q) err = %v; want ErrEmptyWordBank", words, err)
		}
	}
}

func TestWordBankNormalizes(t *testing.T) {
	b := newTestBank(t, []string{" Python ", "g1t", "GIT"}, 0, 1)
	if b.Len() != 2 {
		t.Fatalf("Len = %d; want 2", b.Len())
	}
	if w := b.PickRandom(); w != "python" {
		t.Errorf("first pick = %q; want python", w)
	}
	if w := b.PickRandom(); w != "git" {
		t.Errorf("second pick = %q; want git", w)
	}
}

func TestWordBankDrawsAreIndependent(t *testing.T) {
	b := newTestBank(t, []string{"snowman", "meltdown"}, 1, 1, 1)
	for i := 0; i < 3; i++ {
		if w := b.PickRandom(); w != "meltdown" {
			t.Errorf("pick %d = %q; want meltdown again", i, w)
		}
	}
}

func TestWordBankCoversAllWords(t *testing.T) {
	words := []string{"python", "git", "github", "snowman", "meltdown"}
	b, err := NewWordBank(words, rand.New(rand.NewSource(7)))
	if err != nil {
		t.Fatal(err)
	}
	seen := map[string]bool{}
	for i := 0; i < 500; i++ {
		seen[b.PickRandom()] = true
	}
	if len(seen) != len(words) {
		t.Errorf("saw %d distinct words in 500 draws; want %d", len(seen), len(words))
	}
}
