package game

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"
)

// RejectReason says why a raw guess was not accepted.
type RejectReason uint8

const (
	RejectEmpty RejectReason = iota + 1
	RejectTooLong
	RejectNotAlphabetic
	RejectAlreadyGuessed
)

func (r RejectReason) String() string {
	switch r {
	case RejectEmpty:
		return "empty"
	case RejectTooLong:
		return "too long"
	case RejectNotAlphabetic:
		return "not alphabetic"
	case RejectAlreadyGuessed:
		return "already guessed"
	}
	return "unknown"
}

// Rejection is returned for a guess that consumes no mistake budget and
// leaves the round unchanged.
type Rejection struct {
	Reason RejectReason
	Input  string // trimmed raw input
	Letter rune   // set for RejectAlreadyGuessed
}

func (r *Rejection) Error() string {
	if r.Reason == RejectAlreadyGuessed {
		return fmt.Sprintf("guess %q: %s", string(r.Letter), r.Reason)
	}
	return fmt.Sprintf("guess %q: %s", r.Input, r.Reason)
}

// Normalize turns a raw line into a single lowercase letter in a-z, the
// alphabet word banks are restricted to.
func Normalize(raw string) (rune, *Rejection) {
	s := strings.TrimSpace(raw)
	switch n := utf8.RuneCountInString(s); {
	case n == 0:
		return 0, &Rejection{Reason: RejectEmpty, Input: s}
	case n > 1:
		return 0, &Rejection{Reason: RejectTooLong, Input: s}
	}
	r, _ := utf8.DecodeRuneInString(s)
	if r > unicode.MaxASCII || !unicode.IsLetter(r) {
		return 0, &Rejection{Reason: RejectNotAlphabetic, Input: s}
	}
	return unicode.ToLower(r), nil
}

// CheckNotRepeated rejects a letter already present in guessed.
func CheckNotRepeated(letter rune, guessed map[rune]bool) *Rejection {
	if guessed[letter] {
		return &Rejection{Reason: RejectAlreadyGuessed, Input: string(letter), Letter: letter}
	}
	return nil
}

// Validate runs both checks in order.
func Validate(raw string, guessed map[rune]bool) (rune, *Rejection) {
	letter, rej := Normalize(raw)
	if rej != nil {
		return 0, rej
	}
	if rej := CheckNotRepeated(letter, guessed); rej != nil {
		return 0, rej
	}
	return letter, nil
}
