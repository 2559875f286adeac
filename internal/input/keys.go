package input

import "github.com/gdamore/tcell/v2"

// Edit is a line-editing action requested by a key press.
type Edit uint8

const (
	EditNone Edit = iota
	EditInsert
	EditBackspace
	EditClear
	EditSubmit
	EditCancel
	EditQuit
)

// keyToEdit maps a tcell key event to a line-editing action. The rune is only
// meaningful for EditInsert.
func keyToEdit(ev *tcell.EventKey) (Edit, rune) {
	// Named keys.
	switch ev.Key() {
	case tcell.KeyEnter:
		return EditSubmit, 0
	case tcell.KeyBackspace, tcell.KeyBackspace2, tcell.KeyDelete:
		return EditBackspace, 0
	case tcell.KeyCtrlU:
		return EditClear, 0
	case tcell.KeyEscape:
		return EditCancel, 0
	case tcell.KeyCtrlC, tcell.KeyCtrlD:
		return EditQuit, 0
	case tcell.KeyRune:
		return EditInsert, ev.Rune()
	}
	return EditNone, 0
}
