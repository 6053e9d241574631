package input

import "github.com/gdamore/tcell/v2"

// KeyFor maps a tcell key event to a tracked key. Arrows alias WASD; q and
// Ctrl-C alias Escape.
func KeyFor(ev *tcell.EventKey) (Key, bool) {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return KeyEscape, true
	case tcell.KeyUp:
		return KeyW, true
	case tcell.KeyDown:
		return KeyS, true
	case tcell.KeyLeft:
		return KeyA, true
	case tcell.KeyRight:
		return KeyD, true
	case tcell.KeyRune:
	default:
		return 0, false
	}

	switch ev.Rune() {
	case 'w', 'W':
		return KeyW, true
	case 's', 'S':
		return KeyS, true
	case 'a', 'A':
		return KeyA, true
	case 'd', 'D':
		return KeyD, true
	case 'q', 'Q':
		return KeyEscape, true
	}
	return 0, false
}
