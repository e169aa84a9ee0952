// Package input turns key presses into snake steering and quit requests.
// Frontends translate their native key codes into Key before handing them over.
package input

import "the-snake/game/types"

// Key is a frontend-independent key code
type Key int

const (
	KeyNone Key = iota
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeyW
	KeyA
	KeyS
	KeyD
	KeyH
	KeyJ
	KeyK
	KeyL
	KeyQ
	KeyEscape
)

// DefaultDirections maps arrows, WASD and vi keys to directions.
var DefaultDirections = map[Key]types.Direction{
	KeyUp:    types.Up,
	KeyDown:  types.Down,
	KeyLeft:  types.Left,
	KeyRight: types.Right,
	KeyW:     types.Up,
	KeyS:     types.Down,
	KeyA:     types.Left,
	KeyD:     types.Right,
	KeyK:     types.Up,
	KeyJ:     types.Down,
	KeyH:     types.Left,
	KeyL:     types.Right,
}

// DefaultQuitKeys end the game.
var DefaultQuitKeys = []Key{KeyQ, KeyEscape}

// FromRune maps a letter key to its Key, or KeyNone.
func FromRune(r rune) Key {
	switch r {
	case 'w', 'W':
		return KeyW
	case 'a', 'A':
		return KeyA
	case 's', 'S':
		return KeyS
	case 'd', 'D':
		return KeyD
	case 'h', 'H':
		return KeyH
	case 'j', 'J':
		return KeyJ
	case 'k', 'K':
		return KeyK
	case 'l', 'L':
		return KeyL
	case 'q', 'Q':
		return KeyQ
	default:
		return KeyNone
	}
}
