package entity

import "the-snake/game/types"

// Surface is anything a game object can be painted on. Implementations draw a filled
// square of the cell size with the board border color around it.
type Surface interface {
	DrawCell(p types.Point, fill types.Color)
}

// Drawable is implemented by every object shown on the board.
type Drawable interface {
	Draw(s Surface)
}
