package ui

import (
	"the-snake/game/types"
	"the-snake/input"

	rl "github.com/gen2brain/raylib-go/raylib"
)

const (
	fontSize = 20
	// TargetFPS is the frame rate the window is paced at.
	TargetFPS = 60
)

var keyMap = map[int32]input.Key{
	rl.KeyUp:     input.KeyUp,
	rl.KeyDown:   input.KeyDown,
	rl.KeyLeft:   input.KeyLeft,
	rl.KeyRight:  input.KeyRight,
	rl.KeyW:      input.KeyW,
	rl.KeyA:      input.KeyA,
	rl.KeyS:      input.KeyS,
	rl.KeyD:      input.KeyD,
	rl.KeyH:      input.KeyH,
	rl.KeyJ:      input.KeyJ,
	rl.KeyK:      input.KeyK,
	rl.KeyL:      input.KeyL,
	rl.KeyQ:      input.KeyQ,
	rl.KeyEscape: input.KeyEscape,
}

// Window is a raylib window the size of the board.
type Window struct {
	grid     types.Grid
	cellSize int32
}

// OpenWindow creates the window. Only one can be open per process.
func OpenWindow(grid types.Grid, title string) *Window {
	rl.InitWindow(int32(grid.Width), int32(grid.Height), title)
	// Escape is a quit key handled by the loop, not by raylib
	rl.SetExitKey(rl.KeyNull)
	rl.SetTargetFPS(TargetFPS)
	return &Window{grid: grid, cellSize: int32(grid.CellSize)}
}

func (w *Window) BeginFrame(background types.Color) {
	rl.BeginDrawing()
	rl.ClearBackground(toRaylib(background))
}

// DrawCell fills one cell and outlines it in the border color.
func (w *Window) DrawCell(p types.Point, fill types.Color) {
	x, y := int32(p.X), int32(p.Y)
	rl.DrawRectangle(x, y, w.cellSize, w.cellSize, toRaylib(fill))
	rl.DrawRectangleLines(x, y, w.cellSize, w.cellSize, toRaylib(types.BorderColor))
}

func (w *Window) DrawText(text string, x, y int, color types.Color) {
	rl.DrawText(text, int32(x), int32(y), fontSize, toRaylib(color))
}

func (w *Window) EndFrame() {
	rl.EndDrawing()
}

// PollKeys drains raylib's key-pressed queue. Keys without a binding are dropped.
func (w *Window) PollKeys() []input.Key {
	var keys []input.Key
	for code := rl.GetKeyPressed(); code != 0; code = rl.GetKeyPressed() {
		if k := translateKey(code); k != input.KeyNone {
			keys = append(keys, k)
		}
	}
	return keys
}

func (w *Window) ShouldClose() bool {
	return rl.WindowShouldClose()
}

func (w *Window) Close() {
	rl.CloseWindow()
}

func translateKey(code int32) input.Key {
	return keyMap[code]
}

func toRaylib(c types.Color) rl.Color {
	return rl.NewColor(c.R, c.G, c.B, 255)
}
