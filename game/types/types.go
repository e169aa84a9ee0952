package types

import "golang.org/x/exp/rand"

// Board constants
const (
	ScreenWidth  = 640
	ScreenHeight = 480
	GridSize     = 20
	GridWidth    = ScreenWidth / GridSize
	GridHeight   = ScreenHeight / GridSize

	// Speed is the default number of ticks per second
	Speed = 3

	// MaxPlacementAttempts bounds rejection sampling before falling back to enumeration
	MaxPlacementAttempts = 64
)

// Point is a cell position in pixel units. Both coordinates are multiples of the cell size.
type Point struct {
	X, Y int
}

// Add returns the component-wise sum of two points.
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// Scale multiplies both components by n.
func (p Point) Scale(n int) Point {
	return Point{X: p.X * n, Y: p.Y * n}
}

// Grid describes the playfield in pixels and its cell size
type Grid struct {
	Width    int
	Height   int
	CellSize int
}

// DefaultGrid returns the 640x480 board split into 20px cells.
func DefaultGrid() Grid {
	return Grid{Width: ScreenWidth, Height: ScreenHeight, CellSize: GridSize}
}

func (g Grid) Cols() int { return g.Width / g.CellSize }
func (g Grid) Rows() int { return g.Height / g.CellSize }

// Size is the number of cells on the board.
func (g Grid) Size() int { return g.Cols() * g.Rows() }

// Center returns the cell holding the middle of the board.
func (g Grid) Center() Point {
	return Point{
		X: (g.Width / 2) / g.CellSize * g.CellSize,
		Y: (g.Height / 2) / g.CellSize * g.CellSize,
	}
}

// Wrap folds a position back onto the board (toroidal topology).
func (g Grid) Wrap(p Point) Point {
	return Point{
		X: ((p.X % g.Width) + g.Width) % g.Width,
		Y: ((p.Y % g.Height) + g.Height) % g.Height,
	}
}

// Step returns the cell one move away from p in direction d, wrapped.
func (g Grid) Step(p Point, d Direction) Point {
	return g.Wrap(p.Add(d.ToPoint().Scale(g.CellSize)))
}

// Contains reports whether p is an aligned cell inside the board.
func (g Grid) Contains(p Point) bool {
	return p.X >= 0 && p.X < g.Width && p.Y >= 0 && p.Y < g.Height &&
		p.X%g.CellSize == 0 && p.Y%g.CellSize == 0
}

// RandomCell picks a cell with independent uniform column and row.
func (g Grid) RandomCell(rng *rand.Rand) Point {
	return Point{
		X: rng.Intn(g.Cols()) * g.CellSize,
		Y: rng.Intn(g.Rows()) * g.CellSize,
	}
}

// Cells lists every cell of the board row by row.
func (g Grid) Cells() []Point {
	cells := make([]Point, 0, g.Size())
	for y := 0; y < g.Height; y += g.CellSize {
		for x := 0; x < g.Width; x += g.CellSize {
			cells = append(cells, Point{X: x, Y: y})
		}
	}
	return cells
}

// CollisionType represents the outcome of a move
type CollisionType int

const (
	NoCollision CollisionType = iota
	SelfCollision
)

func (c CollisionType) String() string {
	switch c {
	case SelfCollision:
		return "self"
	default:
		return "none"
	}
}

// Color is an RGB triple; frontends convert it to their own color type.
type Color struct {
	R, G, B uint8
}

// Palette
var (
	BoardBackgroundColor = Color{R: 0, G: 0, B: 0}
	BorderColor          = Color{R: 93, G: 216, B: 228}
	AppleColor           = Color{R: 255, G: 0, B: 0}
	SnakeColor           = Color{R: 0, G: 255, B: 0}
	TextColor            = Color{R: 255, G: 255, B: 255}
)
