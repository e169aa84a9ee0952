// Package term is a terminal frontend built on tcell. Each board cell is two
// columns wide so the board keeps its proportions, and the top row holds the
// status line.
package term

import (
	"sync"
	"time"

	"the-snake/game/types"
	"the-snake/input"

	"github.com/gdamore/tcell/v2"
	"github.com/pkg/errors"
)

const (
	cellColumns = 2
	boardTop    = 1
	eventBuffer = 100
)

// Screen draws the board into a tcell screen and collects key presses from it.
type Screen struct {
	screen tcell.Screen
	grid   types.Grid
	bg     types.Color

	events chan tcell.Event
	quit   chan struct{}
	done   chan struct{}
	ticker *time.Ticker
	once   sync.Once
}

// New opens the terminal and paces frames at fps.
func New(grid types.Grid, fps int) (*Screen, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, errors.Wrap(err, "failed to create terminal screen")
	}
	return newScreen(screen, grid, fps)
}

func newScreen(screen tcell.Screen, grid types.Grid, fps int) (*Screen, error) {
	if fps <= 0 {
		return nil, errors.Errorf("invalid frame rate %d", fps)
	}
	if err := screen.Init(); err != nil {
		return nil, errors.Wrap(err, "failed to initialize terminal")
	}
	screen.HideCursor()

	s := &Screen{
		screen: screen,
		grid:   grid,
		events: make(chan tcell.Event, eventBuffer),
		quit:   make(chan struct{}),
		done:   make(chan struct{}),
		ticker: time.NewTicker(time.Second / time.Duration(fps)),
	}
	go s.pump()
	return s, nil
}

// pump forwards terminal events until the screen is finalized.
func (s *Screen) pump() {
	defer close(s.done)
	for {
		ev := s.screen.PollEvent()
		if ev == nil {
			return
		}
		select {
		case s.events <- ev:
		case <-s.quit:
			return
		}
	}
}

func (s *Screen) BeginFrame(background types.Color) {
	s.bg = background
	s.screen.Fill(' ', tcell.StyleDefault.Background(toTcell(background)))
}

func (s *Screen) DrawCell(p types.Point, fill types.Color) {
	col, row := s.position(p.X, p.Y)
	style := tcell.StyleDefault.Background(toTcell(fill))
	for i := 0; i < cellColumns; i++ {
		s.screen.SetContent(col+i, row+boardTop, ' ', nil, style)
	}
}

// DrawText writes text starting at the cell holding pixel (x, y), on the top row
// when y falls in the first row of cells.
func (s *Screen) DrawText(text string, x, y int, color types.Color) {
	col, row := s.position(x, y)
	style := tcell.StyleDefault.
		Foreground(toTcell(color)).
		Background(toTcell(s.bg))
	for _, r := range text {
		s.screen.SetContent(col, row, r, nil, style)
		col++
	}
}

// EndFrame shows the frame and waits for the next frame slot.
func (s *Screen) EndFrame() {
	s.screen.Show()
	<-s.ticker.C
}

func (s *Screen) PollKeys() []input.Key {
	var keys []input.Key
	for {
		select {
		case ev := <-s.events:
			switch ev := ev.(type) {
			case *tcell.EventKey:
				if k := translateKey(ev); k != input.KeyNone {
					keys = append(keys, k)
				}
			case *tcell.EventResize:
				s.screen.Sync()
			}
		default:
			return keys
		}
	}
}

// ShouldClose reports whether the terminal stopped delivering events.
func (s *Screen) ShouldClose() bool {
	select {
	case <-s.done:
		return true
	default:
		return false
	}
}

// Close restores the terminal. It is safe to call more than once.
func (s *Screen) Close() {
	s.once.Do(func() {
		close(s.quit)
		s.ticker.Stop()
		s.screen.Fini()
	})
}

func (s *Screen) position(x, y int) (col, row int) {
	return x / s.grid.CellSize * cellColumns, y / s.grid.CellSize
}

func translateKey(ev *tcell.EventKey) input.Key {
	switch ev.Key() {
	case tcell.KeyUp:
		return input.KeyUp
	case tcell.KeyDown:
		return input.KeyDown
	case tcell.KeyLeft:
		return input.KeyLeft
	case tcell.KeyRight:
		return input.KeyRight
	case tcell.KeyEscape:
		return input.KeyEscape
	case tcell.KeyCtrlC:
		return input.KeyQ
	case tcell.KeyRune:
		return input.FromRune(ev.Rune())
	}
	return input.KeyNone
}

func toTcell(c types.Color) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}
