package term

import (
	"testing"
	"time"

	"the-snake/game/types"
	"the-snake/input"

	"github.com/gdamore/tcell/v2"
)

func newTestScreen(t *testing.T) (*Screen, tcell.SimulationScreen) {
	t.Helper()
	sim := tcell.NewSimulationScreen("UTF-8")
	s, err := newScreen(sim, types.DefaultGrid(), 1000)
	if err != nil {
		t.Fatalf("newScreen failed: %v", err)
	}
	sim.SetSize(80, 30)
	t.Cleanup(s.Close)
	return s, sim
}

// waitKeys polls until n keys arrived or a second passed.
func waitKeys(s *Screen, n int) []input.Key {
	var keys []input.Key
	deadline := time.Now().Add(time.Second)
	for len(keys) < n && time.Now().Before(deadline) {
		keys = append(keys, s.PollKeys()...)
		time.Sleep(time.Millisecond)
	}
	return keys
}

func TestPollKeysTranslates(t *testing.T) {
	s, sim := newTestScreen(t)

	sim.InjectKey(tcell.KeyUp, 0, tcell.ModNone)
	sim.InjectKey(tcell.KeyRune, 'h', tcell.ModNone)
	sim.InjectKey(tcell.KeyRune, 'x', tcell.ModNone)
	sim.InjectKey(tcell.KeyEscape, 0, tcell.ModNone)

	keys := waitKeys(s, 3)
	want := []input.Key{input.KeyUp, input.KeyH, input.KeyEscape}
	if len(keys) != len(want) {
		t.Fatalf("Expected keys %v, got %v", want, keys)
	}
	for i := range want {
		if keys[i] != want[i] {
			t.Errorf("Key %d: expected %v, got %v", i, want[i], keys[i])
		}
	}
}

func TestPollKeysEmpty(t *testing.T) {
	s, _ := newTestScreen(t)
	if keys := s.PollKeys(); len(keys) != 0 {
		t.Errorf("Expected no keys, got %v", keys)
	}
}

func TestTranslateKey(t *testing.T) {
	tests := []struct {
		ev   *tcell.EventKey
		want input.Key
	}{
		{tcell.NewEventKey(tcell.KeyDown, 0, tcell.ModNone), input.KeyDown},
		{tcell.NewEventKey(tcell.KeyLeft, 0, tcell.ModNone), input.KeyLeft},
		{tcell.NewEventKey(tcell.KeyRight, 0, tcell.ModNone), input.KeyRight},
		{tcell.NewEventKey(tcell.KeyCtrlC, 0, tcell.ModCtrl), input.KeyQ},
		{tcell.NewEventKey(tcell.KeyRune, 'W', tcell.ModNone), input.KeyW},
		{tcell.NewEventKey(tcell.KeyRune, 'q', tcell.ModNone), input.KeyQ},
		{tcell.NewEventKey(tcell.KeyTab, 0, tcell.ModNone), input.KeyNone},
	}
	for _, tt := range tests {
		if got := translateKey(tt.ev); got != tt.want {
			t.Errorf("translateKey(%v) = %v, want %v", tt.ev.Name(), got, tt.want)
		}
	}
}

func TestDrawCellFillsTwoColumns(t *testing.T) {
	s, sim := newTestScreen(t)

	s.BeginFrame(types.BoardBackgroundColor)
	s.DrawCell(types.Point{X: 40, Y: 60}, types.AppleColor)

	want := tcell.StyleDefault.Background(tcell.NewRGBColor(255, 0, 0))
	for _, col := range []int{4, 5} {
		_, _, style, _ := sim.GetContent(col, 3+boardTop)
		if style != want {
			t.Errorf("Column %d: expected apple style, got %v", col, style)
		}
	}
	_, _, style, _ := sim.GetContent(6, 3+boardTop)
	if style == want {
		t.Error("Cell painted beyond its two columns")
	}
}

func TestDrawTextOnTopRow(t *testing.T) {
	s, sim := newTestScreen(t)

	s.BeginFrame(types.BoardBackgroundColor)
	s.DrawText("Score: 7", 4, 4, types.TextColor)

	var got []rune
	for col := 0; col < len("Score: 7"); col++ {
		r, _, _, _ := sim.GetContent(col, 0)
		got = append(got, r)
	}
	if string(got) != "Score: 7" {
		t.Errorf("Expected status text on row 0, got %q", string(got))
	}
}

func TestCloseStopsEvents(t *testing.T) {
	s, _ := newTestScreen(t)
	if s.ShouldClose() {
		t.Fatal("Fresh screen should not be closed")
	}

	s.Close()
	s.Close()

	select {
	case <-s.done:
	case <-time.After(time.Second):
		t.Fatal("Event pump did not stop")
	}
	if !s.ShouldClose() {
		t.Error("Expected ShouldClose after Close")
	}
}

func TestInvalidFrameRate(t *testing.T) {
	if _, err := newScreen(tcell.NewSimulationScreen("UTF-8"), types.DefaultGrid(), 0); err == nil {
		t.Error("Expected an error for a zero frame rate")
	}
}
