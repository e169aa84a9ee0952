package input

import (
	"testing"

	"the-snake/game/types"
)

type fakeSteerable struct {
	requests []types.Direction
}

func (f *fakeSteerable) SetPendingDirection(dir types.Direction) bool {
	f.requests = append(f.requests, dir)
	return true
}

func TestHandleMapsKeys(t *testing.T) {
	h := NewHandler()

	tests := []struct {
		key  Key
		want types.Direction
	}{
		{KeyUp, types.Up},
		{KeyDown, types.Down},
		{KeyLeft, types.Left},
		{KeyRight, types.Right},
		{KeyW, types.Up},
		{KeyA, types.Left},
		{KeyS, types.Down},
		{KeyD, types.Right},
		{KeyK, types.Up},
		{KeyJ, types.Down},
		{KeyH, types.Left},
		{KeyL, types.Right},
	}

	for _, tt := range tests {
		s := &fakeSteerable{}
		if h.Handle(tt.key, s) {
			t.Errorf("Key %d should not quit", tt.key)
		}
		if len(s.requests) != 1 || s.requests[0] != tt.want {
			t.Errorf("Key %d: expected request %v, got %v", tt.key, tt.want, s.requests)
		}
	}
}

func TestHandleIgnoresUnknownKeys(t *testing.T) {
	h := NewHandler()
	s := &fakeSteerable{}

	if h.Handle(KeyNone, s) {
		t.Error("KeyNone should not quit")
	}
	if len(s.requests) != 0 {
		t.Errorf("Expected no requests, got %v", s.requests)
	}
}

func TestQuitKeys(t *testing.T) {
	h := NewHandler()
	for _, k := range []Key{KeyQ, KeyEscape} {
		if !h.Handle(k, &fakeSteerable{}) {
			t.Errorf("Key %d should quit", k)
		}
	}
}

func TestDrainStopsAtQuit(t *testing.T) {
	h := NewHandler()
	s := &fakeSteerable{}

	quit := h.Drain([]Key{KeyUp, KeyQ, KeyLeft}, s)

	if !quit {
		t.Fatal("Expected quit")
	}
	if len(s.requests) != 1 || s.requests[0] != types.Up {
		t.Errorf("Expected only Up before quit, got %v", s.requests)
	}
}

func TestDrainOrder(t *testing.T) {
	h := NewHandler()
	s := &fakeSteerable{}

	if h.Drain([]Key{KeyUp, KeyRight, KeyDown}, s) {
		t.Fatal("Expected no quit")
	}
	want := []types.Direction{types.Up, types.Right, types.Down}
	for i := range want {
		if s.requests[i] != want[i] {
			t.Errorf("Expected requests %v, got %v", want, s.requests)
			break
		}
	}
}

func TestFromRune(t *testing.T) {
	if FromRune('w') != KeyW || FromRune('Q') != KeyQ || FromRune('l') != KeyL {
		t.Error("Expected letters to map to their keys")
	}
	if FromRune('x') != KeyNone {
		t.Error("Expected unbound rune to map to KeyNone")
	}
}
