package input

import "the-snake/game/types"

// Steerable accepts buffered direction changes.
type Steerable interface {
	SetPendingDirection(dir types.Direction) bool
}

// Handler applies key presses to a snake
type Handler struct {
	directions map[Key]types.Direction
	quit       map[Key]bool
}

func NewHandler() *Handler {
	h := &Handler{
		directions: DefaultDirections,
		quit:       make(map[Key]bool, len(DefaultQuitKeys)),
	}
	for _, k := range DefaultQuitKeys {
		h.quit[k] = true
	}
	return h
}

// Handle submits the direction bound to key, if any. It returns true for a quit key.
func (h *Handler) Handle(key Key, s Steerable) bool {
	if h.quit[key] {
		return true
	}
	if dir, ok := h.directions[key]; ok {
		s.SetPendingDirection(dir)
	}
	return false
}

// Drain handles keys in order and stops at the first quit key.
func (h *Handler) Drain(keys []Key, s Steerable) bool {
	for _, k := range keys {
		if h.Handle(k, s) {
			return true
		}
	}
	return false
}
