package manager

import (
	"log"
	"time"

	"the-snake/stats"
)

// StateManager keeps score for the running game and files finished games into the history.
type StateManager struct {
	sessionID string
	history   *stats.History
	score     int
	highScore int
	games     int
	startTime time.Time
	now       func() time.Time
}

func NewStateManager(sessionID string, history *stats.History, now func() time.Time) *StateManager {
	if now == nil {
		now = time.Now
	}
	sm := &StateManager{
		sessionID: sessionID,
		history:   history,
		now:       now,
	}
	if history != nil {
		sm.highScore = history.BestScore()
	}
	sm.startTime = now()
	return sm
}

// AddPoint counts one eaten apple.
func (sm *StateManager) AddPoint() {
	sm.score++
	if sm.score > sm.highScore {
		sm.highScore = sm.score
	}
}

// GameOver records the current game and starts a new one.
func (sm *StateManager) GameOver() {
	end := sm.now()
	if sm.history != nil {
		sm.history.AddGame(sm.sessionID, sm.score, sm.startTime, end)
	}
	log.Printf("game over: score=%d duration=%s", sm.score, end.Sub(sm.startTime))

	sm.games++
	sm.score = 0
	sm.startTime = end
}

func (sm *StateManager) Score() int     { return sm.score }
func (sm *StateManager) HighScore() int { return sm.highScore }

// GamesPlayed counts games finished in this session.
func (sm *StateManager) GamesPlayed() int { return sm.games }

// History returns the backing history, which may be nil.
func (sm *StateManager) History() *stats.History { return sm.history }
