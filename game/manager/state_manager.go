package manager

import (
	"fmt"
	"time"
)

// Status is the lifecycle state of a play session
type Status int

const (
	Ready Status = iota
	Running
	Paused
	Ended
)

func (s Status) String() string {
	switch s {
	case Ready:
		return "ready"
	case Running:
		return "running"
	case Paused:
		return "paused"
	case Ended:
		return "ended"
	default:
		return fmt.Sprintf("status(%d)", int(s))
	}
}

// StateManager keeps the session bookkeeping: status, score and play time.
// Nothing here is persisted; the high score lives for the process only.
type StateManager struct {
	status    Status
	score     int
	highScore int
	won       bool
	duration  int           // whole seconds spent running
	clock     time.Duration // running time not yet counted in duration
}

func NewStateManager() *StateManager {
	return &StateManager{status: Ready}
}

// Start moves Ready or Paused to Running
func (sm *StateManager) Start() {
	if sm.status == Ready || sm.status == Paused {
		sm.status = Running
	}
}

func (sm *StateManager) Pause() {
	if sm.status == Running {
		sm.status = Paused
	}
}

// Toggle flips between running and paused. Ended sessions stay ended.
func (sm *StateManager) Toggle() {
	switch sm.status {
	case Running:
		sm.Pause()
	case Ready, Paused:
		sm.Start()
	}
}

func (sm *StateManager) End(won bool) {
	if sm.status == Ended {
		return
	}
	sm.status = Ended
	sm.won = won
}

// Advance adds dt of running time and returns how many whole seconds elapsed
func (sm *StateManager) Advance(dt time.Duration) int {
	if sm.status != Running || dt <= 0 {
		return 0
	}
	sm.clock += dt
	secs := int(sm.clock / time.Second)
	sm.clock -= time.Duration(secs) * time.Second
	sm.duration += secs
	return secs
}

func (sm *StateManager) UpdateScore(delta int) {
	sm.score += delta
	if sm.score > sm.highScore {
		sm.highScore = sm.score
	}
}

// Reset starts a new session and keeps the high score
func (sm *StateManager) Reset() {
	high := sm.highScore
	*sm = StateManager{status: Ready, highScore: high}
}

func (sm *StateManager) GetStatus() Status {
	return sm.status
}

func (sm *StateManager) GetScore() int {
	return sm.score
}

func (sm *StateManager) GetHighScore() int {
	return sm.highScore
}

func (sm *StateManager) GetDuration() int {
	return sm.duration
}

func (sm *StateManager) Won() bool {
	return sm.won
}

// FormatDuration renders seconds as mm:ss
func FormatDuration(seconds int) string {
	if seconds < 0 {
		seconds = 0
	}
	return fmt.Sprintf("%02d:%02d", seconds/60, seconds%60)
}
