package game

import (
	"time"

	"grid-snake/game/manager"
	"grid-snake/game/types"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"
)

// TickInterval is how often the snake advances one cell
const TickInterval = 300 * time.Millisecond

// Game drives a Board on a fixed schedule and keeps score, status and
// play time for the session. It implements Events.
type Game struct {
	UUID      string
	Board     *Board
	State     *manager.StateManager
	StartTime time.Time

	size    int
	rng     *rand.Rand
	pending time.Duration // running time since the last tick
}

// NewGame creates a session in the Ready state. rng may be nil.
func NewGame(size int, rng *rand.Rand) (*Game, error) {
	board, err := NewBoard(size, rng)
	if err != nil {
		return nil, err
	}
	g := &Game{
		UUID:      uuid.New().String(),
		Board:     board,
		State:     manager.NewStateManager(),
		StartTime: time.Now(),
		size:      size,
		rng:       rng,
	}
	log.Debug().Str("game", g.UUID).Int("size", size).Msg("game created")
	return g, nil
}

// Reset replaces the board with a fresh one. The high score is kept.
func (g *Game) Reset() error {
	board, err := NewBoard(g.size, g.rng)
	if err != nil {
		return err
	}
	g.Board = board
	g.UUID = uuid.New().String()
	g.StartTime = time.Now()
	g.pending = 0
	g.State.Reset()
	return nil
}

// Steer requests a new heading, effective on the next tick
func (g *Game) Steer(dir types.Direction) {
	if g.State.GetStatus() == manager.Ended {
		return
	}
	snake := g.Board.Snake()
	if !snake.SetDirection(dir) {
		log.Debug().Str("current", snake.Direction().String()).Str("requested", dir.String()).Msg("direction rejected")
	}
}

// Toggle starts a ready or paused game and pauses a running one
func (g *Game) Toggle() {
	g.State.Toggle()
}

// Update advances the session clock by dt and runs every tick that fell
// due. It returns the first tick error; the session should then be dropped.
func (g *Game) Update(dt time.Duration) error {
	if g.State.GetStatus() != manager.Running || dt <= 0 {
		return nil
	}
	g.State.Advance(dt)
	g.pending += dt
	for g.pending >= TickInterval && g.State.GetStatus() == manager.Running {
		g.pending -= TickInterval
		if _, err := g.Step(); err != nil {
			return err
		}
	}
	return nil
}

// Step runs exactly one board tick, regardless of the clock
func (g *Game) Step() (Outcome, error) {
	outcome, err := g.Board.Run(g)
	if err != nil {
		log.Error().Err(err).Str("game", g.UUID).Msg("tick aborted")
		return outcome, err
	}
	if outcome == OutcomeFilled {
		g.State.End(true)
		log.Info().Str("game", g.UUID).Int("score", g.State.GetScore()).
			Str("time", manager.FormatDuration(g.State.GetDuration())).Msg("board full, you win")
	}
	return outcome, nil
}

// Ate is called by the board when the snake grows
func (g *Game) Ate() {
	g.State.UpdateScore(1)
}

// GameOver is called by the board when no move is possible
func (g *Game) GameOver() {
	g.State.End(false)
	log.Info().Str("game", g.UUID).Int("score", g.State.GetScore()).
		Str("time", manager.FormatDuration(g.State.GetDuration())).Msg("game over")
}
