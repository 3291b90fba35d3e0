package game

import (
	"testing"
	"time"

	"grid-snake/game/manager"
	"grid-snake/game/types"

	"github.com/pkg/errors"
	"golang.org/x/exp/rand"
)

func newTestGame(t *testing.T, size int) *Game {
	t.Helper()
	g, err := NewGame(size, rand.New(rand.NewSource(99)))
	if err != nil {
		t.Fatalf("NewGame(%d): %v", size, err)
	}
	return g
}

func TestNewGame(t *testing.T) {
	g := newTestGame(t, 10)
	if g.UUID == "" {
		t.Error("missing game id")
	}
	if g.State.GetStatus() != manager.Ready {
		t.Errorf("status %s, want ready", g.State.GetStatus())
	}
	if _, err := NewGame(2, nil); !errors.Is(err, types.ErrBoardTooSmall) {
		t.Errorf("NewGame(2) err = %v", err)
	}
}

func TestUpdateOnlyWhileRunning(t *testing.T) {
	g := newTestGame(t, 10)
	head := g.Board.Snake().GetHead()

	if err := g.Update(time.Second); err != nil {
		t.Fatal(err)
	}
	if g.Board.Snake().GetHead() != head {
		t.Error("ready game moved")
	}

	g.Toggle()
	g.Toggle()
	if err := g.Update(time.Second); err != nil {
		t.Fatal(err)
	}
	if g.Board.Snake().GetHead() != head || g.State.GetDuration() != 0 {
		t.Error("paused game advanced")
	}
}

func TestUpdateRunsDueTicks(t *testing.T) {
	g := newTestGame(t, 10)
	g.Toggle()

	// head starts at (5,5) heading right
	if err := g.Update(TickInterval - time.Millisecond); err != nil {
		t.Fatal(err)
	}
	if got := g.Board.Snake().GetHead(); got != types.NewCell(5, 5) {
		t.Fatalf("moved early to %v", got)
	}
	if err := g.Update(TickInterval + time.Millisecond); err != nil {
		t.Fatal(err)
	}
	if got := g.Board.Snake().GetHead(); got != types.NewCell(7, 5) {
		t.Errorf("head %v after two ticks, want (7,5)", got)
	}
}

func TestUpdateCountsDuration(t *testing.T) {
	g := newTestGame(t, 30)
	g.Toggle()
	if err := g.Update(2500 * time.Millisecond); err != nil {
		t.Fatal(err)
	}
	if g.State.GetDuration() != 2 {
		t.Errorf("duration %d, want 2", g.State.GetDuration())
	}
	if got := g.Board.Snake().GetHead(); got != types.NewCell(23, 15) {
		t.Errorf("head %v after eight ticks, want (23,15)", got)
	}
}

func TestEatingScores(t *testing.T) {
	g := newTestGame(t, 5)
	place(g.Board, types.Right, cellPtr(4, 3), cell(3, 3), cell(2, 3), cell(1, 3))
	g.Toggle()

	outcome, err := g.Step()
	if err != nil {
		t.Fatal(err)
	}
	if outcome != OutcomeAte || g.State.GetScore() != 1 || g.State.GetHighScore() != 1 {
		t.Errorf("outcome %s score %d high %d", outcome, g.State.GetScore(), g.State.GetHighScore())
	}
	if g.State.GetStatus() != manager.Running {
		t.Errorf("status %s after eating", g.State.GetStatus())
	}
}

func TestCollisionEndsGame(t *testing.T) {
	g := newTestGame(t, 5)
	place(g.Board, types.Right, cellPtr(1, 1), cell(5, 3), cell(4, 3), cell(3, 3))
	g.Toggle()

	if err := g.Update(TickInterval); err != nil {
		t.Fatal(err)
	}
	if g.State.GetStatus() != manager.Ended || g.State.Won() {
		t.Fatalf("status %s won %v, want lost", g.State.GetStatus(), g.State.Won())
	}

	// ended games ignore time, steering and toggling
	g.Steer(types.Up)
	g.Toggle()
	if err := g.Update(time.Second); err != nil {
		t.Fatal(err)
	}
	if g.Board.Snake().Direction() != types.Right || g.State.GetStatus() != manager.Ended {
		t.Error("ended game still reacts to input")
	}
}

func TestFillingBoardWins(t *testing.T) {
	g := newTestGame(t, 3)
	place(g.Board, types.Left, cellPtr(1, 1),
		cell(2, 1), cell(3, 1), cell(3, 2), cell(2, 2), cell(1, 2), cell(1, 3), cell(2, 3), cell(3, 3))
	g.Toggle()

	outcome, err := g.Step()
	if err != nil {
		t.Fatal(err)
	}
	if outcome != OutcomeFilled {
		t.Fatalf("outcome %s", outcome)
	}
	if g.State.GetStatus() != manager.Ended || !g.State.Won() || g.State.GetScore() != 1 {
		t.Errorf("status %s won %v score %d", g.State.GetStatus(), g.State.Won(), g.State.GetScore())
	}
}

func TestSteer(t *testing.T) {
	g := newTestGame(t, 10)
	g.Steer(types.Left)
	if g.Board.Snake().Direction() != types.Right {
		t.Errorf("reverse accepted: %s", g.Board.Snake().Direction())
	}
	g.Steer(types.Up)
	if g.Board.Snake().Direction() != types.Up {
		t.Errorf("direction %s, want up", g.Board.Snake().Direction())
	}
}

func TestStepAbortsOnBrokenHeading(t *testing.T) {
	g := newTestGame(t, 5)
	place(g.Board, types.None, cellPtr(1, 1), cell(3, 3), cell(2, 3), cell(1, 3))
	g.Toggle()
	if err := g.Update(TickInterval); !errors.Is(err, types.ErrUnknownDirection) {
		t.Fatalf("err = %v, want ErrUnknownDirection", err)
	}
}

func TestReset(t *testing.T) {
	g := newTestGame(t, 5)
	place(g.Board, types.Right, cellPtr(4, 3), cell(3, 3), cell(2, 3), cell(1, 3))
	g.Toggle()
	if _, err := g.Step(); err != nil {
		t.Fatal(err)
	}
	g.State.End(false)
	id := g.UUID

	if err := g.Reset(); err != nil {
		t.Fatal(err)
	}
	if g.UUID == id {
		t.Error("reset kept the game id")
	}
	if g.State.GetStatus() != manager.Ready || g.State.GetScore() != 0 || g.State.GetHighScore() != 1 {
		t.Errorf("status %s score %d high %d", g.State.GetStatus(), g.State.GetScore(), g.State.GetHighScore())
	}
	if g.Board.Snake().Len() != 3 {
		t.Errorf("snake length %d after reset", g.Board.Snake().Len())
	}
}
