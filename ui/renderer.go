package ui

import (
	"fmt"

	"grid-snake/game"
	"grid-snake/game/manager"
	"grid-snake/game/types"

	rl "github.com/gen2brain/raylib-go/raylib"
)

const (
	borderPadding = 10 // padding around the board
	barHeight     = 40 // status bar under the board
)

var (
	headColor = rl.Color{R: 120, G: 220, B: 120, A: 255}
	bodyColor = rl.Color{R: 60, G: 160, B: 60, A: 255}
)

type Renderer struct {
	cellSize        int32
	screenWidth     int32
	screenHeight    int32
	totalGridWidth  int32
	totalGridHeight int32
	offsetX         int32
	offsetY         int32
}

func NewRenderer() *Renderer {
	r := &Renderer{}
	r.UpdateDimensions()
	return r
}

func (r *Renderer) UpdateDimensions() {
	r.screenWidth = int32(rl.GetScreenWidth())
	r.screenHeight = int32(rl.GetScreenHeight())
}

func (r *Renderer) layout(size int) {
	availableWidth := r.screenWidth - borderPadding*2
	availableHeight := r.screenHeight - borderPadding*3 - barHeight

	r.cellSize = min(availableWidth/int32(size), availableHeight/int32(size))
	if r.cellSize < 1 {
		r.cellSize = 1
	}
	r.totalGridWidth = r.cellSize * int32(size)
	r.totalGridHeight = r.cellSize * int32(size)

	// centre horizontally, board at the top
	r.offsetX = (r.screenWidth - r.totalGridWidth) / 2
	r.offsetY = borderPadding
}

// cellOrigin maps a 1-based cell to its top-left pixel
func (r *Renderer) cellOrigin(c types.Cell) (int32, int32) {
	return r.offsetX + int32(c.X-1)*r.cellSize, r.offsetY + int32(c.Y-1)*r.cellSize
}

func (r *Renderer) Draw(g *game.Game) {
	r.UpdateDimensions()
	board := g.Board
	r.layout(board.Size())

	rl.BeginDrawing()
	defer rl.EndDrawing()
	rl.ClearBackground(rl.Black)

	rl.DrawRectangle(r.offsetX-1, r.offsetY-1, r.totalGridWidth+2, r.totalGridHeight+2, rl.DarkGray)

	for _, c := range board.Cells() {
		x, y := r.cellOrigin(c)
		kind, err := board.CellKind(c.X, c.Y)
		if err != nil {
			continue
		}
		switch kind {
		case game.CellFood:
			rl.DrawRectangle(x, y, r.cellSize, r.cellSize, rl.Red)
		case game.CellSnakeHead:
			rl.DrawRectangle(x, y, r.cellSize, r.cellSize, headColor)
			r.drawHeading(x, y, board.Snake().Direction())
		case game.CellSnakeBody:
			rl.DrawRectangle(x, y, r.cellSize, r.cellSize, bodyColor)
		default:
			rl.DrawRectangleLines(x, y, r.cellSize, r.cellSize, rl.Gray)
		}
	}

	r.drawBar(g)
	r.drawOverlay(g)
}

// drawHeading puts a small triangle on the head pointing where it goes
func (r *Renderer) drawHeading(headX, headY int32, dir types.Direction) {
	half := r.cellSize / 2
	var a, b, c rl.Vector2
	switch dir {
	case types.Right:
		a = rl.Vector2{X: float32(headX + r.cellSize), Y: float32(headY + half)}
		b = rl.Vector2{X: float32(headX + half), Y: float32(headY)}
		c = rl.Vector2{X: float32(headX + half), Y: float32(headY + r.cellSize)}
	case types.Left:
		a = rl.Vector2{X: float32(headX), Y: float32(headY + half)}
		b = rl.Vector2{X: float32(headX + half), Y: float32(headY + r.cellSize)}
		c = rl.Vector2{X: float32(headX + half), Y: float32(headY)}
	case types.Down:
		a = rl.Vector2{X: float32(headX + half), Y: float32(headY + r.cellSize)}
		b = rl.Vector2{X: float32(headX + r.cellSize), Y: float32(headY + half)}
		c = rl.Vector2{X: float32(headX), Y: float32(headY + half)}
	case types.Up:
		a = rl.Vector2{X: float32(headX + half), Y: float32(headY)}
		b = rl.Vector2{X: float32(headX), Y: float32(headY + half)}
		c = rl.Vector2{X: float32(headX + r.cellSize), Y: float32(headY + half)}
	default:
		return
	}
	// raylib wants counter-clockwise vertices
	rl.DrawTriangle(a, b, c, rl.Yellow)
}

func (r *Renderer) drawBar(g *game.Game) {
	fontSize := int32(20)
	y := r.offsetY + r.totalGridHeight + borderPadding
	x := r.offsetX
	spacing := r.totalGridWidth / 4

	rl.DrawText(fmt.Sprintf("Score: %d", g.State.GetScore()), x, y, fontSize, rl.White)
	rl.DrawText(fmt.Sprintf("Best: %d", g.State.GetHighScore()), x+spacing, y, fontSize, rl.Green)
	rl.DrawText(fmt.Sprintf("Status: %s", g.State.GetStatus()), x+spacing*2, y, fontSize, rl.White)
	rl.DrawText(fmt.Sprintf("Time: %s", manager.FormatDuration(g.State.GetDuration())), x+spacing*3, y, fontSize, rl.Purple)
}

func (r *Renderer) drawOverlay(g *game.Game) {
	var text string
	switch g.State.GetStatus() {
	case manager.Ready:
		text = "Press SPACE to start"
	case manager.Paused:
		text = "Paused"
	case manager.Ended:
		if g.State.Won() {
			text = fmt.Sprintf("Board full! Score: %d - press R", g.State.GetScore())
		} else {
			text = fmt.Sprintf("Game Over! Score: %d - press R", g.State.GetScore())
		}
	default:
		return
	}
	fontSize := int32(24)
	width := rl.MeasureText(text, fontSize)
	rl.DrawText(text,
		r.offsetX+(r.totalGridWidth-width)/2,
		r.offsetY+r.totalGridHeight/2-fontSize/2,
		fontSize, rl.White)
}
