package ui

import (
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"

	"snake-arcade/game"
	"snake-arcade/game/types"
)

const (
	borderPadding = 10 // Padding around game area
	hudHeight     = 60
)

// Renderer draws snapshots into the raylib window. Draw must run on the
// thread that opened the window.
type Renderer struct {
	cellSize     int32
	screenWidth  int32
	screenHeight int32
	offsetX      int32
	offsetY      int32
}

func NewRenderer(pixelSize int) *Renderer {
	r := &Renderer{cellSize: int32(pixelSize)}
	r.UpdateDimensions()
	return r
}

// WindowSize returns the window size needed for a board of boxSize cells.
func WindowSize(boxSize, pixelSize int) (int32, int32) {
	side := int32(boxSize * pixelSize)
	return side + 2*borderPadding, side + 3*borderPadding + hudHeight
}

func (r *Renderer) UpdateDimensions() {
	r.screenWidth = int32(rl.GetScreenWidth())
	r.screenHeight = int32(rl.GetScreenHeight())
}

// cellRect maps a board cell to window coordinates. Board Y grows upward,
// window Y grows downward.
func (r *Renderer) cellRect(boxSize int, p types.Point) (int32, int32) {
	x := r.offsetX + int32(p.X)*r.cellSize
	y := r.offsetY + int32(boxSize-1-p.Y)*r.cellSize
	return x, y
}

func (r *Renderer) Draw(s game.Snapshot) {
	r.UpdateDimensions()
	rl.BeginDrawing()
	defer rl.EndDrawing()
	rl.ClearBackground(rl.Black)

	gridSize := int32(s.BoxSize) * r.cellSize
	r.offsetX = (r.screenWidth - gridSize) / 2
	r.offsetY = borderPadding

	rl.DrawRectangle(r.offsetX-1, r.offsetY-1, gridSize+2, gridSize+2, rl.DarkGray)

	for _, p := range s.Board {
		x, y := r.cellRect(s.BoxSize, p)
		rl.DrawRectangle(x, y, r.cellSize, r.cellSize, rl.Gray)
	}

	if s.Food != nil {
		x, y := r.cellRect(s.BoxSize, *s.Food)
		rl.DrawRectangle(x, y, r.cellSize, r.cellSize, rl.Red)
	}

	for i, p := range s.Snake {
		color := rl.Green
		if i == 0 {
			color = rl.Lime
			if s.State.GameOver {
				color = rl.Orange
			}
		}
		x, y := r.cellRect(s.BoxSize, p)
		rl.DrawRectangle(x+1, y+1, r.cellSize-2, r.cellSize-2, color)
	}

	r.drawHUD(s, r.offsetY+gridSize+borderPadding)
}

func (r *Renderer) drawHUD(s game.Snapshot, y int32) {
	fontSize := int32(20)
	x := int32(borderPadding)

	rl.DrawText(fmt.Sprintf("Level: %d", s.State.Level), x, y, fontSize, rl.White)
	rl.DrawText(fmt.Sprintf("Score: %d", s.State.Score), x+110, y, fontSize, rl.Green)
	rl.DrawText("Top: "+s.TopScore(), x+230, y, fontSize, rl.Yellow)

	color := rl.LightGray
	if s.State.GameOver {
		color = rl.Red
	}
	rl.DrawText(s.Status(), x, y+fontSize+6, fontSize-4, color)
}
