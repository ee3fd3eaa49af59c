// Package terminal draws the game with tcell and turns terminal key events
// into game key codes.
package terminal

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"snake-arcade/game"
	"snake-arcade/game/types"
)

// Each board cell is two columns wide so the board looks square.
const cellWidth = 2

var (
	wallStyle  = tcell.StyleDefault.Foreground(tcell.ColorGray)
	snakeStyle = tcell.StyleDefault.Foreground(tcell.ColorGreen)
	headStyle  = tcell.StyleDefault.Foreground(tcell.ColorLime)
	deadStyle  = tcell.StyleDefault.Foreground(tcell.ColorOrange)
	foodStyle  = tcell.StyleDefault.Foreground(tcell.ColorRed)
	hudStyle   = tcell.StyleDefault.Foreground(tcell.ColorWhite)
	overStyle  = tcell.StyleDefault.Foreground(tcell.ColorRed)
)

type Renderer struct {
	screen tcell.Screen
}

func NewRenderer(screen tcell.Screen) *Renderer {
	return &Renderer{screen: screen}
}

// Cell returns the screen column and row of the left half of a board cell.
// The board's y axis points up, the terminal's points down.
func Cell(boxSize int, p types.Point) (int, int) {
	return p.X * cellWidth, boxSize - 1 - p.Y
}

func (r *Renderer) fill(boxSize int, p types.Point, ch rune, style tcell.Style) {
	x, y := Cell(boxSize, p)
	for i := 0; i < cellWidth; i++ {
		r.screen.SetContent(x+i, y, ch, nil, style)
	}
}

func (r *Renderer) text(x, y int, s string, style tcell.Style) {
	for i, ch := range []rune(s) {
		r.screen.SetContent(x+i, y, ch, nil, style)
	}
}

func (r *Renderer) Draw(s game.Snapshot) {
	r.screen.Clear()

	for _, p := range s.Board {
		r.fill(s.BoxSize, p, '▒', wallStyle)
	}
	if s.Food != nil {
		r.fill(s.BoxSize, *s.Food, '●', foodStyle)
	}
	for i := len(s.Snake) - 1; i >= 0; i-- {
		style := snakeStyle
		if i == 0 {
			style = headStyle
			if s.State.GameOver {
				style = deadStyle
			}
		}
		r.fill(s.BoxSize, s.Snake[i], '█', style)
	}

	row := s.BoxSize
	r.text(0, row, fmt.Sprintf("LEVEL %d  SCORE %d  TOP %s", s.State.Level, s.State.Score, s.TopScore()), hudStyle)
	style := hudStyle
	if s.State.GameOver {
		style = overStyle
	}
	r.text(0, row+1, s.Status(), style)

	r.screen.Show()
}
