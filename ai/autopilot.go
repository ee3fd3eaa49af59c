package ai

import (
	"snake-arcade/game"
	"snake-arcade/game/types"
)

// Action is a move relative to the current heading.
type Action int

const (
	TurnLeft Action = iota
	Straight
	TurnRight
)

// Autopilot plays the game by choosing, each tick, the relative move that
// scores best: closer to the food, away from danger, towards open space.
// It only produces key codes, exactly like a keyboard would.
type Autopilot struct{}

func NewAutopilot() *Autopilot {
	return &Autopilot{}
}

// relativeActionToAbsolute converts a relative action into a heading.
func relativeActionToAbsolute(current types.Direction, action Action) types.Direction {
	switch action {
	case TurnLeft:
		return current.TurnLeft()
	case TurnRight:
		return current.TurnRight()
	default:
		return current
	}
}

// NextKey returns the key to press before the next tick.
func (a *Autopilot) NextKey(snap game.Snapshot) types.KeyCode {
	current := snap.State.Direction
	best := current
	bestScore := 0.0
	first := true

	for _, action := range []Action{Straight, TurnLeft, TurnRight} {
		dir := relativeActionToAbsolute(current, action)
		score := a.evaluate(snap, dir)
		if first || score > bestScore {
			best, bestScore, first = dir, score, false
		}
	}
	return best.Key()
}

// evaluate scores moving one cell in dir.
func (a *Autopilot) evaluate(snap game.Snapshot, dir types.Direction) float64 {
	head := snap.Snake[0]
	next := head.Add(dir.ToPoint())
	eating := snap.Food != nil && next == *snap.Food

	if isBlocked(snap, next, eating) {
		return -100
	}
	if eating {
		return 100
	}

	score := 0.0
	if snap.Food != nil {
		score += float64(manhattanDistance(head, *snap.Food) - manhattanDistance(next, *snap.Food))
	}

	// Open neighbours around the new head, so the snake avoids pockets.
	for _, d := range []types.Direction{types.Up, types.Right, types.Down, types.Left} {
		if !isBlocked(snap, next.Add(d.ToPoint()), false) {
			score += 0.25
		}
	}
	return score
}

// isBlocked reports whether a head at p would die. The tail cell frees up
// on the move unless the snake is eating.
func isBlocked(snap game.Snapshot, p types.Point, eating bool) bool {
	if p.Collides(snap.Board) {
		return true
	}
	body := snap.Snake
	if !eating && len(body) > 0 {
		body = body[:len(body)-1]
	}
	return p.Collides(body)
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

func manhattanDistance(p1, p2 types.Point) int {
	return abs(p1.X-p2.X) + abs(p1.Y-p2.Y)
}
