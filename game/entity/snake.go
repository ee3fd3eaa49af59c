package entity

import (
	"snake-arcade/game/types"
)

// State is the snake lifecycle state. Dead is terminal.
type State int

const (
	Alive State = iota
	Dead
)

// StepResult describes what happened during one move.
type StepResult struct {
	Ate       bool
	Collision types.CollisionType
}

// Collider classifies what a head at pos hits, given the rest of the body.
type Collider func(pos types.Point, body []types.Point) types.CollisionType

// Snake holds the body, head first.
type Snake struct {
	Body  []types.Point
	State State
}

// NewSnake builds a vertical snake of length cells on the centre column,
// head at the top: (c, length), (c, length-1) ... (c, 1).
func NewSnake(boxSize, length int) *Snake {
	x := boxSize / 2
	body := make([]types.Point, 0, length)
	for y := length; y > 0; y-- {
		body = append(body, types.Point{X: x, Y: y})
	}
	return &Snake{
		Body:  body,
		State: Alive,
	}
}

func (s *Snake) GetHead() types.Point {
	return s.Body[0]
}

func (s *Snake) Len() int {
	return len(s.Body)
}

func (s *Snake) Dead() bool {
	return s.State == Dead
}

// Step moves the head one cell in dir. The body grows when the new head
// lands on food, otherwise the tail is dropped. A dying move still commits
// the new head so the final frame shows where the snake hit.
func (s *Snake) Step(dir types.Direction, food *types.Point, collide Collider) StepResult {
	if s.State == Dead {
		return StepResult{}
	}

	newHead := s.GetHead().Add(dir.ToPoint())

	var result StepResult
	if food != nil && newHead == *food {
		result.Ate = true
		s.Body = append([]types.Point{newHead}, s.Body...)
	} else {
		s.Body = append([]types.Point{newHead}, s.Body[:len(s.Body)-1]...)
	}

	result.Collision = collide(newHead, s.Body[1:])
	if result.Collision != types.NoCollision {
		s.State = Dead
	}
	return result
}

// Occupies reports whether p is on the body.
func (s *Snake) Occupies(p types.Point) bool {
	return p.Collides(s.Body)
}
