package manager

import (
	"snake-arcade/game/entity"
	"snake-arcade/game/types"
)

// BuildWalls traces the perimeter of a boxSize x boxSize grid once:
// left edge bottom to top, top edge left to right, right edge top to
// bottom, bottom edge right to left. Every cell appears exactly once.
func BuildWalls(boxSize int) []types.Point {
	if boxSize < 2 {
		return nil
	}
	last := boxSize - 1
	walls := make([]types.Point, 0, 4*last)
	for y := 0; y < boxSize; y++ {
		walls = append(walls, types.Point{X: 0, Y: y})
	}
	for x := 1; x < boxSize; x++ {
		walls = append(walls, types.Point{X: x, Y: last})
	}
	for y := last - 1; y >= 0; y-- {
		walls = append(walls, types.Point{X: last, Y: y})
	}
	for x := last - 1; x > 0; x-- {
		walls = append(walls, types.Point{X: x, Y: 0})
	}
	return walls
}

type CollisionManager struct {
	boxSize int
	walls   []types.Point
}

func NewCollisionManager(boxSize int) *CollisionManager {
	return &CollisionManager{
		boxSize: boxSize,
	}
}

// InitBoard builds the walls on first use; later calls are no-ops.
func (cm *CollisionManager) InitBoard() {
	if cm.walls != nil {
		return
	}
	cm.walls = BuildWalls(cm.boxSize)
}

// Walls returns the board, building it if needed. Callers must not modify it.
func (cm *CollisionManager) Walls() []types.Point {
	cm.InitBoard()
	return cm.walls
}

func (cm *CollisionManager) BoxSize() int {
	return cm.boxSize
}

// IsWall reports whether pos is a wall cell.
func (cm *CollisionManager) IsWall(pos types.Point) bool {
	return pos.Collides(cm.Walls())
}

// IsInterior reports whether pos lies strictly inside the wall ring.
func (cm *CollisionManager) IsInterior(pos types.Point) bool {
	return pos.X > 0 && pos.Y > 0 && pos.X < cm.boxSize-1 && pos.Y < cm.boxSize-1
}

// CheckCollision classifies what a head at pos would hit, given the body it
// would leave behind.
func (cm *CollisionManager) CheckCollision(pos types.Point, body []types.Point) types.CollisionType {
	if cm.IsWall(pos) {
		return types.WallCollision
	}
	if pos.Collides(body) {
		return types.SelfCollision
	}
	return types.NoCollision
}

// ValidateSpawnPosition checks if a position is free for food.
func (cm *CollisionManager) ValidateSpawnPosition(pos types.Point, snake *entity.Snake) bool {
	if !cm.IsInterior(pos) {
		return false
	}
	return snake == nil || !snake.Occupies(pos)
}
