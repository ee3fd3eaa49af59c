package manager

import (
	"errors"

	"golang.org/x/exp/rand"

	"snake-arcade/game/entity"
	"snake-arcade/game/types"
)

// ErrBoardFull is returned when no interior cell is free for food.
var ErrBoardFull = errors.New("no free cell for food")

// PlaceResult reports what Place did this tick.
type PlaceResult struct {
	Expired bool
	Placed  bool
}

type FoodManager struct {
	collisionMgr *CollisionManager
	rng          *rand.Rand
	food         *types.Point
	lastFoodTick int
	timeoutTicks int
	maxAttempts  int
}

func NewFoodManager(collisionMgr *CollisionManager, rng *rand.Rand, timeoutTicks, maxAttempts int) *FoodManager {
	return &FoodManager{
		collisionMgr: collisionMgr,
		rng:          rng,
		timeoutTicks: timeoutTicks,
		maxAttempts:  maxAttempts,
	}
}

// Food returns the current food cell, or nil.
func (fm *FoodManager) Food() *types.Point {
	if fm.food == nil {
		return nil
	}
	f := *fm.food
	return &f
}

func (fm *FoodManager) LastFoodTick() int {
	return fm.lastFoodTick
}

// Clear removes the food, e.g. after it was eaten.
func (fm *FoodManager) Clear() {
	fm.food = nil
}

// Place expires food that has sat for timeoutTicks and places new food if
// none is present. On ErrBoardFull the board is left without food.
func (fm *FoodManager) Place(currentTick int, snake *entity.Snake) (PlaceResult, error) {
	var res PlaceResult
	if fm.food != nil && currentTick-fm.lastFoodTick >= fm.timeoutTicks {
		fm.food = nil
		res.Expired = true
	}
	if fm.food != nil {
		return res, nil
	}

	food, err := fm.GenerateFood(snake)
	if err != nil {
		return res, err
	}
	fm.food = &food
	fm.lastFoodTick = currentTick
	res.Placed = true
	return res, nil
}

// GenerateFood samples random interior cells until one is free. After
// maxAttempts misses it scans the interior for free cells and picks one of
// those, so a crowded board cannot spin forever.
func (fm *FoodManager) GenerateFood(snake *entity.Snake) (types.Point, error) {
	side := fm.collisionMgr.BoxSize() - 2
	if side <= 0 {
		return types.Point{}, ErrBoardFull
	}

	for i := 0; i < fm.maxAttempts; i++ {
		food := types.Point{
			X: 1 + fm.rng.Intn(side),
			Y: 1 + fm.rng.Intn(side),
		}
		if fm.collisionMgr.ValidateSpawnPosition(food, snake) {
			return food, nil
		}
	}

	free := fm.freeCells(snake)
	if len(free) == 0 {
		return types.Point{}, ErrBoardFull
	}
	return free[fm.rng.Intn(len(free))], nil
}

func (fm *FoodManager) freeCells(snake *entity.Snake) []types.Point {
	last := fm.collisionMgr.BoxSize() - 1
	var free []types.Point
	for y := 1; y < last; y++ {
		for x := 1; x < last; x++ {
			p := types.Point{X: x, Y: y}
			if fm.collisionMgr.ValidateSpawnPosition(p, snake) {
				free = append(free, p)
			}
		}
	}
	return free
}
