package manager

import (
	"snake-arcade/game/types"
)

// InputManager validates key requests against the current game state.
// At most one direction change is accepted per tick.
type InputManager struct {
	direction     types.Direction
	lastInputTick int
	paused        bool
}

func NewInputManager(initial types.Direction) *InputManager {
	return &InputManager{
		direction:     initial,
		lastInputTick: -1,
	}
}

// RequestDirection accepts dir unless a change was already taken at
// currentTick or dir reverses the current heading.
func (im *InputManager) RequestDirection(dir types.Direction, currentTick int) bool {
	if im.lastInputTick == currentTick {
		return false
	}
	if dir == im.direction.Opposite() {
		return false
	}
	im.direction = dir
	im.lastInputTick = currentTick
	return true
}

// HandleKey routes a key code. Unknown codes return false. Callers reject
// all input once the game is over.
func (im *InputManager) HandleKey(code types.KeyCode, currentTick int) bool {
	if dir, ok := code.Direction(); ok {
		return im.RequestDirection(dir, currentTick)
	}
	switch code {
	case types.KeyPause:
		im.paused = true
		return true
	case types.KeyResume:
		im.paused = false
		return true
	}
	return false
}

// TogglePause flips the pause flag.
func (im *InputManager) TogglePause() {
	im.paused = !im.paused
}

func (im *InputManager) Direction() types.Direction {
	return im.direction
}

// LastInputTick is the tick of the last accepted direction change, or -1.
func (im *InputManager) LastInputTick() int {
	return im.lastInputTick
}

func (im *InputManager) Paused() bool {
	return im.paused
}
