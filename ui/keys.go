package ui

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"snake-arcade/game/types"
)

var keyMap = map[int32]types.KeyCode{
	rl.KeyUp:    types.KeyUp,
	rl.KeyDown:  types.KeyDown,
	rl.KeyLeft:  types.KeyLeft,
	rl.KeyRight: types.KeyRight,
	rl.KeyW:     types.KeyUp,
	rl.KeyS:     types.KeyDown,
	rl.KeyA:     types.KeyLeft,
	rl.KeyD:     types.KeyRight,
	rl.KeySpace: types.KeyPause,
	rl.KeyR:     types.KeyResume,
}

// TranslateKey maps a raylib key to a game key code.
func TranslateKey(key int32) (types.KeyCode, bool) {
	code, ok := keyMap[key]
	return code, ok
}

// PressedKeys drains the raylib key queue for this frame, in order.
func PressedKeys() []int32 {
	var keys []int32
	for key := rl.GetKeyPressed(); key != 0; key = rl.GetKeyPressed() {
		keys = append(keys, key)
	}
	return keys
}
