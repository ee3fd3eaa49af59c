package ui

import (
	"testing"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/stretchr/testify/assert"

	"snake-arcade/game/types"
)

func TestTranslateKey(t *testing.T) {
	code, ok := TranslateKey(rl.KeyUp)
	assert.True(t, ok)
	assert.Equal(t, types.KeyUp, code)

	code, ok = TranslateKey(rl.KeySpace)
	assert.True(t, ok)
	assert.Equal(t, types.KeyPause, code)

	code, ok = TranslateKey(rl.KeyR)
	assert.True(t, ok)
	assert.Equal(t, types.KeyResume, code)

	_, ok = TranslateKey(rl.KeyF12)
	assert.False(t, ok)
}

func TestWindowSize(t *testing.T) {
	w, h := WindowSize(10, 20)

	assert.Equal(t, int32(220), w)
	assert.Equal(t, int32(290), h)
}
