package game

import (
	"strconv"
	"time"

	"snake-arcade/game/types"
)

// GameState is the scalar part of a session.
type GameState struct {
	Level        int
	Score        int
	GameOver     bool
	Paused       bool
	TickInterval time.Duration
	Ticks        int
	// LastInputTick is -1 until the first accepted direction change.
	LastInputTick int
	LastFoodTick  int
	Direction     types.Direction
	Collision     types.CollisionType
}

// Snapshot is a read-only copy of everything a renderer needs.
type Snapshot struct {
	SessionID string
	BoxSize   int
	Board     []types.Point
	Snake     []types.Point
	Food      *types.Point
	State     GameState
	// Best is the stored best score read when the session started.
	Best    int
	HasBest bool
}

// Status is the HUD line for the current state.
func (s Snapshot) Status() string {
	if s.State.GameOver {
		return "GAME OVER"
	}
	if s.State.Paused {
		return "PAUSED (PRESS R TO RESUME)"
	}
	return "PRESS SPACE TO PAUSE"
}

// TopScore formats the stored best score for the HUD, "-" when there is none.
func (s Snapshot) TopScore() string {
	if !s.HasBest {
		return "-"
	}
	return strconv.Itoa(s.Best)
}

// Renderer draws snapshots. It is called after every tick.
type Renderer interface {
	Draw(Snapshot)
}

// RendererFunc adapts a function to Renderer.
type RendererFunc func(Snapshot)

func (f RendererFunc) Draw(s Snapshot) { f(s) }
