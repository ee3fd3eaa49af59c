package ai

import (
	"context"
	"testing"

	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"snake-arcade/game"
	"snake-arcade/game/clock"
	"snake-arcade/game/config"
	"snake-arcade/game/manager"
	"snake-arcade/game/types"
)

func snapshot(snake []types.Point, food *types.Point, dir types.Direction) game.Snapshot {
	return game.Snapshot{
		BoxSize: 10,
		Board:   manager.BuildWalls(10),
		Snake:   snake,
		Food:    food,
		State:   game.GameState{Direction: dir, Level: 1},
	}
}

func TestNextKeyHeadsForFood(t *testing.T) {
	food := types.Point{X: 2, Y: 3}
	snap := snapshot([]types.Point{{X: 5, Y: 3}, {X: 5, Y: 2}, {X: 5, Y: 1}}, &food, types.Up)

	assert.Equal(t, types.KeyLeft, NewAutopilot().NextKey(snap))
}

func TestNextKeyEatsAdjacentFood(t *testing.T) {
	food := types.Point{X: 6, Y: 3}
	snap := snapshot([]types.Point{{X: 5, Y: 3}, {X: 5, Y: 2}, {X: 5, Y: 1}}, &food, types.Up)

	assert.Equal(t, types.KeyRight, NewAutopilot().NextKey(snap))
}

func TestNextKeyAvoidsWall(t *testing.T) {
	food := types.Point{X: 5, Y: 1}
	snap := snapshot([]types.Point{{X: 5, Y: 8}, {X: 5, Y: 7}, {X: 5, Y: 6}}, &food, types.Up)

	key := NewAutopilot().NextKey(snap)

	assert.NotEqual(t, types.KeyUp, key)
	assert.NotEqual(t, types.KeyDown, key)
}

func TestNextKeyNeverReverses(t *testing.T) {
	food := types.Point{X: 5, Y: 1}
	snap := snapshot([]types.Point{{X: 5, Y: 5}, {X: 5, Y: 4}, {X: 5, Y: 3}}, &food, types.Up)

	assert.NotEqual(t, types.KeyDown, NewAutopilot().NextKey(snap))
}

func TestAutopilotPlaysASession(t *testing.T) {
	logger, _ := test.NewNullLogger()
	pilot := NewAutopilot()
	inbox := make(chan func(), 1)

	var s *game.Session
	steer := game.RendererFunc(func(snap game.Snapshot) {
		inbox <- func() { s.HandleKey(pilot.NextKey(snap)) }
	})
	s, err := game.New(config.Default(), game.WithSeed(3), game.WithLogger(logger), game.WithRenderer(steer))
	require.NoError(t, err)

	inbox <- func() { s.HandleKey(pilot.NextKey(s.Snapshot())) }
	require.NoError(t, s.Run(context.Background(), clock.NewVirtual(200), inbox))

	snap := s.Snapshot()
	assert.Greater(t, snap.State.Ticks, 6, "autopilot outlives a straight run into the wall")
	assert.Greater(t, snap.State.Score, 0)
}
