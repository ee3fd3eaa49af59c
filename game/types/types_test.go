package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCollides(t *testing.T) {
	points := []Point{{X: 1, Y: 2}, {X: 3, Y: 4}}

	assert.True(t, Point{X: 3, Y: 4}.Collides(points))
	assert.False(t, Point{X: 4, Y: 3}.Collides(points))
	assert.False(t, Point{X: 1, Y: 2}.Collides(nil))
}

func TestDirectionOpposites(t *testing.T) {
	for _, d := range []Direction{Up, Right, Down, Left} {
		assert.Equal(t, d, d.Opposite().Opposite(), d.String())
		assert.NotEqual(t, d, d.Opposite())
		assert.Equal(t, Point{}, d.ToPoint().Add(d.Opposite().ToPoint()), d.String())
	}
}

func TestDirectionTurns(t *testing.T) {
	for _, d := range []Direction{Up, Right, Down, Left} {
		assert.Equal(t, d, d.TurnLeft().TurnRight())
		assert.Equal(t, d.Opposite(), d.TurnLeft().TurnLeft())
	}
	assert.Equal(t, Left, Up.TurnLeft())
	assert.Equal(t, Right, Up.TurnRight())
}

func TestUpGrowsY(t *testing.T) {
	assert.Equal(t, Point{X: 5, Y: 4}, Point{X: 5, Y: 3}.Add(Up.ToPoint()))
}

func TestKeyCodeDirection(t *testing.T) {
	for _, d := range []Direction{Up, Right, Down, Left} {
		got, ok := d.Key().Direction()
		assert.True(t, ok)
		assert.Equal(t, d, got)
	}

	_, ok := KeyPause.Direction()
	assert.False(t, ok)
	_, ok = KeyCode(13).Direction()
	assert.False(t, ok)
}
