package clock

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMockTime(t *testing.T) {
	start := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	mock := NewMockTime(start)

	assert.True(t, mock.Now().Equal(start))

	mock.Advance(time.Hour)
	mock.Advance(30 * time.Minute)
	assert.True(t, mock.Now().Equal(start.Add(90*time.Minute)))
}

func TestVirtualRereadsPeriod(t *testing.T) {
	v := NewVirtual(0)
	interval := 500 * time.Millisecond
	ticks := 0

	err := v.Run(context.Background(),
		func() time.Duration { return interval },
		func() bool {
			ticks++
			if ticks == 2 {
				interval = 300 * time.Millisecond
			}
			return ticks < 4
		}, nil)

	require.NoError(t, err)
	assert.Equal(t, 4, ticks)
	assert.Equal(t, []time.Duration{500 * time.Millisecond, 300 * time.Millisecond, 300 * time.Millisecond}, v.Periods)
	assert.Equal(t, time.Unix(0, 0).Add(1100*time.Millisecond), v.Clock.Now())
}

func TestVirtualMaxTicks(t *testing.T) {
	v := NewVirtual(3)
	ticks := 0

	err := v.Run(context.Background(),
		func() time.Duration { return time.Second },
		func() bool { ticks++; return true }, nil)

	require.NoError(t, err)
	assert.Equal(t, 3, ticks)
}

func TestVirtualDrainsInboxBeforeTick(t *testing.T) {
	v := NewVirtual(2)
	inbox := make(chan func(), 4)
	var order []string
	inbox <- func() { order = append(order, "input") }

	err := v.Run(context.Background(),
		func() time.Duration { return time.Second },
		func() bool { order = append(order, "tick"); return true }, inbox)

	require.NoError(t, err)
	assert.Equal(t, []string{"input", "tick", "tick"}, order)
}

func TestVirtualHonoursCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := NewVirtual(0).Run(ctx, func() time.Duration { return time.Second }, func() bool { return true }, nil)

	assert.ErrorIs(t, err, context.Canceled)
}

func TestLoopStopsWhenTaskDone(t *testing.T) {
	ticks := 0

	err := NewLoop().Run(context.Background(),
		func() time.Duration { return time.Millisecond },
		func() bool { ticks++; return ticks < 3 }, nil)

	require.NoError(t, err)
	assert.Equal(t, 3, ticks)
}

func TestLoopRunsInboxBetweenTicks(t *testing.T) {
	inbox := make(chan func())
	ticks := 0
	handled := false

	go func() {
		inbox <- func() { handled = true }
	}()

	err := NewLoop().Run(context.Background(),
		func() time.Duration { return 5 * time.Millisecond },
		func() bool {
			ticks++
			return !handled
		}, inbox)

	require.NoError(t, err)
	assert.True(t, handled)
	assert.GreaterOrEqual(t, ticks, 2)
}

func TestLoopCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)

	go func() {
		done <- NewLoop().Run(ctx, func() time.Duration { return time.Hour }, func() bool { return true }, nil)
	}()
	cancel()

	select {
	case err := <-done:
		assert.ErrorIs(t, err, context.Canceled)
	case <-time.After(time.Second):
		t.Fatal("loop did not stop after cancel")
	}
}

func TestPacer(t *testing.T) {
	mock := NewMockTime(time.Unix(0, 0))
	p := NewPacer(mock)

	assert.True(t, p.Due(500*time.Millisecond))
	mock.Advance(499 * time.Millisecond)
	assert.False(t, p.Due(500*time.Millisecond))
	mock.Advance(time.Millisecond)
	assert.True(t, p.Due(500*time.Millisecond))

	// A shorter period applies on the next check.
	mock.Advance(300 * time.Millisecond)
	assert.True(t, p.Due(300*time.Millisecond))

	p.Reset()
	assert.True(t, p.Due(time.Hour))
}
