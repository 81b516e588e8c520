package debugui_test

import (
	"testing"

	"github.com/plus3/blockfall/debugui"
	"github.com/plus3/blockfall/loop"
	"github.com/plus3/blockfall/tetris"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newScheduler(t *testing.T) *loop.Scheduler {
	t.Helper()
	e, err := tetris.NewEngine(10, 20, 3, tetris.WithSeed(21))
	require.NoError(t, err)
	return loop.NewScheduler(e)
}

func TestCapture(t *testing.T) {
	scheduler := newScheduler(t)
	scheduler.Register(&loop.InputSystem{})
	e := scheduler.Engine()

	snap := debugui.Capture(scheduler)
	assert.Equal(t, 10, snap.Width)
	assert.Equal(t, 20, snap.Height)
	assert.Equal(t, 3, snap.StartingRow)
	assert.Equal(t, tetris.StatusRunning, snap.Status)
	assert.Equal(t, e.Current(), snap.Current)
	assert.Equal(t, e.Next(), snap.Next)
	assert.Equal(t, 0, snap.Occupied)
	assert.Equal(t, 1, snap.Scheduler.SystemCount)

	scheduler.Submit(loop.Drop)
	scheduler.Once(0)

	snap = debugui.Capture(scheduler)
	assert.Equal(t, 4, snap.Occupied)
	assert.Equal(t, 1, snap.Stats.Locked)
	assert.Equal(t, int64(1), snap.Scheduler.Frames)
}

func TestFrameHistory(t *testing.T) {
	in := debugui.NewInspector(newScheduler(t), 4)
	assert.Equal(t, float32(0), in.AverageFrameTime())

	in.Record(0.010)
	in.Record(0.030)
	assert.InDelta(t, 10.0, in.AverageFrameTime(), 1e-4)

	for range 4 {
		in.Record(0.020)
	}
	assert.InDelta(t, 20.0, in.AverageFrameTime(), 1e-4, "old samples are overwritten")
}
