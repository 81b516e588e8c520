package gesture_test

import (
	"fmt"
	"testing"

	"github.com/plus3/blockfall/gesture"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassify(t *testing.T) {
	c := gesture.NewClassifier()

	tests := []struct {
		name   string
		dx, dy float64
		want   gesture.Gesture
	}{
		{"still", 0, 0, gesture.Tap},
		{"jitter", 9, -9, gesture.Tap},
		{"up", 3, -60, gesture.Up},
		{"down", -3, 60, gesture.Down},
		{"right", 60, 5, gesture.Right},
		{"left", -60, 5, gesture.Left},
		{"vertical wins over horizontal", 80, -80, gesture.Up},
		{"too long for a tap, too short for a swipe", 30, 0, gesture.Other},
		{"exactly the swipe threshold", 50, 0, gesture.Other},
		{"exactly the tap threshold", 10, 0, gesture.Other},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, c.Classify(tt.dx, tt.dy))
		})
	}
}

func TestClassifierThresholds(t *testing.T) {
	c := gesture.NewClassifier()
	assert.Equal(t, float64(gesture.DefaultTouchMaxLength), c.TouchMaxLength())
	assert.Equal(t, float64(gesture.DefaultSwipeMinLength), c.SwipeMinLength())

	c.SetTouchMaxLength(40)
	c.SetSwipeMinLength(20)

	assert.Equal(t, gesture.Tap, c.Classify(30, 0))
	assert.Equal(t, gesture.Right, c.Classify(45, 0))
}

func TestTrackerDispatches(t *testing.T) {
	var got []gesture.Gesture
	var last gesture.Stroke
	tr := gesture.NewTracker(nil, gesture.HandlerFunc(func(g gesture.Gesture, s gesture.Stroke) {
		got = append(got, g)
		last = s
	}))

	_, _, ok := tr.End(1, 1)
	assert.False(t, ok, "release without press is ignored")

	tr.Begin(100, 100)
	assert.True(t, tr.Active())
	g, s, ok := tr.End(100, 30)
	require.True(t, ok)
	assert.False(t, tr.Active())
	assert.Equal(t, gesture.Up, g)
	assert.Equal(t, gesture.Stroke{X0: 100, Y0: 100, X1: 100, Y1: 30, DX: 0, DY: -70}, s)
	assert.InDelta(t, 70, s.Length(), 1e-9)

	tr.Begin(10, 10)
	tr.Cancel()
	_, _, ok = tr.End(200, 10)
	assert.False(t, ok)

	tr.Begin(0, 0)
	tr.End(3, 4)

	assert.Equal(t, []gesture.Gesture{gesture.Up, gesture.Tap}, got)
	assert.InDelta(t, 5, last.Length(), 1e-9)
}

func TestGestureString(t *testing.T) {
	assert.Equal(t, "left", gesture.Left.String())
	assert.Equal(t, "Gesture(12)", gesture.Gesture(12).String())
}

func ExampleClassifier_Classify() {
	c := gesture.NewClassifier()
	for _, d := range [][2]float64{{0, 2}, {0, -120}, {75, 10}, {25, 25}} {
		fmt.Println(c.Classify(d[0], d[1]))
	}
	// Output:
	// tap
	// up
	// right
	// other
}
