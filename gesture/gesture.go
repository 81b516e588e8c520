// Package gesture classifies single-touch strokes into taps and directional swipes.
package gesture

import (
	"fmt"
	"math"
)

// Gesture is the classification of one completed touch.
type Gesture uint8

const (
	Tap Gesture = iota
	Up
	Down
	Left
	Right
	// Other is a stroke too long for a tap and too short for a swipe.
	Other
)

var gestureNames = [...]string{
	Tap:   "tap",
	Up:    "up",
	Down:  "down",
	Left:  "left",
	Right: "right",
	Other: "other",
}

func (g Gesture) String() string {
	if int(g) < len(gestureNames) {
		return gestureNames[g]
	}
	return fmt.Sprintf("Gesture(%d)", uint8(g))
}

const (
	DefaultTouchMaxLength = 10
	DefaultSwipeMinLength = 50
)

// Stroke is the geometry of one touch, in screen coordinates with y growing downwards.
type Stroke struct {
	X0, Y0 float64
	X1, Y1 float64
	DX, DY float64
}

// Length returns the straight-line distance covered by the stroke.
func (s Stroke) Length() float64 {
	return math.Hypot(s.DX, s.DY)
}

// Classifier turns stroke displacements into gestures.
//
// A stroke whose horizontal and vertical displacement both stay under TouchMaxLength is a
// tap. Otherwise the first displacement exceeding SwipeMinLength, checked up, down, right
// then left, picks the swipe direction. Anything else is Other.
type Classifier struct {
	touchMaxLength float64
	swipeMinLength float64
}

// NewClassifier returns a classifier with the default thresholds.
func NewClassifier() *Classifier {
	return &Classifier{
		touchMaxLength: DefaultTouchMaxLength,
		swipeMinLength: DefaultSwipeMinLength,
	}
}

func (c *Classifier) TouchMaxLength() float64 { return c.touchMaxLength }

func (c *Classifier) SetTouchMaxLength(length float64) { c.touchMaxLength = length }

func (c *Classifier) SwipeMinLength() float64 { return c.swipeMinLength }

func (c *Classifier) SetSwipeMinLength(length float64) { c.swipeMinLength = length }

// Classify returns the gesture for a displacement of (dx, dy).
func (c *Classifier) Classify(dx, dy float64) Gesture {
	switch {
	case math.Abs(dx) < c.touchMaxLength && math.Abs(dy) < c.touchMaxLength:
		return Tap
	case dy < -c.swipeMinLength:
		return Up
	case dy > c.swipeMinLength:
		return Down
	case dx > c.swipeMinLength:
		return Right
	case dx < -c.swipeMinLength:
		return Left
	default:
		return Other
	}
}
