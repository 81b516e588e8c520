package main

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/plus3/blockfall/debugui"
	"github.com/plus3/blockfall/gesture"
	"github.com/plus3/blockfall/loop"
)

func defaultKeys() *loop.Bindings[ebiten.Key] {
	return loop.NewBindings[ebiten.Key](16).
		Bind(ebiten.KeyArrowLeft, loop.ShiftLeft).
		Bind(ebiten.KeyA, loop.ShiftLeft).
		Bind(ebiten.KeyArrowRight, loop.ShiftRight).
		Bind(ebiten.KeyD, loop.ShiftRight).
		Bind(ebiten.KeyArrowUp, loop.RotateLeft).
		Bind(ebiten.KeyX, loop.RotateLeft).
		Bind(ebiten.KeyZ, loop.RotateRight).
		Bind(ebiten.KeyArrowDown, loop.Drop).
		Bind(ebiten.KeySpace, loop.Drop).
		Bind(ebiten.KeyS, loop.Step).
		Bind(ebiten.KeyR, loop.Reset)
}

// input turns key presses, mouse strokes and touches into scheduler commands.
type input struct {
	scheduler *loop.Scheduler
	keys      *loop.Bindings[ebiten.Key]
	tracker   *gesture.Tracker

	pressed []ebiten.Key
	touches []ebiten.TouchID
	touch   ebiten.TouchID
	touched bool
}

func newInput(scheduler *loop.Scheduler, classifier *gesture.Classifier) *input {
	in := &input{
		scheduler: scheduler,
		keys:      defaultKeys(),
	}
	in.tracker = gesture.NewTracker(classifier, gesture.HandlerFunc(func(g gesture.Gesture, _ gesture.Stroke) {
		if cmd, ok := loop.GestureCommand(g); ok {
			scheduler.Submit(cmd)
		}
	}))
	return in
}

func (in *input) quit() bool {
	return inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyQ)
}

func (in *input) poll(captured debugui.InputState) {
	if !captured.WantCaptureKeyboard {
		in.pressed = inpututil.AppendJustPressedKeys(in.pressed[:0])
		for _, key := range in.pressed {
			if cmd, ok := in.keys.Lookup(key); ok {
				in.scheduler.Submit(cmd)
			}
		}
	}

	if captured.WantCaptureMouse {
		in.tracker.Cancel()
		in.touched = false
		return
	}
	in.pollMouse()
	in.pollTouch()
}

func (in *input) pollMouse() {
	if in.touched {
		return
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		in.tracker.Begin(float64(x), float64(y))
	}
	if inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		in.tracker.End(float64(x), float64(y))
	}
}

// pollTouch follows the first finger down and ignores the others until it lifts.
func (in *input) pollTouch() {
	if !in.touched {
		in.touches = inpututil.AppendJustPressedTouchIDs(in.touches[:0])
		if len(in.touches) > 0 {
			in.touch = in.touches[0]
			in.touched = true
			x, y := ebiten.TouchPosition(in.touch)
			in.tracker.Begin(float64(x), float64(y))
		}
		return
	}

	if inpututil.IsTouchJustReleased(in.touch) {
		x, y := inpututil.TouchPositionInPreviousTick(in.touch)
		in.touched = false
		in.tracker.End(float64(x), float64(y))
	}
}
