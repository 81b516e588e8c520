// Package debugui renders a Dear ImGui inspector over a running game: engine state,
// session counters and per-system scheduler timings.
package debugui

import (
	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/blockfall/loop"
)

// InputState tracks whether Dear ImGui is consuming mouse or keyboard input. Front ends
// check it before turning clicks and keys into game commands.
type InputState struct {
	WantCaptureMouse    bool
	WantCaptureKeyboard bool
}

// System queues the inspector render after every other system of the frame has run and
// refreshes the input capture state.
type System struct {
	Inspector *Inspector
	Input     InputState
}

func (s *System) Execute(frame *loop.Frame) {
	io := imgui.CurrentIO()
	s.Input.WantCaptureMouse = io.WantCaptureMouse()
	s.Input.WantCaptureKeyboard = io.WantCaptureKeyboard()

	dt := float32(frame.DeltaTime)
	frame.Commands.Defer(func() { s.Inspector.Render(dt) })
}
