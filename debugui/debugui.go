// Package debugui draws Dear ImGui diagnostics over the game. Panels register
// render functions on an Overlay; the System defers them into the frame
// commands so they run after the rest of the tick.
package debugui

import (
	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/blockdrop/tick"
)

// Item holds a Dear ImGui render function.
type Item struct {
	Name   string
	Render func()
}

// InputState tracks whether Dear ImGui is consuming mouse or keyboard input.
// Frontends check it before turning keys into game events.
type InputState struct {
	WantCaptureMouse    bool
	WantCaptureKeyboard bool
}

// Overlay is the set of panels drawn each frame, in registration order.
type Overlay struct {
	items []Item
}

func NewOverlay() *Overlay {
	return &Overlay{}
}

// Add registers a render function under name.
func (o *Overlay) Add(name string, render func()) {
	o.items = append(o.items, Item{Name: name, Render: render})
}

func (o *Overlay) Items() []Item {
	return o.items
}

// System updates the InputState resource and queues every overlay item.
// Without an InputState resource the ImGui context is never touched.
type System struct {
	Overlay    tick.Resource[Overlay]
	InputState tick.Resource[InputState]
}

func (s *System) Execute(frame *tick.Frame) {
	if state := s.InputState.Get(); state != nil {
		io := imgui.CurrentIO()
		state.WantCaptureMouse = io.WantCaptureMouse()
		state.WantCaptureKeyboard = io.WantCaptureKeyboard()
	}

	overlay := s.Overlay.Get()
	if overlay == nil {
		return
	}
	for _, item := range overlay.items {
		frame.Commands.Defer(item.Render)
	}
}
