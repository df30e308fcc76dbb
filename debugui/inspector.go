package debugui

import (
	"fmt"

	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/blockdrop/game"
	"github.com/plus3/blockdrop/shape"
	"github.com/plus3/blockdrop/well"
)

// RowFill returns the fraction of occupied cells in every row, top first.
func RowFill(w *well.Well) []float32 {
	fill := make([]float32, w.Height())
	for y := range fill {
		n := 0
		for _, v := range w.Row(y) {
			if v != 0 {
				n++
			}
		}
		fill[y] = float32(n) / float32(w.Width())
	}
	return fill
}

// WellInspector shows the state of one session.
type WellInspector struct {
	session *game.Session
}

func NewWellInspector(session *game.Session) *WellInspector {
	return &WellInspector{session: session}
}

func (wi *WellInspector) Render() {
	imgui.SetNextWindowPosV(imgui.NewVec2(10, 280), imgui.CondOnce, imgui.NewVec2(0, 0))
	imgui.SetNextWindowSizeV(imgui.NewVec2(340, 420), imgui.CondOnce)
	if !imgui.BeginV("Well", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	s := wi.session
	w := s.Well()
	active := s.Active()
	counters := s.Counters()

	imgui.Text(fmt.Sprintf("Session: %s", s.ID()))
	imgui.Text(fmt.Sprintf("Size: %dx%d", w.Width(), w.Height()))
	imgui.Text(fmt.Sprintf("Occupied: %d", w.Occupied()))
	imgui.Text(fmt.Sprintf("Active: %s %s at (%d,%d)", active.Kind, active.Orientation(), active.X, active.Y))
	imgui.Text(fmt.Sprintf("Next: %s", s.Next()))

	imgui.Separator()
	imgui.Text(fmt.Sprintf("Ticks: %d", counters.Ticks))
	imgui.Text(fmt.Sprintf("Locked: %d", counters.Locked))
	imgui.Text(fmt.Sprintf("Rows: %d", counters.Rows))
	imgui.Text(fmt.Sprintf("Soft resets: %d", counters.SoftResets))

	if imgui.TreeNodeStr("Spawns") {
		for _, k := range shape.Kinds {
			imgui.BulletText(fmt.Sprintf("%s: %d", k, counters.Spawned(k)))
		}
		imgui.TreePop()
	}

	if imgui.TreeNodeStr("Row Fill") {
		for y, fill := range RowFill(w) {
			if fill == 0 {
				continue
			}
			imgui.ProgressBarV(fill, imgui.NewVec2(-1, 0), fmt.Sprintf("row %d", y))
		}
		imgui.TreePop()
	}

	imgui.End()
}

// Controls pauses the game loop and steps it one tick at a time.
type Controls struct {
	Paused bool
	step   bool
}

// TakeStep reports whether a single step was requested since the last call.
func (c *Controls) TakeStep() bool {
	step := c.step
	c.step = false
	return step
}

// Advance reports whether the game should tick this frame.
func (c *Controls) Advance() bool {
	if !c.Paused {
		return true
	}
	return c.TakeStep()
}

func (c *Controls) Render() {
	imgui.SetNextWindowPosV(imgui.NewVec2(360, 10), imgui.CondOnce, imgui.NewVec2(0, 0))
	imgui.SetNextWindowSizeV(imgui.NewVec2(200, 90), imgui.CondOnce)
	if !imgui.BeginV("Controls", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	imgui.Checkbox("Paused", &c.Paused)
	if c.Paused {
		imgui.SameLine()
		if imgui.Button("Step") {
			c.step = true
		}
		imgui.TextColored(imgui.NewVec4(1.0, 0.8, 0.0, 1.0), "PAUSED")
	} else {
		imgui.TextColored(imgui.NewVec4(0.0, 1.0, 0.0, 1.0), "RUNNING")
	}

	imgui.End()
}
