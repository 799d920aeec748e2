package core

import (
	"github.com/hubastard/sprout/engine/geom"
	"github.com/hubastard/sprout/engine/ui"
)

// Input folds window events into key state and one pointer interaction
// per UI frame, the way a resistive touch panel reports them.
type Input struct {
	keys map[Key]bool
	x, y float64
	down bool

	// Edges seen since the last Interaction call.
	pressed, released bool
}

func NewInput() *Input { return &Input{keys: map[Key]bool{}} }

func (in *Input) Handle(ev Event) {
	switch e := ev.(type) {
	case EventKey:
		in.keys[e.Key] = e.Down
	case EventMouseMove:
		in.x, in.y = e.X, e.Y
	case EventMouseButton:
		switch {
		case e.Down && !in.down:
			in.pressed = true
		case !e.Down && in.down:
			in.released = true
		}
		in.down = e.Down
	}
}

func (in *Input) KeyDown(k Key) bool        { return in.keys[k] }
func (in *Input) Mouse() (float64, float64) { return in.x, in.y }

// Interaction consumes the pending edges and returns this frame's
// interaction. toCanvas maps window coordinates to canvas pixels and
// reports whether the point is on the canvas; off-canvas pointers yield
// None. A press and release within one frame become Click now and Release
// on the next call.
func (in *Input) Interaction(toCanvas func(x, y float64) (geom.Point, bool)) ui.Interaction {
	var kind ui.Kind
	switch {
	case in.pressed:
		in.pressed = false
		kind = ui.Click
	case in.released:
		in.released = false
		kind = ui.Release
	case in.down:
		kind = ui.Drag
	default:
		kind = ui.Hover
	}
	p, ok := toCanvas(in.x, in.y)
	if !ok {
		return ui.NoInteraction()
	}
	return ui.Interaction{Kind: kind, At: p}
}
