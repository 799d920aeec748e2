package scene

import "github.com/hubastard/sprout/engine/geom"

// Viewport places a fixed-size canvas in a window at the largest integer
// scale that fits, centred with letterbox bars.
type Viewport struct {
	Canvas geom.Size
	Window geom.Size
	Scale  uint32 // 0 picks the largest fit
	dst    geom.Rect
}

func NewViewport(canvas geom.Size, scale uint32) *Viewport {
	return &Viewport{Canvas: canvas, Scale: scale}
}

// Fit recomputes the destination rectangle for a window of w×h pixels.
// The scale is never below 1, even if the canvas then overflows.
func (v *Viewport) Fit(w, h int) {
	v.Window = geom.Sz(uint32(max(w, 0)), uint32(max(h, 0)))
	s := v.Scale
	if s == 0 {
		s = 1
		if v.Canvas.W > 0 && v.Canvas.H > 0 {
			s = max(min(v.Window.W/v.Canvas.W, v.Window.H/v.Canvas.H), 1)
		}
	}
	size := geom.Sz(v.Canvas.W*s, v.Canvas.H*s)
	v.dst = geom.Rect{
		TopLeft: geom.Pt((int32(v.Window.W)-int32(size.W))/2, (int32(v.Window.H)-int32(size.H))/2),
		Size:    size,
	}
}

// Dest is where the canvas lands in window pixels.
func (v *Viewport) Dest() geom.Rect { return v.dst }

// EffectiveScale is the pixel multiplier chosen by the last Fit.
func (v *Viewport) EffectiveScale() uint32 {
	if v.Canvas.W == 0 {
		return 1
	}
	return v.dst.Size.W / v.Canvas.W
}

// ToCanvas maps a window position to a canvas pixel. Points on the
// letterbox bars report false.
func (v *Viewport) ToCanvas(x, y float64) (geom.Point, bool) {
	s := float64(v.EffectiveScale())
	cx := (x - float64(v.dst.TopLeft.X)) / s
	cy := (y - float64(v.dst.TopLeft.Y)) / s
	if cx < 0 || cy < 0 || cx >= float64(v.Canvas.W) || cy >= float64(v.Canvas.H) {
		return geom.Point{}, false
	}
	return geom.Pt(int32(cx), int32(cy)), true
}
