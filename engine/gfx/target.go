package gfx

import (
	"iter"

	"github.com/hubastard/sprout/engine/geom"
)

type Pixel[C comparable] struct {
	Point geom.Point
	Color C
}

// Target is anything pixels can be written to: a display, an in-memory
// canvas or a scratch framebuffer.
type Target[C comparable] interface {
	BoundingBox() geom.Rect
	DrawIter(pixels iter.Seq[Pixel[C]]) error
	// FillContiguous writes colours row-major over area.
	FillContiguous(area geom.Rect, colors iter.Seq[C]) error
}

// SolidFiller is an optional fast path for single-colour fills.
type SolidFiller[C comparable] interface {
	FillSolid(area geom.Rect, c C) error
}

// Drawable is any item that can render itself onto a target.
type Drawable[C comparable] interface {
	Draw(t Target[C]) error
}

// DrawFunc adapts a function to Drawable.
type DrawFunc[C comparable] func(t Target[C]) error

func (f DrawFunc[C]) Draw(t Target[C]) error { return f(t) }

// FillSolid fills area with c, using the target's fast path when it has one.
func FillSolid[C comparable](t Target[C], area geom.Rect, c C) error {
	if area.IsEmpty() {
		return nil
	}
	if sf, ok := t.(SolidFiller[C]); ok {
		return sf.FillSolid(area, c)
	}
	n := area.Size.Area()
	return t.FillContiguous(area, func(yield func(C) bool) {
		for i := 0; i < n; i++ {
			if !yield(c) {
				return
			}
		}
	})
}
