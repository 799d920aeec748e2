package scratch

import (
	"iter"
	"slices"

	"github.com/hubastard/sprout/engine/geom"
	"github.com/hubastard/sprout/engine/gfx"
)

// Framebuf is an off-screen pixel region addressed in absolute coordinates.
// It borrows an externally owned slice; nothing is allocated here.
type Framebuf[C comparable] struct {
	buf    []C
	size   geom.Size
	origin geom.Point
}

// TryNew wraps buf as a w×h region at origin. It fails when buf is too short.
func TryNew[C comparable](buf []C, size geom.Size, origin geom.Point) (*Framebuf[C], bool) {
	if size.Area() > len(buf) {
		return nil, false
	}
	return &Framebuf[C]{buf: buf[:size.Area()], size: size, origin: origin}, true
}

// New is TryNew for callers that guarantee the buffer size; it panics otherwise.
func New[C comparable](buf []C, size geom.Size, origin geom.Point) *Framebuf[C] {
	fb, ok := TryNew(buf, size, origin)
	if !ok {
		panic("buffer too small for framebuffer")
	}
	return fb
}

func (f *Framebuf[C]) Size() geom.Size        { return f.size }
func (f *Framebuf[C]) Origin() geom.Point     { return f.origin }
func (f *Framebuf[C]) Pixels() []C            { return f.buf }
func (f *Framebuf[C]) BoundingBox() geom.Rect { return geom.Rect{TopLeft: f.origin, Size: f.size} }

func (f *Framebuf[C]) index(p geom.Point) int {
	dx := p.X - f.origin.X
	if dx < 0 || dx >= int32(f.size.W) {
		return -1
	}
	i := int(p.Y-f.origin.Y)*int(f.size.W) + int(dx)
	if i < 0 || i >= len(f.buf) {
		return -1
	}
	return i
}

// Set writes one pixel, silently dropping writes outside the region.
func (f *Framebuf[C]) Set(p geom.Point, c C) {
	if i := f.index(p); i >= 0 {
		f.buf[i] = c
	}
}

func (f *Framebuf[C]) Get(p geom.Point) (C, bool) {
	var zero C
	i := f.index(p)
	if i < 0 {
		return zero, false
	}
	return f.buf[i], true
}

func (f *Framebuf[C]) Fill(c C) {
	for i := range f.buf {
		f.buf[i] = c
	}
}

// ===== gfx.Target =====

func (f *Framebuf[C]) DrawIter(pixels iter.Seq[gfx.Pixel[C]]) error {
	for p := range pixels {
		f.Set(p.Point, p.Color)
	}
	return nil
}

func (f *Framebuf[C]) FillContiguous(area geom.Rect, cs iter.Seq[C]) error {
	if area.IsEmpty() {
		return nil
	}
	w := int32(area.Size.W)
	n := int32(area.Size.Area())
	var i int32
	for c := range cs {
		if i >= n {
			break
		}
		f.Set(geom.Pt(area.TopLeft.X+i%w, area.TopLeft.Y+i/w), c)
		i++
	}
	return nil
}

func (f *Framebuf[C]) FillSolid(area geom.Rect, c C) error {
	clip := area.Intersect(f.BoundingBox())
	for y := clip.TopLeft.Y; y < clip.Bottom(); y++ {
		for x := clip.TopLeft.X; x < clip.Right(); x++ {
			f.buf[f.index(geom.Pt(x, y))] = c
		}
	}
	return nil
}

// Flush copies the region onto t with a single contiguous fill.
func (f *Framebuf[C]) Flush(t gfx.Target[C]) error {
	return t.FillContiguous(f.BoundingBox(), slices.Values(f.buf))
}

// Draw makes a framebuffer usable as a gfx.Drawable.
func (f *Framebuf[C]) Draw(t gfx.Target[C]) error { return f.Flush(t) }
