package ui

import (
	"github.com/hubastard/sprout/engine/geom"
	"github.com/hubastard/sprout/engine/gfx"
	"github.com/hubastard/sprout/engine/scratch"
)

// Painter routes a widget's draw calls either straight to the target or,
// when a scratch slice is set and big enough, into a framebuffer that is
// flushed in one contiguous fill on Finalize.
type Painter[C comparable] struct {
	target gfx.Target[C]
	buf    []C
	fb     *scratch.Framebuf[C]
}

func NewPainter[C comparable](t gfx.Target[C]) *Painter[C] {
	return &Painter[C]{target: t}
}

func (p *Painter[C]) Target() gfx.Target[C] { return p.target }
func (p *Painter[C]) SetBuffer(buf []C)     { p.buf = buf }
func (p *Painter[C]) Buffering() bool       { return p.fb != nil }

// StartDrawing opens a buffered session over area when the scratch slice
// can hold it. Otherwise draws go to the target directly.
func (p *Painter[C]) StartDrawing(area geom.Rect) {
	if p.fb != nil {
		panic("framebuffer is already in use")
	}
	if p.buf == nil {
		return
	}
	if fb, ok := scratch.TryNew(p.buf, area.Size, area.TopLeft); ok {
		p.fb = fb
	}
}

// ClearBuffer fills the open session with c and reports whether one was open.
func (p *Painter[C]) ClearBuffer(c C) bool {
	if p.fb == nil {
		return false
	}
	p.fb.Fill(c)
	return true
}

func (p *Painter[C]) Draw(d gfx.Drawable[C]) error {
	if p.fb != nil {
		// Scratch writes clip silently and never fail.
		_ = d.Draw(p.fb)
		return nil
	}
	if err := d.Draw(p.target); err != nil {
		return drawErr("failed to draw item", err)
	}
	return nil
}

// Finalize flushes the open session, if any, and releases the scratch slice.
func (p *Painter[C]) Finalize() error {
	if p.fb == nil {
		return nil
	}
	fb := p.fb
	p.fb = nil
	if err := fb.Flush(p.target); err != nil {
		return drawErr("failed to draw framebuf", err)
	}
	return nil
}

// WithSubpainter runs fn with a painter sharing this one's target and
// scratch slice. It must not be called inside a buffered session.
func (p *Painter[C]) WithSubpainter(fn func(*Painter[C]) error) error {
	if p.fb != nil {
		panic("cannot create subpainter while framebuf is in use")
	}
	sub := &Painter[C]{target: p.target, buf: p.buf}
	return fn(sub)
}
