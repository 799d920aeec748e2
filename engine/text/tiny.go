package text

import (
	"image/color"

	"tinygo.org/x/tinyfont"

	"github.com/hubastard/sprout/engine/geom"
	"github.com/hubastard/sprout/engine/gfx"
)

// Tiny adapts a tinyfont font (the format used on microcontroller builds)
// to Font. tinyfont draws relative to the baseline, so the ascent is found
// once by scanning the printable ASCII glyphs.
type Tiny[C comparable] struct {
	font            tinyfont.Fonter
	ascent, descent int32
}

func NewTiny[C comparable](f tinyfont.Fonter) *Tiny[C] {
	t := &Tiny[C]{font: f}
	for r := rune(32); r < 127; r++ {
		info := f.GetGlyph(r).Info()
		if info.Height == 0 {
			continue
		}
		t.ascent = max(t.ascent, -int32(info.YOffset))
		t.descent = max(t.descent, int32(info.YOffset)+int32(info.Height))
	}
	return t
}

// TomThumb is the 3x5 font shipped with tinyfont.
func TomThumb[C comparable]() *Tiny[C] { return NewTiny[C](&tinyfont.TomThumb) }

func (t *Tiny[C]) LineHeight() uint32 {
	return max(uint32(t.font.GetYAdvance()), uint32(t.ascent+t.descent))
}

func (t *Tiny[C]) Measure(s string) geom.Size {
	var w uint32
	lines := uint32(0)
	for line := range splitLines(s) {
		_, outbox := tinyfont.LineWidth(t.font, line)
		w = max(w, outbox)
		lines++
	}
	return geom.Sz(w, lines*t.LineHeight())
}

func (t *Tiny[C]) Draw(target gfx.Target[C], s string, topLeft geom.Point, c C) error {
	return target.DrawIter(func(yield func(gfx.Pixel[C]) bool) {
		sink := &pixelSink[C]{yield: yield, color: c}
		y := topLeft.Y + t.ascent
		for line := range splitLines(s) {
			tinyfont.WriteLine(sink, t.font, int16(topLeft.X), int16(y), line, color.RGBA{A: 0xff})
			if sink.stopped {
				return
			}
			y += int32(t.LineHeight())
		}
	})
}

// pixelSink is a drivers.Displayer that forwards every pixel tinyfont sets
// into a DrawIter sequence in the target's own colour type.
type pixelSink[C comparable] struct {
	yield   func(gfx.Pixel[C]) bool
	color   C
	stopped bool
}

func (p *pixelSink[C]) Size() (x, y int16) { return 0x7fff, 0x7fff }
func (p *pixelSink[C]) Display() error     { return nil }

func (p *pixelSink[C]) SetPixel(x, y int16, _ color.RGBA) {
	if p.stopped {
		return
	}
	if !p.yield(gfx.Pixel[C]{Point: geom.Pt(int32(x), int32(y)), Color: p.color}) {
		p.stopped = true
	}
}
