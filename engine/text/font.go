// Package text measures and draws strings onto gfx targets.
package text

import (
	"iter"
	"strings"
	"unicode/utf8"

	"github.com/hubastard/sprout/engine/geom"
	"github.com/hubastard/sprout/engine/gfx"
)

// Font is what widgets need from a font: a size for layout and a way to
// draw a string with its top-left corner at a point.
type Font[C comparable] interface {
	Measure(s string) geom.Size
	LineHeight() uint32
	Draw(t gfx.Target[C], s string, topLeft geom.Point, c C) error
}

var (
	_ Font[uint16] = (*Face[uint16])(nil)
	_ Font[uint16] = (*Tiny[uint16])(nil)
)

// Text is a positioned, coloured string.
type Text[C comparable] struct {
	Font    Font[C]
	Str     string
	TopLeft geom.Point
	Color   C
}

func (t Text[C]) Size() geom.Size { return t.Font.Measure(t.Str) }

func (t Text[C]) Bounds() geom.Rect { return geom.Rect{TopLeft: t.TopLeft, Size: t.Size()} }

func (t Text[C]) Draw(target gfx.Target[C]) error {
	return t.Font.Draw(target, t.Str, t.TopLeft, t.Color)
}

// Centered returns the top-left that centres s inside area.
func Centered[C comparable](f Font[C], s string, area geom.Rect) geom.Point {
	sz := f.Measure(s)
	return geom.Pt(
		area.TopLeft.X+(int32(area.Size.W)-int32(sz.W))/2,
		area.TopLeft.Y+(int32(area.Size.H)-int32(sz.H))/2,
	)
}

// Truncate shortens s rune by rune until it fits in width, appending
// ellipsis when anything was removed. The result is a substring of s plus
// the ellipsis, so no allocation happens when s already fits.
func Truncate[C comparable](f Font[C], s string, width uint32, ellipsis string) string {
	if f.Measure(s).W <= width {
		return s
	}
	budget := width
	if ew := f.Measure(ellipsis).W; ew < budget {
		budget -= ew
	} else {
		return ""
	}
	cut := s
	for len(cut) > 0 {
		_, n := utf8.DecodeLastRuneInString(cut)
		cut = cut[:len(cut)-n]
		if f.Measure(cut).W <= budget {
			break
		}
	}
	return cut + ellipsis
}

func splitLines(s string) iter.Seq[string] {
	return func(yield func(string) bool) {
		for {
			i := strings.IndexByte(s, '\n')
			if i < 0 {
				yield(s)
				return
			}
			if !yield(s[:i]) {
				return
			}
			s = s[i+1:]
		}
	}
}
