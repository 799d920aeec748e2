package gfx

import (
	"image"

	"github.com/hubastard/sprout/engine/geom"
)

// Mask is a one-bit bitmap; icons and glyphs are stored this way so they can
// be drawn in any colour.
type Mask struct {
	W, H uint32
	Bits []bool
}

func NewMask(w, h uint32) *Mask {
	return &Mask{W: w, H: h, Bits: make([]bool, int(w)*int(h))}
}

// MaskFromAlpha thresholds an alpha image at half coverage.
func MaskFromAlpha(img *image.Alpha) *Mask {
	b := img.Bounds()
	m := NewMask(uint32(b.Dx()), uint32(b.Dy()))
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			if img.AlphaAt(x, y).A >= 0x80 {
				m.Bits[(y-b.Min.Y)*b.Dx()+(x-b.Min.X)] = true
			}
		}
	}
	return m
}

func (m *Mask) Size() geom.Size { return geom.Sz(m.W, m.H) }

func (m *Mask) At(x, y uint32) bool {
	if x >= m.W || y >= m.H {
		return false
	}
	return m.Bits[int(y)*int(m.W)+int(x)]
}

func (m *Mask) Set(x, y uint32, on bool) {
	if x < m.W && y < m.H {
		m.Bits[int(y)*int(m.W)+int(x)] = on
	}
}

// MaskImage draws the set bits of a mask in one colour at a position.
type MaskImage[C comparable] struct {
	Mask    *Mask
	TopLeft geom.Point
	Color   C
}

func Image[C comparable](m *Mask, at geom.Point, c C) MaskImage[C] {
	return MaskImage[C]{m, at, c}
}

func (mi MaskImage[C]) Draw(t Target[C]) error {
	if mi.Mask == nil {
		return nil
	}
	m := mi.Mask
	return t.DrawIter(func(yield func(Pixel[C]) bool) {
		for y := uint32(0); y < m.H; y++ {
			row := int(y) * int(m.W)
			for x := uint32(0); x < m.W; x++ {
				if !m.Bits[row+int(x)] {
					continue
				}
				p := mi.TopLeft.Add(geom.Pt(int32(x), int32(y)))
				if !yield(Pixel[C]{p, mi.Color}) {
					return
				}
			}
		}
	})
}
