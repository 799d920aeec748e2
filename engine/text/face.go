package text

import (
	"fmt"
	"image"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"

	"github.com/hubastard/sprout/engine/geom"
	"github.com/hubastard/sprout/engine/gfx"
)

// Glyph is one pre-rasterised character. BearingX/BearingY locate the mask's
// top-left relative to the pen position on the baseline.
type Glyph struct {
	Rune     rune
	Advance  int32
	BearingX int32
	BearingY int32
	Mask     *gfx.Mask
}

// Face is an x/image font baked into one-bit glyph masks at load time, so
// drawing never touches the rasteriser.
type Face[C comparable] struct {
	Ascent, Descent, LineGap int32
	Glyphs                   map[rune]Glyph

	kerning   map[[2]rune]int32
	fallback  rune
	closeFace func()
}

// Basic returns the built-in 7x13 bitmap face.
func Basic[C comparable]() *Face[C] {
	f, err := NewFace[C](basicfont.Face7x13)
	if err != nil {
		panic(err)
	}
	return f
}

// GoMono returns Go Mono at the given pixel size.
func GoMono[C comparable](sizePx float64) (*Face[C], error) {
	return LoadTTF[C](gomono.TTF, sizePx)
}

// LoadTTF parses TrueType/OpenType data and bakes it at sizePx.
func LoadTTF[C comparable](data []byte, sizePx float64) (*Face[C], error) {
	ft, err := opentype.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parse font: %w", err)
	}
	face, err := opentype.NewFace(ft, &opentype.FaceOptions{
		Size: sizePx, DPI: 72, Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, fmt.Errorf("new face: %w", err)
	}
	f, err := NewFace[C](face)
	if err != nil {
		_ = face.Close()
		return nil, err
	}
	f.closeFace = func() { _ = face.Close() }
	return f, nil
}

// NewFace bakes Latin-1 (runes 32..255) from face.
func NewFace[C comparable](face font.Face) (*Face[C], error) {
	m := face.Metrics()
	ascent := int32(m.Ascent.Ceil())
	descent := int32(m.Descent.Ceil())
	lineGap := max(int32(m.Height.Ceil())-ascent-descent, 0)

	glyphs := make(map[rune]Glyph, 224)
	runes := make([]rune, 0, 224)
	for r := rune(32); r <= 255; r++ {
		br, adv, ok := face.GlyphBounds(r)
		if !ok {
			continue
		}
		runes = append(runes, r)
		g := Glyph{Rune: r, Advance: int32(adv.Round())}
		rect := image.Rect(br.Min.X.Floor(), br.Min.Y.Floor(), br.Max.X.Ceil(), br.Max.Y.Ceil())
		if !rect.Empty() {
			dst := image.NewAlpha(image.Rect(0, 0, rect.Dx(), rect.Dy()))
			// Dot sits on the baseline; shift so the glyph box lands at (0,0).
			d := font.Drawer{Dst: dst, Src: image.Opaque, Face: face, Dot: fixed.P(-rect.Min.X, -rect.Min.Y)}
			d.DrawString(string(r))
			g.BearingX, g.BearingY = int32(rect.Min.X), int32(rect.Min.Y)
			g.Mask = gfx.MaskFromAlpha(dst)
		}
		glyphs[r] = g
	}
	if len(glyphs) == 0 {
		return nil, fmt.Errorf("font has no glyphs in 32..255")
	}

	kerning := make(map[[2]rune]int32)
	for _, a := range runes {
		for _, b := range runes {
			if dx := face.Kern(a, b); dx != 0 {
				kerning[[2]rune{a, b}] = int32(dx.Round())
			}
		}
	}

	fallback := '?'
	if _, ok := glyphs[fallback]; !ok {
		fallback = ' '
	}
	return &Face[C]{
		Ascent: ascent, Descent: descent, LineGap: lineGap,
		Glyphs:   glyphs,
		kerning:  kerning,
		fallback: fallback,
	}, nil
}

func (f *Face[C]) Close() {
	if f != nil && f.closeFace != nil {
		f.closeFace()
		f.closeFace = nil
	}
}

func (f *Face[C]) LineHeight() uint32 { return uint32(f.Ascent + f.Descent + f.LineGap) }

func (f *Face[C]) glyph(r rune) Glyph {
	if g, ok := f.Glyphs[r]; ok {
		return g
	}
	return f.Glyphs[f.fallback]
}

func (f *Face[C]) kern(prev, r rune) int32 {
	if prev < 0 || len(f.kerning) == 0 {
		return 0
	}
	return f.kerning[[2]rune{prev, r}]
}

// Measure returns the bounding box of s; '\n' starts a new line.
func (f *Face[C]) Measure(s string) geom.Size {
	var w, lineW int32
	lines := int32(1)
	prev := rune(-1)
	for _, r := range s {
		if r == '\n' {
			w = max(w, lineW)
			lineW, prev = 0, -1
			lines++
			continue
		}
		lineW += f.kern(prev, r) + f.glyph(r).Advance
		prev = r
	}
	w = max(w, lineW)
	h := lines*(f.Ascent+f.Descent) + (lines-1)*f.LineGap
	return geom.Sz(uint32(w), uint32(h))
}

// Draw renders s with its bounding box's top-left at topLeft.
func (f *Face[C]) Draw(t gfx.Target[C], s string, topLeft geom.Point, c C) error {
	return t.DrawIter(func(yield func(gfx.Pixel[C]) bool) {
		penX, baseY := topLeft.X, topLeft.Y+f.Ascent
		prev := rune(-1)
		for _, r := range s {
			if r == '\n' {
				penX, prev = topLeft.X, -1
				baseY += int32(f.LineHeight())
				continue
			}
			penX += f.kern(prev, r)
			g := f.glyph(r)
			if m := g.Mask; m != nil {
				ox, oy := penX+g.BearingX, baseY+g.BearingY
				for y := uint32(0); y < m.H; y++ {
					for x := uint32(0); x < m.W; x++ {
						if !m.At(x, y) {
							continue
						}
						if !yield(gfx.Pixel[C]{Point: geom.Pt(ox+int32(x), oy+int32(y)), Color: c}) {
							return
						}
					}
				}
			}
			penX += g.Advance
			prev = r
		}
	})
}
