package gfx

import (
	"iter"

	"github.com/hubastard/sprout/engine/geom"
)

// Style describes how a primitive is painted. Strokes are drawn inside the shape.
type Style[C comparable] struct {
	FillColor   C
	StrokeColor C
	StrokeWidth uint32
	HasFill     bool
	HasStroke   bool
}

func Filled[C comparable](c C) Style[C] { return Style[C]{FillColor: c, HasFill: true} }

func Stroked[C comparable](c C, width uint32) Style[C] {
	return Style[C]{StrokeColor: c, StrokeWidth: width, HasStroke: width > 0}
}

func (s Style[C]) WithFill(c C) Style[C] {
	s.FillColor, s.HasFill = c, true
	return s
}

func (s Style[C]) WithStroke(c C, width uint32) Style[C] {
	s.StrokeColor, s.StrokeWidth, s.HasStroke = c, width, width > 0
	return s
}

func (s Style[C]) strokeWidth() uint32 {
	if !s.HasStroke {
		return 0
	}
	return s.StrokeWidth
}

// ===== Rectangle =====

type Rectangle[C comparable] struct {
	Area  geom.Rect
	Style Style[C]
}

func Rect[C comparable](area geom.Rect, s Style[C]) Rectangle[C] { return Rectangle[C]{area, s} }

func (r Rectangle[C]) Draw(t Target[C]) error {
	a := r.Area
	if a.IsEmpty() {
		return nil
	}
	sw := r.Style.strokeWidth()
	if sw > 0 {
		w, h := a.Size.W, a.Size.H
		bw, bh := min(sw, w), min(sw, h)
		bands := [4]geom.Rect{
			{TopLeft: a.TopLeft, Size: geom.Sz(w, bh)},
			{TopLeft: geom.Pt(a.TopLeft.X, a.Bottom()-int32(bh)), Size: geom.Sz(w, bh)},
			{TopLeft: a.TopLeft, Size: geom.Sz(bw, h)},
			{TopLeft: geom.Pt(a.Right()-int32(bw), a.TopLeft.Y), Size: geom.Sz(bw, h)},
		}
		for _, b := range bands {
			if err := FillSolid(t, b, r.Style.StrokeColor); err != nil {
				return err
			}
		}
		a = a.Inset(geom.Sz(sw, sw))
	}
	if r.Style.HasFill {
		return FillSolid(t, a, r.Style.FillColor)
	}
	return nil
}

// ===== RoundedRectangle =====

type RoundedRectangle[C comparable] struct {
	Area   geom.Rect
	Radius uint32
	Style  Style[C]
}

func RoundedRect[C comparable](area geom.Rect, radius uint32, s Style[C]) RoundedRectangle[C] {
	return RoundedRectangle[C]{area, radius, s}
}

func (r RoundedRectangle[C]) Draw(t Target[C]) error {
	if r.Area.IsEmpty() {
		return nil
	}
	rad := min(r.Radius, r.Area.Size.W/2, r.Area.Size.H/2)
	if rad == 0 {
		return Rectangle[C]{r.Area, r.Style}.Draw(t)
	}
	sw := r.Style.strokeWidth()
	if sw > 0 {
		if err := t.DrawIter(r.rows(int32(rad), int32(sw), true)); err != nil {
			return err
		}
	}
	if r.Style.HasFill {
		return t.DrawIter(r.rows(int32(rad), int32(sw), false))
	}
	return nil
}

// rows yields either the stroke ring or the interior, row by row.
func (r RoundedRectangle[C]) rows(rad, sw int32, stroke bool) iter.Seq[Pixel[C]] {
	c := r.Style.FillColor
	if stroke {
		c = r.Style.StrokeColor
	}
	ox, oy := r.Area.TopLeft.X, r.Area.TopLeft.Y
	w, h := int32(r.Area.Size.W), int32(r.Area.Size.H)
	iw, ih := w-2*sw, h-2*sw
	irad := max(rad-sw, 0)

	return func(yield func(Pixel[C]) bool) {
		emit := func(x0, x1, y int32) bool {
			for x := x0; x < x1; x++ {
				if !yield(Pixel[C]{geom.Pt(ox+x, oy+y), c}) {
					return false
				}
			}
			return true
		}
		for y := int32(0); y < h; y++ {
			ol := cornerInset(y, h, rad)
			oL, oR := ol, w-ol
			inner := iw > 0 && ih > 0 && y >= sw && y < h-sw
			iL, iR := oR, oR
			if inner {
				il := cornerInset(y-sw, ih, irad)
				iL, iR = sw+il, w-sw-il
			}
			var ok bool
			switch {
			case !stroke && sw == 0:
				ok = emit(oL, oR, y)
			case !stroke:
				ok = !inner || emit(iL, iR, y)
			case !inner || iL >= iR:
				ok = emit(oL, oR, y)
			default:
				ok = emit(oL, min(iL, oR), y) && emit(max(iR, oL), oR, y)
			}
			if !ok {
				return
			}
		}
	}
}

// cornerInset returns how many pixels row y of a shape of height h is
// indented by corners of radius r. Pixel centres inside the arc are kept.
func cornerInset(y, h, r int32) int32 {
	if r <= 0 {
		return 0
	}
	var d int32
	switch {
	case y < r:
		d = 2*r - 2*y - 1
	case y >= h-r:
		d = 2*r - 2*(h-1-y) - 1
	default:
		return 0
	}
	rr := 4 * r * r
	for i := int32(0); i < r; i++ {
		dx := 2*r - 2*i - 1
		if dx*dx+d*d <= rr {
			return i
		}
	}
	return r
}

// ===== Circle =====

type Circle[C comparable] struct {
	TopLeft  geom.Point
	Diameter uint32
	Style    Style[C]
}

func NewCircle[C comparable](topLeft geom.Point, diameter uint32, s Style[C]) Circle[C] {
	return Circle[C]{topLeft, diameter, s}
}

// CircleAt places a circle of the given diameter around center.
func CircleAt[C comparable](center geom.Point, diameter uint32, s Style[C]) Circle[C] {
	r := int32(diameter / 2)
	return Circle[C]{center.Sub(geom.Pt(r, r)), diameter, s}
}

func (c Circle[C]) Draw(t Target[C]) error {
	area := geom.Rect{TopLeft: c.TopLeft, Size: geom.Sz(c.Diameter, c.Diameter)}
	return RoundedRectangle[C]{area, c.Diameter / 2, c.Style}.Draw(t)
}
