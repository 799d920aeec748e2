package ui

import (
	"github.com/hubastard/sprout/engine/geom"
	"github.com/hubastard/sprout/engine/gfx"
	"github.com/hubastard/sprout/engine/smartstate"
	"github.com/hubastard/sprout/engine/text"
)

const (
	knobDiameter   = 10
	trackThickness = 2
)

// LerpFixed maps t from [minT, maxT] onto [start, end] in integer
// arithmetic, rounding to nearest. t is clamped first; an empty input range
// yields start.
func LerpFixed(start, end, t, minT, maxT int16) int16 {
	s, e := int32(start), int32(end)
	lo, hi := int32(minT), int32(maxT)
	v := min(max(int32(t), lo), hi)
	span := hi - lo
	if span == 0 {
		return start
	}
	return int16(s + ((e-s)*(v-lo)+span/2)/span)
}

// ===== Slider =====

type UISlider[C comparable] struct {
	common[C]
	value  *int16
	lo, hi int16
	step   int16
	width  uint32
	label  string
}

// Slider edits *value within [lo, hi]. Dragging snaps to the nearest step.
func Slider[C comparable](value *int16, lo, hi int16) *UISlider[C] {
	return &UISlider[C]{value: value, lo: lo, hi: hi, step: 1, width: 200}
}

func (s *UISlider[C]) Smartstate(t *smartstate.Token) *UISlider[C] { s.token = t; return s }
func (s *UISlider[C]) Enabled(on bool) *UISlider[C]                { s.disabled = !on; return s }
func (s *UISlider[C]) WithStyle(st Style[C]) *UISlider[C]          { s.style = &st; return s }
func (s *UISlider[C]) Width(w uint32) *UISlider[C]                 { s.width = w; return s }
func (s *UISlider[C]) Label(l string) *UISlider[C]                 { s.label = l; return s }

// Step sets the snapping granularity, clamped to [1, |hi-lo|].
func (s *UISlider[C]) Step(step int16) *UISlider[C] {
	span := int32(s.hi) - int32(s.lo)
	if span < 0 {
		span = -span
	}
	s.step = int16(min(max(int32(step), 1), max(span, 1)))
	return s
}

func (s *UISlider[C]) snap(v int16) int16 {
	toNext := v % s.step
	if toNext < 0 {
		toNext += s.step
	}
	toPrev := s.step - toNext
	if toNext < toPrev {
		return max(v-toNext, s.lo)
	}
	return min(v+toPrev, s.hi)
}

func (s *UISlider[C]) Draw(u *Ctx[C]) (Response, error) {
	st := s.styleOf(u)
	pad := st.Spacing.ButtonPadding

	height := max(st.DefaultWidgetHeight, u.RowHeight(), knobDiameter+2*pad.H)
	width := s.width + 2*pad.W
	var ts geom.Size
	if s.label != "" {
		ts = st.Font.Measure(s.label)
		height += pad.H + ts.H
		width = max(width, ts.W+2*pad.W)
	}

	ir, err := u.AllocateSpace(geom.Sz(width, height))
	if err != nil {
		return Response{}, err
	}
	i := s.interaction(ir)
	area := ir.Area
	kMin := int16(pad.W) + knobDiameter/2
	kMax := int16(width) - int16(pad.W) - knobDiameter/2

	old := *s.value
	if p, ok := i.Point(); ok && i.Pressed() {
		v := LerpFixed(s.lo, s.hi, int16(p.X-area.TopLeft.X), kMin, kMax)
		*s.value = s.snap(v)
	}

	var kind uint32
	switch {
	case i.Pressed():
		kind = 2
	case i.Kind == Hover:
		kind = 1
	}
	resp := NewResponse(ir)
	resp.Changed = old != *s.value
	resp.Down = i.Pressed()
	resp.Redraw = s.redraw(uint32(uint16(*s.value))|kind<<16, false)
	if !resp.Redraw {
		return resp, nil
	}

	cy := area.TopLeft.Y + int32(pad.H) + knobDiameter/2
	knobX := func(v int16) int32 { return area.TopLeft.X + int32(LerpFixed(kMin, kMax, v, s.lo, s.hi)) }

	knobFill := st.ItemBackground
	switch {
	case s.disabled:
		knobFill = st.DisabledItemBackground
	case kind == 2:
		knobFill = st.Primary
	case kind == 1:
		knobFill = st.HighlightItemBackground
	}
	track := geom.R(area.TopLeft.X+int32(kMin), cy-trackThickness/2, uint32(kMax-kMin), trackThickness)

	ds := []gfx.Drawable[C]{
		gfx.CircleAt(geom.Pt(knobX(old), cy), knobDiameter+4, gfx.Filled(st.Background)),
		gfx.Rect(track, gfx.Filled(st.Primary).WithStroke(st.Border, trackThickness/2)),
		gfx.CircleAt(geom.Pt(knobX(*s.value), cy), knobDiameter,
			gfx.Filled(knobFill).WithStroke(st.Border, max(1, st.BorderWidth))),
	}
	if s.label != "" {
		at := area.TopLeft.Add(geom.Pt(
			(int32(area.Size.W)-int32(ts.W))/2,
			int32(area.Size.H)-int32(ts.H+pad.H),
		))
		ds = append(ds, text.Text[C]{Font: st.Font, Str: s.label, TopLeft: at, Color: st.Text})
	}
	return resp, u.paint(area, ds...)
}
