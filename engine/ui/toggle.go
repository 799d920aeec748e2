package ui

import (
	"github.com/hubastard/sprout/engine/geom"
	"github.com/hubastard/sprout/engine/gfx"
	"github.com/hubastard/sprout/engine/smartstate"
	"github.com/hubastard/sprout/engine/text"
)

// ===== Toggle button =====

type UIToggleButton[C comparable] struct {
	common[C]
	label  string
	active *bool
}

// ToggleButton is a button that latches *active on release.
func ToggleButton[C comparable](label string, active *bool) *UIToggleButton[C] {
	return &UIToggleButton[C]{label: label, active: active}
}

func (b *UIToggleButton[C]) Smartstate(t *smartstate.Token) *UIToggleButton[C] { b.token = t; return b }
func (b *UIToggleButton[C]) Enabled(on bool) *UIToggleButton[C]                { b.disabled = !on; return b }
func (b *UIToggleButton[C]) WithStyle(s Style[C]) *UIToggleButton[C]           { b.style = &s; return b }

func (b *UIToggleButton[C]) Draw(u *Ctx[C]) (Response, error) {
	st := b.styleOf(u)
	pad, bw := st.Spacing.ButtonPadding, st.BorderWidth
	size := buttonSize(&st, st.Font.Measure(b.label))

	ir, err := u.AllocateSpace(size)
	if err != nil {
		return Response{}, err
	}
	i := b.interaction(ir)

	changed := false
	if i.Kind == Release {
		*b.active = !*b.active
		changed = true
	}

	var id uint32
	var f frame[C]
	pressed := i.Pressed() || i.Kind == Release
	switch {
	case b.disabled:
		id, f = 7, st.disabled()
	case *b.active && pressed:
		id, f = 1, st.pressed()
	case *b.active && i.Kind == Hover:
		id, f = 2, st.hovered()
	case *b.active:
		id, f = 3, st.pressed()
	case pressed:
		id, f = 4, st.hovered()
	case i.Kind == Hover:
		id, f = 5, st.hovered()
	default:
		id, f = 6, st.idle()
	}

	resp := NewResponse(ir)
	resp.Clicked = i.Kind == Release
	resp.Down = i.Pressed()
	resp.Changed = changed
	resp.Redraw = b.redraw(id, changed)
	if !resp.Redraw {
		return resp, nil
	}

	rect := geom.Rect{TopLeft: ir.Area.TopLeft, Size: size}
	at := rect.TopLeft.Add(geom.Pt(int32(pad.W+bw), int32(pad.H+bw)))
	return resp, u.paintOver(rect,
		gfx.Rect(rect, f.style()),
		text.Text[C]{Font: st.Font, Str: b.label, TopLeft: at, Color: f.fg},
	)
}

// ===== Toggle switch =====

type UIToggleSwitch[C comparable] struct {
	common[C]
	active *bool
	size   geom.Size
}

// ToggleSwitch is a pill-shaped on/off switch, 50×25 unless resized.
func ToggleSwitch[C comparable](active *bool) *UIToggleSwitch[C] {
	return &UIToggleSwitch[C]{active: active, size: geom.Sz(50, 25)}
}

func (s *UIToggleSwitch[C]) Smartstate(t *smartstate.Token) *UIToggleSwitch[C] { s.token = t; return s }
func (s *UIToggleSwitch[C]) Enabled(on bool) *UIToggleSwitch[C]                { s.disabled = !on; return s }
func (s *UIToggleSwitch[C]) WithStyle(st Style[C]) *UIToggleSwitch[C]          { s.style = &st; return s }

// Size sets the track size, no smaller than 30×15.
func (s *UIToggleSwitch[C]) Size(w, h uint32) *UIToggleSwitch[C] {
	s.size = geom.Sz(max(w, 30), max(h, 15))
	return s
}

func (s *UIToggleSwitch[C]) Draw(u *Ctx[C]) (Response, error) {
	st := s.styleOf(u)
	pad := st.Spacing.DefaultPadding
	w, h := s.size.W, s.size.H

	ir, err := u.AllocateSpace(geom.Sz(w+2*pad.W, h+2*pad.H))
	if err != nil {
		return Response{}, err
	}
	i := s.interaction(ir)

	changed := false
	if i.Kind == Release {
		*s.active = !*s.active
		changed = true
	}
	on := *s.active

	var id uint32
	switch {
	case s.disabled && on:
		id = 7
	case s.disabled:
		id = 8
	case i.Pressed() && on:
		id = 1
	case i.Pressed():
		id = 2
	case i.Kind == Hover && on:
		id = 3
	case i.Kind == Hover:
		id = 4
	case on:
		id = 5
	default:
		id = 6
	}

	resp := NewResponse(ir)
	resp.Clicked = i.Kind == Release
	resp.Down = i.Pressed()
	resp.Changed = changed
	resp.Redraw = s.redraw(id, changed)
	if !resp.Redraw {
		return resp, nil
	}

	trackFill, knobFill, border := st.ItemBackground, st.ItemBackground, st.Border
	if on {
		trackFill = st.Primary
	}
	switch {
	case s.disabled:
		knobFill = st.DisabledItemBackground
	case i.Pressed():
		knobFill = st.Primary
	case i.Kind == Hover:
		knobFill = st.HighlightItemBackground
		border = st.HighlightBorder
	}

	bw := st.BorderWidth
	area := ir.Area
	track := geom.R(area.TopLeft.X+int32(pad.W), area.TopLeft.Y+int32(pad.H), w, h)
	r := int32(h/2) - int32(bw)
	cx := track.TopLeft.X + r + int32(bw)
	if on {
		cx = track.TopLeft.X + int32(w) - r - int32(bw)
	}
	cy := track.TopLeft.Y + int32(h/2)

	return resp, u.paint(area,
		gfx.RoundedRect(track, h/2, gfx.Filled(trackFill).WithStroke(border, bw)),
		gfx.CircleAt(geom.Pt(cx, cy), uint32(max(2*r-3, 1)), gfx.Filled(knobFill).WithStroke(border, 2)),
	)
}
