package ui

import (
	"github.com/hubastard/sprout/engine/geom"
	"github.com/hubastard/sprout/engine/gfx"
	"github.com/hubastard/sprout/engine/smartstate"
	"github.com/hubastard/sprout/engine/text"
)

// ===== Icon =====

type UIIcon[C comparable] struct {
	common[C]
	mask  *gfx.Mask
	color *C
}

func Icon[C comparable](m *gfx.Mask) *UIIcon[C] { return &UIIcon[C]{mask: m} }

func (i *UIIcon[C]) Smartstate(t *smartstate.Token) *UIIcon[C] { i.token = t; return i }
func (i *UIIcon[C]) WithStyle(s Style[C]) *UIIcon[C]           { i.style = &s; return i }
func (i *UIIcon[C]) Color(c C) *UIIcon[C]                      { i.color = &c; return i }

func (i *UIIcon[C]) Draw(u *Ctx[C]) (Response, error) {
	st := i.styleOf(u)
	if i.color != nil {
		st.Icon = *i.color
	}
	ir, err := u.AllocateSpace(i.mask.Size())
	if err != nil {
		return Response{}, err
	}
	resp := NewResponse(ir)
	resp.Redraw = i.redraw(1, false)
	if !resp.Redraw {
		return resp, nil
	}
	at := ir.Area.TopLeft.Add(geom.Pt(0, (int32(ir.Area.Size.H)-int32(i.mask.H))/2))
	return resp, u.paint(ir.Area, gfx.Image(i.mask, at, st.Icon))
}

// ===== Icon button =====

type UIIconButton[C comparable] struct {
	common[C]
	mask  *gfx.Mask
	label string
}

func IconButton[C comparable](m *gfx.Mask) *UIIconButton[C] { return &UIIconButton[C]{mask: m} }

func (b *UIIconButton[C]) Smartstate(t *smartstate.Token) *UIIconButton[C] { b.token = t; return b }
func (b *UIIconButton[C]) Enabled(on bool) *UIIconButton[C]                { b.disabled = !on; return b }
func (b *UIIconButton[C]) WithStyle(s Style[C]) *UIIconButton[C]           { b.style = &s; return b }
func (b *UIIconButton[C]) Label(s string) *UIIconButton[C]                 { b.label = s; return b }

func (b *UIIconButton[C]) Draw(u *Ctx[C]) (Response, error) {
	st := b.styleOf(u)
	pad, bw := st.Spacing.ButtonPadding, st.BorderWidth
	m := b.mask

	minH := m.H + 2*pad.H + 2*bw
	width := minH
	var ts geom.Size
	var labelH uint32
	if b.label != "" {
		ts = st.Font.Measure(b.label)
		labelH = ts.H + pad.H
		minH += labelH
		width = max(width, ts.W+2*pad.W+2*bw)
	}
	height := max(st.DefaultWidgetHeight, u.RowHeight(), minH)

	ir, err := u.AllocateSpace(geom.Sz(width, height))
	if err != nil {
		return Response{}, err
	}
	i := b.interaction(ir)

	resp := NewResponse(ir)
	resp.Clicked = i.Kind == Release
	resp.Down = i.Pressed()
	resp.Redraw = b.redraw(b.pressID(i), false)
	if !resp.Redraw {
		return resp, nil
	}

	f := b.frame(&st, i)
	ic := st.Icon
	if b.disabled {
		ic = st.DisabledText
	}
	rect := geom.Rect{TopLeft: ir.Area.TopLeft, Size: geom.Sz(width, height)}
	iconAt := rect.TopLeft.Add(geom.Pt(
		(int32(width)-int32(m.W))/2,
		(int32(height)-int32(labelH)-int32(m.H))/2,
	))
	ds := []gfx.Drawable[C]{gfx.Rect(rect, f.style()), gfx.Image(m, iconAt, ic)}
	if b.label != "" {
		at := rect.TopLeft.Add(geom.Pt(
			(int32(width)-int32(ts.W))/2,
			int32(height)-int32(ts.H+pad.H+bw),
		))
		ds = append(ds, text.Text[C]{Font: st.Font, Str: b.label, TopLeft: at, Color: f.fg})
	}
	return resp, u.paintOver(rect, ds...)
}
