package ui

import (
	"github.com/hubastard/sprout/engine/geom"
	"github.com/hubastard/sprout/engine/gfx"
	"github.com/hubastard/sprout/engine/smartstate"
	"github.com/hubastard/sprout/engine/text"
)

// ===== Button =====

type UIButton[C comparable] struct {
	common[C]
	label string
	width uint32
}

func Button[C comparable](label string) *UIButton[C] { return &UIButton[C]{label: label} }

func (b *UIButton[C]) Smartstate(t *smartstate.Token) *UIButton[C] { b.token = t; return b }
func (b *UIButton[C]) Enabled(on bool) *UIButton[C]                { b.disabled = !on; return b }
func (b *UIButton[C]) WithStyle(s Style[C]) *UIButton[C]           { b.style = &s; return b }

// Width fixes the button width; a label that does not fit is truncated.
func (b *UIButton[C]) Width(w uint32) *UIButton[C] { b.width = w; return b }

// buttonSize is the padded, bordered box around a label.
func buttonSize[C comparable](st *Style[C], ts geom.Size) geom.Size {
	pad, bw := st.Spacing.ButtonPadding, st.BorderWidth
	return geom.Sz(ts.W+2*pad.W+2*bw, max(ts.H+2*pad.H+2*bw, st.DefaultWidgetHeight))
}

func (b *UIButton[C]) Draw(u *Ctx[C]) (Response, error) {
	st := b.styleOf(u)
	pad, bw := st.Spacing.ButtonPadding, st.BorderWidth

	label := b.label
	size := buttonSize(&st, st.Font.Measure(label))
	if b.width > 0 {
		label = text.Truncate(st.Font, label, satSub(b.width, 2*pad.W+2*bw), "..")
		size.W = b.width
	}

	ir, err := u.AllocateSpace(size)
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
	rect := geom.Rect{TopLeft: ir.Area.TopLeft, Size: size}
	at := rect.TopLeft.Add(geom.Pt(int32(pad.W+bw), int32(pad.H+bw)))
	err = u.paintOver(rect,
		gfx.Rect(rect, f.style()),
		text.Text[C]{Font: st.Font, Str: label, TopLeft: at, Color: f.fg},
	)
	return resp, err
}
