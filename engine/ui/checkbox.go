package ui

import (
	"github.com/hubastard/sprout/engine/geom"
	"github.com/hubastard/sprout/engine/gfx"
	"github.com/hubastard/sprout/engine/icons"
	"github.com/hubastard/sprout/engine/smartstate"
)

// ===== Checkbox =====

type UICheckbox[C comparable] struct {
	common[C]
	checked *bool
}

// Checkbox flips *checked on release.
func Checkbox[C comparable](checked *bool) *UICheckbox[C] {
	return &UICheckbox[C]{checked: checked}
}

func (c *UICheckbox[C]) Smartstate(t *smartstate.Token) *UICheckbox[C] { c.token = t; return c }
func (c *UICheckbox[C]) Enabled(on bool) *UICheckbox[C]                { c.disabled = !on; return c }
func (c *UICheckbox[C]) WithStyle(s Style[C]) *UICheckbox[C]           { c.style = &s; return c }

func (c *UICheckbox[C]) Draw(u *Ctx[C]) (Response, error) {
	st := c.styleOf(u)
	side := max(st.DefaultWidgetHeight, u.RowHeight())
	pad := max(st.Spacing.DefaultPadding.W, st.Spacing.DefaultPadding.H)

	ir, err := u.AllocateSpace(geom.Sz(side, side))
	if err != nil {
		return Response{}, err
	}
	i := c.interaction(ir)

	changed := false
	if i.Kind == Release {
		*c.checked = !*c.checked
		changed = true
	}

	var state uint32
	switch {
	case c.disabled:
		state = 4
	case i.Kind == None:
		state = 3
	case i.Kind == Hover:
		state = 2
	default:
		state = 1
	}
	if *c.checked {
		state |= 1 << 8
	}
	resp := NewResponse(ir)
	resp.Changed = changed
	resp.Redraw = c.redraw(state, changed)
	if !resp.Redraw {
		return resp, nil
	}

	f := c.frame(&st, i)
	rect := geom.Rect{TopLeft: ir.Area.TopLeft, Size: geom.Sz(side, side)}
	ds := []gfx.Drawable[C]{gfx.Rect(rect, f.style())}
	if *c.checked {
		m := icons.Get(icons.Check, icons.Variant(satSub(side, 2*pad)))
		off := (int32(side) - int32(m.W)) / 2
		ds = append(ds, gfx.Image(m, rect.TopLeft.Add(geom.Pt(off, off)), f.fg))
	}
	return resp, u.paint(rect, ds...)
}
