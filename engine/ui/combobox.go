package ui

import (
	"github.com/hubastard/sprout/engine/geom"
	"github.com/hubastard/sprout/engine/gfx"
	"github.com/hubastard/sprout/engine/icons"
	"github.com/hubastard/sprout/engine/smartstate"
	"github.com/hubastard/sprout/engine/text"
)

// Selector is where a combo box keeps its choice.
type Selector interface {
	// Current returns the label shown in the closed box.
	Current(items []string) string
	Select(items []string, i int)
}

type indexSelector struct{ i *int }

// SelectIndex stores the chosen position in *i. An out-of-range index
// shows an empty box.
func SelectIndex(i *int) Selector { return indexSelector{i} }

func (s indexSelector) Current(items []string) string {
	if *s.i < 0 || *s.i >= len(items) {
		return ""
	}
	return items[*s.i]
}

func (s indexSelector) Select(_ []string, i int) { *s.i = i }

type textSelector struct{ s *string }

// SelectText stores the chosen item itself in *s.
func SelectText(s *string) Selector { return textSelector{s} }

func (s textSelector) Current([]string) string      { return *s.s }
func (s textSelector) Select(items []string, i int) { *s.s = items[i] }

// ===== Combo box =====

type UIComboBox[C comparable] struct {
	common[C]
	sel   Selector
	items []string
	width uint32
}

// ComboBox opens a list of items as a popup below itself. It needs
// BeginPopup/EndPopup around the frame; without a popup layer, or with a
// buffer too small for the list, the click reports the error in Err.
func ComboBox[C comparable](sel Selector, items []string) *UIComboBox[C] {
	return &UIComboBox[C]{sel: sel, items: items}
}

func (c *UIComboBox[C]) Smartstate(t *smartstate.Token) *UIComboBox[C] { c.token = t; return c }
func (c *UIComboBox[C]) Enabled(on bool) *UIComboBox[C]                { c.disabled = !on; return c }
func (c *UIComboBox[C]) WithStyle(s Style[C]) *UIComboBox[C]           { c.style = &s; return c }
func (c *UIComboBox[C]) Width(w uint32) *UIComboBox[C]                 { c.width = w; return c }

func (c *UIComboBox[C]) Draw(u *Ctx[C]) (Response, error) {
	st := c.styleOf(u)
	pad, bw, item := st.Spacing.ButtonPadding, st.BorderWidth, st.Spacing.Item
	wbp := st.Spacing.WindowBorderPadding

	label := c.sel.Current(c.items)
	ts := st.Font.Measure(label)
	h := max(ts.H+2*pad.H+2*bw, st.DefaultWidgetHeight)
	size := geom.Sz(ts.W+2*pad.W+2*bw+h+item.W, h)
	if c.width > 0 {
		size.W = max(c.width, 2*pad.W+2*bw+st.DefaultWidgetHeight+item.W)
		label = text.Truncate(st.Font, label, satSub(size.W, 2*pad.W+2*bw+h+item.W), "..")
	}

	// Below the box; if that runs off the right edge, flush left on the
	// following line.
	top := u.PlacerTopLeft().Add(geom.Pt(int32(wbp.W), int32(wbp.W+size.H)))
	if top.X+int32(size.W) > int32(u.Width()) {
		top.X = int32(wbp.W)
		top.Y += int32(size.H)
	}

	ir, err := u.AllocateSpace(size)
	if err != nil {
		return Response{}, err
	}
	i := c.interaction(ir)

	resp := NewResponse(ir)
	resp.Clicked = i.Kind == Release
	resp.Down = i.Pressed()
	resp.Redraw = c.redraw(smartstate.Hash(nil, []byte(label))^c.pressID(i), false)
	if resp.Redraw {
		f := c.frame(&st, i)
		rect := geom.Rect{TopLeft: ir.Area.TopLeft, Size: size}
		m := icons.Get(icons.ExpandMore, icons.Variant(h))
		iconAt := geom.Pt(rect.Right()-int32(pad.W+bw+m.W), rect.TopLeft.Y+(int32(h)-int32(m.H))/2)
		at := rect.TopLeft.Add(geom.Pt(int32(pad.W+bw), int32(pad.H+bw)))
		err := u.paintOver(rect,
			gfx.RoundedRect(rect, st.CornerRadius, f.style()),
			text.Text[C]{Font: st.Font, Str: label, TopLeft: at, Color: f.fg},
			gfx.Image(m, iconAt, f.fg),
		)
		if err != nil {
			return resp, err
		}
	}

	if !resp.Clicked && !u.popupCheck() {
		return resp, nil
	}
	picked, err := u.popupDraw(top, size.W, func(p *Ctx[C]) bool {
		ps := p.StyleMut()
		ps.DefaultWidgetHeight = 0
		ps.Spacing.Item.H = 0
		ps.Spacing.ButtonPadding.W = 0
		ps.BorderWidth = 0
		ps.CornerRadius = 0
		itemW := satSub(size.W, 2*wbp.W)
		selected := false
		for n, it := range c.items {
			if p.Add(Button[C](it).Width(itemW)).Clicked {
				c.sel.Select(c.items, n)
				selected = true
			}
		}
		return selected
	})
	if err != nil {
		resp.Err = err
		return resp, nil
	}
	resp.Changed = picked
	if picked {
		c.forceNext()
	}
	return resp, nil
}

// forceNext makes the closed box repaint with its new label.
func (c *UIComboBox[C]) forceNext() {
	if c.token != nil {
		c.token.ForceRedraw()
	}
}
