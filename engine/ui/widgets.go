package ui

import (
	"github.com/hubastard/sprout/engine/geom"
	"github.com/hubastard/sprout/engine/gfx"
	"github.com/hubastard/sprout/engine/smartstate"
)

// common is embedded by every widget: the optional redraw token, a style
// override and the enabled flag. A new style override is not a state
// change; force the token when swapping styles.
type common[C comparable] struct {
	token    *smartstate.Token
	style    *Style[C]
	disabled bool
}

func (c *common[C]) styleOf(u *Ctx[C]) Style[C] {
	if c.style != nil {
		return *c.style
	}
	return u.Style()
}

// redraw compares state with the stored token, stores it and reports
// whether the widget has to be painted. Without a token it always paints.
func (c *common[C]) redraw(state uint32, force bool) bool {
	if c.token == nil {
		return true
	}
	next := smartstate.State(state)
	changed := force || !c.token.Equal(next)
	c.token.Modify(next)
	return changed
}

// interaction drops the pointer when the widget is disabled.
func (c *common[C]) interaction(ir InternalResponse) Interaction {
	if c.disabled {
		return NoInteraction()
	}
	return ir.Interaction
}

// pressID is the usual 1 idle, 2 hovered, 3 pressed split; 4 when disabled.
func (c *common[C]) pressID(i Interaction) uint32 {
	switch {
	case c.disabled:
		return 4
	case i.Kind == None:
		return 1
	case i.Kind == Hover:
		return 2
	}
	return 3
}

func (c *common[C]) frame(st *Style[C], i Interaction) frame[C] {
	if c.disabled {
		return st.disabled()
	}
	return st.frameFor(i)
}

// paint runs one painter session over area. When nothing buffers the draws
// and the frame has not been cleared, the area is erased first.
func (u *Ctx[C]) paint(area geom.Rect, ds ...gfx.Drawable[C]) error {
	u.StartDrawing(area)
	if !u.painter.Buffering() && !u.cleared {
		if err := u.ClearArea(area); err != nil {
			_ = u.Finalize()
			return err
		}
	}
	for _, d := range ds {
		if err := u.Draw(d); err != nil {
			_ = u.Finalize()
			return err
		}
	}
	return u.Finalize()
}

// paintOver is paint for widgets that cover their whole area themselves.
func (u *Ctx[C]) paintOver(area geom.Rect, ds ...gfx.Drawable[C]) error {
	u.StartDrawing(area)
	for _, d := range ds {
		if err := u.Draw(d); err != nil {
			_ = u.Finalize()
			return err
		}
	}
	return u.Finalize()
}

func satSub(a, b uint32) uint32 {
	if b > a {
		return 0
	}
	return a - b
}

// ===== Spacer =====

type UISpacer[C comparable] struct {
	size geom.Size
}

// Spacer takes up space and draws nothing.
func Spacer[C comparable](size geom.Size) *UISpacer[C] { return &UISpacer[C]{size: size} }

func (s *UISpacer[C]) Draw(u *Ctx[C]) (Response, error) {
	ir, err := u.AllocateSpace(s.size)
	if err != nil {
		return Response{}, err
	}
	r := NewResponse(ir)
	r.Redraw = false
	return r, nil
}
