package ui

import (
	"hash"

	"github.com/hubastard/sprout/engine/geom"
	"github.com/hubastard/sprout/engine/smartstate"
	"github.com/hubastard/sprout/engine/text"
)

// ===== Label =====

type UILabel[C comparable] struct {
	common[C]
	text     string
	truncate uint32
	hasher   hash.Hash32
	hashed   bool
	font     text.Font[C]
	color    *C
}

// Label draws a line of text. With a token it is painted once and then
// left alone until the token is reset.
func Label[C comparable](s string) *UILabel[C] { return &UILabel[C]{text: s} }

// HashLabel repaints whenever the hash of its text changes, so the text
// can be recomputed every frame without flicker. A nil hasher uses FNV-1a.
func HashLabel[C comparable](s string, t *smartstate.Token, h hash.Hash32) *UILabel[C] {
	l := &UILabel[C]{text: s, hasher: h, hashed: true}
	l.token = t
	return l
}

func (l *UILabel[C]) Smartstate(t *smartstate.Token) *UILabel[C] { l.token = t; return l }
func (l *UILabel[C]) WithStyle(s Style[C]) *UILabel[C]           { l.style = &s; return l }
func (l *UILabel[C]) Font(f text.Font[C]) *UILabel[C]            { l.font = f; return l }
func (l *UILabel[C]) Color(c C) *UILabel[C]                      { l.color = &c; return l }

// AutoTruncate cuts the text with an ellipsis to at most w pixels, or to
// what is left on the row when that is less.
func (l *UILabel[C]) AutoTruncate(w uint32) *UILabel[C] { l.truncate = w; return l }

func (l *UILabel[C]) Draw(u *Ctx[C]) (Response, error) {
	st := l.styleOf(u)
	if l.font != nil {
		st.Font = l.font
	}
	if l.color != nil {
		st.Text = *l.color
	}
	s := l.text
	if l.truncate > 0 {
		s = text.Truncate(st.Font, s, min(l.truncate, u.SpaceAvailable().W), "...")
	}
	size := st.Font.Measure(s)

	ir, err := u.AllocateSpace(size)
	if err != nil {
		return Response{}, err
	}

	var state uint32
	if l.hashed {
		state = smartstate.Hash(l.hasher, []byte(s))
	}
	resp := NewResponse(ir)
	resp.Redraw = l.redraw(state, false)
	if !resp.Redraw {
		return resp, nil
	}

	at := ir.Area.TopLeft.Add(geom.Pt(0, (int32(ir.Area.Size.H)-int32(size.H))/2))
	return resp, u.paint(ir.Area, text.Text[C]{Font: st.Font, Str: s, TopLeft: at, Color: st.Text})
}
