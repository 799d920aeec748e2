package ui

import (
	"github.com/hubastard/sprout/engine/geom"
	"github.com/hubastard/sprout/engine/gfx"
	"github.com/hubastard/sprout/engine/text"
)

type Spacing struct {
	Item                geom.Size // between widgets on a row and between rows
	ButtonPadding       geom.Size
	DefaultPadding      geom.Size
	WindowBorderPadding geom.Size
}

// Style is copied by value into every Ctx, so a sub-region may change its
// copy freely.
type Style[C comparable] struct {
	Background              C
	ItemBackground          C
	HighlightItemBackground C
	Border                  C
	HighlightBorder         C
	Primary                 C
	Secondary               C
	Icon                    C
	Text                    C
	DisabledItemBackground  C
	DisabledText            C

	DefaultWidgetHeight  uint32
	BorderWidth          uint32
	HighlightBorderWidth uint32
	CornerRadius         uint32

	Spacing Spacing
	Font    text.Font[C]
}

// frame is the fill/border pair for a button-like widget in one visual state.
type frame[C comparable] struct {
	fill, border C
	width        uint32
	fg           C
}

func (s *Style[C]) idle() frame[C] {
	return frame[C]{s.ItemBackground, s.Border, s.BorderWidth, s.Text}
}

func (s *Style[C]) hovered() frame[C] {
	return frame[C]{s.HighlightItemBackground, s.HighlightBorder, s.HighlightBorderWidth, s.Text}
}

func (s *Style[C]) pressed() frame[C] {
	return frame[C]{s.Primary, s.HighlightBorder, s.HighlightBorderWidth, s.Text}
}

func (s *Style[C]) disabled() frame[C] {
	return frame[C]{s.DisabledItemBackground, s.Border, s.BorderWidth, s.DisabledText}
}

// frameFor maps the usual idle/hover/pressed split onto colours.
func (s *Style[C]) frameFor(i Interaction) frame[C] {
	switch i.Kind {
	case None:
		return s.idle()
	case Hover:
		return s.hovered()
	}
	return s.pressed()
}

func (f frame[C]) style() gfx.Style[C] {
	return gfx.Filled(f.fill).WithStroke(f.border, f.width)
}
