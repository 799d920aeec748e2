package ui

import (
	"github.com/hubastard/sprout/engine/colors"
	"github.com/hubastard/sprout/engine/display"
	"github.com/hubastard/sprout/engine/geom"
	"github.com/hubastard/sprout/engine/gfx"
	"github.com/hubastard/sprout/engine/text"
)

type px = colors.RGB565

var basic = text.Basic[px]()

// testStyle uses one distinct colour per role so tests can check pixels.
func testStyle() Style[px] {
	return Style[px]{
		Background:              colors.Black,
		ItemBackground:          colors.Blue,
		HighlightItemBackground: colors.Cyan,
		Border:                  colors.White,
		HighlightBorder:         colors.Yellow,
		Primary:                 colors.Red,
		Secondary:               colors.Magenta,
		Icon:                    colors.Green,
		Text:                    colors.White,
		DisabledItemBackground:  colors.Gray,
		DisabledText:            colors.DarkGray,
		DefaultWidgetHeight:     16,
		BorderWidth:             0,
		HighlightBorderWidth:    1,
		Spacing: Spacing{
			Item:                geom.Sz(8, 4),
			ButtonPadding:       geom.Sz(5, 5),
			DefaultPadding:      geom.Sz(1, 1),
			WindowBorderPadding: geom.Sz(3, 3),
		},
		Font: basic,
	}
}

// screen is a 320×240 memory display.
func screen() *display.Memory { return display.NewMemory(320, 240) }

// newFrame builds a fresh fullscreen context carrying one interaction.
func newFrame(m *display.Memory, i Interaction) *Ctx[px] {
	u := NewFullscreen[px](m, testStyle())
	u.Interact(i)
	return u
}

// iconMask is a solid n×n mask.
func iconMask(n uint32) *gfx.Mask {
	m := gfx.NewMask(n, n)
	for i := range m.Bits {
		m.Bits[i] = true
	}
	return m
}
