// Package themes holds ready-made RGB565 styles.
package themes

import (
	"fmt"
	"slices"
	"sync"

	"github.com/hubastard/sprout/engine/colors"
	"github.com/hubastard/sprout/engine/geom"
	"github.com/hubastard/sprout/engine/text"
	"github.com/hubastard/sprout/engine/ui"
)

type Style = ui.Style[colors.RGB565]

// basicFont is baked once and shared by every theme.
var basicFont = sync.OnceValue(text.Basic[colors.RGB565])

// palette is the colour part of a theme.
type palette struct {
	background, item, highlight colors.RGB565
	border, highlightBorder     colors.RGB565
	primary, icon, text         colors.RGB565
	borderWidth, highlightWidth uint32
}

func (p palette) style() Style {
	return Style{
		Background:              p.background,
		ItemBackground:          p.item,
		HighlightItemBackground: p.highlight,
		Border:                  p.border,
		HighlightBorder:         p.highlightBorder,
		Primary:                 p.primary,
		Secondary:               colors.Yellow,
		Icon:                    p.icon,
		Text:                    p.text,
		DisabledItemBackground:  colors.Muted(p.item),
		DisabledText:            colors.DarkGray,

		DefaultWidgetHeight:  16,
		BorderWidth:          p.borderWidth,
		HighlightBorderWidth: p.highlightWidth,

		Spacing: ui.Spacing{
			Item:                geom.Sz(8, 4),
			ButtonPadding:       geom.Sz(5, 5),
			DefaultPadding:      geom.Sz(1, 1),
			WindowBorderPadding: geom.Sz(3, 3),
		},
		Font: basicFont(),
	}
}

func Dark() Style {
	return palette{
		colors.New565(4, 8, 4), colors.New565(2, 4, 2), colors.New565(1, 2, 1),
		colors.White, colors.White,
		colors.DarkCyan, colors.White, colors.White,
		0, 1,
	}.style()
}

func Light() Style {
	return palette{
		colors.White, colors.NavajoWhite, colors.Gainsboro,
		colors.White, colors.Black,
		colors.DarkOrange, colors.Black, colors.Black,
		0, 1,
	}.style()
}

// Pink is the sakura theme.
func Pink() Style {
	return palette{
		colors.PeachPuff, colors.LightPink, colors.HotPink,
		colors.White, colors.Black,
		colors.DeepPink, colors.Black, colors.Black,
		0, 1,
	}.style()
}

func Blue() Style {
	return palette{
		colors.MidnightBlue, colors.Blue, colors.BlueViolet,
		colors.White, colors.White,
		colors.PaleVioletRed, colors.White, colors.White,
		0, 1,
	}.style()
}

// CRT is green on black with heavy highlight borders.
func CRT() Style {
	return palette{
		colors.Black, colors.Black, colors.Black,
		colors.WebGreen, colors.WebGreen,
		colors.WebGreen, colors.WebGreen, colors.WebGreen,
		1, 3,
	}.style()
}

func Retro() Style {
	return palette{
		colors.White, colors.White, colors.White,
		colors.Black, colors.Black,
		colors.Black, colors.Black, colors.Black,
		1, 1,
	}.style()
}

// Debug uses loud colours and tight padding so layout problems stand out.
func Debug() Style {
	s := palette{
		colors.Black, colors.Gray, colors.New565(1, 2, 1),
		colors.Red, colors.White,
		colors.Cyan, colors.White, colors.White,
		1, 1,
	}.style()
	s.Spacing.ButtonPadding = geom.Sz(2, 2)
	s.Spacing.DefaultPadding = geom.Sz(3, 3)
	return s
}

var registry = map[string]func() Style{
	"dark":  Dark,
	"light": Light,
	"pink":  Pink,
	"blue":  Blue,
	"crt":   CRT,
	"retro": Retro,
	"debug": Debug,
}

// Names lists the theme names, sorted.
func Names() []string {
	names := make([]string, 0, len(registry))
	for n := range registry {
		names = append(names, n)
	}
	slices.Sort(names)
	return names
}

func ByName(name string) (Style, error) {
	fn, ok := registry[name]
	if !ok {
		return Style{}, fmt.Errorf("unknown theme %q (have %v)", name, Names())
	}
	return fn(), nil
}
