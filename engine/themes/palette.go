package themes

import (
	"fmt"

	"github.com/hubastard/sprout/engine/colors"
)

// Palette overrides theme colours with "#rrggbb" strings. Empty fields
// keep the theme's colour.
type Palette struct {
	Background              string `toml:"background"`
	ItemBackground          string `toml:"item_background"`
	HighlightItemBackground string `toml:"highlight_item_background"`
	Border                  string `toml:"border"`
	HighlightBorder         string `toml:"highlight_border"`
	Primary                 string `toml:"primary"`
	Secondary               string `toml:"secondary"`
	Icon                    string `toml:"icon"`
	Text                    string `toml:"text"`
}

// Apply returns s with the overrides of p. The disabled item colour
// follows an overridden item background.
func Apply(s Style, p Palette) (Style, error) {
	fields := []struct {
		name string
		hex  string
		dst  *colors.RGB565
	}{
		{"background", p.Background, &s.Background},
		{"item_background", p.ItemBackground, &s.ItemBackground},
		{"highlight_item_background", p.HighlightItemBackground, &s.HighlightItemBackground},
		{"border", p.Border, &s.Border},
		{"highlight_border", p.HighlightBorder, &s.HighlightBorder},
		{"primary", p.Primary, &s.Primary},
		{"secondary", p.Secondary, &s.Secondary},
		{"icon", p.Icon, &s.Icon},
		{"text", p.Text, &s.Text},
	}
	for _, f := range fields {
		if f.hex == "" {
			continue
		}
		c, err := colors.Hex(f.hex)
		if err != nil {
			return s, fmt.Errorf("palette %s: %w", f.name, err)
		}
		*f.dst = c
	}
	if p.ItemBackground != "" {
		s.DisabledItemBackground = colors.Muted(s.ItemBackground)
	}
	return s, nil
}
