package themes

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hubastard/sprout/engine/colors"
	"github.com/hubastard/sprout/engine/geom"
)

func TestEveryNamedThemeBuilds(t *testing.T) {
	names := Names()
	require.Equal(t, []string{"blue", "crt", "dark", "debug", "light", "pink", "retro"}, names)
	for _, n := range names {
		s, err := ByName(n)
		require.NoError(t, err, n)
		assert.NotNil(t, s.Font, n)
		assert.Equal(t, uint32(16), s.DefaultWidgetHeight, n)
		assert.Equal(t, colors.Yellow, s.Secondary, n)
	}
}

func TestUnknownTheme(t *testing.T) {
	_, err := ByName("neon")
	assert.ErrorContains(t, err, "neon")
}

func TestDebugSpacing(t *testing.T) {
	d := Debug()
	assert.Equal(t, geom.Sz(2, 2), d.Spacing.ButtonPadding)
	assert.Equal(t, geom.Sz(3, 3), d.Spacing.DefaultPadding)
	assert.Equal(t, geom.Sz(5, 5), Dark().Spacing.ButtonPadding)
}

func TestCRTBorders(t *testing.T) {
	c := CRT()
	assert.Equal(t, uint32(1), c.BorderWidth)
	assert.Equal(t, uint32(3), c.HighlightBorderWidth)
	assert.Equal(t, colors.WebGreen, c.Primary)
}

func TestApplyPalette(t *testing.T) {
	s, err := Apply(Light(), Palette{Primary: "#ff0000", ItemBackground: "#000000"})
	require.NoError(t, err)
	assert.Equal(t, colors.Red, s.Primary)
	assert.Equal(t, colors.Black, s.ItemBackground)
	assert.Equal(t, colors.White, s.Background)
	assert.Equal(t, colors.Muted(colors.Black), s.DisabledItemBackground)

	_, err = Apply(Light(), Palette{Text: "nope"})
	assert.ErrorContains(t, err, "palette text")
}
