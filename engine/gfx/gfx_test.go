package gfx_test

import (
	"image"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hubastard/sprout/engine/colors"
	"github.com/hubastard/sprout/engine/display"
	"github.com/hubastard/sprout/engine/geom"
	"github.com/hubastard/sprout/engine/gfx"
)

func TestFilledRectangle(t *testing.T) {
	m := display.NewMemory(10, 10)
	require.NoError(t, gfx.Rect(geom.R(2, 3, 4, 2), gfx.Filled(colors.Red)).Draw(m))
	assert.Equal(t, 8, m.Count(m.BoundingBox(), colors.Red))
	assert.Equal(t, colors.Red, m.Pixel(5, 4))
	assert.Equal(t, colors.Black, m.Pixel(6, 4))
}

func TestStrokeAndFillDoNotOverlap(t *testing.T) {
	m := display.NewMemory(10, 10)
	s := gfx.Filled(colors.Blue).WithStroke(colors.White, 2)
	require.NoError(t, gfx.Rect(geom.R(0, 0, 6, 6), s).Draw(m))
	assert.Equal(t, 4, m.Count(m.BoundingBox(), colors.Blue))
	assert.Equal(t, 32, m.Count(m.BoundingBox(), colors.White))
}

func TestRoundedRectangleCutsCorners(t *testing.T) {
	m := display.NewMemory(20, 20)
	require.NoError(t, gfx.RoundedRect(geom.R(0, 0, 20, 10), 5, gfx.Filled(colors.Green)).Draw(m))
	assert.Equal(t, colors.Black, m.Pixel(0, 0))
	assert.Equal(t, colors.Black, m.Pixel(19, 9))
	assert.Equal(t, colors.Green, m.Pixel(0, 5))
	assert.Equal(t, colors.Green, m.Pixel(10, 0))
	// Nothing escapes the area.
	assert.Equal(t, 0, m.Count(geom.R(0, 10, 20, 10), colors.Green))
}

func TestRoundedStrokeLeavesInteriorToFill(t *testing.T) {
	m := display.NewMemory(30, 30)
	s := gfx.Filled(colors.Blue).WithStroke(colors.White, 1)
	require.NoError(t, gfx.RoundedRect(geom.R(0, 0, 30, 20), 4, s).Draw(m))
	assert.Equal(t, colors.White, m.Pixel(15, 0))
	assert.Equal(t, colors.White, m.Pixel(0, 10))
	assert.Equal(t, colors.Blue, m.Pixel(15, 10))
	assert.Equal(t, colors.White, m.Pixel(15, 19))
}

func TestCircleIsSymmetric(t *testing.T) {
	m := display.NewMemory(12, 12)
	require.NoError(t, gfx.NewCircle(geom.Pt(1, 1), 10, gfx.Filled(colors.Yellow)).Draw(m))
	n := m.Count(m.BoundingBox(), colors.Yellow)
	assert.Greater(t, n, 60)
	assert.Less(t, n, 100)
	for y := 0; y < 12; y++ {
		for x := 0; x < 12; x++ {
			assert.Equal(t, m.Pixel(x, y), m.Pixel(11-x, y), "mirror at %d,%d", x, y)
			assert.Equal(t, m.Pixel(x, y), m.Pixel(x, 11-y), "mirror at %d,%d", x, y)
		}
	}
}

func TestMaskImageDrawsSetBitsOnly(t *testing.T) {
	alpha := image.NewAlpha(image.Rect(0, 0, 3, 2))
	alpha.Pix[0] = 0xFF
	alpha.Pix[4] = 0x90
	alpha.Pix[5] = 0x10
	mask := gfx.MaskFromAlpha(alpha)
	assert.True(t, mask.At(0, 0))
	assert.True(t, mask.At(1, 1))
	assert.False(t, mask.At(2, 1))

	m := display.NewMemory(5, 5)
	require.NoError(t, gfx.Image(mask, geom.Pt(2, 2), colors.Cyan).Draw(m))
	assert.Equal(t, 2, m.Count(m.BoundingBox(), colors.Cyan))
	assert.Equal(t, colors.Cyan, m.Pixel(2, 2))
	assert.Equal(t, colors.Cyan, m.Pixel(3, 3))
}
