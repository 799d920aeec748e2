package display

import (
	"image/color"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hubastard/sprout/engine/colors"
	"github.com/hubastard/sprout/engine/geom"
	"github.com/hubastard/sprout/engine/gfx"
)

func TestMemoryFillContiguousIsRowMajorAndClipped(t *testing.T) {
	m := NewMemory(4, 4)
	seq := []colors.RGB565{colors.Red, colors.Green, colors.Blue, colors.White, colors.Yellow, colors.Cyan}
	err := m.FillContiguous(geom.R(2, 1, 3, 2), func(yield func(colors.RGB565) bool) {
		for _, c := range seq {
			if !yield(c) {
				return
			}
		}
	})
	require.NoError(t, err)
	assert.Equal(t, colors.Red, m.Pixel(2, 1))
	assert.Equal(t, colors.Green, m.Pixel(3, 1))
	// (4,1) is off-canvas and dropped; the next row starts at x=2.
	assert.Equal(t, colors.White, m.Pixel(2, 2))
	assert.Equal(t, colors.Yellow, m.Pixel(3, 2))
	assert.Equal(t, 6, m.Writes)
}

func TestMemoryIsADisplayer(t *testing.T) {
	m := NewMemory(8, 8)
	m.SetPixel(1, 2, color.RGBA{R: 0xFF, A: 0xFF})
	assert.Equal(t, colors.Red, m.Pixel(1, 2))
	w, h := m.Size()
	assert.Equal(t, int16(8), w)
	assert.Equal(t, int16(8), h)
	require.NoError(t, m.Display())
	assert.Equal(t, 1, m.Presents)
}

// fillingPanel records FillRectangle calls, like a real SPI driver would.
type fillingPanel struct {
	*Memory
	rects int
}

func (p *fillingPanel) FillRectangle(x, y, w, h int16, c color.RGBA) error {
	p.rects++
	return p.Memory.FillSolid(geom.R(int32(x), int32(y), uint32(w), uint32(h)), colors.FromColor(c))
}

func TestDeviceUsesFillRectangleFastPath(t *testing.T) {
	panel := &fillingPanel{Memory: NewMemory(10, 10)}
	dev := NewDevice(panel)
	require.NoError(t, gfx.FillSolid[colors.RGB565](dev, geom.R(-2, -2, 5, 5), colors.Blue))
	assert.Equal(t, 1, panel.rects)
	assert.Equal(t, 9, panel.Count(geom.R(0, 0, 10, 10), colors.Blue))
}

func TestDeviceDrawsThroughSetPixel(t *testing.T) {
	mem := NewMemory(6, 6)
	dev := NewDevice(mem)
	assert.Equal(t, geom.R(0, 0, 6, 6), dev.BoundingBox())

	r := gfx.Rect(geom.R(1, 1, 3, 3), gfx.Stroked(colors.White, 1))
	require.NoError(t, r.Draw(dev))
	assert.Equal(t, 8, mem.Count(geom.R(0, 0, 6, 6), colors.White))
	assert.Equal(t, colors.Black, mem.Pixel(2, 2))
	require.NoError(t, dev.Present())
	assert.Equal(t, 1, mem.Presents)
}

// bitmapPanel records DrawRGBBitmap calls.
type bitmapPanel struct {
	*Memory
	blits int
}

func (p *bitmapPanel) DrawRGBBitmap(x, y int16, data []uint16, w, h int16) error {
	p.blits++
	for i, c := range data {
		p.Memory.SetPixel(x+int16(i%int(w)), y+int16(i/int(w)), colors.RGB565(c).RGBA8())
	}
	return nil
}

func TestDeviceFlushesContiguousAsOneBitmap(t *testing.T) {
	panel := &bitmapPanel{Memory: NewMemory(10, 10)}
	dev := NewDevice(panel)

	cs := slices.Repeat([]colors.RGB565{colors.Red}, 12)
	require.NoError(t, dev.FillContiguous(geom.R(2, 2, 4, 3), slices.Values(cs)))
	assert.Equal(t, 1, panel.blits)
	assert.Equal(t, 12, panel.Count(geom.R(2, 2, 4, 3), colors.Red))

	// Short stream: one full row as a bitmap, the rest per pixel.
	require.NoError(t, dev.FillContiguous(geom.R(0, 6, 4, 2), slices.Values(cs[:6])))
	assert.Equal(t, 2, panel.blits)
	assert.Equal(t, 6, panel.Count(geom.R(0, 6, 4, 2), colors.Red))

	// Partly off screen falls back to clipped pixels.
	require.NoError(t, dev.FillContiguous(geom.R(8, 8, 4, 3), slices.Values(cs)))
	assert.Equal(t, 2, panel.blits)
	assert.Equal(t, 4, panel.Count(geom.R(8, 8, 2, 2), colors.Red))
}
