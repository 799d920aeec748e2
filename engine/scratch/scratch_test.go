package scratch

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hubastard/sprout/engine/colors"
	"github.com/hubastard/sprout/engine/display"
	"github.com/hubastard/sprout/engine/geom"
	"github.com/hubastard/sprout/engine/gfx"
)

func TestTryNewRejectsShortBuffer(t *testing.T) {
	buf := make([]colors.RGB565, 11)
	_, ok := TryNew(buf, geom.Sz(4, 3), geom.Pt(0, 0))
	assert.False(t, ok)
	assert.Panics(t, func() { New(buf, geom.Sz(4, 3), geom.Pt(0, 0)) })

	fb, ok := TryNew(make([]colors.RGB565, 12), geom.Sz(4, 3), geom.Pt(0, 0))
	require.True(t, ok)
	assert.Len(t, fb.Pixels(), 12)
}

func TestExactBufferAcceptsInRangeRejectsComplement(t *testing.T) {
	origin := geom.Pt(10, 20)
	fb := New(make([]colors.RGB565, 4*3), geom.Sz(4, 3), origin)
	area := fb.BoundingBox()

	accepted := 0
	for y := int32(15); y < 30; y++ {
		for x := int32(5); x < 20; x++ {
			p := geom.Pt(x, y)
			fb.Set(p, colors.White)
			_, in := fb.Get(p)
			assert.Equal(t, area.Contains(p), in, "point %v", p)
			if in {
				accepted++
			}
		}
	}
	assert.Equal(t, 12, accepted)
	for _, c := range fb.Pixels() {
		assert.Equal(t, colors.White, c)
	}
}

func TestFlushBlitsRegion(t *testing.T) {
	fb := New(make([]colors.RGB565, 6), geom.Sz(3, 2), geom.Pt(1, 1))
	fb.Fill(colors.Blue)
	require.NoError(t, gfx.Rect(geom.R(0, 0, 2, 2), gfx.Filled(colors.Red)).Draw(fb))

	m := display.NewMemory(5, 5)
	require.NoError(t, fb.Flush(m))
	assert.Equal(t, 1, m.Fills)
	assert.Equal(t, colors.Red, m.Pixel(1, 1))
	assert.Equal(t, colors.Blue, m.Pixel(2, 1))
	assert.Equal(t, colors.Blue, m.Pixel(3, 2))
	assert.Equal(t, colors.Black, m.Pixel(0, 0))
	assert.Equal(t, 5, m.Count(m.BoundingBox(), colors.Blue))
}

func TestTextIsFixedCapacity(t *testing.T) {
	txt := NewText(5)
	for _, r := range "hello" {
		assert.True(t, txt.Push(r))
	}
	assert.False(t, txt.Push('!'))
	assert.Equal(t, "hello", txt.View())

	r, ok := txt.Pop()
	assert.True(t, ok)
	assert.Equal(t, 'o', r)
	assert.Equal(t, "hell", txt.String())

	txt.Reset()
	_, ok = txt.Pop()
	assert.False(t, ok)
}

func TestTextMultibyteAndChaining(t *testing.T) {
	txt := NewText(16)
	txt.S("n=").I(-42).R('ü')
	assert.Equal(t, "n=-42ü", txt.View())
	r, _ := txt.Pop()
	assert.Equal(t, 'ü', r)
	assert.Equal(t, 5, txt.Len())

	full := NewText(2)
	full.S("abc")
	assert.True(t, full.IsEmpty())
}
