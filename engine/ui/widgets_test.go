package ui

import (
	"hash/crc32"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hubastard/sprout/engine/colors"
	"github.com/hubastard/sprout/engine/geom"
	"github.com/hubastard/sprout/engine/scratch"
	"github.com/hubastard/sprout/engine/smartstate"
)

func TestLerpFixed(t *testing.T) {
	cases := []struct {
		start, end, v, lo, hi, want int16
	}{
		{0, 100, 50, 0, 100, 50},
		{0, 100, -10, 0, 100, 0},
		{0, 100, 110, 0, 100, 100},
		{-50, 50, 0, -50, 50, 0},
		{0, 200, -25, -50, 50, 50},
		{100, 200, 100, 100, 100, 100},
		{0, 100, 33, 0, 100, 33},
		{0, 100, 34, 0, 100, 34},
		{-32768, 32767, 0, -32768, 32767, 0},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, LerpFixed(c.start, c.end, c.v, c.lo, c.hi), "%+v", c)
	}
}

func TestButtonGeometryAndClick(t *testing.T) {
	m := screen()
	u := newFrame(m, ReleaseAt(geom.Pt(10, 10)))
	r := u.Add(Button[px]("+"))
	require.NoError(t, r.Err)
	// 7×13 glyph plus 5 px padding each side.
	assert.Equal(t, geom.R(3, 3, 17, 23), r.Internal.Area)
	assert.True(t, r.Clicked)
	assert.False(t, r.Down)
	// Pressed frame fill.
	assert.Equal(t, colors.Red, m.Pixel(4, 4))

	u = newFrame(m, ClickAt(geom.Pt(10, 10)))
	r = u.Add(Button[px]("+"))
	assert.False(t, r.Clicked)
	assert.True(t, r.Down)

	u = newFrame(m, ReleaseAt(geom.Pt(100, 100)))
	r = u.Add(Button[px]("+"))
	assert.False(t, r.Clicked)
	assert.Equal(t, colors.Blue, m.Pixel(4, 4))
}

func TestDisabledButtonIgnoresPointer(t *testing.T) {
	m := screen()
	u := newFrame(m, ReleaseAt(geom.Pt(10, 10)))
	r := u.Add(Button[px]("+").Enabled(false))
	assert.False(t, r.Clicked)
	assert.False(t, r.Down)
	assert.Equal(t, colors.Gray, m.Pixel(4, 4))
}

func TestCounterScenario(t *testing.T) {
	m := screen()
	store := smartstate.NewStore(4)
	count := 0
	label := scratch.NewText(16)

	run := func(i Interaction) (plus, text Response) {
		store.RestartCounter()
		u := newFrame(m, i)
		plus = u.AddHorizontal(Button[px]("+").Smartstate(store.Next()))
		if plus.Clicked {
			count++
		}
		label.Reset().S("count ").I(count)
		text = u.Add(HashLabel[px](label.View(), store.Next(), nil))
		return plus, text
	}

	plus, text := run(NoInteraction())
	assert.True(t, plus.Redraw)
	assert.True(t, text.Redraw)

	plus, text = run(NoInteraction())
	assert.False(t, plus.Redraw)
	assert.False(t, text.Redraw)

	plus, text = run(ReleaseAt(geom.Pt(10, 10)))
	assert.True(t, plus.Clicked)
	assert.Equal(t, 1, count)
	assert.True(t, plus.Redraw)
	assert.True(t, text.Redraw)

	_, text = run(NoInteraction())
	assert.False(t, text.Redraw)
	assert.Equal(t, "count 1", label.String())
}

func TestHashLabelRedrawsOnTextChange(t *testing.T) {
	m := screen()
	var tok smartstate.Token
	h := crc32.NewIEEE()
	draw := func(s string) bool {
		return newFrame(m, NoInteraction()).Add(HashLabel[px](s, &tok, h)).Redraw
	}
	assert.True(t, draw("a"))
	assert.False(t, draw("a"))
	assert.True(t, draw("b"))
	assert.False(t, draw("b"))
}

func TestPlainLabelDrawsOnce(t *testing.T) {
	m := screen()
	var tok smartstate.Token
	assert.True(t, newFrame(m, NoInteraction()).Add(Label[px]("hi").Smartstate(&tok)).Redraw)
	assert.False(t, newFrame(m, NoInteraction()).Add(Label[px]("hi").Smartstate(&tok)).Redraw)
	tok.ForceRedraw()
	assert.True(t, newFrame(m, NoInteraction()).Add(Label[px]("hi").Smartstate(&tok)).Redraw)
}

func TestLabelAutoTruncate(t *testing.T) {
	m := screen()
	r := newFrame(m, NoInteraction()).Add(Label[px]("a rather long line").AutoTruncate(50))
	require.NoError(t, r.Err)
	assert.LessOrEqual(t, r.Internal.Area.Size.W, uint32(50))
}

func TestForceRedrawRemaining(t *testing.T) {
	m := screen()
	store := smartstate.NewStore(3)
	run := func() []bool {
		store.RestartCounter()
		u := newFrame(m, NoInteraction())
		var out []bool
		for _, s := range []string{"a", "b", "c"} {
			out = append(out, u.AddHorizontal(Button[px](s).Smartstate(store.Next())).Redraw)
		}
		return out
	}
	assert.Equal(t, []bool{true, true, true}, run())
	assert.Equal(t, []bool{false, false, false}, run())
	store.ForceRedrawFrom(1)
	assert.Equal(t, []bool{false, true, true}, run())
	store.ForceRedrawAll()
	assert.Equal(t, []bool{true, true, true}, run())
}

func TestCheckboxFlipsOnRelease(t *testing.T) {
	m := screen()
	on := false
	r := newFrame(m, ReleaseAt(geom.Pt(5, 5))).Add(Checkbox[px](&on))
	assert.True(t, on)
	assert.True(t, r.Changed)
	assert.Equal(t, geom.Sz(16, 16), r.Internal.Area.Size)

	r = newFrame(m, ClickAt(geom.Pt(5, 5))).Add(Checkbox[px](&on))
	assert.True(t, on)
	assert.False(t, r.Changed)
}

func TestSliderSnapsToStep(t *testing.T) {
	m := screen()
	v := int16(0)
	// Track runs from x=10 to x=100 inside the widget, which starts at 3.
	r := newFrame(m, ClickAt(geom.Pt(33, 10))).Add(Slider[px](&v, -10, 10).Step(5).Width(100))
	require.NoError(t, r.Err)
	assert.Equal(t, int16(-5), v)
	assert.True(t, r.Changed)

	r = newFrame(m, DragAt(geom.Pt(0, 10))).Add(Slider[px](&v, -10, 10).Step(5).Width(100))
	assert.Equal(t, int16(-5), v, "drag outside the widget is ignored")
	assert.False(t, r.Changed)

	newFrame(m, DragAt(geom.Pt(3, 10))).Add(Slider[px](&v, -10, 10).Step(5).Width(100))
	assert.Equal(t, int16(-10), v)

	newFrame(m, DragAt(geom.Pt(112, 10))).Add(Slider[px](&v, -10, 10).Step(5).Width(100))
	assert.Equal(t, int16(10), v)
}

func TestSliderStepClamp(t *testing.T) {
	v := int16(0)
	assert.Equal(t, int16(1), Slider[px](&v, 0, 10).Step(0).step)
	assert.Equal(t, int16(10), Slider[px](&v, 0, 10).Step(50).step)
	assert.Equal(t, int16(10), Slider[px](&v, 10, 0).Step(50).step)
}

func TestToggleButtonAndSwitch(t *testing.T) {
	m := screen()
	on := false
	r := newFrame(m, ReleaseAt(geom.Pt(5, 5))).Add(ToggleButton[px]("x", &on))
	assert.True(t, on)
	assert.True(t, r.Changed)
	assert.True(t, r.Clicked)

	sw := false
	r = newFrame(m, ReleaseAt(geom.Pt(10, 10))).Add(ToggleSwitch[px](&sw))
	assert.True(t, sw)
	assert.Equal(t, geom.Sz(52, 27), r.Internal.Area.Size)

	r = newFrame(m, NoInteraction()).Add(ToggleSwitch[px](&sw).Size(10, 10))
	assert.Equal(t, geom.Sz(32, 17), r.Internal.Area.Size)
}

func TestAddConvertsErrors(t *testing.T) {
	m := screen()
	u := newFrame(m, NoInteraction())
	r := u.Add(Spacer[px](geom.Sz(1000, 10)))
	assert.ErrorIs(t, r.Error(), ErrNoSpaceLeft)
}

func TestIconButtonWithLabel(t *testing.T) {
	m := screen()
	mask := iconMask(12)
	r := newFrame(m, ReleaseAt(geom.Pt(6, 6))).Add(IconButton[px](mask).Label("ok"))
	require.NoError(t, r.Err)
	assert.True(t, r.Clicked)
	// Icon 12 + 2·5 padding, plus label 13 + 5.
	assert.Equal(t, uint32(40), r.Internal.Area.Size.H)
	assert.Equal(t, uint32(24), r.Internal.Area.Size.W)
}
