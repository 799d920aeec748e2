package ui

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hubastard/sprout/engine/colors"
	"github.com/hubastard/sprout/engine/geom"
)

func TestNewInsetsByWindowBorder(t *testing.T) {
	u := newFrame(screen(), NoInteraction())
	assert.Equal(t, geom.R(3, 3, 314, 234), u.Bounds())
	assert.Equal(t, uint32(320), u.ScreenWidth())
	assert.Equal(t, uint32(240), u.ScreenHeight())
	assert.Equal(t, uint32(314), u.Width())
}

func TestCheckInteractNeedsPointInside(t *testing.T) {
	u := newFrame(screen(), HoverAt(geom.Pt(10, 10)))
	assert.Equal(t, Hover, u.CheckInteract(geom.R(0, 0, 20, 20)).Kind)
	assert.Equal(t, None, u.CheckInteract(geom.R(10, 11, 5, 5)).Kind)
	u.Interact(NoInteraction())
	assert.Equal(t, None, u.CheckInteract(geom.R(0, 0, 20, 20)).Kind)
}

func TestClearBackgroundCoversBorder(t *testing.T) {
	m := screen()
	m.Clear(colors.White)
	u := newFrame(m, NoInteraction())
	require.NoError(t, u.ClearBackground())
	assert.True(t, u.Cleared())
	assert.Equal(t, 320*240, m.Count(m.BoundingBox(), colors.Black))
}

func TestClearRowToEnd(t *testing.T) {
	m := screen()
	m.Clear(colors.White)
	u := newFrame(m, NoInteraction())
	u.AddHorizontal(Spacer[px](geom.Sz(100, 20)))
	require.NoError(t, u.ClearRowToEnd())
	assert.Equal(t, colors.White, m.Pixel(50, 10))
	assert.Equal(t, colors.Black, m.Pixel(200, 10))
	assert.Equal(t, colors.White, m.Pixel(200, 30))
}

func TestAddCenteredRestoresAlignment(t *testing.T) {
	u := newFrame(screen(), NoInteraction())
	r := u.AddCentered(Spacer[px](geom.Sz(14, 10)))
	assert.Equal(t, int32(3+150), r.Internal.Area.TopLeft.X)
	r = u.Add(Spacer[px](geom.Sz(14, 10)))
	assert.Equal(t, int32(3), r.Internal.Area.TopLeft.X)
}

func TestNewRowAddsSpacing(t *testing.T) {
	u := newFrame(screen(), NoInteraction())
	u.Add(Spacer[px](geom.Sz(10, 20)))
	assert.Equal(t, geom.Pt(0, 24), u.PlacerTopLeft())
	assert.Equal(t, uint32(16), u.RowHeight())
}

func TestRightPanel(t *testing.T) {
	u := newFrame(screen(), NoInteraction())
	assert.ErrorIs(t, u.RightPanelUI(400, false, func(*Ctx[px]) error { return nil }), ErrBounds)

	var inner geom.Rect
	err := u.RightPanelUI(100, false, func(sub *Ctx[px]) error {
		inner = sub.Bounds()
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, geom.R(3+214+3, 3+3, 94, 228), inner)
	assert.Equal(t, uint32(214), u.Width())

	err = u.RightPanelUI(1000, true, func(sub *Ctx[px]) error {
		inner = sub.Bounds()
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, uint32(0), u.Width())
	assert.Equal(t, uint32(208), inner.Size.W)
}

func TestCentralPanel(t *testing.T) {
	u := newFrame(screen(), NoInteraction())
	assert.ErrorIs(t, u.CentralCenteredPanelUI(315, 10, func(*Ctx[px]) error { return nil }), ErrBounds)

	var inner geom.Rect
	require.NoError(t, u.CentralCenteredPanelUI(114, 34, func(sub *Ctx[px]) error {
		inner = sub.Bounds()
		return nil
	}))
	assert.Equal(t, geom.R(3+100+3, 3+100+3, 108, 28), inner)
}

func TestSubUIHandsBackPlacer(t *testing.T) {
	u := newFrame(screen(), NoInteraction())
	require.NoError(t, u.SubUI(func(sub *Ctx[px]) error {
		sub.StyleMut().Primary = colors.Green
		sub.Add(Spacer[px](geom.Sz(10, 10)))
		return nil
	}))
	p := u.Placer()
	assert.Equal(t, uint32(2), p.Row())
	assert.Equal(t, colors.Red, u.Style().Primary)
}

func TestPainterPanicsOnNestedSession(t *testing.T) {
	m := screen()
	p := NewPainter[px](m)
	p.SetBuffer(make([]px, 100))
	p.StartDrawing(geom.R(0, 0, 10, 10))
	assert.True(t, p.Buffering())
	assert.PanicsWithValue(t, "framebuffer is already in use", func() {
		p.StartDrawing(geom.R(0, 0, 10, 10))
	})
	assert.PanicsWithValue(t, "cannot create subpainter while framebuf is in use", func() {
		_ = p.WithSubpainter(func(*Painter[px]) error { return nil })
	})
	require.NoError(t, p.Finalize())
	assert.False(t, p.Buffering())
}

func TestPainterFlushesOnce(t *testing.T) {
	m := screen()
	u := newFrame(m, NoInteraction())
	u.SetBuffer(make([]px, 64*64))
	m.ResetStats()
	r := u.Add(Button[px]("ok"))
	require.NoError(t, r.Err)
	assert.Equal(t, 1, m.Fills)
	assert.Equal(t, colors.Blue, m.Pixel(4, 4))
}

func TestPainterFallsBackWhenBufferTooSmall(t *testing.T) {
	m := screen()
	u := newFrame(m, NoInteraction())
	u.SetBuffer(make([]px, 4))
	r := u.Add(Button[px]("ok"))
	require.NoError(t, r.Err)
	assert.Equal(t, colors.Blue, m.Pixel(4, 4))
}

func TestWidgetBoundsDebug(t *testing.T) {
	m := screen()
	u := newFrame(m, NoInteraction())
	u.DrawWidgetBoundsDebug(colors.Magenta)
	u.Add(Spacer[px](geom.Sz(10, 10)))
	assert.Equal(t, colors.Magenta, m.Pixel(3, 3))
	assert.Equal(t, colors.Magenta, m.Pixel(12, 12))
	assert.NotEqual(t, colors.Magenta, m.Pixel(7, 7))
}

func TestDrawErrorUnwraps(t *testing.T) {
	err := drawErr("x", ErrBounds)
	assert.ErrorIs(t, err, ErrBounds)
	var de *DrawError
	require.ErrorAs(t, err, &de)
	assert.Equal(t, "x", de.Msg)
	assert.Equal(t, "draw error", (&DrawError{}).Error())
}
