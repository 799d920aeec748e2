package ui

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hubastard/sprout/engine/colors"
	"github.com/hubastard/sprout/engine/display"
	"github.com/hubastard/sprout/engine/geom"
	"github.com/hubastard/sprout/engine/smartstate"
)

type comboFixture struct {
	m       *display.Memory
	state   PopupState
	buf     []px
	sel     int
	items   []string
	handled int
}

func newComboFixture() *comboFixture {
	return &comboFixture{
		m:     screen(),
		buf:   make([]px, 62*100),
		items: []string{"one", "two", "six"},
	}
}

func (f *comboFixture) frame(i Interaction) Response {
	u := newFrame(f.m, i)
	u.BeginPopup(&f.state, f.buf)
	r := u.Add(ComboBox[px](SelectIndex(&f.sel), f.items))
	u.EndPopup(func() { f.handled++ })
	return r
}

func TestComboOpensBelowItself(t *testing.T) {
	f := newComboFixture()
	r := f.frame(ReleaseAt(geom.Pt(10, 10)))
	require.NoError(t, r.Err)
	assert.True(t, r.Clicked)
	// "one" is 21 px wide: 21+10 padding, a 23 px icon cell and an item gap.
	assert.Equal(t, geom.Sz(62, 23), r.Internal.Area.Size)

	assert.Equal(t, PopupShow, f.state.Stage())
	b, ok := f.state.Bounds()
	require.True(t, ok)
	// Three 23 px rows plus the bottom border.
	assert.Equal(t, geom.R(3, 26, 62, 72), b)
	assert.Zero(t, f.state.OffsetY())
}

func TestComboPicksItem(t *testing.T) {
	f := newComboFixture()
	f.frame(ReleaseAt(geom.Pt(10, 10)))

	// Second item: popup content starts at y=29, rows are 23 px.
	r := f.frame(ReleaseAt(geom.Pt(20, 60)))
	assert.True(t, r.Changed)
	assert.Equal(t, 1, f.sel)
	assert.Equal(t, PopupHandled, f.state.Stage())
	assert.Equal(t, 1, f.handled)

	f.frame(NoInteraction())
	assert.Equal(t, PopupHide, f.state.Stage())
	assert.Equal(t, 1, f.handled)
}

func TestComboDismissedByOutsideClick(t *testing.T) {
	f := newComboFixture()
	f.frame(ReleaseAt(geom.Pt(10, 10)))

	r := f.frame(ClickAt(geom.Pt(300, 200)))
	assert.False(t, r.Changed)
	assert.Equal(t, 0, f.sel)
	assert.Equal(t, PopupHandled, f.state.Stage())
	assert.Equal(t, 1, f.handled)

	f.frame(NoInteraction())
	assert.Equal(t, PopupHide, f.state.Stage())
}

func TestShowFrameCompositesBuffer(t *testing.T) {
	f := newComboFixture()
	f.frame(ReleaseAt(geom.Pt(10, 10)))
	require.Equal(t, PopupShow, f.state.Stage())
	b, _ := f.state.Bounds()

	f.m.Clear(colors.Green)
	f.frame(NoInteraction())
	assert.Equal(t, PopupShow, f.state.Stage())
	assert.Zero(t, f.m.Count(b, colors.Green))
	assert.Equal(t, 100, f.m.Count(geom.R(200, 200, 10, 10), colors.Green))
}

func TestHandledPopupClearsBackground(t *testing.T) {
	f := newComboFixture()
	f.frame(ReleaseAt(geom.Pt(10, 10)))
	f.frame(ClickAt(geom.Pt(300, 200)))
	require.Equal(t, PopupHandled, f.state.Stage())

	f.m.Clear(colors.Green)
	f.frame(NoInteraction())
	assert.Equal(t, PopupHide, f.state.Stage())
	assert.Zero(t, f.m.Count(f.m.BoundingBox(), colors.Green))
}

func TestOpenAndDismissKeepsStore(t *testing.T) {
	m := screen()
	store := smartstate.NewStore(3)
	var st PopupState
	buf := make([]px, 62*100)
	sel := 0
	items := []string{"one", "two", "six"}

	run := func(i Interaction) Response {
		store.RestartCounter()
		u := newFrame(m, i)
		u.BeginPopup(&st, buf)
		u.Add(Label[px]("top").Smartstate(store.Next()))
		r := u.Add(ComboBox[px](SelectIndex(&sel), items).Smartstate(store.Next()))
		u.Add(Label[px]("end").Smartstate(store.Next()))
		u.EndPopup(nil)
		return r
	}

	r := run(NoInteraction())
	before := []smartstate.Token{*store.Get(0), *store.Get(1), *store.Get(2)}
	center := r.Internal.Area.TopLeft.Add(geom.Pt(5, 5))

	run(ReleaseAt(center))
	require.Equal(t, PopupShow, st.Stage())
	run(ClickAt(geom.Pt(300, 200)))
	require.Equal(t, PopupHandled, st.Stage())
	run(NoInteraction())
	require.Equal(t, PopupHide, st.Stage())

	assert.Equal(t, before, []smartstate.Token{*store.Get(0), *store.Get(1), *store.Get(2)})
}

func TestPopupWithholdsPointerFromOtherWidgets(t *testing.T) {
	f := newComboFixture()
	f.frame(ReleaseAt(geom.Pt(10, 10)))

	u := newFrame(f.m, ReleaseAt(geom.Pt(10, 10)))
	u.BeginPopup(&f.state, f.buf)
	r := u.Add(Button[px]("x"))
	assert.False(t, r.Clicked)
}

func TestPopupShiftsUpNearBottom(t *testing.T) {
	f := newComboFixture()
	u := newFrame(f.m, ReleaseAt(geom.Pt(10, 200)))
	u.BeginPopup(&f.state, f.buf)
	u.Add(Spacer[px](geom.Sz(10, 190)))
	r := u.Add(ComboBox[px](SelectIndex(&f.sel), f.items))
	u.EndPopup(nil)
	require.True(t, r.Clicked)

	b, _ := f.state.Bounds()
	assert.Equal(t, int32(240)-b.Bottom(), f.state.OffsetY())
	assert.Less(t, f.state.OffsetY(), int32(0))
}

func TestPopupDrawErrors(t *testing.T) {
	u := newFrame(screen(), NoInteraction())
	_, err := u.popupDraw(geom.Pt(0, 0), 10, func(*Ctx[px]) bool { return false })
	assert.ErrorContains(t, err, "popup layer not initialized")

	var st PopupState
	u.BeginPopup(&st, make([]px, 10))
	_, err = u.popupDraw(geom.Pt(0, 0), 0, func(*Ctx[px]) bool { return false })
	var de *DrawError
	require.ErrorAs(t, err, &de)
	assert.Empty(t, de.Msg)

	_, err = u.popupDraw(geom.Pt(0, 0), 20, func(*Ctx[px]) bool { return false })
	assert.ErrorContains(t, err, "popup buffer too small")
}

func TestComboWithoutPopupLayerReportsError(t *testing.T) {
	sel := 0
	u := newFrame(screen(), ReleaseAt(geom.Pt(10, 10)))
	r := u.Add(ComboBox[px](SelectIndex(&sel), []string{"one", "two"}))
	assert.True(t, r.Clicked)
	assert.ErrorContains(t, r.Err, "popup layer not initialized")

	var st PopupState
	u = newFrame(screen(), ReleaseAt(geom.Pt(10, 10)))
	u.BeginPopup(&st, make([]px, 10))
	r = u.Add(ComboBox[px](SelectIndex(&sel), []string{"one", "two"}))
	assert.ErrorContains(t, r.Err, "popup buffer too small")
	assert.Equal(t, PopupHide, st.Stage())
}
