package keyboard

import (
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hubastard/sprout/engine/colors"
	"github.com/hubastard/sprout/engine/display"
	"github.com/hubastard/sprout/engine/geom"
	"github.com/hubastard/sprout/engine/smartstate"
	"github.com/hubastard/sprout/engine/themes"
	"github.com/hubastard/sprout/engine/ui"
)

type px = colors.RGB565

// Key caps with the basic 7×13 font are 17×23 and sit 25 px apart. The
// context starts at (3,3).
func press(m *display.Memory, st *State, store *smartstate.Store, at geom.Point) ui.Response {
	if store != nil {
		store.RestartCounter()
	}
	u := ui.NewFullscreen[px](m, themes.Dark())
	u.Interact(ui.ReleaseAt(at))
	return Draw(u, QWERTY(), store, false, false, st)
}

func TestTyping(t *testing.T) {
	m := display.NewMemory(320, 240)
	st := NewState(16)
	st.Open = true

	r := press(m, st, nil, geom.Pt(5, 5))
	assert.True(t, r.Clicked)
	assert.True(t, r.Changed)
	press(m, st, nil, geom.Pt(30, 5))
	assert.Equal(t, "qw", st.Text.String())

	st.Shift = true
	press(m, st, nil, geom.Pt(55, 5))
	assert.Equal(t, "qwE", st.Text.String())

	// Backspace follows the ten keys of the first row.
	press(m, st, nil, geom.Pt(260, 10))
	assert.Equal(t, "qw", st.Text.String())

	// Second row starts at y=30.
	st.Shift = false
	press(m, st, nil, geom.Pt(5, 35))
	assert.Equal(t, "qwa", st.Text.String())
}

func TestSpaceAndHide(t *testing.T) {
	m := display.NewMemory(320, 240)
	st := NewState(16)
	st.Open = true

	// Fourth row starts at y=84: space bar then the hide key at x=147.
	press(m, st, nil, geom.Pt(20, 90))
	assert.Equal(t, " ", st.Text.String())

	r := press(m, st, nil, geom.Pt(150, 90))
	assert.True(t, r.Changed)
	assert.False(t, st.Open)

	r = press(m, st, nil, geom.Pt(5, 5))
	assert.False(t, r.Clicked)
	assert.Equal(t, " ", st.Text.String())
}

func TestShiftKeyTogglesCase(t *testing.T) {
	m := display.NewMemory(320, 240)
	st := NewState(16)
	st.Open = true
	store := smartstate.NewStore(64)

	// Third row: seven keys from x=3, then shift at x=178, y=57.
	r := press(m, st, store, geom.Pt(185, 60))
	assert.True(t, r.Changed)
	assert.True(t, st.Shift)

	press(m, st, store, geom.Pt(5, 5))
	assert.Equal(t, "Q", st.Text.String())
}

func TestFullTextRejectsKeys(t *testing.T) {
	m := display.NewMemory(320, 240)
	st := NewState(1)
	st.Open = true
	press(m, st, nil, geom.Pt(5, 5))
	r := press(m, st, nil, geom.Pt(5, 5))
	assert.True(t, r.Clicked)
	assert.False(t, r.Changed)
	assert.Equal(t, "q", st.Text.String())
}

func TestRedrawOnlyOnOpenChange(t *testing.T) {
	m := display.NewMemory(320, 240)
	st := NewState(8)
	st.Open = true
	store := smartstate.NewStore(64)

	assert.True(t, press(m, st, store, geom.Pt(-1, -1)).Down)
	assert.False(t, press(m, st, store, geom.Pt(-1, -1)).Down)

	st.Open = false
	assert.False(t, press(m, st, store, geom.Pt(-1, -1)).Down)
	store.RestartCounter()
	tok := store.Next()
	assert.True(t, tok.IsState(0))
}

func TestLayoutsAreBalanced(t *testing.T) {
	for _, l := range Layouts() {
		require.Len(t, l.NumRow, 10, l.Name)
		for _, row := range [][]Key{l.Row1, l.Row2, l.Row3} {
			for _, k := range row {
				assert.Equal(t, string(k.Lower), k.Label(false), l.Name)
				assert.Equal(t, k.Upper, k.Rune(true), l.Name)
				assert.True(t, utf8.ValidString(k.Label(true)), l.Name)
			}
		}
		got, ok := ByName(l.Name)
		require.True(t, ok)
		assert.Equal(t, l.Row1, got.Row1)
	}

	de := QWERTZWithSpecial()
	assert.Equal(t, 'ü', de.Row1[10].Lower)
	assert.Equal(t, 'Ä', de.Row2[10].Upper)
	assert.Equal(t, "§", AZERTYWithSpecial().Row3[9].Label(true))
}
