// Package keyboard draws an on-screen keyboard out of ordinary ui buttons.
package keyboard

import (
	"github.com/hubastard/sprout/engine/geom"
	"github.com/hubastard/sprout/engine/icons"
	"github.com/hubastard/sprout/engine/scratch"
	"github.com/hubastard/sprout/engine/smartstate"
	"github.com/hubastard/sprout/engine/ui"
)

const iconSize = 12

// State is kept by the caller between frames.
type State struct {
	Shift bool
	Open  bool
	Text  scratch.Text
}

// NewState returns a closed keyboard whose text holds up to capacity bytes.
func NewState(capacity int) *State {
	return &State{Text: scratch.NewText(capacity)}
}

type builder[C comparable] struct {
	u     *ui.Ctx[C]
	store *smartstate.Store
	st    *State
	resp  ui.Response
}

func (b *builder[C]) token() *smartstate.Token {
	if b.store == nil {
		return nil
	}
	return b.store.Next()
}

func (b *builder[C]) pad(w uint32) {
	_, _ = b.u.AddRaw(ui.Spacer[C](geom.Sz(w, 0)))
}

func (b *builder[C]) row(keys []Key) {
	for _, k := range keys {
		btn := ui.Button[C](k.Label(b.st.Shift))
		if t := b.token(); t != nil {
			btn.Smartstate(t)
		}
		if b.u.AddHorizontal(btn).Clicked {
			b.resp.Clicked = true
			if b.st.Text.Push(k.Rune(b.st.Shift)) {
				b.resp.Changed = true
			}
		}
	}
}

// Draw lays the keyboard out from the current row down. With a store, each
// key keeps a token and the whole area is repainted only when the keyboard
// opens, closes or shifts. pad staggers the rows like a physical keyboard.
// Response.Down reports that the area below the cursor was repainted.
func Draw[C comparable](u *ui.Ctx[C], layout *Layout, store *smartstate.Store, numRow, pad bool, st *State) ui.Response {
	redraw := true
	if store != nil {
		open := uint32(0)
		if st.Open {
			open = 1
		}
		t := store.Next()
		redraw = !t.IsState(open)
		t.Set(open)
	}
	if redraw {
		if store != nil {
			store.ForceRedrawRemaining()
		}
		_ = u.ClearToBottom()
	}
	if !st.Open {
		return ui.Response{}
	}

	b := &builder[C]{u: u, store: store, st: st}
	first := 0
	if store != nil {
		first = store.Pos()
	}
	// Two item spacings approximate one key.
	keyW := u.Style().Spacing.Item.W * 2
	stagger := func(n, prev int) uint32 {
		w := uint32(max(n, 0)) * keyW
		if w > 0 && w == uint32(prev) {
			w += 2
		}
		return w
	}
	prev := 0

	if numRow {
		if pad {
			b.pad(uint32(max(len(layout.Row1)-len(layout.NumRow), 0)) * keyW)
		}
		b.row(layout.NumRow)
		u.NewRow()
		if pad {
			w := uint32(max(len(layout.NumRow)-len(layout.Row1), 0)) * keyW
			b.pad(w)
			prev = int(w)
		}
	}

	b.row(layout.Row1)
	if u.Add(ui.IconButton[C](icons.Get(icons.Backspace, iconSize))).Clicked {
		b.resp.Clicked = true
		if _, ok := st.Text.Pop(); ok {
			b.resp.Changed = true
		}
	}

	if pad {
		w := stagger(len(layout.Row1)+1-len(layout.Row2), prev)
		b.pad(w)
		prev = int(w)
	}
	b.row(layout.Row2)
	u.NewRow()

	if pad {
		w := stagger(len(layout.Row2)-len(layout.Row3), prev)
		b.pad(w)
		prev = int(w)
	}
	b.row(layout.Row3)
	_ = u.SubUI(func(sub *ui.Ctx[C]) error {
		if st.Shift {
			s := sub.StyleMut()
			s.ItemBackground = s.Primary
		}
		shift := ui.IconButton[C](icons.Get(icons.Shift, iconSize))
		if t := b.token(); t != nil {
			shift.Smartstate(t)
		}
		if sub.Add(shift).Clicked {
			b.resp.Clicked, b.resp.Changed = true, true
			st.Shift = !st.Shift
			if store != nil {
				store.ForceRedrawFrom(first)
			}
		}
		return nil
	})

	if pad {
		// The space bar is about six keys wide.
		b.pad(stagger(len(layout.Row3)+1-6, prev))
	}
	space := ui.Button[C]("|                |")
	if t := b.token(); t != nil {
		space.Smartstate(t)
	}
	if u.AddHorizontal(space).Clicked {
		b.resp.Clicked = true
		if st.Text.Push(' ') {
			b.resp.Changed = true
		}
	}
	hide := ui.IconButton[C](icons.Get(icons.KeyboardHide, iconSize))
	if t := b.token(); t != nil {
		hide.Smartstate(t)
	}
	if u.Add(hide).Clicked {
		b.resp.Clicked, b.resp.Changed = true, true
		st.Open = !st.Open
	}

	b.resp.Down = redraw
	return b.resp
}
