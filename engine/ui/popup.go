package ui

import (
	"github.com/hubastard/sprout/engine/geom"
	"github.com/hubastard/sprout/engine/scratch"
)

type PopupStage uint8

const (
	PopupHide PopupStage = iota
	PopupDrawing
	PopupShow
	PopupHandled
)

func (s PopupStage) String() string {
	switch s {
	case PopupDrawing:
		return "drawing"
	case PopupShow:
		return "show"
	case PopupHandled:
		return "handled"
	}
	return "hide"
}

// PopupState survives between frames. The widget that opened the overlay
// is identified by its placer column and row.
type PopupState struct {
	stage     PopupStage
	col, row  uint32
	bounds    geom.Rect
	hasBounds bool
	offsetY   int32
}

func (s *PopupState) Stage() PopupStage { return s.stage }
func (s *PopupState) OffsetY() int32    { return s.offsetY }

func (s *PopupState) Bounds() (geom.Rect, bool) { return s.bounds, s.hasBounds }

type popupLayer[C comparable] struct {
	state    *PopupState
	buf      []C
	interact Interaction
}

func (u *Ctx[C]) popupShowing() bool {
	return u.popup != nil && u.popup.state.stage == PopupShow
}

// BeginPopup installs the overlay for this frame. buf backs the overlay's
// pixels and must outlive the frame. A popup handled last frame is closed
// here and the background repainted under it.
func (u *Ctx[C]) BeginPopup(state *PopupState, buf []C) {
	if state.stage == PopupHandled {
		state.stage = PopupHide
		_ = u.ClearBackground()
	}
	u.popup = &popupLayer[C]{state: state, buf: buf}
}

// EndPopup composites a showing overlay over the frame. A click outside it
// dismisses it; onHandled runs once the overlay is dismissed or an item
// was picked.
func (u *Ctx[C]) EndPopup(onHandled func()) {
	l := u.popup
	if l == nil || !l.state.hasBounds {
		return
	}
	st := l.state
	if p, ok := l.interact.Point(); ok && l.interact.Kind == Click && !st.bounds.Contains(p) {
		st.stage = PopupHandled
	}
	l.interact = NoInteraction()

	switch st.stage {
	case PopupShow:
		at := st.bounds.TopLeft.Add(geom.Pt(0, st.offsetY))
		if fb, ok := scratch.TryNew(l.buf, st.bounds.Size, at); ok {
			_ = fb.Flush(u.painter.target)
		}
	case PopupHandled:
		if onHandled != nil {
			onHandled()
		}
	}
}

// popupCheck reports whether the overlay belongs to the widget at the
// current placer cell. When it does, the frame's interaction is moved into
// the overlay's coordinates and withheld from the rest of the UI.
func (u *Ctx[C]) popupCheck() bool {
	l := u.popup
	if l == nil || l.state.stage != PopupShow {
		return false
	}
	if l.state.col != u.placer.col || l.state.row != u.placer.row {
		return false
	}
	if p, ok := u.interact.Point(); ok {
		l.interact = u.interact.WithPoint(p.Sub(geom.Pt(0, l.state.offsetY)))
	} else {
		l.interact = NoInteraction()
	}
	u.interact = NoInteraction()
	return true
}

// popupDraw renders the overlay into the popup buffer at topLeft, width
// pixels wide. fn fills it and reports whether an item was picked. The
// overlay is shifted up when it would run off the bottom of the screen.
func (u *Ctx[C]) popupDraw(topLeft geom.Point, width uint32, fn func(*Ctx[C]) bool) (bool, error) {
	if width == 0 {
		return false, &DrawError{}
	}
	l := u.popup
	if l == nil {
		return false, drawErr("popup layer not initialized", nil)
	}
	screenH := int32(u.ScreenHeight())

	bounds := geom.Rect{TopLeft: topLeft, Size: geom.Sz(width, uint32(len(l.buf))/width)}
	fb, ok := scratch.TryNew(l.buf, bounds.Size, bounds.TopLeft)
	if !ok || bounds.Size.H == 0 {
		return false, drawErr("popup buffer too small", nil)
	}

	sub := New[C](fb, bounds, u.style)
	sub.debugColor, sub.debug = u.debugColor, u.debug
	sub.interact = l.interact

	l.state.stage = PopupDrawing
	sub.BeginPopup(l.state, nil)
	if err := sub.ClearBackground(); err != nil {
		return false, err
	}
	selected := fn(sub)

	bounds.Size.H = uint32(sub.PlacerTopLeft().Y) + u.style.Spacing.WindowBorderPadding.H
	offset := int32(0)
	if bottom := topLeft.Y + int32(bounds.Size.H); bottom > screenH {
		offset = screenH - bottom
	}

	if selected {
		l.state.stage = PopupHandled
		return true, nil
	}
	l.state.stage = PopupShow
	l.state.col, l.state.row = u.placer.col, u.placer.row
	l.state.bounds, l.state.hasBounds = bounds, true
	l.state.offsetY = offset
	return false, nil
}
