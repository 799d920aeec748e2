package ui

import (
	"github.com/hubastard/sprout/engine/geom"
	"github.com/hubastard/sprout/engine/gfx"
)

// Widget is anything Ctx can place. Widgets are built, drawn once and
// dropped every frame.
type Widget[C comparable] interface {
	Draw(u *Ctx[C]) (Response, error)
}

// ===== Immediate-mode context =====

// Ctx is the per-frame UI context: it owns the target for the frame, hands
// out space through its Placer and routes the frame's single interaction.
type Ctx[C comparable] struct {
	bounds   geom.Rect
	painter  *Painter[C]
	style    Style[C]
	placer   Placer
	interact Interaction
	cleared  bool

	debugColor C
	debug      bool

	popup *popupLayer[C]
}

// New creates a context over bounds, inset by the style's window border.
func New[C comparable](t gfx.Target[C], bounds geom.Rect, style Style[C]) *Ctx[C] {
	inner := bounds.Inset(style.Spacing.WindowBorderPadding)
	return &Ctx[C]{
		bounds:  inner,
		painter: NewPainter(t),
		style:   style,
		placer:  NewPlacer(inner.Size, true, Align{HLeft, VTop}),
	}
}

// NewFullscreen covers the target's whole bounding box.
func NewFullscreen[C comparable](t gfx.Target[C], style Style[C]) *Ctx[C] {
	return New(t, t.BoundingBox(), style)
}

func (u *Ctx[C]) Interact(i Interaction)    { u.interact = i }
func (u *Ctx[C]) Interaction() Interaction  { return u.interact }
func (u *Ctx[C]) Style() Style[C]           { return u.style }
func (u *Ctx[C]) StyleMut() *Style[C]       { return &u.style }
func (u *Ctx[C]) Bounds() geom.Rect         { return u.bounds }
func (u *Ctx[C]) Placer() Placer            { return u.placer }
func (u *Ctx[C]) Width() uint32             { return u.placer.bounds.W }
func (u *Ctx[C]) PlacerTopLeft() geom.Point { return u.placer.pos }
func (u *Ctx[C]) RowHeight() uint32         { return u.placer.rowHeight }
func (u *Ctx[C]) SpaceAvailable() geom.Size { return u.placer.SpaceAvailable() }
func (u *Ctx[C]) Cleared() bool             { return u.cleared }

func (u *Ctx[C]) ScreenWidth() uint32 {
	return u.bounds.Size.W + 2*u.style.Spacing.WindowBorderPadding.W
}

func (u *Ctx[C]) ScreenHeight() uint32 {
	return u.bounds.Size.H + 2*u.style.Spacing.WindowBorderPadding.H
}

// ===== Adding widgets =====

// AddRaw draws w without touching the row afterwards.
func (u *Ctx[C]) AddRaw(w Widget[C]) (Response, error) {
	resp, err := w.Draw(u)
	if err == nil && u.debug {
		_ = gfx.Rect(resp.Internal.Area, gfx.Stroked(u.debugColor, 1)).Draw(u.painter.target)
	}
	return resp, err
}

func (u *Ctx[C]) addRecover(w Widget[C]) Response {
	resp, err := u.AddRaw(w)
	if err != nil {
		return ResponseFromError(err)
	}
	return resp
}

// Add draws w and starts a new row.
func (u *Ctx[C]) Add(w Widget[C]) Response {
	resp := u.addRecover(w)
	u.NewRow()
	return resp
}

// AddAndClearColRemainder is Add that optionally erases the rest of the row
// first, for rows whose content shrinks between frames.
func (u *Ctx[C]) AddAndClearColRemainder(w Widget[C], clear bool) Response {
	resp := u.addRecover(w)
	if clear {
		_ = u.ClearRowToEnd()
	}
	u.NewRow()
	return resp
}

// AddCentered centres w in the space left on the current row.
func (u *Ctx[C]) AddCentered(w Widget[C]) Response {
	align := u.placer.align
	u.placer.align = Align{HCenter, align.V}
	resp := u.addRecover(w)
	u.placer.align = align
	u.NewRow()
	return resp
}

// AddHorizontal draws w and leaves one item spacing after it on the same row.
func (u *Ctx[C]) AddHorizontal(w Widget[C]) Response {
	resp := u.addRecover(w)
	_, _ = u.AllocateSpaceNoWrap(u.style.Spacing.Item)
	return resp
}

// NewRow adds the vertical item spacing and opens a default-height row.
func (u *Ctx[C]) NewRow() {
	u.NewRowRaw(u.style.Spacing.Item.H)
	u.NewRowRaw(u.style.DefaultWidgetHeight)
}

func (u *Ctx[C]) NewRowRaw(h uint32)       { u.placer.NewRow(h) }
func (u *Ctx[C]) ExpandRowHeight(h uint32) { u.placer.ExpandRowHeight(h) }

// ===== Allocation =====

// CheckInteract returns the frame's interaction when its point lies in area
// and no popup overlay is showing.
func (u *Ctx[C]) CheckInteract(area geom.Rect) Interaction {
	p, ok := u.interact.Point()
	if !ok || u.popupShowing() {
		return NoInteraction()
	}
	if area.Contains(p) {
		return u.interact
	}
	return NoInteraction()
}

func (u *Ctx[C]) AllocateSpace(size geom.Size) (InternalResponse, error) {
	return u.allocate(u.placer.Next(size))
}

func (u *Ctx[C]) AllocateSpaceNoWrap(size geom.Size) (InternalResponse, error) {
	return u.allocate(u.placer.NextNoWrap(size))
}

// AllocateExactSize is AllocateSpace; the area is still as tall as the row.
func (u *Ctx[C]) AllocateExactSize(size geom.Size) (InternalResponse, error) {
	return u.AllocateSpace(size)
}

func (u *Ctx[C]) allocate(local geom.Rect, err error) (InternalResponse, error) {
	if err != nil {
		return InternalResponse{}, err
	}
	area := local.Offset(u.bounds.TopLeft)
	return InternalResponse{Area: area, Interaction: u.CheckInteract(area)}, nil
}

// ===== Clearing =====

func (u *Ctx[C]) ClearArea(area geom.Rect) error {
	if err := u.Draw(gfx.Rect(area, gfx.Filled(u.style.Background))); err != nil {
		return drawErr("couldn't clear area", err)
	}
	return nil
}

// local converts a placer rectangle to target coordinates.
func (u *Ctx[C]) local(x, y int32, w, h uint32) geom.Rect {
	return geom.R(x, y, w, h).Offset(u.bounds.TopLeft)
}

func (u *Ctx[C]) ClearRow() error {
	return u.ClearArea(u.local(0, u.placer.pos.Y, u.placer.bounds.W, u.placer.rowHeight))
}

func (u *Ctx[C]) ClearRowToEnd() error {
	p := u.placer
	w := uint32(max(int32(p.bounds.W)-p.pos.X, 0))
	return u.ClearArea(u.local(p.pos.X, p.pos.Y, w, p.rowHeight))
}

func (u *Ctx[C]) ClearToBottom() error {
	p := u.placer
	h := uint32(max(int32(p.bounds.H)-p.pos.Y, 0))
	return u.ClearArea(u.local(0, p.pos.Y, p.bounds.W, h))
}

// ClearBackground fills the whole context, border included, and marks the
// frame as cleared so widgets can skip erasing their own area.
func (u *Ctx[C]) ClearBackground() error {
	u.cleared = true
	area := u.bounds.Outset(u.style.Spacing.WindowBorderPadding)
	if err := gfx.FillSolid(u.painter.target, area, u.style.Background); err != nil {
		return drawErr("couldn't clear background", err)
	}
	return nil
}

// ===== Drawing =====

func (u *Ctx[C]) SetBuffer(buf []C) { u.painter.SetBuffer(buf) }

// StartDrawing opens a painter session and pre-fills it with the background.
func (u *Ctx[C]) StartDrawing(area geom.Rect) {
	u.painter.StartDrawing(area)
	u.painter.ClearBuffer(u.style.Background)
}

func (u *Ctx[C]) ClearBufferRaw(c C) bool         { return u.painter.ClearBuffer(c) }
func (u *Ctx[C]) Finalize() error                 { return u.painter.Finalize() }
func (u *Ctx[C]) Draw(d gfx.Drawable[C]) error    { return u.painter.Draw(d) }
func (u *Ctx[C]) DrawRaw(d gfx.Drawable[C]) error { return d.Draw(u.painter.target) }

// ===== Sub-regions =====

func (u *Ctx[C]) child(p *Painter[C], bounds geom.Rect, placer Placer) *Ctx[C] {
	return &Ctx[C]{
		bounds:     bounds,
		painter:    p,
		style:      u.style,
		placer:     placer,
		interact:   u.interact,
		debugColor: u.debugColor,
		debug:      u.debug,
	}
}

// SubUI runs fn on a child sharing this context's bounds and a copy of its
// placer; the child's placer replaces this one afterwards. The child sees
// the popup layer, so a combo box works inside it.
func (u *Ctx[C]) SubUI(fn func(*Ctx[C]) error) error {
	return u.painter.WithSubpainter(func(p *Painter[C]) error {
		sub := u.child(p, u.bounds, u.placer)
		sub.popup = u.popup
		err := fn(sub)
		u.placer = sub.placer
		return err
	})
}

// UncheckedSubUI runs fn in bounds (target coordinates), inset by the
// window border, with a fresh placer. No popup layer is passed down.
func (u *Ctx[C]) UncheckedSubUI(bounds geom.Rect, fn func(*Ctx[C]) error) error {
	inner := bounds.Inset(u.style.Spacing.WindowBorderPadding)
	return u.painter.WithSubpainter(func(p *Painter[C]) error {
		sub := u.child(p, inner, NewPlacer(inner.Size, true, Align{HLeft, VTop}))
		if u.popupShowing() {
			sub.interact = NoInteraction()
		}
		return fn(sub)
	})
}

// RightPanelUI reserves a strip of width on the right, from the current row
// down, and shrinks this context's usable width by it.
func (u *Ctx[C]) RightPanelUI(width uint32, allowSmaller bool, fn func(*Ctx[C]) error) error {
	b := u.placer.bounds
	y := u.placer.pos.Y
	maxW := b.W - uint32(u.placer.pos.X)
	maxH := b.H - uint32(y)
	if width > maxW && !allowSmaller {
		return ErrBounds
	}
	w := min(width, maxW)
	u.placer.bounds.W -= w
	return u.UncheckedSubUI(u.local(int32(b.W-w), y, w, maxH), fn)
}

// CentralCenteredPanelUI runs fn in a width×height panel centred in this
// context.
func (u *Ctx[C]) CentralCenteredPanelUI(width, height uint32, fn func(*Ctx[C]) error) error {
	b := u.placer.bounds
	if width > b.W || height > b.H {
		return ErrBounds
	}
	u.placer.bounds.W -= width
	u.placer.bounds.H -= height
	return u.UncheckedSubUI(u.local(int32((b.W-width)/2), int32((b.H-height)/2), width, height), fn)
}

// ===== Debug =====

// DrawWidgetBoundsDebug outlines every widget added from now on in c.
func (u *Ctx[C]) DrawWidgetBoundsDebug(c C) {
	u.debugColor, u.debug = c, true
}

func (u *Ctx[C]) DrawBoundsDebug(c C) error {
	if err := gfx.Rect(u.bounds, gfx.Stroked(c, 1)).Draw(u.painter.target); err != nil {
		return drawErr("couldn't draw bounds", err)
	}
	return nil
}
