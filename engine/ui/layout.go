package ui

import "github.com/hubastard/sprout/engine/geom"

// ===== Alignment =====

type HAlign uint8

const (
	HLeft HAlign = iota
	HCenter
	HRight
)

type VAlign uint8

const (
	VTop VAlign = iota
	VCenter
	VBottom
)

type Align struct {
	H HAlign
	V VAlign
}

// ===== Placer =====

// Placer hands out rectangles row by row inside a local bounds size.
// Coordinates it returns are local; Ctx offsets them.
type Placer struct {
	row, col  uint32
	pos       geom.Point
	rowHeight uint32
	bounds    geom.Size
	wrap      bool
	align     Align
}

func NewPlacer(bounds geom.Size, wrap bool, align Align) Placer {
	return Placer{bounds: bounds, wrap: wrap, align: align}
}

func (p *Placer) Row() uint32              { return p.row }
func (p *Placer) Col() uint32              { return p.col }
func (p *Placer) Pos() geom.Point          { return p.pos }
func (p *Placer) Bounds() geom.Size        { return p.bounds }
func (p *Placer) RowHeight() uint32        { return p.rowHeight }
func (p *Placer) Align() Align             { return p.align }
func (p *Placer) SetWrap(wrap bool)        { p.wrap = wrap }
func (p *Placer) SetAlign(a Align)         { p.align = a }
func (p *Placer) fits(s geom.Size) bool    { return s.Fits(p.bounds) }
func (p *Placer) ExpandRowHeight(h uint32) { p.rowHeight = max(p.rowHeight, h) }

// SpaceAvailable is what is left to the right of and below the cursor.
func (p *Placer) SpaceAvailable() geom.Size {
	return p.bounds.SaturatingSub(geom.Sz(uint32(p.pos.X), uint32(p.pos.Y)))
}

// NewRow moves the cursor to the start of the next row, which begins with
// the given height.
func (p *Placer) NewRow(height uint32) {
	p.row++
	p.col = 0
	p.pos = geom.Pt(0, p.pos.Y+int32(p.rowHeight))
	p.rowHeight = height
}

// NextNoWrap is Next with wrapping disabled for this one call.
func (p *Placer) NextNoWrap(size geom.Size) (geom.Rect, error) {
	wrap := p.wrap
	p.wrap = false
	r, err := p.Next(size)
	p.wrap = wrap
	return r, err
}

// Next allocates size at the cursor. The returned rectangle is as tall as
// the row, so widgets can centre themselves vertically in it.
func (p *Placer) Next(size geom.Size) (geom.Rect, error) {
	if !p.fits(size) {
		return geom.Rect{}, ErrNoSpaceLeft
	}
	// A failed allocation leaves the placer untouched.
	saved := *p

	switch p.align.H {
	case HCenter:
		// Centre in what is left of the row, not in the whole row.
		if uint32(p.pos.X)+size.W > p.bounds.W {
			return geom.Rect{}, ErrNoSpaceLeft
		}
		p.pos.X = int32((p.bounds.W + uint32(p.pos.X) - size.W) / 2)
	case HRight:
		if uint32(p.pos.X)+size.W <= p.bounds.W {
			p.pos.X = int32(p.bounds.W - size.W)
		}
	}

	right := uint32(p.pos.X) + size.W
	bottom := uint32(p.pos.Y) + max(p.rowHeight, size.H)
	if !p.fits(geom.Sz(right, bottom)) {
		if !p.wrap || !p.fits(geom.Sz(0, bottom)) {
			*p = saved
			return geom.Rect{}, ErrNoSpaceLeft
		}
		p.NewRow(size.H)
		if p.align.H == HRight {
			p.pos.X = int32(p.bounds.W - size.W)
		}
		right = uint32(p.pos.X) + size.W
		if !p.fits(geom.Sz(right, uint32(p.pos.Y)+p.rowHeight)) {
			*p = saved
			return geom.Rect{}, ErrNoSpaceLeft
		}
	}

	p.rowHeight = max(p.rowHeight, size.H)
	at := p.pos
	p.pos.X = int32(right)
	p.col++
	return geom.Rect{TopLeft: at, Size: geom.Sz(size.W, p.rowHeight)}, nil
}
