package display

import (
	"image/color"
	"iter"

	"tinygo.org/x/drivers"

	"github.com/hubastard/sprout/engine/colors"
	"github.com/hubastard/sprout/engine/geom"
	"github.com/hubastard/sprout/engine/gfx"
)

// rectFiller is implemented by most tinygo display drivers (st7789, ili9341, ...).
type rectFiller interface {
	FillRectangle(x, y, width, height int16, c color.RGBA) error
}

// bitmapDrawer takes a whole RGB565 window in one transfer (st7789, ili9341).
type bitmapDrawer interface {
	DrawRGBBitmap(x, y int16, data []uint16, w, h int16) error
}

// Device adapts a tinygo display driver to a gfx.Target.
type Device struct {
	d   drivers.Displayer
	bmp []uint16
}

func NewDevice(d drivers.Displayer) *Device { return &Device{d: d} }

func (dv *Device) BoundingBox() geom.Rect {
	w, h := dv.d.Size()
	return geom.R(0, 0, uint32(max(w, 0)), uint32(max(h, 0)))
}

func (dv *Device) DrawIter(pixels iter.Seq[gfx.Pixel[colors.RGB565]]) error {
	bb := dv.BoundingBox()
	for p := range pixels {
		if bb.Contains(p.Point) {
			dv.d.SetPixel(int16(p.Point.X), int16(p.Point.Y), p.Color.RGBA8())
		}
	}
	return nil
}

func (dv *Device) FillContiguous(area geom.Rect, cs iter.Seq[colors.RGB565]) error {
	if area.IsEmpty() {
		return nil
	}
	bb := dv.BoundingBox()
	if bd, ok := dv.d.(bitmapDrawer); ok && area.Intersect(bb) == area {
		return dv.blit(bd, area, cs)
	}
	w := int32(area.Size.W)
	n := int32(area.Size.Area())
	var i int32
	for c := range cs {
		if i >= n {
			break
		}
		p := geom.Pt(area.TopLeft.X+i%w, area.TopLeft.Y+i/w)
		if bb.Contains(p) {
			dv.d.SetPixel(int16(p.X), int16(p.Y), c.RGBA8())
		}
		i++
	}
	return nil
}

// blit gathers the stream and sends it as one bitmap. A short stream sends
// only its complete rows; the tail goes pixel by pixel.
func (dv *Device) blit(bd bitmapDrawer, area geom.Rect, cs iter.Seq[colors.RGB565]) error {
	n := int(area.Size.Area())
	if cap(dv.bmp) < n {
		dv.bmp = make([]uint16, n)
	}
	buf := dv.bmp[:n]
	i := 0
	for c := range cs {
		if i >= n {
			break
		}
		buf[i] = uint16(c)
		i++
	}
	w := int(area.Size.W)
	rows := i / w
	x, y := int16(area.TopLeft.X), int16(area.TopLeft.Y)
	if rows > 0 {
		if err := bd.DrawRGBBitmap(x, y, buf[:rows*w], int16(w), int16(rows)); err != nil {
			return err
		}
	}
	for j := rows * w; j < i; j++ {
		dv.d.SetPixel(x+int16(j%w), y+int16(j/w), colors.RGB565(buf[j]).RGBA8())
	}
	return nil
}

func (dv *Device) FillSolid(area geom.Rect, c colors.RGB565) error {
	clip := area.Intersect(dv.BoundingBox())
	if clip.IsEmpty() {
		return nil
	}
	if rf, ok := dv.d.(rectFiller); ok {
		return rf.FillRectangle(int16(clip.TopLeft.X), int16(clip.TopLeft.Y),
			int16(clip.Size.W), int16(clip.Size.H), c.RGBA8())
	}
	rgba := c.RGBA8()
	for y := clip.TopLeft.Y; y < clip.Bottom(); y++ {
		for x := clip.TopLeft.X; x < clip.Right(); x++ {
			dv.d.SetPixel(int16(x), int16(y), rgba)
		}
	}
	return nil
}

// Present pushes the driver's buffer to the panel.
func (dv *Device) Present() error { return dv.d.Display() }
