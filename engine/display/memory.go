package display

import (
	"image"
	"image/color"
	"iter"

	"github.com/hubastard/sprout/engine/colors"
	"github.com/hubastard/sprout/engine/geom"
	"github.com/hubastard/sprout/engine/gfx"
)

// Memory is an in-memory RGB565 canvas. It is the simulator's back buffer and
// the target used by tests; it also satisfies drivers.Displayer and image.Image.
type Memory struct {
	W, H int
	Pix  []colors.RGB565

	// Writes counts pixels written since the last ResetStats.
	Writes int
	// Fills counts FillContiguous calls since the last ResetStats.
	Fills int
	// Presents counts Display calls.
	Presents int
}

func NewMemory(w, h int) *Memory {
	return &Memory{W: w, H: h, Pix: make([]colors.RGB565, w*h)}
}

func (m *Memory) BoundingBox() geom.Rect { return geom.R(0, 0, uint32(m.W), uint32(m.H)) }

func (m *Memory) set(x, y int32, c colors.RGB565) {
	m.Writes++
	if x < 0 || y < 0 || int(x) >= m.W || int(y) >= m.H {
		return
	}
	m.Pix[int(y)*m.W+int(x)] = c
}

func (m *Memory) DrawIter(pixels iter.Seq[gfx.Pixel[colors.RGB565]]) error {
	for p := range pixels {
		m.set(p.Point.X, p.Point.Y, p.Color)
	}
	return nil
}

func (m *Memory) FillContiguous(area geom.Rect, cs iter.Seq[colors.RGB565]) error {
	m.Fills++
	if area.IsEmpty() {
		return nil
	}
	w := int32(area.Size.W)
	n := int32(area.Size.Area())
	var i int32
	for c := range cs {
		if i >= n {
			break
		}
		m.set(area.TopLeft.X+i%w, area.TopLeft.Y+i/w, c)
		i++
	}
	return nil
}

func (m *Memory) FillSolid(area geom.Rect, c colors.RGB565) error {
	m.Fills++
	clip := area.Intersect(m.BoundingBox())
	m.Writes += area.Size.Area()
	for y := clip.TopLeft.Y; y < clip.Bottom(); y++ {
		row := int(y) * m.W
		for x := clip.TopLeft.X; x < clip.Right(); x++ {
			m.Pix[row+int(x)] = c
		}
	}
	return nil
}

// Pixel returns the colour at (x,y); out of range reads are black.
func (m *Memory) Pixel(x, y int) colors.RGB565 {
	if x < 0 || y < 0 || x >= m.W || y >= m.H {
		return colors.Black
	}
	return m.Pix[y*m.W+x]
}

func (m *Memory) Clear(c colors.RGB565) {
	for i := range m.Pix {
		m.Pix[i] = c
	}
}

// Count returns how many pixels inside area hold colour c.
func (m *Memory) Count(area geom.Rect, c colors.RGB565) int {
	clip := area.Intersect(m.BoundingBox())
	n := 0
	for y := clip.TopLeft.Y; y < clip.Bottom(); y++ {
		for x := clip.TopLeft.X; x < clip.Right(); x++ {
			if m.Pix[int(y)*m.W+int(x)] == c {
				n++
			}
		}
	}
	return n
}

func (m *Memory) ResetStats() { m.Writes, m.Fills = 0, 0 }

// ===== image.Image =====

func (m *Memory) ColorModel() color.Model { return colors.Model }
func (m *Memory) Bounds() image.Rectangle { return image.Rect(0, 0, m.W, m.H) }
func (m *Memory) At(x, y int) color.Color { return m.Pixel(x, y) }

// ===== drivers.Displayer =====

func (m *Memory) Size() (x, y int16) { return int16(m.W), int16(m.H) }

func (m *Memory) SetPixel(x, y int16, c color.RGBA) {
	m.set(int32(x), int32(y), colors.RGB(c.R, c.G, c.B))
}

func (m *Memory) Display() error {
	m.Presents++
	return nil
}
