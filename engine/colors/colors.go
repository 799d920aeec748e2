package colors

import (
	"fmt"
	"image/color"

	"github.com/lucasb-eyer/go-colorful"
)

// RGB565 is a 16-bit colour, 5 bits red, 6 bits green, 5 bits blue,
// laid out the way SPI display controllers expect it.
type RGB565 uint16

// New565 packs raw channel values (r,b in 0..31, g in 0..63).
func New565(r, g, b uint8) RGB565 {
	return RGB565(uint16(r&0x1F)<<11 | uint16(g&0x3F)<<5 | uint16(b&0x1F))
}

// RGB converts an 8-bit-per-channel colour.
func RGB(r, g, b uint8) RGB565 { return New565(r>>3, g>>2, b>>3) }

func (c RGB565) R() uint8 { return uint8(c>>11) & 0x1F }
func (c RGB565) G() uint8 { return uint8(c>>5) & 0x3F }
func (c RGB565) B() uint8 { return uint8(c) & 0x1F }

// RGBA8 expands the colour to 8 bits per channel, replicating high bits into the low ones.
func (c RGB565) RGBA8() color.RGBA {
	r, g, b := c.R(), c.G(), c.B()
	return color.RGBA{R: r<<3 | r>>2, G: g<<2 | g>>4, B: b<<3 | b>>2, A: 0xFF}
}

// RGBA implements color.Color.
func (c RGB565) RGBA() (r, g, b, a uint32) { return c.RGBA8().RGBA() }

func (c RGB565) String() string {
	x := c.RGBA8()
	return fmt.Sprintf("#%02x%02x%02x", x.R, x.G, x.B)
}

// Model converts any color.Color to RGB565.
var Model = color.ModelFunc(func(c color.Color) color.Color {
	if v, ok := c.(RGB565); ok {
		return v
	}
	return FromColor(c)
})

func FromColor(c color.Color) RGB565 {
	r, g, b, _ := c.RGBA()
	return RGB(uint8(r>>8), uint8(g>>8), uint8(b>>8))
}

// ===== go-colorful bridges =====

func (c RGB565) colorful() colorful.Color {
	cf, _ := colorful.MakeColor(c.RGBA8())
	return cf
}

func fromColorful(cf colorful.Color) RGB565 {
	r, g, b := cf.Clamped().RGB255()
	return RGB(r, g, b)
}

// Blend mixes a towards b in Lab space; t=0 is a, t=1 is b.
func Blend(a, b RGB565, t float64) RGB565 {
	return fromColorful(a.colorful().BlendLab(b.colorful(), t))
}

// Hex parses "#rrggbb" (or "#rgb").
func Hex(s string) (RGB565, error) {
	cf, err := colorful.Hex(s)
	if err != nil {
		return 0, fmt.Errorf("parse colour %q: %w", s, err)
	}
	return fromColorful(cf), nil
}

// Muted returns a greyed-out version of c, used for disabled widgets.
func Muted(c RGB565) RGB565 {
	h, s, l := c.colorful().Hsl()
	return fromColorful(colorful.Hsl(h, s*0.25, l*0.7+0.15))
}
