// Package icons rasterises Material Design IconVG icons into one-bit masks
// at the four sizes the widgets use.
package icons

import (
	"fmt"
	"image"
	"image/draw"
	"sync"

	"golang.org/x/exp/shiny/iconvg"
	"golang.org/x/exp/shiny/materialdesign/icons"

	"github.com/hubastard/sprout/engine/gfx"
)

type Name uint8

const (
	Check Name = iota
	ExpandMore
	Backspace
	Shift
	KeyboardHide
	Add
	Remove
	Settings
	Home
	numNames
)

var names = [numNames]string{
	Check:        "check",
	ExpandMore:   "expand-more",
	Backspace:    "backspace",
	Shift:        "shift",
	KeyboardHide: "keyboard-hide",
	Add:          "add",
	Remove:       "remove",
	Settings:     "settings",
	Home:         "home",
}

var sources = [numNames][]byte{
	Check:        icons.NavigationCheck,
	ExpandMore:   icons.NavigationExpandMore,
	Backspace:    icons.ContentBackspace,
	Shift:        icons.NavigationArrowUpward,
	KeyboardHide: icons.HardwareKeyboardHide,
	Add:          icons.ContentAdd,
	Remove:       icons.ContentRemove,
	Settings:     icons.ActionSettings,
	Home:         icons.ActionHome,
}

func (n Name) String() string {
	if n < numNames {
		return names[n]
	}
	return fmt.Sprintf("icon(%d)", uint8(n))
}

// Lookup finds an icon by its String name.
func Lookup(s string) (Name, bool) {
	for i, n := range names {
		if n == s {
			return Name(i), true
		}
	}
	return 0, false
}

// Sizes are the pixel sizes icons are baked at, smallest first.
var Sizes = [...]uint32{12, 18, 24, 32}

// Variant picks the largest baked size that fits in avail, falling back to
// the smallest one.
func Variant(avail uint32) uint32 {
	best := Sizes[0]
	for _, s := range Sizes {
		if s <= avail {
			best = s
		}
	}
	return best
}

// Rasterize renders IconVG data into a size×size mask.
func Rasterize(data []byte, size uint32) (*gfx.Mask, error) {
	if size == 0 {
		return nil, fmt.Errorf("rasterize icon: zero size")
	}
	dst := image.NewAlpha(image.Rect(0, 0, int(size), int(size)))
	var z iconvg.Rasterizer
	z.SetDstImage(dst, dst.Bounds(), draw.Src)
	if err := iconvg.Decode(&z, data, nil); err != nil {
		return nil, fmt.Errorf("rasterize icon: %w", err)
	}
	return gfx.MaskFromAlpha(dst), nil
}

type key struct {
	name Name
	size uint32
}

// Cache keeps rasterised masks so each name/size pair is decoded once.
type Cache struct {
	mu    sync.Mutex
	masks map[key]*gfx.Mask
}

// Get returns the mask for n at Variant(size). Built-in icons always decode,
// so an error here means the embedded data is corrupt and Get panics.
func (c *Cache) Get(n Name, size uint32) *gfx.Mask {
	if n >= numNames {
		panic(fmt.Sprintf("unknown %v", n))
	}
	k := key{n, Variant(size)}

	c.mu.Lock()
	defer c.mu.Unlock()
	if m, ok := c.masks[k]; ok {
		return m
	}
	m, err := Rasterize(sources[n], k.size)
	if err != nil {
		panic(fmt.Sprintf("%v: %v", n, err))
	}
	if c.masks == nil {
		c.masks = make(map[key]*gfx.Mask)
	}
	c.masks[k] = m
	return m
}

func (c *Cache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.masks)
}

var defaultCache Cache

// Get reads from the package-wide cache.
func Get(n Name, size uint32) *gfx.Mask { return defaultCache.Get(n, size) }
