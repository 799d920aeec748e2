package assets

import (
	"fmt"
	"image"
	"image/png"
	"os"

	xdraw "golang.org/x/image/draw"

	"github.com/hubastard/sprout/engine/gfx"
)

func decodePNG(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %q: %w", path, err)
	}
	defer f.Close()

	img, err := png.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode png %q: %w", path, err)
	}
	return img, nil
}

// LoadMask turns a PNG's alpha channel into a one-bit mask, for custom
// icons. A side above zero resamples the image to side×side first.
func LoadMask(path string, side uint32) (*gfx.Mask, error) {
	img, err := decodePNG(path)
	if err != nil {
		return nil, err
	}
	src := img.Bounds()
	dst := image.Rect(0, 0, src.Dx(), src.Dy())
	if side > 0 {
		dst = image.Rect(0, 0, int(side), int(side))
	}
	alpha := image.NewAlpha(dst)
	if dst.Size() == src.Size() {
		xdraw.Draw(alpha, dst, img, src.Min, xdraw.Src)
	} else {
		xdraw.BiLinear.Scale(alpha, dst, img, src, xdraw.Src, nil)
	}
	return gfx.MaskFromAlpha(alpha), nil
}
