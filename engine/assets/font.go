package assets

import (
	"fmt"
	"os"

	"github.com/hubastard/sprout/engine/text"
)

// LoadFont reads a TrueType or OpenType file and rasterizes it at sizePx.
func LoadFont[C comparable](path string, sizePx float64) (*text.Face[C], error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("load font %q: %w", path, err)
	}
	f, err := text.LoadTTF[C](data, sizePx)
	if err != nil {
		return nil, fmt.Errorf("load font %q: %w", path, err)
	}
	return f, nil
}
