package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"

	"github.com/hubastard/sprout/engine/assets"
	"github.com/hubastard/sprout/engine/colors"
	"github.com/hubastard/sprout/engine/text"
	"github.com/hubastard/sprout/engine/themes"
)

// Config is the simulator.toml layout. Flags override it.
type Config struct {
	Display DisplayConfig  `toml:"display"`
	Theme   string         `toml:"theme"`
	Demo    string         `toml:"demo"`
	Layout  string         `toml:"keyboard_layout"`
	VSync   bool           `toml:"vsync"`
	Driver  bool           `toml:"driver"` // draw through display.Device
	LogFile string         `toml:"log_file"`
	Font    FontConfig     `toml:"font"`
	Icon    string         `toml:"icon"` // PNG shown by the widgets demo
	Palette themes.Palette `toml:"palette"`
}

type DisplayConfig struct {
	Width  int    `toml:"width"`
	Height int    `toml:"height"`
	Scale  uint32 `toml:"scale"` // 0 fits the window
}

type FontConfig struct {
	// Name is "basic", "gomono", "tomthumb" or a path to a TTF/OTF file.
	Name string  `toml:"name"`
	Size float64 `toml:"size"`
}

func defaultConfig() Config {
	return Config{
		Display: DisplayConfig{Width: 320, Height: 240, Scale: 3},
		Theme:   "dark",
		Demo:    "widgets",
		Layout:  "qwerty",
		VSync:   true,
		Font:    FontConfig{Name: "basic", Size: 12},
	}
}

// loadConfig reads path over the defaults. An empty path or a missing file
// keeps the defaults.
func loadConfig(path string) (Config, error) {
	cfg := defaultConfig()
	if path == "" {
		return cfg, nil
	}
	b, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if err := toml.Unmarshal(b, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, cfg.validate()
}

func (c Config) validate() error {
	if c.Display.Width <= 0 || c.Display.Height <= 0 {
		return fmt.Errorf("config: display must be positive, got %dx%d", c.Display.Width, c.Display.Height)
	}
	if c.Display.Width > 0x7fff || c.Display.Height > 0x7fff {
		return fmt.Errorf("config: display %dx%d is larger than a panel can address", c.Display.Width, c.Display.Height)
	}
	if _, ok := demos[c.Demo]; !ok {
		return fmt.Errorf("config: unknown demo %q", c.Demo)
	}
	return nil
}

// style resolves the theme, palette overrides and font.
func (c Config) style() (themes.Style, error) {
	st, err := themes.ByName(c.Theme)
	if err != nil {
		return st, err
	}
	if st, err = themes.Apply(st, c.Palette); err != nil {
		return st, err
	}
	f, err := c.font()
	if err != nil {
		return st, err
	}
	if f != nil {
		st.Font = f
	}
	return st, nil
}

// font returns nil for the theme's own font.
func (c Config) font() (text.Font[colors.RGB565], error) {
	switch c.Font.Name {
	case "", "basic":
		return nil, nil
	case "gomono":
		return text.GoMono[colors.RGB565](c.Font.Size)
	case "tomthumb":
		return text.TomThumb[colors.RGB565](), nil
	}
	return assets.LoadFont[colors.RGB565](c.Font.Name, c.Font.Size)
}
