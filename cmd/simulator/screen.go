package main

import (
	"fmt"
	"log"

	"github.com/hubastard/sprout/engine/assets"
	"github.com/hubastard/sprout/engine/colors"
	"github.com/hubastard/sprout/engine/display"
	"github.com/hubastard/sprout/engine/gfx"
	"github.com/hubastard/sprout/engine/profiler"
	"github.com/hubastard/sprout/engine/themes"
	"github.com/hubastard/sprout/engine/ui"
	"github.com/hubastard/sprout/engine/ui/keyboard"
)

// screen is the emulated panel: an RGB565 canvas, the target widgets draw
// to and the demo that fills it.
type screen struct {
	canvas  *display.Memory
	target  gfx.Target[px]
	present func() error
	style   themes.Style
	demo    demo
	buf     []px // painter scratch buffer

	fresh   bool
	debug   bool
	lastErr string

	// Writes is the pixel count of the last frame.
	Writes int
}

func newScreen(cfg Config) (*screen, error) {
	st, err := cfg.style()
	if err != nil {
		return nil, err
	}
	layout, ok := keyboard.ByName(cfg.Layout)
	if !ok {
		return nil, fmt.Errorf("unknown keyboard layout %q", cfg.Layout)
	}
	env := demoEnv{layout: layout, width: cfg.Display.Width}
	if cfg.Icon != "" {
		if env.icon, err = assets.LoadMask(cfg.Icon, 18); err != nil {
			return nil, err
		}
	}
	mk, ok := demos[cfg.Demo]
	if !ok {
		return nil, fmt.Errorf("unknown demo %q", cfg.Demo)
	}

	s := &screen{
		canvas: display.NewMemory(cfg.Display.Width, cfg.Display.Height),
		style:  st,
		demo:   mk(env),
		buf:    make([]px, cfg.Display.Width*48),
		fresh:  true,
	}
	s.target = s.canvas
	if cfg.Driver {
		dev := display.NewDevice(s.canvas)
		s.target, s.present = dev, dev.Present
	}
	return s, nil
}

// Frame builds one UI frame with the given pointer interaction.
func (s *screen) Frame(i ui.Interaction) error {
	defer profiler.Start("ui.frame")()

	s.canvas.ResetStats()
	u := ui.NewFullscreen(s.target, s.style)
	u.SetBuffer(s.buf)
	u.Interact(i)
	if s.debug {
		u.DrawWidgetBoundsDebug(colors.Magenta)
	}
	if s.fresh {
		s.fresh = false
		s.demo.Wiped()
		if err := u.ClearBackground(); err != nil {
			return err
		}
	}

	err := s.demo.Frame(u)
	s.Writes = s.canvas.Writes
	if s.present != nil {
		if perr := s.present(); perr != nil {
			return perr
		}
	}
	return err
}

// Repaint wipes the canvas and redraws everything on the next frame.
func (s *screen) Repaint() { s.fresh = true }

// ToggleDebug outlines widget bounds from the next full repaint.
func (s *screen) ToggleDebug() {
	s.debug = !s.debug
	s.Repaint()
}

// step runs a frame and logs widget errors once per change, so a broken
// layout does not flood the log at 60 Hz.
func (s *screen) step(i ui.Interaction) {
	msg := ""
	if err := s.Frame(i); err != nil {
		msg = err.Error()
	}
	if msg != s.lastErr && msg != "" {
		log.Printf("frame: %s", msg)
	}
	s.lastErr = msg
}
