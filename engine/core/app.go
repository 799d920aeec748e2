// Package core runs the desktop simulator: a window, a presenter for the
// canvas and a fixed-tick loop driving the app and its layers.
package core

import (
	"time"

	"github.com/hubastard/sprout/engine/colors"
	"github.com/hubastard/sprout/engine/geom"
)

// App receives the simulator lifecycle.
type App interface {
	OnStart(e *Engine)
	// OnUpdate runs once per tick; a UI frame is built here.
	OnUpdate(e *Engine, dt float64)
	// OnRender presents; alpha is how far into the next tick we are.
	OnRender(e *Engine, alpha float64)
	// OnEvent sees the events no layer handled.
	OnEvent(e *Engine, ev Event)
	OnShutdown(e *Engine)
}

// Engine is what the app and layers get to work with.
type Engine struct {
	Window   Window
	Renderer Renderer
	Layers   LayerStack
	Input    *Input

	started time.Time
	ticks   uint64
}

func (e *Engine) Uptime() time.Duration { return time.Since(e.started) }
func (e *Engine) Ticks() uint64         { return e.ticks }

// Window is the platform side: event pump, swap chain and title bar.
type Window interface {
	PollEvents()
	SwapBuffers()
	ShouldClose() bool
	RequestClose()
	FramebufferSize() (int, int)
	SetTitle(title string)
	SetEventCallback(cb func(Event))
}

// Renderer puts an RGB565 canvas on screen.
type Renderer interface {
	Resize(w, h int)
	Clear(r, g, b, a float32)
	// Blit draws a w×h canvas into dst, given in framebuffer pixels with a
	// top-left origin.
	Blit(pix []colors.RGB565, w, h int, dst geom.Rect) error
	Shutdown()
}

// Config sizes and titles the window.
type Config struct {
	Title      string
	Width      int
	Height     int
	VSync      bool
	ClearColor [4]float32 // letterbox colour, RGBA
}
