package main

import (
	"fmt"
	"log"
	"time"

	"github.com/hubastard/sprout/engine/core"
	"github.com/hubastard/sprout/engine/profiler"
	"github.com/hubastard/sprout/engine/scene"
)

// App is the windowed simulator. The real work happens in its layers.
type App struct {
	screen *screen
	vp     *scene.Viewport
	title  string
}

func newApp(s *screen, scale uint32, title string) *App {
	return &App{screen: s, vp: scene.NewViewport(s.canvas.BoundingBox().Size, scale), title: title}
}

func (a *App) OnStart(e *core.Engine) {
	profiler.Init(1 << 16)
	a.vp.Fit(e.Window.FramebufferSize())
	e.Layers.Push(&demoLayer{screen: a.screen, vp: a.vp})
	e.Layers.Push(&statsLayer{screen: a.screen, title: a.title})
}

func (a *App) OnUpdate(e *core.Engine, dt float64)    {}
func (a *App) OnRender(e *core.Engine, alpha float64) {}
func (a *App) OnShutdown(e *core.Engine)              {}

func (a *App) OnEvent(e *core.Engine, ev core.Event) {
	switch v := ev.(type) {
	case core.EventResize:
		a.vp.Fit(v.W, v.H)
	case core.EventCloseRequested:
		e.Window.RequestClose()
	}
}

// ------- Demo layer: one UI frame per tick, blitted on render -------

type demoLayer struct {
	screen *screen
	vp     *scene.Viewport
}

func (l *demoLayer) OnAttach(e *core.Engine) {}
func (l *demoLayer) OnDetach(e *core.Engine) {}

func (l *demoLayer) OnUpdate(e *core.Engine, dt float64) {
	l.screen.step(e.Input.Interaction(l.vp.ToCanvas))
}

func (l *demoLayer) OnRender(e *core.Engine, alpha float64) {
	defer profiler.Start("present")()
	c := l.screen.canvas
	if err := e.Renderer.Blit(c.Pix, c.W, c.H, l.vp.Dest()); err != nil {
		log.Printf("present: %v", err)
	}
}

func (l *demoLayer) OnEvent(e *core.Engine, ev core.Event) bool { return false }

// ------- Stats layer: title bar statistics and hotkeys -------

type statsLayer struct {
	screen *screen
	title  string
	last   time.Time
	frames int
	writes int
}

func (l *statsLayer) OnAttach(e *core.Engine) { l.last = time.Now() }
func (l *statsLayer) OnDetach(e *core.Engine) {}

func (l *statsLayer) OnUpdate(e *core.Engine, dt float64) {
	l.frames++
	l.writes += l.screen.Writes
	if l.frames < 30 {
		return
	}
	now := time.Now()
	ms := float64(now.Sub(l.last).Microseconds()) / 1000 / float64(l.frames)
	heap, _ := profiler.Memory()
	e.Window.SetTitle(fmt.Sprintf("%s | %.2f ms | %d px/frame | %.1f MB",
		l.title, ms, l.writes/l.frames, float64(heap)/(1<<20)))
	l.last, l.frames, l.writes = now, 0, 0
}

func (l *statsLayer) OnRender(e *core.Engine, alpha float64) {}

func (l *statsLayer) OnEvent(e *core.Engine, ev core.Event) bool {
	k, ok := ev.(core.EventKey)
	if !ok || !k.Down {
		return false
	}
	switch {
	case k.Key == core.KeyEscape:
		e.Window.RequestClose()
	case k.Ctrl(core.KeyP):
		if path, err := profiler.OpenProfilerGraph(); err == nil {
			log.Println("speedscope dump:", path)
		} else {
			log.Println("profiler dump error:", err)
		}
	case k.Ctrl(core.KeyD):
		l.screen.ToggleDebug()
	case k.Ctrl(core.KeyS):
		path := fmt.Sprintf("sprout-%d.png", time.Now().Unix())
		if err := writePNG(l.screen.canvas, path); err != nil {
			log.Println("screenshot:", err)
		} else {
			log.Println("screenshot:", path)
		}
	default:
		return false
	}
	return true
}
