package core

import (
	"log"
	"runtime"
	"time"

	"github.com/hubastard/sprout/engine/profiler"
)

// Tick is the UI frame period, matching a 60 Hz panel.
const Tick = time.Second / 60

// maxCatchUp bounds the ticks run after a stall.
const maxCatchUp = 10

// Run opens the window and renderer and drives app until the window closes.
func Run(app App, cfg Config, newWindow func(Config) (Window, error), newRenderer func(Window, Config) (Renderer, error)) error {
	// GL contexts belong to the main OS thread.
	runtime.LockOSThread()

	win, err := newWindow(cfg)
	if err != nil {
		return err
	}
	rend, err := newRenderer(win, cfg)
	if err != nil {
		return err
	}
	defer rend.Shutdown()
	rend.Resize(win.FramebufferSize())

	e := &Engine{Window: win, Renderer: rend, Input: NewInput(), started: time.Now()}
	win.SetEventCallback(func(ev Event) {
		if r, ok := ev.(EventResize); ok && r.W > 0 && r.H > 0 {
			rend.Resize(win.FramebufferSize())
		}
		if e.Layers.Dispatch(e, ev) {
			return
		}
		e.Input.Handle(ev)
		app.OnEvent(e, ev)
	})

	app.OnStart(e)
	e.Layers.attach(e)

	var (
		dt    = Tick.Seconds()
		accum time.Duration
		prev  = time.Now()
	)
	for !win.ShouldClose() {
		now := time.Now()
		accum += now.Sub(prev)
		prev = now

		win.PollEvents()

		for n := 0; accum >= Tick && n < maxCatchUp; n++ {
			end := profiler.Start("tick")
			app.OnUpdate(e, dt)
			e.Layers.update(e, dt)
			end()
			accum -= Tick
			e.ticks++
		}
		alpha := float64(accum) / float64(Tick)

		end := profiler.Start("render")
		c := cfg.ClearColor
		rend.Clear(c[0], c[1], c[2], c[3])
		app.OnRender(e, alpha)
		e.Layers.render(e, alpha)
		end()

		win.SwapBuffers()
	}

	e.Layers.detach(e)
	app.OnShutdown(e)
	log.Println("simulator exit")
	return nil
}
