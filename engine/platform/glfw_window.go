// Package platform opens the simulator window with GLFW.
package platform

import (
	"log"
	"runtime"

	"github.com/go-gl/gl/v3.3-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/hubastard/sprout/engine/core"
)

// GLFWWindow implements core.Window and forwards GLFW callbacks as core
// events.
type GLFWWindow struct {
	w    *glfw.Window
	onEv func(core.Event)
}

var keyMap = map[glfw.Key]core.Key{
	glfw.KeyEscape: core.KeyEscape,
	glfw.KeyD:      core.KeyD,
	glfw.KeyP:      core.KeyP,
	glfw.KeyS:      core.KeyS,
}

var modMap = []struct {
	glfw glfw.ModifierKey
	core core.Mod
}{
	{glfw.ModShift, core.ModShift},
	{glfw.ModControl, core.ModCtrl},
	{glfw.ModAlt, core.ModAlt},
	{glfw.ModSuper, core.ModSuper},
}

// NewGLFWWindow creates the window and its GL 3.3 core context. Call it on
// the main thread before any GL call.
func NewGLFWWindow(cfg core.Config, onEvent func(core.Event)) (*GLFWWindow, error) {
	runtime.LockOSThread()
	if err := glfw.Init(); err != nil {
		return nil, err
	}

	for hint, v := range map[glfw.Hint]int{
		glfw.ContextVersionMajor:     3,
		glfw.ContextVersionMinor:     3,
		glfw.OpenGLProfile:           glfw.OpenGLCoreProfile,
		glfw.OpenGLForwardCompatible: glfw.True, // required on macOS
		glfw.Samples:                 0,
		glfw.Resizable:               glfw.True,
	} {
		glfw.WindowHint(hint, v)
	}

	win, err := glfw.CreateWindow(cfg.Width, cfg.Height, cfg.Title, nil, nil)
	if err != nil {
		glfw.Terminate()
		return nil, err
	}
	win.MakeContextCurrent()
	interval := 0
	if cfg.VSync {
		interval = 1
	}
	glfw.SwapInterval(interval)

	if err := gl.Init(); err != nil {
		return nil, err
	}
	log.Printf("GL: %s", gl.GoStr(gl.GetString(gl.VERSION)))

	g := &GLFWWindow{w: win, onEv: onEvent}
	g.bind()
	return g, nil
}

func (g *GLFWWindow) bind() {
	g.w.SetCloseCallback(func(*glfw.Window) { g.emit(core.EventCloseRequested{}) })
	g.w.SetFramebufferSizeCallback(func(_ *glfw.Window, w, h int) { g.emit(core.EventResize{W: w, H: h}) })
	g.w.SetCursorPosCallback(func(_ *glfw.Window, x, y float64) {
		// The cursor is in screen coordinates, the canvas is placed in
		// framebuffer pixels; they differ on HiDPI displays.
		fw, _ := g.w.GetFramebufferSize()
		if ww, _ := g.w.GetSize(); ww > 0 {
			s := float64(fw) / float64(ww)
			x, y = x*s, y*s
		}
		g.emit(core.EventMouseMove{X: x, Y: y})
	})
	g.w.SetMouseButtonCallback(func(_ *glfw.Window, b glfw.MouseButton, a glfw.Action, _ glfw.ModifierKey) {
		if b == glfw.MouseButtonLeft && a != glfw.Repeat {
			g.emit(core.EventMouseButton{Down: a == glfw.Press})
		}
	})
	g.w.SetKeyCallback(func(_ *glfw.Window, key glfw.Key, _ int, a glfw.Action, mods glfw.ModifierKey) {
		if k, ok := keyMap[key]; ok {
			g.emit(core.EventKey{Key: k, Down: a != glfw.Release, Mods: translateMods(mods)})
		}
	})
}

func (g *GLFWWindow) emit(ev core.Event) {
	if g.onEv != nil {
		g.onEv(ev)
	}
}

// Destroy closes the window and releases GLFW.
func (g *GLFWWindow) Destroy() {
	g.w.Destroy()
	glfw.Terminate()
}

func (g *GLFWWindow) PollEvents()                          { glfw.PollEvents() }
func (g *GLFWWindow) SwapBuffers()                         { g.w.SwapBuffers() }
func (g *GLFWWindow) ShouldClose() bool                    { return g.w.ShouldClose() }
func (g *GLFWWindow) RequestClose()                        { g.w.SetShouldClose(true) }
func (g *GLFWWindow) FramebufferSize() (int, int)          { return g.w.GetFramebufferSize() }
func (g *GLFWWindow) SetTitle(t string)                    { g.w.SetTitle(t) }
func (g *GLFWWindow) SetEventCallback(cb func(core.Event)) { g.onEv = cb }

func translateMods(m glfw.ModifierKey) core.Mod {
	var out core.Mod
	for _, mm := range modMap {
		if m&mm.glfw != 0 {
			out |= mm.core
		}
	}
	return out
}
