package core

// Layer is a slice of the simulator that sees every tick and event.
// OnEvent returns true to stop the event going further down.
type Layer interface {
	OnAttach(e *Engine)
	OnDetach(e *Engine)
	OnUpdate(e *Engine, dt float64)
	OnRender(e *Engine, alpha float64)
	OnEvent(e *Engine, ev Event) bool
}

// LayerStack updates and renders bottom-up and dispatches events top-down.
type LayerStack []Layer

func (ls *LayerStack) Push(l Layer) { *ls = append(*ls, l) }

func (ls *LayerStack) Pop() (Layer, bool) {
	n := len(*ls)
	if n == 0 {
		return nil, false
	}
	l := (*ls)[n-1]
	*ls = (*ls)[:n-1]
	return l, true
}

// Dispatch offers ev from the top and reports whether a layer took it.
func (ls LayerStack) Dispatch(e *Engine, ev Event) bool {
	for i := len(ls) - 1; i >= 0; i-- {
		if ls[i].OnEvent(e, ev) {
			return true
		}
	}
	return false
}

func (ls LayerStack) update(e *Engine, dt float64) {
	for _, l := range ls {
		l.OnUpdate(e, dt)
	}
}

func (ls LayerStack) render(e *Engine, alpha float64) {
	for _, l := range ls {
		l.OnRender(e, alpha)
	}
}

func (ls LayerStack) attach(e *Engine) {
	for _, l := range ls {
		l.OnAttach(e)
	}
}

func (ls LayerStack) detach(e *Engine) {
	for i := len(ls) - 1; i >= 0; i-- {
		ls[i].OnDetach(e)
	}
}
