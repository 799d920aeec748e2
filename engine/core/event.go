package core

// Event is one of the types below; the platform layer translates its own
// callbacks into them.
type Event interface{ event() }

type (
	EventCloseRequested struct{}
	EventResize         struct{ W, H int }

	EventKey struct {
		Key  Key
		Down bool
		Mods Mod
	}

	// EventMouseMove is in framebuffer pixels.
	EventMouseMove struct{ X, Y float64 }

	// EventMouseButton is the primary button only; a touch panel has one.
	EventMouseButton struct{ Down bool }
)

func (EventCloseRequested) event() {}
func (EventResize) event()         {}
func (EventKey) event()            {}
func (EventMouseMove) event()      {}
func (EventMouseButton) event()    {}

// Key lists the keys the simulator binds.
type Key uint8

const (
	KeyUnknown Key = iota
	KeyEscape
	KeyD
	KeyP
	KeyS
)

type Mod uint8

const (
	ModShift Mod = 1 << iota
	ModCtrl
	ModAlt
	ModSuper
)

// Ctrl reports whether the key went down with Control held.
func (k EventKey) Ctrl(key Key) bool { return k.Down && k.Key == key && k.Mods&ModCtrl != 0 }
