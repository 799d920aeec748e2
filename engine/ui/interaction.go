package ui

import (
	"fmt"

	"github.com/hubastard/sprout/engine/geom"
)

type Kind uint8

const (
	None Kind = iota
	Hover
	Click
	Drag
	Release
)

func (k Kind) String() string {
	switch k {
	case Hover:
		return "hover"
	case Click:
		return "click"
	case Drag:
		return "drag"
	case Release:
		return "release"
	}
	return "none"
}

// Interaction is the single pointer event of a frame.
type Interaction struct {
	Kind Kind
	At   geom.Point
}

func NoInteraction() Interaction         { return Interaction{} }
func HoverAt(p geom.Point) Interaction   { return Interaction{Hover, p} }
func ClickAt(p geom.Point) Interaction   { return Interaction{Click, p} }
func DragAt(p geom.Point) Interaction    { return Interaction{Drag, p} }
func ReleaseAt(p geom.Point) Interaction { return Interaction{Release, p} }

// Point returns the pointer position; false for None.
func (i Interaction) Point() (geom.Point, bool) {
	if i.Kind == None {
		return geom.Point{}, false
	}
	return i.At, true
}

// Pressed is true for Click and Drag.
func (i Interaction) Pressed() bool { return i.Kind == Click || i.Kind == Drag }

// WithPoint keeps the kind and moves the point. None stays None.
func (i Interaction) WithPoint(p geom.Point) Interaction {
	if i.Kind == None {
		return i
	}
	return Interaction{i.Kind, p}
}

func (i Interaction) String() string {
	if i.Kind == None {
		return "none"
	}
	return fmt.Sprintf("%v(%d,%d)", i.Kind, i.At.X, i.At.Y)
}
