package ui

import (
	"errors"

	"github.com/hubastard/sprout/engine/geom"
)

var (
	// ErrNoSpaceLeft means an allocation did not fit even after wrapping.
	ErrNoSpaceLeft = errors.New("no space left")
	// ErrBounds means a sub-region was larger than its parent.
	ErrBounds = errors.New("region exceeds parent bounds")
)

// DrawError reports a failure from the pixel target. Msg may be empty.
type DrawError struct {
	Msg string
	Err error
}

func (e *DrawError) Error() string {
	switch {
	case e.Msg == "" && e.Err == nil:
		return "draw error"
	case e.Err == nil:
		return "draw error: " + e.Msg
	case e.Msg == "":
		return "draw error: " + e.Err.Error()
	}
	return "draw error: " + e.Msg + ": " + e.Err.Error()
}

func (e *DrawError) Unwrap() error { return e.Err }

func drawErr(msg string, err error) error { return &DrawError{Msg: msg, Err: err} }

// InternalResponse is what a widget gets back from the allocator.
type InternalResponse struct {
	Area        geom.Rect
	Interaction Interaction
}

// Response is returned from Add and friends for every widget.
type Response struct {
	Internal InternalResponse
	Clicked  bool
	Down     bool
	Changed  bool
	Redraw   bool
	Err      error
}

func NewResponse(ir InternalResponse) Response {
	return Response{Internal: ir, Redraw: true}
}

// ResponseFromError packages a failed widget draw so the frame can go on.
func ResponseFromError(err error) Response {
	return Response{Redraw: true, Err: err}
}

func (r Response) Error() error { return r.Err }
