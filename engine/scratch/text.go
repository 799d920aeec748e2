package scratch

import (
	"strconv"
	"unicode/utf8"
	"unsafe"
)

// Text is a fixed-capacity UTF-8 buffer. Appends that would exceed the
// capacity are rejected instead of growing, so the backing array is
// allocated exactly once.
//
//	var t scratch.Text = scratch.NewText(32)
//	t.Reset().S("Clicked ").I(n).S(" times")
//	ctx.Add(ui.Label[C](t.View()))
type Text struct {
	buf []byte
}

func NewText(capacity int) Text {
	if capacity <= 0 {
		capacity = 16
	}
	return Text{buf: make([]byte, 0, capacity)}
}

func (t *Text) Len() int      { return len(t.buf) }
func (t *Text) Cap() int      { return cap(t.buf) }
func (t *Text) IsEmpty() bool { return len(t.buf) == 0 }

// Reset empties the buffer and returns it for chaining.
func (t *Text) Reset() *Text {
	t.buf = t.buf[:0]
	return t
}

// String returns a copy of the contents.
func (t *Text) String() string { return string(t.buf) }

// View returns the contents without copying. Valid until the next mutation.
func (t *Text) View() string {
	if len(t.buf) == 0 {
		return ""
	}
	return unsafe.String(&t.buf[0], len(t.buf))
}

func (t *Text) Bytes() []byte { return t.buf }

func (t *Text) fits(n int) bool { return len(t.buf)+n <= cap(t.buf) }

// Push appends one rune; it reports false when the buffer is full.
func (t *Text) Push(r rune) bool {
	n := utf8.RuneLen(r)
	if n < 0 || !t.fits(n) {
		return false
	}
	t.buf = utf8.AppendRune(t.buf, r)
	return true
}

// PushStr appends s whole or not at all.
func (t *Text) PushStr(s string) bool {
	if !t.fits(len(s)) {
		return false
	}
	t.buf = append(t.buf, s...)
	return true
}

// Pop removes and returns the last rune.
func (t *Text) Pop() (rune, bool) {
	if len(t.buf) == 0 {
		return 0, false
	}
	r, n := utf8.DecodeLastRune(t.buf)
	t.buf = t.buf[:len(t.buf)-n]
	return r, true
}

// ----- chainable appenders; overflow is dropped -----

func (t *Text) S(s string) *Text {
	t.PushStr(s)
	return t
}

func (t *Text) R(r rune) *Text {
	t.Push(r)
	return t
}

func (t *Text) I(v int) *Text {
	var tmp [20]byte
	d := strconv.AppendInt(tmp[:0], int64(v), 10)
	if t.fits(len(d)) {
		t.buf = append(t.buf, d...)
	}
	return t
}
