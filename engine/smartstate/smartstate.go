// Package smartstate implements per-widget redraw tokens.
//
// Each widget owns one Token per frame. It stores an id describing the
// widget's last drawn visual state; when the id a widget computes this frame
// differs from the stored one, the widget redraws. Tokens live in a Store owned
// by the application and survive across frames.
package smartstate

import (
	"hash"
	"hash/fnv"
)

type Token struct {
	id    uint32
	valid bool
}

// State returns a valid token with the given id.
func State(id uint32) Token { return Token{id: id, valid: true} }

// Empty returns a token that compares unequal to everything.
func Empty() Token { return Token{} }

// Equal is true only when both tokens are valid and carry the same id.
// An empty token is never equal to anything, including another empty token.
func (t Token) Equal(o Token) bool { return t.valid && o.valid && t.id == o.id }

func (t Token) IsState(id uint32) bool { return t.valid && t.id == id }
func (t Token) IsEmpty() bool          { return !t.valid }

// ID returns the stored id and whether the token is valid.
func (t Token) ID() (uint32, bool) { return t.id, t.valid }

func (t *Token) Modify(o Token) { *t = o }
func (t *Token) Set(id uint32)  { *t = State(id) }
func (t *Token) ForceRedraw()   { t.valid = false }

// SetHashed sets the id to a 32-bit hash of b. A nil hasher uses FNV-1a.
func (t *Token) SetHashed(h hash.Hash32, b []byte) {
	*t = State(Hash(h, b))
}

// Hash returns the 32-bit hash of b, FNV-1a when h is nil.
func Hash(h hash.Hash32, b []byte) uint32 {
	if h == nil {
		h = fnv.New32a()
	}
	h.Reset()
	h.Write(b)
	return h.Sum32()
}
