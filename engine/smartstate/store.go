package smartstate

import "fmt"

// Store is a fixed-length run of tokens consumed in add order via Next.
// Call RestartCounter at the top of every frame.
type Store struct {
	states []Token
	pos    int
}

// NewStore allocates n tokens once; the store never grows.
func NewStore(n int) *Store {
	return &Store{states: make([]Token, n)}
}

// Next returns the token at the cursor and advances.
func (s *Store) Next() *Token {
	if s.pos >= len(s.states) {
		panic(fmt.Sprintf("smartstate store too small (%d tokens): increase its size", len(s.states)))
	}
	t := &s.states[s.pos]
	s.pos++
	return t
}

// Current is the token most recently returned by Next.
func (s *Store) Current() *Token { return s.Get(s.pos - 1) }

// Prev is the token before Current.
func (s *Store) Prev() *Token { return s.Get(s.pos - 2) }

// Peek returns the token Next would return, without advancing.
func (s *Store) Peek() *Token { return s.Get(s.pos) }

// Get returns the token at absolute index i; out of range panics.
func (s *Store) Get(i int) *Token {
	if i < 0 || i >= len(s.states) {
		panic(fmt.Sprintf("smartstate index %d out of range [0,%d)", i, len(s.states)))
	}
	return &s.states[i]
}

// GetRelative returns the token at cursor+off.
func (s *Store) GetRelative(off int) *Token { return s.Get(s.pos + off) }

// Skip advances the cursor by n without touching tokens, for widgets that
// are conditionally omitted this frame.
func (s *Store) Skip(n int) {
	if s.pos+n > len(s.states) {
		panic(fmt.Sprintf("smartstate store too small (%d tokens): increase its size", len(s.states)))
	}
	s.pos += n
}

func (s *Store) RestartCounter() { s.pos = 0 }
func (s *Store) Pos() int        { return s.pos }
func (s *Store) Size() int       { return len(s.states) }

func (s *Store) ForceRedrawAll() { s.ForceRedrawRange(0, len(s.states)) }

// ForceRedrawRemaining invalidates every token from the cursor on.
func (s *Store) ForceRedrawRemaining() { s.ForceRedrawFromOffset(0) }

func (s *Store) ForceRedrawFromOffset(off int) { s.ForceRedrawFrom(s.pos + off) }

func (s *Store) ForceRedrawFrom(i int) { s.ForceRedrawRange(i, len(s.states)) }

// ForceRedrawRange invalidates tokens in [start, end), clamped to the store.
func (s *Store) ForceRedrawRange(start, end int) {
	start = max(start, 0)
	end = min(end, len(s.states))
	for i := start; i < end; i++ {
		s.states[i].ForceRedraw()
	}
}

// ForceRedrawRangeRelative is ForceRedrawRange with both ends relative to the cursor.
func (s *Store) ForceRedrawRangeRelative(start, end int) {
	s.ForceRedrawRange(s.pos+start, s.pos+end)
}
