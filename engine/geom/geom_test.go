package geom

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSizeSaturatingSub(t *testing.T) {
	assert.Equal(t, Sz(0, 3), Sz(4, 5).SaturatingSub(Sz(9, 2)))
	assert.Equal(t, Sz(0, 0), Sz(0, 0).SaturatingSub(Sz(1, 1)))
}

func TestRectContainsIsHalfOpen(t *testing.T) {
	r := R(10, 10, 5, 5)
	assert.True(t, r.Contains(Pt(10, 10)))
	assert.True(t, r.Contains(Pt(14, 14)))
	assert.False(t, r.Contains(Pt(15, 14)))
	assert.False(t, r.Contains(Pt(14, 15)))
	assert.False(t, r.Contains(Pt(9, 12)))
}

func TestRectInsetOutset(t *testing.T) {
	r := R(0, 0, 100, 50)
	in := r.Inset(Sz(3, 3))
	assert.Equal(t, R(3, 3, 94, 44), in)
	assert.Equal(t, r, in.Outset(Sz(3, 3)))

	tiny := R(0, 0, 4, 4).Inset(Sz(3, 3))
	assert.Equal(t, Sz(0, 0), tiny.Size)
}

func TestRectIntersect(t *testing.T) {
	a := R(0, 0, 10, 10)
	b := R(5, 6, 10, 10)
	assert.Equal(t, R(5, 6, 5, 4), a.Intersect(b))
	assert.True(t, a.Intersect(R(20, 20, 2, 2)).IsEmpty())
}
