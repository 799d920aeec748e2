package geom

// Integer geometry shared by the layout, painter and pixel targets.
// Sizes are unsigned and saturate at zero when shrunk.

type Point struct{ X, Y int32 }

func Pt(x, y int32) Point { return Point{x, y} }

func (p Point) Add(o Point) Point { return Point{p.X + o.X, p.Y + o.Y} }
func (p Point) Sub(o Point) Point { return Point{p.X - o.X, p.Y - o.Y} }

type Size struct{ W, H uint32 }

func Sz(w, h uint32) Size { return Size{w, h} }

// SaturatingSub subtracts per axis, stopping at zero.
func (s Size) SaturatingSub(o Size) Size {
	return Size{satSub(s.W, o.W), satSub(s.H, o.H)}
}

func (s Size) Add(o Size) Size    { return Size{s.W + o.W, s.H + o.H} }
func (s Size) Scale(n uint32) Size { return Size{s.W * n, s.H * n} }
func (s Size) Area() int          { return int(s.W) * int(s.H) }
func (s Size) IsZero() bool       { return s.W == 0 || s.H == 0 }

// Fits reports whether s fits inside o on both axes.
func (s Size) Fits(o Size) bool { return s.W <= o.W && s.H <= o.H }

func (s Size) AsPoint() Point { return Point{int32(s.W), int32(s.H)} }

type Rect struct {
	TopLeft Point
	Size    Size
}

func R(x, y int32, w, h uint32) Rect { return Rect{Point{x, y}, Size{w, h}} }

// Right and Bottom are exclusive edges.
func (r Rect) Right() int32  { return r.TopLeft.X + int32(r.Size.W) }
func (r Rect) Bottom() int32 { return r.TopLeft.Y + int32(r.Size.H) }

func (r Rect) Contains(p Point) bool {
	return p.X >= r.TopLeft.X && p.Y >= r.TopLeft.Y && p.X < r.Right() && p.Y < r.Bottom()
}

func (r Rect) Offset(p Point) Rect { return Rect{r.TopLeft.Add(p), r.Size} }

// Inset shrinks the rectangle by s on every side.
func (r Rect) Inset(s Size) Rect {
	return Rect{
		TopLeft: r.TopLeft.Add(Point{int32(s.W), int32(s.H)}),
		Size:    r.Size.SaturatingSub(s.Scale(2)),
	}
}

// Outset grows the rectangle by s on every side.
func (r Rect) Outset(s Size) Rect {
	return Rect{
		TopLeft: r.TopLeft.Sub(Point{int32(s.W), int32(s.H)}),
		Size:    r.Size.Add(s.Scale(2)),
	}
}

// Intersect returns the overlap of r and o; the result is empty when they do not touch.
func (r Rect) Intersect(o Rect) Rect {
	x0 := max(r.TopLeft.X, o.TopLeft.X)
	y0 := max(r.TopLeft.Y, o.TopLeft.Y)
	x1 := min(r.Right(), o.Right())
	y1 := min(r.Bottom(), o.Bottom())
	if x1 <= x0 || y1 <= y0 {
		return Rect{TopLeft: Point{x0, y0}}
	}
	return Rect{Point{x0, y0}, Size{uint32(x1 - x0), uint32(y1 - y0)}}
}

func (r Rect) IsEmpty() bool { return r.Size.IsZero() }

func satSub(a, b uint32) uint32 {
	if b > a {
		return 0
	}
	return a - b
}
