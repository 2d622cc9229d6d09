package core

import "math"

// curveSegments is how many line segments a curve is flattened into.
const curveSegments = 16

// Path is a sequence of polylines built from move/line/curve commands.
// Curves are flattened on construction, so a Path is plain geometry that
// any Surface can rasterize.
type Path struct {
	subpaths [][]Point
	closed   []bool
}

// NewPath creates an empty path.
func NewPath() *Path {
	return &Path{}
}

// Polygon builds a closed path through the given points.
func Polygon(pts ...Point) *Path {
	p := NewPath()
	if len(pts) == 0 {
		return p
	}
	p.MoveTo(pts[0].X, pts[0].Y)
	for _, pt := range pts[1:] {
		p.LineTo(pt.X, pt.Y)
	}
	p.Close()
	return p
}

// MoveTo starts a new subpath at (x, y).
func (p *Path) MoveTo(x, y float64) *Path {
	p.subpaths = append(p.subpaths, []Point{{X: x, Y: y}})
	p.closed = append(p.closed, false)
	return p
}

// LineTo adds a straight segment to (x, y).
func (p *Path) LineTo(x, y float64) *Path {
	p.ensureStart(x, y)
	i := len(p.subpaths) - 1
	p.subpaths[i] = append(p.subpaths[i], Point{X: x, Y: y})
	return p
}

// QuadTo adds a quadratic Bézier segment with control point (cx, cy).
func (p *Path) QuadTo(cx, cy, x, y float64) *Path {
	start := p.current()
	for i := 1; i <= curveSegments; i++ {
		t := float64(i) / curveSegments
		u := 1 - t
		px := u*u*start.X + 2*u*t*cx + t*t*x
		py := u*u*start.Y + 2*u*t*cy + t*t*y
		p.LineTo(px, py)
	}
	return p
}

// Arc adds a circular arc centered at (cx, cy) from angle start to end.
// Angles are in radians, measured clockwise in screen space; when
// counterClockwise is false the arc sweeps in the increasing direction.
// A line joins the current point to the arc start, like a canvas arc.
func (p *Path) Arc(cx, cy, r, start, end float64, counterClockwise bool) *Path {
	sweep := end - start
	if counterClockwise {
		for sweep > 0 {
			sweep -= 2 * math.Pi
		}
	} else {
		for sweep < 0 {
			sweep += 2 * math.Pi
		}
	}
	for i := 0; i <= curveSegments; i++ {
		a := start + sweep*float64(i)/curveSegments
		x := cx + r*math.Cos(a)
		y := cy + r*math.Sin(a)
		if i == 0 && len(p.subpaths) == 0 {
			p.MoveTo(x, y)
			continue
		}
		p.LineTo(x, y)
	}
	return p
}

// Close marks the current subpath as closed.
func (p *Path) Close() *Path {
	if len(p.closed) > 0 {
		p.closed[len(p.closed)-1] = true
	}
	return p
}

// Subpaths returns the flattened polylines and whether each is closed.
func (p *Path) Subpaths() ([][]Point, []bool) {
	return p.subpaths, p.closed
}

// Transformed returns a copy of the path with every point mapped through m.
func (p *Path) Transformed(m Matrix) *Path {
	out := &Path{
		subpaths: make([][]Point, len(p.subpaths)),
		closed:   append([]bool(nil), p.closed...),
	}
	for i, sp := range p.subpaths {
		mapped := make([]Point, len(sp))
		for j, pt := range sp {
			mapped[j] = m.Apply(pt)
		}
		out.subpaths[i] = mapped
	}
	return out
}

// Bounds returns the bounding box of all points in the path.
func (p *Path) Bounds() RectF {
	first := true
	var minX, minY, maxX, maxY float64
	for _, sp := range p.subpaths {
		for _, pt := range sp {
			if first {
				minX, maxX, minY, maxY = pt.X, pt.X, pt.Y, pt.Y
				first = false
				continue
			}
			minX = math.Min(minX, pt.X)
			maxX = math.Max(maxX, pt.X)
			minY = math.Min(minY, pt.Y)
			maxY = math.Max(maxY, pt.Y)
		}
	}
	return RectF{Left: minX, Top: minY, Width: maxX - minX, Height: maxY - minY}
}

// ContainsEvenOdd reports whether pt is inside the path using the
// even-odd rule. Open subpaths are treated as implicitly closed.
func (p *Path) ContainsEvenOdd(pt Point) bool {
	inside := false
	for _, sp := range p.subpaths {
		n := len(sp)
		if n < 3 {
			continue
		}
		for i, j := 0, n-1; i < n; j, i = i, i+1 {
			a, b := sp[i], sp[j]
			if (a.Y > pt.Y) != (b.Y > pt.Y) {
				x := (b.X-a.X)*(pt.Y-a.Y)/(b.Y-a.Y) + a.X
				if pt.X < x {
					inside = !inside
				}
			}
		}
	}
	return inside
}

func (p *Path) current() Point {
	if len(p.subpaths) == 0 {
		return Point{}
	}
	sp := p.subpaths[len(p.subpaths)-1]
	return sp[len(sp)-1]
}

func (p *Path) ensureStart(x, y float64) {
	if len(p.subpaths) == 0 {
		p.MoveTo(x, y)
	}
}
