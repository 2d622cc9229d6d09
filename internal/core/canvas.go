package core

import (
	"math"
	"unicode/utf8"
)

// CellMetrics is the pixel size of one terminal cell.
// Terminal cells are roughly twice as tall as they are wide.
type CellMetrics struct {
	W, H float64
}

// DefaultCellMetrics returns 8x16 pixel cells.
func DefaultCellMetrics() CellMetrics {
	return CellMetrics{W: 8, H: 16}
}

// CellCenter returns the pixel-space center of cell (x, y).
func (m CellMetrics) CellCenter(x, y int) Point {
	return Point{X: (float64(x) + 0.5) * m.W, Y: (float64(y) + 0.5) * m.H}
}

// CellAt returns the cell containing pixel-space point p.
func (m CellMetrics) CellAt(p Point) (x, y int) {
	return int(math.Floor(p.X / m.W)), int(math.Floor(p.Y / m.H))
}

type canvasState struct {
	transform Matrix
	fill      Paint
	stroke    Paint
	lineWidth float64
}

// Canvas implements Surface on top of a Screen.
// Shapes are rasterized by sampling each cell's center in pixel space.
type Canvas struct {
	screen  *Screen
	metrics CellMetrics
	state   canvasState
	stack   []canvasState
}

// NewCanvas creates a canvas drawing into s.
func NewCanvas(s *Screen, m CellMetrics) *Canvas {
	return &Canvas{
		screen:  s,
		metrics: m,
		state: canvasState{
			transform: Identity(),
			fill:      Solid(ColorDefault),
			stroke:    Solid(ColorDefault),
			lineWidth: 1,
		},
	}
}

// Metrics returns the canvas cell metrics.
func (c *Canvas) Metrics() CellMetrics {
	return c.metrics
}

// Depth returns the number of saved states. Zero once every Save has
// been matched by a Restore.
func (c *Canvas) Depth() int {
	return len(c.stack)
}

// CurrentTransform returns the active user-to-pixel transform.
func (c *Canvas) CurrentTransform() Matrix {
	return c.state.transform
}

// LineWidth returns the active line width in user space.
func (c *Canvas) LineWidth() float64 {
	return c.state.lineWidth
}

// Size returns the canvas size in pixels.
func (c *Canvas) Size() Size {
	return Size{
		W: float64(c.screen.Width()) * c.metrics.W,
		H: float64(c.screen.Height()) * c.metrics.H,
	}
}

// Clear blanks the whole screen regardless of transform.
func (c *Canvas) Clear() {
	c.screen.Clear()
}

// Save pushes the current state.
func (c *Canvas) Save() {
	c.stack = append(c.stack, c.state)
}

// Restore pops the last saved state. Unbalanced calls are ignored.
func (c *Canvas) Restore() {
	if len(c.stack) == 0 {
		return
	}
	c.state = c.stack[len(c.stack)-1]
	c.stack = c.stack[:len(c.stack)-1]
}

// Transform composes m onto the current transform.
func (c *Canvas) Transform(m Matrix) {
	c.state.transform = c.state.transform.Mul(m)
}

// SetFillStyle sets the paint used by fill operations and text.
func (c *Canvas) SetFillStyle(p Paint) {
	c.state.fill = p
}

// SetStrokeStyle sets the paint used by stroke operations.
func (c *Canvas) SetStrokeStyle(p Paint) {
	c.state.stroke = p
}

// SetLineWidth records the stroke width. Strokes rasterize one cell wide;
// the width is kept so callers can scale it consistently.
func (c *Canvas) SetLineWidth(w float64) {
	c.state.lineWidth = w
}

// FillRect fills a rectangle in user space.
func (c *Canvas) FillRect(x, y, w, h float64) {
	c.FillPath(rectPath(x, y, w, h))
}

// StrokeRect outlines a rectangle in user space.
func (c *Canvas) StrokeRect(x, y, w, h float64) {
	c.StrokePath(rectPath(x, y, w, h))
}

func rectPath(x, y, w, h float64) *Path {
	return Polygon(Pt(x, y), Pt(x+w, y), Pt(x+w, y+h), Pt(x, y+h))
}

// FillPath fills p using the even-odd rule.
func (c *Canvas) FillPath(p *Path) {
	if c.state.fill.Kind == PaintNone {
		return
	}
	dev := p.Transformed(c.state.transform)
	b := dev.Bounds()
	x0, y0 := c.metrics.CellAt(Pt(b.Left, b.Top))
	x1, y1 := c.metrics.CellAt(Pt(b.Right(), b.Bottom()))
	x0 = Clamp(x0, 0, c.screen.Width())
	y0 = Clamp(y0, 0, c.screen.Height())
	x1 = Clamp(x1, -1, c.screen.Width()-1)
	y1 = Clamp(y1, -1, c.screen.Height()-1)

	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			if dev.ContainsEvenOdd(c.metrics.CellCenter(x, y)) {
				c.paintCell(x, y, c.state.fill, 0)
			}
		}
	}
}

// StrokePath outlines every segment of p.
func (c *Canvas) StrokePath(p *Path) {
	if c.state.stroke.Kind == PaintNone {
		return
	}
	dev := p.Transformed(c.state.transform)
	subpaths, closed := dev.Subpaths()
	for i, sp := range subpaths {
		for j := 1; j < len(sp); j++ {
			c.strokeSegment(sp[j-1], sp[j])
		}
		if closed[i] && len(sp) > 2 {
			c.strokeSegment(sp[len(sp)-1], sp[0])
		}
	}
}

func (c *Canvas) strokeSegment(a, b Point) {
	dx, dy := b.X-a.X, b.Y-a.Y
	r := lineRune(dx/c.metrics.W, dy/c.metrics.H)
	step := math.Min(c.metrics.W, c.metrics.H) / 2
	n := int(math.Ceil(math.Hypot(dx, dy)/step)) + 1
	for i := 0; i <= n; i++ {
		t := float64(i) / float64(n)
		x, y := c.metrics.CellAt(Pt(a.X+dx*t, a.Y+dy*t))
		c.paintCell(x, y, c.state.stroke, r)
	}
}

// lineRune picks a box-drawing rune for a segment direction in cell units.
func lineRune(dx, dy float64) rune {
	ax, ay := math.Abs(dx), math.Abs(dy)
	switch {
	case ay <= ax/2:
		return '─'
	case ax <= ay/2:
		return '│'
	case (dx > 0) == (dy > 0):
		return '╲'
	default:
		return '╱'
	}
}

// FillText writes text starting at the cell containing (x, y).
func (c *Canvas) FillText(text string, x, y float64) {
	if c.state.fill.Kind == PaintNone {
		return
	}
	color := c.state.fill.Color
	if c.state.fill.Kind == PaintBlank {
		color = ColorDefault
	}
	cx, cy := c.metrics.CellAt(c.state.transform.Apply(Pt(x, y)))
	c.screen.DrawTextColored(cx, cy, text, color)
}

// MeasureText returns the width of text in user space.
func (c *Canvas) MeasureText(text string) float64 {
	w := float64(utf8.RuneCountInString(text)) * c.metrics.W
	if s := c.state.transform.ScaleFactor(); s > 0 {
		return w / s
	}
	return w
}

// paintCell applies p to a single cell. lineRune is used for solid strokes.
func (c *Canvas) paintCell(x, y int, p Paint, lineRune rune) {
	if x < 0 || y < 0 || x >= c.screen.Width() || y >= c.screen.Height() {
		return
	}
	switch p.Kind {
	case PaintSolid:
		r := p.Rune
		if r == 0 {
			r = lineRune
		}
		if r == 0 {
			r = '█'
		}
		c.screen.SetCell(x, y, Cell{Rune: r, Color: p.Color})
	case PaintBlank:
		c.screen.SetCell(x, y, blankCell)
	case PaintPattern:
		r := p.Pattern.At(x, y)
		if r == ' ' {
			c.screen.SetCell(x, y, blankCell)
			return
		}
		c.screen.SetCell(x, y, Cell{Rune: r, Color: p.Color})
	case PaintShade:
		cell := c.screen.GetCell(x, y)
		if cell.Rune == ' ' {
			cell.Rune = '░'
		}
		cell.Color = ColorGray
		c.screen.SetCell(x, y, cell)
	}
}
