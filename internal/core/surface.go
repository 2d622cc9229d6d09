package core

// PaintKind selects how a Paint covers the cells it touches.
type PaintKind uint8

const (
	PaintNone    PaintKind = iota // Transparent: draws nothing
	PaintSolid                    // Opaque rune in a color
	PaintBlank                    // Opaque background: clears cells
	PaintPattern                  // Repeating tile pattern
	PaintShade                    // Darkens whatever is already drawn
)

// Paint is a fill or stroke style.
type Paint struct {
	Kind    PaintKind
	Color   Color
	Rune    rune     // Rune override for PaintSolid (0 = surface default)
	Pattern *Pattern // Tile for PaintPattern
}

// Solid returns an opaque paint in the given color.
func Solid(c Color) Paint {
	return Paint{Kind: PaintSolid, Color: c}
}

// Blank returns an opaque background paint.
func Blank() Paint {
	return Paint{Kind: PaintBlank}
}

// Transparent returns a paint that draws nothing.
func Transparent() Paint {
	return Paint{Kind: PaintNone}
}

// Shade returns a translucent darkening paint.
func Shade() Paint {
	return Paint{Kind: PaintShade}
}

// PatternPaint returns a paint that repeats the pattern's tile in color c.
func PatternPaint(p *Pattern, c Color) Paint {
	if p == nil {
		return Solid(c)
	}
	return Paint{Kind: PaintPattern, Color: c, Pattern: p}
}

// Surface is the drawing capability the game renders through.
// Coordinates are in the surface's pixel space after the current transform.
type Surface interface {
	// Size returns the drawable area in pixels.
	Size() Size
	Clear()

	// Save pushes the current transform and styles; Restore pops them.
	Save()
	Restore()
	// Transform composes m onto the current transform (m applies first).
	Transform(m Matrix)

	SetFillStyle(p Paint)
	SetStrokeStyle(p Paint)
	SetLineWidth(w float64)

	FillRect(x, y, w, h float64)
	StrokeRect(x, y, w, h float64)
	FillPath(p *Path)
	StrokePath(p *Path)

	// FillText draws text with its baseline-left at (x, y) using the fill style.
	FillText(text string, x, y float64)
	// MeasureText returns the advance width of text in current user space.
	MeasureText(text string) float64
}

// WithTransform runs fn with m composed onto the surface transform and
// restores the previous transform and styles on every exit path,
// including panics.
func WithTransform(s Surface, m Matrix, fn func()) {
	s.Save()
	defer s.Restore()
	s.Transform(m)
	fn()
}
