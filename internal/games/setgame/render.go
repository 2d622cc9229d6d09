package setgame

import (
	"fmt"
	"math"
	"strings"

	"github.com/vovakirdan/tui-set/internal/config"
	platformcore "github.com/vovakirdan/tui-set/internal/core"
	"github.com/vovakirdan/tui-set/internal/games/setgame/core"
)

// Card drawing constants in natural card space.
const (
	shapeScale   = 1.3
	shapeWidth   = shapeScale * 92
	shapeHeight  = shapeScale * 48
	shadingInset = 25
	strokeWidth  = 5
	labelInset   = 12

	messageBoxW = 200
	messageBoxH = 100
)

// pathOp is one drawing command of a shape outline.
type pathOp struct {
	op   byte // M, L, Q, A (cx cy r start end) or Z
	args []float64
}

// shapeGeometry describes a shape outline in its source coordinates and
// the transform that maps it into the shapeWidth x shapeHeight box.
type shapeGeometry struct {
	ops       []pathOp
	transform platformcore.Matrix
	glyphs    [3]rune // Label rune per shading
}

var shapeTable = map[core.Shape]shapeGeometry{
	core.ShapeDiamond: {
		ops: []pathOp{
			{'M', []float64{0, 46}},
			{'L', []float64{24, 0}},
			{'L', []float64{48, 46}},
			{'L', []float64{24, 92}},
			{'Z', nil},
		},
		transform: platformcore.Identity().Rotate(math.Pi/2).Scale(shapeScale, shapeScale).Translate(0, -92),
		glyphs:    [3]rune{'◆', '◈', '◇'},
	},
	core.ShapeSquiggle: {
		ops: []pathOp{
			{'M', []float64{383, 200}},
			{'L', []float64{387, 190}},
			{'Q', []float64{392, 173, 386, 165}},
			{'L', []float64{382, 160}},
			{'Q', []float64{375, 151, 382, 147}},
			{'Q', []float64{395, 143, 407, 149}},
			{'Q', []float64{423, 158, 422, 180}},
			{'Q', []float64{421, 187, 417, 196}},
			{'Q', []float64{412, 203, 416, 213}},
			{'L', []float64{421, 223}},
			{'Q', []float64{425, 230, 421, 235}},
			{'Q', []float64{406, 243, 390, 233}},
			{'Q', []float64{375, 223, 383, 200}},
			{'Z', nil},
		},
		transform: platformcore.Identity().Rotate(math.Pi/2).Scale(shapeScale, shapeScale).Translate(-376, -240),
		glyphs:    [3]rune{'■', '▩', '□'},
	},
	core.ShapeOval: {
		ops: []pathOp{
			{'A', []float64{39, 39, 39, 0.5 * math.Pi, 1.5 * math.Pi}},
			{'L', []float64{117, 0}},
			{'A', []float64{117, 39, 39, 1.5 * math.Pi, 0.5 * math.Pi}},
			{'L', []float64{39, 78}},
			{'Z', nil},
		},
		transform: platformcore.Scaling(0.8, 0.8),
		glyphs:    [3]rune{'●', '◉', '○'},
	},
}

// shapePaths holds each outline already mapped into its shape box.
var shapePaths = buildShapePaths()

func buildShapePaths() map[core.Shape]*platformcore.Path {
	paths := make(map[core.Shape]*platformcore.Path, len(shapeTable))
	for shape, geom := range shapeTable {
		p := platformcore.NewPath()
		for _, op := range geom.ops {
			a := op.args
			switch op.op {
			case 'M':
				p.MoveTo(a[0], a[1])
			case 'L':
				p.LineTo(a[0], a[1])
			case 'Q':
				p.QuadTo(a[0], a[1], a[2], a[3])
			case 'A':
				p.Arc(a[0], a[1], a[2], a[3], a[4], false)
			case 'Z':
				p.Close()
			}
		}
		paths[shape] = p.Transformed(geom.transform)
	}
	return paths
}

// Theme maps game colors to terminal colors.
type Theme struct {
	Fill     [3]platformcore.Color // Indexed by core.Color
	Stroke   [3]platformcore.Color
	Border   platformcore.Color
	Selected platformcore.Color
	Message  platformcore.Color
}

// ThemeFromConfig resolves color names. Unknown names fall back to the
// default color; config validation rejects them earlier.
func ThemeFromConfig(tc config.ThemeConfig) Theme {
	parse := func(name string) platformcore.Color {
		c, _ := platformcore.ParseColor(name)
		return c
	}
	return Theme{
		Fill: [3]platformcore.Color{
			core.ColorYellow: parse(tc.Yellow.Fill),
			core.ColorGreen:  parse(tc.Green.Fill),
			core.ColorPurple: parse(tc.Purple.Fill),
		},
		Stroke: [3]platformcore.Color{
			core.ColorYellow: parse(tc.Yellow.Stroke),
			core.ColorGreen:  parse(tc.Green.Stroke),
			core.ColorPurple: parse(tc.Purple.Stroke),
		},
		Border:   parse(tc.Border),
		Selected: parse(tc.Selected),
		Message:  parse(tc.Message),
	}
}

// halftoneID returns the pattern resource id for a card color.
func halftoneID(c core.Color) string {
	return "halftone-" + c.String()
}

// Renderer draws boards, cards and the message overlay onto a Surface.
type Renderer struct {
	theme    Theme
	patterns *platformcore.Patterns
}

// NewRenderer creates a renderer and registers the halftone patterns.
func NewRenderer(theme Theme) (*Renderer, error) {
	patterns := platformcore.NewPatterns()
	for _, c := range core.Colors {
		p, err := platformcore.NewPattern(halftoneID(c), "░▒", "▒░")
		if err != nil {
			return nil, fmt.Errorf("halftone pattern: %w", err)
		}
		patterns.Register(p)
	}
	return &Renderer{theme: theme, patterns: patterns}, nil
}

// Patterns returns the renderer's tile pattern provider.
func (r *Renderer) Patterns() *platformcore.Patterns {
	return r.patterns
}

// DrawBoard draws every card in its slot. While a selection is in progress
// the background and unselected cards are dimmed. Slots in highlight get
// the selection border.
func (r *Renderer) DrawBoard(s platformcore.Surface, b *core.Board, viewport platformcore.RectF, highlight []int) {
	selecting := b.IsSelecting()
	if selecting {
		s.SetFillStyle(platformcore.Shade())
		s.FillRect(viewport.Left, viewport.Top, viewport.Width, viewport.Height)
	}

	// Cards are drawn in the standard card space and stretched to the
	// board's configured card size.
	size := b.CardSize()
	fit := platformcore.Scaling(size.W/core.CardWidth, size.H/core.CardHeight)

	bc := b.Calculator(viewport)
	for idx, card := range b.Cards() {
		cc := b.CardCalculator(bc, idx)
		dim := selecting && !card.Selected
		highlighted := card.Selected || containsInt(highlight, idx)
		platformcore.WithTransform(s, cc.Transform().Mul(fit), func() {
			r.DrawCard(s, card, highlighted, dim)
		})
	}
}

// DrawCard draws a card in natural card space.
func (r *Renderer) DrawCard(s platformcore.Surface, c core.Card, highlighted, dim bool) {
	card := core.NaturalCardSize()
	fill := r.theme.Fill[c.Color]
	stroke := r.theme.Stroke[c.Color]

	// Face
	s.SetFillStyle(platformcore.Blank())
	s.FillRect(0, 0, card.W, card.H)
	border := r.theme.Border
	if highlighted {
		border = r.theme.Selected
	}
	s.SetStrokeStyle(platformcore.Solid(border))
	s.SetLineWidth(1)
	s.StrokeRect(0, 0, card.W, card.H)

	// Shading panel
	s.SetFillStyle(r.shadingPaint(c, fill))
	s.FillRect(shadingInset, shadingInset, card.W-2*shadingInset, card.H-2*shadingInset)
	s.SetStrokeStyle(platformcore.Solid(stroke))
	s.SetLineWidth(strokeWidth)
	s.StrokeRect(shadingInset, shadingInset, card.W-2*shadingInset, card.H-2*shadingInset)

	// Shapes
	n := float64(c.Count.Value())
	gap := shapeHeight / 6
	left := (card.W - shapeWidth) / 2
	top := (card.H - n*shapeHeight - (n-1)*gap) / 2
	path := shapePaths[c.Shape]
	for i := 0; i < c.Count.Value(); i++ {
		y := top + float64(i)*(shapeHeight+gap)
		platformcore.WithTransform(s, platformcore.Translation(left, y), func() {
			s.SetFillStyle(platformcore.Blank())
			s.FillPath(path)
			s.SetStrokeStyle(platformcore.Solid(stroke))
			s.StrokePath(path)
		})
	}

	// Label for cards too small to show their shapes
	label := strings.Repeat(string(shapeTable[c.Shape].glyphs[c.Shading]), c.Count.Value())
	s.SetFillStyle(platformcore.Solid(stroke))
	s.FillText(label, (card.W-s.MeasureText(label))/2, card.H-labelInset)

	if dim {
		s.SetFillStyle(platformcore.Shade())
		s.FillRect(0, 0, card.W, card.H)
	}
}

func (r *Renderer) shadingPaint(c core.Card, fill platformcore.Color) platformcore.Paint {
	switch c.Shading {
	case core.ShadingSolid:
		return platformcore.Solid(fill)
	case core.ShadingHalftone:
		p, _ := r.patterns.Pattern(halftoneID(c.Color))
		return platformcore.PatternPaint(p, fill)
	default:
		return platformcore.Transparent()
	}
}

// DrawMessage draws text in a box centered on viewport.
func (r *Renderer) DrawMessage(s platformcore.Surface, viewport platformcore.RectF, text string) {
	x := viewport.Left + (viewport.Width-messageBoxW)/2
	y := viewport.Top + (viewport.Height-messageBoxH)/2

	s.SetFillStyle(platformcore.Blank())
	s.FillRect(x, y, messageBoxW, messageBoxH)
	s.SetStrokeStyle(platformcore.Solid(r.theme.Message))
	s.SetLineWidth(1)
	s.StrokeRect(x, y, messageBoxW, messageBoxH)

	s.SetFillStyle(platformcore.Solid(r.theme.Message))
	s.FillText(text, x+(messageBoxW-s.MeasureText(text))/2, y+messageBoxH/2)
}

func containsInt(xs []int, v int) bool {
	for _, x := range xs {
		if x == v {
			return true
		}
	}
	return false
}
