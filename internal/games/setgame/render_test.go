package setgame

import (
	"math/rand"
	"testing"

	"github.com/vovakirdan/tui-set/internal/config"
	platformcore "github.com/vovakirdan/tui-set/internal/core"
	"github.com/vovakirdan/tui-set/internal/games/setgame/core"
)

// drawOp is one recorded fill call.
type drawOp struct {
	name      string
	paint     platformcore.Paint
	transform platformcore.Matrix
	rect      platformcore.RectF
}

// recorder is a Surface that records fills instead of drawing.
type recorder struct {
	transform platformcore.Matrix
	fill      platformcore.Paint
	stack     []platformcore.Matrix
	ops       []drawOp
}

func newRecorder() *recorder {
	return &recorder{transform: platformcore.Identity()}
}

func (r *recorder) Size() platformcore.Size { return platformcore.Size{W: 1000, H: 1000} }
func (r *recorder) Clear()                  {}
func (r *recorder) Save()                   { r.stack = append(r.stack, r.transform) }
func (r *recorder) Restore() {
	r.transform = r.stack[len(r.stack)-1]
	r.stack = r.stack[:len(r.stack)-1]
}
func (r *recorder) Transform(m platformcore.Matrix)    { r.transform = r.transform.Mul(m) }
func (r *recorder) SetFillStyle(p platformcore.Paint)  { r.fill = p }
func (r *recorder) SetStrokeStyle(platformcore.Paint)  {}
func (r *recorder) SetLineWidth(float64)               {}
func (r *recorder) StrokeRect(x, y, w, h float64)      {}
func (r *recorder) StrokePath(*platformcore.Path)      {}
func (r *recorder) MeasureText(text string) float64    { return float64(len(text)) }
func (r *recorder) FillText(text string, x, y float64) { r.record("text", platformcore.RectF{}) }
func (r *recorder) FillPath(p *platformcore.Path)      { r.record("path", p.Bounds()) }
func (r *recorder) FillRect(x, y, w, h float64) {
	r.record("rect", platformcore.NewRectF(x, y, w, h))
}

func (r *recorder) record(name string, rect platformcore.RectF) {
	r.ops = append(r.ops, drawOp{name: name, paint: r.fill, transform: r.transform, rect: rect})
}

// faces returns the recorded card-face fills.
func (r *recorder) faces() []drawOp {
	var out []drawOp
	for _, op := range r.ops {
		if op.name == "rect" && op.paint.Kind == platformcore.PaintBlank && op.rect.Width == core.CardWidth {
			out = append(out, op)
		}
	}
	return out
}

func (r *recorder) count(kind platformcore.PaintKind) int {
	n := 0
	for _, op := range r.ops {
		if op.name == "rect" && op.paint.Kind == kind {
			n++
		}
	}
	return n
}

var testViewport = platformcore.NewRectF(0, 0, 1000, 1000)

func testBoard(t *testing.T, seed int64) *core.Board {
	t.Helper()
	b, err := core.NewBoard(core.Options{Rand: rand.New(rand.NewSource(seed))})
	if err != nil {
		t.Fatal(err)
	}
	return b
}

func testRenderer(t *testing.T) *Renderer {
	t.Helper()
	r, err := NewRenderer(ThemeFromConfig(config.DefaultSetConfig().Theme))
	if err != nil {
		t.Fatal(err)
	}
	return r
}

func TestDrawBoardUsesCardTransforms(t *testing.T) {
	b := testBoard(t, 5)
	rec := newRecorder()
	testRenderer(t).DrawBoard(rec, b, testViewport, nil)

	faces := rec.faces()
	if len(faces) != core.BoardSize {
		t.Fatalf("drew %d card faces, expected %d", len(faces), core.BoardSize)
	}
	bc := b.Calculator(testViewport)
	for idx, face := range faces {
		if want := b.CardCalculator(bc, idx).Transform(); face.transform != want {
			t.Errorf("card %d drawn with %+v, expected %+v", idx, face.transform, want)
		}
	}
	if len(rec.stack) != 0 {
		t.Errorf("transform stack not balanced: depth %d", len(rec.stack))
	}
	if rec.transform != platformcore.Identity() {
		t.Errorf("transform not restored: %+v", rec.transform)
	}
	if rec.count(platformcore.PaintShade) != 0 {
		t.Error("nothing should be dimmed without a selection")
	}
}

func TestDrawBoardDimsWhileSelecting(t *testing.T) {
	b := testBoard(t, 5)
	r := b.CardCalculator(b.Calculator(testViewport), 0).Rect()
	if _, err := b.HandleClick(testViewport, platformcore.Pt(r.Left+r.Width/2, r.Top+r.Height/2)); err != nil {
		t.Fatal(err)
	}

	rec := newRecorder()
	testRenderer(t).DrawBoard(rec, b, testViewport, nil)

	// Background plus the eleven unselected cards
	if got := rec.count(platformcore.PaintShade); got != 1+core.BoardSize-1 {
		t.Errorf("dimmed %d areas, expected %d", got, core.BoardSize)
	}
}

func TestShapePathsFitShapeBox(t *testing.T) {
	const slack = 10
	for _, shape := range core.Shapes {
		t.Run(shape.String(), func(t *testing.T) {
			b := shapePaths[shape].Bounds()
			if b.Left < -slack || b.Top < -slack || b.Right() > shapeWidth+slack || b.Bottom() > shapeHeight+slack {
				t.Errorf("bounds %+v outside %vx%v box", b, shapeWidth, shapeHeight)
			}
			if b.Width < shapeWidth/2 || b.Height < shapeHeight/2 {
				t.Errorf("bounds %+v too small", b)
			}
		})
	}
}

func TestShadingPaint(t *testing.T) {
	r := testRenderer(t)
	theme := ThemeFromConfig(config.DefaultSetConfig().Theme)

	tests := []struct {
		shading core.Shading
		kind    platformcore.PaintKind
	}{
		{core.ShadingSolid, platformcore.PaintSolid},
		{core.ShadingHalftone, platformcore.PaintPattern},
		{core.ShadingEmpty, platformcore.PaintNone},
	}

	for _, tc := range tests {
		t.Run(tc.shading.String(), func(t *testing.T) {
			c := core.NewCard(core.CountOne, core.ColorGreen, tc.shading, core.ShapeOval)
			p := r.shadingPaint(c, theme.Fill[core.ColorGreen])
			if p.Kind != tc.kind {
				t.Fatalf("paint kind = %v, expected %v", p.Kind, tc.kind)
			}
			if tc.kind == platformcore.PaintPattern && p.Pattern.ID != "halftone-green" {
				t.Errorf("pattern = %q, expected halftone-green", p.Pattern.ID)
			}
			if tc.kind != platformcore.PaintNone && p.Color != platformcore.ColorGreen {
				t.Errorf("color = %v, expected green", p.Color)
			}
		})
	}
}

func TestThemeFromConfig(t *testing.T) {
	theme := ThemeFromConfig(config.DefaultSetConfig().Theme)
	if theme.Fill[core.ColorPurple] != platformcore.ColorMagenta {
		t.Errorf("purple fill = %v", theme.Fill[core.ColorPurple])
	}
	if theme.Stroke[core.ColorYellow] != platformcore.ColorBrightYellow {
		t.Errorf("yellow stroke = %v", theme.Stroke[core.ColorYellow])
	}
}
