package core

import (
	"math"

	platformcore "github.com/vovakirdan/tui-set/internal/core"
)

// DefaultMargin is the gutter, in viewport pixels, kept around each card.
const DefaultMargin = 10

// BoardCalculator maps layout slots onto a viewport.
// The grid is scaled uniformly to fit and centered.
type BoardCalculator struct {
	layout  Layout
	card    platformcore.Size
	margin  float64
	scale   float64
	offsetX float64
	offsetY float64
}

// NewBoardCalculator computes the scale and centering offset of layout
// inside viewport.
func NewBoardCalculator(viewport platformcore.RectF, layout Layout, card platformcore.Size, margin float64) BoardCalculator {
	bc := BoardCalculator{layout: layout, card: card, margin: margin}
	if layout.Columns <= 0 || layout.Rows <= 0 {
		return bc
	}

	bc.scale = math.Min(
		viewport.Height/(card.H*float64(layout.Rows)),
		viewport.Width/(card.W*float64(layout.Columns)),
	)
	if bc.scale < 0 || math.IsNaN(bc.scale) {
		bc.scale = 0
	}

	bc.offsetX = (viewport.Width-bc.SlotWidth()*float64(layout.Columns))/2 + viewport.Left
	bc.offsetY = (viewport.Height-bc.SlotHeight()*float64(layout.Rows))/2 + viewport.Top
	return bc
}

// Layout returns the layout the calculator was built for.
func (bc BoardCalculator) Layout() Layout {
	return bc.layout
}

// Scale returns the uniform board scaling factor.
func (bc BoardCalculator) Scale() float64 {
	return bc.scale
}

// Offset returns the top-left corner of the scaled grid.
func (bc BoardCalculator) Offset() platformcore.Point {
	return platformcore.Pt(bc.offsetX, bc.offsetY)
}

// SlotWidth returns the scaled width of one slot.
func (bc BoardCalculator) SlotWidth() float64 {
	return bc.scale * bc.card.W
}

// SlotHeight returns the scaled height of one slot.
func (bc BoardCalculator) SlotHeight() float64 {
	return bc.scale * bc.card.H
}

// SlotRect returns the full rectangle of slot idx, in row-major order.
func (bc BoardCalculator) SlotRect(idx int) platformcore.RectF {
	cols := bc.layout.Columns
	if cols <= 0 {
		return platformcore.RectF{}
	}
	// Neighbouring slots share edges computed by the same expression so
	// they never overlap by a rounding step.
	col, row := float64(idx%cols), float64(idx/cols)
	left := bc.offsetX + bc.SlotWidth()*col
	right := bc.offsetX + bc.SlotWidth()*(col+1)
	top := bc.offsetY + bc.SlotHeight()*row
	bottom := bc.offsetY + bc.SlotHeight()*(row+1)
	return platformcore.NewRectF(left, top, right-left, bottom-top)
}

// GridRect returns the rectangle covered by every slot.
func (bc BoardCalculator) GridRect() platformcore.RectF {
	return platformcore.NewRectF(
		bc.offsetX,
		bc.offsetY,
		bc.SlotWidth()*float64(bc.layout.Columns),
		bc.SlotHeight()*float64(bc.layout.Rows),
	)
}

// CardBounds returns the drawable bounds of slot idx: the slot shrunk by
// the margin on every side.
func (bc BoardCalculator) CardBounds(idx int) platformcore.RectF {
	return bc.SlotRect(idx).Inset(bc.margin)
}

// CardCalculator maps a card's natural coordinates into its drawable bounds.
type CardCalculator struct {
	scale  float64
	left   float64
	top    float64
	width  float64
	height float64
}

// NewCardCalculator fits a card of natural size into bounds, anchored at
// the bounds' top-left corner.
func NewCardCalculator(bounds platformcore.RectF, natural platformcore.Size) CardCalculator {
	scale := math.Min(bounds.Height/natural.H, bounds.Width/natural.W)
	if scale < 0 || math.IsNaN(scale) {
		scale = 0
	}
	return CardCalculator{
		scale:  scale,
		left:   bounds.Left,
		top:    bounds.Top,
		width:  scale * natural.W,
		height: scale * natural.H,
	}
}

// Scale returns the card-local scaling factor.
func (cc CardCalculator) Scale() float64 {
	return cc.scale
}

// X maps a natural x coordinate to viewport space.
func (cc CardCalculator) X(v float64) float64 {
	return cc.scale*v + cc.left
}

// Y maps a natural y coordinate to viewport space.
func (cc CardCalculator) Y(v float64) float64 {
	return cc.scale*v + cc.top
}

// Transform returns the natural-to-viewport transform.
func (cc CardCalculator) Transform() platformcore.Matrix {
	return platformcore.Translation(cc.left, cc.top).Scale(cc.scale, cc.scale)
}

// Rect returns the drawn card rectangle in viewport space.
func (cc CardCalculator) Rect() platformcore.RectF {
	return platformcore.NewRectF(cc.left, cc.top, cc.width, cc.height)
}

// Intersects reports whether p lies on or inside the drawn card rectangle.
func (cc CardCalculator) Intersects(p platformcore.Point) bool {
	return cc.Rect().ContainsClosed(p)
}
