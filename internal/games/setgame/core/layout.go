package core

import (
	"fmt"
	"math"

	platformcore "github.com/vovakirdan/tui-set/internal/core"
)

// Natural (unscaled) card size in pixels.
const (
	CardWidth  = 252
	CardHeight = 352
)

// NaturalCardSize returns the natural card size.
func NaturalCardSize() platformcore.Size {
	return platformcore.Size{W: CardWidth, H: CardHeight}
}

// Layout is a grid arrangement of board slots.
type Layout struct {
	Name        string
	Columns     int     // Cards per row
	Rows        int     // Cards per column
	AspectRatio float64 // Width / height of the whole grid
}

// NewLayout creates a layout of columns x rows cards of the given size.
func NewLayout(columns, rows int, card platformcore.Size) Layout {
	return Layout{
		Name:        fmt.Sprintf("%d x %d", columns, rows),
		Columns:     columns,
		Rows:        rows,
		AspectRatio: (card.W * float64(columns)) / (card.H * float64(rows)),
	}
}

// Slots returns the number of cards the layout holds.
func (l Layout) Slots() int {
	return l.Columns * l.Rows
}

// DefaultLayouts returns the catalog of 12-slot layouts in preference order.
func DefaultLayouts(card platformcore.Size) []Layout {
	return []Layout{
		NewLayout(3, 4, card),
		NewLayout(4, 3, card),
		NewLayout(2, 6, card),
		NewLayout(6, 2, card),
		NewLayout(12, 1, card),
		NewLayout(1, 12, card),
	}
}

// SelectLayout returns the layout whose aspect ratio is closest to ratio.
// Ties go to the earliest layout in the catalog. An empty catalog yields
// the zero Layout.
func SelectLayout(ratio float64, layouts []Layout) Layout {
	var best Layout
	bestDiff := math.Inf(1)
	for _, l := range layouts {
		diff := math.Abs(ratio - l.AspectRatio)
		if diff < bestDiff {
			best = l
			bestDiff = diff
		}
	}
	if math.IsInf(bestDiff, 1) && len(layouts) > 0 {
		// ratio is NaN or infinite: fall back to catalog order
		return layouts[0]
	}
	return best
}
