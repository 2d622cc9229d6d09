// Package core provides the game logic for the Set card game: the card
// catalogs, the set evaluator, board generation and the geometry that maps
// the card grid onto a viewport.
// This package is UI-agnostic and deterministic under a seeded random source.
package core

// Shape is the figure printed on a card.
type Shape uint8

const (
	ShapeDiamond Shape = iota
	ShapeSquiggle
	ShapeOval
)

// Shapes lists every shape in catalog order.
var Shapes = [...]Shape{ShapeDiamond, ShapeSquiggle, ShapeOval}

// String returns the catalog name of the shape.
func (s Shape) String() string {
	switch s {
	case ShapeDiamond:
		return "diamond"
	case ShapeSquiggle:
		return "squiggle"
	case ShapeOval:
		return "oval"
	default:
		return "unknown"
	}
}

// Color is the ink color of a card's figures.
type Color uint8

const (
	ColorYellow Color = iota
	ColorGreen
	ColorPurple
)

// Colors lists every color in catalog order.
var Colors = [...]Color{ColorYellow, ColorGreen, ColorPurple}

// String returns the catalog name of the color.
func (c Color) String() string {
	switch c {
	case ColorYellow:
		return "yellow"
	case ColorGreen:
		return "green"
	case ColorPurple:
		return "purple"
	default:
		return "unknown"
	}
}

// Shading is how a card is filled.
type Shading uint8

const (
	ShadingSolid Shading = iota
	ShadingHalftone
	ShadingEmpty
)

// Shadings lists every shading in catalog order.
var Shadings = [...]Shading{ShadingSolid, ShadingHalftone, ShadingEmpty}

// String returns the catalog name of the shading.
func (s Shading) String() string {
	switch s {
	case ShadingSolid:
		return "solid"
	case ShadingHalftone:
		return "halftone"
	case ShadingEmpty:
		return "empty"
	default:
		return "unknown"
	}
}

// Count is how many figures a card shows.
type Count uint8

const (
	CountOne Count = iota
	CountTwo
	CountThree
)

// Counts lists every count in catalog order.
var Counts = [...]Count{CountOne, CountTwo, CountThree}

// String returns the catalog name of the count.
func (c Count) String() string {
	switch c {
	case CountOne:
		return "one"
	case CountTwo:
		return "two"
	case CountThree:
		return "three"
	default:
		return "unknown"
	}
}

// Value returns the number of figures (1, 2 or 3).
func (c Count) Value() int {
	return int(c) + 1
}
