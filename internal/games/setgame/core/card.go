package core

import "fmt"

// DeckSize is the number of distinct cards: 3 values for each of 4 attributes.
const DeckSize = 81

// Card is one combination of the four attributes plus selection state.
type Card struct {
	Shape    Shape
	Color    Color
	Shading  Shading
	Count    Count
	Selected bool
}

// CardKey identifies a card by its attributes alone.
type CardKey struct {
	Shape   Shape
	Color   Color
	Shading Shading
	Count   Count
}

// NewCard creates an unselected card.
func NewCard(count Count, color Color, shading Shading, shape Shape) Card {
	return Card{Shape: shape, Color: color, Shading: shading, Count: count}
}

// Key returns the attribute tuple of the card.
func (c Card) Key() CardKey {
	return CardKey{Shape: c.Shape, Color: c.Color, Shading: c.Shading, Count: c.Count}
}

// Equal reports whether two cards have the same attributes.
// Selection state is ignored.
func (c Card) Equal(other Card) bool {
	return c.Key() == other.Key()
}

// Index returns the card's position in the 81-card universe (0..80).
func (c Card) Index() int {
	return int(c.Count)*27 + int(c.Color)*9 + int(c.Shading)*3 + int(c.Shape)
}

// CardAt returns the card at position i of the 81-card universe.
func CardAt(i int) Card {
	return Card{
		Count:   Count(i / 27 % 3),
		Color:   Color(i / 9 % 3),
		Shading: Shading(i / 3 % 3),
		Shape:   Shape(i % 3),
	}
}

// String returns the card as "two green halftone oval".
func (c Card) String() string {
	return fmt.Sprintf("%s %s %s %s", c.Count, c.Color, c.Shading, c.Shape)
}

// Contains reports whether cards holds a card with the same attributes as c.
func Contains(cards []Card, c Card) bool {
	for _, other := range cards {
		if other.Equal(c) {
			return true
		}
	}
	return false
}
