package core

import "fmt"

// RandSource is the random source used for drawing cards.
// *math/rand.Rand satisfies it.
type RandSource interface {
	Intn(n int) int
}

// DrawCard draws one card uniformly from the 81-card universe.
func DrawCard(rng RandSource) Card {
	return Card{
		Shape:   Shapes[rng.Intn(len(Shapes))],
		Color:   Colors[rng.Intn(len(Colors))],
		Shading: Shadings[rng.Intn(len(Shadings))],
		Count:   Counts[rng.Intn(len(Counts))],
	}
}

// DrawDistinct draws a card that duplicates none of existing, re-drawing on
// collision. It gives up after maxAttempts draws.
func DrawDistinct(rng RandSource, existing []Card, maxAttempts int) (Card, error) {
	for attempt := 0; attempt < maxAttempts; attempt++ {
		c := DrawCard(rng)
		if !Contains(existing, c) {
			return c, nil
		}
	}
	return Card{}, fmt.Errorf("%w: %d draws against %d cards", ErrDrawExhausted, maxAttempts, len(existing))
}
