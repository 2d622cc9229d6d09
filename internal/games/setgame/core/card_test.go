package core

import (
	"errors"
	"math/rand"
	"testing"
)

func TestCardUniverse(t *testing.T) {
	seen := make(map[CardKey]bool)
	for i := 0; i < DeckSize; i++ {
		c := CardAt(i)
		if c.Index() != i {
			t.Errorf("CardAt(%d).Index() = %d", i, c.Index())
		}
		if seen[c.Key()] {
			t.Errorf("CardAt(%d) = %v is a duplicate", i, c)
		}
		seen[c.Key()] = true
	}
	if len(seen) != DeckSize {
		t.Errorf("universe has %d distinct cards, expected %d", len(seen), DeckSize)
	}
}

func TestCardEqualIgnoresSelection(t *testing.T) {
	a := NewCard(CountTwo, ColorGreen, ShadingHalftone, ShapeOval)
	b := a
	b.Selected = true

	if !a.Equal(b) {
		t.Error("cards differing only in selection should be equal")
	}
	if !Contains([]Card{b}, a) {
		t.Error("Contains should match on attributes")
	}

	c := NewCard(CountTwo, ColorGreen, ShadingHalftone, ShapeDiamond)
	if a.Equal(c) {
		t.Error("cards with different shapes should differ")
	}
}

func TestCardString(t *testing.T) {
	c := NewCard(CountTwo, ColorGreen, ShadingHalftone, ShapeOval)
	if c.String() != "two green halftone oval" {
		t.Errorf("String() = %q", c.String())
	}
	if CountThree.Value() != 3 || CountOne.Value() != 1 {
		t.Error("Count.Value() should be 1-based")
	}
}

// constSource always returns 0, so every draw yields the same card.
type constSource struct{}

func (constSource) Intn(int) int { return 0 }

func TestDrawDistinct(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	var cards []Card
	for len(cards) < DeckSize {
		c, err := DrawDistinct(rng, cards, 100000)
		if err != nil {
			t.Fatalf("DrawDistinct after %d cards: %v", len(cards), err)
		}
		if Contains(cards, c) {
			t.Fatalf("DrawDistinct returned duplicate %v", c)
		}
		cards = append(cards, c)
	}

	_, err := DrawDistinct(constSource{}, []Card{CardAt(0)}, 50)
	if !errors.Is(err, ErrDrawExhausted) {
		t.Errorf("expected ErrDrawExhausted, got %v", err)
	}
}
