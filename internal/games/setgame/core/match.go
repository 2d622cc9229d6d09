package core

import "strings"

// IsMatch reports whether three cards form a set: for each attribute the
// three values are either all identical or pairwise distinct.
func IsMatch(a, b, c Card) bool {
	return sameOrDistinct(int(a.Shape), int(b.Shape), int(c.Shape)) &&
		sameOrDistinct(int(a.Color), int(b.Color), int(c.Color)) &&
		sameOrDistinct(int(a.Shading), int(b.Shading), int(c.Shading)) &&
		sameOrDistinct(int(a.Count), int(b.Count), int(c.Count))
}

// sameOrDistinct is true when the distinct count of x, y, z is 1 or 3.
func sameOrDistinct(x, y, z int) bool {
	distinct := 1
	if y != x {
		distinct++
	}
	if z != x && z != y {
		distinct++
	}
	return distinct != 2
}

// SetAttempt is the group of currently selected cards.
type SetAttempt struct {
	Cards   []Card
	Indices []int // Slot index of each card on the board
}

// NewSetAttempt gathers the selected cards from a board sequence.
func NewSetAttempt(cards []Card) SetAttempt {
	var attempt SetAttempt
	for i, c := range cards {
		if c.Selected {
			attempt.Cards = append(attempt.Cards, c)
			attempt.Indices = append(attempt.Indices, i)
		}
	}
	return attempt
}

// Len returns the number of selected cards.
func (s SetAttempt) Len() int {
	return len(s.Cards)
}

// Complete reports whether exactly three cards are selected.
func (s SetAttempt) Complete() bool {
	return len(s.Cards) == 3
}

// IsSet reports whether the attempt is complete and forms a set.
func (s SetAttempt) IsSet() bool {
	return s.Complete() && IsMatch(s.Cards[0], s.Cards[1], s.Cards[2])
}

// String lists the cards separated by commas.
func (s SetAttempt) String() string {
	names := make([]string, len(s.Cards))
	for i, c := range s.Cards {
		names[i] = c.String()
	}
	return strings.Join(names, ", ")
}

// FindSet scans index triples i<j<k in ascending order and returns the first
// set found.
func FindSet(cards []Card) (i, j, k int, ok bool) {
	n := len(cards)
	for i = 0; i < n; i++ {
		for j = i + 1; j < n; j++ {
			for k = j + 1; k < n; k++ {
				if IsMatch(cards[i], cards[j], cards[k]) {
					return i, j, k, true
				}
			}
		}
	}
	return 0, 0, 0, false
}

// ContainsSet reports whether any three cards form a set.
func ContainsSet(cards []Card) bool {
	_, _, _, ok := FindSet(cards)
	return ok
}

// CountSets returns how many distinct sets the cards contain.
func CountSets(cards []Card) int {
	n := len(cards)
	count := 0
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			for k := j + 1; k < n; k++ {
				if IsMatch(cards[i], cards[j], cards[k]) {
					count++
				}
			}
		}
	}
	return count
}
