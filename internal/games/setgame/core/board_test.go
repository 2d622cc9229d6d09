package core

import (
	"errors"
	"math/rand"
	"testing"

	platformcore "github.com/vovakirdan/tui-set/internal/core"
)

var squareViewport = platformcore.NewRectF(0, 0, 1000, 1000)

func seededOptions(seed int64) Options {
	opts := DefaultOptions()
	opts.Rand = rand.New(rand.NewSource(seed))
	return opts
}

// assertBoardInvariants checks the invariants every dealt board must hold.
func assertBoardInvariants(t *testing.T, cards []Card) {
	t.Helper()
	if len(cards) != BoardSize {
		t.Fatalf("board has %d cards, expected %d", len(cards), BoardSize)
	}
	for i := range cards {
		for j := i + 1; j < len(cards); j++ {
			if cards[i].Equal(cards[j]) {
				t.Fatalf("slots %d and %d are duplicates: %v", i, j, cards[i])
			}
		}
	}
	if !ContainsSet(cards) {
		t.Fatalf("board has no set: %v", cards)
	}
}

func TestNewBoardInvariants(t *testing.T) {
	for seed := int64(1); seed <= 200; seed++ {
		b, err := NewBoard(seededOptions(seed))
		if err != nil {
			t.Fatalf("seed %d: NewBoard: %v", seed, err)
		}
		assertBoardInvariants(t, b.Cards())
		if b.IsSelecting() {
			t.Fatalf("seed %d: fresh board has a selection", seed)
		}
	}
}

func TestNewBoardDeterministic(t *testing.T) {
	b1, err := NewBoard(seededOptions(42))
	if err != nil {
		t.Fatal(err)
	}
	b2, err := NewBoard(seededOptions(42))
	if err != nil {
		t.Fatal(err)
	}
	c1, c2 := b1.Cards(), b2.Cards()
	for i := range c1 {
		if !c1[i].Equal(c2[i]) {
			t.Fatalf("slot %d differs: %v vs %v", i, c1[i], c2[i])
		}
	}
}

// scriptedSource replays card draws from a fixed cycle of cards.
type scriptedSource struct {
	cards []Card
	pos   int
}

func (s *scriptedSource) Intn(int) int {
	c := s.cards[(s.pos/4)%len(s.cards)]
	field := s.pos % 4
	s.pos++
	// DrawCard asks for shape, color, shading, count in that order
	switch field {
	case 0:
		return int(c.Shape)
	case 1:
		return int(c.Color)
	case 2:
		return int(c.Shading)
	default:
		return int(c.Count)
	}
}

// setFreeCards returns 12 distinct cards using only the first two values of
// each attribute. No three of them can form a set.
func setFreeCards() []Card {
	var cards []Card
	for i := 0; i < 16 && len(cards) < BoardSize; i++ {
		cards = append(cards, Card{
			Shape:   Shape(i & 1),
			Color:   Color(i >> 1 & 1),
			Shading: Shading(i >> 2 & 1),
			Count:   Count(i >> 3 & 1),
		})
	}
	return cards
}

func TestWithDefaultsKeepsSuppliedFields(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	layouts := []Layout{NewLayout(6, 2, NaturalCardSize())}
	opts := Options{Rand: rng, Layouts: layouts}.withDefaults()

	if opts.Rand != RandSource(rng) {
		t.Error("supplied random source was replaced")
	}
	if len(opts.Layouts) != 1 || &opts.Layouts[0] != &layouts[0] {
		t.Errorf("supplied layouts were replaced: %+v", opts.Layouts)
	}
	if opts.MaxDrawAttempts != DefaultMaxDrawAttempts || opts.MaxFillAttempts != DefaultMaxFillAttempts {
		t.Errorf("attempt limits not defaulted: %+v", opts)
	}
	if opts.Card != NaturalCardSize() || opts.Logger == nil {
		t.Errorf("card size or logger not defaulted: %+v", opts)
	}
}

func TestWithDefaultsBuildsMissingFields(t *testing.T) {
	opts := Options{}.withDefaults()
	if opts.Rand == nil || len(opts.Layouts) == 0 {
		t.Fatalf("missing fields not built: %+v", opts)
	}
	if len(opts.Layouts) != len(DefaultLayouts(NaturalCardSize())) {
		t.Errorf("got %d layouts", len(opts.Layouts))
	}
}

func TestFillExhaustionIsFatal(t *testing.T) {
	opts := DefaultOptions()
	opts.Rand = &scriptedSource{cards: setFreeCards()}
	opts.MaxFillAttempts = 3

	_, err := NewBoard(opts)
	if !errors.Is(err, ErrFillExhausted) {
		t.Fatalf("expected ErrFillExhausted, got %v", err)
	}
}

func TestRedealKeepsBoardOnExhaustion(t *testing.T) {
	b, err := NewBoard(seededOptions(3))
	if err != nil {
		t.Fatal(err)
	}
	before := b.Cards()

	b.opts.Rand = &scriptedSource{cards: setFreeCards()}
	b.opts.MaxFillAttempts = 2
	if err := b.Redeal(); !errors.Is(err, ErrFillExhausted) {
		t.Fatalf("expected ErrFillExhausted, got %v", err)
	}

	after := b.Cards()
	for i := range before {
		if !before[i].Equal(after[i]) {
			t.Fatalf("slot %d changed after failed redeal", i)
		}
	}
}

// fixedBoard builds a board with a known sequence. Slots 0-2 and 3-5 each
// form a set; slots 0, 1, 6 do not.
func fixedBoard(t *testing.T, seed int64) *Board {
	t.Helper()
	cards := []Card{
		NewCard(CountOne, ColorYellow, ShadingSolid, ShapeDiamond),
		NewCard(CountTwo, ColorYellow, ShadingSolid, ShapeDiamond),
		NewCard(CountThree, ColorYellow, ShadingSolid, ShapeDiamond),
		NewCard(CountTwo, ColorGreen, ShadingHalftone, ShapeSquiggle),
		NewCard(CountTwo, ColorPurple, ShadingHalftone, ShapeOval),
		NewCard(CountTwo, ColorYellow, ShadingHalftone, ShapeDiamond),
		NewCard(CountTwo, ColorGreen, ShadingEmpty, ShapeOval),
		NewCard(CountThree, ColorPurple, ShadingHalftone, ShapeOval),
		NewCard(CountTwo, ColorPurple, ShadingSolid, ShapeSquiggle),
		NewCard(CountThree, ColorGreen, ShadingSolid, ShapeSquiggle),
		NewCard(CountTwo, ColorYellow, ShadingEmpty, ShapeSquiggle),
		NewCard(CountThree, ColorGreen, ShadingEmpty, ShapeDiamond),
	}
	b := &Board{opts: seededOptions(seed).withDefaults()}
	b.log = b.opts.Logger
	b.cards = cards
	assertBoardInvariants(t, b.Cards())
	return b
}

// slotCenter returns the viewport point at the middle of slot idx.
func slotCenter(b *Board, idx int) platformcore.Point {
	r := b.CardCalculator(b.Calculator(squareViewport), idx).Rect()
	return platformcore.Pt(r.Left+r.Width/2, r.Top+r.Height/2)
}

func click(t *testing.T, b *Board, idx int) ClickResult {
	t.Helper()
	res, err := b.HandleClick(squareViewport, slotCenter(b, idx))
	if err != nil {
		t.Fatalf("click on slot %d: %v", idx, err)
	}
	if res.Hit != idx {
		t.Fatalf("click on slot %d hit slot %d", idx, res.Hit)
	}
	return res
}

func TestHitTestEverySlot(t *testing.T) {
	b := fixedBoard(t, 1)
	for idx := 0; idx < BoardSize; idx++ {
		if got := b.HitTest(squareViewport, slotCenter(b, idx)); got != idx {
			t.Errorf("HitTest(center of %d) = %d", idx, got)
		}
	}
	if got := b.HitTest(squareViewport, platformcore.Pt(1, 1)); got != -1 {
		t.Errorf("HitTest in the gutter = %d, expected -1", got)
	}
}

func TestToggleSelection(t *testing.T) {
	b := fixedBoard(t, 1)

	res := click(t, b, 4)
	if res.Outcome != OutcomeSelected || res.Phase != PhaseSelecting {
		t.Errorf("first click: outcome=%v phase=%v", res.Outcome, res.Phase)
	}
	if !b.Cards()[4].Selected {
		t.Error("slot 4 should be selected")
	}

	res = click(t, b, 4)
	if res.Outcome != OutcomeDeselected || res.Phase != PhaseIdle {
		t.Errorf("second click: outcome=%v phase=%v", res.Outcome, res.Phase)
	}
	if b.IsSelecting() {
		t.Error("board should be idle after deselecting")
	}
}

func TestBackgroundClickClearsSelection(t *testing.T) {
	b := fixedBoard(t, 1)
	click(t, b, 0)
	click(t, b, 7)

	res, err := b.HandleClick(squareViewport, platformcore.Pt(1, 1))
	if err != nil {
		t.Fatal(err)
	}
	if res.Hit != -1 || res.Outcome != OutcomeCleared || res.Phase != PhaseIdle {
		t.Errorf("background click result = %+v", res)
	}
	if b.IsSelecting() {
		t.Error("background click should clear the selection")
	}
}

func TestClearSelectionIdempotent(t *testing.T) {
	b := fixedBoard(t, 1)
	before := b.Cards()

	b.ClearSelection()
	b.ClearSelection()

	after := b.Cards()
	for i := range before {
		if before[i] != after[i] {
			t.Fatalf("slot %d changed: %v -> %v", i, before[i], after[i])
		}
	}
	if b.Phase() != PhaseIdle {
		t.Errorf("Phase() = %v, expected idle", b.Phase())
	}
}

func TestMismatchClearsWithoutChangingCards(t *testing.T) {
	b := fixedBoard(t, 1)
	before := b.Cards()

	click(t, b, 0)
	click(t, b, 1)
	res := click(t, b, 6)

	if res.Outcome != OutcomeMismatch || res.Phase != PhaseResolved {
		t.Errorf("third click: outcome=%v phase=%v", res.Outcome, res.Phase)
	}
	if res.Attempt.Len() != 3 {
		t.Errorf("attempt has %d cards", res.Attempt.Len())
	}

	after := b.Cards()
	for i := range before {
		if !before[i].Equal(after[i]) {
			t.Errorf("slot %d changed on mismatch", i)
		}
		if after[i].Selected {
			t.Errorf("slot %d still selected", i)
		}
	}
}

func TestMatchReplacesExactlyThoseSlots(t *testing.T) {
	for seed := int64(1); seed <= 50; seed++ {
		b := fixedBoard(t, seed)
		before := b.Cards()

		click(t, b, 2)
		click(t, b, 0)
		res := click(t, b, 1)

		if res.Outcome != OutcomeMatch || res.Phase != PhaseResolved {
			t.Fatalf("seed %d: outcome=%v phase=%v", seed, res.Outcome, res.Phase)
		}
		// Slots 3-5 still form a set, so no redeal is needed
		if res.Regenerated {
			t.Fatalf("seed %d: board was regenerated", seed)
		}

		after := b.Cards()
		assertBoardInvariants(t, after)
		for i := 3; i < BoardSize; i++ {
			if !before[i].Equal(after[i]) {
				t.Errorf("seed %d: untouched slot %d changed", seed, i)
			}
		}
		for i, c := range after {
			if c.Selected {
				t.Errorf("seed %d: slot %d still selected", seed, i)
			}
		}
	}
}

func TestSelectionOverflowIsReported(t *testing.T) {
	b := fixedBoard(t, 1)
	b.cards[0].Selected = true
	b.cards[1].Selected = true
	b.cards[6].Selected = true

	_, err := b.HandleClick(squareViewport, slotCenter(b, 7))
	if !errors.Is(err, ErrSelectionOverflow) {
		t.Fatalf("expected ErrSelectionOverflow, got %v", err)
	}
}

func TestMatchRegeneratesDeadBoard(t *testing.T) {
	// Slots 3-11 hold no set among themselves; after slots 0-2 are
	// replaced the safety net must leave a board that still contains a set.
	cards := setFreeCards()
	cards[0] = NewCard(CountThree, ColorYellow, ShadingSolid, ShapeDiamond)
	cards[1] = NewCard(CountThree, ColorGreen, ShadingHalftone, ShapeSquiggle)
	cards[2] = NewCard(CountThree, ColorPurple, ShadingEmpty, ShapeOval)

	for seed := int64(1); seed <= 50; seed++ {
		b := &Board{opts: seededOptions(seed).withDefaults()}
		b.log = b.opts.Logger
		b.cards = append([]Card(nil), cards...)

		click(t, b, 0)
		click(t, b, 1)
		res := click(t, b, 2)
		if res.Outcome != OutcomeMatch {
			t.Fatalf("seed %d: outcome=%v", seed, res.Outcome)
		}
		assertBoardInvariants(t, b.Cards())
	}
}

func TestHint(t *testing.T) {
	b := fixedBoard(t, 1)
	i, j, k, ok := b.Hint()
	if !ok || i != 0 || j != 1 || k != 2 {
		t.Errorf("Hint() = (%d, %d, %d, %v), expected (0, 1, 2, true)", i, j, k, ok)
	}
}
