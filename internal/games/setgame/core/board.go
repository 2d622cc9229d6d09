package core

import (
	"fmt"
	"io"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"

	platformcore "github.com/vovakirdan/tui-set/internal/core"
)

// BoardSize is the number of cards on display.
const BoardSize = 12

// Default retry bounds for board construction.
const (
	DefaultMaxDrawAttempts = 1000
	DefaultMaxFillAttempts = 1000
)

// Phase is the selection state of the board.
type Phase uint8

const (
	PhaseIdle      Phase = iota // No cards selected
	PhaseSelecting              // One or two cards selected
	PhaseResolved               // Three cards were selected and evaluated
)

// String returns the phase name.
func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseSelecting:
		return "selecting"
	case PhaseResolved:
		return "resolved"
	default:
		return "unknown"
	}
}

// Outcome describes what a click did.
type Outcome uint8

const (
	OutcomeCleared    Outcome = iota // Background click cleared the selection
	OutcomeSelected                  // A card was selected
	OutcomeDeselected                // A card was deselected
	OutcomeMatch                     // Third card completed a set
	OutcomeMismatch                  // Third card did not complete a set
)

// String returns the outcome name.
func (o Outcome) String() string {
	switch o {
	case OutcomeCleared:
		return "cleared"
	case OutcomeSelected:
		return "selected"
	case OutcomeDeselected:
		return "deselected"
	case OutcomeMatch:
		return "match"
	case OutcomeMismatch:
		return "mismatch"
	default:
		return "unknown"
	}
}

// ClickResult reports the effect of one click on the board.
type ClickResult struct {
	Hit         int        // Slot index that was hit, -1 for background
	Outcome     Outcome    // What the click did
	Phase       Phase      // Phase after the click
	Attempt     SetAttempt // The evaluated attempt when Phase is PhaseResolved
	Regenerated bool       // The whole board was redealt after a match
}

// Options configures a Board.
type Options struct {
	Rand            RandSource
	MaxDrawAttempts int
	MaxFillAttempts int
	Card            platformcore.Size // Natural card size
	Margin          float64           // Gutter around each card in viewport pixels
	Layouts         []Layout
	Logger          *log.Logger
}

// DefaultOptions returns options seeded from the current time.
func DefaultOptions() Options {
	card := NaturalCardSize()
	return Options{
		Rand:            rand.New(rand.NewSource(time.Now().UnixNano())),
		MaxDrawAttempts: DefaultMaxDrawAttempts,
		MaxFillAttempts: DefaultMaxFillAttempts,
		Card:            card,
		Margin:          DefaultMargin,
		Layouts:         DefaultLayouts(card),
	}
}

// withDefaults fills zero fields with defaults. Only missing fields are
// built.
func (o Options) withDefaults() Options {
	if o.Rand == nil {
		o.Rand = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	if o.MaxDrawAttempts <= 0 {
		o.MaxDrawAttempts = DefaultMaxDrawAttempts
	}
	if o.MaxFillAttempts <= 0 {
		o.MaxFillAttempts = DefaultMaxFillAttempts
	}
	if o.Card.W <= 0 || o.Card.H <= 0 {
		o.Card = NaturalCardSize()
	}
	if o.Margin < 0 {
		o.Margin = 0
	}
	if len(o.Layouts) == 0 {
		o.Layouts = DefaultLayouts(o.Card)
	}
	if o.Logger == nil {
		o.Logger = log.New(io.Discard)
	}
	return o
}

// Board owns the displayed cards. After construction it always holds
// BoardSize distinct cards containing at least one set.
// A Board is not safe for concurrent use; callers keep all mutation on one
// goroutine.
type Board struct {
	cards []Card
	opts  Options
	log   *log.Logger
}

// NewBoard deals a fresh board.
func NewBoard(opts Options) (*Board, error) {
	opts = opts.withDefaults()
	b := &Board{opts: opts, log: opts.Logger}
	if _, err := b.Fill(); err != nil {
		return nil, err
	}
	return b, nil
}

// Cards returns a copy of the card sequence in slot order.
func (b *Board) Cards() []Card {
	out := make([]Card, len(b.cards))
	copy(out, b.cards)
	return out
}

// Len returns the number of cards on the board.
func (b *Board) Len() int {
	return len(b.cards)
}

// Fill ensures the board holds BoardSize cards with at least one set.
// A board that already satisfies this is left alone; otherwise the whole
// board is redealt until a deal contains a set. If every attempt fails the
// previous cards are kept and ErrFillExhausted is returned.
func (b *Board) Fill() (regenerated bool, err error) {
	if len(b.cards) == BoardSize && ContainsSet(b.cards) {
		return false, nil
	}

	for attempt := 1; attempt <= b.opts.MaxFillAttempts; attempt++ {
		cards := make([]Card, 0, BoardSize)
		for len(cards) < BoardSize {
			c, err := DrawDistinct(b.opts.Rand, cards, b.opts.MaxDrawAttempts)
			if err != nil {
				return false, fmt.Errorf("fill board: %w", err)
			}
			cards = append(cards, c)
		}
		if ContainsSet(cards) {
			b.cards = cards
			b.log.Debug("board dealt", "attempts", attempt, "sets", CountSets(cards))
			return true, nil
		}
	}

	b.log.Error("no board with a set could be dealt", "attempts", b.opts.MaxFillAttempts)
	return false, fmt.Errorf("%w after %d attempts", ErrFillExhausted, b.opts.MaxFillAttempts)
}

// NextCard draws a card that duplicates nothing currently on the board.
func (b *Board) NextCard() (Card, error) {
	return DrawDistinct(b.opts.Rand, b.cards, b.opts.MaxDrawAttempts)
}

// Selection returns the currently selected cards.
func (b *Board) Selection() SetAttempt {
	return NewSetAttempt(b.cards)
}

// IsSelecting reports whether any card is selected.
func (b *Board) IsSelecting() bool {
	for _, c := range b.cards {
		if c.Selected {
			return true
		}
	}
	return false
}

// Phase returns PhaseSelecting when any card is selected, else PhaseIdle.
func (b *Board) Phase() Phase {
	if b.IsSelecting() {
		return PhaseSelecting
	}
	return PhaseIdle
}

// ClearSelection deselects every card. Calling it on an idle board is a no-op.
func (b *Board) ClearSelection() {
	for i := range b.cards {
		b.cards[i].Selected = false
	}
}

// CardSize returns the natural card size used for geometry.
func (b *Board) CardSize() platformcore.Size {
	return b.opts.Card
}

// Calculator returns the board geometry for viewport, picking the layout
// that best fits its aspect ratio.
func (b *Board) Calculator(viewport platformcore.RectF) BoardCalculator {
	layout := SelectLayout(viewport.AspectRatio(), b.opts.Layouts)
	return NewBoardCalculator(viewport, layout, b.opts.Card, b.opts.Margin)
}

// CardCalculator returns the geometry of slot idx within bc.
func (b *Board) CardCalculator(bc BoardCalculator, idx int) CardCalculator {
	return NewCardCalculator(bc.CardBounds(idx), b.opts.Card)
}

// HitTest returns the first slot whose drawn card contains p, or -1.
func (b *Board) HitTest(viewport platformcore.RectF, p platformcore.Point) int {
	bc := b.Calculator(viewport)
	for idx := range b.cards {
		if b.CardCalculator(bc, idx).Intersects(p) {
			return idx
		}
	}
	return -1
}

// HandleClick applies a click at p (viewport pixel space). A hit toggles
// the card; a miss clears the selection. When the click completes a
// three-card attempt it is resolved immediately.
func (b *Board) HandleClick(viewport platformcore.RectF, p platformcore.Point) (ClickResult, error) {
	res := ClickResult{Hit: b.HitTest(viewport, p)}

	if res.Hit < 0 {
		b.ClearSelection()
		res.Outcome = OutcomeCleared
		res.Phase = PhaseIdle
		return res, nil
	}

	b.cards[res.Hit].Selected = !b.cards[res.Hit].Selected
	if b.cards[res.Hit].Selected {
		res.Outcome = OutcomeSelected
	} else {
		res.Outcome = OutcomeDeselected
	}

	attempt := b.Selection()
	switch {
	case attempt.Len() > 3:
		return res, fmt.Errorf("%w: %d selected", ErrSelectionOverflow, attempt.Len())
	case !attempt.Complete():
		res.Phase = b.Phase()
		return res, nil
	}

	res.Phase = PhaseResolved
	res.Attempt = attempt
	if !attempt.IsSet() {
		b.ClearSelection()
		res.Outcome = OutcomeMismatch
		return res, nil
	}

	res.Outcome = OutcomeMatch
	regenerated, err := b.replace(attempt)
	res.Regenerated = regenerated
	return res, err
}

// replace swaps the matched cards for fresh ones, then redeals the whole
// board if no set remains.
func (b *Board) replace(attempt SetAttempt) (bool, error) {
	b.log.Debug("set found", "slots", attempt.Indices, "cards", attempt.String())

	for _, idx := range attempt.Indices {
		c, err := b.NextCard()
		if err != nil {
			return false, fmt.Errorf("replace slot %d: %w", idx, err)
		}
		b.cards[idx] = c
	}
	b.ClearSelection()

	regenerated, err := b.Fill()
	if regenerated {
		b.log.Info("no sets left, board regenerated")
	}
	return regenerated, err
}

// Hint returns the slots of the first set on the board.
func (b *Board) Hint() (i, j, k int, ok bool) {
	return FindSet(b.cards)
}

// Redeal discards the board and deals a fresh one.
func (b *Board) Redeal() error {
	prev := b.cards
	b.cards = nil
	if _, err := b.Fill(); err != nil {
		b.cards = prev
		return err
	}
	return nil
}
