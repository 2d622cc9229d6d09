package core

import "errors"

var (
	// ErrDrawExhausted means no non-duplicate card could be drawn within
	// the configured number of attempts.
	ErrDrawExhausted = errors.New("setgame: card draw attempts exhausted")

	// ErrFillExhausted means no board containing a set could be dealt
	// within the configured number of attempts.
	ErrFillExhausted = errors.New("setgame: board fill attempts exhausted")

	// ErrSelectionOverflow means more than three cards were selected at
	// once, which the toggle logic must never allow.
	ErrSelectionOverflow = errors.New("setgame: more than three cards selected")
)
