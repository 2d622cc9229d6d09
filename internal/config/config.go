// Package config provides YAML-based configuration loading for the Set game.
package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/vovakirdan/tui-set/internal/core"
)

// ErrInvalidConfig is returned by Validate for out-of-range values.
var ErrInvalidConfig = errors.New("invalid config")

// SetConfig contains all configuration for the Set game.
type SetConfig struct {
	Board    BoardConfig    `yaml:"board"`
	Geometry GeometryConfig `yaml:"geometry"`
	Message  MessageConfig  `yaml:"message"`
	Theme    ThemeConfig    `yaml:"theme"`
}

// BoardConfig bounds the random draws used to build a board.
type BoardConfig struct {
	MaxDrawAttempts int `yaml:"max_draw_attempts"` // Redraws allowed for one distinct card
	MaxFillAttempts int `yaml:"max_fill_attempts"` // Whole-board deals allowed before giving up
}

// GeometryConfig defines the card and terminal cell sizes in pixels.
type GeometryConfig struct {
	CardWidth  float64 `yaml:"card_width"`
	CardHeight float64 `yaml:"card_height"`
	Margin     float64 `yaml:"margin"`
	CellWidth  float64 `yaml:"cell_width"`
	CellHeight float64 `yaml:"cell_height"`
}

// MessageConfig controls the overlay message.
type MessageConfig struct {
	DurationMS int  `yaml:"duration_ms"`
	Greeting   bool `yaml:"greeting"` // Show a greeting when a session starts
}

// ColorPair is the fill and outline color of one card color.
type ColorPair struct {
	Fill   string `yaml:"fill"`
	Stroke string `yaml:"stroke"`
}

// ThemeConfig maps game colors to terminal colors by name.
type ThemeConfig struct {
	Yellow   ColorPair `yaml:"yellow"`
	Green    ColorPair `yaml:"green"`
	Purple   ColorPair `yaml:"purple"`
	Border   string    `yaml:"border"`
	Selected string    `yaml:"selected"`
	Message  string    `yaml:"message"`
}

// Duration returns the message duration.
func (m MessageConfig) Duration() time.Duration {
	return time.Duration(m.DurationMS) * time.Millisecond
}

// CellMetrics returns the configured terminal cell size.
func (g GeometryConfig) CellMetrics() core.CellMetrics {
	return core.CellMetrics{W: g.CellWidth, H: g.CellHeight}
}

// CardSize returns the configured natural card size.
func (g GeometryConfig) CardSize() core.Size {
	return core.Size{W: g.CardWidth, H: g.CardHeight}
}

// Validate checks that every value is usable.
func (c SetConfig) Validate() error {
	switch {
	case c.Board.MaxDrawAttempts <= 0:
		return fmt.Errorf("%w: board.max_draw_attempts must be positive", ErrInvalidConfig)
	case c.Board.MaxFillAttempts <= 0:
		return fmt.Errorf("%w: board.max_fill_attempts must be positive", ErrInvalidConfig)
	case c.Geometry.CardWidth <= 0 || c.Geometry.CardHeight <= 0:
		return fmt.Errorf("%w: geometry card size must be positive", ErrInvalidConfig)
	case c.Geometry.Margin < 0:
		return fmt.Errorf("%w: geometry.margin must not be negative", ErrInvalidConfig)
	case c.Geometry.CellWidth <= 0 || c.Geometry.CellHeight <= 0:
		return fmt.Errorf("%w: geometry cell size must be positive", ErrInvalidConfig)
	case c.Message.DurationMS <= 0:
		return fmt.Errorf("%w: message.duration_ms must be positive", ErrInvalidConfig)
	}

	names := map[string]string{
		"theme.yellow.fill":   c.Theme.Yellow.Fill,
		"theme.yellow.stroke": c.Theme.Yellow.Stroke,
		"theme.green.fill":    c.Theme.Green.Fill,
		"theme.green.stroke":  c.Theme.Green.Stroke,
		"theme.purple.fill":   c.Theme.Purple.Fill,
		"theme.purple.stroke": c.Theme.Purple.Stroke,
		"theme.border":        c.Theme.Border,
		"theme.selected":      c.Theme.Selected,
		"theme.message":       c.Theme.Message,
	}
	for key, name := range names {
		if _, ok := core.ParseColor(name); !ok {
			return fmt.Errorf("%w: %s: unknown color %q", ErrInvalidConfig, key, name)
		}
	}
	return nil
}
