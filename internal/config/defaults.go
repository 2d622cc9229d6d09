package config

import (
	_ "embed"
)

//go:embed defaults/set.yaml
var defaultSetYAML []byte

// DefaultSetConfig returns the default Set configuration.
func DefaultSetConfig() SetConfig {
	return SetConfig{
		Board: BoardConfig{
			MaxDrawAttempts: 1000,
			MaxFillAttempts: 1000,
		},
		Geometry: GeometryConfig{
			CardWidth:  252,
			CardHeight: 352,
			Margin:     10,
			CellWidth:  8,
			CellHeight: 16,
		},
		Message: MessageConfig{
			DurationMS: 1000,
			Greeting:   true,
		},
		Theme: ThemeConfig{
			Yellow:   ColorPair{Fill: "yellow", Stroke: "bright_yellow"},
			Green:    ColorPair{Fill: "green", Stroke: "bright_green"},
			Purple:   ColorPair{Fill: "magenta", Stroke: "bright_magenta"},
			Border:   "white",
			Selected: "bright_cyan",
			Message:  "bright_white",
		},
	}
}

// GetDefaultYAML returns the embedded default YAML for a game.
func GetDefaultYAML(gameID string) []byte {
	switch gameID {
	case "set":
		return defaultSetYAML
	default:
		return nil
	}
}
