// setgame is a terminal version of the Set card game.
//
// Usage:
//
//	setgame list         - List available games
//	setgame play [game]  - Play a game (default: set)
//	setgame deal         - Deal a board and print it
//	setgame layout       - Show the card layout for a viewport
//
// Global flags:
//
//	--fps <rate>         - Set tick rate (default: 60)
//	--seed <value>       - Set RNG seed for reproducible deals
//	--config <path>      - Custom config YAML
//	--log-file <path>    - Write logs to a file while playing
//	--log-level <level>  - debug, info, warn or error (default: info)
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-set/internal/config"

	// Import games to register them
	_ "github.com/vovakirdan/tui-set/internal/games/setgame"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagConfig   string
	flagLogFile  string
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:           "setgame",
	Short:         "Set - find three matching cards in your terminal",
	SilenceUsage:  true,
	SilenceErrors: true,
	Long: `Set is a pattern-matching card game. Twelve cards are dealt; pick
three cards where every attribute (shape, color, shading, count) is
either the same on all three or different on all three.

Available commands:
  list     - Show all available games
  play     - Play a game
  deal     - Deal a board and print the cards
  layout   - Show the card layout for a viewport

Examples:
  setgame play
  setgame play --seed 42 --log-file set.log --log-level debug
  setgame deal --seed 7
  setgame layout --width 1280 --height 720`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Log file (logs are discarded while playing if empty)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(dealCmd)
	rootCmd.AddCommand(layoutCmd)
}

// newLogger creates a logger writing to w at the --log-level level.
func newLogger(w io.Writer) (*log.Logger, error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, fmt.Errorf("invalid --log-level %q: %w", flagLogLevel, err)
	}
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "setgame",
		Level:           level,
	}), nil
}

// openLogFile returns the --log-file writer, or io.Discard when unset.
// The returned close function is always safe to call.
func openLogFile() (io.Writer, func(), error) {
	if flagLogFile == "" {
		return io.Discard, func() {}, nil
	}
	f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}
	//nolint:errcheck // Best-effort close on exit
	return f, func() { f.Close() }, nil
}

// loadConfig loads the game config honoring --config.
func loadConfig() (config.SetConfig, error) {
	return config.LoadSet(flagConfig)
}

// fail prints an error and exits.
func fail(err error) {
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	os.Exit(1)
}
