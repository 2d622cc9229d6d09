package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-set/internal/core"
	"github.com/vovakirdan/tui-set/internal/games/setgame"
	"github.com/vovakirdan/tui-set/internal/platform/tui"
	"github.com/vovakirdan/tui-set/internal/registry"
)

var playCmd = &cobra.Command{
	Use:   "play [game]",
	Short: "Play a game",
	Long: `Start playing the specified game (default: set).

Controls:
  Mouse click - Select or deselect a card
  Esc         - Clear the selection
  H           - Show a set
  R           - Deal a fresh board (restart after game over)
  Ctrl+S      - Save a screenshot to ~/.setgame/screenshots
  Q/Ctrl+C    - Quit

Examples:
  setgame play
  setgame play set --seed 42
  setgame play --config ./my-set.yaml`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPlay,
}

func runPlay(cmd *cobra.Command, args []string) error {
	gameID := "set"
	if len(args) > 0 {
		gameID = args[0]
	}

	// Check if game exists
	if !registry.Exists(gameID) {
		return fmt.Errorf("unknown game %q (run 'setgame list' to see available games)", gameID)
	}

	gameCfg, err := loadConfig()
	if err != nil {
		return err
	}

	// The alt screen owns the terminal, so logs go to --log-file only
	w, closeLog, err := openLogFile()
	if err != nil {
		return err
	}
	defer closeLog()
	logger, err := newLogger(w)
	if err != nil {
		return err
	}

	setgame.UseConfig(gameCfg)
	setgame.UseLogger(logger.WithPrefix(gameID))

	game, err := registry.Create(gameID)
	if err != nil {
		return err
	}

	width, height := 80, 24 // Defaults
	if tw, th, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = tw
		height = th
	}

	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
		Cell:     gameCfg.Geometry.CellMetrics(),
	}

	logger.Info("starting game", "game", gameID, "width", width, "height", height)
	// The model keeps the last row for key help
	if err := tui.Run(game, cfg, logger); err != nil {
		logger.Error("game stopped", "err", err)
		return err
	}
	return nil
}
