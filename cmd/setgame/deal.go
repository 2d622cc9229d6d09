package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-set/internal/core"
	"github.com/vovakirdan/tui-set/internal/games/setgame"
	setcore "github.com/vovakirdan/tui-set/internal/games/setgame/core"
)

var dealCmd = &cobra.Command{
	Use:   "deal",
	Short: "Deal a board and print it",
	Long: `Deals a board of twelve cards without starting the TUI, prints the
cards in slot order and the first set found.

Examples:
  setgame deal
  setgame deal --seed 42 --log-level debug`,
	Args: cobra.NoArgs,
	Run:  runDeal,
}

func runDeal(cmd *cobra.Command, args []string) {
	gameCfg, err := loadConfig()
	if err != nil {
		fail(err)
	}
	logger, err := newLogger(os.Stderr)
	if err != nil {
		fail(err)
	}

	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	game := setgame.NewWithConfig(gameCfg, logger, nil)
	game.Reset(core.RuntimeConfig{Seed: seed, Cell: gameCfg.Geometry.CellMetrics()})
	if err := game.Err(); err != nil {
		fail(err)
	}

	board := game.Board()
	fmt.Printf("Seed: %d\n\n", seed)
	fmt.Print(setgame.DescribeBoard(board))

	cards := board.Cards()
	i, j, k, ok := board.Hint()
	if !ok {
		fail(setcore.ErrFillExhausted)
	}
	fmt.Printf("\n%d sets on the board; first: %d, %d, %d\n", setcore.CountSets(cards), i+1, j+1, k+1)
	fmt.Printf("  %s\n  %s\n  %s\n", cards[i], cards[j], cards[k])
}
