package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-set/internal/core"
	setcore "github.com/vovakirdan/tui-set/internal/games/setgame/core"
)

var (
	flagWidth  float64
	flagHeight float64
)

var layoutCmd = &cobra.Command{
	Use:   "layout",
	Short: "Show the card layout for a viewport",
	Long: `Picks the grid layout that best fits a viewport of the given size in
pixels and prints where each card would be drawn.

Examples:
  setgame layout --width 1000 --height 1000
  setgame layout --width 640 --height 352`,
	Args: cobra.NoArgs,
	Run:  runLayout,
}

func init() {
	layoutCmd.Flags().Float64Var(&flagWidth, "width", 1280, "Viewport width in pixels")
	layoutCmd.Flags().Float64Var(&flagHeight, "height", 720, "Viewport height in pixels")
}

func runLayout(cmd *cobra.Command, args []string) {
	if flagWidth <= 0 || flagHeight <= 0 {
		fail(errors.New("--width and --height must be positive"))
	}
	gameCfg, err := loadConfig()
	if err != nil {
		fail(err)
	}

	card := gameCfg.Geometry.CardSize()
	viewport := core.NewRectF(0, 0, flagWidth, flagHeight)
	layout := setcore.SelectLayout(viewport.AspectRatio(), setcore.DefaultLayouts(card))
	bc := setcore.NewBoardCalculator(viewport, layout, card, gameCfg.Geometry.Margin)

	fmt.Printf("Viewport: %gx%g (ratio %.3f)\n", flagWidth, flagHeight, viewport.AspectRatio())
	fmt.Printf("Layout:   %s (ratio %.3f)\n", layout.Name, layout.AspectRatio)
	fmt.Printf("Scale:    %.4f\n\n", bc.Scale())

	fmt.Printf("  %4s  %9s  %9s  %9s  %9s\n", "Slot", "Left", "Top", "Width", "Height")
	for idx := 0; idx < layout.Slots(); idx++ {
		r := setcore.NewCardCalculator(bc.CardBounds(idx), card).Rect()
		fmt.Printf("  %4d  %9.1f  %9.1f  %9.1f  %9.1f\n", idx+1, r.Left, r.Top, r.Width, r.Height)
	}
}
