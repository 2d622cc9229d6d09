// Package setgame provides the Set card game for the platform.
package setgame

import (
	"fmt"
	"io"
	"math/rand"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-set/internal/config"
	platformcore "github.com/vovakirdan/tui-set/internal/core"
	"github.com/vovakirdan/tui-set/internal/games/setgame/core"
	"github.com/vovakirdan/tui-set/internal/registry"
)

// Overlay texts.
const (
	GreetingText   = "Hello, world!"
	RegeneratedMsg = "No more sets. Regenerating..."
)

// hudHeight is the number of screen rows above the board.
const hudHeight = 2

// Package-level settings applied to games created through the registry.
var (
	settings = config.DefaultSetConfig()
	logger   = log.New(io.Discard)
)

// UseConfig sets the configuration for games created after the call.
func UseConfig(cfg config.SetConfig) {
	settings = cfg
}

// UseLogger sets the logger for games created after the call.
func UseLogger(l *log.Logger) {
	if l == nil {
		l = log.New(io.Discard)
	}
	logger = l
}

func init() {
	registry.Register("set", func() registry.Game {
		return New()
	})
}

// Game is one Set session: it owns the board, the overlay message and the
// score. All methods must be called from a single goroutine.
type Game struct {
	cfg      config.SetConfig
	log      *log.Logger
	now      func() time.Time
	rng      *rand.Rand
	renderer *Renderer

	board   *core.Board
	message *core.Message

	// Screen dimensions
	screenW int
	screenH int
	cell    platformcore.CellMetrics

	// Status
	score    int
	gameOver bool
	err      error
	hint     []int
}

// New creates a Set game using the package-level settings.
func New() *Game {
	return NewWithConfig(settings, logger, nil)
}

// NewWithConfig creates a Set game with explicit dependencies.
// A nil clock uses time.Now.
func NewWithConfig(cfg config.SetConfig, l *log.Logger, now func() time.Time) *Game {
	if l == nil {
		l = log.New(io.Discard)
	}
	if now == nil {
		now = time.Now
	}
	return &Game{
		cfg: cfg,
		log: l,
		now: now,
	}
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return "set"
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Set"
}

// Reset starts a new session with a freshly dealt board.
func (g *Game) Reset(cfg platformcore.RuntimeConfig) {
	g.rng = rand.New(rand.NewSource(cfg.Seed))
	g.screenW = cfg.ScreenW
	g.screenH = cfg.ScreenH
	g.cell = cfg.Cell
	if g.cell.W <= 0 || g.cell.H <= 0 {
		g.cell = g.cfg.Geometry.CellMetrics()
	}
	g.score = 0
	g.gameOver = false
	g.err = nil
	g.hint = nil
	g.message = core.NewMessage(g.cfg.Message.Duration(), g.now)

	if g.renderer == nil {
		r, err := NewRenderer(ThemeFromConfig(g.cfg.Theme))
		if err != nil {
			g.fatal(err)
			return
		}
		g.renderer = r
	}

	board, err := core.NewBoard(g.boardOptions())
	if err != nil {
		g.board = nil
		g.fatal(err)
		return
	}
	g.board = board
	g.log.Info("session started", "seed", cfg.Seed, "sets", core.CountSets(board.Cards()))

	if g.cfg.Message.Greeting {
		g.message.Set(GreetingText)
	}
}

func (g *Game) boardOptions() core.Options {
	card := g.cfg.Geometry.CardSize()
	return core.Options{
		Rand:            g.rng,
		MaxDrawAttempts: g.cfg.Board.MaxDrawAttempts,
		MaxFillAttempts: g.cfg.Board.MaxFillAttempts,
		Card:            card,
		Margin:          g.cfg.Geometry.Margin,
		Layouts:         core.DefaultLayouts(card),
		Logger:          g.log.WithPrefix("board"),
	}
}

// Resize adapts to a new screen size. The board is kept; only the
// geometry changes.
func (g *Game) Resize(width, height int) {
	g.screenW = width
	g.screenH = height
}

// Viewport returns the board area in surface pixels.
func (g *Game) Viewport() platformcore.RectF {
	rows := g.screenH - hudHeight
	if rows < 0 {
		rows = 0
	}
	return platformcore.NewRectF(
		0,
		float64(hudHeight)*g.cell.H,
		float64(g.screenW)*g.cell.W,
		float64(rows)*g.cell.H,
	)
}

// Board returns the current board, nil when dealing failed.
func (g *Game) Board() *core.Board {
	return g.board
}

// Message returns the overlay message.
func (g *Game) Message() *core.Message {
	return g.message
}

// Err returns the error that ended the session, if any.
func (g *Game) Err() error {
	return g.err
}

// Step applies one tick of input: actions first, then the coalesced click.
func (g *Game) Step(input platformcore.InputFrame) platformcore.StepResult {
	// Handle restart
	if input.Has(platformcore.ActionRestart) {
		if g.gameOver {
			g.Reset(platformcore.RuntimeConfig{
				Seed:    g.rng.Int63(),
				ScreenW: g.screenW,
				ScreenH: g.screenH,
				Cell:    g.cell,
			})
			return platformcore.StepResult{State: g.State()}
		}
		g.hint = nil
		if err := g.board.Redeal(); err != nil {
			g.fatal(err)
			return platformcore.StepResult{State: g.State()}
		}
		g.log.Info("board redealt")
	}

	if g.gameOver || g.board == nil {
		return platformcore.StepResult{State: g.State()}
	}

	if input.Has(platformcore.ActionDeselect) {
		g.board.ClearSelection()
		g.hint = nil
	}

	if input.Has(platformcore.ActionHint) {
		g.showHint()
	}

	if p, ok := input.Click(); ok {
		g.click(p)
	}

	return platformcore.StepResult{State: g.State()}
}

func (g *Game) showHint() {
	i, j, k, ok := g.board.Hint()
	if !ok {
		return
	}
	g.hint = []int{i, j, k}
	g.message.Set(fmt.Sprintf("Set: %d, %d, %d", i+1, j+1, k+1))
}

func (g *Game) click(p platformcore.Point) {
	g.hint = nil
	res, err := g.board.HandleClick(g.Viewport(), p)
	if err != nil {
		g.fatal(err)
		return
	}

	switch res.Outcome {
	case core.OutcomeMatch:
		g.score++
		g.log.Info("set found", "cards", res.Attempt.String(), "score", g.score)
		if res.Regenerated {
			g.message.Set(RegeneratedMsg)
		}
	case core.OutcomeMismatch:
		g.log.Debug("not a set", "cards", res.Attempt.String())
	}
}

// fatal ends the session.
func (g *Game) fatal(err error) {
	g.gameOver = true
	g.err = err
	g.log.Error("session ended", "err", err)
}

// Render draws the HUD, the board and any overlays.
func (g *Game) Render(dst *platformcore.Screen) {
	dst.Clear()
	g.renderHUD(dst)

	if g.board != nil && g.renderer != nil && g.screenH > hudHeight {
		canvas := platformcore.NewCanvas(dst, g.cell)
		g.renderer.DrawBoard(canvas, g.board, g.Viewport(), g.hint)
		if g.message != nil && g.message.Visible() {
			g.renderer.DrawMessage(canvas, g.Viewport(), g.message.Text())
		}
	}

	if g.gameOver {
		lines := []string{"Game Over"}
		if g.err != nil {
			lines = append(lines, g.err.Error())
		}
		g.renderOverlay(dst, append(lines, "Press R to restart")...)
	}
}

// renderHUD draws the top status bar.
func (g *Game) renderHUD(dst *platformcore.Screen) {
	hud := " Set | Score: " + strconv.Itoa(g.score)
	if g.board != nil {
		hud += " | Sets on board: " + strconv.Itoa(core.CountSets(g.board.Cards()))
		if g.board.IsSelecting() {
			hud += " | Selected: " + strconv.Itoa(g.board.Selection().Len()) + "/3"
		}
	}
	dst.DrawTextColored(0, 0, hud, platformcore.ColorCyan)

	// Separator
	for x := 0; x < dst.Width(); x++ {
		dst.SetCell(x, 1, platformcore.Cell{Rune: '─', Color: platformcore.ColorGray})
	}
}

// renderOverlay draws a centered box with the given lines.
func (g *Game) renderOverlay(dst *platformcore.Screen, lines ...string) {
	w := dst.Width()
	h := dst.Height()

	maxLen := 0
	for _, line := range lines {
		maxLen = platformcore.Max(maxLen, len([]rune(line)))
	}
	boxW := platformcore.Min(maxLen+4, w)
	boxH := len(lines)*2 + 1
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	for y := boxY; y < boxY+boxH && y < h; y++ {
		for x := boxX; x < boxX+boxW && x < w; x++ {
			if x < 0 || y < 0 {
				continue
			}
			isTopOrBottom := y == boxY || y == boxY+boxH-1
			isLeftOrRight := x == boxX || x == boxX+boxW-1
			switch {
			case isTopOrBottom && isLeftOrRight:
				dst.Set(x, y, '+')
			case isTopOrBottom:
				dst.Set(x, y, '-')
			case isLeftOrRight:
				dst.Set(x, y, '|')
			default:
				dst.Set(x, y, ' ')
			}
		}
	}

	for i, line := range lines {
		if r := []rune(line); len(r) > boxW-4 && boxW > 4 {
			line = string(r[:boxW-4])
		}
		dst.DrawTextCentered(boxY+1+i*2, line)
	}
}

// State returns the current game state.
func (g *Game) State() platformcore.GameState {
	return platformcore.GameState{
		Score:    g.score,
		GameOver: g.gameOver,
	}
}

// DescribeBoard returns the cards in slot order, one per line, numbered from 1.
func DescribeBoard(b *core.Board) string {
	var sb strings.Builder
	for i, c := range b.Cards() {
		fmt.Fprintf(&sb, "%2d  %s\n", i+1, c)
	}
	return sb.String()
}
