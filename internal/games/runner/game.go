// Package runner implements Neon Runner, a side-scrolling runner.
// A neon cube jumps over blocks and spikes that scroll in from the right;
// every cleared obstacle scores and every five points the run speeds up.
package runner

import (
	"fmt"
	"io"
	"math/rand"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/neon-arcade/internal/canvas"
	"github.com/vovakirdan/neon-arcade/internal/config"
	"github.com/vovakirdan/neon-arcade/internal/core"
	"github.com/vovakirdan/neon-arcade/internal/engine"
	"github.com/vovakirdan/neon-arcade/internal/registry"
)

// GameID is the registry and score-storage identifier.
const GameID = "runner"

// Visual characters for rendering
const (
	CubeChar   = '█'
	CubeEdge   = '▓'
	BlockChar  = '▓'
	SpikeChar  = '▲'
	GroundChar = '▀'
	StarChar   = '·'
)

// Game implements the Neon Runner game logic on the arcade engine.
type Game struct {
	runtime core.RuntimeConfig
	cfg     config.RunnerConfig
	rules   *rules
	eng     *engine.Engine
	canvas  *canvas.Canvas
	store   engine.BestScoreStore
	logger  *log.Logger
}

// configPath stores the custom config path set via CLI
var configPath string
var difficultyPreset config.DifficultyPreset

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset.
func SetDifficultyPreset(preset string) {
	if p, ok := config.ParsePreset(preset); ok && preset != "" {
		difficultyPreset = p
		return
	}
	difficultyPreset = "" // Use config default
}

// New creates a new Neon Runner game instance.
func New() *Game {
	return &Game{
		store:  &engine.MemoryBestScores{},
		logger: log.New(io.Discard),
	}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return GameID
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Neon Runner"
}

// SetBestScores sets where the best score is loaded from and saved to.
func (g *Game) SetBestScores(store engine.BestScoreStore) {
	if store != nil {
		g.store = store
	}
}

// SetLogger sets the logger for lifecycle events.
func (g *Game) SetLogger(l *log.Logger) {
	if l != nil {
		g.logger = l.WithPrefix(GameID)
	}
}

// Reset loads the configuration and prepares a new run on the start screen.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime

	// Load game config
	cfg, err := config.LoadRunner(configPath)
	if err != nil {
		g.logger.Warn("using default config", "err", err)
		cfg = config.DefaultRunnerConfig()
	}

	// Apply difficulty preset if set
	if difficultyPreset != "" {
		config.ApplyRunnerPreset(&cfg, difficultyPreset)
	}
	for _, w := range config.ValidateRunner(&cfg) {
		g.logger.Warn("config adjusted", "detail", w)
	}
	g.cfg = cfg

	g.rules = newRules(cfg, rand.New(rand.NewSource(runtime.Seed)), g.logger)
	g.canvas = canvas.New(engine.Box{Right: cfg.World.Width, Bottom: cfg.World.Height}, g.style)
	g.eng = engine.New(g.rules,
		engine.WithRenderer(g.canvas),
		engine.WithBestScores(g.store),
		engine.WithLogger(g.logger),
	)
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	return core.StepResult{State: g.eng.Step(in)}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return g.eng.State()
}

// Engine exposes the underlying engine for tests and tooling.
func (g *Game) Engine() *engine.Engine {
	return g.eng
}

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	area := core.NewRect(0, 1, dst.Width(), dst.Height()-1)

	// Ground first so obstacles standing on it stay visible
	_, groundRow := g.canvas.ProjectPoint(engine.Vec{Y: g.rules.groundY}, area)
	for y := groundRow; y < area.Bottom(); y++ {
		r := ' '
		if y == groundRow {
			r = GroundChar
		}
		dst.DrawHLine(0, y, dst.Width(), r, core.ColorMagenta)
	}
	g.canvas.Draw(dst, area)

	g.drawHUD(dst)

	s := g.eng.Session()
	switch s.Phase {
	case engine.PhaseStart:
		canvas.Panel(dst, core.ColorCyan, "NEON RUNNER",
			"Press ENTER to start",
			"SPACE/UP jump  P pause",
			fmt.Sprintf("Best: %d", s.BestScore))
	case engine.PhasePaused:
		canvas.Panel(dst, core.ColorYellow, "PAUSED", "Press P to resume")
	case engine.PhaseGameOver:
		canvas.Panel(dst, core.ColorRed, "GAME OVER",
			fmt.Sprintf("Score: %d  Best: %d", s.Score, s.BestScore),
			"Press R or ENTER to restart",
			"Press B for the title screen")
	}
}

func (g *Game) drawHUD(dst *core.Screen) {
	s := g.eng.Session()
	dst.DrawHLine(0, 0, dst.Width(), ' ', core.ColorDefault)

	scoreText := fmt.Sprintf(" Score: %d ", s.Score)
	dst.DrawTextColored(2, 0, scoreText, core.ColorCyan)

	right := fmt.Sprintf(" Spd: %.1f  Best: %d ", s.BaseSpeed, s.BestScore)
	dst.DrawTextColored(dst.Width()-len(right)-2, 0, right, core.ColorPink)
}

// style maps runner sprites to terminal glyphs.
func (g *Game) style(s engine.Sprite) canvas.Style {
	switch s.Kind {
	case engine.KindPlayer:
		return canvas.Style{Shape: canvas.ShapeFrame, Fill: CubeChar, Edge: CubeEdge, Color: core.ColorCyan}
	case engine.KindObstacle:
		if s.Variant == "spike" {
			return canvas.Style{Shape: canvas.ShapeTriangleUp, Fill: SpikeChar, Color: core.ColorOrange}
		}
		return canvas.Style{Shape: canvas.ShapeFill, Fill: BlockChar, Color: core.ColorPink}
	case engine.KindBackgroundTile:
		if s.Variant == "star" {
			return canvas.Style{Fill: StarChar, Color: core.ColorSlate}
		}
		return cityStyle(s.Variant)
	}
	return canvas.DefaultStylist(s)
}

func cityStyle(variant string) canvas.Style {
	layer := strings.TrimPrefix(variant, "city-")
	switch layer {
	case "0":
		return canvas.Style{Fill: '░', Color: core.ColorNavy}
	case "1":
		return canvas.Style{Fill: '▒', Color: core.ColorNavy}
	default:
		return canvas.Style{Fill: '▒', Color: core.ColorPurple}
	}
}

// Register the game with the registry
func init() {
	registry.Register(GameID, func() registry.Game {
		return New()
	})
}
