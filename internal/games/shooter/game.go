// Package shooter implements Galaxy Shooter, a vertical space shooter.
// The ship flies freely in the lower part of the field and shoots down
// falling enemies; ten kills summon a mothership whose defeat raises the
// level. An enemy that slips past the bottom edge ends the game.
package shooter

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
const GameID = "shooter"

// Visual characters for rendering
const (
	ShipChar      = '█'
	EnemyChar     = '▼'
	BossFill      = '▒'
	BossEdge      = '█'
	BulletChar    = '│'
	ExplosionChar = '*'
	ExhaustChar   = '°'
	StarChar      = '.'
	HealthFull    = '■'
	HealthEmpty   = '□'
)

// Game implements the Galaxy Shooter game logic on the arcade engine.
type Game struct {
	runtime core.RuntimeConfig
	cfg     config.ShooterConfig
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

// New creates a new Galaxy Shooter game instance.
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
	return "Galaxy Shooter"
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

// Reset loads the configuration and prepares a new game on the start screen.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime

	cfg, err := config.LoadShooter(configPath)
	if err != nil {
		g.logger.Warn("using default config", "err", err)
		cfg = config.DefaultShooterConfig()
	}
	if difficultyPreset != "" {
		config.ApplyShooterPreset(&cfg, difficultyPreset)
	}
	for _, w := range config.ValidateShooter(&cfg) {
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

// BossActive reports whether the mothership is on the field.
func (g *Game) BossActive() bool {
	return g.eng.World().Count(engine.KindBoss) > 0
}

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	area := core.NewRect(0, 1, dst.Width(), dst.Height()-1)
	g.canvas.Draw(dst, area)
	g.drawHUD(dst)

	s := g.eng.Session()
	if g.rules.banner.Active() && s.Phase == engine.PhasePlaying {
		canvas.Banner(dst, core.ColorGreen, fmt.Sprintf("LEVEL %d!", s.Level))
	}

	switch s.Phase {
	case engine.PhaseStart:
		canvas.Panel(dst, core.ColorCyan, "GALAXY SHOOTER",
			"Press ENTER to start",
			"ARROWS/WASD move  SPACE fire  P pause",
			fmt.Sprintf("Best: %d", s.BestScore))
	case engine.PhasePaused:
		canvas.Panel(dst, core.ColorYellow, "PAUSED", "Press P to resume")
	case engine.PhaseGameOver:
		canvas.Panel(dst, core.ColorRed, "GAME OVER",
			fmt.Sprintf("Score: %d  Level: %d  Best: %d", s.Score, s.Level, s.BestScore),
			"Press R or ENTER to restart",
			"Press B for the title screen")
	}
}

func (g *Game) drawHUD(dst *core.Screen) {
	s := g.eng.Session()
	dst.DrawHLine(0, 0, dst.Width(), ' ', core.ColorDefault)
	dst.DrawTextColored(2, 0, fmt.Sprintf(" Score: %d  Level: %d ", s.Score, s.Level), core.ColorWhite)

	right := fmt.Sprintf(" Best: %d ", s.BestScore)
	if boss := g.eng.World().First(engine.KindBoss); boss != nil {
		right = fmt.Sprintf(" BOSS %s ", healthBar(boss.Health, g.cfg.Boss.Health, 10))
		dst.DrawTextColored(dst.Width()-len([]rune(right))-2, 0, right, core.ColorPurple)
		return
	}
	dst.DrawTextColored(dst.Width()-len(right)-2, 0, right, core.ColorCyan)
}

// healthBar renders hp out of total as a bar of width cells.
func healthBar(hp, total, width int) string {
	filled := 0
	if total > 0 {
		filled = (hp*width + total - 1) / total
	}
	filled = max(0, min(width, filled))
	return strings.Repeat(string(HealthFull), filled) + strings.Repeat(string(HealthEmpty), width-filled)
}

// style maps shooter sprites to terminal glyphs.
func (g *Game) style(s engine.Sprite) canvas.Style {
	switch s.Kind {
	case engine.KindPlayer:
		return canvas.Style{Shape: canvas.ShapeTriangleUp, Fill: ShipChar, Color: core.ColorCyan}
	case engine.KindEnemy:
		return canvas.Style{Shape: canvas.ShapeTriangleDown, Fill: EnemyChar, Color: core.ColorRed}
	case engine.KindBoss:
		return canvas.Style{Shape: canvas.ShapeFrame, Fill: BossFill, Edge: BossEdge, Color: core.ColorPurple}
	case engine.KindBullet:
		return canvas.Style{Fill: BulletChar, Color: core.ColorYellow}
	case engine.KindParticle:
		if s.Variant == "engine" {
			return canvas.Style{Fill: ExhaustChar, Color: core.ColorBlue}
		}
		return canvas.Style{Fill: ExplosionChar, Color: core.ColorOrange}
	case engine.KindBackgroundTile:
		return canvas.Style{Fill: StarChar, Color: core.ColorSlate}
	}
	return canvas.DefaultStylist(s)
}

// Register the game with the registry
func init() {
	registry.Register(GameID, func() registry.Game {
		return New()
	})
}
