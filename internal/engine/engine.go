// Package engine is a tick-based 2D arcade engine. It owns entity lifetime,
// bounding-box collision, timer-driven spawning, score and difficulty
// progression, and the START -> PLAYING <-> PAUSED -> GAME_OVER state machine.
// Games plug their mechanics in through Rules; drawing, input devices and
// best-score storage are collaborators behind interfaces.
package engine

import (
	"io"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/neon-arcade/internal/core"
)

// Rules are the game-specific parts of a tick. The engine calls them in a
// fixed order and only while the session is playing, except Begin.
type Rules interface {
	// Defaults returns the session values restored on every start.
	Defaults() Defaults

	// Begin populates a freshly cleared world (player, background).
	Begin(s *Session, w *World)

	// Move advances the player and every entity.
	Move(s *Session, w *World, in core.InputFrame)

	// Spawn creates new entities when spawners are due.
	Spawn(s *Session, w *World)

	// Collide runs the collision policies and reports lethal contact.
	Collide(s *Session, w *World) (lethal bool)

	// React updates score and difficulty from this tick's results.
	React(s *Session, w *World)
}

// TimerRules is implemented by rules that own countdown timers. Timers run
// every tick in every phase; their effects must check the phase themselves.
type TimerRules interface {
	AdvanceTimers(s *Session, w *World, in core.InputFrame)
}

// Engine drives one game: it owns the session and the world and runs the
// tick pipeline.
type Engine struct {
	rules    Rules
	session  *Session
	world    *World
	renderer Renderer
	store    BestScoreStore
	logger   *log.Logger
}

// Option configures an Engine.
type Option func(*Engine)

// WithRenderer sets the renderer collaborator.
func WithRenderer(r Renderer) Option {
	return func(e *Engine) {
		if r != nil {
			e.renderer = r
		}
	}
}

// WithBestScores sets the best-score persistence collaborator.
func WithBestScores(store BestScoreStore) Option {
	return func(e *Engine) {
		if store != nil {
			e.store = store
		}
	}
}

// WithLogger sets the logger used for lifecycle events.
func WithLogger(l *log.Logger) Option {
	return func(e *Engine) {
		if l != nil {
			e.logger = l
		}
	}
}

// New creates an engine in the start phase with the world prepared by
// rules.Begin. The best score is loaded once here.
func New(rules Rules, opts ...Option) *Engine {
	e := &Engine{
		rules:    rules,
		world:    NewWorld(),
		renderer: NopRenderer{},
		store:    &MemoryBestScores{},
		logger:   log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(e)
	}

	e.session = NewSession(rules.Defaults(), e.store.LoadBestScore())
	e.rules.Begin(e.session, e.world)
	e.world.Sync(e.renderer)
	return e
}

// Session returns the current session.
func (e *Engine) Session() *Session {
	return e.session
}

// World returns the entity world.
func (e *Engine) World() *World {
	return e.world
}

// Reset returns to the start phase with a fresh world. The best score is kept.
// A Back press on the game-over screen triggers it.
func (e *Engine) Reset() {
	best := e.session.BestScore
	e.world.Clear()
	e.session = NewSession(e.rules.Defaults(), best)
	e.rules.Begin(e.session, e.world)
	e.world.Sync(e.renderer)
}

// Step runs one tick:
//
//  0. input drives the state machine, timers advance
//  1. motion (player, then all entities)
//  2. spawning
//  3. collision, which may end the session
//  4. score and difficulty reactions
//  5. tick counter
//  6. sweep and renderer hand-off
//
// Steps 1-5 only run while playing. Step never blocks.
func (e *Engine) Step(in core.InputFrame) core.GameState {
	e.handleInput(in)
	s := e.session

	if t, ok := e.rules.(TimerRules); ok {
		t.AdvanceTimers(s, e.world, in)
	}

	if s.Running() {
		e.rules.Move(s, e.world, in)
		e.rules.Spawn(s, e.world)
		if e.rules.Collide(s, e.world) {
			e.gameOver()
		} else {
			e.rules.React(s, e.world)
			s.Tick++
		}
	}

	e.world.Sweep()
	e.world.Sync(e.renderer)
	return e.State()
}

func (e *Engine) handleInput(in core.InputFrame) {
	if in.Has(core.ActionBack) && e.session.Phase == PhaseGameOver {
		e.logger.Debug("back to start screen", "score", e.session.Score)
		e.Reset()
		return
	}
	for _, a := range [...]core.Action{core.ActionStart, core.ActionPause} {
		if !in.Has(a) {
			continue
		}
		t, ok := e.session.Handle(a)
		if !ok {
			continue
		}
		e.logger.Debug("phase change", "from", t.From, "to", t.To, "action", a)
		if t.Reset {
			e.world.Clear()
			e.rules.Begin(e.session, e.world)
			e.logger.Info("session started", "best", e.session.BestScore)
		}
		// One transition per tick; a restart and a pause in the same
		// frame must not both apply.
		return
	}
}

func (e *Engine) gameOver() {
	s := e.session
	if !s.End() {
		return
	}
	previous := s.BestScore
	if FinalizeBest(s) {
		e.store.SaveBestScore(s.BestScore)
	}
	e.logger.Info("game over", "score", s.Score, "best", s.BestScore, "previous_best", previous, "level", s.Level, "ticks", s.Tick)
}

// State reports the session status to the platform.
func (e *Engine) State() core.GameState {
	s := e.session
	return core.GameState{
		Score:     s.Score,
		BestScore: s.BestScore,
		Level:     s.Level,
		Started:   s.Phase != PhaseStart,
		GameOver:  s.Phase == PhaseGameOver,
		Paused:    s.Phase == PhasePaused,
	}
}
