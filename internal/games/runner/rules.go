package runner

import (
	"math/rand"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/neon-arcade/internal/config"
	"github.com/vovakirdan/neon-arcade/internal/core"
	"github.com/vovakirdan/neon-arcade/internal/engine"
)

// rules plugs the runner's mechanics into the engine: a jumping cube, ground
// obstacles scrolling left, and a parallax backdrop.
type rules struct {
	cfg     config.RunnerConfig
	rng     *rand.Rand
	logger  *log.Logger
	body    engine.Body
	spawner engine.Spawner
	scorer  engine.Scorer
	groundY float64

	player *engine.Entity
	city   [][]*engine.Entity // buildings per parallax layer
	stars  []*engine.Entity
}

func newRules(cfg config.RunnerConfig, rng *rand.Rand, logger *log.Logger) *rules {
	r := &rules{
		cfg:     cfg,
		rng:     rng,
		logger:  logger,
		groundY: cfg.World.Height - cfg.Physics.GroundHeight,
	}
	r.spawner = engine.Spawner{
		Kind:  engine.KindObstacle,
		Cap:   cfg.Obstacles.Cap,
		Table: cfg.Obstacles.Table,
		Place: r.placeObstacle,
	}
	if cfg.Difficulty.Enabled {
		r.scorer.Escalation = cfg.Difficulty.Escalation
	}
	return r
}

func (r *rules) Defaults() engine.Defaults {
	return engine.Defaults{
		BaseSpeed:     r.cfg.Obstacles.BaseSpeed,
		SpawnInterval: r.cfg.Obstacles.SpawnInterval,
	}
}

func (r *rules) Begin(s *engine.Session, w *engine.World) {
	r.body = engine.Body{
		Gravity:      r.cfg.Physics.Gravity,
		JumpVelocity: r.cfg.Physics.JumpImpulse,
		MaxFall:      r.cfg.Physics.MaxFallSpeed,
		GroundY:      r.groundY,
		OnGround:     true,
	}

	r.stars = r.makeStars(w)
	r.city = r.makeCity(w)

	p := r.cfg.Player
	r.player, _ = w.Add(engine.Entity{
		Kind: engine.KindPlayer,
		Pos:  engine.Vec{X: p.X, Y: r.groundY - p.Height},
		Size: engine.Vec{X: p.Width, Y: p.Height},
	})
}

func (r *rules) Move(s *engine.Session, w *engine.World, in core.InputFrame) {
	if in.Has(core.ActionJump) || in.Has(core.ActionUp) {
		r.body.Jump(r.player)
	}
	r.body.Apply(r.player)

	engine.AdvanceAll(w, 1, engine.KindObstacle)

	r.scrollBackground(s)
}

func (r *rules) Spawn(s *engine.Session, w *engine.World) {
	r.spawner.MaybeSpawn(s, w, r.rng)
}

func (r *rules) Collide(_ *engine.Session, w *engine.World) bool {
	hit := engine.FirstLethal(r.player, w.Of(engine.KindObstacle))
	if hit != nil {
		r.logger.Debug("runner hit obstacle", "variant", hit.Variant, "id", hit.ID)
	}
	return hit != nil
}

// React scores passed obstacles, then culls the ones far off screen.
// An obstacle is always scored before it is culled.
func (r *rules) React(s *engine.Session, w *engine.World) {
	leading := r.player.Box().Left
	for _, ob := range w.Of(engine.KindObstacle) {
		speed := s.BaseSpeed
		if r.scorer.OnEntityPassed(s, ob, leading) && s.BaseSpeed != speed {
			r.logger.Info("difficulty escalated", "score", s.Score, "speed", s.BaseSpeed, "interval", s.SpawnInterval)
		}
		if ob.Box().Right < -r.cfg.Obstacles.CullMargin {
			ob.Destroyed = true
		}
	}
}

// placeObstacle puts a new obstacle on the ground just past the right edge.
func (r *rules) placeObstacle(_ engine.Variant, size engine.Vec, speed float64, _ *rand.Rand) engine.Entity {
	return engine.Entity{
		Pos:  engine.Vec{X: r.cfg.World.Width + r.cfg.Obstacles.SpawnOffset, Y: r.groundY - size.Y},
		Size: size,
		Vel:  engine.Vec{X: -speed},
	}
}
