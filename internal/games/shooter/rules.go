package shooter

import (
	"math/rand"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/neon-arcade/internal/config"
	"github.com/vovakirdan/neon-arcade/internal/core"
	"github.com/vovakirdan/neon-arcade/internal/engine"
)

// rules plugs the shooter's mechanics into the engine: a free-moving ship
// with an auto-firing cannon, falling enemies, and a boss every time the
// score reaches the threshold.
type rules struct {
	cfg     config.ShooterConfig
	rng     *rand.Rand
	logger  *log.Logger
	spawner engine.Spawner
	scorer  engine.Scorer
	boss    engine.BossTrigger

	cooldown engine.Countdown // ticks until the cannon can fire again
	banner   engine.Countdown // ticks the level banner stays up

	player *engine.Entity
	stars  []*engine.Entity
	hits   []engine.Hit // resolved in Collide, scored in React
}

func newRules(cfg config.ShooterConfig, rng *rand.Rand, logger *log.Logger) *rules {
	r := &rules{
		cfg:    cfg,
		rng:    rng,
		logger: logger,
		boss:   engine.BossTrigger{Threshold: cfg.Boss.Threshold},
	}
	r.spawner = engine.Spawner{
		Kind:  engine.KindEnemy,
		Cap:   cfg.Enemies.Cap,
		Place: r.placeEnemy,
		Table: engine.SpawnTable{Variants: []engine.Variant{{
			Name:   "fighter",
			Weight: 1,
			Width:  engine.Range{Min: cfg.Enemies.Width, Max: cfg.Enemies.Width},
			Height: engine.Range{Min: cfg.Enemies.Height, Max: cfg.Enemies.Height},
		}}},
	}
	if cfg.Difficulty.Enabled {
		r.scorer.LevelUp = cfg.Difficulty.LevelUp
	}
	return r
}

func (r *rules) Defaults() engine.Defaults {
	return engine.Defaults{
		BaseSpeed:     r.cfg.Enemies.BaseSpeed,
		SpawnInterval: r.cfg.Enemies.SpawnInterval,
	}
}

func (r *rules) Begin(_ *engine.Session, w *engine.World) {
	r.boss.Reset()
	r.cooldown.Stop()
	r.banner.Stop()
	r.hits = nil

	r.stars = r.makeStars(w)

	p := r.cfg.Player
	r.player, _ = w.Add(engine.Entity{
		Kind:   engine.KindPlayer,
		Anchor: engine.AnchorCenter,
		Pos:    engine.Vec{X: p.StartX, Y: p.StartY},
		Size:   engine.Vec{X: p.Width, Y: p.Height},
	})
}

// AdvanceTimers runs in every phase. Firing is gated in Move, which only
// runs while playing, so an expiry during a pause has no effect.
func (r *rules) AdvanceTimers(*engine.Session, *engine.World, core.InputFrame) {
	r.cooldown.Tick()
	r.banner.Tick()
}

func (r *rules) Move(s *engine.Session, w *engine.World, in core.InputFrame) {
	r.steer(in)
	if in.IsHeld(core.ActionFire) && !r.cooldown.Active() {
		r.fire(w)
	}
	r.cfg.Effects.Thrust.Emit(w, engine.Vec{X: r.player.Pos.X, Y: r.player.Pos.Y + r.cfg.Effects.ThrustOffset}, r.rng)

	for _, b := range w.Of(engine.KindBullet) {
		engine.Advance(b, 1)
		if b.Box().Top < 0 {
			b.Destroyed = true
		}
	}

	// Enemies share the current speed, so a level-up speeds up the whole wave
	for _, e := range w.Of(engine.KindEnemy) {
		e.Vel.Y = s.BaseSpeed
		engine.Advance(e, 1)
	}

	if boss := w.First(engine.KindBoss); boss != nil {
		r.jitterBoss(boss)
	}

	engine.AdvanceAll(w, 1, engine.KindParticle)

	h := r.cfg.World.Height
	for _, star := range r.stars {
		engine.Advance(star, 1)
		engine.WrapDown(star, h, h)
	}
}

func (r *rules) Spawn(s *engine.Session, w *engine.World) {
	bossAlive := w.Count(engine.KindBoss) > 0
	if r.boss.Check(s.Score, bossAlive) {
		r.spawnBoss(w)
		r.logger.Info("boss spawned", "score", s.Score, "level", s.Level, "health", r.cfg.Boss.Health)
		return
	}
	if bossAlive {
		return
	}
	r.spawner.MaybeSpawn(s, w, r.rng)
}

func (r *rules) Collide(_ *engine.Session, w *engine.World) bool {
	targets := append(w.Of(engine.KindEnemy), w.Of(engine.KindBoss)...)
	r.hits = engine.ResolveHits(w.Of(engine.KindBullet), targets)

	if hit := engine.FirstLethal(r.player, w.Of(engine.KindEnemy), w.Of(engine.KindBoss)); hit != nil {
		r.logger.Debug("ship destroyed", "by", hit.Kind, "id", hit.ID)
		return true
	}

	// An enemy that slips past the bottom edge ends the game
	for _, e := range w.Of(engine.KindEnemy) {
		if e.Box().Center().Y > r.cfg.World.Height {
			r.logger.Debug("enemy breached the bottom edge", "id", e.ID)
			return true
		}
	}
	return false
}

func (r *rules) React(s *engine.Session, w *engine.World) {
	for _, h := range r.hits {
		if !h.Killed {
			continue
		}
		r.cfg.Effects.Explosion.Emit(w, h.At, r.rng)

		if h.Target.Kind == engine.KindBoss {
			r.scorer.OnBossDefeated(s)
			r.banner.Start(r.cfg.Effects.BannerTicks)
			r.logger.Info("boss defeated", "level", s.Level, "speed", s.BaseSpeed, "interval", s.SpawnInterval)
		}
		r.scorer.OnTargetDestroyed(s, h.Target)
	}
	r.hits = nil
}

// steer moves the ship by the held direction keys and keeps it in bounds.
func (r *rules) steer(in core.InputFrame) {
	speed := r.cfg.Player.Speed
	if in.IsHeld(core.ActionLeft) {
		r.player.Pos.X -= speed
	}
	if in.IsHeld(core.ActionRight) {
		r.player.Pos.X += speed
	}
	if in.IsHeld(core.ActionUp) {
		r.player.Pos.Y -= speed
	}
	if in.IsHeld(core.ActionDown) {
		r.player.Pos.Y += speed
	}

	p := r.cfg.Player
	engine.ClampTo(r.player, engine.Box{Left: p.MinX, Top: p.MinY, Right: p.MaxX, Bottom: p.MaxY})
}

func (r *rules) fire(w *engine.World) {
	b := r.cfg.Bullets
	w.MustAdd(engine.Entity{
		Kind: engine.KindBullet,
		Pos:  engine.Vec{X: r.player.Pos.X - b.Width/2, Y: r.player.Pos.Y - b.Offset},
		Size: engine.Vec{X: b.Width, Y: b.Height},
		Vel:  engine.Vec{Y: -b.Speed},
	})
	r.cooldown.Start(b.Cooldown)
}

// placeEnemy drops a new enemy at a random column near the top edge.
func (r *rules) placeEnemy(_ engine.Variant, size engine.Vec, speed float64, rng *rand.Rand) engine.Entity {
	return engine.Entity{
		Anchor: engine.AnchorCenter,
		Pos:    engine.Vec{X: r.cfg.Enemies.SpawnX.Sample(rng), Y: r.cfg.Enemies.SpawnY},
		Size:   size,
		Vel:    engine.Vec{Y: speed},
	}
}

func (r *rules) spawnBoss(w *engine.World) {
	b := r.cfg.Boss
	e := engine.Entity{
		Kind:    engine.KindBoss,
		Variant: "mothership",
		Pos:     engine.Vec{X: b.X, Y: b.Y},
		Size:    engine.Vec{X: b.Width, Y: b.Height},
	}
	e.WithHealth(b.Health)
	if _, err := w.Add(e); err != nil {
		r.logger.Warn("boss not spawned", "err", err)
	}
}

// jitterBoss shifts the boss sideways by a random step, kept inside the world.
func (r *rules) jitterBoss(boss *engine.Entity) {
	if len(r.cfg.Boss.Jitter) == 0 {
		return
	}
	boss.Pos.X += r.cfg.Boss.Jitter[r.rng.Intn(len(r.cfg.Boss.Jitter))]
	boss.Pos.X = max(0, min(boss.Pos.X, r.cfg.World.Width-boss.Size.X))
}

func (r *rules) makeStars(w *engine.World) []*engine.Entity {
	sf := r.cfg.Stars
	stars := make([]*engine.Entity, 0, sf.Count)
	for i := 0; i < sf.Count; i++ {
		size := sf.Size.Sample(r.rng)
		star := w.MustAdd(engine.Entity{
			Kind:    engine.KindBackgroundTile,
			Variant: "star",
			Pos: engine.Vec{
				X: r.rng.Float64() * r.cfg.World.Width,
				Y: r.rng.Float64() * r.cfg.World.Height,
			},
			Size: engine.Vec{X: size, Y: size},
			Vel:  engine.Vec{X: sf.DriftX.Sample(r.rng), Y: sf.DriftY.Sample(r.rng)},
		})
		stars = append(stars, star)
	}
	return stars
}
