package config

import (
	"fmt"

	"github.com/vovakirdan/neon-arcade/internal/engine"
)

// checker collects the adjustments made while clamping a config.
type checker struct {
	warnings []string
}

func (c *checker) warnf(format string, args ...any) {
	c.warnings = append(c.warnings, fmt.Sprintf(format, args...))
}

func (c *checker) positive(name string, v *float64, fallback float64) {
	if *v > 0 {
		return
	}
	c.warnf("%s must be positive, got %g; using %g", name, *v, fallback)
	*v = fallback
}

func (c *checker) atLeast(name string, v *int, floor int) {
	if *v >= floor {
		return
	}
	c.warnf("%s must be at least %d, got %d", name, floor, *v)
	*v = floor
}

func (c *checker) ordered(name string, r *engine.Range) {
	if r.Min <= r.Max {
		return
	}
	c.warnf("%s has min %g above max %g; swapped", name, r.Min, r.Max)
	r.Min, r.Max = r.Max, r.Min
}

func (c *checker) orderedInt(name string, r *engine.IntRange) {
	if r.Min <= r.Max {
		return
	}
	c.warnf("%s has min %d above max %d; swapped", name, r.Min, r.Max)
	r.Min, r.Max = r.Max, r.Min
}

func (c *checker) step(name string, st *engine.Step) {
	c.atLeast(name+".min_interval", &st.MinInterval, 1)
	c.atLeast(name+".interval_decrement", &st.IntervalDecrement, 0)
}

func (c *checker) stars(name string, s *StarField) {
	c.atLeast(name+".count", &s.Count, 0)
	c.ordered(name+".size", &s.Size)
	c.ordered(name+".drift_x", &s.DriftX)
	c.ordered(name+".drift_y", &s.DriftY)
	if s.Size.Min <= 0 {
		c.warnf("%s.size must be positive; using 1", name)
		s.Size.Min = 1
		s.Size.Max = max(s.Size.Max, 1)
	}
}

func (c *checker) burst(name string, b *engine.Burst) {
	c.atLeast(name+".count", &b.Count, 0)
	c.ordered(name+".dx", &b.DX)
	c.ordered(name+".dy", &b.DY)
	c.orderedInt(name+".ttl", &b.TTL)
	c.atLeast(name+".ttl.min", &b.TTL.Min, 1)
	b.TTL.Max = max(b.TTL.Max, b.TTL.Min)
	if b.Count > 0 {
		c.positive(name+".size", &b.Size, 1)
	}
}

// ValidateRunner clamps out-of-range values to playable ones and returns a
// description of every adjustment.
func ValidateRunner(cfg *RunnerConfig) []string {
	def := DefaultRunnerConfig()
	c := &checker{}

	c.positive("world.width", &cfg.World.Width, def.World.Width)
	c.positive("world.height", &cfg.World.Height, def.World.Height)
	c.positive("player.width", &cfg.Player.Width, def.Player.Width)
	c.positive("player.height", &cfg.Player.Height, def.Player.Height)
	if cfg.Physics.GroundHeight < 0 || cfg.Physics.GroundHeight >= cfg.World.Height {
		c.warnf("physics.ground_height %g is outside the world; using %g", cfg.Physics.GroundHeight, def.Physics.GroundHeight)
		cfg.Physics.GroundHeight = min(def.Physics.GroundHeight, cfg.World.Height/2)
	}
	if cfg.Physics.JumpImpulse >= 0 {
		c.warnf("physics.jump_impulse must be negative (upward), got %g", cfg.Physics.JumpImpulse)
		cfg.Physics.JumpImpulse = def.Physics.JumpImpulse
	}

	c.atLeast("obstacles.spawn_interval", &cfg.Obstacles.SpawnInterval, 1)
	c.atLeast("obstacles.cap", &cfg.Obstacles.Cap, 0)
	if len(cfg.Obstacles.Table.Variants) == 0 {
		c.warnf("obstacles.variants is empty; using defaults")
		cfg.Obstacles.Table.Variants = def.Obstacles.Table.Variants
	}
	for i := range cfg.Obstacles.Table.Variants {
		v := &cfg.Obstacles.Table.Variants[i]
		name := fmt.Sprintf("obstacles.variants[%d]", i)
		c.ordered(name+".width", &v.Width)
		c.ordered(name+".height", &v.Height)
		if v.Width.Min <= 0 || v.Height.Min <= 0 {
			c.warnf("%s has a non-positive size; using 1", name)
			v.Width.Min, v.Height.Min = max(v.Width.Min, 1), max(v.Height.Min, 1)
			v.Width.Max, v.Height.Max = max(v.Width.Max, v.Width.Min), max(v.Height.Max, v.Height.Min)
		}
	}

	c.positive("background.building_width", &cfg.Background.BuildingW, def.Background.BuildingW)
	c.ordered("background.respawn_offset", &cfg.Background.Respawn)
	c.ordered("background.respawn_height", &cfg.Background.RespawnH)
	c.stars("background.stars", &cfg.Background.Stars)
	for i := range cfg.Background.Layers {
		l := &cfg.Background.Layers[i]
		name := fmt.Sprintf("background.layers[%d]", i)
		c.positive(name+".height", &l.Height, 50)
		c.positive(name+".spacing", &l.Spacing, cfg.Background.BuildingW)
	}

	c.atLeast("difficulty.escalation.every", &cfg.Difficulty.Escalation.Every, 0)
	c.step("difficulty.escalation", &cfg.Difficulty.Escalation.Step)
	return c.warnings
}

// ValidateShooter clamps out-of-range values to playable ones and returns a
// description of every adjustment.
func ValidateShooter(cfg *ShooterConfig) []string {
	def := DefaultShooterConfig()
	c := &checker{}

	c.positive("world.width", &cfg.World.Width, def.World.Width)
	c.positive("world.height", &cfg.World.Height, def.World.Height)
	c.positive("player.width", &cfg.Player.Width, def.Player.Width)
	c.positive("player.height", &cfg.Player.Height, def.Player.Height)
	if cfg.Player.MinX > cfg.Player.MaxX || cfg.Player.MinY > cfg.Player.MaxY {
		c.warnf("player bounds are inverted; using defaults")
		cfg.Player.MinX, cfg.Player.MaxX = def.Player.MinX, def.Player.MaxX
		cfg.Player.MinY, cfg.Player.MaxY = def.Player.MinY, def.Player.MaxY
	}

	c.positive("bullets.width", &cfg.Bullets.Width, def.Bullets.Width)
	c.positive("bullets.height", &cfg.Bullets.Height, def.Bullets.Height)
	c.positive("bullets.speed", &cfg.Bullets.Speed, def.Bullets.Speed)
	c.atLeast("bullets.cooldown", &cfg.Bullets.Cooldown, 1)

	c.positive("enemies.width", &cfg.Enemies.Width, def.Enemies.Width)
	c.positive("enemies.height", &cfg.Enemies.Height, def.Enemies.Height)
	c.ordered("enemies.spawn_x", &cfg.Enemies.SpawnX)
	c.atLeast("enemies.spawn_interval", &cfg.Enemies.SpawnInterval, 1)
	c.atLeast("enemies.cap", &cfg.Enemies.Cap, 0)

	c.positive("boss.width", &cfg.Boss.Width, def.Boss.Width)
	c.positive("boss.height", &cfg.Boss.Height, def.Boss.Height)
	c.atLeast("boss.health", &cfg.Boss.Health, 1)
	c.atLeast("boss.threshold", &cfg.Boss.Threshold, 0)

	c.burst("effects.explosion", &cfg.Effects.Explosion)
	c.burst("effects.thrust", &cfg.Effects.Thrust)
	c.atLeast("effects.banner_ticks", &cfg.Effects.BannerTicks, 0)
	c.stars("stars", &cfg.Stars)

	c.step("difficulty.level_up", &cfg.Difficulty.LevelUp)
	return c.warnings
}
