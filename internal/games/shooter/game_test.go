package shooter

import (
	"io"
	"math/rand"
	"strings"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/neon-arcade/internal/config"
	"github.com/vovakirdan/neon-arcade/internal/core"
	"github.com/vovakirdan/neon-arcade/internal/engine"
)

func press(actions ...core.Action) core.InputFrame {
	in := core.NewInputFrame()
	for _, a := range actions {
		in.Set(a)
	}
	return in
}

func hold(actions ...core.Action) core.InputFrame {
	in := core.NewInputFrame()
	for _, a := range actions {
		in.Hold(a)
	}
	return in
}

func newTestRules() (*rules, *engine.Session, *engine.World) {
	r := newRules(config.DefaultShooterConfig(), rand.New(rand.NewSource(3)), log.New(io.Discard))
	s := engine.NewSession(r.Defaults(), 0)
	w := engine.NewWorld()
	r.Begin(s, w)
	s.Start()
	return r, s, w
}

func newGame(t *testing.T) *Game {
	t.Helper()
	g := New()
	g.Reset(core.RuntimeConfig{ScreenW: 60, ScreenH: 35, TickRate: 60, Seed: 11})
	return g
}

func TestBossSpawnsOnceAtThreshold(t *testing.T) {
	r, s, w := newTestRules()

	s.Score = 9
	r.Spawn(s, w)
	if w.Count(engine.KindBoss) != 0 {
		t.Fatal("boss spawned below the threshold")
	}

	s.Score = 10
	r.Spawn(s, w)
	if w.Count(engine.KindBoss) != 1 {
		t.Fatal("boss not spawned at the threshold")
	}
	boss := w.First(engine.KindBoss)
	if boss.Health != 25 {
		t.Errorf("boss health = %d, want 25", boss.Health)
	}

	for i := 0; i < 5; i++ {
		r.Spawn(s, w)
	}
	if w.Count(engine.KindBoss) != 1 {
		t.Errorf("bosses = %d, want exactly one", w.Count(engine.KindBoss))
	}

	boss.Destroyed = true
	w.Sweep()
	s.Score = 12
	r.Spawn(s, w)
	if w.Count(engine.KindBoss) != 0 {
		t.Error("boss spawned a second time in the same session")
	}
}

func TestNoEnemiesWhileBossAlive(t *testing.T) {
	r, s, w := newTestRules()
	s.Score = 10
	r.Spawn(s, w) // boss

	for tick := 0; tick < 10*s.SpawnInterval; tick += s.SpawnInterval {
		s.Tick = tick
		r.Spawn(s, w)
	}
	if n := w.Count(engine.KindEnemy); n != 0 {
		t.Errorf("enemies spawned during the boss fight: %d", n)
	}
}

func TestLastBulletKillsBoss(t *testing.T) {
	r, s, w := newTestRules()
	s.Score = 10
	r.Spawn(s, w)
	boss := w.First(engine.KindBoss)
	boss.Health = 1

	center := boss.Box().Center()
	bullet := w.MustAdd(engine.Entity{
		Kind: engine.KindBullet,
		Pos:  engine.Vec{X: center.X - 3, Y: center.Y},
		Size: engine.Vec{X: 6, Y: 25},
	})

	if r.Collide(s, w) {
		t.Fatal("bullet hit should not be lethal")
	}
	r.React(s, w)

	if !bullet.Destroyed || !boss.Destroyed {
		t.Errorf("bullet destroyed=%v boss destroyed=%v, want both", bullet.Destroyed, boss.Destroyed)
	}
	if s.Level != 2 {
		t.Errorf("level = %d, want 2", s.Level)
	}
	if s.Score != 11 {
		t.Errorf("score = %d, want 11", s.Score)
	}
	if s.BaseSpeed != 4 || s.SpawnInterval != 66 {
		t.Errorf("speed=%g interval=%d after level up, want 4 and 66", s.BaseSpeed, s.SpawnInterval)
	}
	if !r.banner.Active() {
		t.Error("level banner should be showing")
	}
	if n := w.Count(engine.KindParticle); n < 25 {
		t.Errorf("explosion particles = %d, want at least 25", n)
	}

	// The same hits are never applied twice
	r.React(s, w)
	if s.Level != 2 || s.Score != 11 {
		t.Errorf("level up applied twice: level=%d score=%d", s.Level, s.Score)
	}
}

func TestBossTakesOneDamagePerBullet(t *testing.T) {
	r, s, w := newTestRules()
	s.Score = 10
	r.Spawn(s, w)
	boss := w.First(engine.KindBoss)
	center := boss.Box().Center()

	for i := 0; i < 3; i++ {
		w.MustAdd(engine.Entity{
			Kind: engine.KindBullet,
			Pos:  engine.Vec{X: center.X + float64(i*10), Y: center.Y},
			Size: engine.Vec{X: 6, Y: 25},
		})
	}
	r.Collide(s, w)
	r.React(s, w)

	if boss.Health != 22 || boss.Destroyed {
		t.Errorf("boss health = %d destroyed=%v, want 22 and alive", boss.Health, boss.Destroyed)
	}
	if s.Score != 10 || s.Level != 1 {
		t.Errorf("wounding the boss should not score: score=%d level=%d", s.Score, s.Level)
	}
}

func TestEnemyKillScores(t *testing.T) {
	r, s, w := newTestRules()
	enemy := w.MustAdd(engine.Entity{
		Kind:   engine.KindEnemy,
		Anchor: engine.AnchorCenter,
		Pos:    engine.Vec{X: 100, Y: 100},
		Size:   engine.Vec{X: 44, Y: 40},
	})
	w.MustAdd(engine.Entity{
		Kind: engine.KindBullet,
		Pos:  engine.Vec{X: 97, Y: 110},
		Size: engine.Vec{X: 6, Y: 25},
	})

	r.Collide(s, w)
	r.React(s, w)
	if !enemy.Destroyed || s.Score != 1 {
		t.Errorf("enemy destroyed=%v score=%d", enemy.Destroyed, s.Score)
	}
	if s.Level != 1 {
		t.Error("enemy kill should not level up")
	}
}

func TestFireCooldown(t *testing.T) {
	r, s, w := newTestRules()
	fire := hold(core.ActionFire)

	for i := 0; i < 25; i++ {
		r.AdvanceTimers(s, w, fire)
		r.Move(s, w, fire)
	}
	if n := w.Count(engine.KindBullet); n != 3 {
		t.Errorf("bullets = %d after 25 ticks with a 12 tick cooldown, want 3", n)
	}

	b := w.First(engine.KindBullet)
	if b.Vel.Y != -12 || b.Size.X != 6 || b.Size.Y != 25 {
		t.Errorf("bullet = %+v", *b)
	}
}

func TestCooldownRunsWhilePaused(t *testing.T) {
	g := newGame(t)
	g.Step(press(core.ActionStart, core.ActionFire))
	bullets := g.Engine().World().Count(engine.KindBullet)
	if bullets != 1 {
		t.Fatalf("bullets after first tick = %d, want 1", bullets)
	}

	g.Step(press(core.ActionPause))
	for i := 0; i < 12; i++ {
		g.Step(hold(core.ActionFire))
	}
	if g.rules.cooldown.Active() {
		t.Error("cooldown should expire during the pause")
	}
	if n := g.Engine().World().Count(engine.KindBullet); n != bullets {
		t.Errorf("fired while paused: %d bullets", n)
	}

	g.Step(press(core.ActionPause, core.ActionFire))
	if !g.rules.cooldown.Active() {
		t.Error("first tick after resuming should fire")
	}
}

func TestShipClampedToBounds(t *testing.T) {
	r, s, w := newTestRules()
	for i := 0; i < 100; i++ {
		r.Move(s, w, hold(core.ActionLeft, core.ActionUp))
	}
	if r.player.Pos.X != 30 || r.player.Pos.Y != 40 {
		t.Errorf("ship at (%g, %g), want (30, 40)", r.player.Pos.X, r.player.Pos.Y)
	}
	for i := 0; i < 100; i++ {
		r.Move(s, w, hold(core.ActionRight, core.ActionDown))
	}
	if r.player.Pos.X != 570 || r.player.Pos.Y != 660 {
		t.Errorf("ship at (%g, %g), want (570, 660)", r.player.Pos.X, r.player.Pos.Y)
	}
}

func TestEnemyBreachEndsGame(t *testing.T) {
	r, s, w := newTestRules()
	w.MustAdd(engine.Entity{
		Kind:   engine.KindEnemy,
		Anchor: engine.AnchorCenter,
		Pos:    engine.Vec{X: 500, Y: 699},
		Size:   engine.Vec{X: 44, Y: 40},
	})
	if r.Collide(s, w) {
		t.Fatal("enemy above the bottom edge should not end the game")
	}
	r.Move(s, w, core.NewInputFrame())
	if !r.Collide(s, w) {
		t.Error("enemy past the bottom edge should end the game")
	}
}

func TestEnemyContactIsLethal(t *testing.T) {
	r, s, w := newTestRules()
	w.MustAdd(engine.Entity{
		Kind:   engine.KindEnemy,
		Anchor: engine.AnchorCenter,
		Pos:    r.player.Pos,
		Size:   engine.Vec{X: 44, Y: 40},
	})
	if !r.Collide(s, w) {
		t.Error("enemy touching the ship should end the game")
	}
}

func TestThrustParticlesExpire(t *testing.T) {
	r, s, w := newTestRules()
	r.Move(s, w, core.NewInputFrame())
	p := w.First(engine.KindParticle)
	if p == nil || p.Variant != "engine" {
		t.Fatalf("no thrust particle emitted: %+v", p)
	}

	ttl := p.TTL
	for i := 0; i < ttl; i++ {
		r.Move(s, w, core.NewInputFrame())
	}
	if !p.Destroyed {
		t.Errorf("particle with ttl %d still alive", ttl)
	}
}

func TestGameBannerAndOverlays(t *testing.T) {
	g := newGame(t)
	screen := core.NewScreen(60, 35)
	g.Render(screen)
	if !strings.Contains(screen.String(), "GALAXY SHOOTER") {
		t.Errorf("start overlay missing:\n%s", screen.String())
	}

	g.Step(press(core.ActionStart))
	g.rules.banner.Start(75)
	g.Engine().Session().Level = 2
	g.Render(screen)
	if !strings.Contains(screen.String(), "LEVEL 2!") {
		t.Error("level banner missing")
	}

	for i := 0; i < 75; i++ {
		g.Step(core.NewInputFrame())
		if g.State().GameOver {
			break
		}
	}
	g.Render(screen)
	if strings.Contains(screen.String(), "LEVEL 2!") {
		t.Error("banner should disappear after 75 ticks")
	}
}

func TestGameBossActiveReported(t *testing.T) {
	g := newGame(t)
	g.Step(press(core.ActionStart))
	if g.BossActive() {
		t.Fatal("no boss at the start")
	}
	g.Engine().Session().Score = 10
	g.Step(core.NewInputFrame())
	if !g.BossActive() {
		t.Error("boss should be active once the score reaches 10")
	}

	screen := core.NewScreen(60, 35)
	g.Render(screen)
	if !strings.Contains(screen.Row(0), "BOSS") {
		t.Errorf("boss health bar missing: %q", screen.Row(0))
	}
}
