package engine

import "testing"

func TestAdvanceMovesByVelocity(t *testing.T) {
	e := &Entity{Kind: KindObstacle, Pos: Vec{X: 100, Y: 50}, Size: Vec{X: 10, Y: 10}, Vel: Vec{X: -6, Y: 0}}

	Advance(e, 1)
	if e.Pos.X != 94 || e.Pos.Y != 50 {
		t.Errorf("position after one tick = %+v, expected (94, 50)", e.Pos)
	}

	Advance(e, 2)
	if e.Pos.X != 82 {
		t.Errorf("position after dt=2 = %f, expected 82", e.Pos.X)
	}
}

func TestAdvanceTTLStrictlyDecreases(t *testing.T) {
	e := (&Entity{Kind: KindParticle, Size: Vec{X: 4, Y: 4}, Vel: Vec{Y: -2}, Gravity: 0.05}).WithTTL(5)

	prev := e.TTL
	ticks := 0
	for e.Alive() {
		Advance(e, 1)
		ticks++
		if e.TTL >= prev {
			t.Fatalf("TTL did not decrease: %d -> %d", prev, e.TTL)
		}
		prev = e.TTL
	}

	if ticks != 5 {
		t.Errorf("particle lived %d ticks, expected 5", ticks)
	}
	if e.TTL != 0 || !e.Destroyed {
		t.Errorf("expired particle should be destroyed at TTL 0, ttl=%d destroyed=%v", e.TTL, e.Destroyed)
	}

	// Destroyed entities are frozen
	pos := e.Pos
	Advance(e, 1)
	if e.Pos != pos || e.TTL != 0 {
		t.Error("advancing a destroyed entity should do nothing")
	}
}

func TestAdvanceAppliesGravityToVelocity(t *testing.T) {
	e := &Entity{Kind: KindParticle, Size: Vec{X: 1, Y: 1}, Vel: Vec{Y: -2}, Gravity: 0.5}
	Advance(e, 1)
	if e.Vel.Y != -1.5 {
		t.Errorf("vy = %f, expected -1.5", e.Vel.Y)
	}
}

func newGroundedPlayer() (*Entity, *Body) {
	e := &Entity{Kind: KindPlayer, Pos: Vec{X: 120, Y: 354}, Size: Vec{X: 36, Y: 36}}
	b := &Body{Gravity: 0.9, JumpVelocity: -15, GroundY: 390}
	b.Apply(e)
	return e, b
}

func TestBodyClampsToGround(t *testing.T) {
	e, b := newGroundedPlayer()

	if !b.OnGround {
		t.Fatal("player standing on the ground should be grounded")
	}
	if e.Vel.Y != 0 {
		t.Errorf("vy on ground = %f, expected 0", e.Vel.Y)
	}
	if e.Box().Bottom != 390 {
		t.Errorf("bottom = %f, expected ground 390", e.Box().Bottom)
	}
}

func TestJumpOnlyFromGround(t *testing.T) {
	e, b := newGroundedPlayer()

	if !b.Jump(e) {
		t.Fatal("jump from the ground should be honored")
	}
	if e.Vel.Y >= 0 {
		t.Errorf("jump velocity = %f, expected negative", e.Vel.Y)
	}
	if b.OnGround {
		t.Error("player should leave the ground")
	}

	b.Apply(e)
	vy := e.Vel.Y
	if b.Jump(e) {
		t.Error("jump in mid-air should be a no-op")
	}
	if e.Vel.Y != vy {
		t.Errorf("mid-air jump changed vy from %f to %f", vy, e.Vel.Y)
	}
}

func TestBodyLandsAfterJump(t *testing.T) {
	e, b := newGroundedPlayer()
	b.Jump(e)

	for i := 0; i < 100 && !b.OnGround; i++ {
		b.Apply(e)
	}
	if !b.OnGround {
		t.Fatal("player should land within 100 ticks")
	}
	if e.Box().Bottom != 390 || e.Vel.Y != 0 {
		t.Errorf("landing should clamp to ground, bottom=%f vy=%f", e.Box().Bottom, e.Vel.Y)
	}
}

func TestWrapLeft(t *testing.T) {
	e := &Entity{Kind: KindBackgroundTile, Pos: Vec{X: -225, Y: 300}, Size: Vec{X: 100, Y: 90}}

	wrapped := WrapLeft(e, -120, func(e *Entity) {
		e.Pos.X = 950
		e.Size.Y = 40
	})
	if !wrapped {
		t.Fatal("tile past the threshold should wrap")
	}
	if e.Pos.X != 950 || e.Size.Y != 40 {
		t.Errorf("respawn not applied: %+v", e)
	}

	if WrapLeft(e, -120, func(*Entity) { t.Error("respawn called for a visible tile") }) {
		t.Error("visible tile should not wrap")
	}
}

func TestWrapDown(t *testing.T) {
	e := &Entity{Kind: KindBackgroundTile, Pos: Vec{X: 10, Y: 701}, Size: Vec{X: 2, Y: 2}}
	if !WrapDown(e, 700, 700) || e.Pos.Y != 1 {
		t.Errorf("star below the screen should wrap to the top, y=%f", e.Pos.Y)
	}
}

func TestClampToCentered(t *testing.T) {
	e := &Entity{Kind: KindPlayer, Anchor: AnchorCenter, Pos: Vec{X: -10, Y: 900}, Size: Vec{X: 40, Y: 50}}
	ClampTo(e, Box{Left: 30, Top: 40, Right: 570, Bottom: 660})

	if e.Pos.X != 30 || e.Pos.Y != 660 {
		t.Errorf("clamped position = %+v, expected (30, 660)", e.Pos)
	}
}
