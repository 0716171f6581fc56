package engine

// Advance integrates one entity over dt ticks: position moves by velocity,
// gravity accelerates it, and its TTL counts down. An entity whose TTL
// reaches zero is marked destroyed.
func Advance(e *Entity, dt float64) {
	if !e.Alive() {
		return
	}
	e.Pos = e.Pos.Add(e.Vel.Scale(dt))
	e.Vel.Y += e.Gravity * dt

	if e.HasTTL {
		e.TTL--
		if e.TTL <= 0 {
			e.TTL = 0
			e.Destroyed = true
		}
	}
}

// AdvanceAll advances every live entity of the given kinds.
func AdvanceAll(w *World, dt float64, kinds ...Kind) {
	w.Each(func(e *Entity) {
		for _, k := range kinds {
			if e.Kind == k {
				Advance(e, dt)
				return
			}
		}
	})
}

// Body is the gravity-and-impulse physics of a player actor standing on a
// ground line. GroundY is the world y of the ground surface.
type Body struct {
	Gravity      float64
	JumpVelocity float64 // negative is upward
	MaxFall      float64 // 0 means unlimited
	GroundY      float64
	OnGround     bool
}

// Apply runs one tick of actor physics: gravity, then integration, then the
// ground clamp. OnGround is true exactly when the clamp engaged.
func (b *Body) Apply(e *Entity) {
	e.Vel.Y += b.Gravity
	if b.MaxFall > 0 && e.Vel.Y > b.MaxFall {
		e.Vel.Y = b.MaxFall
	}
	e.Pos.Y += e.Vel.Y

	if e.Box().Bottom >= b.GroundY {
		if e.Anchor == AnchorCenter {
			e.Pos.Y = b.GroundY - e.Size.Y/2
		} else {
			e.Pos.Y = b.GroundY - e.Size.Y
		}
		e.Vel.Y = 0
		b.OnGround = true
		return
	}
	b.OnGround = false
}

// Jump launches the actor if it stands on the ground. It returns whether the
// jump was honored.
func (b *Body) Jump(e *Entity) bool {
	if !b.OnGround {
		return false
	}
	e.Vel.Y = b.JumpVelocity
	b.OnGround = false
	return true
}

// WrapLeft recycles a scrolling tile once its right edge passes threshold.
// respawn repositions the entity beyond the visible area and may re-randomize
// its size. It returns whether the tile wrapped.
func WrapLeft(e *Entity, threshold float64, respawn func(e *Entity)) bool {
	if e.Box().Right >= threshold {
		return false
	}
	respawn(e)
	return true
}

// WrapDown moves a falling tile back up by span once its top passes limit.
func WrapDown(e *Entity, limit, span float64) bool {
	if e.Box().Top <= limit {
		return false
	}
	e.Pos.Y -= span
	return true
}

// ClampTo keeps the entity's position inside bounds. Bounds apply to Pos,
// not the box, so centered entities clamp on their center.
func ClampTo(e *Entity, bounds Box) {
	if e.Pos.X < bounds.Left {
		e.Pos.X = bounds.Left
	}
	if e.Pos.X > bounds.Right {
		e.Pos.X = bounds.Right
	}
	if e.Pos.Y < bounds.Top {
		e.Pos.Y = bounds.Top
	}
	if e.Pos.Y > bounds.Bottom {
		e.Pos.Y = bounds.Bottom
	}
}
