package engine

// EntityID identifies an entity for its whole lifetime. IDs are never reused
// within a World, so the renderer can key its handles on them.
type EntityID uint64

// Kind tags what an entity is.
type Kind int

const (
	KindPlayer Kind = iota
	KindObstacle
	KindEnemy
	KindBullet
	KindParticle
	KindBoss
	KindBackgroundTile
)

// String returns the kind name used in logs.
func (k Kind) String() string {
	switch k {
	case KindPlayer:
		return "player"
	case KindObstacle:
		return "obstacle"
	case KindEnemy:
		return "enemy"
	case KindBullet:
		return "bullet"
	case KindParticle:
		return "particle"
	case KindBoss:
		return "boss"
	case KindBackgroundTile:
		return "background"
	default:
		return "unknown"
	}
}

// Hazard reports whether touching an entity of this kind kills the player.
func (k Kind) Hazard() bool {
	return k == KindObstacle || k == KindEnemy || k == KindBoss
}

// Anchor says which point of the entity Pos refers to.
type Anchor int

const (
	AnchorTopLeft Anchor = iota
	AnchorCenter
)

// Entity is a positioned, sized, moving object. Obstacles, enemies, bullets,
// particles, the boss, background tiles and the player are all entities.
type Entity struct {
	ID      EntityID
	Kind    Kind
	Variant string // shape tag for styling ("block", "spike", "star", ...)
	Anchor  Anchor

	Pos  Vec // world position, see Anchor
	Size Vec // width and height, must be positive
	Vel  Vec // displacement per tick

	// Gravity is added to Vel.Y after every advance (particles fall).
	Gravity float64

	HasTTL bool
	TTL    int // remaining ticks, destroyed at 0

	HasHealth bool
	Health    int // boss hit points, destroyed at <= 0

	Counted   bool // already contributed to the score
	Destroyed bool // marked this tick, removed on sweep
}

// Box returns the entity's bounding box in world coordinates.
func (e *Entity) Box() Box {
	if e.Anchor == AnchorCenter {
		return BoxAt(Vec{X: e.Pos.X - e.Size.X/2, Y: e.Pos.Y - e.Size.Y/2}, e.Size)
	}
	return BoxAt(e.Pos, e.Size)
}

// Valid reports whether the entity has a positive finite size and a finite
// position. Invalid entities are treated as already destroyed.
func (e *Entity) Valid() bool {
	return e.Size.X > 0 && e.Size.Y > 0 && e.Size.Finite() && e.Pos.Finite() && e.Box().Valid()
}

// Alive reports whether the entity still takes part in the simulation.
func (e *Entity) Alive() bool {
	if e == nil || e.Destroyed || !e.Valid() {
		return false
	}
	if e.HasTTL && e.TTL <= 0 {
		return false
	}
	if e.HasHealth && e.Health <= 0 {
		return false
	}
	return true
}

// WithTTL gives the entity a lifetime in ticks.
func (e *Entity) WithTTL(ticks int) *Entity {
	e.HasTTL = true
	e.TTL = ticks
	return e
}

// WithHealth gives the entity hit points.
func (e *Entity) WithHealth(hp int) *Entity {
	e.HasHealth = true
	e.Health = hp
	return e
}
