package engine

import "math/rand"

// Variant is one entry of a spawn table: a named sub-kind with independent
// width and height ranges.
type Variant struct {
	Name   string `yaml:"name"`
	Weight int    `yaml:"weight"`
	Width  Range  `yaml:"width"`
	Height Range  `yaml:"height"`
}

// SpawnTable lists what a spawner may create. Speed of a spawned entity is
// the session's base speed plus uniform(0, Jitter).
type SpawnTable struct {
	Variants []Variant `yaml:"variants"`
	Jitter   float64   `yaml:"jitter"`
}

// Pick chooses a variant by weight. Non-positive weights count as 1.
func (t SpawnTable) Pick(rng *rand.Rand) Variant {
	if len(t.Variants) == 0 {
		return Variant{}
	}
	total := 0
	for _, v := range t.Variants {
		total += max(1, v.Weight)
	}
	n := rng.Intn(total)
	for _, v := range t.Variants {
		n -= max(1, v.Weight)
		if n < 0 {
			return v
		}
	}
	return t.Variants[len(t.Variants)-1]
}

// Placement builds the entity for a spawn: where it appears and how it moves.
// size comes from the picked variant, speed from the session.
type Placement func(v Variant, size Vec, speed float64, rng *rand.Rand) Entity

// Spawner creates entities of one kind on a tick timer, capped by a maximum
// concurrent count.
type Spawner struct {
	Kind  Kind
	Cap   int // 0 means unbounded
	Table SpawnTable
	Place Placement
}

// Due reports whether the spawner fires this tick: the session tick is a
// multiple of the spawn interval and the live count is under the cap.
func (sp *Spawner) Due(s *Session, w *World) bool {
	if s.Tick%max(1, s.SpawnInterval) != 0 {
		return false
	}
	if sp.Cap > 0 && w.Count(sp.Kind) >= sp.Cap {
		return false
	}
	return true
}

// MaybeSpawn creates one entity when the spawner is due and returns it.
func (sp *Spawner) MaybeSpawn(s *Session, w *World, rng *rand.Rand) *Entity {
	if !sp.Due(s, w) || sp.Place == nil {
		return nil
	}

	v := sp.Table.Pick(rng)
	size := Vec{X: v.Width.Sample(rng), Y: v.Height.Sample(rng)}
	speed := s.BaseSpeed
	if sp.Table.Jitter > 0 {
		speed += rng.Float64() * sp.Table.Jitter
	}

	e := sp.Place(v, size, speed, rng)
	e.Kind = sp.Kind
	if e.Variant == "" {
		e.Variant = v.Name
	}
	ent, err := w.Add(e)
	if err != nil || !ent.Alive() {
		return nil
	}
	return ent
}

// BossTrigger fires once per session when the score reaches Threshold.
// It never fires while a boss is alive.
type BossTrigger struct {
	Threshold int
	fired     bool
}

// Check returns true exactly once, on the first call where the score has
// reached the threshold and no boss is alive.
func (b *BossTrigger) Check(score int, bossAlive bool) bool {
	if b.fired || bossAlive || b.Threshold <= 0 || score < b.Threshold {
		return false
	}
	b.fired = true
	return true
}

// Fired reports whether the trigger has already fired this session.
func (b *BossTrigger) Fired() bool {
	return b.fired
}

// Reset arms the trigger for a new session.
func (b *BossTrigger) Reset() {
	b.fired = false
}
