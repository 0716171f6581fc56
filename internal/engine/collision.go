package engine

import "math/rand"

// Overlaps is the axis-aligned bounding box test. Touching edges count as
// overlap. Degenerate boxes never overlap anything.
func Overlaps(a, b Box) bool {
	if !a.Valid() || !b.Valid() {
		return false
	}
	return !(a.Right < b.Left || a.Left > b.Right || a.Bottom < b.Top || a.Top > b.Bottom)
}

// Collides tests two live entities. Destroyed or invalid entities never collide.
func Collides(a, b *Entity) bool {
	if !a.Alive() || !b.Alive() {
		return false
	}
	return Overlaps(a.Box(), b.Box())
}

// FirstLethal returns the first hazard touching the player, or nil.
// The effect of a hit is terminal, so scan order does not matter.
func FirstLethal(player *Entity, hazards ...[]*Entity) *Entity {
	if !player.Alive() {
		return nil
	}
	for _, group := range hazards {
		for _, h := range group {
			if Collides(player, h) {
				return h
			}
		}
	}
	return nil
}

// Hit records one destructive contact between a bullet and a target.
type Hit struct {
	Bullet *Entity
	Target *Entity
	Killed bool // target destroyed by this hit
	At     Vec  // contact point (target center)
}

// ResolveHits applies destructive contact between bullets and targets.
// The bullet is always consumed. A target with health loses one point and is
// destroyed at zero; any other target is destroyed outright. Each pair is
// tested at most once, and entities destroyed earlier in the scan take no
// part in later pairings.
func ResolveHits(bullets, targets []*Entity) []Hit {
	var hits []Hit
	for _, b := range bullets {
		for _, t := range targets {
			if !b.Alive() {
				break
			}
			if !Collides(b, t) {
				continue
			}

			b.Destroyed = true
			hit := Hit{Bullet: b, Target: t, At: t.Box().Center()}
			if t.HasHealth {
				t.Health--
				if t.Health <= 0 {
					t.Health = 0
					t.Destroyed = true
					hit.Killed = true
				}
			} else {
				t.Destroyed = true
				hit.Killed = true
			}
			hits = append(hits, hit)
		}
	}
	return hits
}

// Burst describes an explosion or exhaust puff made of particles.
type Burst struct {
	Count   int      `yaml:"count"`
	Size    float64  `yaml:"size"`
	DX      Range    `yaml:"dx"`
	DY      Range    `yaml:"dy"`
	TTL     IntRange `yaml:"ttl"`
	Gravity float64  `yaml:"gravity"`
	Variant string   `yaml:"variant"`
}

// Emit spawns the burst's particles at a point and returns how many were made.
func (b Burst) Emit(w *World, at Vec, rng *rand.Rand) int {
	if b.Size <= 0 {
		return 0
	}
	for i := 0; i < b.Count; i++ {
		p := Entity{
			Kind:    KindParticle,
			Variant: b.Variant,
			Pos:     at,
			Size:    Vec{X: b.Size, Y: b.Size},
			Vel:     Vec{X: b.DX.Sample(rng), Y: b.DY.Sample(rng)},
			Gravity: b.Gravity,
		}
		p.WithTTL(max(1, b.TTL.Sample(rng)))
		w.MustAdd(p)
	}
	return b.Count
}
