package runner

import (
	"fmt"

	"github.com/vovakirdan/neon-arcade/internal/engine"
)

// Star respawn window, in world units.
const (
	starWrapAt      = -10
	starRespawnMin  = 10
	starRespawnMax  = 300
	starTopMargin   = 10
	starFloorMargin = 200
	starInitFloor   = 150
)

func (r *rules) makeStars(w *engine.World) []*engine.Entity {
	sf := r.cfg.Background.Stars
	stars := make([]*engine.Entity, 0, sf.Count)
	for i := 0; i < sf.Count; i++ {
		size := sf.Size.Sample(r.rng)
		star := w.MustAdd(engine.Entity{
			Kind:    engine.KindBackgroundTile,
			Variant: "star",
			Pos: engine.Vec{
				X: r.rng.Float64() * r.cfg.World.Width,
				Y: r.rng.Float64() * max(1, r.cfg.World.Height-starInitFloor),
			},
			Size: engine.Vec{X: size, Y: size},
			Vel:  engine.Vec{X: -sf.DriftX.Sample(r.rng), Y: sf.DriftY.Sample(r.rng)},
		})
		stars = append(stars, star)
	}
	return stars
}

func (r *rules) makeCity(w *engine.World) [][]*engine.Entity {
	bg := r.cfg.Background
	city := make([][]*engine.Entity, len(bg.Layers))
	for i, layer := range bg.Layers {
		tall := engine.Range{Min: layer.Height / 2, Max: layer.Height}
		for x := 0.0; x < r.cfg.World.Width+200; x += layer.Spacing {
			h := tall.Sample(r.rng)
			b := w.MustAdd(engine.Entity{
				Kind:    engine.KindBackgroundTile,
				Variant: fmt.Sprintf("city-%d", i),
				Pos:     engine.Vec{X: x, Y: r.groundY - h},
				Size:    engine.Vec{X: bg.BuildingW, Y: h},
			})
			city[i] = append(city[i], b)
		}
	}
	return city
}

// scrollBackground moves the parallax layers. Buildings scroll faster as the
// run speeds up; stars drift at their own pace.
func (r *rules) scrollBackground(s *engine.Session) {
	for _, star := range r.stars {
		engine.Advance(star, 1)
		engine.WrapLeft(star, starWrapAt, r.respawnStar)
	}

	bg := r.cfg.Background
	for i, layer := range r.city {
		vx := -bg.LayerDrift*float64(i+1) - s.BaseSpeed/200
		for _, b := range layer {
			b.Vel.X = vx
			engine.Advance(b, 1)
			engine.WrapLeft(b, -bg.WrapMargin, r.respawnBuilding)
		}
	}
}

func (r *rules) respawnStar(e *engine.Entity) {
	e.Pos.X = r.cfg.World.Width + starRespawnMin + r.rng.Float64()*(starRespawnMax-starRespawnMin)
	e.Pos.Y = starTopMargin + r.rng.Float64()*max(0, r.cfg.World.Height-starFloorMargin-starTopMargin)
}

func (r *rules) respawnBuilding(e *engine.Entity) {
	h := r.cfg.Background.RespawnH.Sample(r.rng)
	e.Pos.X = r.cfg.World.Width + r.cfg.Background.Respawn.Sample(r.rng)
	e.Pos.Y = r.groundY - h
	e.Size.Y = h
}
