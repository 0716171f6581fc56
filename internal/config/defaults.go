package config

import (
	_ "embed"

	"github.com/vovakirdan/neon-arcade/internal/engine"
)

//go:embed defaults/runner.yaml
var defaultRunnerYAML []byte

//go:embed defaults/shooter.yaml
var defaultShooterYAML []byte

// DefaultRunnerConfig returns the default Neon Runner configuration.
func DefaultRunnerConfig() RunnerConfig {
	return RunnerConfig{
		World: WorldConfig{Width: 900, Height: 500},
		Physics: RunnerPhysics{
			Gravity:      0.9,
			JumpImpulse:  -15,
			GroundHeight: 110,
		},
		Player: RunnerPlayer{
			X:      120,
			Width:  36,
			Height: 36,
		},
		Obstacles: RunnerObstacles{
			BaseSpeed:     6,
			SpawnInterval: 140,
			Cap:           6,
			SpawnOffset:   30,
			CullMargin:    50,
			Table: engine.SpawnTable{
				Jitter: 1.8,
				Variants: []engine.Variant{
					{Name: "block", Weight: 2, Width: engine.Range{Min: 28, Max: 60}, Height: engine.Range{Min: 30, Max: 80}},
					{Name: "spike", Weight: 1, Width: engine.Range{Min: 18, Max: 28}, Height: engine.Range{Min: 40, Max: 90}},
				},
			},
		},
		Background: RunnerBackground{
			Layers: []CityLayer{
				{Height: 50, Spacing: 120},
				{Height: 80, Spacing: 150},
				{Height: 120, Spacing: 180},
			},
			BuildingW:  100,
			LayerDrift: 0.4,
			WrapMargin: 120,
			Respawn:    engine.Range{Min: 0, Max: 200},
			RespawnH:   engine.Range{Min: 20, Max: 120},
			Stars: StarField{
				Count:  80,
				Size:   engine.Range{Min: 1, Max: 3},
				DriftX: engine.Range{Min: 0.08, Max: 0.2},
				DriftY: engine.Range{Min: 0, Max: 0.02},
			},
		},
		Difficulty: DifficultyConfig{
			Enabled: true,
			Escalation: engine.Escalation{
				Every: 5,
				Step: engine.Step{
					SpeedIncrement:    18,
					IntervalDecrement: 8,
					MinInterval:       80,
				},
			},
		},
	}
}

// DefaultShooterConfig returns the default Galaxy Shooter configuration.
func DefaultShooterConfig() ShooterConfig {
	particle := engine.Burst{
		DX:      engine.Range{Min: -1.2, Max: 1.2},
		DY:      engine.Range{Min: -2, Max: 1},
		TTL:     engine.IntRange{Min: 8, Max: 15},
		Gravity: 0.05,
	}
	explosion := particle
	explosion.Count, explosion.Size, explosion.Variant = 25, 6, "explosion"
	thrust := particle
	thrust.Count, thrust.Size, thrust.Variant = 1, 4, "engine"

	return ShooterConfig{
		World: WorldConfig{Width: 600, Height: 700},
		Player: ShooterPlayer{
			Width:  40,
			Height: 50,
			StartX: 300,
			StartY: 620,
			Speed:  8,
			MinX:   30,
			MaxX:   570,
			MinY:   40,
			MaxY:   660,
		},
		Bullets: ShooterBullets{
			Width:    6,
			Height:   25,
			Speed:    12,
			Offset:   40,
			Cooldown: 12,
		},
		Enemies: ShooterEnemies{
			Width:         44,
			Height:        40,
			SpawnX:        engine.Range{Min: 40, Max: 560},
			SpawnY:        5,
			BaseSpeed:     3,
			SpawnInterval: 75,
		},
		Boss: ShooterBoss{
			Width:     200,
			Height:    100,
			X:         200,
			Y:         40,
			Health:    25,
			Jitter:    []float64{-2, -1, 1, 2},
			Threshold: 10,
		},
		Effects: ShooterEffects{
			Explosion:    explosion,
			Thrust:       thrust,
			ThrustOffset: 32,
			BannerTicks:  75,
		},
		Stars: StarField{
			Count:  80,
			Size:   engine.Range{Min: 1, Max: 3},
			DriftY: engine.Range{Min: 2, Max: 2},
		},
		Difficulty: DifficultyConfig{
			Enabled: true,
			LevelUp: engine.Step{
				SpeedIncrement:    1,
				IntervalDecrement: 9,
				MinInterval:       25,
			},
		},
	}
}
