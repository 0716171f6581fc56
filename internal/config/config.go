// Package config provides YAML-based game configuration loading and
// difficulty management for the arcade platform.
package config

import "github.com/vovakirdan/neon-arcade/internal/engine"

// WorldConfig is the size of a game's logical world in world units.
type WorldConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// RunnerConfig contains all configuration for Neon Runner.
type RunnerConfig struct {
	World      WorldConfig      `yaml:"world"`
	Physics    RunnerPhysics    `yaml:"physics"`
	Player     RunnerPlayer     `yaml:"player"`
	Obstacles  RunnerObstacles  `yaml:"obstacles"`
	Background RunnerBackground `yaml:"background"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// RunnerPhysics defines the player's jump physics and the ground line.
type RunnerPhysics struct {
	Gravity      float64 `yaml:"gravity"`
	JumpImpulse  float64 `yaml:"jump_impulse"`
	MaxFallSpeed float64 `yaml:"max_fall_speed"` // 0 = unlimited
	GroundHeight float64 `yaml:"ground_height"`  // distance from the bottom edge
}

// RunnerPlayer defines the runner's cube.
type RunnerPlayer struct {
	X      float64 `yaml:"x"`
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// RunnerObstacles defines obstacle spawning.
type RunnerObstacles struct {
	BaseSpeed     float64           `yaml:"base_speed"`
	SpawnInterval int               `yaml:"spawn_interval"` // ticks
	Cap           int               `yaml:"cap"`            // max obstacles alive, 0 = unbounded
	SpawnOffset   float64           `yaml:"spawn_offset"`   // distance beyond the right edge
	CullMargin    float64           `yaml:"cull_margin"`    // removed once right edge < -margin
	Table         engine.SpawnTable `yaml:",inline"`
}

// RunnerBackground defines the parallax city and the star layer.
type RunnerBackground struct {
	Layers     []CityLayer  `yaml:"layers"`
	BuildingW  float64      `yaml:"building_width"`
	LayerDrift float64      `yaml:"layer_drift"` // layer i scrolls at drift*(i+1)
	WrapMargin float64      `yaml:"wrap_margin"`
	Respawn    engine.Range `yaml:"respawn_offset"`
	RespawnH   engine.Range `yaml:"respawn_height"`
	Stars      StarField    `yaml:"stars"`
}

// CityLayer is one row of buildings.
type CityLayer struct {
	Height  float64 `yaml:"height"`
	Spacing float64 `yaml:"spacing"`
}

// StarField defines background stars. Drift is sampled per star.
type StarField struct {
	Count  int          `yaml:"count"`
	Size   engine.Range `yaml:"size"`
	DriftX engine.Range `yaml:"drift_x"`
	DriftY engine.Range `yaml:"drift_y"`
}

// ShooterConfig contains all configuration for Galaxy Shooter.
type ShooterConfig struct {
	World      WorldConfig      `yaml:"world"`
	Player     ShooterPlayer    `yaml:"player"`
	Bullets    ShooterBullets   `yaml:"bullets"`
	Enemies    ShooterEnemies   `yaml:"enemies"`
	Boss       ShooterBoss      `yaml:"boss"`
	Effects    ShooterEffects   `yaml:"effects"`
	Stars      StarField        `yaml:"stars"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// ShooterPlayer defines the ship. Position and bounds are ship centers.
type ShooterPlayer struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
	StartX float64 `yaml:"start_x"`
	StartY float64 `yaml:"start_y"`
	Speed  float64 `yaml:"speed"`
	MinX   float64 `yaml:"min_x"`
	MaxX   float64 `yaml:"max_x"`
	MinY   float64 `yaml:"min_y"`
	MaxY   float64 `yaml:"max_y"`
}

// ShooterBullets defines the player's shots.
type ShooterBullets struct {
	Width    float64 `yaml:"width"`
	Height   float64 `yaml:"height"`
	Speed    float64 `yaml:"speed"`
	Offset   float64 `yaml:"offset"`   // top of a new bullet above the ship center
	Cooldown int     `yaml:"cooldown"` // ticks between shots
}

// ShooterEnemies defines enemy spawning. Enemies fall straight down.
type ShooterEnemies struct {
	Width         float64      `yaml:"width"`
	Height        float64      `yaml:"height"`
	SpawnX        engine.Range `yaml:"spawn_x"`
	SpawnY        float64      `yaml:"spawn_y"`
	BaseSpeed     float64      `yaml:"base_speed"`
	SpawnInterval int          `yaml:"spawn_interval"`
	Cap           int          `yaml:"cap"`
}

// ShooterBoss defines the boss encounter.
type ShooterBoss struct {
	Width     float64   `yaml:"width"`
	Height    float64   `yaml:"height"`
	X         float64   `yaml:"x"`
	Y         float64   `yaml:"y"`
	Health    int       `yaml:"health"`
	Jitter    []float64 `yaml:"jitter"`
	Threshold int       `yaml:"threshold"` // score that summons the boss, 0 = never
}

// ShooterEffects defines particle bursts and the level banner.
type ShooterEffects struct {
	Explosion    engine.Burst `yaml:"explosion"`
	Thrust       engine.Burst `yaml:"thrust"`
	ThrustOffset float64      `yaml:"thrust_offset"` // below the ship center
	BannerTicks  int          `yaml:"banner_ticks"`
}

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled    bool              `yaml:"enabled"`
	Escalation engine.Escalation `yaml:"escalation"` // score driven
	LevelUp    engine.Step       `yaml:"level_up"`   // boss driven
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset parses a preset name. The empty string is normal.
func ParsePreset(name string) (DifficultyPreset, bool) {
	switch p := DifficultyPreset(name); p {
	case "":
		return DifficultyNormal, true
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p, true
	default:
		return DifficultyNormal, false
	}
}

// IsFixedPreset returns true if the preset disables progression.
func IsFixedPreset(preset DifficultyPreset) bool {
	return preset == DifficultyFixed
}
