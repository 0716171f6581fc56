package config

import "math"

// presetScale is how a preset bends the starting speed and spawn interval.
type presetScale struct {
	speed    float64
	interval float64
}

var presetScales = map[DifficultyPreset]presetScale{
	DifficultyEasy:   {speed: 0.8, interval: 1.25},
	DifficultyNormal: {speed: 1.0, interval: 1.0},
	DifficultyHard:   {speed: 1.25, interval: 0.8},
	DifficultyFixed:  {speed: 1.0, interval: 1.0},
}

func scaleOf(preset DifficultyPreset) presetScale {
	if s, ok := presetScales[preset]; ok {
		return s
	}
	return presetScales[DifficultyNormal]
}

func scaleInterval(ticks int, k float64) int {
	return max(1, int(math.Round(float64(ticks)*k)))
}

// ApplyRunnerPreset modifies the config based on a difficulty preset.
func ApplyRunnerPreset(cfg *RunnerConfig, preset DifficultyPreset) {
	cfg.Difficulty.Enabled = !IsFixedPreset(preset)

	s := scaleOf(preset)
	cfg.Obstacles.BaseSpeed *= s.speed
	cfg.Obstacles.SpawnInterval = scaleInterval(cfg.Obstacles.SpawnInterval, s.interval)
}

// ApplyShooterPreset modifies the config based on a difficulty preset.
func ApplyShooterPreset(cfg *ShooterConfig, preset DifficultyPreset) {
	cfg.Difficulty.Enabled = !IsFixedPreset(preset)

	s := scaleOf(preset)
	cfg.Enemies.BaseSpeed *= s.speed
	cfg.Enemies.SpawnInterval = scaleInterval(cfg.Enemies.SpawnInterval, s.interval)

	// Adjust gameplay based on difficulty
	switch preset {
	case DifficultyEasy:
		cfg.Boss.Health = max(1, cfg.Boss.Health*4/5)
	case DifficultyHard:
		cfg.Boss.Health = cfg.Boss.Health * 6 / 5
	}
}
