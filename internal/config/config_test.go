package config

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"gopkg.in/yaml.v3"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	t.Run("runner", func(t *testing.T) {
		var cfg RunnerConfig
		if err := yaml.Unmarshal(defaultRunnerYAML, &cfg); err != nil {
			t.Fatal(err)
		}
		if !reflect.DeepEqual(cfg, DefaultRunnerConfig()) {
			t.Errorf("embedded runner.yaml drifted from DefaultRunnerConfig:\n%+v\n%+v", cfg, DefaultRunnerConfig())
		}
	})
	t.Run("shooter", func(t *testing.T) {
		var cfg ShooterConfig
		if err := yaml.Unmarshal(defaultShooterYAML, &cfg); err != nil {
			t.Fatal(err)
		}
		if !reflect.DeepEqual(cfg, DefaultShooterConfig()) {
			t.Errorf("embedded shooter.yaml drifted from DefaultShooterConfig:\n%+v\n%+v", cfg, DefaultShooterConfig())
		}
	})
}

func TestDefaultsAreValid(t *testing.T) {
	runner := DefaultRunnerConfig()
	if w := ValidateRunner(&runner); len(w) != 0 {
		t.Errorf("default runner config produced warnings: %v", w)
	}
	shooter := DefaultShooterConfig()
	if w := ValidateShooter(&shooter); len(w) != 0 {
		t.Errorf("default shooter config produced warnings: %v", w)
	}
}

func TestLoadCustomPathPartialOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "runner.yaml")
	data := []byte("obstacles:\n  base_speed: 9\n  spawn_interval: 100\n")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadRunner(path)
	if err != nil {
		t.Fatalf("LoadRunner: %v", err)
	}
	if cfg.Obstacles.BaseSpeed != 9 || cfg.Obstacles.SpawnInterval != 100 {
		t.Errorf("override not applied: %+v", cfg.Obstacles)
	}
	if cfg.Physics.Gravity != 0.9 || len(cfg.Obstacles.Table.Variants) != 2 {
		t.Error("keys missing from the file should keep their defaults")
	}
}

func TestLoadCustomPathErrors(t *testing.T) {
	if _, err := LoadShooter(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("missing explicit config should be an error")
	}

	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("world: [not, a, map"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadShooter(path); err == nil {
		t.Error("malformed config should be an error")
	}
}

func TestParsePreset(t *testing.T) {
	tests := []struct {
		in   string
		want DifficultyPreset
		ok   bool
	}{
		{"", DifficultyNormal, true},
		{"easy", DifficultyEasy, true},
		{"hard", DifficultyHard, true},
		{"fixed", DifficultyFixed, true},
		{"nightmare", DifficultyNormal, false},
	}
	for _, tt := range tests {
		got, ok := ParsePreset(tt.in)
		if got != tt.want || ok != tt.ok {
			t.Errorf("ParsePreset(%q) = %v, %v; want %v, %v", tt.in, got, ok, tt.want, tt.ok)
		}
	}
}

func TestApplyPresets(t *testing.T) {
	t.Run("fixed disables progression", func(t *testing.T) {
		cfg := DefaultRunnerConfig()
		ApplyRunnerPreset(&cfg, DifficultyFixed)
		if cfg.Difficulty.Enabled {
			t.Error("fixed preset should disable difficulty")
		}
		if cfg.Obstacles.BaseSpeed != 6 || cfg.Obstacles.SpawnInterval != 140 {
			t.Errorf("fixed preset should keep base values: %+v", cfg.Obstacles)
		}
	})

	t.Run("hard is faster than easy", func(t *testing.T) {
		easy, hard := DefaultShooterConfig(), DefaultShooterConfig()
		ApplyShooterPreset(&easy, DifficultyEasy)
		ApplyShooterPreset(&hard, DifficultyHard)
		if !(hard.Enemies.BaseSpeed > easy.Enemies.BaseSpeed) {
			t.Errorf("hard speed %g should exceed easy %g", hard.Enemies.BaseSpeed, easy.Enemies.BaseSpeed)
		}
		if !(hard.Enemies.SpawnInterval < easy.Enemies.SpawnInterval) {
			t.Errorf("hard interval %d should be below easy %d", hard.Enemies.SpawnInterval, easy.Enemies.SpawnInterval)
		}
		if !(hard.Boss.Health > easy.Boss.Health) {
			t.Errorf("hard boss health %d should exceed easy %d", hard.Boss.Health, easy.Boss.Health)
		}
	})

	t.Run("normal keeps defaults", func(t *testing.T) {
		cfg := DefaultRunnerConfig()
		ApplyRunnerPreset(&cfg, DifficultyNormal)
		if !reflect.DeepEqual(cfg, DefaultRunnerConfig()) {
			t.Error("normal preset should not change the config")
		}
	})
}

func TestValidateClampsIntervals(t *testing.T) {
	cfg := DefaultRunnerConfig()
	cfg.Obstacles.SpawnInterval = 0
	cfg.Difficulty.Escalation.Step.MinInterval = -3
	cfg.Obstacles.Table.Variants = nil

	warnings := ValidateRunner(&cfg)
	if len(warnings) != 3 {
		t.Errorf("expected 3 warnings, got %v", warnings)
	}
	if cfg.Obstacles.SpawnInterval != 1 || cfg.Difficulty.Escalation.Step.MinInterval != 1 {
		t.Errorf("intervals not floored at 1: %d %d", cfg.Obstacles.SpawnInterval, cfg.Difficulty.Escalation.Step.MinInterval)
	}
	if len(cfg.Obstacles.Table.Variants) == 0 {
		t.Error("empty spawn table should fall back to default variants")
	}
}

func TestValidateShooterFixesRanges(t *testing.T) {
	cfg := DefaultShooterConfig()
	cfg.Enemies.SpawnX.Min, cfg.Enemies.SpawnX.Max = 500, 100
	cfg.Boss.Health = 0
	cfg.Effects.Explosion.TTL.Min = 0

	warnings := ValidateShooter(&cfg)
	if len(warnings) != 3 {
		t.Errorf("expected 3 warnings, got %v", warnings)
	}
	if cfg.Enemies.SpawnX.Min != 100 || cfg.Enemies.SpawnX.Max != 500 {
		t.Errorf("spawn_x not swapped: %+v", cfg.Enemies.SpawnX)
	}
	if cfg.Boss.Health != 1 || cfg.Effects.Explosion.TTL.Min != 1 {
		t.Errorf("health/ttl not clamped: %d %d", cfg.Boss.Health, cfg.Effects.Explosion.TTL.Min)
	}
}
