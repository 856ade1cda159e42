package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultValidates(t *testing.T) {
	if err := Default().Validate(); err != nil {
		t.Fatalf("shipped defaults do not validate: %v", err)
	}
}

func TestLoadOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tunables.yaml")
	body := `
evaluator:
  base_threshold: 0.90
events:
  max_rounds: 6
`
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Evaluator.BaseThreshold != 0.90 {
		t.Errorf("base_threshold = %f, want override 0.90", cfg.Evaluator.BaseThreshold)
	}
	if cfg.Events.MaxRounds != 6 {
		t.Errorf("max_rounds = %d, want override 6", cfg.Events.MaxRounds)
	}
	// Untouched keys keep defaults.
	if cfg.Events.PhoneDeadCooldown != Default().Events.PhoneDeadCooldown {
		t.Errorf("phone_dead_cooldown lost its default: %d", cfg.Events.PhoneDeadCooldown)
	}
}

func TestLoadRejectsBadPolicy(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	body := `
evaluator:
  near_miss_floor: 0.99
`
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Error("near-miss floor above the threshold should not validate")
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Error("expected error for missing config file")
	}
}
