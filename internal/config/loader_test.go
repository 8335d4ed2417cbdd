package config

import (
	"os"
	"path/filepath"
	"testing"

	"gopkg.in/yaml.v3"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	var cfg BreakoutConfig
	if err := yaml.Unmarshal(GetDefaultYAML("breakout"), &cfg); err != nil {
		t.Fatalf("embedded YAML does not parse: %v", err)
	}

	if cfg != DefaultBreakoutConfig() {
		t.Errorf("embedded defaults = %+v, expected %+v", cfg, DefaultBreakoutConfig())
	}
}

func TestGetDefaultYAMLUnknown(t *testing.T) {
	if GetDefaultYAML("pinball") != nil {
		t.Error("GetDefaultYAML() for unknown name should be nil")
	}
}

func TestLoadBreakoutCustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	doc := "ball:\n  radius: 12\nrules:\n  reflect_per_brick: true\n"
	if err := os.WriteFile(path, []byte(doc), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	cfg, err := LoadBreakout(path)
	if err != nil {
		t.Fatalf("LoadBreakout() error = %v", err)
	}

	if cfg.Ball.Radius != 12 {
		t.Errorf("Ball.Radius = %v, expected 12", cfg.Ball.Radius)
	}
	if !cfg.Rules.ReflectPerBrick {
		t.Error("Rules.ReflectPerBrick = false, expected true")
	}
	// Keys absent from the file keep their defaults
	if cfg.Ball.X != 400 || cfg.Bricks.Cols != 8 {
		t.Errorf("unset keys lost defaults: ball.x=%v bricks.cols=%d", cfg.Ball.X, cfg.Bricks.Cols)
	}
}

func TestLoadBreakoutMissingCustomPath(t *testing.T) {
	_, err := LoadBreakout(filepath.Join(t.TempDir(), "nope.yaml"))
	if err == nil {
		t.Error("LoadBreakout() with missing file should fail")
	}
}

func TestLoadBreakoutInvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("ball: [unclosed"), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	if _, err := LoadBreakout(path); err == nil {
		t.Error("LoadBreakout() with invalid YAML should fail")
	}
}
