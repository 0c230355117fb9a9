package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadCustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tuning.yaml")
	data := `
physics:
  gravity: 0.6
  impulse: -9.0
gates:
  width: 50
  gap_size: 120
  min_segment: 30
  speed: 4.0
  spawn_interval: 1.0
  evict_margin: 5
flyer:
  x: 100
  width: 30
  height: 20
field:
  ground_height: 40
  units_per_cell_x: 8
  units_per_cell_y: 20
`
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatalf("cannot write test config: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	if cfg.Physics.Gravity != 0.6 || cfg.Physics.Impulse != -9.0 {
		t.Errorf("physics = %+v, expected custom values", cfg.Physics)
	}
	if cfg.Gates.Speed != 4.0 || cfg.Gates.SpawnInterval != 1.0 {
		t.Errorf("gates = %+v, expected custom values", cfg.Gates)
	}
	if cfg.Flyer.X != 100 {
		t.Errorf("flyer x = %f, expected 100", cfg.Flyer.X)
	}
}

func TestLoadCustomPathMissingIsError(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "does-not-exist.yaml"))
	if err == nil {
		t.Fatal("Load() with missing explicit path must fail, not fall back")
	}
}

func TestLoadCustomPathBrokenIsError(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.yaml")
	if err := os.WriteFile(path, []byte("gates: [not a mapping"), 0o644); err != nil {
		t.Fatalf("cannot write test config: %v", err)
	}

	if _, err := Load(path); err == nil {
		t.Fatal("Load() with unparsable explicit config must fail")
	}
}

func TestLoadEmbeddedDefault(t *testing.T) {
	// With no explicit path and no user/local config in a scratch
	// working directory, the embedded YAML applies.
	t.Chdir(t.TempDir())
	t.Setenv("HOME", t.TempDir())

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	def := Default()
	if cfg != def {
		t.Errorf("embedded config = %+v, expected defaults %+v", cfg, def)
	}
}

func TestDefaultIsPlayable(t *testing.T) {
	cfg := Default()

	if cfg.Physics.Gravity <= 0 {
		t.Error("gravity must pull down")
	}
	if cfg.Physics.Impulse >= 0 {
		t.Error("impulse must push up")
	}
	if cfg.Gates.GapSize <= cfg.Flyer.Height {
		t.Error("gap must fit the flyer")
	}
	if cfg.Gates.SpawnInterval <= 0 || cfg.Gates.Speed <= 0 {
		t.Errorf("gates = %+v, spawn interval and speed must be positive", cfg.Gates)
	}
	if cfg.Field.UnitsPerCellX <= 0 || cfg.Field.UnitsPerCellY <= 0 {
		t.Errorf("field scaling = %+v, must be positive", cfg.Field)
	}
}
