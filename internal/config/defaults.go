package config

import (
	_ "embed"
)

//go:embed defaults/skygate.yaml
var defaultYAML []byte

// Default returns the built-in tuning configuration.
// Values mirror defaults/skygate.yaml and serve as the fallback if the
// embedded YAML cannot be parsed.
func Default() Config {
	return Config{
		Physics: PhysicsConfig{
			Gravity: 0.45,
			Impulse: -8.5,
		},
		Gates: GateConfig{
			Width:         68,
			GapSize:       130,
			MinSegment:    40,
			Speed:         3.0,
			SpawnInterval: 1.4,
			EvictMargin:   10,
		},
		Flyer: FlyerConfig{
			X:      80,
			Width:  34,
			Height: 24,
		},
		Field: FieldConfig{
			GroundHeight:  50,
			UnitsPerCellX: 8,
			UnitsPerCellY: 20,
		},
	}
}
