// Package config provides YAML-based tuning configuration for the game.
package config

// Config contains all tuning parameters for a game session.
// Physics and gate constants are expressed in field units and are tuned
// at a 60 Hz reference rate; the simulation normalizes for actual frame
// timing.
type Config struct {
	Physics PhysicsConfig `yaml:"physics"`
	Gates   GateConfig    `yaml:"gates"`
	Flyer   FlyerConfig   `yaml:"flyer"`
	Field   FieldConfig   `yaml:"field"`
}

// PhysicsConfig defines the flyer's motion constants.
type PhysicsConfig struct {
	Gravity float64 `yaml:"gravity"` // Downward acceleration per reference frame
	Impulse float64 `yaml:"impulse"` // Velocity set by a flap (negative = up)
}

// GateConfig defines gate geometry and lifecycle parameters.
type GateConfig struct {
	Width         float64 `yaml:"width"`          // Horizontal extent of a gate
	GapSize       float64 `yaml:"gap_size"`       // Vertical gap between segments, constant per session
	MinSegment    float64 `yaml:"min_segment"`    // Minimum height of either segment
	Speed         float64 `yaml:"speed"`          // Leftward units per reference frame
	SpawnInterval float64 `yaml:"spawn_interval"` // Seconds between spawns
	EvictMargin   float64 `yaml:"evict_margin"`   // Units past the left edge before removal
}

// FlyerConfig defines the flyer's placement and size in field units.
type FlyerConfig struct {
	X      float64 `yaml:"x"` // Fixed horizontal position, never simulated
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// FieldConfig defines the play field scaling.
type FieldConfig struct {
	GroundHeight float64 `yaml:"ground_height"` // Height of the ground strip
	// Units per terminal cell. Terminal cells are roughly twice as tall
	// as they are wide, so the vertical scale is larger.
	UnitsPerCellX float64 `yaml:"units_per_cell_x"`
	UnitsPerCellY float64 `yaml:"units_per_cell_y"`
}
