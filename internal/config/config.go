// Package config provides YAML-based game configuration loading and
// difficulty management.
package config

// Config contains every tunable for the game. Fixed-point fields are scaled
// by 1000 (1000 = one cell per tick), matching the simulation's coordinate
// space.
type Config struct {
	Physics    PhysicsConfig    `yaml:"physics"`
	Paddle     PaddleConfig     `yaml:"paddle"`
	Gameplay   GameplayConfig   `yaml:"gameplay"`
	Particles  ParticlesConfig  `yaml:"particles"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// PhysicsConfig defines ball and paddle motion parameters.
type PhysicsConfig struct {
	BallSpeed    int `yaml:"ball_speed"`     // Serve speed (fixed-point cells/tick)
	MinBallSpeed int `yaml:"min_ball_speed"` // Enforced lower bound; forbids degenerate states
	MaxBallSpeed int `yaml:"max_ball_speed"` // Cap for combo speed-ups
	PaddleSpeed  int `yaml:"paddle_speed"`   // Keyboard paddle speed (fixed-point cells/tick)
	BounceBias   int `yaml:"bounce_bias"`    // Paddle impact-offset bias, percent (0-100)
}

// PaddleConfig defines the paddle shape.
type PaddleConfig struct {
	Width int `yaml:"width"` // Width in cells
}

// GameplayConfig defines scoring and progression rules.
type GameplayConfig struct {
	Lives          int `yaml:"lives"`            // Starting lives
	SpeedUpEveryN  int `yaml:"speed_up_every_n"` // Combo hits per speed increment
	SpeedUpAmount  int `yaml:"speed_up_amount"`  // Speed added per increment (fixed-point)
	ServeDelay     int `yaml:"serve_delay"`      // Ticks before serving is allowed after a miss
	EndlessHPBonus int `yaml:"endless_hp_bonus"` // Extra brick HP per endless cycle
}

// ParticlesConfig defines the brick-destruction particle bursts.
type ParticlesConfig struct {
	BurstSize int `yaml:"burst_size"` // Particles spawned per destroyed brick
	MinTTL    int `yaml:"min_ttl"`    // Minimum lifetime in ticks
	MaxTTL    int `yaml:"max_ttl"`    // Maximum lifetime in ticks
	Gravity   int `yaml:"gravity"`    // Downward acceleration (fixed-point per tick)
	MaxSpeed  int `yaml:"max_speed"`  // Initial velocity bound (fixed-point)
}

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling"`
}

// ProgressionConfig defines how difficulty increases over time.
type ProgressionConfig struct {
	Type  string `yaml:"type"`   // "score", "time", or "none"
	MaxAt int    `yaml:"max_at"` // Score/ticks at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	SpeedMultiplier float64 `yaml:"speed_multiplier"` // Serve-speed multiplier at max difficulty
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.0
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}

// IsFixedPreset returns true if the preset disables progression.
func IsFixedPreset(preset DifficultyPreset) bool {
	return preset == DifficultyFixed
}
