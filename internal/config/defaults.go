package config

import (
	_ "embed"
)

//go:embed defaults/blockout.yaml
var defaultYAML []byte

// Default returns the hardcoded default configuration.
// Kept in sync with defaults/blockout.yaml; used as the last-resort fallback.
func Default() Config {
	return Config{
		Physics: PhysicsConfig{
			BallSpeed:    350, // 0.35 cells per tick
			MinBallSpeed: 250,
			MaxBallSpeed: 900,
			PaddleSpeed:  600,
			BounceBias:   80,
		},
		Paddle: PaddleConfig{
			Width: 8,
		},
		Gameplay: GameplayConfig{
			Lives:          3,
			SpeedUpEveryN:  4,  // Speed up every 4 consecutive brick hits
			SpeedUpAmount:  25, // Add 0.025 cells/tick each time
			ServeDelay:     60, // 1 second at 60fps
			EndlessHPBonus: 1,
		},
		Particles: ParticlesConfig{
			BurstSize: 10,
			MinTTL:    15,
			MaxTTL:    30,
			Gravity:   40,
			MaxSpeed:  400,
		},
		Difficulty: DifficultyConfig{
			Enabled:      true,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "score",
				MaxAt: 1000,
			},
			Scaling: ScalingConfig{
				SpeedMultiplier: 0.5,
			},
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultYAML
}
