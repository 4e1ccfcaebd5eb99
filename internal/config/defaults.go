package config

import (
	_ "embed"
)

//go:embed defaults/flappy.yaml
var defaultFlappyYAML []byte

//go:embed defaults/platformer.yaml
var defaultPlatformerYAML []byte

//go:embed defaults/pong.yaml
var defaultPongYAML []byte

// DefaultFlappyConfig returns the default Flappy Bird configuration.
func DefaultFlappyConfig() FlappyConfig {
	return FlappyConfig{
		World: WorldConfig{Width: 1280, Height: 720},
		Bird: FlappyBird{
			Size:      10,
			X:         250,
			Gravity:   1,
			StartPos:  600,
			JumpSpeed: 15,
		},
		Pipes: FlappyPipes{
			Width:    40,
			Gap:      250,
			Margin:   150,
			Speed:    5,
			Interval: 70,
			Despawn:  10,
		},
		Difficulty: DifficultyConfig{
			Enabled:      false,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "score",
				MaxAt: 50,
			},
			Scaling: ScalingConfig{
				SpeedMultiplier:   1.0,
				GapReduction:      80,
				IntervalReduction: 30,
			},
		},
	}
}

// DefaultPlatformerConfig returns the default Platformer configuration.
func DefaultPlatformerConfig() PlatformerConfig {
	return PlatformerConfig{
		World:     WorldConfig{Width: 1280, Height: 720},
		TickRate:  30,
		BlockSize: 20,
		Player: PlatformerPlayer{
			Width:            20,
			Height:           40,
			Gravity:          1,
			TerminalVelocity: 20,
			Jump:             15,
			Speed:            5,
			Friction:         1,
			BodyInset:        5,
		},
	}
}

// DefaultPongConfig returns the default Pong configuration.
func DefaultPongConfig() PongConfig {
	return PongConfig{
		World: WorldConfig{Width: 1280, Height: 720},
		Paddles: PongPaddles{
			Width:        20,
			Height:       100,
			EdgeDistance: 50,
			Speed:        10,
		},
		Ball: PongBall{
			Size:   20,
			SpeedX: 5,
			SpeedY: 5,
		},
		Sides: PongSides{
			Left:  ControllerHuman,
			Right: ControllerAgent,
		},
		Agent: PongAgent{
			Cadence: AgentCadenceClock,
			Drive:   AgentDriveKeys,
			ClockMS: 100,
		},
		WinScore: 0,
	}
}

// GetDefaultYAML returns the embedded default YAML for a game.
func GetDefaultYAML(gameID string) []byte {
	switch gameID {
	case "flappy":
		return defaultFlappyYAML
	case "platformer":
		return defaultPlatformerYAML
	case "pong":
		return defaultPongYAML
	default:
		return nil
	}
}
