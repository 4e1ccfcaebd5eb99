// Package config provides YAML-based game configuration loading and
// difficulty management for the arcade platform.
package config

import "fmt"

// WorldConfig is the size of a game's playfield in world units.
type WorldConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// FlappyConfig contains all configuration for the Flappy Bird game.
type FlappyConfig struct {
	World      WorldConfig      `yaml:"world"`
	Bird       FlappyBird       `yaml:"bird"`
	Pipes      FlappyPipes      `yaml:"pipes"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// FlappyBird defines the bird. Positions are measured up from the floor.
type FlappyBird struct {
	Size      float64 `yaml:"size"`
	X         float64 `yaml:"x"`
	Gravity   float64 `yaml:"gravity"`
	StartPos  float64 `yaml:"start_pos"`
	JumpSpeed float64 `yaml:"jump_speed"`
}

// FlappyPipes defines pipe geometry and spawning.
type FlappyPipes struct {
	Width    float64 `yaml:"width"`
	Gap      float64 `yaml:"gap"`
	Margin   float64 `yaml:"margin"`
	Speed    float64 `yaml:"speed"`
	Interval int     `yaml:"interval"`       // Frames between spawns
	Despawn  float64 `yaml:"despawn_widths"` // Pipe widths past the left edge before removal
}

// PlatformerConfig contains all configuration for the Platformer game.
type PlatformerConfig struct {
	World     WorldConfig      `yaml:"world"`
	TickRate  int              `yaml:"tick_rate"` // Logic ticks per second
	BlockSize float64          `yaml:"block_size"`
	Player    PlatformerPlayer `yaml:"player"`
}

// PlatformerPlayer defines the player's body and movement.
type PlatformerPlayer struct {
	Width            float64 `yaml:"width"`
	Height           float64 `yaml:"height"`
	Gravity          float64 `yaml:"gravity"`
	TerminalVelocity float64 `yaml:"terminal_velocity"`
	Jump             float64 `yaml:"jump"`
	Speed            float64 `yaml:"speed"`
	Friction         float64 `yaml:"friction"`
	BodyInset        float64 `yaml:"body_inset"` // Body hitbox is this much shorter than the player
}

// PongConfig contains all configuration for the Pong game.
type PongConfig struct {
	World   WorldConfig `yaml:"world"`
	Paddles PongPaddles `yaml:"paddles"`
	Ball    PongBall    `yaml:"ball"`
	Sides   PongSides   `yaml:"sides"`
	Agent   PongAgent   `yaml:"agent"`
	// WinScore ends the match when a side reaches it. 0 plays forever.
	WinScore int `yaml:"win_score"`
}

// PongPaddles defines paddle geometry and speed.
type PongPaddles struct {
	Width        float64 `yaml:"width"`
	Height       float64 `yaml:"height"`
	EdgeDistance float64 `yaml:"edge_distance"`
	Speed        float64 `yaml:"speed"`
}

// PongBall defines the ball and its serve velocity.
type PongBall struct {
	Size   float64 `yaml:"size"`
	SpeedX float64 `yaml:"speed_x"`
	SpeedY float64 `yaml:"speed_y"`
}

// Controller kinds for a Pong side.
const (
	ControllerHuman = "human"
	ControllerAgent = "agent"
)

// PongSides selects who controls each paddle.
type PongSides struct {
	Left  string `yaml:"left"`
	Right string `yaml:"right"`
}

// Agent cadences and drive modes.
const (
	AgentCadenceClock  = "clock"
	AgentCadenceInline = "inline"
	AgentDriveKeys     = "keys"
	AgentDriveDirect   = "direct"
)

// PongAgent configures the computer controller.
type PongAgent struct {
	Cadence  string  `yaml:"cadence"`  // "clock" or "inline"
	Drive    string  `yaml:"drive"`    // "keys" or "direct"
	ClockMS  int     `yaml:"clock_ms"` // Decision interval for the clock cadence
	Deadzone float64 `yaml:"deadzone"` // No move when |paddle - ball| is within this
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
	SpeedMultiplier   float64 `yaml:"speed_multiplier"`   // Multiplier added to speed at max difficulty
	GapReduction      float64 `yaml:"gap_reduction"`      // Gap size reduction at max difficulty
	IntervalReduction int     `yaml:"interval_reduction"` // Spawn interval reduction (frames) at max difficulty
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

// ParsePreset validates a preset name. The empty string is valid and means
// "keep whatever the config file says".
func ParsePreset(name string) (DifficultyPreset, bool) {
	switch p := DifficultyPreset(name); p {
	case "", DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p, true
	default:
		return "", false
	}
}

// PresetError reports an unknown difficulty preset name.
type PresetError struct {
	Name string
}

func (e *PresetError) Error() string {
	return fmt.Sprintf("config: unknown difficulty preset %q (want easy, normal, hard or fixed)", e.Name)
}
