package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// load fills cfg for a game. cfg must already hold the hardcoded defaults so
// that keys missing from a file keep their default values.
// Search order: customPath -> ~/.arcade/configs/<id>.yaml -> ./configs/<id>.yaml -> embedded default
func load[T any](gameID, customPath string, cfg *T) error {
	// Embedded defaults first, then overlay whichever file wins.
	if data := GetDefaultYAML(gameID); data != nil {
		_ = yaml.Unmarshal(data, cfg)
	}

	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return fmt.Errorf("config: failed to read %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return fmt.Errorf("config: failed to parse %s: %w", customPath, err)
		}
		return nil
	}

	for _, path := range searchPaths(gameID + ".yaml") {
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		// A broken user file is skipped rather than fatal.
		overlay := *cfg
		if err := yaml.Unmarshal(data, &overlay); err == nil {
			*cfg = overlay
			return nil
		}
	}
	return nil
}

// searchPaths returns the implicit config locations for filename, most specific first.
func searchPaths(filename string) []string {
	var paths []string
	if p := userConfigPath(filename); p != "" {
		paths = append(paths, p)
	}
	return append(paths, filepath.Join("configs", filename))
}

// ConfigSource names the file a game's config would be read from when no
// explicit path is given, or "" when only the built-in defaults apply.
func ConfigSource(gameID string) string {
	for _, path := range searchPaths(gameID + ".yaml") {
		if info, err := os.Stat(path); err == nil && !info.IsDir() {
			return path
		}
	}
	return ""
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".arcade", "configs", filename)
}

// LoadFlappy loads Flappy Bird configuration.
func LoadFlappy(customPath string) (FlappyConfig, error) {
	cfg := DefaultFlappyConfig()
	err := load("flappy", customPath, &cfg)
	return cfg, err
}

// LoadPlatformer loads Platformer configuration.
func LoadPlatformer(customPath string) (PlatformerConfig, error) {
	cfg := DefaultPlatformerConfig()
	err := load("platformer", customPath, &cfg)
	return cfg, err
}

// LoadPong loads Pong configuration and validates its enum fields.
func LoadPong(customPath string) (PongConfig, error) {
	cfg := DefaultPongConfig()
	if err := load("pong", customPath, &cfg); err != nil {
		return cfg, err
	}
	return cfg, cfg.Validate()
}

// Validate checks the string-valued options of a Pong config.
func (c PongConfig) Validate() error {
	for side, v := range map[string]string{"left": c.Sides.Left, "right": c.Sides.Right} {
		if v != ControllerHuman && v != ControllerAgent {
			return fmt.Errorf("config: pong sides.%s must be %q or %q, got %q", side, ControllerHuman, ControllerAgent, v)
		}
	}
	if c.Agent.Cadence != AgentCadenceClock && c.Agent.Cadence != AgentCadenceInline {
		return fmt.Errorf("config: pong agent.cadence must be %q or %q, got %q", AgentCadenceClock, AgentCadenceInline, c.Agent.Cadence)
	}
	if c.Agent.Drive != AgentDriveKeys && c.Agent.Drive != AgentDriveDirect {
		return fmt.Errorf("config: pong agent.drive must be %q or %q, got %q", AgentDriveKeys, AgentDriveDirect, c.Agent.Drive)
	}
	if c.Agent.Cadence == AgentCadenceClock && c.Agent.ClockMS <= 0 {
		return fmt.Errorf("config: pong agent.clock_ms must be positive, got %d", c.Agent.ClockMS)
	}
	return nil
}

// ApplyFlappyPreset modifies the config based on a difficulty preset.
// The empty preset leaves the config unchanged.
func ApplyFlappyPreset(cfg *FlappyConfig, preset DifficultyPreset) {
	switch preset {
	case "":
		return
	case DifficultyFixed:
		cfg.Difficulty.Enabled = false
	default:
		cfg.Difficulty.Enabled = true
		cfg.Difficulty.InitialLevel = InitialLevelForPreset(preset)
	}
}
