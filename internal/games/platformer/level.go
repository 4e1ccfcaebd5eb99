package platformer

import (
	_ "embed"
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/tinyarcade/internal/core"
)

//go:embed levels/default.yaml
var defaultLevelYAML []byte

// Platform is an immobile block run. X, Y and Width are in blocks;
// a vertical platform runs Width blocks downward instead of rightward.
type Platform struct {
	X        float64 `yaml:"x"`
	Y        float64 `yaml:"y"`
	Width    float64 `yaml:"width"`
	Vertical bool    `yaml:"vertical,omitempty"`
}

// Hitbox returns the platform's box in world units.
func (p Platform) Hitbox(block float64) core.Box {
	w, h := p.Width*block, block
	if p.Vertical {
		w, h = h, w
	}
	return core.NewBox(p.X*block, p.Y*block, w, h)
}

// Level is a set of platforms and a start position, in blocks.
type Level struct {
	Name      string     `yaml:"name"`
	Start     [2]float64 `yaml:"start"`
	Platforms []Platform `yaml:"platforms"`
}

// ErrEmptyLevel is returned for a level without platforms.
var ErrEmptyLevel = errors.New("platformer: level has no platforms")

// ParseLevel decodes and validates a YAML level.
func ParseLevel(data []byte) (Level, error) {
	var lvl Level
	if err := yaml.Unmarshal(data, &lvl); err != nil {
		return Level{}, fmt.Errorf("platformer: cannot parse level: %w", err)
	}
	if len(lvl.Platforms) == 0 {
		return Level{}, ErrEmptyLevel
	}
	for i, p := range lvl.Platforms {
		if p.Width <= 0 {
			return Level{}, fmt.Errorf("platformer: platform %d has width %v", i, p.Width)
		}
	}
	return lvl, nil
}

// LoadLevel reads a level file. An empty path returns the built-in level.
func LoadLevel(path string) (Level, error) {
	if path == "" {
		return DefaultLevel(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Level{}, fmt.Errorf("platformer: cannot read level: %w", err)
	}
	return ParseLevel(data)
}

// DefaultLevel returns the built-in level.
func DefaultLevel() Level {
	lvl, err := ParseLevel(defaultLevelYAML)
	if err != nil {
		panic(err)
	}
	return lvl
}
