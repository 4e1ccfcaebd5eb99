package config

import "math"

// DifficultyManager calculates dynamic game parameters based on score/time.
type DifficultyManager struct {
	cfg          DifficultyConfig
	initialLevel float64
}

// NewDifficultyManager creates a new difficulty manager.
func NewDifficultyManager(cfg DifficultyConfig) *DifficultyManager {
	return &DifficultyManager{
		cfg:          cfg,
		initialLevel: clampF(cfg.InitialLevel, 0.0, 1.0),
	}
}

// IsEnabled returns whether difficulty progression is active.
func (d *DifficultyManager) IsEnabled() bool {
	return d.cfg.Enabled && d.cfg.Progression.Type != "none"
}

// Level returns the current difficulty level (0.0 to 1.0) based on score/ticks.
// When progression is disabled the level is 0 and every parameter keeps its base value.
func (d *DifficultyManager) Level(score int, ticks int) float64 {
	if !d.cfg.Enabled {
		return 0
	}
	maxAt := float64(d.cfg.Progression.MaxAt)
	if maxAt <= 0 {
		maxAt = 1
	}

	var progress float64
	switch d.cfg.Progression.Type {
	case "score":
		progress = float64(score) / maxAt
	case "time":
		progress = float64(ticks) / maxAt
	default:
		return d.initialLevel
	}

	progress = clampF(progress, 0.0, 1.0)
	return d.initialLevel + progress*(1.0-d.initialLevel)
}

// Speed returns the scaled speed: base at level 0, base*(1+multiplier) at level 1.
func (d *DifficultyManager) Speed(base float64, score, ticks int) float64 {
	return base * (1.0 + d.Level(score, ticks)*d.cfg.Scaling.SpeedMultiplier)
}

// Gap returns the scaled gap size, never below minGap.
func (d *DifficultyManager) Gap(base, minGap float64, score, ticks int) float64 {
	return math.Max(minGap, base-d.Level(score, ticks)*d.cfg.Scaling.GapReduction)
}

// Interval returns the scaled spawn interval in frames, never below minInterval.
func (d *DifficultyManager) Interval(base, minInterval int, score, ticks int) int {
	reduction := int(d.Level(score, ticks) * float64(d.cfg.Scaling.IntervalReduction))
	return max(minInterval, base-reduction)
}

// clampF restricts a float64 to [min, max].
func clampF(val, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, val))
}
