package core

// RuntimeConfig contains configuration passed to games at initialization.
// Games use this for deterministic simulation; the screen size only
// matters to the platform, since games draw in their own world units.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Display refresh rate (frames per second, default 60)
	Seed     int64 // RNG seed for deterministic gameplay
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// Reporter receives score updates from a running game.
// The platform implements it to draw the score and game-over UI.
type Reporter interface {
	ReportScore(value int)
	ReportGameOver(finalScore int)
}

// NopReporter discards all reports.
type NopReporter struct{}

func (NopReporter) ReportScore(int)    {}
func (NopReporter) ReportGameOver(int) {}

// MatchReporter is implemented by reporters that can show a two-sided score.
// Two-player games call it in addition to ReportScore.
type MatchReporter interface {
	ReportMatch(left, right int)
}
