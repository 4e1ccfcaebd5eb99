package core

// Color represents a foreground color for a screen cell.
// Maps onto ANSI colors in the platform layer.
type Color uint8

// Predefined colors for game elements.
const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorWhite
	ColorBrightGreen
	ColorBrightYellow
	ColorGray
)
