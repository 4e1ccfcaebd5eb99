package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tinyarcade/internal/core"
)

// colorStyles maps core.Color to lipgloss styles.
var colorStyles = map[core.Color]lipgloss.Style{
	core.ColorDefault:      lipgloss.NewStyle(),
	core.ColorRed:          lipgloss.NewStyle().Foreground(lipgloss.Color("1")),
	core.ColorGreen:        lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
	core.ColorYellow:       lipgloss.NewStyle().Foreground(lipgloss.Color("3")),
	core.ColorBlue:         lipgloss.NewStyle().Foreground(lipgloss.Color("4")),
	core.ColorWhite:        lipgloss.NewStyle().Foreground(lipgloss.Color("7")),
	core.ColorBrightGreen:  lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
	core.ColorBrightYellow: lipgloss.NewStyle().Foreground(lipgloss.Color("11")),
	core.ColorGray:         lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
}

var (
	hudStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("229")).
			Background(lipgloss.Color("57"))
	hudAlertStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("15")).
			Background(lipgloss.Color("1"))
)

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			startColor := s.GetCell(x, y).Color

			var run strings.Builder
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if cell.Color != startColor {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			style, ok := colorStyles[startColor]
			if !ok {
				style = colorStyles[core.ColorDefault]
			}
			sb.WriteString(style.Render(run.String()))
		}
	}
	return sb.String()
}

// StatusLine describes what the HUD row shows.
type StatusLine struct {
	Title    string
	HUD      *HUD
	Paused   bool
	Embedded bool // Running inside the menu session
}

// Text returns the unstyled HUD text.
func (s StatusLine) Text() string {
	parts := []string{s.Title}

	switch {
	case s.HUD.Match:
		parts = append(parts, s.HUD.Result())
	default:
		parts = append(parts, fmt.Sprintf("Score: %d", s.HUD.Score))
	}

	switch {
	case s.HUD.GameOver:
		parts = append(parts, "GAME OVER", "R: restart")
	case s.Paused:
		parts = append(parts, "PAUSED", "P: resume  O: step")
	default:
		parts = append(parts, "P: pause")
	}

	if s.Embedded {
		parts = append(parts, "Esc: menu")
	}
	parts = append(parts, "Q: quit")
	return strings.Join(parts, "  |  ")
}

// RenderStatusLine renders the HUD row padded or cut to width.
func RenderStatusLine(s StatusLine, width int) string {
	text := " " + s.Text()
	runes := []rune(text)
	if width > 0 {
		if len(runes) > width {
			runes = runes[:width]
		} else {
			runes = append(runes, []rune(strings.Repeat(" ", width-len(runes)))...)
		}
	}

	style := hudStyle
	if s.HUD.GameOver {
		style = hudAlertStyle
	}
	return style.Render(string(runes))
}
