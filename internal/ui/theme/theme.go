package theme

import "github.com/charmbracelet/lipgloss"

// Theme holds all colors for the application.
type Theme struct {
	Name string

	// Base colors
	Base    lipgloss.Color
	Mantle  lipgloss.Color
	Crust   lipgloss.Color
	Surface lipgloss.Color
	Overlay lipgloss.Color

	// Text
	Text    lipgloss.Color
	Subtext lipgloss.Color
	Muted   lipgloss.Color

	// Accents
	Rosewater lipgloss.Color
	Flamingo  lipgloss.Color
	Pink      lipgloss.Color
	Mauve     lipgloss.Color
	Red       lipgloss.Color
	Maroon    lipgloss.Color
	Peach     lipgloss.Color
	Yellow    lipgloss.Color
	Green     lipgloss.Color
	Teal      lipgloss.Color
	Sky       lipgloss.Color
	Sapphire  lipgloss.Color
	Blue      lipgloss.Color
	Lavender  lipgloss.Color

	// Semantic
	BorderFocused   lipgloss.Color
	BorderUnfocused lipgloss.Color
	StatusOK        lipgloss.Color
	StatusError     lipgloss.Color
	StatusWarning   lipgloss.Color
}

// KindColor returns the color for an audit record kind.
func (t Theme) KindColor(kind string) lipgloss.Color {
	switch kind {
	case "url":
		return t.Blue
	case "file", "text":
		return t.Peach
	case "job":
		return t.Mauve
	default:
		return t.Text
	}
}

// ScoreColor returns the color for a trust score. Thresholds match the
// service's verdict bands.
func (t Theme) ScoreColor(score int) lipgloss.Color {
	switch {
	case score >= 75:
		return t.Green
	case score >= 50:
		return t.Yellow
	default:
		return t.Red
	}
}

// VerdictColor returns the color for a verdict label.
func (t Theme) VerdictColor(verdict string) lipgloss.Color {
	switch verdict {
	case "Safe":
		return t.Green
	case "Suspicious":
		return t.Yellow
	case "High Risk":
		return t.Red
	default:
		return t.Text
	}
}
