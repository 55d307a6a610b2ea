package components

import (
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"

	"github.com/sadopc/vericheck/internal/ui/theme"
)

// Notification is a single entry in the notifications dropdown.
type Notification struct {
	Text    string
	Verdict string
	When    time.Time
}

// NotificationsDropdown renders the bell dropdown under the header.
type NotificationsDropdown struct {
	items  []Notification
	theme  theme.Theme
	styles theme.Styles
}

// NewNotificationsDropdown creates the notifications dropdown.
func NewNotificationsDropdown(t theme.Theme, s theme.Styles) NotificationsDropdown {
	return NotificationsDropdown{theme: t, styles: s}
}

// SetItems replaces the dropdown contents, newest first.
func (m *NotificationsDropdown) SetItems(items []Notification) {
	m.items = items
}

// Count returns the number of pending notifications.
func (m NotificationsDropdown) Count() int {
	return len(m.items)
}

// View renders the dropdown panel.
func (m NotificationsDropdown) View() string {
	boxWidth := 44

	titleStyle := lipgloss.NewStyle().
		Foreground(m.theme.Text).
		Bold(true)

	var lines []string
	lines = append(lines, titleStyle.Render("Notifications"))
	lines = append(lines, lipgloss.NewStyle().
		Foreground(m.theme.Muted).
		Render(strings.Repeat("─", boxWidth-6)))

	if len(m.items) == 0 {
		lines = append(lines, m.styles.Hint.Render("Nothing new"))
	}

	max := 8
	if len(m.items) < max {
		max = len(m.items)
	}
	for _, n := range m.items[:max] {
		text := truncate(n.Text, boxWidth-8)
		line := lipgloss.NewStyle().
			Foreground(m.theme.VerdictColor(n.Verdict)).
			Render("● ") +
			lipgloss.NewStyle().Foreground(m.theme.Text).Render(text)
		lines = append(lines, line)
		if !n.When.IsZero() {
			lines = append(lines, lipgloss.NewStyle().
				Foreground(m.theme.Muted).
				PaddingLeft(2).
				Render(humanize.Time(n.When)))
		}
	}

	return lipgloss.NewStyle().
		Width(boxWidth).
		Background(m.theme.Surface).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(m.theme.BorderFocused).
		Padding(0, 2).
		Render(strings.Join(lines, "\n"))
}

// ProfileDropdown renders the account dropdown under the header.
type ProfileDropdown struct {
	name   string
	email  string
	theme  theme.Theme
	styles theme.Styles
}

// NewProfileDropdown creates the profile dropdown.
func NewProfileDropdown(t theme.Theme, s theme.Styles) ProfileDropdown {
	return ProfileDropdown{theme: t, styles: s}
}

// SetIdentity sets the account shown in the dropdown.
func (m *ProfileDropdown) SetIdentity(name, email string) {
	m.name = name
	m.email = email
}

// View renders the dropdown panel.
func (m ProfileDropdown) View() string {
	boxWidth := 36

	var lines []string
	lines = append(lines, lipgloss.NewStyle().
		Foreground(m.theme.Text).
		Bold(true).
		Render(m.name))
	lines = append(lines, lipgloss.NewStyle().
		Foreground(m.theme.Subtext).
		Render(m.email))
	lines = append(lines, lipgloss.NewStyle().
		Foreground(m.theme.Muted).
		Render(strings.Repeat("─", boxWidth-6)))
	lines = append(lines, m.styles.Hint.Render("3  Settings"))
	lines = append(lines, m.styles.Hint.Render("Q  Sign out"))

	return lipgloss.NewStyle().
		Width(boxWidth).
		Background(m.theme.Surface).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(m.theme.BorderFocused).
		Padding(0, 2).
		Render(strings.Join(lines, "\n"))
}

func truncate(s string, maxW int) string {
	if maxW <= 0 {
		return ""
	}
	if len(s) <= maxW {
		return s
	}
	if maxW <= 3 {
		return s[:maxW]
	}
	return s[:maxW-3] + "..."
}
