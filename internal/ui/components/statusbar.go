package components

import (
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"

	"github.com/sadopc/vericheck/internal/ui/msgs"
	"github.com/sadopc/vericheck/internal/ui/theme"
)

// clearStatusMsg clears a temporary status message.
type clearStatusMsg struct{}

// StatusBar is a full-width bottom status bar.
type StatusBar struct {
	identity string
	page     msgs.Page
	lastSync time.Time
	syncing  bool
	mode     msgs.AppMode
	message  string
	width    int
	theme    theme.Theme
	styles   theme.Styles
}

// NewStatusBar creates a new status bar.
func NewStatusBar(t theme.Theme, s theme.Styles) StatusBar {
	return StatusBar{
		theme:  t,
		styles: s,
		mode:   msgs.ModeNormal,
	}
}

// SetIdentity sets the signed-in account shown on the left.
func (m *StatusBar) SetIdentity(email string) {
	m.identity = email
}

// SetPage sets the active dashboard page.
func (m *StatusBar) SetPage(p msgs.Page) {
	m.page = p
}

// SetLastSync records when history last synced successfully.
func (m *StatusBar) SetLastSync(t time.Time) {
	m.lastSync = t
}

// SetSyncing flags an in-flight history fetch.
func (m *StatusBar) SetSyncing(v bool) {
	m.syncing = v
}

// SetMode sets the current app mode.
func (m *StatusBar) SetMode(mode msgs.AppMode) {
	m.mode = mode
}

// SetWidth sets the available width.
func (m *StatusBar) SetWidth(w int) {
	m.width = w
}

// ShowMessage displays a temporary status message and returns a cmd
// that clears it after d. A zero duration leaves the message up until
// replaced.
func (m *StatusBar) ShowMessage(text string, d time.Duration) tea.Cmd {
	m.message = text
	if text == "" || d <= 0 {
		return nil
	}
	return tea.Tick(d, func(time.Time) tea.Msg {
		return clearStatusMsg{}
	})
}

// Init implements tea.Model.
func (m StatusBar) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m StatusBar) Update(msg tea.Msg) (StatusBar, tea.Cmd) {
	switch msg.(type) {
	case clearStatusMsg:
		m.message = ""
	}
	return m, nil
}

// View renders the status bar.
func (m StatusBar) View() string {
	barStyle := lipgloss.NewStyle().
		Background(m.theme.Surface).
		Foreground(m.theme.Text).
		Width(m.width)

	// Left section: message, or identity + page + sync state
	var leftParts []string

	if m.message != "" {
		leftParts = append(leftParts, lipgloss.NewStyle().
			Foreground(m.theme.Text).
			Background(m.theme.Surface).
			Render(m.message))
	} else {
		if m.identity != "" {
			id := lipgloss.NewStyle().
				Foreground(m.theme.Teal).
				Background(m.theme.Surface).
				Bold(true).
				Render(m.identity)
			leftParts = append(leftParts, id)
		}

		leftParts = append(leftParts, lipgloss.NewStyle().
			Foreground(m.theme.Subtext).
			Background(m.theme.Surface).
			Render(m.page.String()))

		switch {
		case m.syncing:
			leftParts = append(leftParts, lipgloss.NewStyle().
				Foreground(m.theme.Yellow).
				Background(m.theme.Surface).
				Render("syncing..."))
		case !m.lastSync.IsZero():
			leftParts = append(leftParts, lipgloss.NewStyle().
				Foreground(m.theme.Muted).
				Background(m.theme.Surface).
				Render("synced "+humanize.Time(m.lastSync)))
		}
	}

	left := strings.Join(leftParts, " │ ")

	// Center: mode indicator
	modeStr := lipgloss.NewStyle().
		Foreground(m.theme.Mauve).
		Background(m.theme.Surface).
		Bold(true).
		Render("[" + m.mode.String() + "]")

	// Right: hints
	hint := lipgloss.NewStyle().
		Foreground(m.theme.Muted).
		Background(m.theme.Surface).
		Render("?:help  Ctrl+K:command")

	leftWidth := lipgloss.Width(left)
	centerWidth := lipgloss.Width(modeStr)
	rightWidth := lipgloss.Width(hint)

	totalContent := leftWidth + centerWidth + rightWidth
	if totalContent >= m.width {
		gap1 := m.width - totalContent
		if gap1 < 1 {
			gap1 = 1
		}
		line := " " + left + strings.Repeat(" ", gap1) + modeStr + " " + hint
		return barStyle.Render(line)
	}

	remaining := m.width - totalContent - 2 // padding
	gap1 := remaining / 2
	gap2 := remaining - gap1

	line := " " + left +
		strings.Repeat(" ", gap1) + modeStr +
		strings.Repeat(" ", gap2) + hint

	return barStyle.Render(line)
}
