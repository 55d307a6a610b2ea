// Package settings renders the settings page: API key, scan
// sensitivity, and notification toggle. Saving is local only.
package settings

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/sadopc/vericheck/internal/ui/msgs"
	"github.com/sadopc/vericheck/internal/ui/theme"
)

const saveDelay = 800 * time.Millisecond

const (
	fieldAPIKey = iota
	fieldSensitivity
	fieldNotify
	fieldCount
)

const defaultSensitivity = 75

// Model is the settings panel.
type Model struct {
	apiKey      textinput.Model
	showKey     bool
	sensitivity int
	notify      bool
	focus       int
	editing     bool
	saving      bool
	savedAt     time.Time
	width       int
	height      int
	theme       theme.Theme
	styles      theme.Styles
}

// New creates the settings panel.
func New(t theme.Theme, s theme.Styles) Model {
	key := textinput.New()
	key.Placeholder = "API key"
	key.CharLimit = 128
	key.Width = 40
	key.EchoMode = textinput.EchoPassword
	key.EchoCharacter = '•'

	return Model{
		apiKey:      key,
		sensitivity: defaultSensitivity,
		notify:      true,
		theme:       t,
		styles:      s,
	}
}

// SetSize sets the available content area.
func (m *Model) SetSize(w, h int) {
	m.width = w
	m.height = h
}

// Editing reports whether the API key input has focus.
func (m Model) Editing() bool {
	return m.editing
}

// Reset restores the defaults.
func (m *Model) Reset() {
	m.apiKey.SetValue("")
	m.apiKey.Blur()
	m.showKey = false
	m.sensitivity = defaultSensitivity
	m.notify = true
	m.focus = 0
	m.editing = false
	m.saving = false
	m.savedAt = time.Time{}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case msgs.SettingsSavedMsg:
		m.saving = false
		m.savedAt = time.Now()
		return m, nil
	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	if m.editing {
		switch msg.String() {
		case "esc", "enter":
			m.editing = false
			m.apiKey.Blur()
			return m, func() tea.Msg { return msgs.SetModeMsg{Mode: msgs.ModeNormal} }
		}
		var cmd tea.Cmd
		m.apiKey, cmd = m.apiKey.Update(msg)
		return m, cmd
	}

	switch msg.String() {
	case "j", "down":
		if m.focus < fieldCount-1 {
			m.focus++
		}
	case "k", "up":
		if m.focus > 0 {
			m.focus--
		}
	case "enter", " ":
		switch m.focus {
		case fieldAPIKey:
			m.editing = true
			m.apiKey.Focus()
			return m, tea.Batch(
				textinput.Blink,
				func() tea.Msg { return msgs.SetModeMsg{Mode: msgs.ModeInsert} },
			)
		case fieldNotify:
			m.notify = !m.notify
		}
	case "h", "left":
		if m.focus == fieldSensitivity && m.sensitivity > 0 {
			m.sensitivity -= 5
		}
	case "l", "right":
		if m.focus == fieldSensitivity && m.sensitivity < 100 {
			m.sensitivity += 5
		}
	case "v":
		if m.focus == fieldAPIKey {
			m.showKey = !m.showKey
			if m.showKey {
				m.apiKey.EchoMode = textinput.EchoNormal
			} else {
				m.apiKey.EchoMode = textinput.EchoPassword
			}
		}
	case "s":
		if !m.saving {
			m.saving = true
			return m, tea.Tick(saveDelay, func(time.Time) tea.Msg {
				return msgs.SettingsSavedMsg{}
			})
		}
	case "d":
		m.Reset()
	}

	return m, nil
}

// View renders the settings page.
func (m Model) View() string {
	var b strings.Builder

	b.WriteString(m.styles.Title.Render("Settings"))
	b.WriteString("\n\n")

	b.WriteString(m.fieldLabel(fieldAPIKey, "API key"))
	b.WriteString("\n  ")
	b.WriteString(m.apiKey.View())
	b.WriteString("\n\n")

	b.WriteString(m.fieldLabel(fieldSensitivity, "Scan sensitivity"))
	b.WriteString("\n  ")
	b.WriteString(m.gauge())
	b.WriteString("\n\n")

	b.WriteString(m.fieldLabel(fieldNotify, "Risk notifications"))
	b.WriteString("\n  ")
	if m.notify {
		b.WriteString(m.styles.Success.Render("enabled"))
	} else {
		b.WriteString(m.styles.Muted.Render("disabled"))
	}
	b.WriteString("\n\n")

	switch {
	case m.saving:
		b.WriteString(m.styles.Hint.Render("Saving..."))
	case !m.savedAt.IsZero():
		b.WriteString(m.styles.Success.Render("Settings saved"))
	}
	b.WriteString("\n\n")
	b.WriteString(m.styles.Hint.Render("j/k:move  enter:edit/toggle  h/l:adjust  v:show key  s:save  d:defaults"))

	return b.String()
}

func (m Model) fieldLabel(field int, label string) string {
	if m.focus == field {
		return m.styles.Bold.Render("> " + label)
	}
	return m.styles.Subtitle.Render("  " + label)
}

func (m Model) gauge() string {
	filled := m.sensitivity / 5
	bar := strings.Repeat("█", filled) + strings.Repeat("░", 20-filled)
	return lipgloss.NewStyle().
		Foreground(m.theme.ScoreColor(m.sensitivity)).
		Render(bar) + m.styles.Muted.Render(fmt.Sprintf(" %d", m.sensitivity))
}
