// Package login renders the sign-in screen shown before any dashboard
// page. It owns the login, registration, and password reset forms.
package login

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/sadopc/vericheck/internal/ui/msgs"
	"github.com/sadopc/vericheck/internal/ui/theme"
)

type formMode int

const (
	modeSignIn formMode = iota
	modeRegister
	modeForgot
)

const (
	fieldName = iota
	fieldEmail
	fieldPassword
)

// Model is the login panel.
type Model struct {
	mode    formMode
	name    textinput.Model
	email   textinput.Model
	passwd  textinput.Model
	focus   int
	loading bool
	errText string
	info    string
	width   int
	height  int
	theme   theme.Theme
	styles  theme.Styles
}

// New creates the login panel.
func New(t theme.Theme, s theme.Styles) Model {
	name := textinput.New()
	name.Placeholder = "Full name"
	name.CharLimit = 64
	name.Width = 36

	email := textinput.New()
	email.Placeholder = "Email"
	email.CharLimit = 128
	email.Width = 36
	email.Focus()

	passwd := textinput.New()
	passwd.Placeholder = "Password"
	passwd.CharLimit = 128
	passwd.Width = 36
	passwd.EchoMode = textinput.EchoPassword
	passwd.EchoCharacter = '•'

	return Model{
		mode:   modeSignIn,
		name:   name,
		email:  email,
		passwd: passwd,
		focus:  fieldEmail,
		theme:  t,
		styles: s,
	}
}

// SetSize sets the terminal dimensions for centering.
func (m *Model) SetSize(w, h int) {
	m.width = w
	m.height = h
}

// SetError shows a failure message under the form.
func (m *Model) SetError(text string) {
	m.loading = false
	m.errText = text
	m.info = ""
}

// SetInfo shows a notice under the form.
func (m *Model) SetInfo(text string) {
	m.loading = false
	m.info = text
	m.errText = ""
}

// SetLoading flags an in-flight request.
func (m *Model) SetLoading(v bool) {
	m.loading = v
	if v {
		m.errText = ""
		m.info = ""
	}
}

// Reset clears the form back to the sign-in state.
func (m *Model) Reset() {
	m.mode = modeSignIn
	m.name.SetValue("")
	m.email.SetValue("")
	m.passwd.SetValue("")
	m.loading = false
	m.errText = ""
	m.info = ""
	m.setFocus(fieldEmail)
}

func (m *Model) setFocus(field int) {
	m.focus = field
	m.name.Blur()
	m.email.Blur()
	m.passwd.Blur()
	switch field {
	case fieldName:
		m.name.Focus()
	case fieldEmail:
		m.email.Focus()
	case fieldPassword:
		m.passwd.Focus()
	}
}

func (m *Model) cycleFocus(reverse bool) {
	fields := []int{fieldEmail, fieldPassword}
	if m.mode == modeRegister {
		fields = []int{fieldName, fieldEmail, fieldPassword}
	}
	if m.mode == modeForgot {
		return
	}

	idx := 0
	for i, f := range fields {
		if f == m.focus {
			idx = i
			break
		}
	}
	if reverse {
		idx = (idx - 1 + len(fields)) % len(fields)
	} else {
		idx = (idx + 1) % len(fields)
	}
	m.setFocus(fields[idx])
}

func (m *Model) submit() tea.Cmd {
	if m.loading {
		return nil
	}

	email := strings.TrimSpace(m.email.Value())
	switch m.mode {
	case modeForgot:
		if email == "" {
			m.errText = "Email is required"
			return nil
		}
		m.loading = true
		return func() tea.Msg { return msgs.ForgotPasswordMsg{Email: email} }
	case modeRegister:
		name := strings.TrimSpace(m.name.Value())
		passwd := m.passwd.Value()
		if name == "" || email == "" || passwd == "" {
			m.errText = "All fields are required"
			return nil
		}
		m.loading = true
		return func() tea.Msg {
			return msgs.RegisterSubmitMsg{Name: name, Email: email, Password: passwd}
		}
	default:
		passwd := m.passwd.Value()
		if email == "" || passwd == "" {
			m.errText = "Email and password are required"
			return nil
		}
		m.loading = true
		return func() tea.Msg {
			return msgs.LoginSubmitMsg{Email: email, Password: passwd}
		}
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "tab", "down":
			m.cycleFocus(false)
			return m, nil
		case "shift+tab", "up":
			m.cycleFocus(true)
			return m, nil
		case "enter":
			return m, m.submit()
		case "ctrl+r":
			if m.mode == modeRegister {
				m.mode = modeSignIn
				m.setFocus(fieldEmail)
			} else {
				m.mode = modeRegister
				m.setFocus(fieldName)
			}
			m.errText = ""
			m.info = ""
			return m, nil
		case "ctrl+f":
			if m.mode == modeForgot {
				m.mode = modeSignIn
			} else {
				m.mode = modeForgot
			}
			m.setFocus(fieldEmail)
			m.errText = ""
			m.info = ""
			return m, nil
		}
	}

	var cmds []tea.Cmd
	var cmd tea.Cmd
	m.name, cmd = m.name.Update(msg)
	cmds = append(cmds, cmd)
	m.email, cmd = m.email.Update(msg)
	cmds = append(cmds, cmd)
	m.passwd, cmd = m.passwd.Update(msg)
	cmds = append(cmds, cmd)
	return m, tea.Batch(cmds...)
}

// View renders the login screen centered in the terminal.
func (m Model) View() string {
	boxWidth := 44

	title := "VeriCheck"
	subtitle := "Sign in to your dashboard"
	switch m.mode {
	case modeRegister:
		subtitle = "Create an account"
	case modeForgot:
		subtitle = "Reset your password"
	}

	var lines []string
	lines = append(lines, lipgloss.NewStyle().
		Foreground(m.theme.Mauve).
		Bold(true).
		Width(boxWidth-6).
		Align(lipgloss.Center).
		Render(title))
	lines = append(lines, lipgloss.NewStyle().
		Foreground(m.theme.Subtext).
		Width(boxWidth-6).
		Align(lipgloss.Center).
		Render(subtitle))
	lines = append(lines, "")

	if m.mode == modeRegister {
		lines = append(lines, m.name.View())
	}
	lines = append(lines, m.email.View())
	if m.mode != modeForgot {
		lines = append(lines, m.passwd.View())
	}
	lines = append(lines, "")

	switch {
	case m.loading:
		lines = append(lines, m.styles.Hint.Render("Working..."))
	case m.errText != "":
		lines = append(lines, m.styles.Error.Render(m.errText))
	case m.info != "":
		lines = append(lines, m.styles.Success.Render(m.info))
	}

	var hint string
	switch m.mode {
	case modeRegister:
		hint = "Enter:create  Ctrl+R:sign in"
	case modeForgot:
		hint = "Enter:reset  Ctrl+F:back"
	default:
		hint = "Enter:sign in  Ctrl+R:register  Ctrl+F:forgot"
	}
	lines = append(lines, "")
	lines = append(lines, m.styles.Hint.Render(hint))

	box := lipgloss.NewStyle().
		Width(boxWidth).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(m.theme.BorderFocused).
		Padding(1, 2).
		Render(strings.Join(lines, "\n"))

	if m.width == 0 || m.height == 0 {
		return box
	}
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, box)
}
