// Package dashboard renders the console page: verdict totals, the most
// recent scans, and the submit-for-analysis prompt.
package dashboard

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"

	"github.com/sadopc/vericheck/internal/api"
	"github.com/sadopc/vericheck/internal/core/record"
	"github.com/sadopc/vericheck/internal/ui/msgs"
	"github.com/sadopc/vericheck/internal/ui/theme"
)

// submitKinds are the content kinds the service scores, in prompt
// cycling order.
var submitKinds = []string{"url", "text", "job"}

// Model is the console panel.
type Model struct {
	userName string
	records  []record.Record
	loaded   bool
	lastSync time.Time
	syncing  bool

	input     textinput.Model
	prompting bool
	kindIdx   int
	analysis  *api.Analysis

	width  int
	height int
	theme  theme.Theme
	styles theme.Styles
}

// New creates the console panel.
func New(t theme.Theme, s theme.Styles) Model {
	input := textinput.New()
	input.Placeholder = "URL, text, or job posting"
	input.CharLimit = 500
	input.Width = 56

	return Model{input: input, theme: t, styles: s}
}

// SetUser sets the greeting name.
func (m *Model) SetUser(name string) {
	m.userName = name
}

// SetRecords replaces the history backing the summary cards.
func (m *Model) SetRecords(records []record.Record, loaded bool) {
	m.records = records
	m.loaded = loaded
}

// SetSyncState records fetch progress for the header line.
func (m *Model) SetSyncState(syncing bool, lastSync time.Time) {
	m.syncing = syncing
	m.lastSync = lastSync
}

// SetAnalysis installs the latest scoring result.
func (m *Model) SetAnalysis(a api.Analysis) {
	m.analysis = &a
}

// Prompting reports whether the analyze prompt has focus.
func (m Model) Prompting() bool {
	return m.prompting
}

// Reset clears the panel back to its signed-out state.
func (m *Model) Reset() {
	m.userName = ""
	m.records = nil
	m.loaded = false
	m.syncing = false
	m.lastSync = time.Time{}
	m.input.SetValue("")
	m.input.Blur()
	m.prompting = false
	m.kindIdx = 0
	m.analysis = nil
}

// SetSize sets the available content area.
func (m *Model) SetSize(w, h int) {
	m.width = w
	m.height = h
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	if m.prompting {
		switch keyMsg.String() {
		case "esc":
			m.prompting = false
			m.input.Blur()
			return m, func() tea.Msg { return msgs.SetModeMsg{Mode: msgs.ModeNormal} }
		case "tab":
			m.kindIdx = (m.kindIdx + 1) % len(submitKinds)
			return m, nil
		case "enter":
			content := strings.TrimSpace(m.input.Value())
			if content == "" {
				return m, nil
			}
			kind := submitKinds[m.kindIdx]
			m.prompting = false
			m.input.SetValue("")
			m.input.Blur()
			return m, tea.Batch(
				func() tea.Msg { return msgs.SetModeMsg{Mode: msgs.ModeNormal} },
				func() tea.Msg { return msgs.AnalyzeSubmitMsg{Kind: kind, Content: content} },
			)
		}
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}

	switch keyMsg.String() {
	case "a":
		m.prompting = true
		m.input.Focus()
		return m, tea.Batch(
			textinput.Blink,
			func() tea.Msg { return msgs.SetModeMsg{Mode: msgs.ModeInsert} },
		)
	case "r":
		return m, func() tea.Msg { return msgs.RefreshHistoryMsg{} }
	}
	return m, nil
}

// View renders the console page.
func (m Model) View() string {
	var b strings.Builder

	greeting := "Console"
	if m.userName != "" {
		greeting = "Welcome back, " + m.userName
	}
	b.WriteString(m.styles.Title.Render(greeting))
	b.WriteString("\n")

	switch {
	case m.syncing:
		b.WriteString(m.styles.Hint.Render("Syncing history..."))
	case !m.lastSync.IsZero():
		b.WriteString(m.styles.Hint.Render("Last synced " + humanize.Time(m.lastSync)))
	}
	b.WriteString("\n\n")

	if m.prompting {
		b.WriteString(m.prompt())
		b.WriteString("\n\n")
	} else if m.analysis != nil {
		b.WriteString(m.analysisView())
		b.WriteString("\n\n")
	}

	b.WriteString(m.cards())
	b.WriteString("\n\n")

	b.WriteString(m.styles.Subtitle.Render("Recent scans"))
	b.WriteString("\n")
	b.WriteString(m.recent())
	b.WriteString("\n\n")
	b.WriteString(m.styles.Hint.Render("a:analyze  r:refresh  2:audit logs"))

	return b.String()
}

func (m Model) prompt() string {
	kind := lipgloss.NewStyle().
		Foreground(m.theme.KindColor(submitKinds[m.kindIdx])).
		Bold(true).
		Render(submitKinds[m.kindIdx])

	content := m.styles.Subtitle.Render("Analyze ") + kind + "\n" +
		m.input.View() + "\n" +
		m.styles.Hint.Render("tab:kind  enter:analyze  esc:cancel")

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(m.theme.BorderFocused).
		Padding(0, 1).
		Render(content)
}

func (m Model) analysisView() string {
	a := m.analysis

	verdict := m.styles.VerdictStyle(a.Verdict).Render(a.Verdict)
	score := lipgloss.NewStyle().
		Foreground(m.theme.ScoreColor(a.Score)).
		Bold(true).
		Render(fmt.Sprintf("%d/100", a.Score))

	lines := []string{
		m.styles.Subtitle.Render("Last analysis") + "  " + verdict + "  " + score,
		m.styles.Normal.Render(a.Explanation),
	}
	if len(a.Flags) > 0 {
		lines = append(lines, m.styles.Warning.Render("Flags: "+strings.Join(a.Flags, ", ")))
	}
	if a.SourceType != "" && a.SourceType != "Unknown" {
		lines = append(lines, m.styles.Muted.Render("Source: "+a.SourceType))
	}

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(m.theme.VerdictColor(a.Verdict)).
		Padding(0, 1).
		Render(strings.Join(lines, "\n"))
}

func (m Model) cards() string {
	var safe, suspicious, highRisk int
	for _, r := range m.records {
		switch r.Verdict {
		case "Safe":
			safe++
		case "Suspicious":
			suspicious++
		case "High Risk":
			highRisk++
		}
	}

	card := func(label string, count int, color lipgloss.Color) string {
		return lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(color).
			Padding(0, 2).
			Render(lipgloss.NewStyle().Foreground(color).Bold(true).Render(fmt.Sprintf("%d", count)) +
				"\n" + lipgloss.NewStyle().Foreground(m.theme.Subtext).Render(label))
	}

	return lipgloss.JoinHorizontal(lipgloss.Top,
		card("Total scans", len(m.records), m.theme.Blue), " ",
		card("Safe", safe, m.theme.Green), " ",
		card("Suspicious", suspicious, m.theme.Yellow), " ",
		card("High Risk", highRisk, m.theme.Red),
	)
}

func (m Model) recent() string {
	if len(m.records) == 0 {
		if m.loaded {
			return m.styles.Hint.Render("No scans yet")
		}
		return m.styles.Hint.Render("Waiting for first sync...")
	}

	max := 5
	if len(m.records) < max {
		max = len(m.records)
	}

	var lines []string
	for _, r := range m.records[:max] {
		snippet := r.Snippet
		if snippet == "" {
			snippet = "-"
		}
		if len(snippet) > 40 {
			snippet = snippet[:37] + "..."
		}
		kind := lipgloss.NewStyle().
			Foreground(m.theme.KindColor(string(r.Kind))).
			Render(fmt.Sprintf("%-5s", string(r.Kind)))
		verdict := m.styles.VerdictStyle(r.Verdict).Render(r.Verdict)
		lines = append(lines, fmt.Sprintf("  %s %-42s %s", kind, snippet, verdict))
	}
	return strings.Join(lines, "\n")
}
