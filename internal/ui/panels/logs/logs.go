// Package logs renders the audit history table with live filtering and
// a raw record inspector.
package logs

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/tidwall/pretty"

	"github.com/sadopc/vericheck/internal/core/record"
	"github.com/sadopc/vericheck/internal/ui/msgs"
	"github.com/sadopc/vericheck/internal/ui/theme"
)

// Model is the audit logs panel.
type Model struct {
	records   []record.Record
	filtered  []record.Record
	loaded    bool
	cursor    int
	search    textinput.Model
	searching bool
	detail    bool
	width     int
	height    int
	theme     theme.Theme
	styles    theme.Styles
}

// New creates the logs panel.
func New(t theme.Theme, s theme.Styles) Model {
	search := textinput.New()
	search.Placeholder = "Filter by type, verdict, or snippet..."
	search.CharLimit = 128
	search.Width = 40

	return Model{
		search: search,
		theme:  t,
		styles: s,
	}
}

// SetRecords replaces the table contents and reapplies the active filter.
func (m *Model) SetRecords(records []record.Record, loaded bool) {
	m.records = records
	m.loaded = loaded
	m.applyFilter()
}

// Reset clears the panel back to its signed-out state.
func (m *Model) Reset() {
	m.records = nil
	m.filtered = nil
	m.loaded = false
	m.cursor = 0
	m.searching = false
	m.detail = false
	m.search.SetValue("")
	m.search.Blur()
}

// SetSize sets the available content area.
func (m *Model) SetSize(w, h int) {
	m.width = w
	m.height = h
}

// Searching reports whether the filter input has focus.
func (m Model) Searching() bool {
	return m.searching
}

// Filtered returns the records currently shown.
func (m Model) Filtered() []record.Record {
	return m.filtered
}

func (m *Model) applyFilter() {
	m.filtered = record.Filter(m.records, m.search.Value())
	if m.cursor >= len(m.filtered) {
		m.cursor = len(m.filtered) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

func (m Model) selected() (record.Record, bool) {
	if m.cursor < 0 || m.cursor >= len(m.filtered) {
		return record.Record{}, false
	}
	return m.filtered[m.cursor], true
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

	if m.searching {
		switch keyMsg.String() {
		case "esc":
			m.searching = false
			m.search.SetValue("")
			m.search.Blur()
			m.applyFilter()
			return m, func() tea.Msg { return msgs.SetModeMsg{Mode: msgs.ModeNormal} }
		case "enter":
			m.searching = false
			m.search.Blur()
			return m, func() tea.Msg { return msgs.SetModeMsg{Mode: msgs.ModeNormal} }
		}
		var cmd tea.Cmd
		m.search, cmd = m.search.Update(msg)
		m.applyFilter()
		return m, cmd
	}

	if m.detail {
		switch keyMsg.String() {
		case "esc", "enter", "q":
			m.detail = false
		case "y":
			if r, ok := m.selected(); ok && r.Snippet != "" {
				text := r.Snippet
				return m, func() tea.Msg { return msgs.CopySnippetMsg{Text: text} }
			}
		}
		return m, nil
	}

	switch keyMsg.String() {
	case "/":
		m.searching = true
		m.search.Focus()
		return m, tea.Batch(
			textinput.Blink,
			func() tea.Msg { return msgs.SetModeMsg{Mode: msgs.ModeSearch} },
		)
	case "j", "down":
		if m.cursor < len(m.filtered)-1 {
			m.cursor++
		}
	case "k", "up":
		if m.cursor > 0 {
			m.cursor--
		}
	case "g":
		m.cursor = 0
	case "G":
		if len(m.filtered) > 0 {
			m.cursor = len(m.filtered) - 1
		}
	case "enter":
		if _, ok := m.selected(); ok {
			m.detail = true
		}
	case "y":
		if r, ok := m.selected(); ok && r.Snippet != "" {
			text := r.Snippet
			return m, func() tea.Msg { return msgs.CopySnippetMsg{Text: text} }
		}
	}

	return m, nil
}

// View renders the panel.
func (m Model) View() string {
	if m.detail {
		return m.detailView()
	}

	var b strings.Builder

	b.WriteString(m.styles.Title.Render("Audit Logs"))
	b.WriteString("\n")

	if m.searching || m.search.Value() != "" {
		b.WriteString(m.search.View())
		b.WriteString("\n")
	}

	if len(m.filtered) == 0 {
		b.WriteString("\n")
		switch {
		case !m.loaded && len(m.records) == 0:
			b.WriteString(m.styles.Hint.Render("Waiting for first sync..."))
		case m.search.Value() != "":
			b.WriteString(m.styles.Hint.Render(fmt.Sprintf("No results for %q", m.search.Value())))
		default:
			b.WriteString(m.styles.Hint.Render("No scans yet"))
		}
		return b.String()
	}

	b.WriteString("\n")
	b.WriteString(m.headerRow())
	b.WriteString("\n")

	visible := m.height - 5
	if visible < 3 {
		visible = 3
	}
	start := 0
	if m.cursor >= visible {
		start = m.cursor - visible + 1
	}
	end := start + visible
	if end > len(m.filtered) {
		end = len(m.filtered)
	}

	for i := start; i < end; i++ {
		b.WriteString(m.row(i))
		b.WriteString("\n")
	}

	b.WriteString(m.styles.Muted.Render(
		fmt.Sprintf("%d of %d records", len(m.filtered), len(m.records))))

	return b.String()
}

func (m Model) headerRow() string {
	h := fmt.Sprintf("  %-17s %-5s %-32s %6s  %s",
		"DATE", "TYPE", "SNIPPET", "SCORE", "VERDICT")
	return m.styles.Muted.Render(h)
}

func (m Model) row(i int) string {
	r := m.filtered[i]

	snippet := r.Snippet
	if snippet == "" {
		snippet = "-"
	}
	if len(snippet) > 32 {
		snippet = snippet[:29] + "..."
	}

	kind := lipgloss.NewStyle().
		Foreground(m.theme.KindColor(string(r.Kind))).
		Render(fmt.Sprintf("%-5s", string(r.Kind)))
	score := lipgloss.NewStyle().
		Foreground(m.theme.ScoreColor(r.Score)).
		Render(fmt.Sprintf("%6d", r.Score))
	verdict := m.styles.VerdictStyle(r.Verdict).Render(r.Verdict)

	line := fmt.Sprintf("%-17s ", r.Date) + kind +
		fmt.Sprintf(" %-32s ", snippet) + score + "  " + verdict

	if i == m.cursor {
		return m.styles.Cursor.Render("> " + line)
	}
	return "  " + line
}

func (m Model) detailView() string {
	r, ok := m.selected()
	if !ok {
		return ""
	}

	raw, err := json.Marshal(r)
	if err != nil {
		return m.styles.Error.Render(err.Error())
	}
	body := string(pretty.Pretty(raw))

	var b strings.Builder
	b.WriteString(m.styles.Title.Render("Record Detail"))
	b.WriteString("\n\n")
	b.WriteString(m.styles.Normal.Render(body))
	b.WriteString("\n")
	b.WriteString(m.styles.Hint.Render("y:copy snippet  esc:back"))

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(m.theme.BorderFocused).
		Padding(1, 2).
		Render(b.String())
}
