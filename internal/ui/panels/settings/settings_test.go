package settings

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/sadopc/vericheck/internal/ui/msgs"
	"github.com/sadopc/vericheck/internal/ui/theme"
)

func testPanel() Model {
	t := theme.Default()
	m := New(t, theme.NewStyles(t))
	m.SetSize(100, 30)
	return m
}

func keyMsg(key string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(key)}
}

func TestSensitivity_AdjustAndClamp(t *testing.T) {
	p := testPanel()
	p.focus = fieldSensitivity

	p, _ = p.Update(keyMsg("l"))
	if p.sensitivity != 80 {
		t.Fatalf("expected 80 after l, got %d", p.sensitivity)
	}

	for i := 0; i < 10; i++ {
		p, _ = p.Update(keyMsg("l"))
	}
	if p.sensitivity != 100 {
		t.Fatalf("sensitivity must clamp at 100, got %d", p.sensitivity)
	}

	for i := 0; i < 30; i++ {
		p, _ = p.Update(keyMsg("h"))
	}
	if p.sensitivity != 0 {
		t.Fatalf("sensitivity must clamp at 0, got %d", p.sensitivity)
	}
}

func TestNotifyToggle(t *testing.T) {
	p := testPanel()
	p.focus = fieldNotify

	p, _ = p.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if p.notify {
		t.Fatal("enter should toggle notifications off")
	}
	p, _ = p.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if !p.notify {
		t.Fatal("enter should toggle notifications back on")
	}
}

func TestAPIKey_EditAndReveal(t *testing.T) {
	p := testPanel()
	p.focus = fieldAPIKey

	p, cmd := p.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if !p.Editing() {
		t.Fatal("enter should start editing the key")
	}
	if cmd == nil {
		t.Fatal("editing should emit a mode change")
	}

	for _, r := range "vk-123" {
		p, _ = p.Update(keyMsg(string(r)))
	}
	p, _ = p.Update(tea.KeyMsg{Type: tea.KeyEscape})
	if p.Editing() {
		t.Fatal("esc should stop editing")
	}
	if p.apiKey.Value() != "vk-123" {
		t.Fatalf("unexpected key value: %q", p.apiKey.Value())
	}

	// v toggles reveal.
	p, _ = p.Update(keyMsg("v"))
	if !p.showKey {
		t.Fatal("v should reveal the key")
	}
}

func TestSave_DelayedCompletion(t *testing.T) {
	p := testPanel()

	p, cmd := p.Update(keyMsg("s"))
	if !p.saving {
		t.Fatal("s should start saving")
	}
	if cmd == nil {
		t.Fatal("save should schedule a completion tick")
	}
	if !strings.Contains(p.View(), "Saving...") {
		t.Error("view should show the saving state")
	}

	// A second save while pending is ignored.
	_, cmd2 := p.Update(keyMsg("s"))
	if cmd2 != nil {
		t.Fatal("save while saving should do nothing")
	}

	p, _ = p.Update(msgs.SettingsSavedMsg{})
	if p.saving {
		t.Fatal("completion should clear the saving state")
	}
	if !strings.Contains(p.View(), "Settings saved") {
		t.Error("view should confirm the save")
	}
}

func TestDefaults_Restore(t *testing.T) {
	p := testPanel()
	p.focus = fieldSensitivity
	p, _ = p.Update(keyMsg("h"))
	p, _ = p.Update(keyMsg("h"))

	p, _ = p.Update(keyMsg("d"))
	if p.sensitivity != defaultSensitivity {
		t.Fatalf("d should restore the default sensitivity, got %d", p.sensitivity)
	}
	if !p.notify {
		t.Fatal("d should restore notifications")
	}
}
