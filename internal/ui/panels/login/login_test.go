package login

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/sadopc/vericheck/internal/ui/msgs"
	"github.com/sadopc/vericheck/internal/ui/theme"
)

func testPanel() Model {
	t := theme.Default()
	return New(t, theme.NewStyles(t))
}

func keyMsg(key string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(key)}
}

func specialKeyMsg(t tea.KeyType) tea.KeyMsg {
	return tea.KeyMsg{Type: t}
}

func TestSubmit_EmptyFields_NoMsg(t *testing.T) {
	p := testPanel()

	p, cmd := p.Update(specialKeyMsg(tea.KeyEnter))
	if cmd != nil {
		t.Fatal("empty form must not submit")
	}
	if p.errText == "" {
		t.Error("empty form should surface a validation message")
	}
}

func TestSubmit_EmitsLoginSubmitMsg(t *testing.T) {
	p := testPanel()
	p.email.SetValue("mo@x.com")
	p.passwd.SetValue("secret")

	p, cmd := p.Update(specialKeyMsg(tea.KeyEnter))
	if cmd == nil {
		t.Fatal("expected a submit cmd")
	}
	msg := cmd()
	submit, ok := msg.(msgs.LoginSubmitMsg)
	if !ok {
		t.Fatalf("expected LoginSubmitMsg, got %T", msg)
	}
	if submit.Email != "mo@x.com" || submit.Password != "secret" {
		t.Errorf("unexpected credentials: %+v", submit)
	}
	if !p.loading {
		t.Error("panel should be loading after submit")
	}
}

func TestSubmit_WhileLoading_Ignored(t *testing.T) {
	p := testPanel()
	p.email.SetValue("mo@x.com")
	p.passwd.SetValue("secret")
	p.SetLoading(true)

	_, cmd := p.Update(specialKeyMsg(tea.KeyEnter))
	if cmd != nil {
		t.Fatal("submit must be ignored while a request is in flight")
	}
}

func TestRegisterMode_EmitsRegisterSubmitMsg(t *testing.T) {
	p := testPanel()

	p, _ = p.Update(keyMsgCtrl("ctrl+r"))
	if p.mode != modeRegister {
		t.Fatal("ctrl+r should switch to register mode")
	}

	p.name.SetValue("Mo")
	p.email.SetValue("mo@x.com")
	p.passwd.SetValue("secret")

	p, cmd := p.Update(specialKeyMsg(tea.KeyEnter))
	if cmd == nil {
		t.Fatal("expected a submit cmd")
	}
	submit, ok := cmd().(msgs.RegisterSubmitMsg)
	if !ok {
		t.Fatalf("expected RegisterSubmitMsg, got %T", cmd())
	}
	if submit.Name != "Mo" {
		t.Errorf("unexpected name: %q", submit.Name)
	}
}

func TestForgotMode_EmitsForgotPasswordMsg(t *testing.T) {
	p := testPanel()

	p, _ = p.Update(keyMsgCtrl("ctrl+f"))
	if p.mode != modeForgot {
		t.Fatal("ctrl+f should switch to forgot mode")
	}

	p.email.SetValue("mo@x.com")
	p, cmd := p.Update(specialKeyMsg(tea.KeyEnter))
	if cmd == nil {
		t.Fatal("expected a submit cmd")
	}
	if _, ok := cmd().(msgs.ForgotPasswordMsg); !ok {
		t.Fatalf("expected ForgotPasswordMsg, got %T", cmd())
	}
}

func TestReset_ClearsEverything(t *testing.T) {
	p := testPanel()
	p.email.SetValue("mo@x.com")
	p.passwd.SetValue("secret")
	p.SetError("Invalid credentials")
	p, _ = p.Update(keyMsgCtrl("ctrl+r"))

	p.Reset()

	if p.mode != modeSignIn {
		t.Error("reset should return to sign-in mode")
	}
	if p.email.Value() != "" || p.passwd.Value() != "" {
		t.Error("reset should clear the form values")
	}
	if p.errText != "" {
		t.Error("reset should clear the error")
	}
}

func TestSetError_StopsLoading(t *testing.T) {
	p := testPanel()
	p.SetLoading(true)
	p.SetError("Invalid credentials")

	if p.loading {
		t.Error("error should stop the loading state")
	}
	if !strings.Contains(p.View(), "Invalid credentials") {
		t.Error("view should show the error text")
	}
}

func TestView_RegisterShowsNameField(t *testing.T) {
	p := testPanel()
	p, _ = p.Update(keyMsgCtrl("ctrl+r"))

	if !strings.Contains(p.View(), "Create an account") {
		t.Error("register mode should change the subtitle")
	}
}

func keyMsgCtrl(name string) tea.KeyMsg {
	switch name {
	case "ctrl+r":
		return tea.KeyMsg{Type: tea.KeyCtrlR}
	case "ctrl+f":
		return tea.KeyMsg{Type: tea.KeyCtrlF}
	}
	return tea.KeyMsg{}
}
