// Package msgs defines the message vocabulary panels use to talk to the
// root model.
package msgs

import (
	"time"

	"github.com/sadopc/vericheck/internal/api"
	"github.com/sadopc/vericheck/internal/core/record"
)

// Page identifies a dashboard page.
type Page int

const (
	PageConsole Page = iota
	PageLogs
	PageSettings
)

func (p Page) String() string {
	switch p {
	case PageConsole:
		return "Console"
	case PageLogs:
		return "Audit Logs"
	case PageSettings:
		return "Settings"
	default:
		return "Unknown"
	}
}

// AppMode represents the current input mode.
type AppMode int

const (
	ModeNormal AppMode = iota
	ModeInsert
	ModeCommandPalette
	ModeSearch
	ModeOverlay
)

func (m AppMode) String() string {
	switch m {
	case ModeNormal:
		return "NORMAL"
	case ModeInsert:
		return "INSERT"
	case ModeCommandPalette:
		return "COMMAND"
	case ModeSearch:
		return "SEARCH"
	case ModeOverlay:
		return "OVERLAY"
	default:
		return "UNKNOWN"
	}
}

// LoginSubmitMsg is emitted when the login form is submitted.
type LoginSubmitMsg struct {
	Email    string
	Password string
}

// RegisterSubmitMsg is emitted when the registration form is submitted.
type RegisterSubmitMsg struct {
	Name     string
	Email    string
	Password string
}

// ForgotPasswordMsg requests a password reset for an email.
type ForgotPasswordMsg struct {
	Email string
}

// LoginResultMsg is emitted when a login attempt completes.
type LoginResultMsg struct {
	Account api.Account
	Err     error
}

// RegisterResultMsg is emitted when a registration attempt completes.
type RegisterResultMsg struct {
	Err error
}

// ForgotPasswordResultMsg carries the service's reset notice.
type ForgotPasswordResultMsg struct {
	Notice string
	Err    error
}

// RefreshHistoryMsg requests a fresh history fetch for the signed-in
// account.
type RefreshHistoryMsg struct{}

// HistoryFetchedMsg is emitted when a history fetch completes. Epoch
// identifies the identity generation the fetch was issued under.
type HistoryFetchedMsg struct {
	Epoch   uint64
	Email   string
	Records []record.Record
	Err     error
}

// AnalyzeSubmitMsg submits content for scoring. Kind is "url", "text",
// or "job".
type AnalyzeSubmitMsg struct {
	Kind    string
	Content string
}

// AnalyzeResultMsg is emitted when an analyze request completes.
type AnalyzeResultMsg struct {
	Analysis api.Analysis
	Err      error
}

// LogoutMsg ends the session.
type LogoutMsg struct{}

// SwitchPageMsg navigates to a dashboard page.
type SwitchPageMsg struct {
	Page Page
}

// ToggleNotificationsMsg toggles the notifications dropdown.
type ToggleNotificationsMsg struct{}

// ToggleProfileMsg toggles the profile dropdown.
type ToggleProfileMsg struct{}

// DismissOverlaysMsg closes any open dropdown.
type DismissOverlaysMsg struct{}

// OpenCommandPaletteMsg opens the command palette.
type OpenCommandPaletteMsg struct{}

// SetModeMsg changes the app mode.
type SetModeMsg struct {
	Mode AppMode
}

// StatusMsg sets a temporary status bar message.
type StatusMsg struct {
	Text     string
	Duration time.Duration
}

// ToastMsg shows a toast notification.
type ToastMsg struct {
	Text     string
	Duration time.Duration
	IsError  bool
}

// SettingsSavedMsg is emitted when the settings save completes.
type SettingsSavedMsg struct{}

// CopySnippetMsg requests copying a record's snippet to the clipboard.
type CopySnippetMsg struct {
	Text string
}
