// Package app wires the panels, the session store, and the service
// client into the root Bubble Tea model.
package app

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"

	"github.com/sadopc/vericheck/internal/api"
	"github.com/sadopc/vericheck/internal/config"
	"github.com/sadopc/vericheck/internal/core/histcache"
	"github.com/sadopc/vericheck/internal/core/record"
	"github.com/sadopc/vericheck/internal/core/session"
	"github.com/sadopc/vericheck/internal/ui/components"
	"github.com/sadopc/vericheck/internal/ui/layout"
	"github.com/sadopc/vericheck/internal/ui/msgs"
	"github.com/sadopc/vericheck/internal/ui/panels/dashboard"
	"github.com/sadopc/vericheck/internal/ui/panels/login"
	"github.com/sadopc/vericheck/internal/ui/panels/logs"
	"github.com/sadopc/vericheck/internal/ui/panels/settings"
	"github.com/sadopc/vericheck/internal/ui/theme"
)

// App is the root Bubble Tea model.
type App struct {
	login    login.Model
	console  dashboard.Model
	logs     logs.Model
	settings settings.Model

	statusBar      components.StatusBar
	commandPalette components.CommandPalette
	help           components.Help
	toast          components.Toast
	modal          components.Modal
	notifications  components.NotificationsDropdown
	profile        components.ProfileDropdown

	store  *session.Store
	client *api.Client
	cache  *histcache.Store
	cfg    config.Config
	logger *zap.Logger

	mode     msgs.AppMode
	page     msgs.Page
	layout   layout.Layout
	keys     KeyMap
	syncing  bool
	lastSync time.Time

	theme  theme.Theme
	styles theme.Styles

	width  int
	height int
	ready  bool
}

// New creates a new App model.
func New(cfg config.Config, client *api.Client, cache *histcache.Store, logger *zap.Logger) App {
	t := theme.Resolve(cfg.Theme)
	s := theme.NewStyles(t)

	if logger == nil {
		logger = zap.NewNop()
	}

	return App{
		login:    login.New(t, s),
		console:  dashboard.New(t, s),
		logs:     logs.New(t, s),
		settings: settings.New(t, s),

		statusBar:      components.NewStatusBar(t, s),
		commandPalette: components.NewCommandPalette(t, s),
		help:           components.NewHelp(t, s),
		toast:          components.NewToast(t, s),
		modal:          components.NewModal(t, s),
		notifications:  components.NewNotificationsDropdown(t, s),
		profile:        components.NewProfileDropdown(t, s),

		store:  session.NewStore(),
		client: client,
		cache:  cache,
		cfg:    cfg,
		logger: logger,

		mode: msgs.ModeNormal,
		page: msgs.PageConsole,
		keys: DefaultKeyMap(),

		theme:  t,
		styles: s,
	}
}

func (a App) Init() tea.Cmd {
	return a.login.Init()
}

func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.layout = layout.HandleResize(msg, true)
		a.resizePanels()
		a.ready = true
		return a, nil

	case tea.KeyMsg:
		return a.handleKey(msg)

	case msgs.LoginSubmitMsg:
		return a, a.loginCmd(msg.Email, msg.Password)

	case msgs.RegisterSubmitMsg:
		return a, a.registerCmd(msg.Name, msg.Email, msg.Password)

	case msgs.ForgotPasswordMsg:
		return a, a.forgotCmd(msg.Email)

	case msgs.LoginResultMsg:
		return a.handleLoginResult(msg)

	case msgs.RegisterResultMsg:
		if msg.Err != nil {
			a.login.SetError(msg.Err.Error())
			return a, nil
		}
		a.login.SetInfo("Account created. Sign in to continue.")
		return a, nil

	case msgs.ForgotPasswordResultMsg:
		if msg.Err != nil {
			a.login.SetError(msg.Err.Error())
			return a, nil
		}
		a.login.SetInfo(msg.Notice)
		return a, nil

	case msgs.AnalyzeSubmitMsg:
		return a.handleAnalyzeSubmit(msg)

	case msgs.AnalyzeResultMsg:
		return a.handleAnalyzeResult(msg)

	case msgs.RefreshHistoryMsg:
		epoch, email, ok := a.store.BeginRefresh()
		if !ok {
			return a, nil
		}
		a.syncing = true
		a.syncPanels()
		return a, a.fetchHistory(epoch, email)

	case msgs.HistoryFetchedMsg:
		return a.handleHistoryFetched(msg)

	case msgs.LogoutMsg:
		return a.handleLogout()

	case msgs.SwitchPageMsg:
		a.page = msg.Page
		a.statusBar.SetPage(msg.Page)
		return a, nil

	case msgs.ToggleNotificationsMsg:
		a.store.ToggleNotifications()
		a.setOverlayMode()
		return a, nil

	case msgs.ToggleProfileMsg:
		a.store.ToggleProfile()
		a.setOverlayMode()
		return a, nil

	case msgs.DismissOverlaysMsg:
		a.store.DismissOverlays()
		a.setOverlayMode()
		return a, nil

	case msgs.OpenCommandPaletteMsg:
		a.mode = msgs.ModeCommandPalette
		a.statusBar.SetMode(a.mode)
		a.commandPalette.Open()
		return a, nil

	case msgs.SetModeMsg:
		a.mode = msg.Mode
		a.statusBar.SetMode(msg.Mode)
		return a, nil

	case msgs.StatusMsg:
		return a, a.statusBar.ShowMessage(msg.Text, msg.Duration)

	case msgs.ToastMsg:
		cmd := a.toast.Show(msg.Text, msg.IsError, msg.Duration)
		return a, cmd

	case msgs.SettingsSavedMsg:
		var cmd tea.Cmd
		a.settings, cmd = a.settings.Update(msg)
		toastCmd := a.toast.Show("Settings saved", false, 2*time.Second)
		return a, tea.Batch(cmd, toastCmd)

	case msgs.CopySnippetMsg:
		if err := clipboard.WriteAll(msg.Text); err != nil {
			cmd := a.toast.Show("Clipboard error: "+err.Error(), true, 3*time.Second)
			return a, cmd
		}
		cmd := a.toast.Show("Snippet copied", false, 2*time.Second)
		return a, cmd
	}

	var cmds []tea.Cmd
	var cmd tea.Cmd
	a.toast, cmd = a.toast.Update(msg)
	if cmd != nil {
		cmds = append(cmds, cmd)
	}
	a.statusBar, cmd = a.statusBar.Update(msg)
	if cmd != nil {
		cmds = append(cmds, cmd)
	}
	return a, tea.Batch(cmds...)
}

func (a App) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, a.keys.Quit) {
		return a, tea.Quit
	}

	// Full-screen overlays swallow input first.
	if a.commandPalette.Visible {
		var cmd tea.Cmd
		a.commandPalette, cmd = a.commandPalette.Update(msg)
		return a, cmd
	}
	if a.help.Visible {
		var cmd tea.Cmd
		a.help, cmd = a.help.Update(msg)
		return a, cmd
	}
	if a.modal.Visible {
		var cmd tea.Cmd
		a.modal, cmd = a.modal.Update(msg)
		return a, cmd
	}

	if !a.store.LoggedIn() {
		var cmd tea.Cmd
		a.login, cmd = a.login.Update(msg)
		return a, cmd
	}

	// Text entry modes route straight to the owning panel.
	if a.mode == msgs.ModeSearch && a.page == msgs.PageLogs {
		var cmd tea.Cmd
		a.logs, cmd = a.logs.Update(msg)
		return a, cmd
	}
	if a.mode == msgs.ModeInsert {
		var cmd tea.Cmd
		switch a.page {
		case msgs.PageConsole:
			a.console, cmd = a.console.Update(msg)
			return a, cmd
		case msgs.PageSettings:
			a.settings, cmd = a.settings.Update(msg)
			return a, cmd
		}
	}

	// Dropdown toggles resolve before the ambient dismissal below, so a
	// toggle keypress lands on the dropdown state machine instead of
	// being eaten as an outside press.
	switch {
	case key.Matches(msg, a.keys.Notifications):
		a.store.ToggleNotifications()
		a.setOverlayMode()
		return a, nil
	case key.Matches(msg, a.keys.Profile):
		a.store.ToggleProfile()
		a.setOverlayMode()
		return a, nil
	}

	// Any other key while a dropdown is open dismisses it first and then
	// acts normally.
	if a.store.OverlayOpen() {
		a.store.DismissOverlays()
		a.setOverlayMode()
		if key.Matches(msg, a.keys.Dismiss) {
			return a, nil
		}
	}

	switch {
	case key.Matches(msg, a.keys.CommandPalette):
		return a, func() tea.Msg { return msgs.OpenCommandPaletteMsg{} }
	case key.Matches(msg, a.keys.Help):
		a.help.SetSize(a.width, a.height)
		a.help.Toggle()
		a.mode = msgs.ModeOverlay
		a.statusBar.SetMode(a.mode)
		return a, nil
	case key.Matches(msg, a.keys.SignOut):
		a.modal.Show("Sign out?", "You will need to sign in again.", "Sign out", msgs.LogoutMsg{})
		return a, nil
	case key.Matches(msg, a.keys.PageConsole):
		return a, func() tea.Msg { return msgs.SwitchPageMsg{Page: msgs.PageConsole} }
	case key.Matches(msg, a.keys.PageLogs):
		return a, func() tea.Msg { return msgs.SwitchPageMsg{Page: msgs.PageLogs} }
	case key.Matches(msg, a.keys.PageSettings):
		return a, func() tea.Msg { return msgs.SwitchPageMsg{Page: msgs.PageSettings} }
	}

	var cmd tea.Cmd
	switch a.page {
	case msgs.PageConsole:
		a.console, cmd = a.console.Update(msg)
	case msgs.PageLogs:
		a.logs, cmd = a.logs.Update(msg)
	case msgs.PageSettings:
		a.settings, cmd = a.settings.Update(msg)
	}
	return a, cmd
}

func (a App) loginCmd(email, password string) tea.Cmd {
	client := a.client
	timeout := a.timeout()
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()

		acct, err := client.Login(ctx, email, password)
		return msgs.LoginResultMsg{Account: acct, Err: err}
	}
}

func (a App) registerCmd(name, email, password string) tea.Cmd {
	client := a.client
	timeout := a.timeout()
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()

		err := client.Register(ctx, name, email, password)
		return msgs.RegisterResultMsg{Err: err}
	}
}

func (a App) forgotCmd(email string) tea.Cmd {
	client := a.client
	timeout := a.timeout()
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()

		notice, err := client.ForgotPassword(ctx, email)
		return msgs.ForgotPasswordResultMsg{Notice: notice, Err: err}
	}
}

func (a App) analyzeCmd(email, kind, content string) tea.Cmd {
	client := a.client
	timeout := a.timeout()
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()

		res, err := client.Analyze(ctx, email, kind, content)
		return msgs.AnalyzeResultMsg{Analysis: res, Err: err}
	}
}

func (a App) handleAnalyzeSubmit(msg msgs.AnalyzeSubmitMsg) (tea.Model, tea.Cmd) {
	u, ok := a.store.User()
	if !ok {
		return a, nil
	}
	a.logger.Info("analyze submitted",
		zap.String("email", u.Email), zap.String("kind", msg.Kind))
	return a, tea.Batch(
		a.analyzeCmd(u.Email, msg.Kind, msg.Content),
		func() tea.Msg {
			return msgs.StatusMsg{Text: "Analyzing " + msg.Kind + "...", Duration: 5 * time.Second}
		},
	)
}

func (a App) handleAnalyzeResult(msg msgs.AnalyzeResultMsg) (tea.Model, tea.Cmd) {
	if msg.Err != nil {
		a.logger.Warn("analyze failed", zap.Error(msg.Err))
		return a, func() tea.Msg {
			return msgs.ToastMsg{Text: "Analysis failed: " + msg.Err.Error(), IsError: true}
		}
	}

	a.console.SetAnalysis(msg.Analysis)
	toastCmd := a.toast.ShowVerdict(
		fmt.Sprintf("%s (%d/100)", msg.Analysis.Verdict, msg.Analysis.Score),
		msg.Analysis.Verdict, 4*time.Second)

	// The service recorded the scan, so pull the history it now heads.
	return a, tea.Batch(toastCmd, func() tea.Msg { return msgs.RefreshHistoryMsg{} })
}

func (a App) fetchHistory(epoch uint64, email string) tea.Cmd {
	client := a.client
	timeout := a.timeout()
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()

		records, err := client.History(ctx, email)
		return msgs.HistoryFetchedMsg{Epoch: epoch, Email: email, Records: records, Err: err}
	}
}

func (a App) timeout() time.Duration {
	if a.cfg.DefaultTimeout > 0 {
		return a.cfg.DefaultTimeout
	}
	return 30 * time.Second
}

func (a App) handleLoginResult(msg msgs.LoginResultMsg) (tea.Model, tea.Cmd) {
	if msg.Err != nil {
		a.login.SetError(msg.Err.Error())
		return a, nil
	}

	epoch, err := a.store.Login(session.User{Name: msg.Account.Name, Email: msg.Account.Email})
	if err != nil {
		a.login.SetError("Service returned an incomplete identity")
		a.logger.Warn("rejected login identity", zap.Error(err))
		return a, nil
	}

	// Warm-start from the last synced history while the fetch runs.
	if a.cache != nil {
		if cached, err := a.cache.Get(msg.Account.Email); err == nil {
			a.store.Seed(cached)
		}
	}

	a.page = msgs.PageConsole
	a.syncing = true
	a.lastSync = time.Time{}
	a.profile.SetIdentity(msg.Account.Name, msg.Account.Email)
	a.syncPanels()
	a.logger.Info("signed in", zap.String("email", msg.Account.Email))

	return a, a.fetchHistory(epoch, msg.Account.Email)
}

func (a App) handleHistoryFetched(msg msgs.HistoryFetchedMsg) (tea.Model, tea.Cmd) {
	if msg.Err != nil {
		// Failures never clobber what is already on screen. Stale
		// failures are dropped without comment.
		if msg.Epoch != a.store.Epoch() {
			return a, nil
		}
		a.syncing = false
		a.syncPanels()
		a.logger.Warn("history sync failed", zap.String("email", msg.Email), zap.Error(msg.Err))
		cmd := a.toast.Show("Sync failed: "+msg.Err.Error(), true, 4*time.Second)
		return a, cmd
	}

	if !a.store.ApplyHistory(msg.Epoch, msg.Records) {
		a.logger.Debug("discarded stale history response",
			zap.String("email", msg.Email), zap.Uint64("epoch", msg.Epoch))
		return a, nil
	}

	a.syncing = false
	a.lastSync = time.Now()
	if a.cache != nil {
		if err := a.cache.Replace(msg.Email, msg.Records); err != nil {
			a.logger.Warn("history cache write failed", zap.Error(err))
		}
	}
	a.syncPanels()
	return a, nil
}

func (a App) handleLogout() (tea.Model, tea.Cmd) {
	if u, ok := a.store.User(); ok {
		a.logger.Info("signed out", zap.String("email", u.Email))
	}
	a.store.Logout()
	a.syncing = false
	a.lastSync = time.Time{}
	a.page = msgs.PageConsole
	a.mode = msgs.ModeNormal
	a.statusBar.SetMode(a.mode)

	a.login.Reset()
	a.console.Reset()
	a.logs.Reset()
	a.settings.Reset()
	a.syncPanels()
	return a, nil
}

func (a *App) setOverlayMode() {
	if a.store.OverlayOpen() {
		a.mode = msgs.ModeOverlay
	} else {
		a.mode = msgs.ModeNormal
	}
	a.statusBar.SetMode(a.mode)
}

// syncPanels pushes the session state into every panel and component
// that renders it.
func (a *App) syncPanels() {
	history := a.store.History()
	loaded := a.store.HistoryLoaded()

	var name, email string
	if u, ok := a.store.User(); ok {
		name = u.Name
		email = u.Email
	}

	a.console.SetUser(name)
	a.console.SetRecords(history, loaded)
	a.console.SetSyncState(a.syncing, a.lastSync)
	a.logs.SetRecords(history, loaded)

	a.statusBar.SetIdentity(email)
	a.statusBar.SetPage(a.page)
	a.statusBar.SetSyncing(a.syncing)
	a.statusBar.SetLastSync(a.lastSync)

	a.notifications.SetItems(riskNotifications(history))
	a.profile.SetIdentity(name, email)
}

// riskNotifications surfaces the non-Safe records as dropdown entries,
// newest first as the service orders them.
func riskNotifications(history []record.Record) []components.Notification {
	var items []components.Notification
	for _, r := range history {
		if r.Verdict == "Safe" {
			continue
		}
		text := string(r.Kind)
		if r.Snippet != "" {
			text += ": " + r.Snippet
		}
		items = append(items, components.Notification{
			Text:    text,
			Verdict: r.Verdict,
			When:    parseRecordDate(r.Date),
		})
		if len(items) == 8 {
			break
		}
	}
	return items
}

func parseRecordDate(s string) time.Time {
	for _, layout := range []string{"2006-01-02 15:04", "2006-01-02"} {
		if t, err := time.ParseInLocation(layout, s, time.Local); err == nil {
			return t
		}
	}
	return time.Time{}
}

func (a *App) resizePanels() {
	l := a.layout
	a.login.SetSize(a.width, a.height)
	a.console.SetSize(l.ContentWidth, l.ContentHeight)
	a.logs.SetSize(l.ContentWidth, l.ContentHeight)
	a.settings.SetSize(l.ContentWidth, l.ContentHeight)
	a.statusBar.SetWidth(a.width)
	a.help.SetSize(a.width, a.height)
}

func (a App) View() string {
	if !a.ready {
		return "Loading..."
	}

	if !a.store.LoggedIn() {
		return a.login.View()
	}

	header := a.headerView()

	var content string
	switch a.page {
	case msgs.PageConsole:
		content = a.console.View()
	case msgs.PageLogs:
		content = a.logs.View()
	case msgs.PageSettings:
		content = a.settings.View()
	}

	body := content
	if a.layout.NavVisible {
		body = lipgloss.JoinHorizontal(lipgloss.Top, a.navView(), content)
	}
	body = lipgloss.NewStyle().Height(a.layout.ContentHeight).Render(body)

	main := lipgloss.JoinVertical(lipgloss.Left, header, body, a.statusBar.View())

	if a.commandPalette.Visible {
		main = overlayCenter(main, a.commandPalette.View(), a.width, a.height)
	}
	if a.help.Visible {
		main = overlayCenter(main, a.help.View(), a.width, a.height)
	}
	if a.modal.Visible {
		main = overlayCenter(main, a.modal.View(), a.width, a.height)
	}
	switch a.store.Overlay() {
	case session.OverlayNotifications:
		main = overlayTopRight(main, a.notifications.View(), a.width)
	case session.OverlayProfile:
		main = overlayTopRight(main, a.profile.View(), a.width)
	}
	if a.toast.Visible {
		main = overlayTopRight(main, a.toast.View(), a.width)
	}

	return main
}

func (a App) headerView() string {
	left := lipgloss.NewStyle().
		Foreground(a.theme.Mauve).
		Bold(true).
		Render(" VeriCheck")

	bell := "n:notifications"
	if c := a.notifications.Count(); c > 0 {
		bell = lipgloss.NewStyle().
			Foreground(a.theme.Red).
			Bold(true).
			Render("n:notifications(" + strconv.Itoa(c) + ")")
	}
	who := "p:profile"
	if u, ok := a.store.User(); ok {
		who = "p:" + u.Name
	}
	right := lipgloss.NewStyle().
		Foreground(a.theme.Subtext).
		Render(bell + "  " + who + " ")

	gap := a.width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		gap = 1
	}
	return lipgloss.NewStyle().
		Background(a.theme.Mantle).
		Width(a.width).
		Render(left + strings.Repeat(" ", gap) + right)
}

func (a App) navView() string {
	pages := []msgs.Page{msgs.PageConsole, msgs.PageLogs, msgs.PageSettings}

	var lines []string
	for i, p := range pages {
		label := strconv.Itoa(i+1) + " " + p.String()
		if p == a.page {
			lines = append(lines, a.styles.NavActive.Render(label))
		} else {
			lines = append(lines, a.styles.NavInactive.Render(label))
		}
	}

	return lipgloss.NewStyle().
		Width(a.layout.NavWidth).
		Height(a.layout.ContentHeight).
		Render(strings.Join(lines, "\n"))
}

func overlayCenter(_, overlay string, width, height int) string {
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, overlay,
		lipgloss.WithWhitespaceChars(" "),
		lipgloss.WithWhitespaceForeground(lipgloss.Color("#1e1e2e")),
	)
}

func overlayTopRight(bg, overlay string, width int) string {
	overlayWidth := lipgloss.Width(overlay)
	gap := width - overlayWidth - 2
	if gap < 0 {
		gap = 0
	}
	positioned := lipgloss.NewStyle().MarginLeft(gap).Render(overlay)
	return positioned + "\n" + bg
}
