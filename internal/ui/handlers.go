package ui

import (
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"
)

// handleWindowSize records the terminal size and resizes every screen.
func (a *appModelAdapter) handleWindowSize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	a.width, a.height = msg.Width, msg.Height
	var cmds []tea.Cmd
	for i, s := range a.Screens.Stack {
		v, cmd := s.Update(msg)
		if sc, ok := v.(Screen); ok {
			a.Screens.Stack[i] = sc
		}
		cmds = append(cmds, cmd)
	}
	return a, tea.Batch(cmds...)
}

// handleKey routes a key: overlay first, then key bindings, then esc
// navigation, then the top screen.
func (a *appModelAdapter) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		return a, tea.Quit
	}

	if a.Overlays.Len() > 0 {
		cmd, _ := a.Overlays.UpdateTop(msg)
		return a, cmd
	}

	top := a.Screens.Peek()
	capturing := false
	if tc, ok := top.(textCapturer); ok {
		capturing = tc.CapturesText()
	}
	if !capturing && a.KeyHandler != nil {
		if consumed, cmd := a.KeyHandler.Handle(msg, a.Mode()); consumed {
			return a, cmd
		}
	}

	if msg.String() == "esc" && a.Screens.Len() > 1 {
		return a.handleBack()
	}

	if top == nil {
		return a, nil
	}
	v, cmd := top.Update(msg)
	a.Screens.replaceTop(v)
	return a, cmd
}

// handleEffect folds a finished crud effect into its controller, refreshes
// the widgets and closes a form whose save succeeded.
func (a *appModelAdapter) handleEffect(msg effectMsg) (tea.Model, tea.Cmd) {
	cmd := msg.apply()
	for _, s := range a.Screens.Stack {
		s.Sync()
	}
	if f, ok := a.Overlays.Peek().(*FormModal); ok && !f.Visible() {
		a.Overlays.Pop()
	}
	return a, cmd
}

// handleNavigate shows the screen for msg.Mode, going back to it when it is
// already in the history.
func (a *appModelAdapter) handleNavigate(msg NavigateMsg) (tea.Model, tea.Cmd) {
	if a.Mode() == msg.Mode {
		return a, nil
	}
	a.env.logger.Debug("navigate", zap.Stringer("from", a.Mode()), zap.Stringer("to", msg.Mode))
	if a.Screens.PopTo(msg.Mode) {
		return a, nil
	}
	s := a.newScreen(msg.Mode)
	if s == nil {
		return a, nil
	}
	a.Screens.Push(s)
	var sizeCmd tea.Cmd
	if a.width > 0 {
		v, cmd := s.Update(tea.WindowSizeMsg{Width: a.width, Height: a.height})
		a.Screens.replaceTop(v)
		sizeCmd = cmd
	}
	return a, tea.Batch(a.Screens.Peek().Init(), sizeCmd)
}

func (a *AppModel) newScreen(mode AppMode) Screen {
	switch mode {
	case ModeDashboard:
		return NewDashboardView(a.env)
	case ModeEvents:
		return NewEventsView(a.env)
	case ModeParticipations:
		return NewParticipationsView(a.env)
	case ModeProfile:
		return NewProfileView(a.env)
	case ModeLogin:
		return NewLoginView(a.env)
	}
	return nil
}

// handleBack pops the current screen; the root screen stays.
func (a *appModelAdapter) handleBack() (tea.Model, tea.Cmd) {
	if a.Screens.Len() > 1 {
		a.Screens.Pop()
	}
	return a, nil
}

// handleLoginResult shows the outcome and, on success, replaces the
// history with the Dashboard.
func (a *appModelAdapter) handleLoginResult(msg LoginResultMsg) (tea.Model, tea.Cmd) {
	if msg.Err != nil {
		a.env.logger.Warn("login failed", zap.Error(msg.Err))
		a.Notify(noticeFor("login.failed", true))
		return a, nil
	}
	if msg.Session.UserID != "" {
		a.env.res.UserID = msg.Session.UserID
	}
	a.env.logger.Info("logged in", zap.String("user_id", a.env.res.UserID))
	a.Notify(noticeFor("login.ok", false))

	d := NewDashboardView(a.env)
	a.Overlays.Clear()
	a.Screens.Reset(d)
	var sizeCmd tea.Cmd
	if a.width > 0 {
		v, cmd := d.Update(tea.WindowSizeMsg{Width: a.width, Height: a.height})
		a.Screens.replaceTop(v)
		sizeCmd = cmd
	}
	return a, tea.Batch(a.Screens.Peek().Init(), sizeCmd)
}

// handleProfileLoaded delivers the profile to the Profile screen, wherever
// it is in the history.
func (a *appModelAdapter) handleProfileLoaded(msg ProfileLoadedMsg) (tea.Model, tea.Cmd) {
	if msg.Err != nil {
		a.env.logger.Warn("profile load failed", zap.String("user_id", msg.UserID), zap.Error(msg.Err))
		a.Notify(noticeFor("profile.load_failed", true))
	}
	for _, s := range a.Screens.Stack {
		if p, ok := s.(*ProfileView); ok {
			p.setProfile(msg)
		}
	}
	return a, nil
}

// handleShowForm pushes a form modal for msg.Host.
func (a *appModelAdapter) handleShowForm(msg ShowFormMsg) (tea.Model, tea.Cmd) {
	modal := NewFormModal(msg.Title, a.env.t("help.form"), msg.Host, a.env.t)
	a.Overlays.Push(modal)
	return a, modal.Init()
}

// handleShowConfirm pushes a confirmation modal that runs msg.OnConfirm.
func (a *appModelAdapter) handleShowConfirm(msg ShowConfirmMsg) (tea.Model, tea.Cmd) {
	run := msg.OnConfirm
	modal := NewConfirmModal(msg.Title, msg.Label, a.env.t("help.confirm"), func() tea.Msg {
		return ConfirmedMsg{Run: run}
	})
	a.Overlays.Push(modal)
	return a, modal.Init()
}
