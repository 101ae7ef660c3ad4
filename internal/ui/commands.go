package ui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"esportivai/internal/api"
	"esportivai/internal/crud"
	"esportivai/internal/model"
)

// effectMsg is a finished crud effect. apply folds it into its controller
// on the UI goroutine and returns the follow-up reload, if any.
type effectMsg interface {
	apply() tea.Cmd
}

type resultMsg[T any] struct {
	ctx    context.Context
	ctrl   *crud.Controller[T]
	result crud.Result[T]
}

func (m resultMsg[T]) apply() tea.Cmd {
	if m.ctrl.Apply(m.result) {
		return runEffect(m.ctx, m.ctrl, m.ctrl.Load())
	}
	return nil
}

// runEffect runs eff off the event loop and reports back as a resultMsg.
func runEffect[T any](ctx context.Context, ctrl *crud.Controller[T], eff crud.Effect[T]) tea.Cmd {
	if eff == nil {
		return nil
	}
	return func() tea.Msg {
		return resultMsg[T]{ctx: ctx, ctrl: ctrl, result: eff(ctx)}
	}
}

// loginCmd posts the credentials and reports a LoginResultMsg.
func loginCmd(ctx context.Context, c *api.Client, creds model.Credentials) tea.Cmd {
	return func() tea.Msg {
		session, err := c.Login(ctx, creds)
		return LoginResultMsg{Session: session, Err: err}
	}
}

// loadProfileCmd fetches the read-only profile of userID.
func loadProfileCmd(ctx context.Context, c *api.Client, userID string) tea.Cmd {
	return func() tea.Msg {
		p, err := c.GetProfile(ctx, userID)
		return ProfileLoadedMsg{UserID: userID, Profile: p, Err: err}
	}
}

func noticeCmd(id string, isErr bool) tea.Cmd {
	return func() tea.Msg { return NoticeMsg{ID: id, Error: isErr} }
}

// formHost connects a FormModal to the controller that owns the form.
type formHost interface {
	Form() *crud.Form
	Visible() bool
	// Submit validates and returns the save command, or nil when blocked.
	Submit() tea.Cmd
	Cancel()
}

type controllerHost[T any] struct {
	ctx  context.Context
	ctrl *crud.Controller[T]
}

func (h controllerHost[T]) Form() *crud.Form { return &h.ctrl.Form }
func (h controllerHost[T]) Visible() bool    { return h.ctrl.Visible }
func (h controllerHost[T]) Cancel()          { h.ctrl.CloseForm() }

func (h controllerHost[T]) Submit() tea.Cmd {
	eff, err := h.ctrl.Save()
	if err != nil {
		return nil
	}
	return runEffect(h.ctx, h.ctrl, eff)
}

// openForm opens ctrl's form (filled from item when non-nil) and asks the
// app to show it.
func openForm[T any](ctx context.Context, ctrl *crud.Controller[T], item *T, title string) tea.Cmd {
	ctrl.OpenForm(item)
	host := controllerHost[T]{ctx: ctx, ctrl: ctrl}
	return func() tea.Msg { return ShowFormMsg{Title: title, Host: host} }
}

// confirmRemove asks the app to confirm deleting id through ctrl.
func confirmRemove[T any](ctx context.Context, ctrl *crud.Controller[T], id, title, label string) tea.Cmd {
	run := runEffect(ctx, ctrl, ctrl.Remove(id))
	return func() tea.Msg {
		return ShowConfirmMsg{Title: title, Label: label, OnConfirm: run}
	}
}

func noticeFor(id string, isErr bool) crud.Notice {
	return crud.Notice{ID: id, Error: isErr}
}
