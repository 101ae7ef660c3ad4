package ui

import (
	tea "github.com/charmbracelet/bubbletea"

	"esportivai/internal/model"
)

// NavigateMsg shows the screen for Mode, popping back to it when it is
// already in the history.
type NavigateMsg struct {
	Mode AppMode
}

// BackMsg pops the current screen (esc).
type BackMsg struct{}

// RefreshMsg reloads the lists of the current screen (SPC r).
type RefreshMsg struct{}

// LoginResultMsg carries the outcome of POST /login.
type LoginResultMsg struct {
	Session model.Session
	Err     error
}

// ProfileLoadedMsg carries the outcome of GET /users/{id}.
type ProfileLoadedMsg struct {
	UserID  string
	Profile model.Profile
	Err     error
}

// ShowFormMsg opens a form modal over the current screen.
type ShowFormMsg struct {
	Title string
	Host  formHost
}

// ShowConfirmMsg asks for confirmation before running OnConfirm.
type ShowConfirmMsg struct {
	Title     string
	Label     string
	OnConfirm tea.Cmd
}

// ConfirmedMsg is sent when the user confirms; Run executes after the modal closes.
type ConfirmedMsg struct {
	Run tea.Cmd
}

// NoticeMsg shows a localized message in the status line.
type NoticeMsg struct {
	ID    string
	Error bool
}

// DismissModalMsg is sent when user cancels a modal (Esc).
type DismissModalMsg struct{}
