// Package ui is the EsportiVai terminal front-end built on Bubble Tea.
//
// Core abstractions:
//   - View: a screen or modal with its own model, update and view (Elm-style)
//   - Screen: a navigable View bound to one or more crud controllers
//   - ViewStack: stack navigation between screens (push/pop)
//   - OverlayStack: modal forms and confirmations on top of the screen
//   - FocusManager: tab order across form fields and dashboard lists
//   - KeyHandler: SPC leader key bindings with mode-filtered hints
//
// Network work never runs inside Update: crud effects are wrapped in
// tea.Cmds and their results come back as messages applied on the UI
// goroutine.
package ui
