package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"esportivai/internal/model"
)

const (
	loginEmail    = "email"
	loginPassword = "password"
)

// LoginView asks for email and password and posts them to /login.
type LoginView struct {
	env      *screenEnv
	email    textinput.Model
	password textinput.Model
	focus    FocusManager
}

// Ensure LoginView implements Screen.
var _ Screen = (*LoginView)(nil)

// NewLoginView creates the login screen with the email field focused.
func NewLoginView(env *screenEnv) *LoginView {
	email := newInput()
	email.Placeholder = env.t("login.email")
	email.Width = 40
	email.Focus()

	password := newInput()
	password.Placeholder = env.t("login.password")
	password.Width = 40
	password.EchoMode = textinput.EchoPassword
	password.EchoCharacter = '•'

	v := &LoginView{env: env, email: email, password: password}
	v.focus = NewFocusManager(loginEmail, loginPassword)
	v.focus.OnChange = func(_, to string) {
		if to == loginEmail {
			v.password.Blur()
			v.email.Focus()
		} else {
			v.email.Blur()
			v.password.Focus()
		}
	}
	return v
}

// Mode implements Screen.
func (v *LoginView) Mode() AppMode { return ModeLogin }

// CapturesText keeps q and SPC as plain text.
func (v *LoginView) CapturesText() bool { return true }

// Refresh implements Screen; login has nothing to load.
func (v *LoginView) Refresh() tea.Cmd { return nil }

// Sync implements Screen.
func (v *LoginView) Sync() {}

// Init implements View.
func (v *LoginView) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements View.
func (v *LoginView) Update(msg tea.Msg) (View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "tab", "down":
			v.focus.Next()
			return v, nil
		case "shift+tab", "up":
			v.focus.Prev()
			return v, nil
		case "ctrl+f":
			return v, noticeCmd("login.forgot_unavailable", false)
		case "enter":
			return v, v.submit()
		}
	}

	var cmd tea.Cmd
	if v.focus.Current == loginEmail {
		v.email, cmd = v.email.Update(msg)
	} else {
		v.password, cmd = v.password.Update(msg)
	}
	return v, cmd
}

// submit checks both fields and starts the login request.
func (v *LoginView) submit() tea.Cmd {
	creds := model.Credentials{
		Email:    strings.TrimSpace(v.email.Value()),
		Password: v.password.Value(),
	}
	if creds.Email == "" || strings.TrimSpace(creds.Password) == "" {
		return noticeCmd("login.missing_fields", true)
	}
	return loginCmd(v.env.ctx, v.env.res.Client, creds)
}

// View implements View.
func (v *LoginView) View() string {
	var b strings.Builder
	b.WriteString(Styles.Title.Render(v.env.t("app.name")) + "\n")
	b.WriteString(Styles.Section.Render(v.env.t("login.title")) + "\n\n")
	b.WriteString(v.email.View() + "\n")
	b.WriteString(v.password.View() + "\n\n")
	b.WriteString(Styles.Selected.Render("[ "+v.env.t("login.submit")+" ]") + "\n")
	b.WriteString(Styles.Muted.Render(v.env.t("login.forgot")) + "\n\n")
	b.WriteString(Styles.Hint.Render(v.env.t("help.login")))
	return b.String()
}
