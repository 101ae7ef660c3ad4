package ui

import (
	"context"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"esportivai/internal/api"
	"esportivai/internal/crud"
	"esportivai/internal/i18n"
	"esportivai/internal/resource"
)

// screenEnv is shared by every screen.
type screenEnv struct {
	ctx    context.Context
	tr     *i18n.Translator
	res    resource.Env
	logger *zap.Logger
}

func (e *screenEnv) t(id string) string {
	return e.tr.T(id, nil)
}

// Options configure NewAppModel.
type Options struct {
	Context    context.Context
	Client     *api.Client
	UserID     string
	Translator *i18n.Translator
	Logger     *zap.Logger
	// SkipLogin starts on the Dashboard as UserID.
	SkipLogin bool
}

// AppModel is the root model: a stack of screens, modal overlays on top and
// a status line for notices.
type AppModel struct {
	Screens       ViewStack
	Overlays      OverlayStack
	KeyHandler    *KeyHandler
	Status        string
	StatusIsError bool

	env    *screenEnv
	width  int
	height int
}

// Ensure AppModel can be used as tea.Model via adapter.
var _ tea.Model = (*appModelAdapter)(nil)

// AppModel receives controller notices.
var _ crud.Notifier = (*AppModel)(nil)

// appModelAdapter wraps AppModel to implement tea.Model.
type appModelAdapter struct {
	*AppModel
}

// NewAppModel creates the root application model.
func NewAppModel(opts Options) *AppModel {
	if opts.Context == nil {
		opts.Context = context.Background()
	}
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}
	if opts.Translator == nil {
		opts.Translator = i18n.NewTranslator(i18n.DefaultLocale)
	}
	a := &AppModel{}
	a.env = &screenEnv{
		ctx: opts.Context,
		tr:  opts.Translator,
		res: resource.Env{
			Client:   opts.Client,
			UserID:   opts.UserID,
			Notifier: a,
			Logger:   opts.Logger,
		},
		logger: opts.Logger.Named("ui"),
	}
	a.KeyHandler = NewKeyHandler(a.newRegistry())
	if opts.SkipLogin {
		a.Screens.Reset(NewDashboardView(a.env))
	} else {
		a.Screens.Reset(NewLoginView(a.env))
	}
	return a
}

func (a *AppModel) newRegistry() *KeybindRegistry {
	t := a.env.t
	navModes := []AppMode{ModeDashboard, ModeEvents, ModeParticipations, ModeProfile}
	nav := func(m AppMode) tea.Cmd {
		return func() tea.Msg { return NavigateMsg{Mode: m} }
	}

	reg := NewKeybindRegistry()
	reg.BindWithDesc("ctrl+c", tea.Quit, t("nav.quit"))
	reg.BindWithDescForMode("q", tea.Quit, t("nav.quit"), navModes)
	reg.BindWithDesc("SPC q", tea.Quit, t("nav.quit"))
	reg.BindWithDescForMode("SPC r", func() tea.Msg { return RefreshMsg{} }, t("nav.refresh"), navModes)
	reg.BindSubmenu("g", t("nav.go"))
	reg.BindWithDescForMode("SPC g d", nav(ModeDashboard), t("nav.dashboard"), navModes)
	reg.BindWithDescForMode("SPC g e", nav(ModeEvents), t("nav.events"), navModes)
	reg.BindWithDescForMode("SPC g i", nav(ModeParticipations), t("nav.participations"), navModes)
	reg.BindWithDescForMode("SPC g p", nav(ModeProfile), t("nav.profile"), navModes)
	return reg
}

// Mode returns the mode of the screen on top of the stack.
func (a *AppModel) Mode() AppMode {
	if top := a.Screens.Peek(); top != nil {
		return top.Mode()
	}
	return ModeLogin
}

// UserID returns the id whose data the screens show.
func (a *AppModel) UserID() string {
	return a.env.res.UserID
}

// Notify implements crud.Notifier by writing to the status line.
func (a *AppModel) Notify(n crud.Notice) {
	a.Status = a.env.tr.T(n.ID, n.Data)
	a.StatusIsError = n.Error
}

// Init implements tea.Model.
func (a *appModelAdapter) Init() tea.Cmd {
	if top := a.Screens.Peek(); top != nil {
		return top.Init()
	}
	return nil
}

// Update implements tea.Model.
func (a *appModelAdapter) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return a.handleWindowSize(msg)
	case tea.KeyMsg:
		return a.handleKey(msg)
	case effectMsg:
		return a.handleEffect(msg)
	case NavigateMsg:
		return a.handleNavigate(msg)
	case BackMsg:
		return a.handleBack()
	case RefreshMsg:
		if top := a.Screens.Peek(); top != nil {
			return a, top.Refresh()
		}
		return a, nil
	case LoginResultMsg:
		return a.handleLoginResult(msg)
	case ProfileLoadedMsg:
		return a.handleProfileLoaded(msg)
	case ShowFormMsg:
		return a.handleShowForm(msg)
	case ShowConfirmMsg:
		return a.handleShowConfirm(msg)
	case ConfirmedMsg:
		a.Overlays.Pop()
		return a, msg.Run
	case DismissModalMsg:
		a.Overlays.Pop()
		return a, nil
	case NoticeMsg:
		a.Notify(crud.Notice{ID: msg.ID, Error: msg.Error})
		return a, nil
	}

	// Everything else (spinner ticks, cursor blink) goes to the overlay and
	// the top screen.
	var cmds []tea.Cmd
	if cmd, ok := a.Overlays.UpdateTop(msg); ok {
		cmds = append(cmds, cmd)
	}
	if top := a.Screens.Peek(); top != nil {
		v, cmd := top.Update(msg)
		a.Screens.replaceTop(v)
		cmds = append(cmds, cmd)
	}
	return a, tea.Batch(cmds...)
}

// View implements tea.Model.
func (a *appModelAdapter) View() string {
	var b strings.Builder
	if top := a.Screens.Peek(); top != nil {
		b.WriteString(top.View())
	}
	if a.Overlays.Len() > 0 {
		modal := a.Overlays.Render(a.width, a.height)
		if a.width > 0 && a.height > 0 {
			return modal + "\n" + a.statusLine()
		}
		b.WriteString("\n" + modal)
	}
	b.WriteString("\n" + a.statusLine())
	if a.KeyHandler != nil && a.KeyHandler.LeaderWaiting {
		b.WriteString("\n" + RenderKeybindHelp(a.KeyHandler, a.Mode(), a.env.t("form.cancel")))
	}
	b.WriteString("\n" + Styles.Footer.Render(a.env.t("app.footer")))
	return b.String()
}

func (a *AppModel) statusLine() string {
	if a.Status == "" {
		return ""
	}
	if a.StatusIsError {
		return Styles.StatusError.Render(a.env.t("app.error") + ": " + a.Status)
	}
	return Styles.StatusOK.Render(a.Status)
}

// AsTeaModel returns a tea.Model adapter for use with tea.NewProgram.
func (a *AppModel) AsTeaModel() tea.Model {
	return &appModelAdapter{AppModel: a}
}
