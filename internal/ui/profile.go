package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"esportivai/internal/crud"
	"esportivai/internal/model"
	"esportivai/internal/resource"
	"esportivai/internal/ui/textutil"
)

// ProfileView shows the read-only profile and manages the user's sports.
type ProfileView struct {
	Sports  *crud.Controller[model.Sport]
	Profile model.Profile
	loaded  bool

	env     *screenEnv
	rows    recordList[model.Sport]
	spinner spinner.Model
	loading bool
}

// Ensure ProfileView implements Screen.
var _ Screen = (*ProfileView)(nil)

// NewProfileView creates the profile screen for env's user.
func NewProfileView(env *screenEnv) *ProfileView {
	ctrl := resource.Sports(env.res)
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = Styles.Title
	return &ProfileView{
		Sports: ctrl,
		env:    env,
		rows: newRecordList(env.t("sport.title"), ctrl, func(sp model.Sport) (string, string) {
			return sp.Name, sp.SkillLevel
		}),
		spinner: s,
	}
}

// Mode implements Screen.
func (v *ProfileView) Mode() AppMode { return ModeProfile }

// Init implements View.
func (v *ProfileView) Init() tea.Cmd {
	return v.Refresh()
}

// Refresh implements Screen by loading the profile and the sports.
func (v *ProfileView) Refresh() tea.Cmd {
	v.loading = true
	return tea.Batch(
		v.spinner.Tick,
		loadProfileCmd(v.env.ctx, v.env.res.Client, v.env.res.UserID),
		runEffect(v.env.ctx, v.Sports, v.Sports.Load()),
	)
}

// Sync implements Screen.
func (v *ProfileView) Sync() {
	v.loading = false
	v.rows.sync()
}

// setProfile stores a loaded profile; failures keep the previous one.
func (v *ProfileView) setProfile(msg ProfileLoadedMsg) {
	if msg.Err != nil || msg.UserID != v.env.res.UserID {
		return
	}
	v.Profile = msg.Profile
	v.loaded = true
}

// Update implements View.
func (v *ProfileView) Update(msg tea.Msg) (View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.rows.setSize(msg.Width, msg.Height-12)
		return v, nil
	case spinner.TickMsg:
		if !v.loading {
			return v, nil
		}
		var cmd tea.Cmd
		v.spinner, cmd = v.spinner.Update(msg)
		return v, cmd
	case tea.KeyMsg:
		switch msg.String() {
		case "n":
			return v, openForm[model.Sport](v.env.ctx, v.Sports, nil, v.env.t("sport.create"))
		case "e", "enter":
			if sp, ok := v.rows.selected(); ok {
				return v, openForm(v.env.ctx, v.Sports, &sp, v.env.t("sport.edit"))
			}
			return v, nil
		case "d", "delete":
			if sp, ok := v.rows.selected(); ok {
				return v, confirmRemove(v.env.ctx, v.Sports, sp.ID.String(), v.env.t("sport.confirm_delete"), sp.Name)
			}
			return v, nil
		case "p":
			// Placeholder: only shows a notice.
			return v, noticeCmd("profile.edit", false)
		case "r":
			return v, v.Refresh()
		}
	}
	return v, v.rows.update(msg)
}

// View implements View.
func (v *ProfileView) View() string {
	var b strings.Builder
	title := v.env.t("profile.title")
	if v.loading {
		title += " " + v.spinner.View()
	}
	b.WriteString(Styles.Title.Render(title) + "\n\n")

	fields := []struct{ label, value string }{
		{v.env.t("profile.name"), v.Profile.Name},
		{v.env.t("profile.email"), v.Profile.Email},
		{v.env.t("profile.location"), v.Profile.Location},
	}
	width := 0
	for _, f := range fields {
		if w := textutil.VisualWidth(f.label); w > width {
			width = w
		}
	}
	for _, f := range fields {
		value := f.value
		if !v.loaded {
			value = "…"
		}
		b.WriteString(Styles.Muted.Render(textutil.PadRight(f.label+":", width+1)) + " " + Styles.Normal.Render(value) + "\n")
	}
	b.WriteString("\n" + v.rows.view(v.env.t("app.empty")) + "\n")
	b.WriteString(Styles.Hint.Render(v.env.t("help.profile")))
	return b.String()
}
