package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"esportivai/internal/api"
	"esportivai/internal/crud"
	"esportivai/internal/model"
	"esportivai/internal/resource"
)

// DashboardView shows the user's upcoming, subscribed and past events.
// Tab moves between the lists; n creates an event, after which only the
// upcoming list is reloaded.
type DashboardView struct {
	// Lists holds one controller per dashboard list, keyed by endpoint.
	Lists map[api.DashboardList]*crud.Controller[model.Event]

	env     *screenEnv
	rows    map[api.DashboardList]*recordList[model.Event]
	focus   FocusManager
	spinner spinner.Model
	loading bool
}

// Ensure DashboardView implements Screen.
var _ Screen = (*DashboardView)(nil)

var dashboardTitles = map[api.DashboardList]string{
	api.UpcomingEvents:   "dashboard.upcoming",
	api.SubscribedEvents: "dashboard.subscribed",
	api.PastEvents:       "dashboard.past",
}

// NewDashboardView creates the dashboard for env's user.
func NewDashboardView(env *screenEnv) *DashboardView {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = Styles.Title

	d := &DashboardView{
		Lists:   make(map[api.DashboardList]*crud.Controller[model.Event], len(api.DashboardLists)),
		env:     env,
		rows:    make(map[api.DashboardList]*recordList[model.Event], len(api.DashboardLists)),
		spinner: s,
	}
	order := make([]string, len(api.DashboardLists))
	for i, list := range api.DashboardLists {
		ctrl := resource.DashboardList(env.res, list)
		rl := newRecordList(env.t(dashboardTitles[list]), ctrl, eventRow(env))
		d.Lists[list] = ctrl
		d.rows[list] = &rl
		order[i] = string(list)
	}
	d.focus = NewFocusManager(order...)
	return d
}

// Mode implements Screen.
func (d *DashboardView) Mode() AppMode { return ModeDashboard }

// Focused returns the list that receives cursor keys.
func (d *DashboardView) Focused() api.DashboardList {
	return api.DashboardList(d.focus.Current)
}

// Init implements View.
func (d *DashboardView) Init() tea.Cmd {
	return d.Refresh()
}

// Refresh implements Screen by loading all three lists.
func (d *DashboardView) Refresh() tea.Cmd {
	d.loading = true
	cmds := []tea.Cmd{d.spinner.Tick}
	for _, list := range api.DashboardLists {
		ctrl := d.Lists[list]
		cmds = append(cmds, runEffect(d.env.ctx, ctrl, ctrl.Load()))
	}
	return tea.Batch(cmds...)
}

// Sync implements Screen.
func (d *DashboardView) Sync() {
	d.loading = false
	for _, rl := range d.rows {
		rl.sync()
	}
}

// Update implements View.
func (d *DashboardView) Update(msg tea.Msg) (View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		h := (msg.Height - 8) / len(api.DashboardLists)
		if h < 3 {
			h = 3
		}
		for _, rl := range d.rows {
			rl.setSize(msg.Width, h)
		}
		return d, nil
	case spinner.TickMsg:
		if !d.loading {
			return d, nil
		}
		var cmd tea.Cmd
		d.spinner, cmd = d.spinner.Update(msg)
		return d, cmd
	case tea.KeyMsg:
		switch msg.String() {
		case "tab":
			d.focus.Next()
			return d, nil
		case "shift+tab":
			d.focus.Prev()
			return d, nil
		case "n":
			ctrl := d.Lists[api.UpcomingEvents]
			return d, openForm[model.Event](d.env.ctx, ctrl, nil, d.env.t("dashboard.form_title"))
		case "r":
			return d, d.Refresh()
		}
	}
	if rl, ok := d.rows[d.Focused()]; ok {
		return d, rl.update(msg)
	}
	return d, nil
}

// View implements View.
func (d *DashboardView) View() string {
	var b strings.Builder
	title := d.env.t("dashboard.title")
	if d.loading {
		title += " " + d.spinner.View()
	}
	b.WriteString(Styles.Title.Render(title) + "\n")
	b.WriteString(Styles.Hint.Render(d.env.t("app.commands")) + "\n\n")
	for _, list := range api.DashboardLists {
		marker := "  "
		if list == d.Focused() {
			marker = Styles.Section.Render("▌ ")
		}
		section := d.rows[list].view(d.env.t("app.empty"))
		for _, line := range strings.Split(section, "\n") {
			b.WriteString(marker + line + "\n")
		}
	}
	b.WriteString(Styles.Hint.Render(d.env.t("help.dashboard")))
	return b.String()
}
