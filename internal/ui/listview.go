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

// listLabels are the message ids a ListView shows.
type listLabels struct {
	Title         string
	Create        string
	Edit          string
	ConfirmDelete string
}

// ListView is a full-screen list over one controller with create, edit
// and delete (My Events, Participations).
type ListView[T any] struct {
	Ctrl *crud.Controller[T]

	mode    AppMode
	env     *screenEnv
	labels  listLabels
	rows    recordList[T]
	name    func(T) string
	spinner spinner.Model
	loading bool
}

// NewEventsView lists /events.
func NewEventsView(env *screenEnv) *ListView[model.Event] {
	ctrl := resource.Events(env.res)
	return newListView(env, ModeEvents, ctrl, listLabels{
		Title:         "event.title",
		Create:        "event.create",
		Edit:          "event.edit",
		ConfirmDelete: "event.confirm_delete",
	}, eventRow(env), func(e model.Event) string { return e.Name })
}

// NewParticipationsView lists /participations.
func NewParticipationsView(env *screenEnv) *ListView[model.Participation] {
	ctrl := resource.Participations(env.res)
	return newListView(env, ModeParticipations, ctrl, listLabels{
		Title:         "participation.title",
		Create:        "participation.create",
		Edit:          "participation.edit",
		ConfirmDelete: "participation.confirm_delete",
	}, participationRow, func(p model.Participation) string { return p.EventName })
}

func eventRow(env *screenEnv) func(model.Event) (string, string) {
	return func(e model.Event) (string, string) {
		var limit string
		if n := e.MaxParticipants.String(); n != "" {
			limit = env.tr.T("event.max_short", map[string]any{"N": n})
		}
		when := textutil.Join(" ", e.Date, e.Time)
		return e.Name, textutil.Join(" · ", e.Sport, when, e.Location, e.SkillLevel, limit)
	}
}

func participationRow(p model.Participation) (string, string) {
	return p.EventName, textutil.Join(" · ", p.EventDate, p.EventLocation, p.Status)
}

func newListView[T any](env *screenEnv, mode AppMode, ctrl *crud.Controller[T], labels listLabels,
	render func(T) (string, string), name func(T) string) *ListView[T] {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = Styles.Title
	return &ListView[T]{
		Ctrl:    ctrl,
		mode:    mode,
		env:     env,
		labels:  labels,
		rows:    newRecordList(env.t(labels.Title), ctrl, render),
		name:    name,
		spinner: s,
	}
}

// Mode implements Screen.
func (v *ListView[T]) Mode() AppMode { return v.mode }

// Init implements View.
func (v *ListView[T]) Init() tea.Cmd {
	return v.Refresh()
}

// Refresh implements Screen.
func (v *ListView[T]) Refresh() tea.Cmd {
	v.loading = true
	return tea.Batch(v.spinner.Tick, runEffect(v.env.ctx, v.Ctrl, v.Ctrl.Load()))
}

// Sync implements Screen.
func (v *ListView[T]) Sync() {
	v.loading = false
	v.rows.sync()
}

// Update implements View.
func (v *ListView[T]) Update(msg tea.Msg) (View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.rows.setSize(msg.Width, msg.Height-6)
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
			return v, openForm[T](v.env.ctx, v.Ctrl, nil, v.env.t(v.labels.Create))
		case "e", "enter":
			if item, ok := v.rows.selected(); ok {
				return v, openForm(v.env.ctx, v.Ctrl, &item, v.env.t(v.labels.Edit))
			}
			return v, nil
		case "d", "delete":
			if item, ok := v.rows.selected(); ok {
				id := v.Ctrl.Schema().ID(item)
				return v, confirmRemove(v.env.ctx, v.Ctrl, id, v.env.t(v.labels.ConfirmDelete), v.name(item))
			}
			return v, nil
		case "r":
			return v, v.Refresh()
		}
	}
	return v, v.rows.update(msg)
}

// View implements View.
func (v *ListView[T]) View() string {
	var b strings.Builder
	b.WriteString(v.rows.view(v.env.t("app.empty")))
	if v.loading {
		b.WriteString("\n" + v.spinner.View() + " " + Styles.Muted.Render(v.env.t("app.loading")))
	}
	b.WriteString("\n" + Styles.Hint.Render(v.env.t("help.list")))
	return b.String()
}
