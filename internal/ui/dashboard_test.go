package ui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"

	"esportivai/internal/api"
	"esportivai/internal/crud"
	"esportivai/internal/i18n"
	"esportivai/internal/model"
	"esportivai/internal/resource"
)

// offlineEnv builds a screen env whose client is never called.
func offlineEnv() *screenEnv {
	return &screenEnv{
		tr:  i18n.NewTranslator("pt-BR"),
		res: resource.Env{Client: api.New("http://127.0.0.1:1"), UserID: "1"},
	}
}

func TestDashboardView_TabCyclesLists(t *testing.T) {
	d := NewDashboardView(offlineEnv())

	if d.Focused() != api.UpcomingEvents {
		t.Fatalf("initial focus = %s", d.Focused())
	}
	d.Update(keyMsg("tab"))
	if d.Focused() != api.SubscribedEvents {
		t.Errorf("after tab: %s", d.Focused())
	}
	d.Update(keyMsg("tab"))
	d.Update(keyMsg("tab"))
	if d.Focused() != api.UpcomingEvents {
		t.Errorf("tab should wrap, got %s", d.Focused())
	}
	d.Update(keyMsg("shift+tab"))
	if d.Focused() != api.PastEvents {
		t.Errorf("shift+tab should wrap back, got %s", d.Focused())
	}
}

func TestDashboardView_CreateOpensUpcomingForm(t *testing.T) {
	d := NewDashboardView(offlineEnv())
	d.Update(keyMsg("tab"))

	_, cmd := d.Update(keyMsg("n"))
	if cmd == nil {
		t.Fatal("n should return a command")
	}
	msg, ok := cmd().(ShowFormMsg)
	if !ok {
		t.Fatalf("expected ShowFormMsg, got %T", cmd())
	}
	if msg.Title != "Criar Novo Evento" {
		t.Errorf("title = %q", msg.Title)
	}
	if !d.Lists[api.UpcomingEvents].Visible {
		t.Error("the upcoming controller should own the form")
	}
	for _, list := range []api.DashboardList{api.SubscribedEvents, api.PastEvents} {
		if d.Lists[list].Visible {
			t.Errorf("%s should not open a form", list)
		}
	}
}

func TestDashboardView_RendersListsAndEmpty(t *testing.T) {
	d := NewDashboardView(offlineEnv())
	d.Lists[api.UpcomingEvents].Items = []model.Event{
		{ID: "1", Name: "Futebol 5x5", Sport: "Futebol", Date: "2099-01-10", Time: "18:00", MaxParticipants: "10"},
	}
	d.Sync()

	out := ansi.Strip(d.View())
	for _, want := range []string{"Próximos Eventos", "Eventos Inscritos", "Eventos Passados", "Futebol 5x5", "máx. 10", "Nenhum item."} {
		if !strings.Contains(out, want) {
			t.Errorf("view missing %q", want)
		}
	}
}

func TestEventRow_SkipsEmptyParts(t *testing.T) {
	render := eventRow(offlineEnv())
	title, desc := render(model.Event{Name: "Treino", Sport: "Corrida", Date: "2099-03-01"})
	if title != "Treino" {
		t.Errorf("title = %q", title)
	}
	if desc != "Corrida · 2099-03-01" {
		t.Errorf("desc = %q", desc)
	}
}

func TestRecordList_SyncKeepsCursorInRange(t *testing.T) {
	ctrl := resource.Events(offlineEnv().res)
	ctrl.Items = []model.Event{{ID: "1", Name: "a"}, {ID: "2", Name: "b"}, {ID: "3", Name: "c"}}
	rl := newRecordList("x", ctrl, func(e model.Event) (string, string) { return e.Name, "" })
	rl.list.Select(2)

	ctrl.Items = ctrl.Items[:1]
	rl.sync()

	got, ok := rl.selected()
	if !ok || got.ID != "1" {
		t.Errorf("selected = %+v, %v", got, ok)
	}

	ctrl.Items = []model.Event{}
	rl.sync()
	if _, ok := rl.selected(); ok {
		t.Error("empty list should have no selection")
	}
}

// stubHost is a formHost over a bare controller without network ops.
type stubHost struct {
	form      crud.Form
	visible   bool
	submitted int
	cancelled bool
}

func (h *stubHost) Form() *crud.Form { return &h.form }
func (h *stubHost) Visible() bool    { return h.visible }

func (h *stubHost) Cancel() {
	h.cancelled = true
	h.visible = false
}

func (h *stubHost) Submit() tea.Cmd {
	h.submitted++
	return nil
}

func newStubHost() *stubHost {
	f := crud.NewForm([]crud.Field{{Key: "nome", Label: "sport.name"}, {Key: "nivel_habilidade", Label: "sport.skill_level"}})
	f.Set("nome", "Judô")
	return &stubHost{form: f, visible: true}
}

func TestFormModal_WritesThroughAndMovesFocus(t *testing.T) {
	host := newStubHost()
	m := NewFormModal("t", "", host, offlineEnv().t)

	if m.Value("nome") != "Judô" {
		t.Errorf("prefill = %q", m.Value("nome"))
	}
	if m.Focused() != "nome" {
		t.Fatalf("focus = %q", m.Focused())
	}

	m.Update(keyMsg("tab"))
	if m.Focused() != "nivel_habilidade" {
		t.Fatalf("focus after tab = %q", m.Focused())
	}
	typeText(m, "Faixa azul")
	if got := host.form.Get("nivel_habilidade"); got != "Faixa azul" {
		t.Errorf("form value = %q", got)
	}

	m.Update(keyMsg("tab"))
	if m.Focused() != "nome" {
		t.Errorf("tab should wrap, focus = %q", m.Focused())
	}

	m.Update(keyMsg("enter"))
	if host.submitted != 1 {
		t.Errorf("submitted = %d", host.submitted)
	}
}

func TestFormModal_EscCancels(t *testing.T) {
	host := newStubHost()
	m := NewFormModal("t", "", host, offlineEnv().t)

	_, cmd := m.Update(keyMsg("esc"))
	if !host.cancelled || m.Visible() {
		t.Error("esc should cancel the form")
	}
	if _, ok := cmd().(DismissModalMsg); !ok {
		t.Errorf("expected DismissModalMsg, got %T", cmd())
	}
}

func TestConfirmModal_Keys(t *testing.T) {
	confirmed := false
	m := NewConfirmModal("Excluir?", "x", "", func() tea.Msg {
		confirmed = true
		return nil
	})

	_, cmd := m.Update(keyMsg("n"))
	if _, ok := cmd().(DismissModalMsg); !ok {
		t.Error("n should dismiss")
	}

	_, cmd = m.Update(keyMsg("enter"))
	cmd()
	if !confirmed {
		t.Error("enter should confirm")
	}
}

func TestFocusManager(t *testing.T) {
	var changes []string
	f := NewFocusManager("a", "b", "c")
	f.OnChange = func(from, to string) { changes = append(changes, from+">"+to) }

	f.Prev()
	if f.Current != "c" || f.Index() != 2 {
		t.Errorf("prev from first should wrap to last, got %q", f.Current)
	}
	if !f.SetFocus("b") || f.SetFocus("zzz") {
		t.Error("SetFocus should accept known ids only")
	}
	if strings.Join(changes, ",") != "a>c,c>b" {
		t.Errorf("changes = %v", changes)
	}
}

func TestViewStack_PopTo(t *testing.T) {
	env := offlineEnv()
	var s ViewStack
	s.Reset(NewDashboardView(env))
	s.Push(NewEventsView(env))
	s.Push(NewProfileView(env))

	if s.PopTo(ModeLogin) {
		t.Error("PopTo should fail for a mode not in the stack")
	}
	if s.Len() != 3 {
		t.Errorf("failed PopTo changed the stack: %d", s.Len())
	}
	if !s.PopTo(ModeEvents) || s.Peek().Mode() != ModeEvents || s.Len() != 2 {
		t.Errorf("PopTo(events): top=%s len=%d", s.Peek().Mode(), s.Len())
	}
}
