package resource

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"esportivai/internal/api"
	"esportivai/internal/crud"
	"esportivai/internal/mockapi"
	"esportivai/internal/model"
)

type recorder struct {
	notices []crud.Notice
}

func (r *recorder) Notify(n crud.Notice) { r.notices = append(r.notices, n) }

func (r *recorder) last() crud.Notice {
	if len(r.notices) == 0 {
		return crud.Notice{}
	}
	return r.notices[len(r.notices)-1]
}

func setup(t *testing.T) (*mockapi.Server, Env, *recorder) {
	t.Helper()
	s := mockapi.New(mockapi.WithClock(func() time.Time {
		return time.Date(2030, 1, 1, 0, 0, 0, 0, time.UTC)
	}))
	userID := mockapi.Seed(s)
	srv := httptest.NewServer(s.Handler())
	t.Cleanup(srv.Close)
	rec := &recorder{}
	return s, Env{Client: api.New(srv.URL), UserID: userID, Notifier: rec}, rec
}

func TestEvents_FiveASideExample(t *testing.T) {
	s, env, rec := setup(t)
	ctx := context.Background()
	events := Events(env)

	events.OpenForm(nil)
	for k, v := range map[string]string{
		"nome":              "5-a-side",
		"esporte":           "Football",
		"data":              "2024-06-01",
		"horario":           "18:00",
		"local":             "Park",
		"max_participantes": "10",
		"nivel_habilidade":  "Beginner",
	} {
		events.Form.Set(k, v)
	}
	before := s.CountCalls(http.MethodGet, "/events")

	eff, err := events.Save()
	require.NoError(t, err)
	events.Do(ctx, eff)

	var post *mockapi.Call
	for _, c := range s.Calls() {
		if c.Method == http.MethodPost && c.Path == "/events" {
			c := c
			post = &c
		}
	}
	require.NotNil(t, post, "POST /events issued")
	var body map[string]any
	require.NoError(t, json.Unmarshal(post.Body, &body))
	assert.Equal(t, map[string]any{
		"nome":              "5-a-side",
		"esporte":           "Football",
		"data":              "2024-06-01",
		"horario":           "18:00",
		"local":             "Park",
		"max_participantes": "10",
		"nivel_habilidade":  "Beginner",
	}, body)

	assert.Equal(t, before+1, s.CountCalls(http.MethodGet, "/events"))
	assert.False(t, events.Visible)
	for _, f := range EventFields {
		assert.Empty(t, events.Form.Get(f.Key))
	}
	assert.Equal(t, "event.created", rec.last().ID)
	assert.Len(t, events.Items, 4)
}

func TestEvents_MissingFieldNoRequest(t *testing.T) {
	s, env, rec := setup(t)
	events := Events(env)
	events.OpenForm(nil)
	events.Form.Set("nome", "Only a name")

	eff, err := events.Save()
	require.Error(t, err)
	assert.Nil(t, eff)
	assert.Empty(t, s.Calls())
	assert.Equal(t, "form.missing_fields", rec.last().ID)
}

func TestEvents_DeleteRemovesID(t *testing.T) {
	_, env, rec := setup(t)
	ctx := context.Background()
	events := Events(env)
	events.Do(ctx, events.Load())
	require.NotEmpty(t, events.Items)
	id := events.Items[0].ID.String()

	events.Do(ctx, events.Remove(id))

	assert.Equal(t, "event.deleted", rec.last().ID)
	for _, e := range events.Items {
		assert.NotEqual(t, id, e.ID.String())
	}
}

func TestEvents_UpdateFailureKeepsForm(t *testing.T) {
	s, env, rec := setup(t)
	ctx := context.Background()
	events := Events(env)
	events.Do(ctx, events.Load())

	events.OpenForm(&events.Items[0])
	events.Form.Set("local", "Elsewhere")
	s.FailNext(http.MethodPut, "/events/{id}", http.StatusInternalServerError)
	eff, err := events.Save()
	require.NoError(t, err)
	events.Do(ctx, eff)

	assert.True(t, events.Visible)
	assert.Equal(t, "Elsewhere", events.Form.Get("local"))
	assert.Equal(t, crud.Notice{ID: "event.save_failed", Error: true}, rec.last())
}

func TestDashboard_CreateReloadsUpcomingOnly(t *testing.T) {
	s, env, rec := setup(t)
	ctx := context.Background()
	upcoming := DashboardList(env, api.UpcomingEvents)
	path := "/users/" + env.UserID + "/upcoming-events"

	upcoming.OpenForm(nil)
	for _, f := range EventFields {
		upcoming.Form.Set(f.Key, "x")
	}
	upcoming.Form.Set("data", "2099-12-31")
	eff, err := upcoming.Save()
	require.NoError(t, err)
	upcoming.Do(ctx, eff)

	assert.Equal(t, "dashboard.created", rec.last().ID)
	assert.Equal(t, 1, s.CountCalls(http.MethodGet, path))
	assert.Zero(t, s.CountCalls(http.MethodGet, "/users/"+env.UserID+"/past-events"))
	assert.Len(t, upcoming.Items, 3)
}

func TestDashboard_LoadFailureNamesEndpoint(t *testing.T) {
	s, env, rec := setup(t)
	past := DashboardList(env, api.PastEvents)
	s.FailNext(http.MethodGet, "/users/{id}/past-events", http.StatusServiceUnavailable)

	past.Do(context.Background(), past.Load())

	assert.Empty(t, past.Items)
	assert.Equal(t, "dashboard.load_failed", rec.last().ID)
	assert.Equal(t, "past-events", rec.last().Data["Endpoint"])
}

func TestSports_CreateSendsUserID(t *testing.T) {
	s, env, _ := setup(t)
	ctx := context.Background()
	sports := Sports(env)
	sports.Do(ctx, sports.Load())
	require.Len(t, sports.Items, 2)

	sports.OpenForm(nil)
	sports.Form.Set("nome", "Tênis")
	sports.Form.Set("nivel_habilidade", "Iniciante")
	eff, err := sports.Save()
	require.NoError(t, err)
	sports.Do(ctx, eff)

	require.Len(t, sports.Items, 3)
	var post mockapi.Call
	for _, c := range s.Calls() {
		if c.Method == http.MethodPost && c.Path == "/sports" {
			post = c
		}
	}
	assert.Contains(t, string(post.Body), `"userId":"`+env.UserID+`"`)
}

func TestSports_UpdateOmitsUserID(t *testing.T) {
	s, env, rec := setup(t)
	ctx := context.Background()
	sports := Sports(env)
	sports.Do(ctx, sports.Load())
	require.NotEmpty(t, sports.Items)
	id := sports.Items[0].ID.String()

	sports.OpenForm(&sports.Items[0])
	sports.Form.Set("nome", "Padel")
	sports.Form.Set("nivel_habilidade", "Alto")
	eff, err := sports.Save()
	require.NoError(t, err)
	sports.Do(ctx, eff)

	assert.Equal(t, "sport.updated", rec.last().ID)
	var put *mockapi.Call
	for _, c := range s.Calls() {
		if c.Method == http.MethodPut && c.Path == "/sports/"+id {
			c := c
			put = &c
		}
	}
	require.NotNil(t, put, "PUT /sports/%s issued", id)
	var body map[string]any
	require.NoError(t, json.Unmarshal(put.Body, &body))
	assert.Equal(t, map[string]any{"nome": "Padel", "nivel_habilidade": "Alto"}, body)
}

func TestSports_MissingFieldsMessage(t *testing.T) {
	_, env, rec := setup(t)
	sports := Sports(env)
	sports.OpenForm(nil)

	_, err := sports.Save()
	require.Error(t, err)
	assert.Equal(t, "sport.missing_fields", rec.last().ID)
}

func TestParticipations_EditRoundTrip(t *testing.T) {
	_, env, rec := setup(t)
	ctx := context.Background()
	parts := Participations(env)
	parts.Do(ctx, parts.Load())
	require.Len(t, parts.Items, 1)

	parts.OpenForm(&parts.Items[0])
	assert.Equal(t, parts.Items[0].ID.String(), parts.Editing)
	parts.Form.Set("status", "cancelado")
	eff, err := parts.Save()
	require.NoError(t, err)
	parts.Do(ctx, eff)

	assert.Equal(t, "participation.updated", rec.last().ID)
	require.Len(t, parts.Items, 1)
	assert.Equal(t, "cancelado", parts.Items[0].Status)
}

func TestSchemas_RoundTrip(t *testing.T) {
	e := model.Event{ID: "3", Name: "n", Sport: "s", Date: "d", Time: "t", Location: "l", MaxParticipants: "9", SkillLevel: "k"}
	got := EventSchema.Payload(EventSchema.FromItem(e))
	e.ID = ""
	assert.Equal(t, e, got)

	sp := SportSchema("5").Payload(map[string]string{"nome": "Judô", "nivel_habilidade": "Faixa azul"})
	assert.Equal(t, "5", sp.UserID.String())
}
