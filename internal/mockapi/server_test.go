package mockapi

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"esportivai/internal/model"
)

func newTestServer(t *testing.T) (*Server, *httptest.Server) {
	t.Helper()
	s := New(WithClock(func() time.Time {
		return time.Date(2030, 1, 1, 12, 0, 0, 0, time.UTC)
	}))
	srv := httptest.NewServer(s.Handler())
	t.Cleanup(srv.Close)
	return s, srv
}

func do(t *testing.T, method, url string, body any) *http.Response {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req, err := http.NewRequest(method, url, &buf)
	require.NoError(t, err)
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	t.Cleanup(func() { resp.Body.Close() })
	return resp
}

func decodeBody[T any](t *testing.T, resp *http.Response) T {
	t.Helper()
	var v T
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&v))
	return v
}

func TestLogin(t *testing.T) {
	s, srv := newTestServer(t)
	id := s.AddUser("ana@example.com", "secret", model.Profile{Name: "Ana"})

	tests := []struct {
		name   string
		creds  model.Credentials
		status int
	}{
		{"valid", model.Credentials{Email: "ana@example.com", Password: "secret"}, http.StatusOK},
		{"wrong password", model.Credentials{Email: "ana@example.com", Password: "nope"}, http.StatusUnauthorized},
		{"unknown user", model.Credentials{Email: "bob@example.com", Password: "secret"}, http.StatusUnauthorized},
		{"missing password", model.Credentials{Email: "ana@example.com"}, http.StatusBadRequest},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := do(t, http.MethodPost, srv.URL+"/login", tt.creds)
			assert.Equal(t, tt.status, resp.StatusCode)
			if tt.status == http.StatusOK {
				body := decodeBody[map[string]string](t, resp)
				assert.Equal(t, id, body["userId"])
				assert.NotEmpty(t, body["token"])
			}
		})
	}
}

func TestLogin_BadJSON(t *testing.T) {
	_, srv := newTestServer(t)
	resp, err := http.Post(srv.URL+"/login", "application/json", bytes.NewBufferString("{"))
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestEventsCRUD(t *testing.T) {
	s, srv := newTestServer(t)

	resp := do(t, http.MethodPost, srv.URL+"/events", model.Event{Name: "Futebol 5x5", Sport: "Futebol"})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	created := decodeBody[model.Event](t, resp)
	require.NotEmpty(t, created.ID)

	resp = do(t, http.MethodPut, srv.URL+"/events/"+created.ID.String(), model.Event{Name: "Futebol 7x7", Sport: "Futebol"})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	events := s.Events()
	require.Len(t, events, 1)
	assert.Equal(t, "Futebol 7x7", events[0].Name)
	assert.Equal(t, created.ID, events[0].ID)

	resp = do(t, http.MethodDelete, srv.URL+"/events/"+created.ID.String(), nil)
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)
	assert.Empty(t, s.Events())

	resp = do(t, http.MethodDelete, srv.URL+"/events/"+created.ID.String(), nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	resp = do(t, http.MethodGet, srv.URL+"/events", nil)
	assert.Equal(t, "[]\n", readString(t, resp))
}

func TestUserEventLists(t *testing.T) {
	s, srv := newTestServer(t)
	id := Seed(s)

	get := func(list string) []model.Event {
		resp := do(t, http.MethodGet, srv.URL+"/users/"+id+"/"+list, nil)
		require.Equal(t, http.StatusOK, resp.StatusCode)
		return decodeBody[[]model.Event](t, resp)
	}

	upcoming := get("upcoming-events")
	past := get("past-events")
	subscribed := get("subscribed-events")

	assert.Len(t, upcoming, 2)
	require.Len(t, past, 1)
	assert.Equal(t, "Corrida no Parque", past[0].Name)
	require.Len(t, subscribed, 1)
	assert.Equal(t, "Vôlei de Praia", subscribed[0].Name)

	resp := do(t, http.MethodGet, srv.URL+"/users/999/upcoming-events", nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestSports_FilteredByUser(t *testing.T) {
	s, srv := newTestServer(t)
	id := Seed(s)
	s.AddSport(model.Sport{UserID: "someone-else", Name: "Xadrez", SkillLevel: "Avançado"})

	resp := do(t, http.MethodGet, srv.URL+"/sports/"+id, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	sports := decodeBody[[]model.Sport](t, resp)
	require.Len(t, sports, 2)
	for _, sp := range sports {
		assert.Equal(t, id, sp.UserID.String())
	}

	resp = do(t, http.MethodPost, srv.URL+"/sports", model.Sport{Name: "Tênis"})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestFailNext(t *testing.T) {
	s, srv := newTestServer(t)
	s.FailNext(http.MethodPut, "/events/{id}", http.StatusInternalServerError)

	resp := do(t, http.MethodPut, srv.URL+"/events/42", model.Event{Name: "x"})
	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)

	// One-shot: the next call reaches the handler.
	resp = do(t, http.MethodPut, srv.URL+"/events/42", model.Event{Name: "x"})
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestCalls_RecordsBody(t *testing.T) {
	s, srv := newTestServer(t)
	do(t, http.MethodPost, srv.URL+"/participations", model.Participation{EventName: "Vôlei", Status: "pendente"})

	calls := s.Calls()
	require.Len(t, calls, 1)
	assert.Equal(t, http.MethodPost, calls[0].Method)
	assert.Equal(t, "/participations", calls[0].Path)
	assert.Contains(t, string(calls[0].Body), `"event_name":"Vôlei"`)
	assert.Equal(t, 1, s.CountCalls(http.MethodPost, "/participations"))
}

func readString(t *testing.T, resp *http.Response) string {
	t.Helper()
	var buf bytes.Buffer
	_, err := buf.ReadFrom(resp.Body)
	require.NoError(t, err)
	return buf.String()
}
