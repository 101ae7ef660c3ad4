// Package mockapi is an in-memory EsportiVai API used for local development
// and tests. It implements every endpoint the client consumes.
package mockapi

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"esportivai/internal/jsonutil"
	"esportivai/internal/model"
)

// Call records one request received by the server.
type Call struct {
	Method string
	Path   string
	Body   []byte
}

type user struct {
	profile  model.Profile
	password string
}

// Server holds the in-memory state. The zero value is not usable; use New.
type Server struct {
	mu             sync.Mutex
	nextID         int
	now            func() time.Time
	users          map[string]*user
	events         []model.Event
	participations []model.Participation
	sports         []model.Sport
	calls          []Call
	failures       map[string]int
}

// Option configures a Server.
type Option func(*Server)

// WithClock fixes the time used to split upcoming and past events.
func WithClock(now func() time.Time) Option {
	return func(s *Server) { s.now = now }
}

// New returns an empty server with no users.
func New(opts ...Option) *Server {
	s := &Server{
		nextID:   1,
		now:      time.Now,
		users:    make(map[string]*user),
		failures: make(map[string]int),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// AddUser registers a user that can log in and returns its id.
func (s *Server) AddUser(email, password string, p model.Profile) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	id := s.allocID()
	p.ID = jsonutil.FlexString(id)
	p.Email = email
	s.users[id] = &user{profile: p, password: password}
	return id
}

// AddEvent stores e with a fresh id and returns the id.
func (s *Server) AddEvent(e model.Event) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	e.ID = jsonutil.FlexString(s.allocID())
	s.events = append(s.events, e)
	return e.ID.String()
}

// AddParticipation stores p with a fresh id and returns the id.
func (s *Server) AddParticipation(p model.Participation) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	p.ID = jsonutil.FlexString(s.allocID())
	s.participations = append(s.participations, p)
	return p.ID.String()
}

// AddSport stores sp with a fresh id and returns the id.
func (s *Server) AddSport(sp model.Sport) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	sp.ID = jsonutil.FlexString(s.allocID())
	s.sports = append(s.sports, sp)
	return sp.ID.String()
}

// FailNext makes the next request matching method and chi route pattern
// (e.g. "GET", "/events") answer with status instead of being served.
func (s *Server) FailNext(method, route string, status int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.failures[method+" "+route] = status
}

// Calls returns a copy of the requests received so far.
func (s *Server) Calls() []Call {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Call, len(s.calls))
	copy(out, s.calls)
	return out
}

// CountCalls counts received requests with the given method and exact path.
func (s *Server) CountCalls(method, path string) int {
	n := 0
	for _, c := range s.Calls() {
		if c.Method == method && c.Path == path {
			n++
		}
	}
	return n
}

// Events returns a copy of the stored events.
func (s *Server) Events() []model.Event {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]model.Event(nil), s.events...)
}

func (s *Server) allocID() string {
	id := strconv.Itoa(s.nextID)
	s.nextID++
	return id
}

// Handler returns the HTTP handler serving the API.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()
	r.Use(s.record)

	r.Group(func(r chi.Router) {
		r.Use(s.injectFailures)

		r.Post("/login", s.handleLogin)

		r.Get("/users/{id}", s.handleGetProfile)
		r.Get("/users/{id}/upcoming-events", s.handleUserEvents(upcoming))
		r.Get("/users/{id}/subscribed-events", s.handleUserEvents(subscribed))
		r.Get("/users/{id}/past-events", s.handleUserEvents(past))

		r.Get("/events", s.handleListEvents)
		r.Post("/events", s.handleCreateEvent)
		r.Put("/events/{id}", s.handleUpdateEvent)
		r.Delete("/events/{id}", s.handleDeleteEvent)

		r.Get("/participations", s.handleListParticipations)
		r.Post("/participations", s.handleCreateParticipation)
		r.Put("/participations/{id}", s.handleUpdateParticipation)
		r.Delete("/participations/{id}", s.handleDeleteParticipation)

		// GET /sports/{id} lists by user id; PUT/DELETE address a sport id.
		r.Post("/sports", s.handleCreateSport)
		r.Get("/sports/{id}", s.handleListSports)
		r.Put("/sports/{id}", s.handleUpdateSport)
		r.Delete("/sports/{id}", s.handleDeleteSport)
	})

	return r
}

func (s *Server) record(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var body []byte
		if r.Body != nil {
			body, _ = io.ReadAll(r.Body)
			r.Body = io.NopCloser(bytes.NewReader(body))
		}
		s.mu.Lock()
		s.calls = append(s.calls, Call{Method: r.Method, Path: r.URL.Path, Body: body})
		s.mu.Unlock()
		next.ServeHTTP(w, r)
	})
}

// injectFailures is mounted inside the routing group, so the matched route
// pattern is already known when it runs.
func (s *Server) injectFailures(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		key := r.Method + " " + chi.RouteContext(r.Context()).RoutePattern()
		s.mu.Lock()
		status, ok := s.failures[key]
		if ok {
			delete(s.failures, key)
		}
		s.mu.Unlock()
		if ok {
			writeJSON(w, status, map[string]string{"error": http.StatusText(status)})
			return
		}
		next.ServeHTTP(w, r)
	})
}

func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	var creds model.Credentials
	if !decode(w, r, &creds) {
		return
	}
	if creds.Email == "" || creds.Password == "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "email and password are required"})
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for id, u := range s.users {
		if u.profile.Email == creds.Email && u.password == creds.Password {
			writeJSON(w, http.StatusOK, map[string]string{"token": uuid.NewString(), "userId": id})
			return
		}
	}
	writeJSON(w, http.StatusUnauthorized, map[string]string{"error": "invalid credentials"})
}

func (s *Server) handleGetProfile(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()
	u, ok := s.users[chi.URLParam(r, "id")]
	if !ok {
		notFound(w)
		return
	}
	writeJSON(w, http.StatusOK, u.profile)
}

type userList int

const (
	upcoming userList = iota
	subscribed
	past
)

func (s *Server) handleUserEvents(list userList) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		s.mu.Lock()
		defer s.mu.Unlock()
		if _, ok := s.users[chi.URLParam(r, "id")]; !ok {
			notFound(w)
			return
		}
		today := s.now().Format(time.DateOnly)
		out := []model.Event{}
		for _, e := range s.events {
			switch list {
			case upcoming:
				if !isPast(e.Date, today) {
					out = append(out, e)
				}
			case past:
				if isPast(e.Date, today) {
					out = append(out, e)
				}
			case subscribed:
				if s.subscribedLocked(e) {
					out = append(out, e)
				}
			}
		}
		writeJSON(w, http.StatusOK, out)
	}
}

// isPast reports whether an ISO date lies before today. Unparseable dates
// count as upcoming.
func isPast(date, today string) bool {
	if _, err := time.Parse(time.DateOnly, date); err != nil {
		return false
	}
	return date < today
}

func (s *Server) subscribedLocked(e model.Event) bool {
	for _, p := range s.participations {
		if p.EventName == e.Name {
			return true
		}
	}
	return false
}

func (s *Server) handleListEvents(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()
	writeJSON(w, http.StatusOK, append([]model.Event{}, s.events...))
}

func (s *Server) handleCreateEvent(w http.ResponseWriter, r *http.Request) {
	var e model.Event
	if !decode(w, r, &e) {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	e.ID = jsonutil.FlexString(s.allocID())
	s.events = append(s.events, e)
	writeJSON(w, http.StatusCreated, e)
}

func (s *Server) handleUpdateEvent(w http.ResponseWriter, r *http.Request) {
	var e model.Event
	if !decode(w, r, &e) {
		return
	}
	id := chi.URLParam(r, "id")
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.events {
		if s.events[i].ID.String() == id {
			e.ID = s.events[i].ID
			s.events[i] = e
			writeJSON(w, http.StatusOK, e)
			return
		}
	}
	notFound(w)
}

func (s *Server) handleDeleteEvent(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.events {
		if s.events[i].ID.String() == id {
			s.events = append(s.events[:i], s.events[i+1:]...)
			w.WriteHeader(http.StatusNoContent)
			return
		}
	}
	notFound(w)
}

func (s *Server) handleListParticipations(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()
	writeJSON(w, http.StatusOK, append([]model.Participation{}, s.participations...))
}

func (s *Server) handleCreateParticipation(w http.ResponseWriter, r *http.Request) {
	var p model.Participation
	if !decode(w, r, &p) {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	p.ID = jsonutil.FlexString(s.allocID())
	s.participations = append(s.participations, p)
	writeJSON(w, http.StatusCreated, p)
}

func (s *Server) handleUpdateParticipation(w http.ResponseWriter, r *http.Request) {
	var p model.Participation
	if !decode(w, r, &p) {
		return
	}
	id := chi.URLParam(r, "id")
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.participations {
		if s.participations[i].ID.String() == id {
			p.ID = s.participations[i].ID
			s.participations[i] = p
			writeJSON(w, http.StatusOK, p)
			return
		}
	}
	notFound(w)
}

func (s *Server) handleDeleteParticipation(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.participations {
		if s.participations[i].ID.String() == id {
			s.participations = append(s.participations[:i], s.participations[i+1:]...)
			w.WriteHeader(http.StatusNoContent)
			return
		}
	}
	notFound(w)
}

func (s *Server) handleListSports(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "id")
	s.mu.Lock()
	defer s.mu.Unlock()
	out := []model.Sport{}
	for _, sp := range s.sports {
		if sp.UserID.String() == userID {
			out = append(out, sp)
		}
	}
	writeJSON(w, http.StatusOK, out)
}

func (s *Server) handleCreateSport(w http.ResponseWriter, r *http.Request) {
	var sp model.Sport
	if !decode(w, r, &sp) {
		return
	}
	if sp.UserID == "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "userId is required"})
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	sp.ID = jsonutil.FlexString(s.allocID())
	s.sports = append(s.sports, sp)
	writeJSON(w, http.StatusCreated, sp)
}

func (s *Server) handleUpdateSport(w http.ResponseWriter, r *http.Request) {
	var sp model.Sport
	if !decode(w, r, &sp) {
		return
	}
	id := chi.URLParam(r, "id")
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.sports {
		if s.sports[i].ID.String() == id {
			s.sports[i].Name = sp.Name
			s.sports[i].SkillLevel = sp.SkillLevel
			writeJSON(w, http.StatusOK, s.sports[i])
			return
		}
	}
	notFound(w)
}

func (s *Server) handleDeleteSport(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.sports {
		if s.sports[i].ID.String() == id {
			s.sports = append(s.sports[:i], s.sports[i+1:]...)
			w.WriteHeader(http.StatusNoContent)
			return
		}
	}
	notFound(w)
}

func decode(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON: " + err.Error()})
		return false
	}
	return true
}

func notFound(w http.ResponseWriter) {
	writeJSON(w, http.StatusNotFound, map[string]string{"error": "not found"})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
