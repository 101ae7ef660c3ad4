package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"esportivai/internal/jsonutil"
	"esportivai/internal/model"
)

// DashboardList names one of the per-user event lists on the dashboard.
type DashboardList string

const (
	UpcomingEvents   DashboardList = "upcoming-events"
	SubscribedEvents DashboardList = "subscribed-events"
	PastEvents       DashboardList = "past-events"
)

// DashboardLists is the display order of the dashboard sections.
var DashboardLists = []DashboardList{UpcomingEvents, SubscribedEvents, PastEvents}

func listOf[T any](ctx context.Context, c *Client, route, path string) ([]T, error) {
	resp, err := c.send(ctx, http.MethodGet, route, path, nil, nil)
	if err != nil {
		return nil, err
	}
	return jsonutil.DecodeList[T](resp.Body, fmt.Sprintf("api: decode GET %s", path))
}

func (c *Client) write(ctx context.Context, method, route, path string, in any) (int, error) {
	resp, err := c.send(ctx, method, route, path, in, nil)
	if resp == nil {
		return 0, err
	}
	return resp.Status, err
}

func (c *Client) remove(ctx context.Context, route, path string) error {
	_, err := c.send(ctx, http.MethodDelete, route, path, nil, nil)
	return err
}

func escape(id string) string {
	return url.PathEscape(id)
}

// Login authenticates with POST /login. Only 200 counts as success.
// A token (and user id) in the response body are kept in the session and the
// token is attached to later requests.
func (c *Client) Login(ctx context.Context, creds model.Credentials) (model.Session, error) {
	resp, err := c.send(ctx, http.MethodPost, "/login", "/login", creds, nil)
	if err != nil {
		return model.Session{}, err
	}
	if resp.Status != http.StatusOK {
		return model.Session{}, &StatusError{Method: http.MethodPost, Path: "/login", Status: resp.Status}
	}

	var body struct {
		Token  jsonutil.FlexString `json:"token"`
		UserID jsonutil.FlexString `json:"userId"`
		ID     jsonutil.FlexString `json:"id"`
	}
	var session model.Session
	if json.Unmarshal(resp.Body, &body) == nil {
		session.Token = body.Token.String()
		session.UserID = body.UserID.String()
		if session.UserID == "" {
			session.UserID = body.ID.String()
		}
	}
	c.SetToken(session.Token)
	return session, nil
}

// UserEvents fetches one of the dashboard lists for userID.
func (c *Client) UserEvents(ctx context.Context, userID string, list DashboardList) ([]model.Event, error) {
	route := "/users/{id}/" + string(list)
	return listOf[model.Event](ctx, c, route, "/users/"+escape(userID)+"/"+string(list))
}

// ListEvents fetches GET /events.
func (c *Client) ListEvents(ctx context.Context) ([]model.Event, error) {
	return listOf[model.Event](ctx, c, "/events", "/events")
}

// CreateEvent posts e to /events and returns the response status.
func (c *Client) CreateEvent(ctx context.Context, e model.Event) (int, error) {
	return c.write(ctx, http.MethodPost, "/events", "/events", e)
}

// UpdateEvent puts e to /events/{id}.
func (c *Client) UpdateEvent(ctx context.Context, id string, e model.Event) (int, error) {
	return c.write(ctx, http.MethodPut, "/events/{id}", "/events/"+escape(id), e)
}

// DeleteEvent deletes /events/{id}.
func (c *Client) DeleteEvent(ctx context.Context, id string) error {
	return c.remove(ctx, "/events/{id}", "/events/"+escape(id))
}

// ListParticipations fetches GET /participations.
func (c *Client) ListParticipations(ctx context.Context) ([]model.Participation, error) {
	return listOf[model.Participation](ctx, c, "/participations", "/participations")
}

// CreateParticipation posts p to /participations.
func (c *Client) CreateParticipation(ctx context.Context, p model.Participation) (int, error) {
	return c.write(ctx, http.MethodPost, "/participations", "/participations", p)
}

// UpdateParticipation puts p to /participations/{id}.
func (c *Client) UpdateParticipation(ctx context.Context, id string, p model.Participation) (int, error) {
	return c.write(ctx, http.MethodPut, "/participations/{id}", "/participations/"+escape(id), p)
}

// DeleteParticipation deletes /participations/{id}.
func (c *Client) DeleteParticipation(ctx context.Context, id string) error {
	return c.remove(ctx, "/participations/{id}", "/participations/"+escape(id))
}

// ListSports fetches the sports of userID from /sports/{userId}.
func (c *Client) ListSports(ctx context.Context, userID string) ([]model.Sport, error) {
	return listOf[model.Sport](ctx, c, "/sports/{userId}", "/sports/"+escape(userID))
}

// CreateSport posts s to /sports; s.UserID names the owner.
func (c *Client) CreateSport(ctx context.Context, s model.Sport) (int, error) {
	return c.write(ctx, http.MethodPost, "/sports", "/sports", s)
}

// UpdateSport puts s to /sports/{id}.
func (c *Client) UpdateSport(ctx context.Context, id string, s model.Sport) (int, error) {
	return c.write(ctx, http.MethodPut, "/sports/{id}", "/sports/"+escape(id), s)
}

// DeleteSport deletes /sports/{id}.
func (c *Client) DeleteSport(ctx context.Context, id string) error {
	return c.remove(ctx, "/sports/{id}", "/sports/"+escape(id))
}

// GetProfile fetches GET /users/{id}.
func (c *Client) GetProfile(ctx context.Context, userID string) (model.Profile, error) {
	var p model.Profile
	path := "/users/" + escape(userID)
	if _, err := c.send(ctx, http.MethodGet, "/users/{id}", path, nil, &p); err != nil {
		return model.Profile{}, err
	}
	return p, nil
}
