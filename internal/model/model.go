// Package model holds the records exchanged verbatim with the EsportiVai API.
// Field names on the wire follow the API (Portuguese keys for events, sports
// and profiles; snake_case English for participations).
package model

import "esportivai/internal/jsonutil"

// Event is a sports event organised by a user.
type Event struct {
	ID              jsonutil.FlexString `json:"id,omitempty"`
	Name            string              `json:"nome"`
	Sport           string              `json:"esporte"`
	Date            string              `json:"data"`
	Time            string              `json:"horario"`
	Location        string              `json:"local"`
	MaxParticipants jsonutil.FlexString `json:"max_participantes"`
	SkillLevel      string              `json:"nivel_habilidade"`
}

// Participation is the current user's registration in an event.
type Participation struct {
	ID            jsonutil.FlexString `json:"id,omitempty"`
	EventName     string              `json:"event_name"`
	EventDate     string              `json:"event_date"`
	EventLocation string              `json:"event_location"`
	Status        string              `json:"status"`
}

// Sport is a sport practised by a user together with their skill level.
type Sport struct {
	ID         jsonutil.FlexString `json:"id,omitempty"`
	UserID     jsonutil.FlexString `json:"userId,omitempty"`
	Name       string              `json:"nome"`
	SkillLevel string              `json:"nivel_habilidade"`
}

// Profile is the read-only user profile.
type Profile struct {
	ID       jsonutil.FlexString `json:"id,omitempty"`
	Name     string              `json:"nome"`
	Email    string              `json:"email"`
	Location string              `json:"localizacao"`
}

// Credentials is the body of POST /login.
type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Session is what the client keeps after a successful login.
// Token is empty when the server does not issue one.
type Session struct {
	Token  string
	UserID string
}
