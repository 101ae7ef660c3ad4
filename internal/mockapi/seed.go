package mockapi

import (
	"esportivai/internal/jsonutil"
	"esportivai/internal/model"
)

// Demo credentials created by Seed.
const (
	DemoEmail    = "demo@esportivai.com"
	DemoPassword = "demo123"
)

// Seed fills s with a demo user and a handful of events, participations
// and sports. It returns the demo user id.
func Seed(s *Server) string {
	userID := s.AddUser(DemoEmail, DemoPassword, model.Profile{
		Name:     "Usuário Demo",
		Location: "São Paulo, SP",
	})

	s.AddEvent(model.Event{
		Name: "Futebol 5x5", Sport: "Futebol", Date: "2099-01-10", Time: "18:00",
		Location: "Quadra Central", MaxParticipants: "10", SkillLevel: "Intermediário",
	})
	s.AddEvent(model.Event{
		Name: "Vôlei de Praia", Sport: "Vôlei", Date: "2099-02-14", Time: "09:00",
		Location: "Praia do Forte", MaxParticipants: "8", SkillLevel: "Iniciante",
	})
	s.AddEvent(model.Event{
		Name: "Corrida no Parque", Sport: "Corrida", Date: "2020-05-01", Time: "07:00",
		Location: "Parque Ibirapuera", MaxParticipants: "50", SkillLevel: "Avançado",
	})

	s.AddParticipation(model.Participation{
		EventName: "Vôlei de Praia", EventDate: "2099-02-14", EventLocation: "Praia do Forte", Status: "confirmado",
	})

	s.AddSport(model.Sport{UserID: jsonutil.FlexString(userID), Name: "Futebol", SkillLevel: "Intermediário"})
	s.AddSport(model.Sport{UserID: jsonutil.FlexString(userID), Name: "Vôlei", SkillLevel: "Iniciante"})
	return userID
}
