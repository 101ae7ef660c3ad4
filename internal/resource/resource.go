// Package resource binds the API client to crud controllers: one schema and
// one set of operations per entity.
package resource

import (
	"context"

	"go.uber.org/zap"

	"esportivai/internal/api"
	"esportivai/internal/crud"
	"esportivai/internal/jsonutil"
	"esportivai/internal/model"
)

// EventFields are the event form fields in display order.
var EventFields = []crud.Field{
	{Key: "nome", Label: "event.name"},
	{Key: "esporte", Label: "event.sport"},
	{Key: "data", Label: "event.date"},
	{Key: "horario", Label: "event.time"},
	{Key: "local", Label: "event.location"},
	{Key: "max_participantes", Label: "event.max_participants"},
	{Key: "nivel_habilidade", Label: "event.skill_level"},
}

// EventSchema maps events to their form.
var EventSchema = crud.Schema[model.Event]{
	Fields: EventFields,
	FromItem: func(e model.Event) map[string]string {
		return map[string]string{
			"nome":              e.Name,
			"esporte":           e.Sport,
			"data":              e.Date,
			"horario":           e.Time,
			"local":             e.Location,
			"max_participantes": e.MaxParticipants.String(),
			"nivel_habilidade":  e.SkillLevel,
		}
	},
	Payload: func(v map[string]string) model.Event {
		return model.Event{
			Name:            v["nome"],
			Sport:           v["esporte"],
			Date:            v["data"],
			Time:            v["horario"],
			Location:        v["local"],
			MaxParticipants: jsonutil.FlexString(v["max_participantes"]),
			SkillLevel:      v["nivel_habilidade"],
		}
	},
	ID: func(e model.Event) string { return e.ID.String() },
}

// ParticipationSchema maps participations to their form.
var ParticipationSchema = crud.Schema[model.Participation]{
	Fields: []crud.Field{
		{Key: "event_name", Label: "participation.event_name"},
		{Key: "event_date", Label: "participation.event_date"},
		{Key: "event_location", Label: "participation.event_location"},
		{Key: "status", Label: "participation.status"},
	},
	FromItem: func(p model.Participation) map[string]string {
		return map[string]string{
			"event_name":     p.EventName,
			"event_date":     p.EventDate,
			"event_location": p.EventLocation,
			"status":         p.Status,
		}
	},
	Payload: func(v map[string]string) model.Participation {
		return model.Participation{
			EventName:     v["event_name"],
			EventDate:     v["event_date"],
			EventLocation: v["event_location"],
			Status:        v["status"],
		}
	},
	ID: func(p model.Participation) string { return p.ID.String() },
}

// SportSchema maps a user's sports to their form. Created sports are owned
// by userID; updates carry only the name and skill level.
func SportSchema(userID string) crud.Schema[model.Sport] {
	return crud.Schema[model.Sport]{
		Fields: []crud.Field{
			{Key: "nome", Label: "sport.name"},
			{Key: "nivel_habilidade", Label: "sport.skill_level"},
		},
		FromItem: func(s model.Sport) map[string]string {
			return map[string]string{"nome": s.Name, "nivel_habilidade": s.SkillLevel}
		},
		Payload: func(v map[string]string) model.Sport {
			return model.Sport{
				UserID:     jsonutil.FlexString(userID),
				Name:       v["nome"],
				SkillLevel: v["nivel_habilidade"],
			}
		},
		ID: func(s model.Sport) string { return s.ID.String() },
	}
}

// Env is what every controller constructor needs.
type Env struct {
	Client   *api.Client
	UserID   string
	Notifier crud.Notifier
	Logger   *zap.Logger
}

func (e Env) logger() *zap.Logger {
	if e.Logger == nil {
		return zap.NewNop()
	}
	return e.Logger
}

func (e Env) notifier() crud.Notifier {
	if e.Notifier == nil {
		return crud.NotifierFunc(func(crud.Notice) {})
	}
	return e.Notifier
}

// Events is the My Events controller over /events.
func Events(env Env) *crud.Controller[model.Event] {
	c := env.Client
	return crud.New(EventSchema, crud.Ops[model.Event]{
		List:   c.ListEvents,
		Create: c.CreateEvent,
		Update: c.UpdateEvent,
		Delete: c.DeleteEvent,
	}, crud.Messages{
		LoadFailed:    "event.load_failed",
		SaveFailed:    "event.save_failed",
		DeleteFailed:  "event.delete_failed",
		Created:       "event.created",
		Updated:       "event.updated",
		Deleted:       "event.deleted",
		MissingFields: "form.missing_fields",
	},
		crud.WithNotifier[model.Event](env.notifier()),
		crud.WithLogger[model.Event](env.logger().Named("events")),
	)
}

// DashboardList is a read-only controller over one of the user's dashboard
// lists. The upcoming list also hosts the create-event form, so a created
// event reloads exactly that list.
func DashboardList(env Env, list api.DashboardList) *crud.Controller[model.Event] {
	c, userID := env.Client, env.UserID
	ops := crud.Ops[model.Event]{
		List: func(ctx context.Context) ([]model.Event, error) {
			return c.UserEvents(ctx, userID, list)
		},
	}
	if list == api.UpcomingEvents {
		ops.Create = c.CreateEvent
	}
	return crud.New(EventSchema, ops, crud.Messages{
		LoadFailed:    "dashboard.load_failed",
		SaveFailed:    "dashboard.save_failed",
		Created:       "dashboard.created",
		MissingFields: "form.missing_fields",
	},
		crud.WithNotifier[model.Event](env.notifier()),
		crud.WithLogger[model.Event](env.logger().Named("dashboard")),
		crud.WithNoticeData[model.Event](map[string]any{"Endpoint": string(list)}),
	)
}

// Participations is the controller over /participations.
func Participations(env Env) *crud.Controller[model.Participation] {
	c := env.Client
	return crud.New(ParticipationSchema, crud.Ops[model.Participation]{
		List:   c.ListParticipations,
		Create: c.CreateParticipation,
		Update: c.UpdateParticipation,
		Delete: c.DeleteParticipation,
	}, crud.Messages{
		LoadFailed:    "participation.load_failed",
		SaveFailed:    "participation.save_failed",
		DeleteFailed:  "participation.delete_failed",
		Created:       "participation.created",
		Updated:       "participation.updated",
		Deleted:       "participation.deleted",
		MissingFields: "form.missing_fields",
	},
		crud.WithNotifier[model.Participation](env.notifier()),
		crud.WithLogger[model.Participation](env.logger().Named("participations")),
	)
}

// Sports is the controller over the user's sports.
func Sports(env Env) *crud.Controller[model.Sport] {
	c, userID := env.Client, env.UserID
	return crud.New(SportSchema(userID), crud.Ops[model.Sport]{
		List: func(ctx context.Context) ([]model.Sport, error) {
			return c.ListSports(ctx, userID)
		},
		Create: c.CreateSport,
		Update: func(ctx context.Context, id string, s model.Sport) (int, error) {
			s.UserID = ""
			return c.UpdateSport(ctx, id, s)
		},
		Delete: c.DeleteSport,
	}, crud.Messages{
		LoadFailed:    "sport.load_failed",
		SaveFailed:    "sport.save_failed",
		DeleteFailed:  "sport.delete_failed",
		Created:       "sport.created",
		Updated:       "sport.updated",
		Deleted:       "sport.deleted",
		MissingFields: "sport.missing_fields",
	},
		crud.WithNotifier[model.Sport](env.notifier()),
		crud.WithLogger[model.Sport](env.logger().Named("sports")),
	)
}
