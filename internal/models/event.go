package models

import (
	"time"
)

type EventType string

const (
	EventTypeWorkout      EventType = "workout"
	EventTypeStudySession EventType = "study-session"
	EventTypeCampusEvent  EventType = "campus-event"
	EventTypeIntramurals  EventType = "intramurals"
	EventTypeDropIn       EventType = "drop-in"
	EventTypeClubEvents   EventType = "club-events"
	EventTypeOther        EventType = "other"
)

type UserRole string

const (
	RoleRider     UserRole = "rider"
	RoleDriver    UserRole = "driver"
	RoleOrganizer UserRole = "organizer"
)

type EventLocation struct {
	Lat     float64 `json:"lat" validate:"min=-90,max=90"`
	Lng     float64 `json:"lng" validate:"min=-180,max=180"`
	Address string  `json:"address" validate:"required,max=255"`
}

type EventParticipants struct {
	Drivers int `json:"drivers"`
	Riders  int `json:"riders"`
}

type Event struct {
	ID           string            `json:"id"`
	Title        string            `json:"title"`
	Description  string            `json:"description"`
	Date         string            `json:"date"`
	Time         string            `json:"time"`
	Location     EventLocation     `json:"location"`
	Type         EventType         `json:"type"`
	Participants EventParticipants `json:"participants"`
	CreatedAt    time.Time         `json:"created_at"`
	UpdatedAt    time.Time         `json:"updated_at"`
}

type EventDetails struct {
	Title       string        `json:"title" validate:"required,max=120"`
	Description string        `json:"description" validate:"max=2000"`
	Date        string        `json:"date" validate:"required,ride_date"`
	Time        string        `json:"time" validate:"required,ride_time"`
	Location    EventLocation `json:"location" validate:"required"`
	Type        EventType     `json:"type" validate:"required,oneof=workout study-session campus-event intramurals drop-in club-events other"`
}

// EventPatch holds the fields of an event that may be updated. Nil fields are
// left untouched.
type EventPatch struct {
	Title       *string        `json:"title" validate:"omitempty,min=1,max=120"`
	Description *string        `json:"description" validate:"omitempty,max=2000"`
	Date        *string        `json:"date" validate:"omitempty,ride_date"`
	Time        *string        `json:"time" validate:"omitempty,ride_time"`
	Location    *EventLocation `json:"location" validate:"omitempty"`
	Type        *EventType     `json:"type" validate:"omitempty,oneof=workout study-session campus-event intramurals drop-in club-events other"`
}

func (e *Event) Clone() *Event {
	if e == nil {
		return nil
	}
	c := *e
	return &c
}
