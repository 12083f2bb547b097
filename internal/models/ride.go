package models

import (
	"time"
)

type RideStatus string

const (
	RideStatusRequested RideStatus = "requested"
	RideStatusOffered   RideStatus = "offered"
	RideStatusAccepted  RideStatus = "accepted"
	RideStatusCompleted RideStatus = "completed"
)

type Ride struct {
	ID         string     `json:"id"`
	From       string     `json:"from"`
	To         string     `json:"to"`
	Date       string     `json:"date"`
	Time       string     `json:"time"`
	Seats      int        `json:"seats"`
	Driver     string     `json:"driver,omitempty"`
	Rider      string     `json:"rider,omitempty"`
	Passengers []string   `json:"passengers,omitempty"`
	Status     RideStatus `json:"status"`
	CreatedAt  time.Time  `json:"created_at"`
	UpdatedAt  time.Time  `json:"updated_at"`
}

// RideDetails is the caller-supplied part of a ride. ID and Status are
// always assigned by the store.
type RideDetails struct {
	From   string `json:"from" validate:"required,identity,max=255"`
	To     string `json:"to" validate:"required,identity,max=255"`
	Date   string `json:"date" validate:"required,ride_date"`
	Time   string `json:"time" validate:"required,ride_time"`
	Seats  int    `json:"seats" validate:"required,min=1"`
	Driver string `json:"driver" validate:"omitempty,max=100"`
	Rider  string `json:"rider" validate:"omitempty,max=100"`
}

// RideSummary is the subset of a ride a chat greeting refers to.
type RideSummary struct {
	ID   string `json:"id"`
	From string `json:"from" validate:"required"`
	To   string `json:"to" validate:"required"`
}

func (r *Ride) Summary() RideSummary {
	return RideSummary{ID: r.ID, From: r.From, To: r.To}
}

func (r *Ride) HasPassenger(name string) bool {
	for _, p := range r.Passengers {
		if p == name {
			return true
		}
	}
	return false
}

// Clone returns a deep copy so callers never hold a reference into a store.
func (r *Ride) Clone() *Ride {
	if r == nil {
		return nil
	}
	c := *r
	if r.Passengers != nil {
		c.Passengers = append([]string(nil), r.Passengers...)
	}
	return &c
}
