package models

import (
	"time"
)

type NotificationKind string

const (
	NotificationKindRide  NotificationKind = "ride"
	NotificationKindChat  NotificationKind = "chat"
	NotificationKindEvent NotificationKind = "event"
)

// Notification is a transient, user-facing acknowledgment of a mutation.
// An empty UserID addresses every connected client for event notifications
// and nobody for the others.
type Notification struct {
	UserID      string           `json:"user_id,omitempty"`
	Kind        NotificationKind `json:"kind"`
	Title       string           `json:"title"`
	Description string           `json:"description"`
	CreatedAt   time.Time        `json:"created_at"`
}
