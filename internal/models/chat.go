package models

import (
	"time"
)

// Thread is a two-party conversation. Participant order carries no meaning.
type Thread struct {
	ID           string    `json:"id"`
	Participants [2]string `json:"participants"`
	LastMessage  *Message  `json:"last_message,omitempty"`
	UnreadCount  int       `json:"unread_count"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func (t *Thread) HasParticipant(userID string) bool {
	return t.Participants[0] == userID || t.Participants[1] == userID
}

// IsBetween reports whether the participant set equals {a, b}.
func (t *Thread) IsBetween(a, b string) bool {
	p := t.Participants
	return (p[0] == a && p[1] == b) || (p[0] == b && p[1] == a)
}

// Other returns the participant that is not userID, or "" when the thread
// has no second identity.
func (t *Thread) Other(userID string) string {
	for _, p := range t.Participants {
		if p != userID {
			return p
		}
	}
	return ""
}

func (t *Thread) Clone() *Thread {
	if t == nil {
		return nil
	}
	c := *t
	if t.LastMessage != nil {
		m := *t.LastMessage
		c.LastMessage = &m
	}
	return &c
}

// ThreadUpdate is published whenever a thread changes. Message is nil for
// changes that do not add one.
type ThreadUpdate struct {
	Thread  *Thread  `json:"thread"`
	Message *Message `json:"message,omitempty"`
}
