//go:generate go run go.uber.org/mock/mockgen -source=realtime.go -destination=../mocks/mock_realtime.go -package=mocks
package services

import (
	"context"

	"campusride/internal/models"
	"campusride/internal/utils"
	"campusride/pkg/logger"
	"campusride/pkg/pubsub"
	"campusride/pkg/websocket"
)

// RoomMessenger is the slice of the websocket handler the realtime bridge
// needs.
type RoomMessenger interface {
	SendToRoom(roomID string, messageType string, data map[string]interface{})
	SendToUser(userID string, messageType string, data map[string]interface{})
}

// Realtime forwards change events from the bus to websocket clients. New
// ride requests go to the drivers room and other ride changes to the rides
// room. Event changes go to the events room; thread changes reach both
// participants only.
type Realtime struct {
	bus    pubsub.Subscriber
	hub    RoomMessenger
	logger *logger.Logger
}

func NewRealtime(bus pubsub.Subscriber, hub RoomMessenger, log *logger.Logger) *Realtime {
	return &Realtime{bus: bus, hub: hub, logger: log}
}

// Run forwards events until ctx is done or the bus closes.
func (r *Realtime) Run(ctx context.Context) {
	events, cancel := r.bus.Subscribe(pubsub.Wildcard)
	defer cancel()

	r.logger.Info("Realtime bridge started")
	for {
		select {
		case <-ctx.Done():
			r.logger.Info("Realtime bridge stopped")
			return
		case event, ok := <-events:
			if !ok {
				r.logger.Info("Realtime bridge stopped: bus closed")
				return
			}
			r.forward(event)
		}
	}
}

func (r *Realtime) forward(event pubsub.Event) {
	data := map[string]interface{}{
		"topic":   event.Topic,
		"payload": event.Payload,
		"at":      event.At,
	}

	switch event.Topic {
	case utils.TopicRides:
		if event.Type == utils.EventRideRequested {
			r.hub.SendToRoom(websocket.RoomDrivers, event.Type, data)
			return
		}
		r.hub.SendToRoom(websocket.RoomRides, event.Type, data)
	case utils.TopicEvents:
		r.hub.SendToRoom(websocket.RoomEvents, event.Type, data)
	case utils.TopicChat:
		update, ok := event.Payload.(models.ThreadUpdate)
		if !ok || update.Thread == nil {
			r.logger.WithField("type", event.Type).Warn("Dropping chat event without thread")
			return
		}
		participants := update.Thread.Participants
		r.hub.SendToUser(participants[0], event.Type, data)
		if participants[1] != participants[0] {
			r.hub.SendToUser(participants[1], event.Type, data)
		}
	default:
		r.logger.WithField("topic", event.Topic).Debug("No realtime route for topic")
	}
}
