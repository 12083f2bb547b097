//go:generate go run go.uber.org/mock/mockgen -source=notifier.go -destination=../mocks/mock_notifier.go -package=mocks
package services

import (
	"context"

	"campusride/internal/models"
	"campusride/pkg/logger"
	"campusride/pkg/websocket"
)

// Notifier delivers transient acknowledgments. Delivery is best effort and
// never fails the operation that triggered it.
type Notifier interface {
	Notify(ctx context.Context, notification models.Notification)
}

type LogNotifier struct {
	logger *logger.Logger
}

func NewLogNotifier(log *logger.Logger) *LogNotifier {
	return &LogNotifier{logger: log}
}

func (n *LogNotifier) Notify(ctx context.Context, notification models.Notification) {
	n.logger.WithContext(ctx).WithFields(map[string]interface{}{
		"user":        notification.UserID,
		"kind":        notification.Kind,
		"title":       notification.Title,
		"description": notification.Description,
	}).Info("Notification")
}

// UserMessenger is the slice of the websocket handler a HubNotifier needs.
type UserMessenger interface {
	SendToUser(userID string, messageType string, data map[string]interface{})
	SendToAll(messageType string, data map[string]interface{})
}

// HubNotifier pushes notifications to connected browsers as "notification"
// frames. Only event notifications without a user are broadcast; ride and
// chat acknowledgments without a user stay in the log.
type HubNotifier struct {
	hub UserMessenger
}

func NewHubNotifier(hub UserMessenger) *HubNotifier {
	return &HubNotifier{hub: hub}
}

func (n *HubNotifier) Notify(ctx context.Context, notification models.Notification) {
	data := map[string]interface{}{
		"kind":        notification.Kind,
		"title":       notification.Title,
		"description": notification.Description,
		"created_at":  notification.CreatedAt,
	}
	if notification.UserID == "" {
		if notification.Kind == models.NotificationKindEvent {
			n.hub.SendToAll("notification", data)
		}
		return
	}
	n.hub.SendToUser(notification.UserID, "notification", data)
}

type MultiNotifier []Notifier

func (m MultiNotifier) Notify(ctx context.Context, notification models.Notification) {
	for _, n := range m {
		n.Notify(ctx, notification)
	}
}

var _ UserMessenger = (*websocket.Handler)(nil)
