package services

import (
	"bytes"
	"context"
	"testing"
	"time"

	"campusride/internal/mocks"
	"campusride/internal/models"
	"campusride/pkg/logger"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestHubNotifier_Notify(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	hub := mocks.NewMockUserMessenger(ctrl)
	notifier := NewHubNotifier(hub)

	t.Run("should push to the addressed user", func(t *testing.T) {
		req := require.New(t)
		hub.EXPECT().
			SendToUser("alice", "notification", gomock.Any()).
			Do(func(_ string, _ string, data map[string]interface{}) {
				req.Equal("Ride Requested", data["title"])
				req.Equal(models.NotificationKindRide, data["kind"])
			})

		notifier.Notify(context.Background(), models.Notification{
			UserID: "alice",
			Kind:   models.NotificationKindRide,
			Title:  "Ride Requested",
		})
	})

	t.Run("should keep anonymous ride and chat acknowledgments off the wire", func(t *testing.T) {
		quietCtrl := gomock.NewController(t)
		defer quietCtrl.Finish()
		// No expectations: any frame fails the test
		notifier := NewHubNotifier(mocks.NewMockUserMessenger(quietCtrl))

		notifier.Notify(context.Background(), models.Notification{
			Kind:        models.NotificationKindRide,
			Title:       "Ride Requested",
			Description: "Your ride request has been submitted.",
		})
		notifier.Notify(context.Background(), models.Notification{Kind: models.NotificationKindChat, Title: "Message Sent"})
	})

	t.Run("should broadcast event notifications when no user is named", func(t *testing.T) {
		hub.EXPECT().SendToAll("notification", gomock.Any()).Times(1)

		notifier.Notify(context.Background(), models.Notification{Kind: models.NotificationKindEvent, Title: "Event Created"})
	})
}

func TestMultiNotifier_Notify(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	first := mocks.NewMockNotifier(ctrl)
	second := mocks.NewMockNotifier(ctrl)
	n := models.Notification{UserID: "bob", Title: "Ride Accepted", CreatedAt: time.Now()}
	first.EXPECT().Notify(gomock.Any(), n).Times(1)
	second.EXPECT().Notify(gomock.Any(), n).Times(1)

	var buf bytes.Buffer
	log := logger.NewNopLogger()
	log.SetOutput(&buf)
	log.SetLevel(logger.InfoLevel)

	MultiNotifier{first, second, NewLogNotifier(log)}.Notify(context.Background(), n)

	req.Contains(buf.String(), "Ride Accepted")
}
