package services

import (
	"context"
	"testing"

	"campusride/internal/mocks"
	"campusride/internal/models"
	"campusride/internal/utils"
	"campusride/pkg/logger"
	"campusride/pkg/pubsub"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type matchingFixture struct {
	rides    *rideService
	chats    *chatService
	matching MatchingService
}

func newMatchingFixture(t *testing.T) *matchingFixture {
	ctrl := gomock.NewController(t)
	notifier := mocks.NewMockNotifier(ctrl)
	notifier.EXPECT().Notify(gomock.Any(), gomock.Any()).AnyTimes()

	bus := pubsub.NewBus(32)
	rides := newTestRideService(notifier, bus)
	chats := newTestChatService(notifier, bus)
	return &matchingFixture{
		rides:    rides,
		chats:    chats,
		matching: NewMatchingService(rides, chats, logger.NewNopLogger()),
	}
}

func TestMatchingService_StartRideChat(t *testing.T) {
	f := newMatchingFixture(t)
	ctx := context.Background()
	summary := models.RideSummary{ID: "ride-9", From: "Library", To: "Stadium"}

	t.Run("should open a thread and send the greeting", func(t *testing.T) {
		req := require.New(t)

		thread, err := f.matching.StartRideChat(ctx, "alice", "bob", summary)

		req.NoError(err)
		req.True(thread.IsBetween("alice", "bob"))
		req.Equal("Hi! I'm interested in your ride from Library to Stadium.", thread.LastMessage.Content)
		req.Equal("alice", thread.LastMessage.SenderID)
		req.Equal(1, thread.UnreadCount)
	})

	t.Run("should reuse the existing thread on a second greeting", func(t *testing.T) {
		req := require.New(t)

		thread, err := f.matching.StartRideChat(ctx, "bob", "alice", summary)
		req.NoError(err)

		threads, err := f.chats.GetThreadsForUser(ctx, "alice")
		req.NoError(err)
		req.Len(threads, 1)
		req.Equal(threads[0].ID, thread.ID)

		messages, err := f.chats.GetMessages(ctx, thread.ID)
		req.NoError(err)
		req.Len(messages, 2)
	})

	t.Run("should require both ride endpoints", func(t *testing.T) {
		req := require.New(t)

		_, err := f.matching.StartRideChat(ctx, "alice", "bob", models.RideSummary{From: "Library"})

		req.ErrorIs(err, utils.ErrValidation)
	})
}

func TestMatchingService_AcceptAndGreet(t *testing.T) {
	ctx := context.Background()

	t.Run("should accept and greet the requester", func(t *testing.T) {
		req := require.New(t)
		f := newMatchingFixture(t)
		ride, err := f.rides.RequestRide(ctx, rideDetails())
		req.NoError(err)

		result, err := f.matching.AcceptAndGreet(ctx, ride.ID, "bob", true)

		req.NoError(err)
		req.NoError(result.ChatError)
		req.Equal(models.RideStatusAccepted, result.Ride.Status)
		req.NotNil(result.Thread)
		req.True(result.Thread.IsBetween("bob", "alice"))
		req.Equal("bob", result.Thread.LastMessage.SenderID)
		req.Equal("alice", result.Thread.LastMessage.ReceiverID)
		req.Equal("Hi! I'm your driver for the ride from North Campus to Downtown Station.", result.Thread.LastMessage.Content)
	})

	t.Run("should skip the greeting when not asked", func(t *testing.T) {
		req := require.New(t)
		f := newMatchingFixture(t)
		ride, err := f.rides.RequestRide(ctx, rideDetails())
		req.NoError(err)

		result, err := f.matching.AcceptAndGreet(ctx, ride.ID, "bob", false)

		req.NoError(err)
		req.Nil(result.Thread)
		threads, err := f.chats.GetThreadsForUser(ctx, "bob")
		req.NoError(err)
		req.Empty(threads)
	})

	t.Run("should skip the greeting when the ride names no requester", func(t *testing.T) {
		req := require.New(t)
		f := newMatchingFixture(t)
		details := rideDetails()
		details.Rider = ""
		ride, err := f.rides.RequestRide(ctx, details)
		req.NoError(err)

		result, err := f.matching.AcceptAndGreet(ctx, ride.ID, "bob", true)

		req.NoError(err)
		req.Nil(result.Thread)
		req.NoError(result.ChatError)
	})

	t.Run("should not start a chat when the accept fails", func(t *testing.T) {
		req := require.New(t)
		f := newMatchingFixture(t)

		_, err := f.matching.AcceptAndGreet(ctx, "missing", "bob", true)

		req.ErrorIs(err, utils.ErrNotFound)
		threads, err := f.chats.GetThreadsForUser(ctx, "bob")
		req.NoError(err)
		req.Empty(threads)
	})
}

func TestMatchingService_JoinAndGreet(t *testing.T) {
	ctx := context.Background()

	t.Run("should join and greet the driver", func(t *testing.T) {
		req := require.New(t)
		f := newMatchingFixture(t)
		details := rideDetails()
		details.Rider = ""
		details.Driver = "dave"
		ride, err := f.rides.OfferRide(ctx, details)
		req.NoError(err)

		result, err := f.matching.JoinAndGreet(ctx, ride.ID, "erin", true)

		req.NoError(err)
		req.Equal(2, result.Ride.Seats)
		req.True(result.Thread.IsBetween("erin", "dave"))
		req.Equal("erin", result.Thread.LastMessage.SenderID)
		req.Equal("Hi! I'm interested in your ride from North Campus to Downtown Station.", result.Thread.LastMessage.Content)
	})

	t.Run("should keep the join when the greeting fails", func(t *testing.T) {
		req := require.New(t)
		f := newMatchingFixture(t)
		details := rideDetails()
		details.Rider = ""
		details.Driver = "dave"
		ride, err := f.rides.OfferRide(ctx, details)
		req.NoError(err)

		// A ride whose summary cannot produce a greeting
		_, err = f.rides.rideRepo.Update(ctx, ride.ID, func(r *models.Ride) error {
			r.To = ""
			return nil
		})
		req.NoError(err)

		result, err := f.matching.JoinAndGreet(ctx, ride.ID, "erin", true)

		req.NoError(err)
		req.ErrorIs(result.ChatError, utils.ErrValidation)
		req.Nil(result.Thread)

		stored, err := f.rides.GetRide(ctx, ride.ID)
		req.NoError(err)
		req.Equal([]string{"erin"}, stored.Passengers)
	})
}
