package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"campusride/internal/mocks"
	"campusride/internal/utils"
	"campusride/pkg/logger"
	"campusride/pkg/pubsub"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestRedisRelay_Run(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	publisher := mocks.NewMockChannelPublisher(ctrl)
	bus := pubsub.NewBus(16)
	relay := NewRedisRelay(bus, publisher, "campusride:", logger.NewNopLogger())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go relay.Run(ctx)
	req.Eventually(func() bool { return bus.Subscribers() == 1 }, time.Second, 10*time.Millisecond)

	relayed := make(chan pubsub.Event, 2)
	gomock.InOrder(
		publisher.EXPECT().
			Publish(gomock.Any(), "campusride:rides", gomock.Any()).
			Return(errors.New("connection refused")),
		publisher.EXPECT().
			Publish(gomock.Any(), "campusride:chat", gomock.Any()).
			DoAndReturn(func(ctx context.Context, channel string, message interface{}) error {
				_, hasDeadline := ctx.Deadline()
				req.True(hasDeadline)
				relayed <- message.(pubsub.Event)
				return nil
			}),
	)

	// The first publish fails; the relay must keep going
	bus.Publish(pubsub.Event{Topic: utils.TopicRides, Type: utils.EventRideRequested})
	bus.Publish(pubsub.Event{Topic: utils.TopicChat, Type: utils.EventMessageSent})

	select {
	case ev := <-relayed:
		req.Equal(utils.EventMessageSent, ev.Type)
	case <-time.After(time.Second):
		t.Fatal("event was not relayed")
	}
	req.Equal("campusride:events", relay.Channel(utils.TopicEvents))
}
