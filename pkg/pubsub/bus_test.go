package pubsub

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBus_DeliversToTopicAndWildcard(t *testing.T) {
	req := require.New(t)
	bus := NewBus(4)

	rides, cancelRides := bus.Subscribe("rides")
	defer cancelRides()
	all, cancelAll := bus.Subscribe(Wildcard)
	defer cancelAll()

	bus.Publish(Event{Topic: "rides", Type: "ride_offered"})
	bus.Publish(Event{Topic: "chat", Type: "message_sent"})

	got := <-rides
	req.Equal("ride_offered", got.Type)
	req.False(got.At.IsZero())
	req.Len(rides, 0)

	req.Equal("ride_offered", (<-all).Type)
	req.Equal("message_sent", (<-all).Type)
}

func TestBus_FullSubscriberDropsWithoutBlocking(t *testing.T) {
	req := require.New(t)
	bus := NewBus(1)

	ch, cancel := bus.Subscribe("rides")
	defer cancel()

	bus.Publish(Event{Topic: "rides", Type: "first"})
	bus.Publish(Event{Topic: "rides", Type: "second"})

	req.Equal(int64(1), bus.Dropped())
	req.Equal("first", (<-ch).Type)
}

func TestBus_CancelClosesChannel(t *testing.T) {
	req := require.New(t)
	bus := NewBus(1)

	ch, cancel := bus.Subscribe("rides")
	req.Equal(1, bus.Subscribers())
	cancel()
	cancel()

	_, open := <-ch
	req.False(open)
	req.Equal(0, bus.Subscribers())

	bus.Publish(Event{Topic: "rides"})
}

func TestBus_Close(t *testing.T) {
	req := require.New(t)
	bus := NewBus(1)

	ch, cancel := bus.Subscribe(Wildcard)
	bus.Close()
	cancel()

	_, open := <-ch
	req.False(open)

	late, _ := bus.Subscribe("rides")
	_, open = <-late
	req.False(open)
}
