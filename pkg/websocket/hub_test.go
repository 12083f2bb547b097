package websocket

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func newTestClient(hub *Hub, user, role string) *Client {
	return NewClient(hub, nil, user, role)
}

func receive(t *testing.T, c *Client) Message {
	t.Helper()
	select {
	case data, ok := <-c.send:
		require.True(t, ok, "send channel closed")
		var msg Message
		require.NoError(t, json.Unmarshal(data, &msg))
		return msg
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for message")
	}
	return Message{}
}

func startHub(t *testing.T) *Hub {
	hub := NewHub(nil)
	go hub.Run()
	t.Cleanup(hub.Stop)
	return hub
}

func TestHub_RegisterSendsWelcomeAndJoinsRooms(t *testing.T) {
	req := require.New(t)
	hub := startHub(t)

	alice := newTestClient(hub, "Alice", "rider")
	hub.Register(alice)

	welcome := receive(t, alice)
	req.Equal("welcome", welcome.Type)
	req.Equal("Alice", welcome.UserID)
	req.Equal(1, hub.ClientCount())

	hub.mutex.RLock()
	defer hub.mutex.RUnlock()
	req.True(alice.rooms["user_Alice"])
	req.True(alice.rooms[RoomRides])
	req.True(alice.rooms[RoomEvents])
	req.False(alice.rooms[RoomDrivers])
}

func TestHub_SendToUserOnlyReachesThatUser(t *testing.T) {
	req := require.New(t)
	hub := startHub(t)

	alice := newTestClient(hub, "Alice", "rider")
	bob := newTestClient(hub, "Bob", "driver")
	hub.Register(alice)
	hub.Register(bob)
	receive(t, alice)
	receive(t, bob)

	hub.SendToUser("Bob", Message{Type: "notification", Data: map[string]interface{}{"title": "Ride Accepted"}})

	msg := receive(t, bob)
	req.Equal("notification", msg.Type)
	req.Equal("user_Bob", msg.RoomID)
	req.Equal("Ride Accepted", msg.Data["title"])
	req.Len(alice.send, 0)
}

func TestHub_SendToRoomAndLeave(t *testing.T) {
	req := require.New(t)
	hub := startHub(t)

	alice := newTestClient(hub, "Alice", "rider")
	hub.Register(alice)
	receive(t, alice)

	hub.SendToRoom(RoomRides, Message{Type: "ride_offered"})
	req.Equal("ride_offered", receive(t, alice).Type)

	hub.LeaveRoom(alice, RoomRides)
	hub.SendToRoom(RoomRides, Message{Type: "ride_offered"})
	req.Len(alice.send, 0)

	hub.SendToAll(Message{Type: "event_created"})
	req.Equal("event_created", receive(t, alice).Type)
}

func TestHub_DriversRoomReachesOnlyDrivers(t *testing.T) {
	req := require.New(t)
	hub := startHub(t)

	alice := newTestClient(hub, "Alice", "rider")
	bob := newTestClient(hub, "Bob", "driver")
	hub.Register(alice)
	hub.Register(bob)
	receive(t, alice)
	receive(t, bob)

	hub.SendToRoom(RoomDrivers, Message{Type: "ride_requested"})

	msg := receive(t, bob)
	req.Equal("ride_requested", msg.Type)
	req.Equal(RoomDrivers, msg.RoomID)
	req.Len(alice.send, 0)
}

func TestHub_EvictsSlowClient(t *testing.T) {
	req := require.New(t)
	hub := startHub(t)

	slow := newTestClient(hub, "Slow", "rider")
	hub.Register(slow)

	// Welcome plus sendBuffer-1 fills the buffer; the next send evicts
	for i := 0; i < sendBuffer; i++ {
		hub.SendToUser("Slow", Message{Type: "filler"})
	}

	req.Eventually(func() bool { return hub.ClientCount() == 0 }, time.Second, 10*time.Millisecond)
}

func TestHub_StopClosesClients(t *testing.T) {
	hub := NewHub(nil)
	go hub.Run()

	alice := newTestClient(hub, "Alice", "rider")
	hub.Register(alice)
	receive(t, alice)

	hub.Stop()
	require.Eventually(t, func() bool {
		select {
		case _, ok := <-alice.send:
			return !ok
		default:
			return false
		}
	}, time.Second, 10*time.Millisecond)
}
