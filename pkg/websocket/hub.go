package websocket

import (
	"encoding/json"
	"sync"
	"time"

	"campusride/pkg/logger"
)

const (
	RoomRides      = "rides"
	RoomEvents     = "events"
	RoomDrivers    = "drivers"
	userRoomPrefix = "user_"
)

type Hub struct {
	clients    map[*Client]bool
	register   chan *Client
	unregister chan *Client
	rooms      map[string]map[*Client]bool
	mutex      sync.RWMutex
	logger     *logger.Logger
	done       chan struct{}
	stopOnce   sync.Once
}

type Message struct {
	Type      string                 `json:"type"`
	RoomID    string                 `json:"room_id,omitempty"`
	UserID    string                 `json:"user_id,omitempty"`
	Timestamp int64                  `json:"timestamp"`
	Data      map[string]interface{} `json:"data"`
}

func NewHub(log *logger.Logger) *Hub {
	if log == nil {
		log = logger.NewNopLogger()
	}
	return &Hub{
		clients:    make(map[*Client]bool),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		rooms:      make(map[string]map[*Client]bool),
		logger:     log,
		done:       make(chan struct{}),
	}
}

func (h *Hub) Run() {
	for {
		select {
		case client := <-h.register:
			h.registerClient(client)

		case client := <-h.unregister:
			h.unregisterClient(client)

		case <-h.done:
			h.closeAll()
			return
		}
	}
}

// Stop ends Run and closes every client connection.
func (h *Hub) Stop() {
	h.stopOnce.Do(func() { close(h.done) })
}

func (h *Hub) Register(client *Client) {
	select {
	case h.register <- client:
	case <-h.done:
	}
}

func (h *Hub) registerClient(client *Client) {
	h.mutex.Lock()
	defer h.mutex.Unlock()

	h.clients[client] = true
	h.logger.WithUser(client.UserID).Debug("Client registered")

	// Join user to their personal room and the shared feeds
	h.joinRoom(client, userRoomPrefix+client.UserID)
	h.joinRoom(client, RoomRides)
	h.joinRoom(client, RoomEvents)

	if client.UserType == "driver" {
		h.joinRoom(client, RoomDrivers)
	}

	welcomeMsg := Message{
		Type:      "welcome",
		UserID:    client.UserID,
		Timestamp: getCurrentTimestamp(),
		Data: map[string]interface{}{
			"message": "Connected successfully",
		},
	}

	h.sendToClient(client, welcomeMsg)
}

func (h *Hub) unregisterClient(client *Client) {
	h.mutex.Lock()
	defer h.mutex.Unlock()
	h.removeClient(client)
}

// removeClient must be called with the write lock held.
func (h *Hub) removeClient(client *Client) {
	if _, ok := h.clients[client]; !ok {
		return
	}
	delete(h.clients, client)
	close(client.send)

	for roomID, room := range h.rooms {
		if _, exists := room[client]; exists {
			delete(room, client)
			if len(room) == 0 {
				delete(h.rooms, roomID)
			}
		}
	}

	h.logger.WithUser(client.UserID).Debug("Client unregistered")
}

func (h *Hub) closeAll() {
	h.mutex.Lock()
	defer h.mutex.Unlock()
	for client := range h.clients {
		h.removeClient(client)
	}
}

func (h *Hub) SendToAll(message Message) {
	data, _ := json.Marshal(message)

	h.mutex.RLock()
	var slow []*Client
	for client := range h.clients {
		select {
		case client.send <- data:
		default:
			slow = append(slow, client)
		}
	}
	h.mutex.RUnlock()

	h.evict(slow)
}

func (h *Hub) SendToRoom(roomID string, message Message) {
	if message.RoomID == "" {
		message.RoomID = roomID
	}
	data, _ := json.Marshal(message)

	h.mutex.RLock()
	var slow []*Client
	for client := range h.rooms[roomID] {
		select {
		case client.send <- data:
		default:
			slow = append(slow, client)
		}
	}
	h.mutex.RUnlock()

	h.evict(slow)
}

// evict drops clients whose send buffer is full.
func (h *Hub) evict(clients []*Client) {
	if len(clients) == 0 {
		return
	}
	h.mutex.Lock()
	defer h.mutex.Unlock()
	for _, client := range clients {
		h.removeClient(client)
	}
}

// sendToClient must be called with the write lock held.
func (h *Hub) sendToClient(client *Client, message Message) {
	data, _ := json.Marshal(message)
	select {
	case client.send <- data:
	default:
		h.removeClient(client)
	}
}

func (h *Hub) SendToUser(userID string, message Message) {
	h.SendToRoom(userRoomPrefix+userID, message)
}

func (h *Hub) joinRoom(client *Client, roomID string) {
	if h.rooms[roomID] == nil {
		h.rooms[roomID] = make(map[*Client]bool)
	}
	h.rooms[roomID][client] = true
	client.rooms[roomID] = true
}

func (h *Hub) JoinRoom(client *Client, roomID string) {
	h.mutex.Lock()
	defer h.mutex.Unlock()
	if _, ok := h.clients[client]; ok {
		h.joinRoom(client, roomID)
	}
}

func (h *Hub) LeaveRoom(client *Client, roomID string) {
	h.mutex.Lock()
	defer h.mutex.Unlock()

	if room, exists := h.rooms[roomID]; exists {
		delete(room, client)
		delete(client.rooms, roomID)

		if len(room) == 0 {
			delete(h.rooms, roomID)
		}
	}
}

func (h *Hub) ClientCount() int {
	h.mutex.RLock()
	defer h.mutex.RUnlock()
	return len(h.clients)
}

func getCurrentTimestamp() int64 {
	return time.Now().Unix()
}
