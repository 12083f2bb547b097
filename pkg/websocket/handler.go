package websocket

import (
	"net/http"
	"strings"

	"campusride/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

type HandlerConfig struct {
	ReadBufferSize  int
	WriteBufferSize int
	AllowedOrigins  []string
}

type Handler struct {
	hub      *Hub
	upgrader websocket.Upgrader
	logger   *logger.Logger
}

// NewHandler starts a hub and returns the gin handler serving it.
func NewHandler(config HandlerConfig, log *logger.Logger) *Handler {
	if log == nil {
		log = logger.NewNopLogger()
	}
	hub := NewHub(log)
	go hub.Run()

	return &Handler{
		hub:      hub,
		upgrader: newUpgrader(config.ReadBufferSize, config.WriteBufferSize, config.AllowedOrigins),
		logger:   log,
	}
}

// HandleWebSocket upgrades the request. Identity comes from the query string
// (?user=<name>&role=<rider|driver|organizer>).
func (h *Handler) HandleWebSocket(c *gin.Context) {
	userID := strings.TrimSpace(c.Query("user"))
	if userID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "user is required"})
		return
	}
	userType := c.DefaultQuery("role", "rider")

	conn, err := h.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		h.logger.WithError(err).Warn("WebSocket upgrade failed")
		return
	}

	client := NewClient(h.hub, conn, userID, userType)
	h.hub.Register(client)

	go client.writePump()
	go client.readPump()
}

func (h *Handler) SendToUser(userID string, messageType string, data map[string]interface{}) {
	h.hub.SendToUser(userID, Message{
		Type:      messageType,
		UserID:    userID,
		Timestamp: getCurrentTimestamp(),
		Data:      data,
	})
}

func (h *Handler) SendToRoom(roomID string, messageType string, data map[string]interface{}) {
	h.hub.SendToRoom(roomID, Message{
		Type:      messageType,
		RoomID:    roomID,
		Timestamp: getCurrentTimestamp(),
		Data:      data,
	})
}

func (h *Handler) SendToAll(messageType string, data map[string]interface{}) {
	h.hub.SendToAll(Message{
		Type:      messageType,
		Timestamp: getCurrentTimestamp(),
		Data:      data,
	})
}

func (h *Handler) Close() {
	h.hub.Stop()
}
