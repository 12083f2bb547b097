package websocket

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/require"
)

func TestHandler_HandleWebSocket(t *testing.T) {
	gin.SetMode(gin.TestMode)
	req := require.New(t)

	handler := NewHandler(HandlerConfig{ReadBufferSize: 1024, WriteBufferSize: 1024, AllowedOrigins: []string{"*"}}, nil)
	defer handler.Close()

	router := gin.New()
	router.GET("/ws", handler.HandleWebSocket)
	server := httptest.NewServer(router)
	defer server.Close()

	url := "ws" + strings.TrimPrefix(server.URL, "http") + "/ws?user=Alice&role=rider"
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	req.NoError(err)
	defer conn.Close()

	var welcome Message
	conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	req.NoError(conn.ReadJSON(&welcome))
	req.Equal("welcome", welcome.Type)

	handler.SendToUser("Alice", "notification", map[string]interface{}{"title": "Ride Joined"})

	var note Message
	req.NoError(conn.ReadJSON(&note))
	req.Equal("notification", note.Type)
	req.Equal("Ride Joined", note.Data["title"])
}

func TestHandler_RejectsMissingUser(t *testing.T) {
	gin.SetMode(gin.TestMode)

	handler := NewHandler(HandlerConfig{}, nil)
	defer handler.Close()

	router := gin.New()
	router.GET("/ws", handler.HandleWebSocket)

	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodGet, "/ws", nil)
	router.ServeHTTP(w, r)

	require.Equal(t, http.StatusBadRequest, w.Code)
}
