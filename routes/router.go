package routes

import (
	"net/http"

	handlers "campusride/internal/handlers/shared"
	"campusride/internal/middleware"
	"campusride/pkg/logger"

	"github.com/gin-gonic/gin"
)

type Handlers struct {
	Ride      *handlers.RideHandler
	Chat      *handlers.ChatHandler
	Event     *handlers.EventHandler
	Dashboard *handlers.DashboardHandler
	WebSocket gin.HandlerFunc
}

type RouterOptions struct {
	AllowedOrigins []string
	WebSocketPath  string
	Version        string
}

// NewRouter wires middleware, the /api/v1 groups, the websocket endpoint and
// the health check.
func NewRouter(opts RouterOptions, h Handlers, log *logger.Logger) *gin.Engine {
	router := gin.New()

	// Global middleware
	router.Use(middleware.RecoveryMiddleware(log))
	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.LoggingMiddleware(log))
	router.Use(middleware.CORSMiddleware(opts.AllowedOrigins))

	// API routes
	v1 := router.Group("/api/v1")
	{
		SetupRideRoutes(v1, h.Ride)
		SetupChatRoutes(v1, h.Chat)
		SetupEventRoutes(v1, h.Event)
		SetupDashboardRoutes(v1, h.Dashboard)
	}

	if h.WebSocket != nil {
		path := opts.WebSocketPath
		if path == "" {
			path = "/ws"
		}
		router.GET(path, h.WebSocket)
	}

	// Health check
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "healthy",
			"version": opts.Version,
		})
	})

	return router
}
