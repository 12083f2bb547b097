package routes

import (
	handlers "campusride/internal/handlers/shared"

	"github.com/gin-gonic/gin"
)

// SetupRideRoutes sets up routes for ride requests and offers
func SetupRideRoutes(r *gin.RouterGroup, rideHandler *handlers.RideHandler) {
	rides := r.Group("/rides")
	{
		rides.POST("/requests", rideHandler.RequestRide)
		rides.GET("/requests", rideHandler.ListRequested)
		rides.POST("/offers", rideHandler.OfferRide)
		rides.GET("/offers", rideHandler.ListOffered)
		rides.GET("/history", rideHandler.GetRideHistory)

		rides.GET("/:id", rideHandler.GetRide)
		rides.POST("/:id/accept", rideHandler.AcceptRide)
		rides.POST("/:id/join", rideHandler.JoinRide)
	}
}

// SetupChatRoutes sets up routes for threads and messages
func SetupChatRoutes(r *gin.RouterGroup, chatHandler *handlers.ChatHandler) {
	chats := r.Group("/chats")
	{
		chats.POST("/threads", chatHandler.OpenThread)
		chats.GET("/threads", chatHandler.ListThreads)
		chats.GET("/threads/:id", chatHandler.GetThread)
		chats.GET("/threads/:id/messages", chatHandler.GetMessages)
		chats.POST("/threads/:id/messages", chatHandler.SendMessage)
		chats.POST("/threads/:id/read", chatHandler.MarkAsRead)

		chats.POST("/ride", chatHandler.StartRideChat)
	}
}

// SetupEventRoutes sets up routes for community events
func SetupEventRoutes(r *gin.RouterGroup, eventHandler *handlers.EventHandler) {
	events := r.Group("/events")
	{
		events.POST("", eventHandler.AddEvent)
		events.GET("", eventHandler.ListEvents)
		events.GET("/:id", eventHandler.GetEvent)
		events.PATCH("/:id", eventHandler.UpdateEvent)
		events.POST("/:id/join", eventHandler.JoinEvent)
	}
}

func SetupDashboardRoutes(r *gin.RouterGroup, dashboardHandler *handlers.DashboardHandler) {
	r.GET("/dashboard/:user", dashboardHandler.GetDashboard)
}
