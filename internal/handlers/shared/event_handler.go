package handlers

import (
	"campusride/internal/models"
	"campusride/internal/services"
	"campusride/internal/utils"
	"campusride/internal/validators"

	"github.com/gin-gonic/gin"
)

type EventHandler struct {
	eventService services.EventService
}

func NewEventHandler(eventService services.EventService) *EventHandler {
	return &EventHandler{eventService: eventService}
}

func (h *EventHandler) AddEvent(c *gin.Context) {
	var details models.EventDetails
	if err := c.ShouldBindJSON(&details); err != nil {
		utils.BadRequestResponse(c, "Invalid request: "+err.Error())
		return
	}

	event, err := h.eventService.AddEvent(c.Request.Context(), &details)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.CreatedResponse(c, "Event created successfully", event)
}

func (h *EventHandler) ListEvents(c *gin.Context) {
	events, err := h.eventService.ListEvents(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.ListResponse(c, "Events retrieved successfully", events, len(events))
}

func (h *EventHandler) GetEvent(c *gin.Context) {
	event, err := h.eventService.GetEvent(c.Request.Context(), c.Param("id"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.SuccessResponse(c, "Event retrieved successfully", event)
}

func (h *EventHandler) UpdateEvent(c *gin.Context) {
	var patch models.EventPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		utils.BadRequestResponse(c, "Invalid request: "+err.Error())
		return
	}

	event, err := h.eventService.UpdateEvent(c.Request.Context(), c.Param("id"), &patch)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.SuccessResponse(c, "Event updated successfully", event)
}

// JoinEvent counts the caller as a driver or rider. The optional ?user=
// addresses the acknowledgment.
func (h *EventHandler) JoinEvent(c *gin.Context) {
	var request validators.JoinEventRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		utils.BadRequestResponse(c, "Invalid request: "+err.Error())
		return
	}

	event, err := h.eventService.JoinEvent(c.Request.Context(), c.Param("id"), c.Query("user"), request.Role)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.SuccessResponse(c, "Joined event successfully", event)
}
