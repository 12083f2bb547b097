package handlers

import (
	"campusride/internal/models"
	"campusride/internal/services"
	"campusride/internal/utils"
	"campusride/internal/validators"

	"github.com/gin-gonic/gin"
)

type RideHandler struct {
	rideService     services.RideService
	matchingService services.MatchingService
}

func NewRideHandler(rideService services.RideService, matchingService services.MatchingService) *RideHandler {
	return &RideHandler{
		rideService:     rideService,
		matchingService: matchingService,
	}
}

// RequestRide stores a new ride request
func (h *RideHandler) RequestRide(c *gin.Context) {
	var details models.RideDetails
	if err := c.ShouldBindJSON(&details); err != nil {
		utils.BadRequestResponse(c, "Invalid request: "+err.Error())
		return
	}

	ride, err := h.rideService.RequestRide(c.Request.Context(), &details)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.CreatedResponse(c, "Ride requested successfully", ride)
}

// OfferRide stores a new ride offer
func (h *RideHandler) OfferRide(c *gin.Context) {
	var details models.RideDetails
	if err := c.ShouldBindJSON(&details); err != nil {
		utils.BadRequestResponse(c, "Invalid request: "+err.Error())
		return
	}

	ride, err := h.rideService.OfferRide(c.Request.Context(), &details)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.CreatedResponse(c, "Ride offered successfully", ride)
}

func (h *RideHandler) ListRequested(c *gin.Context) {
	rides, err := h.rideService.ListRequested(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.ListResponse(c, "Ride requests retrieved successfully", rides, len(rides))
}

func (h *RideHandler) ListOffered(c *gin.Context) {
	rides, err := h.rideService.ListOffered(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.ListResponse(c, "Ride offers retrieved successfully", rides, len(rides))
}

func (h *RideHandler) GetRide(c *gin.Context) {
	ride, err := h.rideService.GetRide(c.Request.Context(), c.Param("id"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.SuccessResponse(c, "Ride retrieved successfully", ride)
}

// GetRideHistory lists every ride the user drove, requested or joined
func (h *RideHandler) GetRideHistory(c *gin.Context) {
	rides, err := h.rideService.ListForUser(c.Request.Context(), c.Query("user"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.ListResponse(c, "Ride history retrieved successfully", rides, len(rides))
}

// AcceptRide accepts a requested ride and optionally greets the requester
func (h *RideHandler) AcceptRide(c *gin.Context) {
	var request validators.RideAcceptRequest
	if !bindAndValidate(c, &request) {
		return
	}

	result, err := h.matchingService.AcceptAndGreet(c.Request.Context(), c.Param("id"), request.Driver, request.Greet)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.SuccessResponse(c, "Ride accepted successfully", matchPayload(result))
}

// JoinRide joins an offered ride and optionally greets the driver
func (h *RideHandler) JoinRide(c *gin.Context) {
	var request validators.RideJoinRequest
	if !bindAndValidate(c, &request) {
		return
	}

	result, err := h.matchingService.JoinAndGreet(c.Request.Context(), c.Param("id"), request.Rider, request.Greet)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.SuccessResponse(c, "Ride joined successfully", matchPayload(result))
}

func matchPayload(result *services.MatchResult) gin.H {
	payload := gin.H{"ride": result.Ride}
	if result.Thread != nil {
		payload["thread"] = result.Thread
	}
	if result.ChatError != nil {
		payload["chat_error"] = result.ChatError.Error()
	}
	return payload
}
