package handlers

import (
	"campusride/internal/services"
	"campusride/internal/utils"
	"campusride/internal/validators"

	"github.com/gin-gonic/gin"
)

type ChatHandler struct {
	chatService     services.ChatService
	matchingService services.MatchingService
}

func NewChatHandler(chatService services.ChatService, matchingService services.MatchingService) *ChatHandler {
	return &ChatHandler{
		chatService:     chatService,
		matchingService: matchingService,
	}
}

// OpenThread returns the thread between two users, creating it if needed
func (h *ChatHandler) OpenThread(c *gin.Context) {
	var request validators.CreateThreadRequest
	if !bindAndValidate(c, &request) {
		return
	}

	thread, err := h.chatService.GetOrCreateThreadForUsers(c.Request.Context(), request.UserA, request.UserB)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.SuccessResponse(c, "Thread ready", thread)
}

func (h *ChatHandler) ListThreads(c *gin.Context) {
	threads, err := h.chatService.GetThreadsForUser(c.Request.Context(), c.Query("user"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.ListResponse(c, "Threads retrieved successfully", threads, len(threads))
}

func (h *ChatHandler) GetThread(c *gin.Context) {
	thread, err := h.chatService.GetThread(c.Request.Context(), c.Param("id"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.SuccessResponse(c, "Thread retrieved successfully", thread)
}

func (h *ChatHandler) GetMessages(c *gin.Context) {
	messages, err := h.chatService.GetMessages(c.Request.Context(), c.Param("id"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.ListResponse(c, "Messages retrieved successfully", messages, len(messages))
}

func (h *ChatHandler) SendMessage(c *gin.Context) {
	var request validators.SendMessageRequest
	if !bindAndValidate(c, &request) {
		return
	}

	message, err := h.chatService.SendMessage(c.Request.Context(), c.Param("id"), request.SenderID, request.Content)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.CreatedResponse(c, "Message sent successfully", message)
}

func (h *ChatHandler) MarkAsRead(c *gin.Context) {
	var request validators.MarkReadRequest
	if !bindAndValidate(c, &request) {
		return
	}

	thread, err := h.chatService.MarkThreadAsRead(c.Request.Context(), c.Param("id"), request.ReaderID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.SuccessResponse(c, "Thread marked as read", thread)
}

// StartRideChat opens a thread about a ride and sends the greeting
func (h *ChatHandler) StartRideChat(c *gin.Context) {
	var request validators.RideChatRequest
	if !bindAndValidate(c, &request) {
		return
	}

	thread, err := h.matchingService.StartRideChat(c.Request.Context(), request.Self, request.Other, request.Ride)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.SuccessResponse(c, "Ride chat started", thread)
}

// bindAndValidate decodes the JSON body into request and runs its validate
// tags. It writes the error response and returns false on failure.
func bindAndValidate(c *gin.Context, request interface{}) bool {
	if err := c.ShouldBindJSON(request); err != nil {
		utils.BadRequestResponse(c, "Invalid request: "+err.Error())
		return false
	}
	if errs := validators.ValidateStruct(request); len(errs) > 0 {
		utils.ValidationErrorResponse(c, errs.Map())
		return false
	}
	return true
}
