package validators

import (
	"strconv"

	"campusride/internal/models"
	"campusride/internal/utils"
)

type CreateThreadRequest struct {
	UserA string `json:"user_a" validate:"required,identity,max=100"`
	UserB string `json:"user_b" validate:"required,identity,max=100"`
}

type SendMessageRequest struct {
	SenderID string `json:"sender_id" validate:"required,identity,max=100"`
	Content  string `json:"content" validate:"required,max=1000"`
}

type MarkReadRequest struct {
	ReaderID string `json:"reader_id" validate:"required,identity,max=100"`
}

type RideChatRequest struct {
	Self  string             `json:"self" validate:"required,identity,max=100"`
	Other string             `json:"other" validate:"required,identity,max=100"`
	Ride  models.RideSummary `json:"ride" validate:"required"`
}

func ValidateMessageContent(content string) ValidationErrors {
	return ValidateVar("content", content, "required,max="+strconv.Itoa(utils.MaxMessageLength))
}
