package validators

import (
	"campusride/internal/models"
)

type JoinEventRequest struct {
	Role models.UserRole `json:"role" validate:"required,oneof=rider driver organizer"`
}

func ValidateEventDetails(details *models.EventDetails) ValidationErrors {
	return ValidateStruct(details)
}

func ValidateEventPatch(patch *models.EventPatch) ValidationErrors {
	return ValidateStruct(patch)
}
