package validators

import (
	"strings"

	"campusride/internal/models"
)

type RideAcceptRequest struct {
	Driver string `json:"driver" validate:"required,identity,max=100"`
	Greet  bool   `json:"greet"`
}

type RideJoinRequest struct {
	Rider string `json:"rider" validate:"required,identity,max=100"`
	Greet bool   `json:"greet"`
}

func ValidateRideDetails(details *models.RideDetails) ValidationErrors {
	errors := ValidateStruct(details)

	if strings.TrimSpace(details.From) != "" &&
		strings.EqualFold(strings.TrimSpace(details.From), strings.TrimSpace(details.To)) {
		errors = append(errors, ValidationError{
			Field:   "to",
			Tag:     "different",
			Value:   details.To,
			Message: "Pickup and dropoff locations must be different",
		})
	}

	return errors
}

// ValidateRideParties rejects the party a new ride cannot carry yet: a
// request has no driver until one accepts, an offer has no rider until one
// joins.
func ValidateRideParties(details *models.RideDetails, status models.RideStatus) ValidationErrors {
	var errors ValidationErrors
	switch status {
	case models.RideStatusRequested:
		if strings.TrimSpace(details.Driver) != "" {
			errors = append(errors, ValidationError{
				Field:   "driver",
				Tag:     "excluded",
				Value:   details.Driver,
				Message: "driver is assigned when the request is accepted",
			})
		}
	case models.RideStatusOffered:
		if strings.TrimSpace(details.Rider) != "" {
			errors = append(errors, ValidationError{
				Field:   "rider",
				Tag:     "excluded",
				Value:   details.Rider,
				Message: "rider is assigned when someone joins the offer",
			})
		}
	}
	return errors
}

// ValidateIdentity checks a display name used as driver, rider or chat
// participant.
func ValidateIdentity(field, name string) ValidationErrors {
	return ValidateVar(field, name, "required,identity,max=100")
}
