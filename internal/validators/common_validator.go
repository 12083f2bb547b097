package validators

import (
	"fmt"
	"reflect"
	"strings"

	"campusride/internal/utils"

	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

func init() {
	validate = validator.New()

	// Report json field names so errors line up with request bodies
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return fld.Name
		}
		return name
	})

	// Register custom validation functions
	validate.RegisterValidation("ride_date", validateRideDate)
	validate.RegisterValidation("ride_time", validateRideTime)
	validate.RegisterValidation("identity", validateIdentity)
}

// ValidationError represents a field validation error
type ValidationError struct {
	Field   string `json:"field"`
	Tag     string `json:"tag"`
	Value   string `json:"value"`
	Message string `json:"message"`
}

type ValidationErrors []ValidationError

func (v ValidationErrors) Error() string {
	var messages []string
	for _, err := range v {
		messages = append(messages, fmt.Sprintf("%s: %s", err.Field, err.Message))
	}
	return strings.Join(messages, "; ")
}

// Map keys each message by field name.
func (v ValidationErrors) Map() map[string]string {
	m := make(map[string]string, len(v))
	for _, err := range v {
		m[err.Field] = err.Message
	}
	return m
}

// AsAppError wraps the failures into a ValidationFailure for resource, or
// returns nil when there are none.
func (v ValidationErrors) AsAppError(resource string) error {
	if len(v) == 0 {
		return nil
	}
	return utils.ValidationError(resource, v.Error(), v.Map())
}

// ValidateStruct validates a struct and returns detailed errors
func ValidateStruct(s interface{}) ValidationErrors {
	var validationErrors ValidationErrors

	err := validate.Struct(s)
	if err != nil {
		fieldErrors, ok := err.(validator.ValidationErrors)
		if !ok {
			return ValidationErrors{{Field: "body", Tag: "invalid", Message: err.Error()}}
		}
		for _, err := range fieldErrors {
			validationError := ValidationError{
				Field:   err.Field(),
				Tag:     err.Tag(),
				Value:   fmt.Sprintf("%v", err.Value()),
				Message: getErrorMessage(err),
			}
			validationErrors = append(validationErrors, validationError)
		}
	}

	return validationErrors
}

// ValidateVar validates a single value against a tag string.
func ValidateVar(field string, value interface{}, tag string) ValidationErrors {
	err := validate.Var(value, tag)
	if err == nil {
		return nil
	}
	var validationErrors ValidationErrors
	for _, fe := range err.(validator.ValidationErrors) {
		validationErrors = append(validationErrors, ValidationError{
			Field:   field,
			Tag:     fe.Tag(),
			Value:   fmt.Sprintf("%v", fe.Value()),
			Message: messageFor(field, fe.Tag(), fe.Param()),
		})
	}
	return validationErrors
}

func getErrorMessage(err validator.FieldError) string {
	return messageFor(err.Field(), err.Tag(), err.Param())
}

func messageFor(field, tag, param string) string {
	switch tag {
	case "required":
		return fmt.Sprintf("%s is required", field)
	case "min":
		return fmt.Sprintf("%s must be at least %s", field, param)
	case "max":
		return fmt.Sprintf("%s must be at most %s", field, param)
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", field, param)
	case "ride_date":
		return fmt.Sprintf("%s must be a date formatted as %s", field, utils.RideDateLayout)
	case "ride_time":
		return fmt.Sprintf("%s must be a time formatted as %s or %s", field, utils.RideTimeLayout, utils.RideTimeSecondsLayout)
	case "identity":
		return fmt.Sprintf("%s must be a non-blank name", field)
	default:
		return fmt.Sprintf("Validation failed for %s", field)
	}
}

// Custom validation functions
func validateRideDate(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true // Let required tag handle empty values
	}
	_, err := utils.ParseRideDate(value)
	return err == nil
}

func validateRideTime(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true
	}
	_, err := utils.ParseRideTime(value)
	return err == nil
}

func validateIdentity(fl validator.FieldLevel) bool {
	return strings.TrimSpace(fl.Field().String()) != ""
}
