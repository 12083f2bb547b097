package utils

import (
	"errors"
	"fmt"
)

// Error kinds. Match with errors.Is against any error returned by a service.
var (
	ErrNotFound   = errors.New("not found")
	ErrValidation = errors.New("validation failure")
	ErrConflict   = errors.New("conflict")
)

// AppError signals a failure kind together with the offending resource.
type AppError struct {
	Kind     error
	Resource string
	ID       string
	Message  string
	Details  map[string]string
}

func (e *AppError) Error() string {
	msg := e.Message
	if msg == "" {
		msg = e.Kind.Error()
	}
	if e.ID != "" {
		return fmt.Sprintf("%s %s: %s", e.Resource, e.ID, msg)
	}
	if e.Resource != "" {
		return fmt.Sprintf("%s: %s", e.Resource, msg)
	}
	return msg
}

func (e *AppError) Unwrap() error {
	return e.Kind
}

func NotFoundError(resource, id string) *AppError {
	return &AppError{Kind: ErrNotFound, Resource: resource, ID: id, Message: resource + " not found"}
}

func ConflictError(resource, id, message string) *AppError {
	return &AppError{Kind: ErrConflict, Resource: resource, ID: id, Message: message}
}

func ValidationError(resource, message string, details map[string]string) *AppError {
	return &AppError{Kind: ErrValidation, Resource: resource, Message: message, Details: details}
}

func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

func IsConflict(err error) bool {
	return errors.Is(err, ErrConflict)
}

func IsValidation(err error) bool {
	return errors.Is(err, ErrValidation)
}
