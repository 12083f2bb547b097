package utils

import "time"

// Application Constants
const (
	AppName    = "CampusRide"
	AppVersion = "1.0.0"

	DefaultCurrency = "USD"

	// Ride Constants
	RideDateLayout        = "2006-01-02"
	RideTimeLayout        = "15:04"
	RideTimeSecondsLayout = "15:04:05"

	// Chat
	MaxMessageLength = 1000
	RiderGreeting    = "Hi! I'm interested in your ride from %s to %s."
	DriverGreeting   = "Hi! I'm your driver for the ride from %s to %s."

	// Realtime
	DefaultSubscriberBuffer = 64
	RelayPublishTimeout     = 2 * time.Second
)

// HTTP Status Messages
const (
	StatusSuccess = "success"
	StatusError   = "error"
)

// Error Messages
const (
	ErrInternalServer   = "internal server error"
	ErrValidationFailed = "validation failed"
	ErrReceiverNotFound = "receiver not found"
	ErrRideNotOpen      = "ride is not open for this action"
	ErrNoSeatsLeft      = "no seats left"
)

// Bus topics
const (
	TopicRides  = "rides"
	TopicChat   = "chat"
	TopicEvents = "events"
)

// Event Types
const (
	EventRideRequested = "ride_requested"
	EventRideOffered   = "ride_offered"
	EventRideAccepted  = "ride_accepted"
	EventRideJoined    = "ride_joined"
	EventThreadCreated = "thread_created"
	EventMessageSent   = "message_sent"
	EventThreadRead    = "thread_read"
	EventEventCreated  = "event_created"
	EventEventUpdated  = "event_updated"
	EventEventJoined   = "event_joined"
)
