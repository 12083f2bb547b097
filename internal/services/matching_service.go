package services

import (
	"context"
	"fmt"

	"campusride/internal/models"
	"campusride/internal/utils"
	"campusride/internal/validators"
	"campusride/pkg/logger"
)

// MatchResult is the outcome of a ride transition followed by an optional
// greeting. ChatError is set when the ride changed but the chat could not be
// started; the ride change is not rolled back.
type MatchResult struct {
	Ride      *models.Ride   `json:"ride"`
	Thread    *models.Thread `json:"thread,omitempty"`
	ChatError error          `json:"-"`
}

type MatchingService interface {
	StartRideChat(ctx context.Context, self, other string, ride models.RideSummary) (*models.Thread, error)
	AcceptAndGreet(ctx context.Context, rideID, driver string, greet bool) (*MatchResult, error)
	JoinAndGreet(ctx context.Context, rideID, rider string, greet bool) (*MatchResult, error)
}

type matchingService struct {
	rides  RideService
	chats  ChatService
	logger *logger.Logger
}

func NewMatchingService(rides RideService, chats ChatService, log *logger.Logger) MatchingService {
	return &matchingService{
		rides:  rides,
		chats:  chats,
		logger: log,
	}
}

// StartRideChat opens (or reuses) the thread between self and other and
// sends the rider's greeting about ride.
func (s *matchingService) StartRideChat(ctx context.Context, self, other string, ride models.RideSummary) (*models.Thread, error) {
	return s.greet(ctx, self, other, ride, utils.RiderGreeting)
}

func (s *matchingService) greet(ctx context.Context, self, other string, ride models.RideSummary, format string) (*models.Thread, error) {
	if err := validators.ValidateStruct(&ride).AsAppError("ride"); err != nil {
		return nil, err
	}

	thread, err := s.chats.GetOrCreateThreadForUsers(ctx, self, other)
	if err != nil {
		return nil, err
	}

	greeting := fmt.Sprintf(format, ride.From, ride.To)
	if _, err := s.chats.SendMessage(ctx, thread.ID, self, greeting); err != nil {
		return nil, err
	}

	// Reload so the caller sees the greeting as the last message
	return s.chats.GetThread(ctx, thread.ID)
}

func (s *matchingService) AcceptAndGreet(ctx context.Context, rideID, driver string, greet bool) (*MatchResult, error) {
	ride, err := s.rides.AcceptRide(ctx, rideID, driver)
	if err != nil {
		return nil, err
	}

	result := &MatchResult{Ride: ride}
	if greet && ride.Rider != "" && ride.Rider != ride.Driver {
		result.Thread, result.ChatError = s.greet(ctx, ride.Driver, ride.Rider, ride.Summary(), utils.DriverGreeting)
		s.logChatFailure(ctx, ride.ID, result.ChatError)
	}
	return result, nil
}

func (s *matchingService) JoinAndGreet(ctx context.Context, rideID, rider string, greet bool) (*MatchResult, error) {
	ride, err := s.rides.JoinRide(ctx, rideID, rider)
	if err != nil {
		return nil, err
	}

	result := &MatchResult{Ride: ride}
	if greet && ride.Driver != "" {
		result.Thread, result.ChatError = s.greet(ctx, ride.Rider, ride.Driver, ride.Summary(), utils.RiderGreeting)
		s.logChatFailure(ctx, ride.ID, result.ChatError)
	}
	return result, nil
}

func (s *matchingService) logChatFailure(ctx context.Context, rideID string, err error) {
	if err == nil {
		return
	}
	s.logger.WithContext(ctx).WithRideID(rideID).WithError(err).Warn("Ride updated but greeting chat failed")
}
