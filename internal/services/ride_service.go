package services

import (
	"context"
	"fmt"
	"strings"

	"campusride/internal/models"
	"campusride/internal/repositories/interfaces"
	"campusride/internal/utils"
	"campusride/internal/validators"
	"campusride/pkg/logger"
	"campusride/pkg/pubsub"

	"github.com/google/uuid"
)

type RideService interface {
	// Creation
	RequestRide(ctx context.Context, details *models.RideDetails) (*models.Ride, error)
	OfferRide(ctx context.Context, details *models.RideDetails) (*models.Ride, error)

	// Queries
	GetRide(ctx context.Context, rideID string) (*models.Ride, error)
	ListOffered(ctx context.Context) ([]*models.Ride, error)
	ListRequested(ctx context.Context) ([]*models.Ride, error)
	ListForUser(ctx context.Context, name string) ([]*models.Ride, error)

	// Transitions
	AcceptRide(ctx context.Context, rideID, driver string) (*models.Ride, error)
	JoinRide(ctx context.Context, rideID, rider string) (*models.Ride, error)
}

type rideService struct {
	rideRepo  interfaces.RideRepository
	notifier  Notifier
	publisher pubsub.Publisher
	logger    *logger.Logger
	clock     utils.Clock
	newID     func() string
}

func NewRideService(
	rideRepo interfaces.RideRepository,
	notifier Notifier,
	publisher pubsub.Publisher,
	log *logger.Logger,
) RideService {
	return &rideService{
		rideRepo:  rideRepo,
		notifier:  notifier,
		publisher: publisher,
		logger:    log,
		clock:     utils.SystemClock,
		newID:     uuid.NewString,
	}
}

func (s *rideService) RequestRide(ctx context.Context, details *models.RideDetails) (*models.Ride, error) {
	ride, err := s.create(ctx, details, models.RideStatusRequested)
	if err != nil {
		return nil, err
	}

	s.acknowledge(ctx, ride.Rider, "Ride Requested", "Your ride request has been submitted.")
	s.publish(utils.EventRideRequested, ride)
	return ride, nil
}

func (s *rideService) OfferRide(ctx context.Context, details *models.RideDetails) (*models.Ride, error) {
	ride, err := s.create(ctx, details, models.RideStatusOffered)
	if err != nil {
		return nil, err
	}

	s.acknowledge(ctx, ride.Driver, "Ride Offered", "Your ride offer has been submitted.")
	s.publish(utils.EventRideOffered, ride)
	return ride, nil
}

func (s *rideService) create(ctx context.Context, details *models.RideDetails, status models.RideStatus) (*models.Ride, error) {
	if details == nil {
		return nil, utils.ValidationError("ride", "ride details are required", nil)
	}
	if err := validators.ValidateRideDetails(details).AsAppError("ride"); err != nil {
		return nil, err
	}
	if err := validators.ValidateRideParties(details, status).AsAppError("ride"); err != nil {
		return nil, err
	}

	now := s.clock()
	ride := &models.Ride{
		ID:        s.newID(),
		From:      strings.TrimSpace(details.From),
		To:        strings.TrimSpace(details.To),
		Date:      details.Date,
		Time:      details.Time,
		Seats:     details.Seats,
		Driver:    strings.TrimSpace(details.Driver),
		Rider:     strings.TrimSpace(details.Rider),
		Status:    status,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.rideRepo.Create(ctx, ride); err != nil {
		s.logger.WithContext(ctx).WithError(err).Error("Failed to create ride")
		return nil, fmt.Errorf("failed to create ride: %w", err)
	}

	s.logger.WithContext(ctx).LogRideEvent(ride.ID, string(status), map[string]interface{}{
		"from":  ride.From,
		"to":    ride.To,
		"seats": ride.Seats,
	})
	return ride, nil
}

func (s *rideService) GetRide(ctx context.Context, rideID string) (*models.Ride, error) {
	return s.rideRepo.GetByID(ctx, rideID)
}

func (s *rideService) ListOffered(ctx context.Context) ([]*models.Ride, error) {
	return s.rideRepo.GetByStatus(ctx, models.RideStatusOffered)
}

func (s *rideService) ListRequested(ctx context.Context) ([]*models.Ride, error) {
	return s.rideRepo.GetByStatus(ctx, models.RideStatusRequested)
}

func (s *rideService) ListForUser(ctx context.Context, name string) ([]*models.Ride, error) {
	if err := validators.ValidateIdentity("user", name).AsAppError("ride"); err != nil {
		return nil, err
	}
	return s.rideRepo.GetByUser(ctx, strings.TrimSpace(name))
}

// AcceptRide assigns a driver to a requested ride. The first accept wins; a
// ride that is no longer requested or already has a driver is a conflict, so
// a driver is never replaced.
func (s *rideService) AcceptRide(ctx context.Context, rideID, driver string) (*models.Ride, error) {
	if err := validators.ValidateIdentity("driver", driver).AsAppError("ride"); err != nil {
		return nil, err
	}
	driver = strings.TrimSpace(driver)

	ride, err := s.rideRepo.Update(ctx, rideID, func(ride *models.Ride) error {
		if ride.Status != models.RideStatusRequested {
			return utils.ConflictError("ride", ride.ID, fmt.Sprintf("%s: status is %s", utils.ErrRideNotOpen, ride.Status))
		}
		if ride.Driver != "" {
			return utils.ConflictError("ride", ride.ID, "ride already has driver "+ride.Driver)
		}
		ride.Status = models.RideStatusAccepted
		ride.Driver = driver
		ride.UpdatedAt = s.clock()
		return nil
	})
	if err != nil {
		s.logger.WithContext(ctx).WithRideID(rideID).WithError(err).Warn("Failed to accept ride")
		return nil, err
	}

	s.logger.WithContext(ctx).LogRideEvent(ride.ID, utils.EventRideAccepted, map[string]interface{}{"driver": driver})
	s.acknowledge(ctx, driver, "Ride Accepted", "You have accepted the ride request.")
	s.publish(utils.EventRideAccepted, ride)
	return ride, nil
}

// JoinRide adds a rider to an offered ride and takes one seat. Seats never
// go below zero. Rider keeps the most recent joiner; Passengers keeps all of
// them.
func (s *rideService) JoinRide(ctx context.Context, rideID, rider string) (*models.Ride, error) {
	if err := validators.ValidateIdentity("rider", rider).AsAppError("ride"); err != nil {
		return nil, err
	}
	rider = strings.TrimSpace(rider)

	ride, err := s.rideRepo.Update(ctx, rideID, func(ride *models.Ride) error {
		switch {
		case ride.Status != models.RideStatusOffered:
			return utils.ConflictError("ride", ride.ID, fmt.Sprintf("%s: status is %s", utils.ErrRideNotOpen, ride.Status))
		case ride.Seats <= 0:
			return utils.ConflictError("ride", ride.ID, utils.ErrNoSeatsLeft)
		case ride.Driver != "" && ride.Driver == rider:
			return utils.ConflictError("ride", ride.ID, "driver cannot join their own ride")
		case ride.HasPassenger(rider):
			return utils.ConflictError("ride", ride.ID, rider+" already joined this ride")
		}
		ride.Rider = rider
		ride.Passengers = append(ride.Passengers, rider)
		ride.Seats--
		ride.UpdatedAt = s.clock()
		return nil
	})
	if err != nil {
		s.logger.WithContext(ctx).WithRideID(rideID).WithError(err).Warn("Failed to join ride")
		return nil, err
	}

	s.logger.WithContext(ctx).LogRideEvent(ride.ID, utils.EventRideJoined, map[string]interface{}{
		"rider":      rider,
		"seats_left": ride.Seats,
		"passengers": len(ride.Passengers),
	})
	s.acknowledge(ctx, rider, "Ride Joined", "You have joined the ride.")
	s.publish(utils.EventRideJoined, ride)
	return ride, nil
}

func (s *rideService) acknowledge(ctx context.Context, user, title, description string) {
	s.notifier.Notify(ctx, models.Notification{
		UserID:      user,
		Kind:        models.NotificationKindRide,
		Title:       title,
		Description: description,
		CreatedAt:   s.clock(),
	})
}

func (s *rideService) publish(eventType string, ride *models.Ride) {
	s.publisher.Publish(pubsub.Event{
		Topic:   utils.TopicRides,
		Type:    eventType,
		Payload: ride.Clone(),
		At:      s.clock(),
	})
}
