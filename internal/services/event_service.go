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

type EventService interface {
	AddEvent(ctx context.Context, details *models.EventDetails) (*models.Event, error)
	UpdateEvent(ctx context.Context, eventID string, patch *models.EventPatch) (*models.Event, error)
	JoinEvent(ctx context.Context, eventID, user string, role models.UserRole) (*models.Event, error)
	GetEvent(ctx context.Context, eventID string) (*models.Event, error)
	ListEvents(ctx context.Context) ([]*models.Event, error)
}

type eventService struct {
	eventRepo interfaces.EventRepository
	notifier  Notifier
	publisher pubsub.Publisher
	logger    *logger.Logger
	clock     utils.Clock
	newID     func() string
}

func NewEventService(
	eventRepo interfaces.EventRepository,
	notifier Notifier,
	publisher pubsub.Publisher,
	log *logger.Logger,
) EventService {
	return &eventService{
		eventRepo: eventRepo,
		notifier:  notifier,
		publisher: publisher,
		logger:    log,
		clock:     utils.SystemClock,
		newID:     uuid.NewString,
	}
}

func (s *eventService) AddEvent(ctx context.Context, details *models.EventDetails) (*models.Event, error) {
	if details == nil {
		return nil, utils.ValidationError("event", "event details are required", nil)
	}
	if err := validators.ValidateEventDetails(details).AsAppError("event"); err != nil {
		return nil, err
	}

	now := s.clock()
	event := &models.Event{
		ID:          s.newID(),
		Title:       strings.TrimSpace(details.Title),
		Description: details.Description,
		Date:        details.Date,
		Time:        details.Time,
		Location:    details.Location,
		Type:        details.Type,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.eventRepo.Create(ctx, event); err != nil {
		s.logger.WithContext(ctx).WithError(err).Error("Failed to create event")
		return nil, fmt.Errorf("failed to create event: %w", err)
	}

	s.logger.WithContext(ctx).LogCommunityEvent(event.ID, utils.EventEventCreated, map[string]interface{}{
		"title": event.Title,
		"type":  event.Type,
	})
	s.acknowledge(ctx, "", "Event Created", event.Title+" has been added.")
	s.publish(utils.EventEventCreated, event)
	return event, nil
}

// UpdateEvent applies the non-nil fields of patch. Participant counts are
// never touched here.
func (s *eventService) UpdateEvent(ctx context.Context, eventID string, patch *models.EventPatch) (*models.Event, error) {
	if patch == nil {
		return nil, utils.ValidationError("event", "event patch is required", nil)
	}
	if err := validators.ValidateEventPatch(patch).AsAppError("event"); err != nil {
		return nil, err
	}

	event, err := s.eventRepo.Update(ctx, eventID, func(event *models.Event) error {
		if patch.Title != nil {
			event.Title = strings.TrimSpace(*patch.Title)
		}
		if patch.Description != nil {
			event.Description = *patch.Description
		}
		if patch.Date != nil {
			event.Date = *patch.Date
		}
		if patch.Time != nil {
			event.Time = *patch.Time
		}
		if patch.Location != nil {
			event.Location = *patch.Location
		}
		if patch.Type != nil {
			event.Type = *patch.Type
		}
		event.UpdatedAt = s.clock()
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.WithContext(ctx).LogCommunityEvent(event.ID, utils.EventEventUpdated, nil)
	s.publish(utils.EventEventUpdated, event)
	return event, nil
}

func (s *eventService) JoinEvent(ctx context.Context, eventID, user string, role models.UserRole) (*models.Event, error) {
	switch role {
	case models.RoleDriver, models.RoleRider:
	case models.RoleOrganizer:
		return nil, utils.ValidationError("event", "organizers cannot join events", map[string]string{"role": string(role)})
	default:
		return nil, utils.ValidationError("event", "unknown role "+string(role), map[string]string{"role": string(role)})
	}

	event, err := s.eventRepo.Update(ctx, eventID, func(event *models.Event) error {
		if role == models.RoleDriver {
			event.Participants.Drivers++
		} else {
			event.Participants.Riders++
		}
		event.UpdatedAt = s.clock()
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.WithContext(ctx).LogCommunityEvent(event.ID, utils.EventEventJoined, map[string]interface{}{
		"role":    role,
		"drivers": event.Participants.Drivers,
		"riders":  event.Participants.Riders,
	})
	s.acknowledge(ctx, strings.TrimSpace(user), "Joined Event", "You joined "+event.Title+" as a "+string(role)+".")
	s.publish(utils.EventEventJoined, event)
	return event, nil
}

func (s *eventService) GetEvent(ctx context.Context, eventID string) (*models.Event, error) {
	return s.eventRepo.GetByID(ctx, eventID)
}

func (s *eventService) ListEvents(ctx context.Context) ([]*models.Event, error) {
	return s.eventRepo.List(ctx)
}

func (s *eventService) acknowledge(ctx context.Context, user, title, description string) {
	s.notifier.Notify(ctx, models.Notification{
		UserID:      user,
		Kind:        models.NotificationKindEvent,
		Title:       title,
		Description: description,
		CreatedAt:   s.clock(),
	})
}

func (s *eventService) publish(eventType string, event *models.Event) {
	s.publisher.Publish(pubsub.Event{
		Topic:   utils.TopicEvents,
		Type:    eventType,
		Payload: event.Clone(),
		At:      s.clock(),
	})
}
