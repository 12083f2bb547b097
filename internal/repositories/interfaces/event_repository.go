package interfaces

import (
	"context"

	"campusride/internal/models"
)

type EventMutation func(event *models.Event) error

type EventRepository interface {
	Create(ctx context.Context, event *models.Event) error
	GetByID(ctx context.Context, id string) (*models.Event, error)
	Update(ctx context.Context, id string, mutate EventMutation) (*models.Event, error)
	List(ctx context.Context) ([]*models.Event, error)
}
