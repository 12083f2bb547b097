package memory

import (
	"context"
	"fmt"
	"sync"

	"campusride/internal/models"
	"campusride/internal/repositories/interfaces"
	"campusride/internal/utils"

	"github.com/samber/lo"
)

type eventRepository struct {
	mu     sync.RWMutex
	events []*models.Event
	index  map[string]int
}

func NewEventRepository() interfaces.EventRepository {
	return &eventRepository{
		index: make(map[string]int),
	}
}

func (r *eventRepository) Create(ctx context.Context, event *models.Event) error {
	if event.ID == "" {
		return fmt.Errorf("failed to create event: empty id")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.index[event.ID]; exists {
		return utils.ConflictError("event", event.ID, "event already exists")
	}
	r.index[event.ID] = len(r.events)
	r.events = append(r.events, event.Clone())
	return nil
}

func (r *eventRepository) GetByID(ctx context.Context, id string) (*models.Event, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	i, ok := r.index[id]
	if !ok {
		return nil, utils.NotFoundError("event", id)
	}
	return r.events[i].Clone(), nil
}

func (r *eventRepository) Update(ctx context.Context, id string, mutate interfaces.EventMutation) (*models.Event, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	i, ok := r.index[id]
	if !ok {
		return nil, utils.NotFoundError("event", id)
	}

	working := r.events[i].Clone()
	if err := mutate(working); err != nil {
		return nil, err
	}
	working.ID = id

	r.events[i] = working
	return working.Clone(), nil
}

func (r *eventRepository) List(ctx context.Context) ([]*models.Event, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return lo.Map(r.events, func(e *models.Event, _ int) *models.Event {
		return e.Clone()
	}), nil
}
