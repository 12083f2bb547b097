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

type rideRepository struct {
	mu    sync.RWMutex
	rides []*models.Ride
	index map[string]int
}

func NewRideRepository() interfaces.RideRepository {
	return &rideRepository{
		index: make(map[string]int),
	}
}

func (r *rideRepository) Create(ctx context.Context, ride *models.Ride) error {
	if ride.ID == "" {
		return fmt.Errorf("failed to create ride: empty id")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.index[ride.ID]; exists {
		return utils.ConflictError("ride", ride.ID, "ride already exists")
	}

	r.index[ride.ID] = len(r.rides)
	r.rides = append(r.rides, ride.Clone())
	return nil
}

func (r *rideRepository) GetByID(ctx context.Context, id string) (*models.Ride, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	i, ok := r.index[id]
	if !ok {
		return nil, utils.NotFoundError("ride", id)
	}
	return r.rides[i].Clone(), nil
}

func (r *rideRepository) Update(ctx context.Context, id string, mutate interfaces.RideMutation) (*models.Ride, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	i, ok := r.index[id]
	if !ok {
		return nil, utils.NotFoundError("ride", id)
	}

	// Mutate a copy so a rejected update leaves no trace
	working := r.rides[i].Clone()
	if err := mutate(working); err != nil {
		return nil, err
	}
	working.ID = id

	r.rides[i] = working
	return working.Clone(), nil
}

func (r *rideRepository) GetByStatus(ctx context.Context, status models.RideStatus) ([]*models.Ride, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	matched := lo.Filter(r.rides, func(ride *models.Ride, _ int) bool {
		return ride.Status == status
	})
	return cloneRides(matched), nil
}

func (r *rideRepository) GetByUser(ctx context.Context, name string) ([]*models.Ride, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	matched := lo.Filter(r.rides, func(ride *models.Ride, _ int) bool {
		return ride.Driver == name || ride.Rider == name || ride.HasPassenger(name)
	})
	return cloneRides(matched), nil
}

func (r *rideRepository) Count(ctx context.Context) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.rides), nil
}

func cloneRides(rides []*models.Ride) []*models.Ride {
	return lo.Map(rides, func(ride *models.Ride, _ int) *models.Ride {
		return ride.Clone()
	})
}
