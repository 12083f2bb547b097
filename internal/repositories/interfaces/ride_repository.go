package interfaces

import (
	"context"

	"campusride/internal/models"
)

// RideMutation edits a ride in place. Returning an error aborts the update
// and leaves the stored ride untouched.
type RideMutation func(ride *models.Ride) error

type RideRepository interface {
	Create(ctx context.Context, ride *models.Ride) error
	GetByID(ctx context.Context, id string) (*models.Ride, error)

	// Update applies mutate atomically and returns the stored result.
	Update(ctx context.Context, id string, mutate RideMutation) (*models.Ride, error)

	// Queries return rides in insertion order
	GetByStatus(ctx context.Context, status models.RideStatus) ([]*models.Ride, error)
	GetByUser(ctx context.Context, name string) ([]*models.Ride, error)
	Count(ctx context.Context) (int, error)
}
