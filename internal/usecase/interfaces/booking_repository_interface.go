package interfaces

import (
	"context"
	"errors"
	"travel_backoffice/internal/domain/entities"
)

// ErrCapacityExceeded is returned by IBookingRepository.Create when the package
// already holds maxPeople bookings at write time.
var ErrCapacityExceeded = errors.New("travel package capacity exceeded")

// IBookingRepository abstracts persistence for Booking.
//
// Create must make the seat check and the insert atomic: two concurrent creates
// against the last seat can never both succeed. Delete releases the seat.

type IBookingRepository interface {
	Create(ctx context.Context, b entities.Booking, maxPeople int) (entities.Booking, error)
	GetByID(ctx context.Context, id string) (entities.Booking, error)
	FindAll(ctx context.Context) ([]entities.Booking, error)
	FindByTravelPackageID(ctx context.Context, travelPackageID string) ([]entities.Booking, error)
	CountByTravelPackageID(ctx context.Context, travelPackageID string) (int, error)
	FindByUserID(ctx context.Context, userID string) ([]entities.Booking, error)
	Delete(ctx context.Context, id string) (bool, error)
}
