package interfaces

import (
	"context"
	"travel_backoffice/internal/domain/entities"
)

// ITravelPackageRepository abstracts persistence for TravelPackage.
//
// Not-found is signalled by a zero value with an empty ID, never by an error.
// FindByMonth returns the requested page already sorted, with Total counted over
// the whole filter.

type ITravelPackageRepository interface {
	Create(ctx context.Context, p entities.TravelPackage) (entities.TravelPackage, error)
	GetByID(ctx context.Context, id string) (entities.TravelPackage, error)
	FindAll(ctx context.Context) ([]entities.TravelPackage, error)
	FindByMonth(ctx context.Context, q entities.PackageQuery) (entities.PackagePage, error)
	Update(ctx context.Context, p entities.TravelPackage) (entities.TravelPackage, error)
	Delete(ctx context.Context, id string) (bool, error)
}
