package interfaces

import (
	"context"
	"travel_backoffice/internal/domain/entities"
)

// IUserRepository abstracts persistence for back-office users.

type IUserRepository interface {
	Create(ctx context.Context, u entities.User) (entities.User, error)
	GetByID(ctx context.Context, id string) (entities.User, error)
	GetByEmail(ctx context.Context, email string) (entities.User, error)
	FindAll(ctx context.Context) ([]entities.User, error)
	Update(ctx context.Context, u entities.User) (entities.User, error)
	Delete(ctx context.Context, id string) (bool, error)
}
