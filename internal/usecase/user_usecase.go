package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"travel_backoffice/internal/domain/entities"
	"travel_backoffice/internal/usecase/interfaces"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

var (
	ErrUserNotFound       = errors.New("user not found")
	ErrInvalidUserID      = errors.New("invalid user id")
	ErrEmailAlreadyInUse  = errors.New("email already in use")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrInvalidUser        = errors.New("invalid user")
)

const minPasswordLength = 6

type CreateUserInput struct {
	Name     string
	Email    string
	Password string
}

// UpdateUserInput is a partial update: nil fields keep the stored value.
type UpdateUserInput struct {
	Name     *string
	Email    *string
	Password *string
}

type IUserUseCase interface {
	Create(ctx context.Context, in CreateUserInput) (entities.User, error)
	List(ctx context.Context) ([]entities.User, error)
	GetByID(ctx context.Context, id string) (entities.User, error)
	Update(ctx context.Context, id string, in UpdateUserInput) (entities.User, error)
	Delete(ctx context.Context, id string) error
}

type UserUseCase struct {
	repo   interfaces.IUserRepository
	hasher interfaces.IPasswordHasher
	logger *zap.Logger
}

var _ IUserUseCase = (*UserUseCase)(nil)

func NewUserUseCase(repo interfaces.IUserRepository, hasher interfaces.IPasswordHasher, logger *zap.Logger) *UserUseCase {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &UserUseCase{repo: repo, hasher: hasher, logger: logger}
}

func (u *UserUseCase) Create(ctx context.Context, in CreateUserInput) (entities.User, error) {
	name := strings.TrimSpace(in.Name)
	email := normalizeEmail(in.Email)
	if name == "" || email == "" {
		return entities.User{}, ErrInvalidUser
	}
	if len(in.Password) < minPasswordLength {
		return entities.User{}, ErrInvalidUser
	}

	if existing, err := u.repo.GetByEmail(ctx, email); err != nil {
		return entities.User{}, err
	} else if existing.ID != "" {
		return entities.User{}, ErrEmailAlreadyInUse
	}

	hash, err := u.hasher.Hash(in.Password)
	if err != nil {
		return entities.User{}, err
	}

	now := time.Now().UTC()
	created, err := u.repo.Create(ctx, entities.User{
		ID:           uuid.NewString(),
		Name:         name,
		Email:        email,
		PasswordHash: hash,
		CreatedAt:    now,
		UpdatedAt:    now,
	})
	if err != nil {
		u.logger.Error("[user][usecase] create failed", zap.String("email", email), zap.Error(err))
		return entities.User{}, err
	}

	u.logger.Info("[user][usecase] created", zap.String("user_id", created.ID))
	return created, nil
}

func (u *UserUseCase) List(ctx context.Context) ([]entities.User, error) {
	return u.repo.FindAll(ctx)
}

func (u *UserUseCase) GetByID(ctx context.Context, id string) (entities.User, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.User{}, ErrInvalidUserID
	}

	usr, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.User{}, err
	}
	if usr.ID == "" {
		return entities.User{}, ErrUserNotFound
	}
	return usr, nil
}

func (u *UserUseCase) Update(ctx context.Context, id string, in UpdateUserInput) (entities.User, error) {
	usr, err := u.GetByID(ctx, id)
	if err != nil {
		return entities.User{}, err
	}

	if in.Name != nil {
		name := strings.TrimSpace(*in.Name)
		if name == "" {
			return entities.User{}, ErrInvalidUser
		}
		usr.Name = name
	}

	if in.Email != nil {
		email := normalizeEmail(*in.Email)
		if email == "" {
			return entities.User{}, ErrInvalidUser
		}
		if email != usr.Email {
			existing, err := u.repo.GetByEmail(ctx, email)
			if err != nil {
				return entities.User{}, err
			}
			if existing.ID != "" && existing.ID != usr.ID {
				return entities.User{}, ErrEmailAlreadyInUse
			}
		}
		usr.Email = email
	}

	if in.Password != nil {
		if len(*in.Password) < minPasswordLength {
			return entities.User{}, ErrInvalidUser
		}
		hash, err := u.hasher.Hash(*in.Password)
		if err != nil {
			return entities.User{}, err
		}
		usr.PasswordHash = hash
	}

	usr.UpdatedAt = time.Now().UTC()
	updated, err := u.repo.Update(ctx, usr)
	if err != nil {
		u.logger.Error("[user][usecase] update failed", zap.String("user_id", usr.ID), zap.Error(err))
		return entities.User{}, err
	}
	if updated.ID == "" {
		return entities.User{}, ErrUserNotFound
	}
	return updated, nil
}

func (u *UserUseCase) Delete(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrInvalidUserID
	}

	deleted, err := u.repo.Delete(ctx, id)
	if err != nil {
		u.logger.Error("[user][usecase] delete failed", zap.String("user_id", id), zap.Error(err))
		return err
	}
	if !deleted {
		return ErrUserNotFound
	}
	return nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
