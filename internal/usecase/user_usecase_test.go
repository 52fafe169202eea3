package usecase

import (
	"context"
	"errors"
	"testing"

	"travel_backoffice/internal/domain/entities"
	"travel_backoffice/internal/usecase/interfaces"
	mock_interfaces "travel_backoffice/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestUserUseCase_Create(t *testing.T) {
	t.Run("invalid input", func(t *testing.T) {
		uc := NewUserUseCase(nil, nil, nil)
		cases := []CreateUserInput{
			{Name: "", Email: "a@b.com", Password: "123456"},
			{Name: "Ana", Email: "  ", Password: "123456"},
			{Name: "Ana", Email: "a@b.com", Password: "123"},
		}
		for _, in := range cases {
			if _, err := uc.Create(context.Background(), in); !errors.Is(err, ErrInvalidUser) {
				t.Fatalf("expected ErrInvalidUser for %+v, got %v", in, err)
			}
		}
	})

	t.Run("email already in use", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIUserRepository(ctrl)
		uc := NewUserUseCase(repo, nil, nil)

		repo.EXPECT().GetByEmail(gomock.Any(), "ana@example.com").Return(entities.User{ID: "u-1"}, nil)

		_, err := uc.Create(context.Background(), CreateUserInput{Name: "Ana", Email: " Ana@Example.com ", Password: "123456"})
		if !errors.Is(err, ErrEmailAlreadyInUse) {
			t.Fatalf("expected ErrEmailAlreadyInUse, got %v", err)
		}
	})

	t.Run("create success stores hash", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIUserRepository(ctrl)
		hasher := mock_interfaces.NewMockIPasswordHasher(ctrl)
		uc := NewUserUseCase(repo, hasher, nil)

		repo.EXPECT().GetByEmail(gomock.Any(), "ana@example.com").Return(entities.User{}, nil)
		hasher.EXPECT().Hash("123456").Return("hashed", nil)
		repo.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.User{})).DoAndReturn(
			func(_ context.Context, u entities.User) (entities.User, error) {
				if u.ID == "" || u.PasswordHash != "hashed" || u.Email != "ana@example.com" || u.Name != "Ana" {
					t.Fatalf("unexpected user: %+v", u)
				}
				return u, nil
			},
		)

		res, err := uc.Create(context.Background(), CreateUserInput{Name: "Ana", Email: "ana@example.com", Password: "123456"})
		if err != nil || res.ID == "" {
			t.Fatalf("unexpected result: %+v %v", res, err)
		}
	})
}

func TestUserUseCase_Update(t *testing.T) {
	stored := entities.User{ID: "u-1", Name: "Ana", Email: "ana@example.com", PasswordHash: "old"}

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIUserRepository(ctrl)
		uc := NewUserUseCase(repo, nil, nil)
		repo.EXPECT().GetByID(gomock.Any(), "u-1").Return(entities.User{}, nil)

		if _, err := uc.Update(context.Background(), "u-1", UpdateUserInput{}); !errors.Is(err, ErrUserNotFound) {
			t.Fatalf("expected ErrUserNotFound, got %v", err)
		}
	})

	t.Run("email taken by another user", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIUserRepository(ctrl)
		uc := NewUserUseCase(repo, nil, nil)

		email := "bia@example.com"
		repo.EXPECT().GetByID(gomock.Any(), "u-1").Return(stored, nil)
		repo.EXPECT().GetByEmail(gomock.Any(), email).Return(entities.User{ID: "u-2"}, nil)

		if _, err := uc.Update(context.Background(), "u-1", UpdateUserInput{Email: &email}); !errors.Is(err, ErrEmailAlreadyInUse) {
			t.Fatalf("expected ErrEmailAlreadyInUse, got %v", err)
		}
	})

	t.Run("update name and password", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIUserRepository(ctrl)
		hasher := mock_interfaces.NewMockIPasswordHasher(ctrl)
		uc := NewUserUseCase(repo, hasher, nil)

		name, password := "Ana Maria", "novasenha"
		repo.EXPECT().GetByID(gomock.Any(), "u-1").Return(stored, nil)
		hasher.EXPECT().Hash(password).Return("new", nil)
		repo.EXPECT().Update(gomock.Any(), gomock.AssignableToTypeOf(entities.User{})).DoAndReturn(
			func(_ context.Context, u entities.User) (entities.User, error) {
				if u.Name != name || u.PasswordHash != "new" || u.Email != stored.Email || u.UpdatedAt.IsZero() {
					t.Fatalf("unexpected user: %+v", u)
				}
				return u, nil
			},
		)

		if _, err := uc.Update(context.Background(), "u-1", UpdateUserInput{Name: &name, Password: &password}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestUserUseCase_Delete(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := mock_interfaces.NewMockIUserRepository(ctrl)
	uc := NewUserUseCase(repo, nil, nil)

	if err := uc.Delete(context.Background(), ""); !errors.Is(err, ErrInvalidUserID) {
		t.Fatalf("expected ErrInvalidUserID, got %v", err)
	}

	repo.EXPECT().Delete(gomock.Any(), "u-1").Return(false, nil)
	if err := uc.Delete(context.Background(), "u-1"); !errors.Is(err, ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}

	repo.EXPECT().Delete(gomock.Any(), "u-1").Return(true, nil)
	if err := uc.Delete(context.Background(), "u-1"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestAuthUseCase_Login(t *testing.T) {
	stored := entities.User{ID: "u-1", Name: "Ana", Email: "ana@example.com", PasswordHash: "hash"}

	t.Run("unknown email", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIUserRepository(ctrl)
		uc := NewAuthUseCase(nil, repo, nil, nil, nil)
		repo.EXPECT().GetByEmail(gomock.Any(), "ana@example.com").Return(entities.User{}, nil)

		if _, err := uc.Login(context.Background(), "ana@example.com", "123456"); !errors.Is(err, ErrInvalidCredentials) {
			t.Fatalf("expected ErrInvalidCredentials, got %v", err)
		}
	})

	t.Run("wrong password", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIUserRepository(ctrl)
		hasher := mock_interfaces.NewMockIPasswordHasher(ctrl)
		uc := NewAuthUseCase(nil, repo, hasher, nil, nil)
		repo.EXPECT().GetByEmail(gomock.Any(), "ana@example.com").Return(stored, nil)
		hasher.EXPECT().Compare("hash", "errada").Return(errors.New("mismatch"))

		if _, err := uc.Login(context.Background(), "ana@example.com", "errada"); !errors.Is(err, ErrInvalidCredentials) {
			t.Fatalf("expected ErrInvalidCredentials, got %v", err)
		}
	})

	t.Run("success issues token", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIUserRepository(ctrl)
		hasher := mock_interfaces.NewMockIPasswordHasher(ctrl)
		tokens := mock_interfaces.NewMockITokenService(ctrl)
		uc := NewAuthUseCase(nil, repo, hasher, tokens, nil)
		repo.EXPECT().GetByEmail(gomock.Any(), "ana@example.com").Return(stored, nil)
		hasher.EXPECT().Compare("hash", "123456").Return(nil)
		tokens.EXPECT().Issue("u-1", "ana@example.com").Return("jwt", nil)

		res, err := uc.Login(context.Background(), " ANA@example.com", "123456")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.AccessToken != "jwt" || res.User.ID != "u-1" {
			t.Fatalf("unexpected result: %+v", res)
		}
	})
}

func TestAuthUseCase_Register(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := mock_interfaces.NewMockIUserRepository(ctrl)
	hasher := mock_interfaces.NewMockIPasswordHasher(ctrl)
	tokens := mock_interfaces.NewMockITokenService(ctrl)
	users := NewUserUseCase(repo, hasher, nil)
	uc := NewAuthUseCase(users, repo, hasher, tokens, nil)

	repo.EXPECT().GetByEmail(gomock.Any(), "ana@example.com").Return(entities.User{ID: "u-1"}, nil)
	if _, err := uc.Register(context.Background(), CreateUserInput{Name: "Ana", Email: "ana@example.com", Password: "123456"}); !errors.Is(err, ErrEmailAlreadyInUse) {
		t.Fatalf("expected ErrEmailAlreadyInUse, got %v", err)
	}

	repo.EXPECT().GetByEmail(gomock.Any(), "bia@example.com").Return(entities.User{}, nil)
	hasher.EXPECT().Hash("123456").Return("hash", nil)
	repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, u entities.User) (entities.User, error) { return u, nil },
	)
	tokens.EXPECT().Issue(gomock.Any(), "bia@example.com").Return("jwt", nil)

	res, err := uc.Register(context.Background(), CreateUserInput{Name: "Bia", Email: "bia@example.com", Password: "123456"})
	if err != nil || res.AccessToken != "jwt" || res.User.Name != "Bia" {
		t.Fatalf("unexpected result: %+v %v", res, err)
	}
}

func TestAuthUseCase_Authenticate(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	tokens := mock_interfaces.NewMockITokenService(ctrl)
	uc := NewAuthUseCase(nil, nil, nil, tokens, nil)

	if _, err := uc.Authenticate("  "); !errors.Is(err, interfaces.ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken, got %v", err)
	}

	tokens.EXPECT().Parse("jwt").Return(interfaces.TokenClaims{Subject: "u-1", Email: "ana@example.com"}, nil)
	claims, err := uc.Authenticate("jwt")
	if err != nil || claims.Subject != "u-1" {
		t.Fatalf("unexpected result: %+v %v", claims, err)
	}
}
