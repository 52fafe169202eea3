package usecase

import (
	"context"
	"strings"

	"travel_backoffice/internal/domain/entities"
	"travel_backoffice/internal/usecase/interfaces"

	"go.uber.org/zap"
)

// AuthResult is returned by both register and login.
type AuthResult struct {
	AccessToken string
	User        entities.User
}

type IAuthUseCase interface {
	Register(ctx context.Context, in CreateUserInput) (AuthResult, error)
	Login(ctx context.Context, email, password string) (AuthResult, error)
	Authenticate(token string) (interfaces.TokenClaims, error)
}

type AuthUseCase struct {
	users  IUserUseCase
	repo   interfaces.IUserRepository
	hasher interfaces.IPasswordHasher
	tokens interfaces.ITokenService
	logger *zap.Logger
}

var _ IAuthUseCase = (*AuthUseCase)(nil)

func NewAuthUseCase(
	users IUserUseCase,
	repo interfaces.IUserRepository,
	hasher interfaces.IPasswordHasher,
	tokens interfaces.ITokenService,
	logger *zap.Logger,
) *AuthUseCase {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &AuthUseCase{users: users, repo: repo, hasher: hasher, tokens: tokens, logger: logger}
}

// Register creates the account and signs the caller in right away.
func (u *AuthUseCase) Register(ctx context.Context, in CreateUserInput) (AuthResult, error) {
	usr, err := u.users.Create(ctx, in)
	if err != nil {
		return AuthResult{}, err
	}
	return u.issue(usr)
}

// Login never tells an unknown email from a wrong password.
func (u *AuthUseCase) Login(ctx context.Context, email, password string) (AuthResult, error) {
	email = normalizeEmail(email)
	if email == "" || password == "" {
		return AuthResult{}, ErrInvalidCredentials
	}

	usr, err := u.repo.GetByEmail(ctx, email)
	if err != nil {
		return AuthResult{}, err
	}
	if usr.ID == "" {
		u.logger.Info("[auth][usecase] login rejected", zap.String("reason", "unknown email"))
		return AuthResult{}, ErrInvalidCredentials
	}
	if err := u.hasher.Compare(usr.PasswordHash, password); err != nil {
		u.logger.Info("[auth][usecase] login rejected", zap.String("user_id", usr.ID), zap.String("reason", "password mismatch"))
		return AuthResult{}, ErrInvalidCredentials
	}
	return u.issue(usr)
}

func (u *AuthUseCase) Authenticate(token string) (interfaces.TokenClaims, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return interfaces.TokenClaims{}, interfaces.ErrInvalidToken
	}
	return u.tokens.Parse(token)
}

func (u *AuthUseCase) issue(usr entities.User) (AuthResult, error) {
	token, err := u.tokens.Issue(usr.ID, usr.Email)
	if err != nil {
		u.logger.Error("[auth][usecase] issue token failed", zap.String("user_id", usr.ID), zap.Error(err))
		return AuthResult{}, err
	}
	return AuthResult{AccessToken: token, User: usr}, nil
}
