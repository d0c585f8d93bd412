// Package services contains server-side business logic. This file implements
// UserService, which handles account registration, login, and issuing JWTs.
package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/rwandev/busfleet/internal/common"
	"github.com/rwandev/busfleet/internal/server/auth"
	"github.com/rwandev/busfleet/internal/server/config"
	"github.com/rwandev/busfleet/internal/server/models"
	"github.com/rwandev/busfleet/internal/server/repositories/repomanager"
)

// UserService provides authentication-related operations:
// - Register: create accounts
// - Login: verify credentials and mint an access token
// - Authenticate: resolve a bearer token to a user id
type UserService struct {
	db                          *sql.DB
	repomanager                 repomanager.RepositoryManager
	jwtSecret                   []byte
	accessTokenValidityDuration time.Duration
	bcryptCost                  int
}

// NewUserService constructs a UserService using repositories and server config.
func NewUserService(db *sql.DB, m repomanager.RepositoryManager, cfg *config.Config) *UserService {
	return &UserService{
		db:                          db,
		repomanager:                 m,
		jwtSecret:                   []byte(cfg.SecretKey),
		accessTokenValidityDuration: cfg.AccessTokenValidityDuration,
		bcryptCost:                  cfg.BcryptCost,
	}
}

// Register creates a new account. A duplicate email surfaces as
// common.ErrAlreadyExists via the store's unique index.
func (s *UserService) Register(ctx context.Context, email string, password string) (*models.User, error) {
	const op = "register"

	hash, err := auth.HashPassword(password, s.bcryptCost)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, common.ErrInternal)
	}

	repo := s.repomanager.Users(s.db)
	u, err := repo.Create(ctx, &models.User{Email: email, PasswordHash: hash})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return u, nil
}

// Login verifies the credentials and, on success, returns a signed access
// token. Unknown email and wrong password both yield ErrInvalidCredentials.
func (s *UserService) Login(ctx context.Context, email string, password string) (string, error) {
	const op = "login"

	repo := s.repomanager.Users(s.db)
	user, err := repo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return "", common.ErrInvalidCredentials
		}
		return "", fmt.Errorf("%s: %w", op, err)
	}
	if !auth.CheckPassword(user.PasswordHash, password) {
		return "", common.ErrInvalidCredentials
	}

	token, err := auth.GenerateToken(user.ID, s.jwtSecret, s.accessTokenValidityDuration)
	if err != nil {
		return "", fmt.Errorf("%s: %w", op, common.ErrInternal)
	}
	return token, nil
}

// Authenticate resolves a bearer token to the user id encoded in it.
func (s *UserService) Authenticate(_ context.Context, token string) (string, error) {
	return auth.GetUserIDFromToken(token, s.jwtSecret)
}
