package service

import (
	"context"
	"errors"

	"github.com/basejump/basejump-go/internal/apperr"
	"github.com/basejump/basejump-go/internal/crypto"
	"github.com/basejump/basejump-go/internal/model"
	"github.com/basejump/basejump-go/internal/repository"
)

// UserService handles user lookup and creation.
type UserService struct {
	users UserStore
}

// NewUserService creates a new UserService.
func NewUserService(users UserStore) *UserService {
	return &UserService{users: users}
}

// Create registers a new user. The plaintext password is hashed before
// anything is persisted; a duplicate email fails with a BusinessLogic error
// whether detected by the lookup or by the unique index on insert.
func (s *UserService) Create(ctx context.Context, email, password string) (*model.User, error) {
	if email == "" {
		return nil, apperr.BusinessLogic("email is required")
	}
	if password == "" {
		return nil, apperr.BusinessLogic("password is required")
	}

	existing, err := s.users.GetByEmail(ctx, email)
	if err != nil && !errors.Is(err, repository.ErrUserNotFound) {
		return nil, err
	}
	if existing != nil {
		return nil, apperr.BusinessLogic("email already registered")
	}

	hash, err := crypto.HashPassword(password)
	if err != nil {
		return nil, err
	}

	user := &model.User{
		Email:        email,
		PasswordHash: hash,
		IsActive:     true,
	}

	if err := s.users.Create(ctx, user); err != nil {
		if errors.Is(err, repository.ErrDuplicateEmail) {
			return nil, apperr.BusinessLogic("email already registered")
		}
		return nil, err
	}

	return user, nil
}

// Get retrieves an active user by ID. Absent and inactive users are
// indistinguishable to the caller: both fail with NotFound.
func (s *UserService) Get(ctx context.Context, id int64) (*model.User, error) {
	user, err := s.users.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, apperr.NotFound("user not found")
		}
		return nil, err
	}

	if !user.IsActive {
		return nil, apperr.NotFound("user not found")
	}

	return user, nil
}
