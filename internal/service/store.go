package service

import (
	"context"

	"github.com/basejump/basejump-go/internal/model"
)

// UserStore is the persistence contract the services need. Implemented by
// repository.UserRepository; tests substitute an in-memory fake.
type UserStore interface {
	Create(ctx context.Context, user *model.User) error
	GetByEmail(ctx context.Context, email string) (*model.User, error)
	GetByID(ctx context.Context, id int64) (*model.User, error)
}
