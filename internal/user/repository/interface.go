package repository

import (
	"context"

	"inventory-tracker/internal/user"
)

//go:generate mockery --name Repository
type Repository interface {
	UserRepository
}

type UserRepository interface {
	// CreateUser returns ErrDuplicateKey when username or email is taken.
	CreateUser(ctx context.Context, opt CreateUserOptions) (user.User, error)
	// GetOneUser returns a zero User when nothing matches.
	GetOneUser(ctx context.Context, opt GetOneUserOptions) (user.User, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	ExistsByUsername(ctx context.Context, username string) (bool, error)
}
