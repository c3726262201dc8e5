package ports

import (
	"context"

	"github.com/travelist/vacations-system/internal/core/domain"
)

// UserRepository defines persistence operations for users.
type UserRepository interface {
	ListAll(ctx context.Context) ([]domain.User, error)
	GetByID(ctx context.Context, id int) (*domain.User, error)
	// GetByEmail retrieves a user by exact email, including the password hash.
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	// FindByUsernameOrEmail tries a username match first, then an email match.
	FindByUsernameOrEmail(ctx context.Context, identifier string) (*domain.User, error)
	// EmailExists reports whether the email is already taken, case-insensitively.
	EmailExists(ctx context.Context, email string) (bool, error)
	// Insert persists a new user and returns its generated ID.
	Insert(ctx context.Context, user *domain.User) (int, error)
	// UpdateByID overwrites all mutable fields. Returns rows affected.
	UpdateByID(ctx context.Context, id int, user *domain.User) (int64, error)
	// DeleteByID removes a user. Returns rows affected.
	DeleteByID(ctx context.Context, id int) (int64, error)
	CountTotal(ctx context.Context) (int64, error)
}
