package ports

import (
	"context"

	"github.com/travelist/vacations-system/internal/core/domain"
)

// RoleRepository defines persistence operations for the fixed role set.
type RoleRepository interface {
	ListAll(ctx context.Context) ([]domain.Role, error)
	GetByID(ctx context.Context, id int) (*domain.Role, error)
	// GetByName retrieves a role by its well-known name ("Admin", "User").
	GetByName(ctx context.Context, name string) (*domain.Role, error)
	Insert(ctx context.Context, role *domain.Role) (int, error)
	UpdateByID(ctx context.Context, id int, role *domain.Role) (int64, error)
	DeleteByID(ctx context.Context, id int) (int64, error)
}
