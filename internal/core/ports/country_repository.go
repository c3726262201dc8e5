package ports

import (
	"context"

	"github.com/travelist/vacations-system/internal/core/domain"
)

// CountryRepository defines persistence operations for reference countries.
type CountryRepository interface {
	// ListAll returns all countries ordered by name.
	ListAll(ctx context.Context) ([]domain.Country, error)
	GetByID(ctx context.Context, id int) (*domain.Country, error)
	Insert(ctx context.Context, country *domain.Country) (int, error)
	UpdateByID(ctx context.Context, id int, country *domain.Country) (int64, error)
	DeleteByID(ctx context.Context, id int) (int64, error)
}
