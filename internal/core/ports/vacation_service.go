package ports

import (
	"context"
	"time"

	"github.com/travelist/vacations-system/internal/core/domain"
)

// AddVacationInput carries all data needed to create a vacation. Price is a
// pointer so that an absent price can be told apart from a legitimate zero.
// ImageName is optional; an empty string means absent.
type AddVacationInput struct {
	CountryID   int
	Description string
	StartDate   time.Time
	EndDate     time.Time
	Price       *float64
	ImageName   string
}

// UpdateVacationInput mirrors VacationUpdate at the use-case level: nil
// fields retain the stored value.
type UpdateVacationInput struct {
	CountryID   *int
	Description *string
	StartDate   *time.Time
	EndDate     *time.Time
	Price       *float64
	ImageName   *string
}

// VacationService defines use-case operations for vacations.
type VacationService interface {
	// List returns all vacations sorted by start date ascending.
	List(ctx context.Context) ([]domain.Vacation, error)
	Get(ctx context.Context, id int) (*domain.Vacation, error)
	Add(ctx context.Context, input AddVacationInput) (*domain.Vacation, error)
	Update(ctx context.Context, id int, input UpdateVacationInput) (*domain.Vacation, error)
	// Delete removes a vacation and, via the store's cascade, all its likes.
	Delete(ctx context.Context, id int) error
}
