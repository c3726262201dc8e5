package ports

import (
	"context"
	"time"

	"github.com/travelist/vacations-system/internal/core/domain"
)

// VacationUpdate carries the fields of a partial vacation update. Nil fields
// keep their stored value; a non-nil ImageName pointing at an empty string
// clears the stored image.
type VacationUpdate struct {
	CountryID   *int
	Description *string
	StartDate   *time.Time
	EndDate     *time.Time
	Price       *float64
	ImageName   *string
}

// DateBucketCounts groups vacations relative to the current date.
type DateBucketCounts struct {
	Past    int64
	Ongoing int64
	Future  int64
}

// VacationRepository defines persistence operations for vacations.
type VacationRepository interface {
	// ListAll returns all vacations ordered by start date ascending,
	// including past ones.
	ListAll(ctx context.Context) ([]domain.Vacation, error)
	GetByID(ctx context.Context, id int) (*domain.Vacation, error)
	Insert(ctx context.Context, v *domain.Vacation) (int, error)
	// UpdateByID applies only the fields present in update. When no fields
	// are set it affects zero rows, which is not an error.
	UpdateByID(ctx context.Context, id int, update VacationUpdate) (int64, error)
	// DeleteByID removes a vacation; the store cascades the delete to its
	// likes. Returns rows affected.
	DeleteByID(ctx context.Context, id int) (int64, error)
	// CountByDateBucket buckets vacations into past, ongoing and future
	// relative to the store's current date.
	CountByDateBucket(ctx context.Context) (DateBucketCounts, error)
}
