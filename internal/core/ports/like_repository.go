package ports

import (
	"context"

	"github.com/travelist/vacations-system/internal/core/domain"
)

// DestinationLikes is one row of the likes-by-destination distribution.
type DestinationLikes struct {
	Destination string `json:"destination"`
	Likes       int64  `json:"likes"`
}

// LikeRepository defines persistence operations for likes.
type LikeRepository interface {
	ListAll(ctx context.Context) ([]domain.Like, error)
	// GetByUserAndVacation returns the like for the pair, or nil when the
	// pair has never been liked.
	GetByUserAndVacation(ctx context.Context, userID, vacationID int) (*domain.Like, error)
	Insert(ctx context.Context, like *domain.Like) error
	// DeleteByUserAndVacation removes the like for the pair. Returns rows
	// affected.
	DeleteByUserAndVacation(ctx context.Context, userID, vacationID int) (int64, error)
	CountTotal(ctx context.Context) (int64, error)
	// GetLikesCountByVacation groups likes by vacation. Vacations with no
	// likes are absent from the map.
	GetLikesCountByVacation(ctx context.Context) (map[int]int64, error)
	// GetLikesDistribution joins likes through vacations to countries and
	// returns like counts per destination name, most liked first.
	GetLikesDistribution(ctx context.Context) ([]DestinationLikes, error)
}
