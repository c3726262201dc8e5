package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/travelist/vacations-system/internal/core/domain"
	"github.com/travelist/vacations-system/internal/core/ports"
)

// StatisticsService serves aggregate reads for the admin dashboard. Every
// read passes the session gate before touching the store.
type StatisticsService struct {
	auth      ports.AuthService
	vacations ports.VacationRepository
	users     ports.UserRepository
	likes     ports.LikeRepository
	logger    zerolog.Logger
}

func NewStatisticsService(
	auth ports.AuthService,
	vacations ports.VacationRepository,
	users ports.UserRepository,
	likes ports.LikeRepository,
	logger zerolog.Logger,
) *StatisticsService {
	return &StatisticsService{
		auth:      auth,
		vacations: vacations,
		users:     users,
		likes:     likes,
		logger:    logger,
	}
}

// VacationStats buckets vacations into past, ongoing and future counts.
func (s *StatisticsService) VacationStats(ctx context.Context, token string) (*ports.VacationStats, error) {
	if !s.auth.IsAuthenticated(ctx, token) {
		return nil, domain.ErrUnauthorized
	}
	counts, err := s.vacations.CountByDateBucket(ctx)
	if err != nil {
		return nil, err
	}
	return &ports.VacationStats{
		Past:    counts.Past,
		Ongoing: counts.Ongoing,
		Future:  counts.Future,
	}, nil
}

func (s *StatisticsService) TotalUsers(ctx context.Context, token string) (int64, error) {
	if !s.auth.IsAuthenticated(ctx, token) {
		return 0, domain.ErrUnauthorized
	}
	return s.users.CountTotal(ctx)
}

func (s *StatisticsService) TotalLikes(ctx context.Context, token string) (int64, error) {
	if !s.auth.IsAuthenticated(ctx, token) {
		return 0, domain.ErrUnauthorized
	}
	return s.likes.CountTotal(ctx)
}

// LikesDistribution returns like counts grouped by destination country.
func (s *StatisticsService) LikesDistribution(ctx context.Context, token string) ([]ports.DestinationLikes, error) {
	if !s.auth.IsAuthenticated(ctx, token) {
		return nil, domain.ErrUnauthorized
	}
	return s.likes.GetLikesDistribution(ctx)
}
