package ports

import "context"

// VacationStats buckets vacation counts relative to the current date.
type VacationStats struct {
	Past    int64
	Ongoing int64
	Future  int64
}

// StatisticsService exposes aggregate reads for the admin dashboard. Every
// operation verifies the session token first and performs no query when the
// gate fails.
type StatisticsService interface {
	VacationStats(ctx context.Context, token string) (*VacationStats, error)
	TotalUsers(ctx context.Context, token string) (int64, error)
	TotalLikes(ctx context.Context, token string) (int64, error)
	LikesDistribution(ctx context.Context, token string) ([]DestinationLikes, error)
}
