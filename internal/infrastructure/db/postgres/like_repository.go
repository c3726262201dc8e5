package postgres

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/travelist/vacations-system/internal/core/domain"
	"github.com/travelist/vacations-system/internal/core/ports"
)

// LikeRepository implements ports.LikeRepository on Postgres.
type LikeRepository struct {
	db *gorm.DB
}

func NewLikeRepository(db *gorm.DB) *LikeRepository {
	return &LikeRepository{db: db}
}

func (r *LikeRepository) ListAll(ctx context.Context) ([]domain.Like, error) {
	var rows []likeRow
	if err := r.db.WithContext(ctx).Order("user_id, vacation_id").Find(&rows).Error; err != nil {
		return nil, err
	}
	likes := make([]domain.Like, len(rows))
	for i, row := range rows {
		likes[i] = domain.Like{UserID: row.UserID, VacationID: row.VacationID}
	}
	return likes, nil
}

func (r *LikeRepository) GetByUserAndVacation(ctx context.Context, userID, vacationID int) (*domain.Like, error) {
	var row likeRow
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND vacation_id = ?", userID, vacationID).
		First(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &domain.Like{UserID: row.UserID, VacationID: row.VacationID}, nil
}

func (r *LikeRepository) Insert(ctx context.Context, like *domain.Like) error {
	row := likeRow{UserID: like.UserID, VacationID: like.VacationID}
	return r.db.WithContext(ctx).Create(&row).Error
}

func (r *LikeRepository) DeleteByUserAndVacation(ctx context.Context, userID, vacationID int) (int64, error) {
	res := r.db.WithContext(ctx).
		Where("user_id = ? AND vacation_id = ?", userID, vacationID).
		Delete(&likeRow{})
	return res.RowsAffected, res.Error
}

func (r *LikeRepository) CountTotal(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&likeRow{}).Count(&count).Error
	return count, err
}

// GetLikesCountByVacation groups likes by vacation id. Vacations with no
// likes are simply absent from the result.
func (r *LikeRepository) GetLikesCountByVacation(ctx context.Context) (map[int]int64, error) {
	var rows []struct {
		VacationID int
		Count      int64
	}
	err := r.db.WithContext(ctx).Model(&likeRow{}).
		Select("vacation_id, COUNT(*) as count").
		Group("vacation_id").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	counts := make(map[int]int64, len(rows))
	for _, row := range rows {
		counts[row.VacationID] = row.Count
	}
	return counts, nil
}

// GetLikesDistribution joins likes through vacations to countries, returning
// like counts per destination name, most liked first.
func (r *LikeRepository) GetLikesDistribution(ctx context.Context) ([]ports.DestinationLikes, error) {
	var rows []ports.DestinationLikes
	err := r.db.WithContext(ctx).Model(&likeRow{}).
		Select("countries.name AS destination, COUNT(*) AS likes").
		Joins("JOIN vacations ON vacations.id = likes.vacation_id").
		Joins("JOIN countries ON countries.id = vacations.country_id").
		Group("countries.name").
		Order("likes DESC, countries.name ASC").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}
