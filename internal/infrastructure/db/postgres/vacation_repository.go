package postgres

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/travelist/vacations-system/internal/core/domain"
	"github.com/travelist/vacations-system/internal/core/ports"
)

// VacationRepository implements ports.VacationRepository on Postgres.
type VacationRepository struct {
	db *gorm.DB
}

func NewVacationRepository(db *gorm.DB) *VacationRepository {
	return &VacationRepository{db: db}
}

func (r *VacationRepository) ListAll(ctx context.Context) ([]domain.Vacation, error) {
	var rows []vacationRow
	if err := r.db.WithContext(ctx).Order("start_date ASC").Find(&rows).Error; err != nil {
		return nil, err
	}
	vacations := make([]domain.Vacation, len(rows))
	for i, row := range rows {
		vacations[i] = *row.toDomain()
	}
	return vacations, nil
}

func (r *VacationRepository) GetByID(ctx context.Context, id int) (*domain.Vacation, error) {
	var row vacationRow
	err := r.db.WithContext(ctx).First(&row, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrVacationNotFound
		}
		return nil, err
	}
	return row.toDomain(), nil
}

func (r *VacationRepository) Insert(ctx context.Context, v *domain.Vacation) (int, error) {
	row := vacationToRow(v)
	row.ID = 0
	if err := r.db.WithContext(ctx).Create(&row).Error; err != nil {
		return 0, err
	}
	return row.ID, nil
}

// UpdateByID builds the SET clause from only the fields present in update.
// An update with no fields affects zero rows and is not an error.
func (r *VacationRepository) UpdateByID(ctx context.Context, id int, update ports.VacationUpdate) (int64, error) {
	values := make(map[string]any)
	if update.CountryID != nil {
		values["country_id"] = *update.CountryID
	}
	if update.Description != nil {
		values["description"] = *update.Description
	}
	if update.StartDate != nil {
		values["start_date"] = *update.StartDate
	}
	if update.EndDate != nil {
		values["end_date"] = *update.EndDate
	}
	if update.Price != nil {
		values["price"] = *update.Price
	}
	if update.ImageName != nil {
		if *update.ImageName == "" {
			values["image_name"] = nil
		} else {
			values["image_name"] = *update.ImageName
		}
	}
	if len(values) == 0 {
		return 0, nil
	}

	res := r.db.WithContext(ctx).Model(&vacationRow{}).Where("id = ?", id).Updates(values)
	return res.RowsAffected, res.Error
}

// DeleteByID removes the vacation row; the likes FK cascade removes its likes.
func (r *VacationRepository) DeleteByID(ctx context.Context, id int) (int64, error) {
	res := r.db.WithContext(ctx).Delete(&vacationRow{}, id)
	return res.RowsAffected, res.Error
}

// CountByDateBucket buckets vacations relative to the store's current date:
// past (ended), ongoing (spanning today) and future (not yet started).
func (r *VacationRepository) CountByDateBucket(ctx context.Context) (ports.DateBucketCounts, error) {
	var counts ports.DateBucketCounts

	model := func() *gorm.DB {
		return r.db.WithContext(ctx).Model(&vacationRow{})
	}
	if err := model().Where("end_date < CURRENT_DATE").Count(&counts.Past).Error; err != nil {
		return ports.DateBucketCounts{}, err
	}
	if err := model().Where("start_date <= CURRENT_DATE AND end_date >= CURRENT_DATE").Count(&counts.Ongoing).Error; err != nil {
		return ports.DateBucketCounts{}, err
	}
	if err := model().Where("start_date > CURRENT_DATE").Count(&counts.Future).Error; err != nil {
		return ports.DateBucketCounts{}, err
	}
	return counts, nil
}
