package postgres

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/travelist/vacations-system/internal/core/domain"
)

// CountryRepository implements ports.CountryRepository on Postgres.
type CountryRepository struct {
	db *gorm.DB
}

func NewCountryRepository(db *gorm.DB) *CountryRepository {
	return &CountryRepository{db: db}
}

func (r *CountryRepository) ListAll(ctx context.Context) ([]domain.Country, error) {
	var rows []countryRow
	if err := r.db.WithContext(ctx).Order("name").Find(&rows).Error; err != nil {
		return nil, err
	}
	countries := make([]domain.Country, len(rows))
	for i, row := range rows {
		countries[i] = *row.toDomain()
	}
	return countries, nil
}

func (r *CountryRepository) GetByID(ctx context.Context, id int) (*domain.Country, error) {
	var row countryRow
	err := r.db.WithContext(ctx).First(&row, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrCountryNotFound
		}
		return nil, err
	}
	return row.toDomain(), nil
}

func (r *CountryRepository) Insert(ctx context.Context, country *domain.Country) (int, error) {
	row := countryRow{Name: country.Name}
	if err := r.db.WithContext(ctx).Create(&row).Error; err != nil {
		return 0, err
	}
	return row.ID, nil
}

func (r *CountryRepository) UpdateByID(ctx context.Context, id int, country *domain.Country) (int64, error) {
	res := r.db.WithContext(ctx).Model(&countryRow{}).Where("id = ?", id).Update("name", country.Name)
	return res.RowsAffected, res.Error
}

func (r *CountryRepository) DeleteByID(ctx context.Context, id int) (int64, error) {
	res := r.db.WithContext(ctx).Delete(&countryRow{}, id)
	return res.RowsAffected, res.Error
}
