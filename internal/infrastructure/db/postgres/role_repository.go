package postgres

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/travelist/vacations-system/internal/core/domain"
)

// RoleRepository implements ports.RoleRepository on Postgres.
type RoleRepository struct {
	db *gorm.DB
}

func NewRoleRepository(db *gorm.DB) *RoleRepository {
	return &RoleRepository{db: db}
}

func (r *RoleRepository) ListAll(ctx context.Context) ([]domain.Role, error) {
	var rows []roleRow
	if err := r.db.WithContext(ctx).Order("id").Find(&rows).Error; err != nil {
		return nil, err
	}
	roles := make([]domain.Role, len(rows))
	for i, row := range rows {
		roles[i] = *row.toDomain()
	}
	return roles, nil
}

func (r *RoleRepository) GetByID(ctx context.Context, id int) (*domain.Role, error) {
	var row roleRow
	err := r.db.WithContext(ctx).First(&row, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrRoleNotFound
		}
		return nil, err
	}
	return row.toDomain(), nil
}

func (r *RoleRepository) GetByName(ctx context.Context, name string) (*domain.Role, error) {
	var row roleRow
	err := r.db.WithContext(ctx).Where("name = ?", name).First(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrRoleNotFound
		}
		return nil, err
	}
	return row.toDomain(), nil
}

func (r *RoleRepository) Insert(ctx context.Context, role *domain.Role) (int, error) {
	row := roleRow{Name: role.Name}
	if err := r.db.WithContext(ctx).Create(&row).Error; err != nil {
		return 0, err
	}
	return row.ID, nil
}

func (r *RoleRepository) UpdateByID(ctx context.Context, id int, role *domain.Role) (int64, error) {
	res := r.db.WithContext(ctx).Model(&roleRow{}).Where("id = ?", id).Update("name", role.Name)
	return res.RowsAffected, res.Error
}

func (r *RoleRepository) DeleteByID(ctx context.Context, id int) (int64, error) {
	res := r.db.WithContext(ctx).Delete(&roleRow{}, id)
	return res.RowsAffected, res.Error
}
