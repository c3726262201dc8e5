package postgres

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/travelist/vacations-system/internal/core/domain"
)

// UserRepository implements ports.UserRepository on Postgres.
type UserRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) ListAll(ctx context.Context) ([]domain.User, error) {
	var rows []userRow
	if err := r.db.WithContext(ctx).Order("id").Find(&rows).Error; err != nil {
		return nil, err
	}
	users := make([]domain.User, len(rows))
	for i, row := range rows {
		users[i] = *row.toDomain()
	}
	return users, nil
}

func (r *UserRepository) GetByID(ctx context.Context, id int) (*domain.User, error) {
	var row userRow
	err := r.db.WithContext(ctx).First(&row, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrUserNotFound
		}
		return nil, err
	}
	return row.toDomain(), nil
}

func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	var row userRow
	err := r.db.WithContext(ctx).Where("email = ?", email).First(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrUserNotFound
		}
		return nil, err
	}
	return row.toDomain(), nil
}

// FindByUsernameOrEmail tries a username match first and falls back to email,
// matching the statistics login contract.
func (r *UserRepository) FindByUsernameOrEmail(ctx context.Context, identifier string) (*domain.User, error) {
	var row userRow
	err := r.db.WithContext(ctx).Where("username = ?", identifier).First(&row).Error
	if err == nil {
		return row.toDomain(), nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	err = r.db.WithContext(ctx).Where("email = ?", identifier).First(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrUserNotFound
		}
		return nil, err
	}
	return row.toDomain(), nil
}

func (r *UserRepository) EmailExists(ctx context.Context, email string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&userRow{}).
		Where("LOWER(email) = LOWER(?)", email).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *UserRepository) Insert(ctx context.Context, user *domain.User) (int, error) {
	row := userToRow(user)
	row.ID = 0
	if err := r.db.WithContext(ctx).Create(&row).Error; err != nil {
		return 0, err
	}
	return row.ID, nil
}

func (r *UserRepository) UpdateByID(ctx context.Context, id int, user *domain.User) (int64, error) {
	row := userToRow(user)
	res := r.db.WithContext(ctx).Model(&userRow{}).Where("id = ?", id).Updates(map[string]any{
		"first_name": row.FirstName,
		"last_name":  row.LastName,
		"email":      row.Email,
		"password":   row.Password,
		"username":   row.Username,
		"role_id":    row.RoleID,
	})
	return res.RowsAffected, res.Error
}

func (r *UserRepository) DeleteByID(ctx context.Context, id int) (int64, error) {
	res := r.db.WithContext(ctx).Delete(&userRow{}, id)
	return res.RowsAffected, res.Error
}

func (r *UserRepository) CountTotal(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&userRow{}).Count(&count).Error
	return count, err
}
