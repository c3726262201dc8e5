package postgres

import (
	"time"

	"github.com/travelist/vacations-system/internal/core/domain"
)

// Row types mirror the five tables. Domain types stay free of gorm tags; the
// repositories convert at the boundary.

type roleRow struct {
	ID   int    `gorm:"primaryKey"`
	Name string `gorm:"size:50;uniqueIndex;not null"`
}

func (roleRow) TableName() string { return "roles" }

type userRow struct {
	ID        int     `gorm:"primaryKey"`
	FirstName string  `gorm:"size:100;not null"`
	LastName  string  `gorm:"size:100;not null"`
	Email     string  `gorm:"size:255;uniqueIndex;not null"`
	Password  string  `gorm:"size:255;not null"`
	Username  *string `gorm:"size:100"`
	RoleID    int     `gorm:"not null"`
	Role      roleRow `gorm:"foreignKey:RoleID"`
}

func (userRow) TableName() string { return "users" }

type countryRow struct {
	ID   int    `gorm:"primaryKey"`
	Name string `gorm:"size:100;not null"`
}

func (countryRow) TableName() string { return "countries" }

type vacationRow struct {
	ID          int        `gorm:"primaryKey"`
	CountryID   int        `gorm:"not null"`
	Country     countryRow `gorm:"foreignKey:CountryID"`
	Description string     `gorm:"type:text;not null"`
	StartDate   time.Time  `gorm:"type:date;not null"`
	EndDate     time.Time  `gorm:"type:date;not null"`
	Price       float64    `gorm:"type:numeric(8,2);not null"`
	ImageName   *string    `gorm:"size:255"`
}

func (vacationRow) TableName() string { return "vacations" }

// likeRow carries a composite primary key; the vacation FK cascades so that
// deleting a vacation removes its likes in the store, not in application code.
type likeRow struct {
	UserID     int         `gorm:"primaryKey"`
	User       userRow     `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	VacationID int         `gorm:"primaryKey"`
	Vacation   vacationRow `gorm:"foreignKey:VacationID;constraint:OnDelete:CASCADE"`
}

func (likeRow) TableName() string { return "likes" }

// --- Row ↔ domain conversions ---

func (r roleRow) toDomain() *domain.Role {
	return &domain.Role{ID: r.ID, Name: r.Name}
}

func (r userRow) toDomain() *domain.User {
	return &domain.User{
		ID:           r.ID,
		FirstName:    r.FirstName,
		LastName:     r.LastName,
		Email:        r.Email,
		PasswordHash: r.Password,
		Username:     r.Username,
		RoleID:       r.RoleID,
	}
}

func userToRow(u *domain.User) userRow {
	return userRow{
		ID:        u.ID,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		Email:     u.Email,
		Password:  u.PasswordHash,
		Username:  u.Username,
		RoleID:    u.RoleID,
	}
}

func (r countryRow) toDomain() *domain.Country {
	return &domain.Country{ID: r.ID, Name: r.Name}
}

func (r vacationRow) toDomain() *domain.Vacation {
	return &domain.Vacation{
		ID:          r.ID,
		CountryID:   r.CountryID,
		Description: r.Description,
		StartDate:   r.StartDate,
		EndDate:     r.EndDate,
		Price:       r.Price,
		ImageName:   r.ImageName,
	}
}

func vacationToRow(v *domain.Vacation) vacationRow {
	return vacationRow{
		ID:          v.ID,
		CountryID:   v.CountryID,
		Description: v.Description,
		StartDate:   v.StartDate,
		EndDate:     v.EndDate,
		Price:       v.Price,
		ImageName:   v.ImageName,
	}
}
