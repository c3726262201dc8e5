package postgres

import (
	"fmt"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/travelist/vacations-system/internal/core/domain"
)

// Config captures the settings for establishing a Postgres connection.
type Config struct {
	Host     string
	Port     string
	User     string
	Password string
	Database string
	SSLMode  string
}

func (c Config) dsn() string {
	sslMode := c.SSLMode
	if sslMode == "" {
		sslMode = "disable"
	}
	return fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=%s TimeZone=UTC",
		c.Host, c.User, c.Password, c.Database, c.Port, sslMode)
}

// Connect opens the database, migrates the five tables and seeds the
// well-known roles.
func Connect(cfg Config) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(cfg.dsn()), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Warn),
		NowFunc: func() time.Time {
			return time.Now().UTC()
		},
	})
	if err != nil {
		return nil, fmt.Errorf("postgres open: %w", err)
	}

	if err := db.AutoMigrate(&roleRow{}, &userRow{}, &countryRow{}, &vacationRow{}, &likeRow{}); err != nil {
		return nil, fmt.Errorf("postgres migrate: %w", err)
	}
	if err := seedRoles(db); err != nil {
		return nil, fmt.Errorf("postgres seed roles: %w", err)
	}

	return db, nil
}

// seedRoles guarantees the Admin/User rows the authorization checks depend
// on. Existing rows are left untouched.
func seedRoles(db *gorm.DB) error {
	for _, name := range []string{domain.RoleAdmin, domain.RoleUser} {
		if err := db.Where(roleRow{Name: name}).FirstOrCreate(&roleRow{Name: name}).Error; err != nil {
			return err
		}
	}
	return nil
}
