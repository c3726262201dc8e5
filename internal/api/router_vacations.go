package api

import (
	"context"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"github.com/travelist/vacations-system/internal/api/handler"
	"github.com/travelist/vacations-system/internal/api/middleware"
	"github.com/travelist/vacations-system/internal/core/service"
	"github.com/travelist/vacations-system/internal/infrastructure/db/postgres"
	"github.com/travelist/vacations-system/internal/infrastructure/storage"
)

// NewVacationsRouter builds the Echo instance for the public vacations API.
func NewVacationsRouter(db *gorm.DB, images *storage.ImageStore, jwtSecret string, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echomiddleware.CORS())
	e.Use(echoprometheus.NewMiddleware("vacations"))

	// --- Dependencies ---
	userRepo := postgres.NewUserRepository(db)
	roleRepo := postgres.NewRoleRepository(db)
	countryRepo := postgres.NewCountryRepository(db)
	vacationRepo := postgres.NewVacationRepository(db)
	likeRepo := postgres.NewLikeRepository(db)

	userService := service.NewUserService(userRepo, roleRepo, likeRepo, log)
	vacationService := service.NewVacationService(vacationRepo, countryRepo, log)

	userHandler := handler.NewUserHandler(userService, roleRepo, jwtSecret, log)
	vacationHandler := handler.NewVacationHandler(vacationService, likeRepo, images, log)
	countryHandler := handler.NewCountryHandler(countryRepo)
	healthHandler := handler.NewHealthHandler(map[string]handler.HealthCheck{
		"postgres": pingPostgres(db),
	})

	authRequired := middleware.Auth(jwtSecret)
	adminOnly := middleware.RequireAdmin()

	// --- Routes ---
	apiGroup := e.Group("/api")

	apiGroup.GET("/health", healthHandler.Live)
	apiGroup.GET("/health/ready", healthHandler.Ready)

	apiGroup.POST("/users/register", userHandler.Register)
	apiGroup.POST("/users/login", userHandler.Login)
	apiGroup.POST("/users/:user_id/likes/:vacation_id", userHandler.Like, authRequired)
	apiGroup.DELETE("/users/:user_id/likes/:vacation_id", userHandler.Unlike, authRequired)

	apiGroup.GET("/vacations", vacationHandler.List)
	apiGroup.GET("/vacations/:id", vacationHandler.Get)
	apiGroup.POST("/vacations", vacationHandler.Create, authRequired, adminOnly)
	apiGroup.PUT("/vacations/:id", vacationHandler.Update, authRequired, adminOnly)
	apiGroup.DELETE("/vacations/:id", vacationHandler.Delete, authRequired, adminOnly)

	apiGroup.GET("/countries", countryHandler.List)

	e.GET("/metrics", echoprometheus.NewHandler())

	return e
}

// pingPostgres adapts the gorm handle to a readiness check.
func pingPostgres(db *gorm.DB) handler.HealthCheck {
	return func(ctx context.Context) error {
		sqlDB, err := db.DB()
		if err != nil {
			return err
		}
		return sqlDB.PingContext(ctx)
	}
}
