package api

import (
	"context"
	"time"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	goredis "github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"github.com/travelist/vacations-system/internal/api/handler"
	"github.com/travelist/vacations-system/internal/core/service"
	"github.com/travelist/vacations-system/internal/infrastructure/db/postgres"
	"github.com/travelist/vacations-system/internal/infrastructure/db/redis"
)

// NewStatisticsRouter builds the Echo instance for the admin statistics API.
func NewStatisticsRouter(db *gorm.DB, rdb *goredis.Client, sessionTTL time.Duration, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echomiddleware.CORS())
	e.Use(echoprometheus.NewMiddleware("statistics"))

	// --- Dependencies ---
	userRepo := postgres.NewUserRepository(db)
	roleRepo := postgres.NewRoleRepository(db)
	vacationRepo := postgres.NewVacationRepository(db)
	likeRepo := postgres.NewLikeRepository(db)
	sessions := redis.NewSessionStore(rdb, sessionTTL)

	authService := service.NewAuthService(userRepo, roleRepo, sessions, log)
	statsService := service.NewStatisticsService(authService, vacationRepo, userRepo, likeRepo, log)

	statsHandler := handler.NewStatisticsHandler(authService, statsService, log)
	healthHandler := handler.NewHealthHandler(map[string]handler.HealthCheck{
		"postgres": pingPostgres(db),
		"redis":    pingRedis(rdb),
	})

	// --- Routes ---
	e.GET("/health", healthHandler.Live)
	e.GET("/health/ready", healthHandler.Ready)

	e.POST("/login", statsHandler.Login)
	e.POST("/logout", statsHandler.Logout)

	e.GET("/vacations/stats", statsHandler.VacationStats)
	e.GET("/users/total", statsHandler.TotalUsers)
	e.GET("/likes/total", statsHandler.TotalLikes)
	e.GET("/likes/distribution", statsHandler.LikesDistribution)

	e.GET("/metrics", echoprometheus.NewHandler())

	return e
}

// pingRedis adapts the Redis client to a readiness check.
func pingRedis(rdb *goredis.Client) handler.HealthCheck {
	return func(ctx context.Context) error {
		return rdb.Ping(ctx).Err()
	}
}
