package handler

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/travelist/vacations-system/internal/api/metrics"
	"github.com/travelist/vacations-system/internal/core/ports"
)

// StatisticsHandler handles the admin statistics API: session login/logout
// and the aggregate reads behind it.
type StatisticsHandler struct {
	auth   ports.AuthService
	stats  ports.StatisticsService
	logger zerolog.Logger
}

func NewStatisticsHandler(auth ports.AuthService, stats ports.StatisticsService, logger zerolog.Logger) *StatisticsHandler {
	return &StatisticsHandler{auth: auth, stats: stats, logger: logger}
}

// --- Request / Response types ---

type statsLoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type statsLoginResponse struct {
	Token string       `json:"token"`
	User  userResponse `json:"user"`
}

type vacationStatsResponse struct {
	PastVacations    int64 `json:"pastVacations"`
	OngoingVacations int64 `json:"ongoingVacations"`
	FutureVacations  int64 `json:"futureVacations"`
}

type destinationLikesResponse struct {
	Destination string `json:"destination"`
	Likes       int64  `json:"likes"`
}

// Login handles POST /login. Only admins get a session token; valid
// credentials on a non-admin account are rejected with 403.
//
// @Summary      Admin login
// @Tags         statistics
// @Accept       json
// @Produce      json
// @Param        body  body      statsLoginRequest  true  "Credentials (username or email)"
// @Success      200   {object}  statsLoginResponse
// @Failure      401   {object}  map[string]string
// @Failure      403   {object}  map[string]string
// @Router       /login [post]
func (h *StatisticsHandler) Login(c echo.Context) error {
	var req statsLoginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	token, user, err := h.auth.Login(c.Request().Context(), req.Username, req.Password)
	if err != nil {
		metrics.LoginsTotal.WithLabelValues("statistics", "failure").Inc()
		return err
	}

	metrics.LoginsTotal.WithLabelValues("statistics", "success").Inc()
	h.logger.Info().Int("user_id", user.ID).Msg("admin logged in")
	return c.JSON(http.StatusOK, statsLoginResponse{Token: token, User: toUserResponse(user)})
}

// Logout handles POST /logout. Always succeeds, even for unknown tokens.
//
// @Summary      Admin logout
// @Tags         statistics
// @Security     BearerAuth
// @Success      204
// @Router       /logout [post]
func (h *StatisticsHandler) Logout(c echo.Context) error {
	token := bearerToken(c)
	if err := h.auth.Logout(c.Request().Context(), token); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

// VacationStats handles GET /vacations/stats.
//
// @Summary      Vacation counts by date bucket
// @Tags         statistics
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  vacationStatsResponse
// @Failure      401  {object}  map[string]string
// @Router       /vacations/stats [get]
func (h *StatisticsHandler) VacationStats(c echo.Context) error {
	stats, err := h.stats.VacationStats(c.Request().Context(), bearerToken(c))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, vacationStatsResponse{
		PastVacations:    stats.Past,
		OngoingVacations: stats.Ongoing,
		FutureVacations:  stats.Future,
	})
}

// TotalUsers handles GET /users/total.
//
// @Summary      Total registered users
// @Tags         statistics
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  map[string]int64
// @Failure      401  {object}  map[string]string
// @Router       /users/total [get]
func (h *StatisticsHandler) TotalUsers(c echo.Context) error {
	total, err := h.stats.TotalUsers(c.Request().Context(), bearerToken(c))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, map[string]int64{"totalUsers": total})
}

// TotalLikes handles GET /likes/total.
//
// @Summary      Total likes across all vacations
// @Tags         statistics
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  map[string]int64
// @Failure      401  {object}  map[string]string
// @Router       /likes/total [get]
func (h *StatisticsHandler) TotalLikes(c echo.Context) error {
	total, err := h.stats.TotalLikes(c.Request().Context(), bearerToken(c))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, map[string]int64{"totalLikes": total})
}

// LikesDistribution handles GET /likes/distribution.
//
// @Summary      Like counts per destination, most liked first
// @Tags         statistics
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   destinationLikesResponse
// @Failure      401  {object}  map[string]string
// @Router       /likes/distribution [get]
func (h *StatisticsHandler) LikesDistribution(c echo.Context) error {
	dist, err := h.stats.LikesDistribution(c.Request().Context(), bearerToken(c))
	if err != nil {
		return err
	}

	out := make([]destinationLikesResponse, len(dist))
	for i, d := range dist {
		out[i] = destinationLikesResponse{Destination: d.Destination, Likes: d.Likes}
	}
	return c.JSON(http.StatusOK, out)
}

// bearerToken extracts the token from the Authorization header. An absent or
// malformed header yields the empty string, which the auth service treats as
// unauthenticated.
func bearerToken(c echo.Context) string {
	header := c.Request().Header.Get("Authorization")
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}
