package handler

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/travelist/vacations-system/internal/api/metrics"
	"github.com/travelist/vacations-system/internal/core/domain"
	"github.com/travelist/vacations-system/internal/core/ports"
)

const tokenTTL = 24 * time.Hour

// UserHandler handles registration, login and like/unlike requests.
type UserHandler struct {
	service   ports.UserService
	roles     ports.RoleRepository
	jwtSecret string
	logger    zerolog.Logger
}

func NewUserHandler(service ports.UserService, roles ports.RoleRepository, jwtSecret string, logger zerolog.Logger) *UserHandler {
	return &UserHandler{service: service, roles: roles, jwtSecret: jwtSecret, logger: logger}
}

// --- Request / Response types ---

type registerRequest struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Password  string `json:"password"`
	Username  string `json:"username"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type userResponse struct {
	ID        int     `json:"id"`
	FirstName string  `json:"firstName"`
	LastName  string  `json:"lastName"`
	Email     string  `json:"email"`
	Username  *string `json:"username,omitempty"`
	RoleID    int     `json:"roleId"`
}

type loginResponse struct {
	Token string       `json:"token"`
	User  userResponse `json:"user"`
}

func toUserResponse(u *ports.UserView) userResponse {
	return userResponse{
		ID:        u.ID,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		Email:     u.Email,
		Username:  u.Username,
		RoleID:    u.RoleID,
	}
}

// Register handles POST /api/users/register.
//
// @Summary      Register a new user
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        body  body      registerRequest  true  "Registration data"
// @Success      201   {object}  userResponse
// @Failure      400   {object}  map[string]string
// @Failure      409   {object}  map[string]string
// @Router       /api/users/register [post]
func (h *UserHandler) Register(c echo.Context) error {
	var req registerRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	user, err := h.service.Register(c.Request().Context(), ports.RegisterInput{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Password:  req.Password,
		Username:  req.Username,
	})
	if err != nil {
		result := "invalid"
		if errors.Is(err, domain.ErrEmailExists) {
			result = "duplicate_email"
		}
		metrics.RegistrationsTotal.WithLabelValues(result).Inc()
		return err
	}

	metrics.RegistrationsTotal.WithLabelValues("success").Inc()
	h.logger.Info().Int("user_id", user.ID).Msg("user registered")
	return c.JSON(http.StatusCreated, toUserResponse(user))
}

// Login handles POST /api/users/login. On success it issues a signed JWT
// carrying the user id, email and admin flag.
//
// @Summary      Log in with email and password
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Credentials"
// @Success      200   {object}  loginResponse
// @Failure      401   {object}  map[string]string
// @Router       /api/users/login [post]
func (h *UserHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	user, err := h.service.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		metrics.LoginsTotal.WithLabelValues("vacations", "failure").Inc()
		return err
	}

	isAdmin := false
	if role, rErr := h.roles.GetByID(c.Request().Context(), user.RoleID); rErr == nil {
		isAdmin = role.Name == domain.RoleAdmin
	}

	token, err := h.issueToken(user, isAdmin)
	if err != nil {
		h.logger.Error().Err(err).Msg("sign token")
		return echo.NewHTTPError(http.StatusInternalServerError, "internal server error")
	}

	metrics.LoginsTotal.WithLabelValues("vacations", "success").Inc()
	return c.JSON(http.StatusOK, loginResponse{Token: token, User: toUserResponse(user)})
}

// Like handles POST /api/users/:user_id/likes/:vacation_id. The path user id
// must match the authenticated user.
//
// @Summary      Like a vacation
// @Tags         likes
// @Security     BearerAuth
// @Param        user_id      path  int  true  "User ID"
// @Param        vacation_id  path  int  true  "Vacation ID"
// @Success      201
// @Failure      401  {object}  map[string]string
// @Failure      409  {object}  map[string]string
// @Router       /api/users/{user_id}/likes/{vacation_id} [post]
func (h *UserHandler) Like(c echo.Context) error {
	userID, vacationID, err := h.likeParams(c)
	if err != nil {
		return err
	}

	if err := h.service.LikeVacation(c.Request().Context(), userID, vacationID); err != nil {
		return err
	}

	metrics.LikesTotal.WithLabelValues("like").Inc()
	return c.NoContent(http.StatusCreated)
}

// Unlike handles DELETE /api/users/:user_id/likes/:vacation_id.
//
// @Summary      Remove a like from a vacation
// @Tags         likes
// @Security     BearerAuth
// @Param        user_id      path  int  true  "User ID"
// @Param        vacation_id  path  int  true  "Vacation ID"
// @Success      204
// @Failure      400  {object}  map[string]string
// @Failure      401  {object}  map[string]string
// @Router       /api/users/{user_id}/likes/{vacation_id} [delete]
func (h *UserHandler) Unlike(c echo.Context) error {
	userID, vacationID, err := h.likeParams(c)
	if err != nil {
		return err
	}

	if err := h.service.UnlikeVacation(c.Request().Context(), userID, vacationID); err != nil {
		return err
	}

	metrics.LikesTotal.WithLabelValues("unlike").Inc()
	return c.NoContent(http.StatusNoContent)
}

// likeParams parses the like path parameters and verifies the caller acts on
// their own likes, not somebody else's.
func (h *UserHandler) likeParams(c echo.Context) (userID, vacationID int, err error) {
	authUserID, _, err := ctxUser(c)
	if err != nil {
		return 0, 0, err
	}

	userID, err = strconv.Atoi(c.Param("user_id"))
	if err != nil {
		return 0, 0, echo.NewHTTPError(http.StatusBadRequest, "invalid user id")
	}
	vacationID, err = strconv.Atoi(c.Param("vacation_id"))
	if err != nil {
		return 0, 0, echo.NewHTTPError(http.StatusBadRequest, "invalid vacation id")
	}

	if userID != authUserID {
		return 0, 0, echo.NewHTTPError(http.StatusForbidden, "cannot modify another user's likes")
	}
	return userID, vacationID, nil
}

func (h *UserHandler) issueToken(user *ports.UserView, isAdmin bool) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"user_id":  user.ID,
		"email":    user.Email,
		"is_admin": isAdmin,
		"iat":      now.Unix(),
		"exp":      now.Add(tokenTTL).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(h.jwtSecret))
}
