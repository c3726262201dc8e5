package service

import (
	"context"
	"errors"
	"strings"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/travelist/vacations-system/internal/core/domain"
	"github.com/travelist/vacations-system/internal/core/ports"
)

// AuthService establishes and validates admin sessions for the statistics
// API. Sessions live in an external store keyed by an explicit token; the
// service itself holds no mutable state.
type AuthService struct {
	users    ports.UserRepository
	roles    ports.RoleRepository
	sessions ports.SessionStore
	logger   zerolog.Logger
}

func NewAuthService(users ports.UserRepository, roles ports.RoleRepository, sessions ports.SessionStore, logger zerolog.Logger) *AuthService {
	return &AuthService{users: users, roles: roles, sessions: sessions, logger: logger}
}

// Login authenticates by username-or-email and password, then requires the
// "Admin" role before minting a session token.
func (s *AuthService) Login(ctx context.Context, identifier, password string) (string, *ports.UserView, error) {
	if strings.TrimSpace(identifier) == "" || password == "" {
		return "", nil, domain.ErrInvalidCredentials
	}

	user, err := s.users.FindByUsernameOrEmail(ctx, strings.TrimSpace(identifier))
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return "", nil, domain.ErrInvalidCredentials
		}
		return "", nil, err
	}
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return "", nil, domain.ErrInvalidCredentials
	}

	role, err := s.roles.GetByID(ctx, user.RoleID)
	if err != nil {
		if errors.Is(err, domain.ErrRoleNotFound) {
			return "", nil, domain.ErrAdminRequired
		}
		return "", nil, err
	}
	if role.Name != domain.RoleAdmin {
		return "", nil, domain.ErrAdminRequired
	}

	username := user.Email
	if user.Username != nil {
		username = *user.Username
	}

	token, err := s.sessions.Create(ctx, ports.Session{
		UserID:   user.ID,
		Username: username,
		IsAdmin:  true,
	})
	if err != nil {
		return "", nil, err
	}

	s.logger.Info().Int("user_id", user.ID).Msg("admin logged in")

	return token, &ports.UserView{
		ID:        user.ID,
		FirstName: user.FirstName,
		LastName:  user.LastName,
		Email:     user.Email,
		Username:  user.Username,
		RoleID:    user.RoleID,
	}, nil
}

// Logout deletes the session. Tokens that never existed or already expired
// are not an error.
func (s *AuthService) Logout(ctx context.Context, token string) error {
	return s.sessions.Delete(ctx, token)
}

// IsAuthenticated reports whether token maps to a live admin session.
func (s *AuthService) IsAuthenticated(ctx context.Context, token string) bool {
	if token == "" {
		return false
	}
	session, err := s.sessions.Get(ctx, token)
	if err != nil {
		s.logger.Warn().Err(err).Msg("session lookup failed")
		return false
	}
	return session != nil && session.IsAdmin
}

// IsAdmin checks the user's role directly, independent of any session.
func (s *AuthService) IsAdmin(ctx context.Context, userID int) bool {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return false
	}
	role, err := s.roles.GetByID(ctx, user.RoleID)
	if err != nil {
		return false
	}
	return role.Name == domain.RoleAdmin
}
