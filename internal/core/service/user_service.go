package service

import (
	"context"
	"errors"
	"regexp"
	"strings"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/travelist/vacations-system/internal/core/domain"
	"github.com/travelist/vacations-system/internal/core/ports"
)

const minPasswordLength = 4

var emailPattern = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

// UserService implements registration, login and like/unlike.
type UserService struct {
	users  ports.UserRepository
	roles  ports.RoleRepository
	likes  ports.LikeRepository
	logger zerolog.Logger
}

func NewUserService(users ports.UserRepository, roles ports.RoleRepository, likes ports.LikeRepository, logger zerolog.Logger) *UserService {
	return &UserService{users: users, roles: roles, likes: likes, logger: logger}
}

// Register validates the input, resolves the "User" role and persists a new
// account. The email is lowercased, names are trimmed and the password is
// stored as a bcrypt hash.
func (s *UserService) Register(ctx context.Context, input ports.RegisterInput) (*ports.UserView, error) {
	if strings.TrimSpace(input.FirstName) == "" {
		return nil, &domain.MissingFieldError{Field: "first name"}
	}
	if strings.TrimSpace(input.LastName) == "" {
		return nil, &domain.MissingFieldError{Field: "last name"}
	}
	if strings.TrimSpace(input.Email) == "" {
		return nil, &domain.MissingFieldError{Field: "email"}
	}
	if input.Password == "" {
		return nil, &domain.MissingFieldError{Field: "password"}
	}
	if !emailPattern.MatchString(input.Email) {
		return nil, domain.ErrInvalidEmailFormat
	}
	if len(input.Password) < minPasswordLength {
		return nil, domain.ErrPasswordTooShort
	}

	email := strings.ToLower(strings.TrimSpace(input.Email))
	exists, err := s.users.EmailExists(ctx, email)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, domain.ErrEmailExists
	}

	// Only regular users register through the API; admins are seeded.
	role, err := s.roles.GetByName(ctx, domain.RoleUser)
	if err != nil {
		if errors.Is(err, domain.ErrRoleNotFound) {
			return nil, domain.ErrRoleNotConfigured
		}
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &domain.User{
		FirstName:    strings.TrimSpace(input.FirstName),
		LastName:     strings.TrimSpace(input.LastName),
		Email:        email,
		PasswordHash: string(hash),
		RoleID:       role.ID,
	}
	if trimmed := strings.TrimSpace(input.Username); trimmed != "" {
		user.Username = &trimmed
	}

	id, err := s.users.Insert(ctx, user)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Int("user_id", id).Str("email", email).Msg("user registered")

	return &ports.UserView{
		ID:        id,
		FirstName: user.FirstName,
		LastName:  user.LastName,
		Email:     user.Email,
		Username:  user.Username,
		RoleID:    user.RoleID,
	}, nil
}

// Login authenticates by email and password. All failures surface the same
// ErrInvalidCredentials so callers cannot enumerate registered emails.
func (s *UserService) Login(ctx context.Context, email, password string) (*ports.UserView, error) {
	if strings.TrimSpace(email) == "" {
		return nil, &domain.MissingFieldError{Field: "email"}
	}
	if password == "" {
		return nil, &domain.MissingFieldError{Field: "password"}
	}
	if !emailPattern.MatchString(email) {
		return nil, domain.ErrInvalidEmailFormat
	}
	if len(password) < minPasswordLength {
		return nil, domain.ErrPasswordTooShort
	}

	user, err := s.users.GetByEmail(ctx, strings.ToLower(strings.TrimSpace(email)))
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, domain.ErrInvalidCredentials
		}
		return nil, err
	}
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return nil, domain.ErrInvalidCredentials
	}

	return &ports.UserView{
		ID:        user.ID,
		FirstName: user.FirstName,
		LastName:  user.LastName,
		Email:     user.Email,
		Username:  user.Username,
		RoleID:    user.RoleID,
	}, nil
}

// LikeVacation records a like for the pair, rejecting duplicates. The
// existence check and the insert are separate round trips; the store's
// composite primary key remains the structural guarantee under races.
func (s *UserService) LikeVacation(ctx context.Context, userID, vacationID int) error {
	existing, err := s.likes.GetByUserAndVacation(ctx, userID, vacationID)
	if err != nil {
		return err
	}
	if existing != nil {
		return domain.ErrAlreadyLiked
	}
	return s.likes.Insert(ctx, &domain.Like{UserID: userID, VacationID: vacationID})
}

// UnlikeVacation removes a like for the pair, rejecting pairs never liked.
func (s *UserService) UnlikeVacation(ctx context.Context, userID, vacationID int) error {
	existing, err := s.likes.GetByUserAndVacation(ctx, userID, vacationID)
	if err != nil {
		return err
	}
	if existing == nil {
		return domain.ErrNotLiked
	}

	rows, err := s.likes.DeleteByUserAndVacation(ctx, userID, vacationID)
	if err != nil {
		return err
	}
	if rows == 0 {
		// Lost the race with a concurrent unlike or a cascade delete.
		return domain.ErrLikeDeleteFailed
	}
	return nil
}
