package ports

import "context"

// RegisterInput carries all data needed to register a new user. Username is
// optional; an empty string means absent.
type RegisterInput struct {
	FirstName string
	LastName  string
	Email     string
	Password  string
	Username  string
}

// UserView is the validated, password-free view of a user returned to callers.
type UserView struct {
	ID        int
	FirstName string
	LastName  string
	Email     string
	Username  *string
	RoleID    int
}

// UserService defines use-case operations for registration, login and likes.
type UserService interface {
	// Register validates the input, assigns the "User" role and persists a
	// new account with a hashed password.
	Register(ctx context.Context, input RegisterInput) (*UserView, error)
	// Login authenticates by email and password. The failure message never
	// distinguishes an unknown email from a wrong password.
	Login(ctx context.Context, email, password string) (*UserView, error)
	LikeVacation(ctx context.Context, userID, vacationID int) error
	UnlikeVacation(ctx context.Context, userID, vacationID int) error
}
