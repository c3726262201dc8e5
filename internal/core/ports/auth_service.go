package ports

import "context"

// AuthService gates the statistics API behind an admin session. Callers hold
// an explicit session token; there is no ambient session state.
type AuthService interface {
	// Login authenticates by username-or-email and password. Non-admin
	// users are rejected even with valid credentials. On success a session
	// token is minted and returned alongside the user view.
	Login(ctx context.Context, identifier, password string) (string, *UserView, error)
	// Logout clears the session unconditionally. Unknown tokens are a no-op.
	Logout(ctx context.Context, token string) error
	// IsAuthenticated reports whether token maps to a live admin session.
	IsAuthenticated(ctx context.Context, token string) bool
	// IsAdmin is an independent role check not tied to any session.
	IsAdmin(ctx context.Context, userID int) bool
}
