package ports

import "context"

// Session is the server-side record binding a token to an authenticated
// admin identity.
type Session struct {
	UserID   int    `json:"user_id"`
	Username string `json:"username"`
	IsAdmin  bool   `json:"is_admin"`
}

// SessionStore persists sessions keyed by an opaque token. Sessions expire
// on their own; expiry is owned by the store, not the auth service.
type SessionStore interface {
	// Create stores the session and returns its freshly minted token.
	Create(ctx context.Context, session Session) (string, error)
	// Get resolves a token. A missing or expired token yields (nil, nil).
	Get(ctx context.Context, token string) (*Session, error)
	Delete(ctx context.Context, token string) error
}
