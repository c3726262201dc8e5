package domain

const (
	RoleAdmin = "Admin"
	RoleUser  = "User"
)

// Role is a well-known authorization role. The set is fixed in practice:
// "Admin" and "User", seeded at migration time.
type Role struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// User models a registered account. PasswordHash is a bcrypt hash and is
// never serialized.
type User struct {
	ID           int     `json:"id"`
	FirstName    string  `json:"first_name"`
	LastName     string  `json:"last_name"`
	Email        string  `json:"email"`
	PasswordHash string  `json:"-"`
	Username     *string `json:"username,omitempty"`
	RoleID       int     `json:"role_id"`
}
