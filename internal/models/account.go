package models

// Roles assignable to an account. Registration always produces RoleUser;
// RoleAdmin exists only via the bootstrap account or a hand-edited users file.
const (
	RoleAdmin = "admin"
	RoleUser  = "user"
)

// Account holds the credentials and role for one user. Passwords are stored
// and compared in plain text; this is a demo storefront, not an auth system.
type Account struct {
	Password string `json:"password"`
	Role     string `json:"role"`
}

// Accounts is the full account mapping keyed by username, persisted to the
// users file in one piece on every change.
type Accounts map[string]Account
