// Package models defines the client-side domain types of the RecruitAI CLI.
package models

// Role identifies the kind of account a user holds.
type Role string

const (
	RoleCandidate Role = "ROLE_CANDIDATE"
	RoleRecruiter Role = "ROLE_RECRUITER"
)

// User is the authenticated account as reported by the server. It is always
// replaced wholesale, never mutated field by field outside the auth store.
type User struct {
	ID               int64  `json:"id"`
	Name             string `json:"name"`
	Email            string `json:"email"`
	Role             Role   `json:"role"`
	TwoFactorEnabled bool   `json:"two_factor_enabled"`
	TOTPConfirmed    bool   `json:"totp_confirmed"`
}

// Credentials carries a login attempt. Transient: it exists only for the
// duration of the call and is never persisted.
type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// RegisterData carries a registration request. Transient, like Credentials.
type RegisterData struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     Role   `json:"role"`
}

// AuthGrant is a completed authentication: the bearer token together with the
// user it authenticates. The two always travel as a pair so callers cannot
// persist one without the other.
type AuthGrant struct {
	AccessToken string
	User        User
}
