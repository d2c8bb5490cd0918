package domain

import "time"

type Role string

const (
	RoleManager Role = "MANAGER"
	RoleSeller  Role = "SELLER"
	RoleSupport Role = "SUPPORT"
)

// ValidRole reports whether r is one of the three known roles.
func ValidRole(r Role) bool {
	switch r {
	case RoleManager, RoleSeller, RoleSupport:
		return true
	}
	return false
}

type User struct {
	ID           int64  `json:"id"`
	Username     string `json:"username"`
	FirstName    string `json:"first_name"`
	LastName     string `json:"last_name"`
	Email        string `json:"email"`
	Phone        string `json:"phone,omitempty"`
	PasswordHash string `json:"-"`
	Role         Role   `json:"role"`
	// Admin is granted at creation time when the role is MANAGER.
	// Later role edits do not touch it.
	Admin     bool      `json:"admin"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (u *User) DisplayName() string {
	if u == nil {
		return ""
	}
	return u.FirstName + " " + u.LastName
}

// Principal is the authenticated identity attached to a request,
// rebuilt from token claims without a store round-trip.
type Principal struct {
	ID    int64
	Role  Role
	Admin bool
}

func (p Principal) IsManager() bool { return p.Role == RoleManager }
