package domain

// Role is the global role of a portal user.
type Role string

const (
	RoleAdmin   Role = "admin"
	RoleMDAUser Role = "mda_user"
	RoleOfficer Role = "officer"
)

// IsValid reports whether r is one of the known roles.
func (r Role) IsValid() bool {
	switch r {
	case RoleAdmin, RoleMDAUser, RoleOfficer:
		return true
	}
	return false
}

// User represents a portal account. Accounts are created by an admin;
// there is no self-registration.
type User struct {
	UserID       string `json:"userID"`
	FullName     string `json:"fullName"`
	Email        string `json:"email"`
	PasswordHash string `json:"-"`
	Role         Role   `json:"role"`
	IsActive     bool   `json:"isActive"`
	AuditFields
}
