package models

// User represents a portal account row.
type User struct {
	UserID       string `db:"user_id"`
	FullName     string `db:"full_name"`
	Email        string `db:"email"`
	PasswordHash string `db:"password_hash"`
	Role         string `db:"role"`
	IsActive     bool   `db:"is_active"`
	AuditFields
}
