package domain

import "time"

// UserRole enumerates office access roles. The set is closed: authorization
// is a membership test, no role implies another.
type UserRole string

const (
	RoleAdmin      UserRole = "ADMIN"
	RoleAdvogado   UserRole = "ADVOGADO"
	RoleAssistente UserRole = "ASSISTENTE"
)

// ParseUserRole maps a raw string onto the closed role set.
func ParseUserRole(raw string) (UserRole, bool) {
	switch UserRole(raw) {
	case RoleAdmin, RoleAdvogado, RoleAssistente:
		return UserRole(raw), true
	}
	return "", false
}

// User is an office member with system access. Accounts are soft-deleted via
// the Active flag and never removed.
type User struct {
	ID           string
	Name         string
	Email        string
	PasswordHash string
	Role         UserRole
	Active       bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
