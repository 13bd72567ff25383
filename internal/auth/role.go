package auth

import "strings"

// Exactly two privilege tiers. Role is a column on the user record, assigned at
// creation; admin is promoted by matching the configured admin email.
const (
	RoleStandard = "standard"
	RoleAdmin    = "admin"
)

// IsAdmin reports whether the role carries admin privilege.
func IsAdmin(role string) bool {
	return role == RoleAdmin
}

// RoleForEmail returns the role a new account gets. The admin email comparison
// is case-sensitive and exact; an empty admin email means no account is ever
// promoted.
func RoleForEmail(email, adminEmail string) string {
	if adminEmail != "" && email == adminEmail {
		return RoleAdmin
	}
	return RoleStandard
}

// NormalizeEmail lowercases and trims an email for storage and lookup; email
// uniqueness is case-insensitive.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
