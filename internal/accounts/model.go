// Package accounts implements the shared account store: file-backed records
// of username, role and SHA256 password hash, plus the policy layer for
// registration and authentication.
package accounts

// Role is a user's privilege level.
type Role string

const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
)

// ParseRole maps a raw role field to a Role, falling back to RoleUser for
// anything unrecognized.
func ParseRole(s string) Role {
	if s == string(RoleAdmin) {
		return RoleAdmin
	}
	return RoleUser
}

// Account is one record of the account file: `username;role;passwordHashHex`.
type Account struct {
	Name         string
	Role         Role
	PasswordHash string
}
