package user

import (
	"fmt"
	"strings"
	"time"

	"punchcard/internal/shared/authorization"
	"punchcard/internal/shared/biztime"
)

// User is the identity consumed by the attendance ledger. The ledger trusts
// it as given per request; only the admin user-management flows mutate it.
type User struct {
	ID           uint
	Username     string
	Email        string
	PasswordHash string
	Role         authorization.UserRole
	IsActive     bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func NewUser(username, email, passwordHash string, role authorization.UserRole) (*User, error) {
	username = strings.TrimSpace(username)
	email = strings.ToLower(strings.TrimSpace(email))

	if username == "" {
		return nil, fmt.Errorf("username is required")
	}
	if email == "" || !strings.Contains(email, "@") {
		return nil, fmt.Errorf("valid email is required")
	}
	if passwordHash == "" {
		return nil, fmt.Errorf("password hash is required")
	}
	if !role.IsValid() {
		role = authorization.RoleUser
	}

	now := biztime.NowUTC()
	return &User{
		Username:     username,
		Email:        email,
		PasswordHash: passwordHash,
		Role:         role,
		IsActive:     true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}, nil
}

func (u *User) Deactivate() {
	u.IsActive = false
	u.UpdatedAt = biztime.NowUTC()
}

func (u *User) Activate() {
	u.IsActive = true
	u.UpdatedAt = biztime.NowUTC()
}

func (u *User) ChangeRole(role authorization.UserRole) error {
	if !role.IsValid() {
		return fmt.Errorf("invalid role %q", role)
	}
	u.Role = role
	u.UpdatedAt = biztime.NowUTC()
	return nil
}

func (u *User) SetPasswordHash(hash string) error {
	if hash == "" {
		return fmt.Errorf("password hash is required")
	}
	u.PasswordHash = hash
	u.UpdatedAt = biztime.NowUTC()
	return nil
}
