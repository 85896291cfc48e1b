package domain

import (
	"errors"
	"time"
)

// Role is the closed set of actor roles. There is no hierarchy between
// roles: every protected operation declares its own allow-list and
// membership is a plain set test.
type Role string

const (
	RoleAdmin       Role = "admin"
	RoleManager     Role = "manager"
	RoleSalesperson Role = "salesperson"
)

// Valid reports whether r is a member of the closed role set.
func (r Role) Valid() bool {
	switch r {
	case RoleAdmin, RoleManager, RoleSalesperson:
		return true
	}
	return false
}

// Authentication errors. Every authentication failure is collapsed to a
// generic 401 at the transport edge so callers cannot probe which stage
// rejected them; ErrForbidden alone maps to 403.
var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrTokenExpired       = errors.New("token expired")
	ErrInvalidToken       = errors.New("invalid token")
	ErrMissingCredential  = errors.New("missing bearer credential")
	ErrMissingSubject     = errors.New("token missing subject claim")
	ErrUnknownUser        = errors.New("unknown token subject")
	ErrUserNotFound       = errors.New("user not found")
	ErrUserExists         = errors.New("username already exists")
	ErrEmailExists        = errors.New("email already exists")
)

// ErrForbidden means the caller authenticated but lacks a permitted role.
var ErrForbidden = errors.New("access forbidden")

// User models an authenticated actor. ID is system-generated and immutable;
// username is unique and doubles as the token subject.
type User struct {
	ID           string    `json:"id"`
	Username     string    `json:"username"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Role         Role      `json:"role"`
	CreatedAt    time.Time `json:"created_at"`
}
