package domain

import (
	"errors"
	"time"
)

const (
	RoleBuyer = "buyer"
	RoleOwner = "owner"
)

var ErrUserExists = errors.New("user already exists")
var ErrUserNotFound = errors.New("user not found")
var ErrInvalidCredentials = errors.New("invalid email or password")
var ErrTooManyAttempts = errors.New("too many failed login attempts")

// User models a registered account. Email is the unique key; the store
// enforces uniqueness with an index, so callers never pre-check existence.
// PasswordHash is excluded from JSON so no handler can serialize it.
type User struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Role         string    `json:"role"`
	Phone        string    `json:"phone"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
