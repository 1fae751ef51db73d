package auth

import (
	"errors"
	"time"
)

// Role is the two-role authorization model: admins manage the catalog, users
// may borrow.
type Role string

const (
	RoleAdmin Role = "admin"
	RoleUser  Role = "user"
)

var (
	// ErrInvalidCredentials is returned when the username or password is wrong.
	ErrInvalidCredentials = errors.New("invalid username or password")
	// ErrUnauthorized is returned for tokens without a live session.
	ErrUnauthorized = errors.New("unauthorized")
	// ErrUsernameTaken is returned when registering a duplicate username.
	ErrUsernameTaken = errors.New("username already taken")
)

// User is an account known to the capability gate. Only ID and Role matter to
// the catalog; the rest is account bookkeeping.
type User struct {
	ID           string    `json:"id"`
	Username     string    `json:"username"`
	Email        string    `json:"email"`
	Role         Role      `json:"role"`
	CreatedAt    time.Time `json:"created_at"`
	passwordHash string
}
