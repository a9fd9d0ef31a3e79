package domain

import "time"

// Auth activity actions recorded asynchronously.
const (
	ActionRegister    = "register"
	ActionLogin       = "login"
	ActionLoginFailed = "login_failed"
)

// AuthEvent is a single auth activity entry. Events for the same email are
// recorded in the order they occurred.
type AuthEvent struct {
	Email     string
	Action    string
	At        time.Time
	RequestID string
}
