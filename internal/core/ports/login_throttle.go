package ports

import "context"

// LoginThrottle tracks failed login attempts per email and reports when an
// email is locked out. Implementations expire state on their own schedule.
type LoginThrottle interface {
	IsLocked(ctx context.Context, email string) (bool, error)
	RecordFailure(ctx context.Context, email string) error
	Reset(ctx context.Context, email string) error
}
