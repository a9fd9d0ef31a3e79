package ports

import (
	"context"

	"github.com/house-hunter/server/internal/core/domain"
)

// ActivityRecorder accepts auth events for asynchronous recording.
// Record must not block the request path.
type ActivityRecorder interface {
	Record(event domain.AuthEvent)
}

// ActivityService persists a single auth event.
type ActivityService interface {
	Process(ctx context.Context, event domain.AuthEvent) error
}

// ActivityRepository is the persistence contract for auth events.
type ActivityRepository interface {
	Insert(ctx context.Context, event domain.AuthEvent) error
}
