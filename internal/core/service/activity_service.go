package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/house-hunter/server/internal/api/metrics"
	"github.com/house-hunter/server/internal/core/domain"
	"github.com/house-hunter/server/internal/core/ports"
)

type activityService struct {
	repo ports.ActivityRepository
	log  zerolog.Logger
}

// NewActivityService returns an ActivityService implementation.
func NewActivityService(repo ports.ActivityRepository, log zerolog.Logger) ports.ActivityService {
	return &activityService{repo: repo, log: log}
}

// Process persists a single auth event.
func (s *activityService) Process(ctx context.Context, event domain.AuthEvent) error {
	if err := s.repo.Insert(ctx, event); err != nil {
		metrics.ActivityErrorsTotal.WithLabelValues("insert_failed").Inc()
		return fmt.Errorf("record activity: %w", err)
	}

	metrics.ActivityProcessedTotal.WithLabelValues(event.Action).Inc()
	s.log.Debug().
		Str("email", event.Email).
		Str("action", event.Action).
		Msg("activity recorded")

	return nil
}
