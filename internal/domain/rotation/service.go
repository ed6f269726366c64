package rotation

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/rollcall-hq/rollcall/internal/domain/day"
)

// Service closes out calendar days, exactly once each.
type Service struct {
	archive Archiver
	clock   *day.Clock
	logger  *slog.Logger
}

// NewService creates a new rotation service.
func NewService(archive Archiver, clock *day.Clock, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{archive: archive, clock: clock, logger: logger}
}

// Rotate closes day d: its live mark set (empty when the day never saw a
// submission) becomes the immutable archive record for d. Safe to invoke
// any number of times; only the first invocation changes stored data.
func (s *Service) Rotate(ctx context.Context, d day.Day) error {
	runID := uuid.NewString()

	rotated, err := s.archive.Rotate(ctx, d, runID)
	if err != nil {
		return fmt.Errorf("%w: day %s: %v", ErrRotationFailed, d, err)
	}

	if rotated {
		s.logger.Info("day closed", "day", d.String(), "rotation_id", runID)
	} else {
		s.logger.Info("day already closed", "day", d.String())
	}
	return nil
}

// RotateToday closes the current day in the configured timezone. This is
// what the daily cutoff trigger invokes; duplicate or late triggers land
// on Rotate's idempotency.
func (s *Service) RotateToday(ctx context.Context) error {
	return s.Rotate(ctx, s.clock.Today())
}
