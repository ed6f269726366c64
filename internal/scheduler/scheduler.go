// Package scheduler fires the daily rotation at a configured cutoff
// time. Delivery is at-least-once; the rotation itself is idempotent,
// so duplicate or late fires are harmless.
package scheduler

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"github.com/rollcall-hq/rollcall/internal/domain/day"
)

// Rotator closes the current day.
type Rotator interface {
	RotateToday(ctx context.Context) error
}

// Scheduler triggers rotation once per day at the cutoff.
type Scheduler struct {
	rotator Rotator
	clock   *day.Clock
	hour    int
	minute  int
	logger  *slog.Logger
}

// New creates a scheduler. cutoff is "HH:MM" in the clock's timezone.
func New(rotator Rotator, clock *day.Clock, cutoff string, logger *slog.Logger) (*Scheduler, error) {
	hour, minute, err := ParseCutoff(cutoff)
	if err != nil {
		return nil, err
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Scheduler{rotator: rotator, clock: clock, hour: hour, minute: minute, logger: logger}, nil
}

// ParseCutoff parses an "HH:MM" time of day.
func ParseCutoff(cutoff string) (hour, minute int, err error) {
	parts := strings.SplitN(cutoff, ":", 2)
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("invalid cutoff %q: want HH:MM", cutoff)
	}
	hour, err = strconv.Atoi(parts[0])
	if err != nil || hour < 0 || hour > 23 {
		return 0, 0, fmt.Errorf("invalid cutoff hour in %q", cutoff)
	}
	minute, err = strconv.Atoi(parts[1])
	if err != nil || minute < 0 || minute > 59 {
		return 0, 0, fmt.Errorf("invalid cutoff minute in %q", cutoff)
	}
	return hour, minute, nil
}

// NextFire returns the next cutoff instant strictly after now.
func NextFire(now time.Time, hour, minute int) time.Time {
	next := time.Date(now.Year(), now.Month(), now.Day(), hour, minute, 0, 0, now.Location())
	if !next.After(now) {
		next = next.AddDate(0, 0, 1)
	}
	return next
}

// Run blocks until ctx is canceled, rotating at each cutoff. A failed
// rotation is logged and retried at the next fire; rotation's
// idempotency makes re-fires for an already-closed day no-ops.
func (s *Scheduler) Run(ctx context.Context) {
	s.logger.Info("rotation scheduler started",
		"cutoff", fmt.Sprintf("%02d:%02d", s.hour, s.minute),
		"timezone", s.clock.Location().String())

	for {
		next := NextFire(s.clock.Now(), s.hour, s.minute)
		timer := time.NewTimer(time.Until(next))

		select {
		case <-ctx.Done():
			timer.Stop()
			s.logger.Info("rotation scheduler stopped")
			return
		case <-timer.C:
		}

		if err := s.rotator.RotateToday(ctx); err != nil {
			s.logger.Error("scheduled rotation failed", "error", err)
		}
	}
}
