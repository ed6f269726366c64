package ledger

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/rollcall-hq/rollcall/internal/domain/day"
	"github.com/rollcall-hq/rollcall/internal/domain/roster"
)

// Service manages the live day's presence record.
type Service struct {
	repo   Repository
	roster RosterLoader
	clock  *day.Clock
	logger *slog.Logger
}

// NewService creates a new ledger service.
func NewService(repo Repository, rosterLoader RosterLoader, clock *day.Clock, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{repo: repo, roster: rosterLoader, clock: clock, logger: logger}
}

// ReadToday returns today's mark set. A day with no record yet reads as
// an empty set, never an error.
func (s *Service) ReadToday(ctx context.Context) ([]Mark, error) {
	return s.repo.GetDay(ctx, s.clock.Today())
}

// WriteToday validates a full submission and atomically replaces today's
// record with the employees marked Present. Validation happens before any
// mutation; an invalid entry rejects the whole submission. Resubmitting a
// smaller Present set removes marks from earlier submissions.
func (s *Service) WriteToday(ctx context.Context, entries []Entry) error {
	known, err := s.roster.Load(ctx)
	if err != nil {
		return err
	}

	members := make(map[roster.EmployeeID]struct{}, len(known))
	for _, id := range known {
		members[id] = struct{}{}
	}

	now := s.clock.Now()
	present := make([]Mark, 0, len(entries))
	seen := make(map[roster.EmployeeID]struct{}, len(entries))
	for _, e := range entries {
		if _, ok := members[e.EmployeeID]; !ok {
			return fmt.Errorf("%w: %s", ErrUnknownEmployee, e.EmployeeID)
		}
		if !e.Status.Valid() {
			return fmt.Errorf("%w: %q for %s", ErrInvalidStatus, e.Status, e.EmployeeID)
		}
		if e.Status != StatusPresent {
			continue
		}
		// Duplicate Present entries in one submission collapse to one mark.
		if _, dup := seen[e.EmployeeID]; dup {
			continue
		}
		seen[e.EmployeeID] = struct{}{}
		present = append(present, Mark{EmployeeID: e.EmployeeID, MarkedAt: now})
	}

	today := s.clock.Today()
	if err := s.repo.ReplaceDay(ctx, today, present); err != nil {
		return fmt.Errorf("writing day %s: %w", today, err)
	}

	s.logger.Info("day record replaced", "day", today.String(), "present", len(present), "submitted", len(entries))
	return nil
}
