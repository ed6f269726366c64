package report

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/rollcall-hq/rollcall/internal/domain/day"
	"github.com/rollcall-hq/rollcall/internal/domain/ledger"
	"github.com/rollcall-hq/rollcall/internal/domain/roster"
	"github.com/rollcall-hq/rollcall/internal/repository"
)

// Service computes daily and monthly reports on demand. Every call
// re-derives from storage; nothing is cached.
type Service struct {
	rosterSvc RosterLoader
	live      LiveReader
	archive   ArchiveReader
	clock     *day.Clock
	logger    *slog.Logger
}

// NewService creates a new report service.
func NewService(rosterLoader RosterLoader, live LiveReader, archive ArchiveReader, clock *day.Clock, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{rosterSvc: rosterLoader, live: live, archive: archive, clock: clock, logger: logger}
}

// Daily reports every roster member's status for day d, in roster order.
// The archive record wins once it exists; the live ledger answers only
// for today; any other day without data fails with ErrNoDataForDate.
func (s *Service) Daily(ctx context.Context, d day.Day) (*Report, error) {
	members, err := s.rosterSvc.Load(ctx)
	if err != nil {
		return nil, err
	}

	present, found, err := s.resolveDay(ctx, d)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, fmt.Errorf("%w: %s", ErrNoDataForDate, d)
	}

	rows := make([]Row, 0, len(members))
	for _, id := range members {
		status := ledger.StatusAbsent
		if _, ok := present[id]; ok {
			status = ledger.StatusPresent
		}
		rows = append(rows, Row{EmployeeID: id, Status: status})
	}

	return &Report{Day: d, Rows: rows}, nil
}

// Monthly reports per-employee present/absent day counts for one month.
// Per-day resolution matches Daily except that a day with no data counts
// as fully absent instead of failing; a month may legitimately span days
// before the service existed. Only roster errors abort the report.
func (s *Service) Monthly(ctx context.Context, year int, month time.Month) (*MonthlyReport, error) {
	members, err := s.rosterSvc.Load(ctx)
	if err != nil {
		return nil, err
	}

	numDays := day.DaysIn(year, month)
	presentDays := make(map[roster.EmployeeID]int, len(members))

	for date := 1; date <= numDays; date++ {
		d := day.Of(year, month, date)
		present, found, err := s.resolveDay(ctx, d)
		if err != nil {
			return nil, err
		}
		if !found {
			continue // counts as absent for everyone
		}
		for _, id := range members {
			if _, ok := present[id]; ok {
				presentDays[id]++
			}
		}
	}

	rows := make([]MonthlyRow, 0, len(members))
	for _, id := range members {
		p := presentDays[id]
		rows = append(rows, MonthlyRow{EmployeeID: id, PresentDays: p, AbsentDays: numDays - p})
	}

	return &MonthlyReport{Year: year, Month: month, Days: numDays, Rows: rows}, nil
}

// resolveDay returns the presence set for d. found=false means d has no
// archive record and is not today.
func (s *Service) resolveDay(ctx context.Context, d day.Day) (map[roster.EmployeeID]struct{}, bool, error) {
	marks, err := s.archive.GetDay(ctx, d)
	switch {
	case err == nil:
		return markSet(marks), true, nil
	case !errors.Is(err, repository.ErrNotFound):
		return nil, false, fmt.Errorf("reading archive for %s: %w", d, err)
	}

	if d != s.clock.Today() {
		return nil, false, nil
	}

	marks, err = s.live.GetDay(ctx, d)
	if err != nil {
		return nil, false, fmt.Errorf("reading live record for %s: %w", d, err)
	}
	return markSet(marks), true, nil
}

func markSet(marks []ledger.Mark) map[roster.EmployeeID]struct{} {
	set := make(map[roster.EmployeeID]struct{}, len(marks))
	for _, m := range marks {
		set[m.EmployeeID] = struct{}{}
	}
	return set
}
