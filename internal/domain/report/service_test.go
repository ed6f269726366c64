package report_test

import (
	"context"
	"testing"
	"time"

	"github.com/rollcall-hq/rollcall/internal/domain/day"
	"github.com/rollcall-hq/rollcall/internal/domain/ledger"
	"github.com/rollcall-hq/rollcall/internal/domain/report"
	"github.com/rollcall-hq/rollcall/internal/domain/roster"
	"github.com/rollcall-hq/rollcall/internal/repository"
	"github.com/rollcall-hq/rollcall/internal/repository/mocks"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var testInstant = time.Date(2024, time.March, 1, 12, 0, 0, 0, time.UTC)

func fixedClock() *day.Clock {
	return day.NewClockAt(time.UTC, func() time.Time { return testInstant })
}

func rosterOf(ids ...roster.EmployeeID) report.RosterLoader {
	src := &mocks.RosterSource{}
	src.On("Load", mock.Anything).Return(ids, nil)
	return roster.NewService(src, nil)
}

func marks(ids ...roster.EmployeeID) []ledger.Mark {
	out := make([]ledger.Mark, 0, len(ids))
	for _, id := range ids {
		out = append(out, ledger.Mark{EmployeeID: id, MarkedAt: testInstant})
	}
	return out
}

func TestReportService_DailyFromArchive(t *testing.T) {
	ctx := context.Background()
	d := day.Of(2024, time.February, 28)

	archive := &mocks.ArchiveRepository{}
	archive.On("GetDay", ctx, d).Return(marks("alice"), nil)
	live := &mocks.LedgerRepository{}

	svc := report.NewService(rosterOf("alice", "bob"), live, archive, fixedClock(), nil)
	rep, err := svc.Daily(ctx, d)
	require.NoError(t, err)
	require.Equal(t, []report.Row{
		{EmployeeID: "alice", Status: ledger.StatusPresent},
		{EmployeeID: "bob", Status: ledger.StatusAbsent},
	}, rep.Rows)
	live.AssertNotCalled(t, "GetDay", mock.Anything, mock.Anything)
}

func TestReportService_DailyFallsBackToLiveForToday(t *testing.T) {
	ctx := context.Background()
	today := day.Of(2024, time.March, 1)

	archive := &mocks.ArchiveRepository{}
	archive.On("GetDay", ctx, today).Return(nil, repository.ErrNotFound)
	live := &mocks.LedgerRepository{}
	live.On("GetDay", ctx, today).Return(marks("bob"), nil)

	svc := report.NewService(rosterOf("alice", "bob"), live, archive, fixedClock(), nil)
	rep, err := svc.Daily(ctx, today)
	require.NoError(t, err)
	require.Equal(t, []report.Row{
		{EmployeeID: "alice", Status: ledger.StatusAbsent},
		{EmployeeID: "bob", Status: ledger.StatusPresent},
	}, rep.Rows)
}

func TestReportService_DailyArchiveWinsOverLive(t *testing.T) {
	ctx := context.Background()
	today := day.Of(2024, time.March, 1)

	// Archived today: even live data for the same day must be ignored.
	archive := &mocks.ArchiveRepository{}
	archive.On("GetDay", ctx, today).Return(marks("alice"), nil)
	live := &mocks.LedgerRepository{}

	svc := report.NewService(rosterOf("alice", "bob"), live, archive, fixedClock(), nil)
	rep, err := svc.Daily(ctx, today)
	require.NoError(t, err)
	require.Equal(t, ledger.StatusPresent, rep.Rows[0].Status)
	live.AssertNotCalled(t, "GetDay", mock.Anything, mock.Anything)
}

func TestReportService_DailyNoData(t *testing.T) {
	ctx := context.Background()
	past := day.Of(2099, time.January, 1)

	archive := &mocks.ArchiveRepository{}
	archive.On("GetDay", ctx, past).Return(nil, repository.ErrNotFound)
	live := &mocks.LedgerRepository{}

	svc := report.NewService(rosterOf("alice"), live, archive, fixedClock(), nil)
	_, err := svc.Daily(ctx, past)
	require.ErrorIs(t, err, report.ErrNoDataForDate)
}

func TestReportService_DailyEmptyRoster(t *testing.T) {
	ctx := context.Background()
	d := day.Of(2024, time.February, 28)

	archive := &mocks.ArchiveRepository{}
	archive.On("GetDay", ctx, d).Return(marks("ghost"), nil)
	live := &mocks.LedgerRepository{}

	svc := report.NewService(rosterOf(), live, archive, fixedClock(), nil)
	rep, err := svc.Daily(ctx, d)
	require.NoError(t, err)
	require.Empty(t, rep.Rows)
}

func TestReportService_DailyDeterministicOrder(t *testing.T) {
	ctx := context.Background()
	d := day.Of(2024, time.February, 28)

	archive := &mocks.ArchiveRepository{}
	archive.On("GetDay", ctx, d).Return(marks("bob", "alice"), nil)
	live := &mocks.LedgerRepository{}

	svc := report.NewService(rosterOf("carol", "bob", "alice"), live, archive, fixedClock(), nil)

	first, err := svc.Daily(ctx, d)
	require.NoError(t, err)
	second, err := svc.Daily(ctx, d)
	require.NoError(t, err)

	require.Equal(t, first, second)
	require.Equal(t, roster.EmployeeID("carol"), first.Rows[0].EmployeeID)
	require.Equal(t, roster.EmployeeID("bob"), first.Rows[1].EmployeeID)
	require.Equal(t, roster.EmployeeID("alice"), first.Rows[2].EmployeeID)
}

func TestReportService_MonthlyCountsCoverMonth(t *testing.T) {
	ctx := context.Background()

	archive := &mocks.ArchiveRepository{}
	// Only March 1st was ever closed; alice was present.
	archive.On("GetDay", ctx, day.Of(2024, time.March, 1)).Return(marks("alice"), nil)
	archive.On("GetDay", ctx, mock.Anything).Return(nil, repository.ErrNotFound)
	live := &mocks.LedgerRepository{}

	// Clock sits outside March so no day falls back to live data.
	clock := day.NewClockAt(time.UTC, func() time.Time {
		return time.Date(2024, time.April, 2, 12, 0, 0, 0, time.UTC)
	})

	svc := report.NewService(rosterOf("alice", "bob"), live, archive, clock, nil)
	rep, err := svc.Monthly(ctx, 2024, time.March)
	require.NoError(t, err)
	require.Equal(t, 31, rep.Days)
	require.Equal(t, []report.MonthlyRow{
		{EmployeeID: "alice", PresentDays: 1, AbsentDays: 30},
		{EmployeeID: "bob", PresentDays: 0, AbsentDays: 31},
	}, rep.Rows)
}

func TestReportService_MonthlyIncludesLiveToday(t *testing.T) {
	ctx := context.Background()
	today := day.Of(2024, time.March, 1)

	archive := &mocks.ArchiveRepository{}
	archive.On("GetDay", ctx, mock.Anything).Return(nil, repository.ErrNotFound)
	live := &mocks.LedgerRepository{}
	live.On("GetDay", ctx, today).Return(marks("alice"), nil)

	svc := report.NewService(rosterOf("alice"), live, archive, fixedClock(), nil)
	rep, err := svc.Monthly(ctx, 2024, time.March)
	require.NoError(t, err)
	require.Equal(t, 1, rep.Rows[0].PresentDays)
	require.Equal(t, 30, rep.Rows[0].AbsentDays)
}

func TestReportService_MonthlyLeapFebruary(t *testing.T) {
	ctx := context.Background()

	archive := &mocks.ArchiveRepository{}
	archive.On("GetDay", ctx, mock.Anything).Return(nil, repository.ErrNotFound)
	live := &mocks.LedgerRepository{}

	svc := report.NewService(rosterOf("alice"), live, archive, fixedClock(), nil)
	rep, err := svc.Monthly(ctx, 2024, time.February)
	require.NoError(t, err)
	require.Equal(t, 29, rep.Days)
	require.Equal(t, 29, rep.Rows[0].AbsentDays)
}

func TestReportService_MonthlyPropagatesRosterUnavailable(t *testing.T) {
	ctx := context.Background()

	src := &mocks.RosterSource{}
	src.On("Load", mock.Anything).Return(nil, roster.ErrUnavailable)

	svc := report.NewService(roster.NewService(src, nil), &mocks.LedgerRepository{}, &mocks.ArchiveRepository{}, fixedClock(), nil)
	_, err := svc.Monthly(ctx, 2024, time.March)
	require.ErrorIs(t, err, roster.ErrUnavailable)
}
