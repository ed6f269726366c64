package sqlite

import (
	"context"
	"testing"
	"time"

	"github.com/rollcall-hq/rollcall/internal/domain/day"
	"github.com/rollcall-hq/rollcall/internal/domain/ledger"
	"github.com/rollcall-hq/rollcall/internal/domain/roster"
	"github.com/stretchr/testify/require"
)

func marksFor(at time.Time, ids ...string) []ledger.Mark {
	marks := make([]ledger.Mark, 0, len(ids))
	for _, id := range ids {
		marks = append(marks, ledger.Mark{EmployeeID: roster.EmployeeID(id), MarkedAt: at})
	}
	return marks
}

func markIDs(marks []ledger.Mark) []string {
	ids := make([]string, 0, len(marks))
	for _, m := range marks {
		ids = append(ids, string(m.EmployeeID))
	}
	return ids
}

func TestLedgerRepository_GetDayEmpty(t *testing.T) {
	db := NewTestDB(t)
	repo := NewLedgerRepository(db)
	ctx := context.Background()

	marks, err := repo.GetDay(ctx, day.Of(2024, time.March, 1))
	require.NoError(t, err)
	require.Empty(t, marks)
}

func TestLedgerRepository_ReplaceDay(t *testing.T) {
	db := NewTestDB(t)
	repo := NewLedgerRepository(db)
	ctx := context.Background()
	d := day.Of(2024, time.March, 1)
	at := time.Date(2024, time.March, 1, 9, 30, 0, 0, time.UTC)

	err := repo.ReplaceDay(ctx, d, marksFor(at, "alice", "bob"))
	require.NoError(t, err)

	marks, err := repo.GetDay(ctx, d)
	require.NoError(t, err)
	require.Equal(t, []string{"alice", "bob"}, markIDs(marks))
}

func TestLedgerRepository_ReplaceDayIsFullReplace(t *testing.T) {
	db := NewTestDB(t)
	repo := NewLedgerRepository(db)
	ctx := context.Background()
	d := day.Of(2024, time.March, 1)
	at := time.Date(2024, time.March, 1, 9, 30, 0, 0, time.UTC)

	require.NoError(t, repo.ReplaceDay(ctx, d, marksFor(at, "alice")))
	require.NoError(t, repo.ReplaceDay(ctx, d, marksFor(at, "bob")))

	marks, err := repo.GetDay(ctx, d)
	require.NoError(t, err)
	require.Equal(t, []string{"bob"}, markIDs(marks), "earlier submission should be discarded")
}

func TestLedgerRepository_ReplaceDayEmptySetClears(t *testing.T) {
	db := NewTestDB(t)
	repo := NewLedgerRepository(db)
	ctx := context.Background()
	d := day.Of(2024, time.March, 1)
	at := time.Date(2024, time.March, 1, 9, 30, 0, 0, time.UTC)

	require.NoError(t, repo.ReplaceDay(ctx, d, marksFor(at, "alice", "bob")))
	require.NoError(t, repo.ReplaceDay(ctx, d, nil))

	marks, err := repo.GetDay(ctx, d)
	require.NoError(t, err)
	require.Empty(t, marks)
}

func TestLedgerRepository_DaysAreIndependent(t *testing.T) {
	db := NewTestDB(t)
	repo := NewLedgerRepository(db)
	ctx := context.Background()
	at := time.Date(2024, time.March, 1, 9, 30, 0, 0, time.UTC)

	require.NoError(t, repo.ReplaceDay(ctx, day.Of(2024, time.March, 1), marksFor(at, "alice")))
	require.NoError(t, repo.ReplaceDay(ctx, day.Of(2024, time.March, 2), marksFor(at, "bob")))

	marks, err := repo.GetDay(ctx, day.Of(2024, time.March, 1))
	require.NoError(t, err)
	require.Equal(t, []string{"alice"}, markIDs(marks))
}
