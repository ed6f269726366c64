package report

import (
	"context"

	"github.com/rollcall-hq/rollcall/internal/domain/day"
	"github.com/rollcall-hq/rollcall/internal/domain/ledger"
	"github.com/rollcall-hq/rollcall/internal/domain/roster"
)

// ArchiveReader reads closed day records. GetDay returns
// repository.ErrNotFound when the day was never archived.
type ArchiveReader interface {
	GetDay(ctx context.Context, d day.Day) ([]ledger.Mark, error)
}

// LiveReader reads the live day record; a day with no record reads as empty.
type LiveReader interface {
	GetDay(ctx context.Context, d day.Day) ([]ledger.Mark, error)
}

// RosterLoader loads the roster that defines report rows and their order.
type RosterLoader interface {
	Load(ctx context.Context) (roster.Roster, error)
}
