package ledger

import (
	"context"

	"github.com/rollcall-hq/rollcall/internal/domain/day"
	"github.com/rollcall-hq/rollcall/internal/domain/roster"
)

// Repository provides persistence for live day records.
type Repository interface {
	// ReplaceDay atomically replaces the full mark set for a day.
	ReplaceDay(ctx context.Context, d day.Day, marks []Mark) error
	// GetDay returns the mark set for a day; empty when the day has no record.
	GetDay(ctx context.Context, d day.Day) ([]Mark, error)
}

// RosterLoader loads the roster used to validate submissions.
type RosterLoader interface {
	Load(ctx context.Context) (roster.Roster, error)
}
