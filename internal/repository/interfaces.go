package repository

import (
	"context"

	"github.com/rollcall-hq/rollcall/internal/domain/day"
	"github.com/rollcall-hq/rollcall/internal/domain/ledger"
)

// LedgerRepository manages live day records.
type LedgerRepository interface {
	// ReplaceDay atomically swaps the full mark set for a day. The new
	// set is durable before ReplaceDay returns.
	ReplaceDay(ctx context.Context, d day.Day, marks []ledger.Mark) error
	// GetDay returns a day's marks; empty when the day has no record.
	GetDay(ctx context.Context, d day.Day) ([]ledger.Mark, error)
}

// ArchiveRepository manages immutable closed-day records.
type ArchiveRepository interface {
	// Exists is a cheap check for a closed record on day d.
	Exists(ctx context.Context, d day.Day) (bool, error)
	// GetDay returns the archived marks for d, or ErrNotFound when the
	// day was never closed.
	GetDay(ctx context.Context, d day.Day) ([]ledger.Mark, error)
	// Rotate closes day d in a single all-or-nothing step: the live mark
	// set becomes the archive record and the live rows are cleared. A
	// day that is already closed is left untouched (rotated=false, nil
	// error), so at-least-once triggers are safe.
	Rotate(ctx context.Context, d day.Day, rotationID string) (rotated bool, err error)
}
