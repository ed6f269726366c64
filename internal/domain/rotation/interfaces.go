package rotation

import (
	"context"

	"github.com/rollcall-hq/rollcall/internal/domain/day"
)

// Archiver moves a day's live record into the archive.
type Archiver interface {
	// Rotate archives day d all-or-nothing and clears its live record.
	// When an archive record for d already exists it does nothing and
	// returns rotated=false with no error.
	Rotate(ctx context.Context, d day.Day, rotationID string) (rotated bool, err error)
}
