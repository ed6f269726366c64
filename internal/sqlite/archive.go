package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/rollcall-hq/rollcall/internal/domain/day"
	"github.com/rollcall-hq/rollcall/internal/domain/ledger"
	"github.com/rollcall-hq/rollcall/internal/repository"
)

// ArchiveRepository implements repository.ArchiveRepository for SQLite
type ArchiveRepository struct {
	db *DB
}

// NewArchiveRepository creates a new ArchiveRepository
func NewArchiveRepository(db *DB) *ArchiveRepository {
	return &ArchiveRepository{db: db}
}

// Exists reports whether day d has been closed. Primary-key probe.
func (r *ArchiveRepository) Exists(ctx context.Context, d day.Day) (bool, error) {
	var one int
	err := r.db.QueryRowContext(ctx, `SELECT 1 FROM archive_days WHERE day = ?`, d.String()).Scan(&one)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to check archive for %s: %w", d, err)
	}
	return true, nil
}

// GetDay returns the archived marks for d. A closed day with zero marks
// returns an empty set; a day that was never closed returns ErrNotFound.
func (r *ArchiveRepository) GetDay(ctx context.Context, d day.Day) ([]ledger.Mark, error) {
	exists, err := r.Exists(ctx, d)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, repository.ErrNotFound
	}

	query := `
		SELECT employee_id, marked_at
		FROM archive_marks
		WHERE day = ?
		ORDER BY employee_id
	`

	rows, err := r.db.QueryContext(ctx, query, d.String())
	if err != nil {
		return nil, fmt.Errorf("failed to get archive for %s: %w", d, err)
	}
	defer rows.Close()

	var marks []ledger.Mark
	for rows.Next() {
		var m ledger.Mark
		if err := rows.Scan(&m.EmployeeID, &m.MarkedAt); err != nil {
			return nil, fmt.Errorf("failed to scan archived mark: %w", err)
		}
		marks = append(marks, m)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating archived mark rows: %w", err)
	}

	return marks, nil
}

// Rotate closes day d in a single transaction: insert the header, copy
// the live marks into the archive, clear the live rows. A day with no
// live record still closes, as an empty archive record. If the header
// already exists nothing changes and rotated is false. The transaction
// linearizes rotation against concurrent ReplaceDay calls: a submission
// lands entirely before the copy or entirely after the day is closed.
func (r *ArchiveRepository) Rotate(ctx context.Context, d day.Day, rotationID string) (bool, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return false, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	var one int
	err = tx.QueryRowContext(ctx, `SELECT 1 FROM archive_days WHERE day = ?`, d.String()).Scan(&one)
	if err == nil {
		return false, nil
	}
	if err != sql.ErrNoRows {
		return false, fmt.Errorf("failed to check archive for %s: %w", d, err)
	}

	_, err = tx.ExecContext(ctx,
		`INSERT INTO archive_days (day, rotation_id) VALUES (?, ?)`,
		d.String(), rotationID,
	)
	if isUniqueViolation(err) {
		// Lost the race to a concurrent rotation of the same day.
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to close day %s: %w", d, err)
	}

	_, err = tx.ExecContext(ctx, `
		INSERT INTO archive_marks (day, employee_id, marked_at)
		SELECT day, employee_id, marked_at FROM day_marks WHERE day = ?`,
		d.String(),
	)
	if err != nil {
		return false, fmt.Errorf("failed to archive marks for %s: %w", d, err)
	}

	if _, err := tx.ExecContext(ctx, `DELETE FROM day_marks WHERE day = ?`, d.String()); err != nil {
		return false, fmt.Errorf("failed to clear live record for %s: %w", d, err)
	}

	if err := tx.Commit(); err != nil {
		return false, fmt.Errorf("failed to commit transaction: %w", err)
	}

	return true, nil
}
