package sqlite

import (
	"context"
	"fmt"

	"github.com/rollcall-hq/rollcall/internal/domain/day"
	"github.com/rollcall-hq/rollcall/internal/domain/ledger"
)

// LedgerRepository implements repository.LedgerRepository for SQLite
type LedgerRepository struct {
	db *DB
}

// NewLedgerRepository creates a new LedgerRepository
func NewLedgerRepository(db *DB) *LedgerRepository {
	return &LedgerRepository{db: db}
}

// ReplaceDay swaps the full mark set for a day in one transaction.
// The commit is the publish point: readers see the old set or the new
// one, never a mix, and the new set is durable before return.
func (r *LedgerRepository) ReplaceDay(ctx context.Context, d day.Day, marks []ledger.Mark) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM day_marks WHERE day = ?`, d.String()); err != nil {
		return fmt.Errorf("failed to clear day %s: %w", d, err)
	}

	for _, m := range marks {
		_, err := tx.ExecContext(ctx,
			`INSERT INTO day_marks (day, employee_id, marked_at) VALUES (?, ?, ?)`,
			d.String(), string(m.EmployeeID), m.MarkedAt,
		)
		if err != nil {
			return fmt.Errorf("failed to insert mark for %s: %w", m.EmployeeID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

// GetDay returns a day's marks, empty when the day has no record.
func (r *LedgerRepository) GetDay(ctx context.Context, d day.Day) ([]ledger.Mark, error) {
	query := `
		SELECT employee_id, marked_at
		FROM day_marks
		WHERE day = ?
		ORDER BY employee_id
	`

	rows, err := r.db.QueryContext(ctx, query, d.String())
	if err != nil {
		return nil, fmt.Errorf("failed to get day %s: %w", d, err)
	}
	defer rows.Close()

	var marks []ledger.Mark
	for rows.Next() {
		var m ledger.Mark
		if err := rows.Scan(&m.EmployeeID, &m.MarkedAt); err != nil {
			return nil, fmt.Errorf("failed to scan mark: %w", err)
		}
		marks = append(marks, m)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating mark rows: %w", err)
	}

	return marks, nil
}
