package ledger

import (
	"time"

	"github.com/rollcall-hq/rollcall/internal/domain/roster"
)

// Status is a submitted presence status.
type Status string

const (
	StatusPresent Status = "Present"
	StatusAbsent  Status = "Absent"
)

// Valid reports whether s is a known status.
func (s Status) Valid() bool {
	return s == StatusPresent || s == StatusAbsent
}

// Entry is one submitted (employee, status) pair.
type Entry struct {
	EmployeeID roster.EmployeeID `json:"employee_id"`
	Status     Status            `json:"status"`
}

// Mark records that an employee was present, with the timestamp of the
// write that marked them.
type Mark struct {
	EmployeeID roster.EmployeeID `json:"employee_id"`
	MarkedAt   time.Time         `json:"marked_at"`
}
