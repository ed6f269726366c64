package report

import (
	"time"

	"github.com/rollcall-hq/rollcall/internal/domain/day"
	"github.com/rollcall-hq/rollcall/internal/domain/ledger"
	"github.com/rollcall-hq/rollcall/internal/domain/roster"
)

// Row is one employee's status for a single day.
type Row struct {
	EmployeeID roster.EmployeeID `json:"employee_id"`
	Status     ledger.Status     `json:"status"`
}

// Report is a full daily report, rows in roster order.
type Report struct {
	Day  day.Day `json:"day"`
	Rows []Row   `json:"rows"`
}

// MonthlyRow is one employee's day counts for a month. PresentDays plus
// AbsentDays always equals the number of days in the month.
type MonthlyRow struct {
	EmployeeID  roster.EmployeeID `json:"employee_id"`
	PresentDays int               `json:"present_days"`
	AbsentDays  int               `json:"absent_days"`
}

// MonthlyReport is a full monthly report, rows in roster order.
type MonthlyReport struct {
	Year  int          `json:"year"`
	Month time.Month   `json:"month"`
	Days  int          `json:"days"`
	Rows  []MonthlyRow `json:"rows"`
}
