package export_test

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/rollcall-hq/rollcall/internal/domain/day"
	"github.com/rollcall-hq/rollcall/internal/domain/ledger"
	"github.com/rollcall-hq/rollcall/internal/domain/report"
	"github.com/rollcall-hq/rollcall/internal/export"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestWriter_Daily(t *testing.T) {
	dir := t.TempDir()
	w := export.New(dir)

	rep := &report.Report{
		Day: day.Of(2024, time.March, 1),
		Rows: []report.Row{
			{EmployeeID: "alice", Status: ledger.StatusPresent},
			{EmployeeID: "bob", Status: ledger.StatusAbsent},
		},
	}

	path, err := w.Daily(rep)
	require.NoError(t, err)
	require.Equal(t, filepath.Join(dir, "attendance_2024-03-01.xlsx"), path)

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows(f.GetSheetName(0))
	require.NoError(t, err)
	require.Equal(t, []string{"Employee", "Status"}, rows[1][:2])
	require.Equal(t, []string{"alice", "Present"}, rows[2][:2])
	require.Equal(t, []string{"bob", "Absent"}, rows[3][:2])
}

func TestWriter_Monthly(t *testing.T) {
	dir := t.TempDir()
	w := export.New(dir)

	rep := &report.MonthlyReport{
		Year:  2024,
		Month: time.March,
		Days:  31,
		Rows: []report.MonthlyRow{
			{EmployeeID: "alice", PresentDays: 20, AbsentDays: 11},
		},
	}

	path, err := w.Monthly(rep)
	require.NoError(t, err)
	require.Equal(t, filepath.Join(dir, "monthly_report_2024-03.xlsx"), path)

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows(f.GetSheetName(0))
	require.NoError(t, err)
	require.Equal(t, []string{"alice", "20", "11"}, rows[2][:3])
}

func TestWriter_List(t *testing.T) {
	dir := t.TempDir()
	w := export.New(dir)

	names, err := w.List()
	require.NoError(t, err)
	require.Empty(t, names, "missing dir lists as empty")

	_, err = w.Daily(&report.Report{Day: day.Of(2024, time.March, 1)})
	require.NoError(t, err)
	_, err = w.Daily(&report.Report{Day: day.Of(2024, time.March, 2)})
	require.NoError(t, err)

	names, err = w.List()
	require.NoError(t, err)
	require.Equal(t, []string{"attendance_2024-03-02.xlsx", "attendance_2024-03-01.xlsx"}, names)
}

func TestWriter_PathRejectsTraversal(t *testing.T) {
	w := export.New(t.TempDir())

	_, err := w.Path("../secrets.xlsx")
	require.Error(t, err)
	_, err = w.Path("report.pdf")
	require.Error(t, err)
}
