// Package export renders report datasets into xlsx workbooks. It only
// consumes the ordered rows the aggregator produced; it never derives
// presence itself.
package export

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/rollcall-hq/rollcall/internal/domain/report"
	"github.com/xuri/excelize/v2"
)

// Writer writes report workbooks into a directory.
type Writer struct {
	dir string
}

// New creates a writer targeting dir. The directory is created on first write.
func New(dir string) *Writer {
	return &Writer{dir: dir}
}

// Daily writes a daily report workbook and returns its path. An existing
// file for the same day is overwritten so downloads always reflect
// current state.
func (w *Writer) Daily(rep *report.Report) (string, error) {
	f := excelize.NewFile()
	defer f.Close()

	sheet := f.GetSheetName(0)
	f.SetCellValue(sheet, "A1", fmt.Sprintf("Attendance for %s", rep.Day))
	f.SetCellValue(sheet, "A2", "Employee")
	f.SetCellValue(sheet, "B2", "Status")
	if err := w.boldRow(f, sheet, 2, 2); err != nil {
		return "", err
	}

	for i, row := range rep.Rows {
		r := i + 3
		f.SetCellValue(sheet, cell(1, r), string(row.EmployeeID))
		f.SetCellValue(sheet, cell(2, r), string(row.Status))
	}

	return w.save(f, fmt.Sprintf("attendance_%s.xlsx", rep.Day))
}

// Monthly writes a monthly report workbook and returns its path.
func (w *Writer) Monthly(rep *report.MonthlyReport) (string, error) {
	f := excelize.NewFile()
	defer f.Close()

	sheet := f.GetSheetName(0)
	f.SetCellValue(sheet, "A1", fmt.Sprintf("Monthly attendance %04d-%02d", rep.Year, rep.Month))
	f.SetCellValue(sheet, "A2", "Employee")
	f.SetCellValue(sheet, "B2", "Present Days")
	f.SetCellValue(sheet, "C2", "Absent Days")
	if err := w.boldRow(f, sheet, 2, 3); err != nil {
		return "", err
	}

	for i, row := range rep.Rows {
		r := i + 3
		f.SetCellValue(sheet, cell(1, r), string(row.EmployeeID))
		f.SetCellValue(sheet, cell(2, r), row.PresentDays)
		f.SetCellValue(sheet, cell(3, r), row.AbsentDays)
	}

	return w.save(f, fmt.Sprintf("monthly_report_%04d-%02d.xlsx", rep.Year, rep.Month))
}

// List returns the generated workbook file names, newest name first.
func (w *Writer) List() ([]string, error) {
	entries, err := os.ReadDir(w.dir)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("list reports: %w", err)
	}

	var names []string
	for _, e := range entries {
		if !e.IsDir() && strings.HasSuffix(e.Name(), ".xlsx") {
			names = append(names, e.Name())
		}
	}
	sort.Sort(sort.Reverse(sort.StringSlice(names)))
	return names, nil
}

// Path resolves a previously generated file name inside the reports
// directory, rejecting anything that escapes it.
func (w *Writer) Path(name string) (string, error) {
	if name != filepath.Base(name) || !strings.HasSuffix(name, ".xlsx") {
		return "", fmt.Errorf("invalid report name %q", name)
	}
	path := filepath.Join(w.dir, name)
	if _, err := os.Stat(path); err != nil {
		return "", fmt.Errorf("report %q: %w", name, err)
	}
	return path, nil
}

func (w *Writer) save(f *excelize.File, name string) (string, error) {
	if err := os.MkdirAll(w.dir, 0o755); err != nil {
		return "", fmt.Errorf("create reports dir: %w", err)
	}
	path := filepath.Join(w.dir, name)
	if err := f.SaveAs(path); err != nil {
		return "", fmt.Errorf("write report %s: %w", name, err)
	}
	return path, nil
}

func (w *Writer) boldRow(f *excelize.File, sheet string, row, cols int) error {
	style, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return fmt.Errorf("style report header: %w", err)
	}
	return f.SetCellStyle(sheet, cell(1, row), cell(cols, row), style)
}

func cell(col, row int) string {
	name, _ := excelize.CoordinatesToCellName(col, row)
	return name
}
