package httpapi

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/rollcall-hq/rollcall/internal/domain/day"
	"github.com/rollcall-hq/rollcall/internal/domain/ledger"
	"github.com/rollcall-hq/rollcall/internal/domain/report"
	"github.com/rollcall-hq/rollcall/internal/domain/roster"
	"github.com/rollcall-hq/rollcall/internal/export"
)

// RosterService loads the roster.
type RosterService interface {
	Load(ctx context.Context) (roster.Roster, error)
}

// LedgerService accepts presence submissions.
type LedgerService interface {
	WriteToday(ctx context.Context, entries []ledger.Entry) error
}

// ReportService computes reports.
type ReportService interface {
	Daily(ctx context.Context, d day.Day) (*report.Report, error)
	Monthly(ctx context.Context, year int, month time.Month) (*report.MonthlyReport, error)
}

type handler struct {
	svcs    Services
	exports *export.Writer
	clock   *day.Clock
	logger  *slog.Logger
}

// GetEmployees returns the roster in its defined order.
func (h *handler) GetEmployees(c *fiber.Ctx) error {
	members, err := h.svcs.Roster.Load(c.Context())
	if err != nil {
		return h.mapError(c, err)
	}
	return c.JSON(fiber.Map{"employees": members})
}

// GetToday returns every roster member's status for the current day.
func (h *handler) GetToday(c *fiber.Ctx) error {
	rep, err := h.svcs.Reports.Daily(c.Context(), h.clock.Today())
	if err != nil {
		return h.mapError(c, err)
	}
	return c.JSON(fiber.Map{"day": rep.Day.String(), "attendance": rep.Rows})
}

type submissionRequest struct {
	Attendance []ledger.Entry `json:"attendance"`
}

// SubmitAttendance replaces today's record with the submitted statuses.
func (h *handler) SubmitAttendance(c *fiber.Ctx) error {
	var req submissionRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}

	if err := h.svcs.Ledger.WriteToday(c.Context(), req.Attendance); err != nil {
		return h.mapError(c, err)
	}

	return c.JSON(fiber.Map{"msg": "attendance updated"})
}

// GetDailyReport generates and serves the daily workbook. Defaults to today.
func (h *handler) GetDailyReport(c *fiber.Ctx) error {
	d := h.clock.Today()
	if dateStr := c.Query("date"); dateStr != "" {
		parsed, err := day.Parse(dateStr)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid date, want YYYY-MM-DD"})
		}
		d = parsed
	}

	rep, err := h.svcs.Reports.Daily(c.Context(), d)
	if err != nil {
		return h.mapError(c, err)
	}

	path, err := h.exports.Daily(rep)
	if err != nil {
		return h.mapError(c, err)
	}
	return c.Download(path)
}

// GetMonthlyReport generates and serves the monthly workbook.
func (h *handler) GetMonthlyReport(c *fiber.Ctx) error {
	year, month, err := parseMonth(c.Query("month"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "month parameter required (YYYY-MM)"})
	}

	rep, err := h.svcs.Reports.Monthly(c.Context(), year, month)
	if err != nil {
		return h.mapError(c, err)
	}

	path, err := h.exports.Monthly(rep)
	if err != nil {
		return h.mapError(c, err)
	}
	return c.Download(path)
}

// ListReports lists previously generated workbook names.
func (h *handler) ListReports(c *fiber.Ctx) error {
	names, err := h.exports.List()
	if err != nil {
		return h.mapError(c, err)
	}
	if names == nil {
		names = []string{}
	}
	return c.JSON(names)
}

// DownloadReport serves one previously generated workbook.
func (h *handler) DownloadReport(c *fiber.Ctx) error {
	path, err := h.exports.Path(c.Params("name"))
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "report not found"})
	}
	return c.Download(path)
}

func parseMonth(s string) (int, time.Month, error) {
	parts := strings.SplitN(s, "-", 2)
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("invalid month %q", s)
	}
	year, err := strconv.Atoi(parts[0])
	if err != nil || year < 1 {
		return 0, 0, fmt.Errorf("invalid year in %q", s)
	}
	m, err := strconv.Atoi(parts[1])
	if err != nil || m < 1 || m > 12 {
		return 0, 0, fmt.Errorf("invalid month in %q", s)
	}
	return year, time.Month(m), nil
}

// mapError translates domain errors into HTTP responses. Unknown errors
// are logged and surface as 500 without internals.
func (h *handler) mapError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, roster.ErrUnavailable):
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{"error": "roster unavailable"})
	case errors.Is(err, ledger.ErrUnknownEmployee), errors.Is(err, ledger.ErrInvalidStatus):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	case errors.Is(err, report.ErrNoDataForDate):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "no attendance data for requested date"})
	default:
		h.logger.Error("request failed", "path", c.Path(), "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "internal error"})
	}
}
