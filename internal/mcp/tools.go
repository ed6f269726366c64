package mcp

import (
	"context"
	"fmt"
	"time"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/rollcall-hq/rollcall/internal/domain/day"
	"github.com/rollcall-hq/rollcall/internal/domain/ledger"
	"github.com/rollcall-hq/rollcall/internal/domain/report"
	"github.com/rollcall-hq/rollcall/internal/domain/roster"
)

type toolHandler struct {
	svcs  Services
	clock *day.Clock
}

func registerTools(server *sdkmcp.Server, svcs Services, clock *day.Clock) {
	h := &toolHandler{svcs: svcs, clock: clock}

	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "get_roster",
		Description: "List all known employees in roster order",
	}, h.getRoster)

	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "submit_attendance",
		Description: "Replace today's attendance record with a full set of (employee, status) pairs",
	}, h.submitAttendance)

	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "get_daily_report",
		Description: "Get every employee's Present/Absent status for one day (defaults to today)",
	}, h.getDailyReport)

	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "get_monthly_report",
		Description: "Get per-employee present/absent day counts for one month",
	}, h.getMonthlyReport)
}

type GetRosterParams struct{}

type GetRosterResult struct {
	Employees []roster.EmployeeID `json:"employees"`
}

func (h *toolHandler) getRoster(ctx context.Context, req *sdkmcp.CallToolRequest, params GetRosterParams) (*sdkmcp.CallToolResult, GetRosterResult, error) {
	members, err := h.svcs.Roster.Load(ctx)
	if err != nil {
		return nil, GetRosterResult{}, err
	}
	return nil, GetRosterResult{Employees: members}, nil
}

type SubmitAttendanceParams struct {
	Attendance []ledger.Entry `json:"attendance" jsonschema:"the complete (employee_id, status) set for today; statuses are Present or Absent"`
}

type SubmitAttendanceResult struct {
	Msg string `json:"msg"`
}

func (h *toolHandler) submitAttendance(ctx context.Context, req *sdkmcp.CallToolRequest, params SubmitAttendanceParams) (*sdkmcp.CallToolResult, SubmitAttendanceResult, error) {
	if err := h.svcs.Ledger.WriteToday(ctx, params.Attendance); err != nil {
		return nil, SubmitAttendanceResult{}, err
	}
	return nil, SubmitAttendanceResult{Msg: "attendance updated"}, nil
}

type GetDailyReportParams struct {
	Date string `json:"date,omitempty" jsonschema:"day to report on (YYYY-MM-DD); omit for today"`
}

func (h *toolHandler) getDailyReport(ctx context.Context, req *sdkmcp.CallToolRequest, params GetDailyReportParams) (*sdkmcp.CallToolResult, *report.Report, error) {
	d := h.clock.Today()
	if params.Date != "" {
		parsed, err := day.Parse(params.Date)
		if err != nil {
			return nil, nil, err
		}
		d = parsed
	}

	rep, err := h.svcs.Reports.Daily(ctx, d)
	if err != nil {
		return nil, nil, err
	}
	return nil, rep, nil
}

type GetMonthlyReportParams struct {
	Year  int `json:"year" jsonschema:"calendar year, e.g. 2024"`
	Month int `json:"month" jsonschema:"calendar month, 1-12"`
}

func (h *toolHandler) getMonthlyReport(ctx context.Context, req *sdkmcp.CallToolRequest, params GetMonthlyReportParams) (*sdkmcp.CallToolResult, *report.MonthlyReport, error) {
	if params.Month < 1 || params.Month > 12 {
		return nil, nil, fmt.Errorf("invalid month %d: want 1-12", params.Month)
	}
	if params.Year < 1 {
		return nil, nil, fmt.Errorf("invalid year %d", params.Year)
	}

	rep, err := h.svcs.Reports.Monthly(ctx, params.Year, time.Month(params.Month))
	if err != nil {
		return nil, nil, err
	}
	return nil, rep, nil
}
