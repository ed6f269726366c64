// Package mcp exposes the attendance services as MCP tools so agent
// tooling can query and submit through the same domain layer as the
// REST API.
package mcp

import (
	"context"
	"log/slog"
	"time"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/rollcall-hq/rollcall/internal/domain/day"
	"github.com/rollcall-hq/rollcall/internal/domain/ledger"
	"github.com/rollcall-hq/rollcall/internal/domain/report"
	"github.com/rollcall-hq/rollcall/internal/domain/roster"
)

// RosterService defines roster operations needed by MCP.
type RosterService interface {
	Load(ctx context.Context) (roster.Roster, error)
}

// LedgerService defines submission operations needed by MCP.
type LedgerService interface {
	WriteToday(ctx context.Context, entries []ledger.Entry) error
}

// ReportService defines report operations needed by MCP.
type ReportService interface {
	Daily(ctx context.Context, d day.Day) (*report.Report, error)
	Monthly(ctx context.Context, year int, month time.Month) (*report.MonthlyReport, error)
}

// Services contains all domain services needed by MCP.
type Services struct {
	Roster  RosterService
	Ledger  LedgerService
	Reports ReportService
}

// Config contains server configuration.
type Config struct {
	Services Services
	Clock    *day.Clock
	Logger   *slog.Logger
}

// NewServer creates and configures an MCP server with all tools and middleware.
func NewServer(cfg Config) *sdkmcp.Server {
	server := sdkmcp.NewServer(&sdkmcp.Implementation{
		Name:    "rollcall",
		Version: "0.1.0",
	}, &sdkmcp.ServerOptions{
		Instructions: serverInstructions,
		Logger:       cfg.Logger,
	})

	server.AddReceivingMiddleware(trafficLoggingMiddleware(cfg.Logger, "inbound"))
	server.AddSendingMiddleware(trafficLoggingMiddleware(cfg.Logger, "outbound"))

	registerTools(server, cfg.Services, cfg.Clock)

	return server
}

const serverInstructions = `Rollcall tracks daily employee presence.
Use get_roster to see who exists, submit_attendance to replace today's
record (a submission is the complete day, not a delta), and
get_daily_report / get_monthly_report to read derived reports. Closed
days are immutable; reports for them never change.`
