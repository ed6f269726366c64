package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2/middleware/adaptor"
	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/rollcall-hq/rollcall/internal/config"
	"github.com/rollcall-hq/rollcall/internal/domain/day"
	"github.com/rollcall-hq/rollcall/internal/domain/ledger"
	"github.com/rollcall-hq/rollcall/internal/domain/report"
	"github.com/rollcall-hq/rollcall/internal/domain/roster"
	"github.com/rollcall-hq/rollcall/internal/domain/rotation"
	"github.com/rollcall-hq/rollcall/internal/export"
	"github.com/rollcall-hq/rollcall/internal/httpapi"
	"github.com/rollcall-hq/rollcall/internal/mcp"
	"github.com/rollcall-hq/rollcall/internal/rosterfile"
	"github.com/rollcall-hq/rollcall/internal/scheduler"
	"github.com/rollcall-hq/rollcall/internal/sqlite"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config error: %v\n", err)
		os.Exit(1)
	}

	// Use stderr for logs in stdio mode to keep stdout clean for JSON-RPC.
	logWriter := io.Writer(os.Stdout)
	if cfg.MCP.Mode == "stdio" {
		logWriter = os.Stderr
	}
	logger := slog.New(slog.NewTextHandler(logWriter, &slog.HandlerOptions{
		Level: parseLogLevel(cfg.Log.Level),
	}))

	loc, err := time.LoadLocation(cfg.Rotation.Timezone)
	if err != nil {
		logger.Error("invalid timezone", "timezone", cfg.Rotation.Timezone, "error", err)
		os.Exit(1)
	}
	clock := day.NewClock(loc)

	if err := ensureDBDir(cfg.DB.Path); err != nil {
		logger.Error("failed to prepare database path", "error", err)
		os.Exit(1)
	}

	db, err := sqlite.New(cfg.DB.Path)
	if err != nil {
		logger.Error("failed to open database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	if err := db.RunMigrations(); err != nil {
		logger.Error("failed to run migrations", "error", err)
		os.Exit(1)
	}

	ledgerRepo := sqlite.NewLedgerRepository(db)
	archiveRepo := sqlite.NewArchiveRepository(db)

	rosterSvc := roster.NewService(rosterfile.New(cfg.Roster.Path), logger)
	ledgerSvc := ledger.NewService(ledgerRepo, rosterSvc, clock, logger)
	rotationSvc := rotation.NewService(archiveRepo, clock, logger)
	reportSvc := report.NewService(rosterSvc, ledgerRepo, archiveRepo, clock, logger)
	exports := export.New(cfg.Reports.Dir)

	sched, err := scheduler.New(rotationSvc, clock, cfg.Rotation.Cutoff, logger)
	if err != nil {
		logger.Error("invalid rotation cutoff", "error", err)
		os.Exit(1)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	go sched.Run(ctx)

	mcpServer := mcp.NewServer(mcp.Config{
		Services: mcp.Services{
			Roster:  rosterSvc,
			Ledger:  ledgerSvc,
			Reports: reportSvc,
		},
		Clock:  clock,
		Logger: logger,
	})

	if cfg.MCP.Mode == "stdio" {
		runStdioMode(ctx, logger, mcpServer)
		return
	}

	runHTTPMode(ctx, logger, mcpServer, httpapi.New(httpapi.Services{
		Roster:  rosterSvc,
		Ledger:  ledgerSvc,
		Reports: reportSvc,
	}, exports, clock, logger), cfg.Server.Host, cfg.Server.Port)
}

func runStdioMode(ctx context.Context, logger *slog.Logger, mcpServer *sdkmcp.Server) {
	logger.Info("starting stdio transport")

	// Run blocks until stdin closes or the context is canceled.
	if err := mcpServer.Run(ctx, &sdkmcp.StdioTransport{}); err != nil {
		logger.Error("stdio server error", "error", err)
		os.Exit(1)
	}
}

func runHTTPMode(ctx context.Context, logger *slog.Logger, mcpServer *sdkmcp.Server, srv *httpapi.Server, host string, port int) {
	mcpHandler := sdkmcp.NewStreamableHTTPHandler(
		func(r *http.Request) *sdkmcp.Server { return mcpServer },
		&sdkmcp.StreamableHTTPOptions{
			Stateless:      false,
			SessionTimeout: 30 * time.Minute,
		},
	)
	srv.App().All("/mcp", adaptor.HTTPHandler(mcpHandler))
	srv.App().All("/mcp/*", adaptor.HTTPHandler(mcpHandler))

	addr := fmt.Sprintf("%s:%d", host, port)
	go func() {
		logger.Info("server listening", "addr", addr)
		if err := srv.Listen(addr); err != nil {
			logger.Error("server error", "error", err)
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")
	if err := srv.Shutdown(); err != nil {
		logger.Error("shutdown error", "error", err)
	}
}

func ensureDBDir(path string) error {
	if path == ":memory:" || path == "" {
		return nil
	}
	dir := filepath.Dir(path)
	if dir == "." {
		return nil
	}
	return os.MkdirAll(dir, 0o755)
}

func parseLogLevel(level string) slog.Level {
	switch level {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
