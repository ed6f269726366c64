// Package httpapi serves the REST surface the attendance frontend
// consumes. It validates transport-level input, delegates to the domain
// services, and translates domain errors into HTTP responses.
package httpapi

import (
	"log/slog"

	"github.com/gofiber/fiber/v2"
	fiberlogger "github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/rollcall-hq/rollcall/internal/domain/day"
	"github.com/rollcall-hq/rollcall/internal/export"
)

// Services are the domain dependencies of the HTTP layer.
type Services struct {
	Roster  RosterService
	Ledger  LedgerService
	Reports ReportService
}

// Server wraps the fiber app.
type Server struct {
	app     *fiber.App
	handler *handler
}

// New creates the HTTP server with all routes registered.
func New(svcs Services, exports *export.Writer, clock *day.Clock, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.Default()
	}

	app := fiber.New()
	app.Use(recover.New())
	app.Use(fiberlogger.New())

	h := &handler{svcs: svcs, exports: exports, clock: clock, logger: logger}

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.SendString("ok")
	})

	api := app.Group("/api")
	api.Get("/employees", h.GetEmployees)
	api.Get("/today", h.GetToday)
	api.Post("/attendance", h.SubmitAttendance)
	api.Get("/report", h.GetDailyReport)
	api.Get("/report/monthly", h.GetMonthlyReport)
	api.Get("/reports", h.ListReports)
	api.Get("/reports/:name", h.DownloadReport)

	return &Server{app: app, handler: h}
}

// App exposes the underlying fiber app, mainly for tests.
func (s *Server) App() *fiber.App {
	return s.app
}

// Listen serves until Shutdown.
func (s *Server) Listen(addr string) error {
	return s.app.Listen(addr)
}

// Shutdown gracefully stops the server.
func (s *Server) Shutdown() error {
	return s.app.Shutdown()
}
