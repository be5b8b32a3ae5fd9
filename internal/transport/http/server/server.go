// Package server assembles the fiber application.
package server

import (
	"time"

	"issue-stats/internal/metrics"
	"issue-stats/internal/transport/http/middleware"
	"issue-stats/internal/transport/http/server/handlers-fiber"
	"issue-stats/internal/usecase"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

// Options tunes the fiber application.
type Options struct {
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

// New builds the application with middleware, probes and API routes.
func New(opts Options, log *zap.SugaredLogger, uc usecase.InterfaceUsecase, m *metrics.Metrics) *fiber.App {
	log = log.Named("http")
	app := fiber.New(fiber.Config{
		ReadTimeout:           opts.ReadTimeout,
		WriteTimeout:          opts.WriteTimeout,
		DisableStartupMessage: true,
	})
	app.Use(recover.New())
	app.Use(requestid.New(requestid.Config{Generator: uuid.NewString}))
	app.Use(middleware.RequestLogger(log))
	if m != nil {
		app.Use(middleware.Metrics(m))
		app.Get("/metrics", adaptor.HTTPHandler(promhttp.HandlerFor(m.Registry, promhttp.HandlerOpts{})))
	}

	app.Get("/healthz", func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	})

	h := handlers_fiber.NewHandler(log, uc)
	handlers_fiber.RegisterHandlers(app, h)

	return app
}
