// Package handlers_fiber wires HTTP delivery components.
package handlers_fiber

import (
	"time"

	"issue-stats/internal/usecase"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler serves the dashboard endpoints using service layer interfaces.
type Handler struct {
	log *zap.SugaredLogger
	uc  usecase.InterfaceUsecase
	now func() time.Time
}

// NewHandler constructs an HTTP handler with service dependencies.
func NewHandler(log *zap.SugaredLogger, usecase usecase.InterfaceUsecase) *Handler {
	return &Handler{
		log: log,
		uc:  usecase,
		now: time.Now,
	}
}

// RegisterHandlers mounts the handler routes on r.
func RegisterHandlers(r fiber.Router, h *Handler) {
	r.Get("/stats", h.GetStats)
	r.Get("/debug", h.GetDebug)
}
