package handlers_fiber

import (
	"net/http"
	"time"

	"issue-stats/internal/mapper"
	"issue-stats/internal/transport/http/dto"

	"github.com/gofiber/fiber/v2"
)

// GetStats returns the issue aggregate, optionally scoped by ?project=.
func (h *Handler) GetStats(c *fiber.Ctx) error {
	project := c.Query("project")

	statsRes, err := h.uc.ComputeStats(c.Context(), project)
	if err != nil {
		h.log.Errorw("failed to compute stats", "project", project, "error", err.Error())
		return writeError(c, err)
	}
	return c.Status(http.StatusOK).JSON(mapper.ToStatsResponse(statsRes))
}

// GetDebug echoes the test parameter with a timestamp.
func (h *Handler) GetDebug(c *fiber.Ctx) error {
	res := dto.DebugResponse{
		Status:    "ok",
		Timestamp: h.now().UTC().Format(time.RFC3339Nano),
	}
	if test := c.Query("test"); test != "" {
		res.Test = &test
	}
	return c.Status(http.StatusOK).JSON(res)
}
