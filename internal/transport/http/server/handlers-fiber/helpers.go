package handlers_fiber

import (
	"context"
	"errors"
	"net/http"

	"issue-stats/internal/entities"
	"issue-stats/internal/transport/http/dto"

	"github.com/gofiber/fiber/v2"
)

func writeError(c *fiber.Ctx, err error) error {
	status := http.StatusInternalServerError
	label := "failed to compute issue statistics"

	switch {
	case errors.Is(err, entities.ErrInvalidArgument):
		status = http.StatusBadRequest
		label = "invalid request"
	case errors.Is(err, entities.ErrProjectNotFound):
		status = http.StatusNotFound
		label = "project not found"
	case errors.Is(err, context.DeadlineExceeded):
		status = http.StatusGatewayTimeout
		label = "issue tracker request timed out"
	case errors.Is(err, entities.ErrUpstream):
		status = http.StatusBadGateway
		label = "issue tracker request failed"
	}

	return c.Status(status).JSON(errorResponse(label, err.Error()))
}

func errorResponse(label, msg string) dto.ErrorResponse {
	return dto.ErrorResponse{Error: label, Message: msg}
}
