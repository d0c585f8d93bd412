package httpapi

import (
	"errors"

	"github.com/gofiber/fiber/v3"
	"github.com/rwandev/busfleet/internal/common"
)

// statusFromError maps service sentinels to HTTP status codes.
func statusFromError(err error) int {
	switch {
	case errors.Is(err, common.ErrValidation),
		errors.Is(err, common.ErrAlreadyExists),
		errors.Is(err, common.ErrInvalidReference),
		errors.Is(err, common.ErrInvalidCredentials):
		return fiber.StatusBadRequest
	case errors.Is(err, common.ErrNotFound):
		return fiber.StatusNotFound
	case errors.Is(err, common.ErrUnauthenticated):
		return fiber.StatusUnauthorized
	case errors.Is(err, common.ErrInvalidToken),
		errors.Is(err, common.ErrTokenExpired):
		return fiber.StatusForbidden
	default:
		return fiber.StatusInternalServerError
	}
}

// messageFromError returns the client-facing message for a mapped error.
// Validation errors keep their detail; everything else gets a fixed phrase
// so store internals stay out of responses.
func messageFromError(err error) string {
	switch {
	case errors.Is(err, common.ErrValidation):
		return err.Error()
	case errors.Is(err, common.ErrAlreadyExists):
		return "Duplicate record"
	case errors.Is(err, common.ErrInvalidReference):
		return "Invalid reference"
	case errors.Is(err, common.ErrInvalidCredentials):
		return "Invalid email or password"
	case errors.Is(err, common.ErrNotFound):
		return "Not found"
	case errors.Is(err, common.ErrTokenExpired):
		return "Token expired"
	case errors.Is(err, common.ErrInvalidToken):
		return "Invalid token"
	case errors.Is(err, common.ErrUnauthenticated):
		return "Access denied"
	default:
		return "Server error"
	}
}

func (s *Server) errorJSON(c fiber.Ctx, err error) error {
	status := statusFromError(err)
	if status == fiber.StatusInternalServerError {
		s.logger.Error(c.Context(), "request failed", "path", c.Path(), "error", err.Error())
	}
	return c.Status(status).JSON(fiber.Map{"error": messageFromError(err)})
}
