package handler

import (
	"errors"
	"log/slog"

	"github.com/gofiber/fiber/v3"

	"carmatch-service/internal/middleware"
	"carmatch-service/internal/service"
)

type ErrorResponse struct {
	Error string `json:"error"`
}

// Health returns service health status.
func Health(c fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"status":  "ok",
		"service": "carmatch-service",
	})
}

func userID(c fiber.Ctx) (string, error) {
	u, ok := middleware.CurrentUser(c)
	if !ok {
		return "", service.ErrUnauthenticated
	}
	return u.ID, nil
}

// fail maps service errors to HTTP responses.
func fail(c fiber.Ctx, err error, msg string) error {
	switch {
	case errors.Is(err, service.ErrUnauthenticated):
		return c.Status(fiber.StatusUnauthorized).JSON(ErrorResponse{Error: err.Error()})
	case errors.Is(err, service.ErrCarNotFound),
		errors.Is(err, service.ErrListingNotFound):
		return c.Status(fiber.StatusNotFound).JSON(ErrorResponse{Error: err.Error()})
	case errors.Is(err, service.ErrCarNotInStack),
		errors.Is(err, service.ErrNotTopCard):
		return c.Status(fiber.StatusConflict).JSON(ErrorResponse{Error: err.Error()})
	case errors.Is(err, service.ErrInvalidDecision),
		errors.Is(err, service.ErrInvalidGesture),
		errors.Is(err, service.ErrInvalidCar),
		errors.Is(err, service.ErrInvalidBounds):
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{Error: err.Error()})
	}
	slog.Error(msg, "error", err)
	return c.Status(fiber.StatusInternalServerError).JSON(ErrorResponse{Error: msg})
}
