package handler

import (
	"log/slog"
	"strings"

	"github.com/gofiber/fiber/v3"

	"carmatch-service/internal/auth"
	"carmatch-service/internal/middleware"
	"carmatch-service/internal/models"
	"carmatch-service/internal/session"
)

type AuthHandler struct {
	auth     *auth.Service
	sessions *session.Manager
}

func NewAuthHandler(a *auth.Service, sessions *session.Manager) *AuthHandler {
	return &AuthHandler{auth: a, sessions: sessions}
}

// Login signs the user in. Any password is accepted.
func (h *AuthHandler) Login(c fiber.Ctx) error {
	var req models.LoginRequest
	if err := c.Bind().JSON(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{Error: "invalid request body"})
	}
	req.Email = strings.TrimSpace(req.Email)
	if req.Email == "" {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{Error: "email is required"})
	}

	user, token, err := h.auth.Login(c.Context(), req.Email, req.Password, strings.TrimSpace(req.Name))
	if err != nil {
		slog.Error("failed to log in", "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(ErrorResponse{Error: "failed to log in"})
	}

	return c.JSON(models.LoginResponse{User: user, Token: token})
}

// Logout ends the session and discards the user's in-memory state.
func (h *AuthHandler) Logout(c fiber.Ctx) error {
	if err := h.auth.Logout(c.Context(), middleware.CurrentToken(c)); err != nil {
		slog.Error("failed to log out", "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(ErrorResponse{Error: "failed to log out"})
	}
	if u, ok := middleware.CurrentUser(c); ok {
		h.sessions.Drop(u.ID)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// Me returns the logged in user.
func (h *AuthHandler) Me(c fiber.Ctx) error {
	u, ok := middleware.CurrentUser(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(ErrorResponse{Error: "not logged in"})
	}
	return c.JSON(u)
}
