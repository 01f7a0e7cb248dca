package handler

import (
	"github.com/gofiber/fiber/v3"

	"carmatch-service/internal/models"
	"carmatch-service/internal/service"
)

type PreferenceHandler struct {
	svc *service.PreferenceService
}

func NewPreferenceHandler(svc *service.PreferenceService) *PreferenceHandler {
	return &PreferenceHandler{svc: svc}
}

// GetPreferences returns the user's preferences with slider labels.
func (h *PreferenceHandler) GetPreferences(c fiber.Ctx) error {
	uid, err := userID(c)
	if err != nil {
		return fail(c, err, "")
	}
	return c.JSON(h.svc.Get(uid))
}

// UpdatePreferences merges the given fields.
func (h *PreferenceHandler) UpdatePreferences(c fiber.Ctx) error {
	uid, err := userID(c)
	if err != nil {
		return fail(c, err, "")
	}
	var req models.PreferenceUpdate
	if err := c.Bind().JSON(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{Error: "invalid request body"})
	}
	return c.JSON(h.svc.Update(uid, req))
}

// Onboard stores the first-run questionnaire.
func (h *PreferenceHandler) Onboard(c fiber.Ctx) error {
	uid, err := userID(c)
	if err != nil {
		return fail(c, err, "")
	}
	var req models.OnboardingRequest
	if err := c.Bind().JSON(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{Error: "invalid request body"})
	}
	return c.JSON(h.svc.Onboard(uid, req))
}

// ResetPreferences restores the defaults.
func (h *PreferenceHandler) ResetPreferences(c fiber.Ctx) error {
	uid, err := userID(c)
	if err != nil {
		return fail(c, err, "")
	}
	return c.JSON(h.svc.Reset(uid))
}
