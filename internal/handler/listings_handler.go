package handler

import (
	"fmt"
	"strconv"

	"github.com/gofiber/fiber/v3"

	"carmatch-service/internal/models"
	"carmatch-service/internal/service"
)

type ListingsHandler struct {
	svc *service.ListingsService
}

func NewListingsHandler(svc *service.ListingsService) *ListingsHandler {
	return &ListingsHandler{svc: svc}
}

// GetListings returns listings inside ?north&south&east&west.
func (h *ListingsHandler) GetListings(c fiber.Ctx) error {
	b, err := parseBounds(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{Error: err.Error()})
	}

	res, err := h.svc.InBounds(c.Context(), b)
	if err != nil {
		return fail(c, err, "failed to load listings")
	}
	return c.JSON(res)
}

// ViewportIdle reports where the user's map settled. The result is
// fetched after the debounce window.
func (h *ListingsHandler) ViewportIdle(c fiber.Ctx) error {
	uid, err := userID(c)
	if err != nil {
		return fail(c, err, "")
	}
	var b models.Bounds
	if err := c.Bind().JSON(&b); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{Error: "invalid request body"})
	}

	state, err := h.svc.Idle(uid, b)
	if err != nil {
		return fail(c, err, "failed to update viewport")
	}
	return c.Status(fiber.StatusAccepted).JSON(state)
}

// GetViewport returns the user's current map layer state.
func (h *ListingsHandler) GetViewport(c fiber.Ctx) error {
	uid, err := userID(c)
	if err != nil {
		return fail(c, err, "")
	}
	return c.JSON(h.svc.Viewport(uid))
}

// ClickListing opens the popup for a marker on the user's map.
func (h *ListingsHandler) ClickListing(c fiber.Ctx) error {
	uid, err := userID(c)
	if err != nil {
		return fail(c, err, "")
	}
	w, err := h.svc.Click(uid, c.Params("id"))
	if err != nil {
		return fail(c, err, "failed to open listing")
	}
	return c.JSON(w)
}

func parseBounds(c fiber.Ctx) (models.Bounds, error) {
	var b models.Bounds
	fields := []struct {
		key string
		dst *float64
	}{
		{"north", &b.North},
		{"south", &b.South},
		{"east", &b.East},
		{"west", &b.West},
	}
	for _, f := range fields {
		raw := c.Query(f.key)
		if raw == "" {
			return models.Bounds{}, fmt.Errorf("%s is required", f.key)
		}
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return models.Bounds{}, fmt.Errorf("invalid %s", f.key)
		}
		*f.dst = v
	}
	return b, nil
}
