package handler

import (
	"strconv"

	"github.com/gofiber/fiber/v3"

	"carmatch-service/internal/models"
	"carmatch-service/internal/service"
)

type SwipeHandler struct {
	svc *service.SwipeService
}

func NewSwipeHandler(svc *service.SwipeService) *SwipeHandler {
	return &SwipeHandler{svc: svc}
}

// GetStack returns the remaining cards, top first.
func (h *SwipeHandler) GetStack(c fiber.Ctx) error {
	uid, err := userID(c)
	if err != nil {
		return fail(c, err, "")
	}
	return c.JSON(h.svc.Stack(uid))
}

// FilterStack replaces the stack with the catalog cars matching the body.
func (h *SwipeHandler) FilterStack(c fiber.Ctx) error {
	uid, err := userID(c)
	if err != nil {
		return fail(c, err, "")
	}
	var f models.CarFilter
	if err := c.Bind().JSON(&f); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{Error: "invalid request body"})
	}
	return c.JSON(h.svc.FilterStack(uid, f))
}

// ResetStack re-seeds the stack from the full catalog.
func (h *SwipeHandler) ResetStack(c fiber.Ctx) error {
	uid, err := userID(c)
	if err != nil {
		return fail(c, err, "")
	}
	return c.JSON(h.svc.ResetStack(uid))
}

// Decide records an explicit like or pass.
func (h *SwipeHandler) Decide(c fiber.Ctx) error {
	uid, err := userID(c)
	if err != nil {
		return fail(c, err, "")
	}
	var req models.DecisionRequest
	if err := c.Bind().JSON(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{Error: "invalid request body"})
	}

	res, err := h.svc.Decide(c.Context(), uid, req.CarID, req.Decision)
	if err != nil {
		return fail(c, err, "failed to record decision")
	}
	return c.JSON(res)
}

// Gesture replays a drag on the top card.
func (h *SwipeHandler) Gesture(c fiber.Ctx) error {
	uid, err := userID(c)
	if err != nil {
		return fail(c, err, "")
	}
	var req models.GestureRequest
	if err := c.Bind().JSON(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{Error: "invalid request body"})
	}
	if len(req.Events) == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{Error: "events are required"})
	}

	res, err := h.svc.Gesture(c.Context(), uid, req)
	if err != nil {
		return fail(c, err, "failed to apply gesture")
	}
	return c.JSON(res)
}

// GetLiked returns the liked cars.
func (h *SwipeHandler) GetLiked(c fiber.Ctx) error {
	uid, err := userID(c)
	if err != nil {
		return fail(c, err, "")
	}
	return c.JSON(h.svc.Liked(uid))
}

// Unlike removes a car from the liked list.
func (h *SwipeHandler) Unlike(c fiber.Ctx) error {
	uid, err := userID(c)
	if err != nil {
		return fail(c, err, "")
	}
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{Error: "invalid car ID"})
	}

	if err := h.svc.Unlike(uid, id); err != nil {
		return fail(c, err, "failed to remove liked car")
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// GetHistory returns persisted decisions, newest first.
func (h *SwipeHandler) GetHistory(c fiber.Ctx) error {
	uid, err := userID(c)
	if err != nil {
		return fail(c, err, "")
	}
	limit := fiber.Query(c, "limit", 50)
	if limit < 1 || limit > 500 {
		limit = 50
	}

	res, err := h.svc.History(c.Context(), uid, limit)
	if err != nil {
		return fail(c, err, "failed to get history")
	}
	return c.JSON(res)
}

// ClearHistory deletes persisted decisions.
func (h *SwipeHandler) ClearHistory(c fiber.Ctx) error {
	uid, err := userID(c)
	if err != nil {
		return fail(c, err, "")
	}
	if err := h.svc.ClearHistory(c.Context(), uid); err != nil {
		return fail(c, err, "failed to clear history")
	}
	return c.SendStatus(fiber.StatusNoContent)
}
