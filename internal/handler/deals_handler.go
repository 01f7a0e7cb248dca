package handler

import (
	"strconv"

	"github.com/gofiber/fiber/v3"

	"carmatch-service/internal/service"
)

type DealsHandler struct {
	svc *service.DealsService
}

func NewDealsHandler(svc *service.DealsService) *DealsHandler {
	return &DealsHandler{svc: svc}
}

// GetDeals returns local dealer and marketplace offers for a car.
func (h *DealsHandler) GetDeals(c fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{Error: "invalid car ID"})
	}

	deals, err := h.svc.ForCar(c.Context(), id)
	if err != nil {
		return fail(c, err, "failed to get deals")
	}
	return c.JSON(deals)
}
