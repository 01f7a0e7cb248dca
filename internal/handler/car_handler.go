package handler

import (
	"fmt"
	"strconv"

	"github.com/gofiber/fiber/v3"

	"carmatch-service/internal/models"
	"carmatch-service/internal/service"
)

type CarHandler struct {
	svc *service.CatalogService
}

func NewCarHandler(svc *service.CatalogService) *CarHandler {
	return &CarHandler{svc: svc}
}

// ListCars searches with ?q= and/or filters with the CarFilter params.
func (h *CarHandler) ListCars(c fiber.Ctx) error {
	f, err := parseFilter(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{Error: err.Error()})
	}
	return c.JSON(h.svc.List(c.Query("q"), f))
}

// GetCar returns a car by ID.
func (h *CarHandler) GetCar(c fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{Error: "invalid car ID"})
	}

	car, err := h.svc.Get(id)
	if err != nil {
		return fail(c, err, "failed to get car")
	}
	return c.JSON(car)
}

// CreateCar adds a car. Any id in the body is ignored.
func (h *CarHandler) CreateCar(c fiber.Ctx) error {
	var req models.Car
	if err := c.Bind().JSON(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{Error: "invalid request body"})
	}

	car, err := h.svc.Create(req)
	if err != nil {
		return fail(c, err, "failed to create car")
	}
	return c.Status(fiber.StatusCreated).JSON(car)
}

// UpdateCar applies a partial update.
func (h *CarHandler) UpdateCar(c fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{Error: "invalid car ID"})
	}

	var req models.CarUpdate
	if err := c.Bind().JSON(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{Error: "invalid request body"})
	}

	car, err := h.svc.Update(id, req)
	if err != nil {
		return fail(c, err, "failed to update car")
	}
	return c.JSON(car)
}

// DeleteCar removes a car from the catalog.
func (h *CarHandler) DeleteCar(c fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{Error: "invalid car ID"})
	}

	if err := h.svc.Delete(id); err != nil {
		return fail(c, err, "failed to delete car")
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// ResetCatalog restores the seed catalog.
func (h *CarHandler) ResetCatalog(c fiber.Ctx) error {
	return c.JSON(h.svc.Reset())
}

func parseFilter(c fiber.Ctx) (models.CarFilter, error) {
	f := models.CarFilter{BodyStyle: c.Query("body_style")}
	fields := []struct {
		key string
		dst **int
	}{
		{"min_price", &f.MinPrice},
		{"max_price", &f.MaxPrice},
		{"min_year", &f.MinYear},
		{"max_year", &f.MaxYear},
		{"min_mpg", &f.MinMPG},
		{"max_mileage", &f.MaxMileage},
	}
	for _, field := range fields {
		raw := c.Query(field.key)
		if raw == "" {
			continue
		}
		v, err := strconv.Atoi(raw)
		if err != nil {
			return models.CarFilter{}, fmt.Errorf("invalid %s", field.key)
		}
		*field.dst = &v
	}
	return f, nil
}
