package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"carmatch-service/internal/catalog"
	"carmatch-service/internal/models"
	"carmatch-service/internal/repository"
)

// CatalogService exposes the shared car catalog.
type CatalogService struct {
	store *catalog.Store
}

func NewCatalogService(store *catalog.Store) *CatalogService {
	return &CatalogService{store: store}
}

// LoadCatalogSeed returns the seed cars for the configured source. A nil
// repo means the file seed is used as is. Otherwise the cars table is
// topped up from fileSeed and read back, so Postgres rows win.
func LoadCatalogSeed(ctx context.Context, repo *repository.CarRepository, fileSeed []models.Car) ([]models.Car, error) {
	if repo == nil {
		return fileSeed, nil
	}
	n, err := repo.SeedCars(ctx, fileSeed)
	if err != nil {
		return nil, fmt.Errorf("failed to seed cars table: %w", err)
	}
	if n > 0 {
		slog.Info("seeded cars table", "inserted", n)
	}
	cars, err := repo.ListCars(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load cars: %w", err)
	}
	return cars, nil
}

// List returns cars matching q, or matching f when q is empty. With
// neither it returns the full catalog.
func (s *CatalogService) List(q string, f models.CarFilter) models.CarListResponse {
	var cars []models.Car
	switch {
	case strings.TrimSpace(q) != "":
		cars = s.store.Search(q)
		if !f.IsZero() {
			cars = filterCars(cars, f)
		}
	case !f.IsZero():
		cars = s.store.Filter(f)
	default:
		cars = s.store.All()
	}
	return models.CarListResponse{Total: len(cars), Data: cars}
}

// Get returns a car by id.
func (s *CatalogService) Get(id int) (models.Car, error) {
	c, ok := s.store.Get(id)
	if !ok {
		return models.Car{}, ErrCarNotFound
	}
	return c, nil
}

// Create adds a car; its id is assigned by the store.
func (s *CatalogService) Create(c models.Car) (models.Car, error) {
	if strings.TrimSpace(c.CarName) == "" {
		return models.Car{}, fmt.Errorf("%w: car_name is required", ErrInvalidCar)
	}
	added := s.store.Add(c)
	slog.Info("car added", "id", added.ID, "name", added.CarName)
	return added, nil
}

// Update merges u into the car with the given id.
func (s *CatalogService) Update(id int, u models.CarUpdate) (models.Car, error) {
	if u.CarName != nil && strings.TrimSpace(*u.CarName) == "" {
		return models.Car{}, fmt.Errorf("%w: car_name cannot be blank", ErrInvalidCar)
	}
	c, ok := s.store.Update(id, u)
	if !ok {
		return models.Car{}, ErrCarNotFound
	}
	return c, nil
}

// Delete removes a car from the catalog.
func (s *CatalogService) Delete(id int) error {
	if !s.store.Delete(id) {
		return ErrCarNotFound
	}
	slog.Info("car deleted", "id", id)
	return nil
}

// Reset restores the seed catalog.
func (s *CatalogService) Reset() models.CarListResponse {
	s.store.Reset()
	slog.Info("catalog reset", "cars", s.store.Len())
	return s.List("", models.CarFilter{})
}

// All returns a snapshot of the catalog.
func (s *CatalogService) All() []models.Car {
	return s.store.All()
}

func filterCars(cars []models.Car, f models.CarFilter) []models.Car {
	out := make([]models.Car, 0, len(cars))
	for _, c := range cars {
		if f.Matches(c) {
			out = append(out, c)
		}
	}
	return out
}
