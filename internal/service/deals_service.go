package service

import (
	"context"
	"fmt"

	"carmatch-service/internal/catalog"
	"carmatch-service/internal/listings"
	"carmatch-service/internal/models"
)

// DealsService looks up where a catalog car can be bought.
type DealsService struct {
	store  *catalog.Store
	finder listings.DealFinder
}

func NewDealsService(store *catalog.Store, finder listings.DealFinder) *DealsService {
	return &DealsService{store: store, finder: finder}
}

// ForCar returns local and marketplace offers for car id.
func (s *DealsService) ForCar(ctx context.Context, id int) (models.DealsResponse, error) {
	car, ok := s.store.Get(id)
	if !ok {
		return models.DealsResponse{}, fmt.Errorf("car %d: %w", id, ErrCarNotFound)
	}
	deals, err := s.finder.Deals(ctx, car)
	if err != nil {
		return models.DealsResponse{}, fmt.Errorf("failed to find deals: %w", err)
	}
	return deals, nil
}
