package service

import (
	"context"
	"fmt"
	"math"

	"carmatch-service/internal/listings"
	"carmatch-service/internal/models"
	"carmatch-service/internal/session"
)

// ListingsService answers map queries, both one-shot bounds lookups and
// the per-user debounced viewport.
type ListingsService struct {
	source   listings.Source
	sessions *session.Manager
}

func NewListingsService(source listings.Source, sessions *session.Manager) *ListingsService {
	return &ListingsService{source: source, sessions: sessions}
}

// InBounds returns the listings strictly inside b with their clusters.
// Inverted bounds are valid and match nothing.
func (s *ListingsService) InBounds(ctx context.Context, b models.Bounds) (models.ListingsResponse, error) {
	if err := validateBounds(b); err != nil {
		return models.ListingsResponse{}, err
	}
	found, err := s.source.InBounds(ctx, b)
	if err != nil {
		return models.ListingsResponse{}, fmt.Errorf("failed to query listings: %w", err)
	}
	return models.ListingsResponse{
		Bounds:   b,
		Count:    len(found),
		Label:    listings.CountLabel(len(found)),
		Data:     found,
		Clusters: listings.Cluster(listings.Markers(found), listings.DefaultClusterCell),
	}, nil
}

// Idle reports that the user's map settled on b. The fetch happens after
// the debounce window; poll Viewport for the result.
func (s *ListingsService) Idle(userID string, b models.Bounds) (models.ViewportState, error) {
	if err := validateBounds(b); err != nil {
		return models.ViewportState{}, err
	}
	v := s.sessions.Get(userID).Viewport
	v.Idle(b)
	return v.State(), nil
}

// Viewport returns the user's current map layer state.
func (s *ListingsService) Viewport(userID string) models.ViewportState {
	return s.sessions.Get(userID).Viewport.State()
}

// Click opens the popup for a listing currently shown to the user.
func (s *ListingsService) Click(userID, listingID string) (models.InfoWindow, error) {
	w, ok := s.sessions.Get(userID).Viewport.Click(listingID)
	if !ok {
		return models.InfoWindow{}, ErrListingNotFound
	}
	return w, nil
}

func validateBounds(b models.Bounds) error {
	for _, v := range []float64{b.North, b.South, b.East, b.West} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("%w: coordinates must be finite", ErrInvalidBounds)
		}
	}
	if b.North > 90 || b.South < -90 {
		return fmt.Errorf("%w: latitude out of range", ErrInvalidBounds)
	}
	return nil
}
