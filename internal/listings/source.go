// Package listings serves geolocated car listings for the map: bounds
// queries, a debounced viewport, marker clustering and popups.
package listings

import (
	"context"
	"fmt"

	"carmatch-service/internal/models"
)

// Source returns the listings strictly inside a bounding box.
type Source interface {
	InBounds(ctx context.Context, b models.Bounds) ([]models.CarListing, error)
}

// FixtureSource serves a fixed set of listings.
type FixtureSource struct {
	listings []models.CarListing
}

// NewFixtureSource returns a source over listings. With no arguments it
// serves the three Dallas demo listings.
func NewFixtureSource(listings ...models.CarListing) *FixtureSource {
	if len(listings) == 0 {
		listings = demoListings()
	}
	return &FixtureSource{listings: listings}
}

// InBounds filters the fixture with strict inequalities on every edge.
func (s *FixtureSource) InBounds(ctx context.Context, b models.Bounds) ([]models.CarListing, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	out := make([]models.CarListing, 0, len(s.listings))
	for _, l := range s.listings {
		if b.Contains(l.Lat, l.Lng) {
			out = append(out, l)
		}
	}
	return out, nil
}

func demoListings() []models.CarListing {
	return []models.CarListing{
		{ID: "1", Title: "2018 Honda Civic Sport", Price: 15990, Mileage: 62000, Lat: 32.7767, Lng: -96.7970, Source: models.SourceDealership, URL: "https://example.com/civic"},
		{ID: "2", Title: "2020 Toyota Corolla LE", Price: 17450, Mileage: 38000, Lat: 32.9537, Lng: -96.7297, Source: models.SourceFacebook, URL: "https://fb.com/listing/xyz"},
		{ID: "3", Title: "2019 Mazda 3 Hatch", Price: 16900, Mileage: 41000, Lat: 32.9858, Lng: -96.7501, Source: models.SourceDealership, URL: "https://example.com/mazda3"},
	}
}

// CountLabel renders the result counter shown over the map.
func CountLabel(n int) string {
	if n == 1 {
		return "1 result"
	}
	return fmt.Sprintf("%d results", n)
}
