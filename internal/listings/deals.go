package listings

import (
	"context"
	"strconv"

	"carmatch-service/internal/models"
)

// DealFinder returns local and marketplace offers for a car.
type DealFinder interface {
	Deals(ctx context.Context, car models.Car) (models.DealsResponse, error)
}

type dealerTemplate struct {
	dealer   string
	delta    int
	location string
	distance float64
}

type marketplaceTemplate struct {
	platform  string
	delta     int
	condition string
	location  string
}

// FixtureDeals prices a fixed set of dealers and marketplaces around each
// car's list price.
type FixtureDeals struct {
	dealers     []dealerTemplate
	marketplace []marketplaceTemplate
}

func NewFixtureDeals() *FixtureDeals {
	return &FixtureDeals{
		dealers: []dealerTemplate{
			{"City Auto Sales", 0, "Downtown", 2.3},
			{"Premium Motors", 700, "Northside", 5.1},
			{"AutoMax Dealership", -700, "Eastside", 7.8},
			{"Best Buy Auto", 400, "Westside", 4.5},
			{"Elite Car Center", 1000, "Southside", 9.2},
		},
		marketplace: []marketplaceTemplate{
			{"AutoTrader", -1000, "Excellent", "San Francisco, CA"},
			{"Cars.com", 300, "Very Good", "Oakland, CA"},
			{"CarGurus", -1600, "Excellent", "San Jose, CA"},
			{"Facebook Marketplace", -3000, "Good", "Berkeley, CA"},
		},
	}
}

// Deals builds offers for car. Prices never drop below zero.
func (f *FixtureDeals) Deals(ctx context.Context, car models.Car) (models.DealsResponse, error) {
	if err := ctx.Err(); err != nil {
		return models.DealsResponse{}, err
	}

	resp := models.DealsResponse{
		CarID:       car.ID,
		Title:       strconv.Itoa(car.Year) + " " + car.CarName,
		Dealers:     make([]models.DealerOffer, 0, len(f.dealers)),
		Marketplace: make([]models.MarketplaceOffer, 0, len(f.marketplace)),
	}
	q := "?car=" + strconv.Itoa(car.ID)
	for _, d := range f.dealers {
		resp.Dealers = append(resp.Dealers, models.DealerOffer{
			Dealer:        d.dealer,
			Price:         max(car.Price+d.delta, 0),
			Location:      d.location,
			DistanceMiles: d.distance,
			URL:           "https://deals.example.com/" + slug(d.dealer) + q,
		})
	}
	for _, m := range f.marketplace {
		resp.Marketplace = append(resp.Marketplace, models.MarketplaceOffer{
			Platform:  m.platform,
			Price:     max(car.Price+m.delta, 0),
			Condition: m.condition,
			Location:  m.location,
			URL:       "https://market.example.com/" + slug(m.platform) + q,
		})
	}
	return resp, nil
}

func slug(s string) string {
	out := make([]byte, 0, len(s))
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c >= 'a' && c <= 'z', c >= '0' && c <= '9':
			out = append(out, c)
		case c >= 'A' && c <= 'Z':
			out = append(out, c+'a'-'A')
		case len(out) > 0 && out[len(out)-1] != '-':
			out = append(out, '-')
		}
	}
	for len(out) > 0 && out[len(out)-1] == '-' {
		out = out[:len(out)-1]
	}
	return string(out)
}
