package listings

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"carmatch-service/internal/models"
)

func TestFixtureDeals(t *testing.T) {
	car := models.Car{ID: 1, CarName: "Toyota Camry", Year: 2021, Price: 24500}

	got, err := NewFixtureDeals().Deals(context.Background(), car)
	require.NoError(t, err)

	assert.Equal(t, 1, got.CarID)
	assert.Equal(t, "2021 Toyota Camry", got.Title)
	require.Len(t, got.Dealers, 5)
	require.Len(t, got.Marketplace, 4)

	assert.Equal(t, models.DealerOffer{
		Dealer:        "City Auto Sales",
		Price:         24500,
		Location:      "Downtown",
		DistanceMiles: 2.3,
		URL:           "https://deals.example.com/city-auto-sales?car=1",
	}, got.Dealers[0])
	assert.Equal(t, 25500, got.Dealers[4].Price)
	assert.Equal(t, "https://market.example.com/facebook-marketplace?car=1", got.Marketplace[3].URL)
	assert.Equal(t, 21500, got.Marketplace[3].Price)
}

func TestFixtureDealsClampPrice(t *testing.T) {
	got, err := NewFixtureDeals().Deals(context.Background(), models.Car{ID: 9, CarName: "Beater", Year: 1999, Price: 500})
	require.NoError(t, err)
	for _, m := range got.Marketplace {
		assert.GreaterOrEqual(t, m.Price, 0)
	}
	assert.Zero(t, got.Marketplace[3].Price)
}

func TestFixtureDealsCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := NewFixtureDeals().Deals(ctx, models.Car{ID: 1})
	assert.ErrorIs(t, err, context.Canceled)
}
