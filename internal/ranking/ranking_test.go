package ranking

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"carmatch-service/internal/models"
)

func defaults() models.Preferences {
	return models.Preferences{
		Budget: 50000, CarSize: 50, FuelEconomy: 50, Sportiness: 50,
		PriceImportance: 50, MileageImportance: 50, MPGImportance: 50,
		SportinessWeight: 50, SizeWeight: 50,
	}
}

func TestTierFor(t *testing.T) {
	tests := []struct {
		pct  int
		want Tier
	}{
		{0, TierSevere},
		{49, TierSevere},
		{50, TierHigh},
		{59, TierHigh},
		{60, TierMedium},
		{69, TierMedium},
		{70, TierGood},
		{100, TierGood},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, TierFor(tt.pct), "pct=%d", tt.pct)
	}
}

func TestSortByMatchIsStableDescending(t *testing.T) {
	cars := []models.Car{
		{ID: 1, MatchPercentage: 70},
		{ID: 2, MatchPercentage: 90},
		{ID: 3, MatchPercentage: 70},
		{ID: 4, MatchPercentage: 40},
		{ID: 5, MatchPercentage: 90},
	}

	sorted := SortByMatch(cars)

	ids := []int{}
	for _, c := range sorted {
		ids = append(ids, c.ID)
	}
	assert.Equal(t, []int{2, 5, 1, 3, 4}, ids)
	assert.Equal(t, 1, cars[0].ID, "input must not be reordered")
}

func TestStaticRankerKeepsStoredPercentages(t *testing.T) {
	r := NewRanker(nil)
	cars := []models.Car{{ID: 1, MatchPercentage: 10}, {ID: 2, MatchPercentage: 80}}

	ranked := r.Rank(cars, defaults())

	require.Len(t, ranked, 2)
	assert.Equal(t, 2, ranked[0].ID)
	assert.Equal(t, 80, ranked[0].MatchPercentage)
	assert.Equal(t, 10, ranked[1].MatchPercentage)
}

func TestWeightedScorerFactors(t *testing.T) {
	w := WeightedScorer{}
	car := models.Car{Price: 60000, Mileage: 75000, MPG: 25, Horsepower: 250, BodyStyle: "SUV"}

	f := w.Factors(car, defaults())

	assert.InDelta(t, 60, f.Price, 0.001)
	assert.InDelta(t, 50, f.Mileage, 0.001)
	assert.InDelta(t, 50, f.MPG, 0.001)
	assert.InDelta(t, 100, f.Sportiness, 0.001)
	assert.InDelta(t, 70, f.Size, 0.001)
}

func TestWeightedScorerScore(t *testing.T) {
	w := WeightedScorer{}
	car := models.Car{Price: 60000, Mileage: 75000, MPG: 25, Horsepower: 250, BodyStyle: "SUV"}

	// equal weights: mean of 60, 50, 50, 100, 70
	assert.Equal(t, 66, w.Score(car, defaults()))

	onlyPrice := defaults()
	onlyPrice.MileageImportance, onlyPrice.MPGImportance = 0, 0
	onlyPrice.SportinessWeight, onlyPrice.SizeWeight = 0, 0
	assert.Equal(t, 60, w.Score(car, onlyPrice))

	none := onlyPrice
	none.PriceImportance = 0
	assert.Equal(t, 50, w.Score(car, none))
}

func TestWeightedScorerStaysInRange(t *testing.T) {
	w := WeightedScorer{}
	prefs := defaults()
	prefs.Budget = 0
	prefs.Sportiness = 500

	for _, car := range []models.Car{
		{Price: 1_000_000, Mileage: 900_000, MPG: 0, Horsepower: 0},
		{Price: 1, Mileage: 0, MPG: 200, Horsepower: 2000, BodyStyle: "Truck"},
	} {
		s := w.Score(car, prefs)
		assert.GreaterOrEqual(t, s, 0)
		assert.LessOrEqual(t, s, 100)
	}
}

func TestWeightedRankerReordersByPreferences(t *testing.T) {
	r := NewRanker(WeightedScorer{})
	cars := []models.Car{
		{ID: 1, Price: 90000, Mileage: 140000, MPG: 15, Horsepower: 450, BodyStyle: "Coupe", MatchPercentage: 99},
		{ID: 2, Price: 20000, Mileage: 10000, MPG: 40, Horsepower: 250, BodyStyle: "Sedan", MatchPercentage: 1},
	}

	ranked := r.Rank(cars, defaults())
	assert.Equal(t, 2, ranked[0].ID)
	assert.NotEqual(t, 1, ranked[0].MatchPercentage)
}

func TestCards(t *testing.T) {
	cards := Cards([]models.Car{{ID: 1, MatchPercentage: 55}, {ID: 2, MatchPercentage: 95}})
	require.Len(t, cards, 2)
	assert.Equal(t, "high", cards[0].Tier)
	assert.Equal(t, "good", cards[1].Tier)
	assert.Equal(t, 2, cards[1].ID)
}
