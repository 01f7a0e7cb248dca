package ranking

import (
	"math"
	"strings"

	"carmatch-service/internal/models"
)

// Scorer computes a 0-100 match percentage for a car.
type Scorer interface {
	Score(car models.Car, prefs models.Preferences) int
}

// StaticScorer returns the percentage stored on the car and ignores
// preferences.
type StaticScorer struct{}

// Score implements Scorer.
func (StaticScorer) Score(car models.Car, _ models.Preferences) int {
	return car.MatchPercentage
}

// bodySize places body styles on the same 0-100 axis as the car size slider.
var bodySize = map[string]float64{
	"convertible": 20,
	"coupe":       20,
	"hatchback":   30,
	"sedan":       50,
	"wagon":       60,
	"suv":         80,
	"minivan":     90,
	"van":         90,
	"truck":       90,
}

const (
	mileageZeroAt    = 150000.0 // miles at which the mileage fit reaches 0
	mpgFullAt        = 50.0     // mpg at which the economy fit reaches 100
	sportyHPFloor    = 100.0
	sportyHPCeiling  = 400.0
	overBudgetCutoff = 0.5 // fraction over budget at which the price fit reaches 0
)

// WeightedScorer derives the match percentage from the user's importance
// weights. Each factor produces a 0-100 fit and the result is the weighted
// mean of the fits, using PriceImportance, MileageImportance, MPGImportance,
// SportinessWeight and SizeWeight as weights. All weights zero scores 50.
type WeightedScorer struct{}

// Factors holds the per-factor fits behind a weighted score.
type Factors struct {
	Price      float64 `json:"price"`
	Mileage    float64 `json:"mileage"`
	MPG        float64 `json:"mpg"`
	Sportiness float64 `json:"sportiness"`
	Size       float64 `json:"size"`
}

// Score implements Scorer.
func (w WeightedScorer) Score(car models.Car, prefs models.Preferences) int {
	f := w.Factors(car, prefs)
	weights := []float64{
		float64(prefs.PriceImportance),
		float64(prefs.MileageImportance),
		float64(prefs.MPGImportance),
		float64(prefs.SportinessWeight),
		float64(prefs.SizeWeight),
	}
	fits := []float64{f.Price, f.Mileage, f.MPG, f.Sportiness, f.Size}

	var total, sum float64
	for i, wt := range weights {
		if wt <= 0 {
			continue
		}
		total += wt
		sum += wt * fits[i]
	}
	if total == 0 {
		return 50
	}
	return int(math.Round(clamp(sum / total)))
}

// Factors computes the individual fits for car.
func (WeightedScorer) Factors(car models.Car, prefs models.Preferences) Factors {
	return Factors{
		Price:      priceFit(car.Price, prefs.Budget),
		Mileage:    clamp(100 - float64(car.Mileage)/mileageZeroAt*100),
		MPG:        clamp(float64(car.MPG) / mpgFullAt * 100),
		Sportiness: 100 - math.Abs(sportiness(car.Horsepower)-clamp(float64(prefs.Sportiness))),
		Size:       100 - math.Abs(size(car.BodyStyle)-clamp(float64(prefs.CarSize))),
	}
}

func priceFit(price, budget int) float64 {
	if budget <= 0 {
		return 50
	}
	if price <= budget {
		return 100
	}
	over := float64(price-budget) / float64(budget)
	return clamp(100 - over/overBudgetCutoff*100)
}

func sportiness(hp int) float64 {
	return clamp((float64(hp) - sportyHPFloor) / (sportyHPCeiling - sportyHPFloor) * 100)
}

func size(bodyStyle string) float64 {
	if v, ok := bodySize[strings.ToLower(bodyStyle)]; ok {
		return v
	}
	return 50
}

func clamp(v float64) float64 {
	return math.Max(0, math.Min(100, v))
}
