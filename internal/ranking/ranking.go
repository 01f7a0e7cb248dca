// Package ranking orders cars by match percentage and buckets them into
// severity tiers for display.
package ranking

import (
	"slices"

	"carmatch-service/internal/models"
)

// Tier is the visual severity bucket of a match percentage.
type Tier string

const (
	TierSevere Tier = "severe"
	TierHigh   Tier = "high"
	TierMedium Tier = "medium"
	TierGood   Tier = "good"
)

// TierFor buckets pct: <50 severe, [50,60) high, [60,70) medium, >=70 good.
func TierFor(pct int) Tier {
	switch {
	case pct < 50:
		return TierSevere
	case pct < 60:
		return TierHigh
	case pct < 70:
		return TierMedium
	default:
		return TierGood
	}
}

// SortByMatch returns a copy of cars sorted by descending match percentage.
// Ties keep their input order.
func SortByMatch(cars []models.Car) []models.Car {
	out := slices.Clone(cars)
	slices.SortStableFunc(out, func(a, b models.Car) int {
		return b.MatchPercentage - a.MatchPercentage
	})
	return out
}

// Ranker scores cars against preferences and sorts them.
type Ranker struct {
	scorer Scorer
}

// NewRanker creates a Ranker using scorer. A nil scorer keeps the
// catalog's stored percentages.
func NewRanker(scorer Scorer) *Ranker {
	if scorer == nil {
		scorer = StaticScorer{}
	}
	return &Ranker{scorer: scorer}
}

// Rank rescores copies of cars and sorts them by descending score.
func (r *Ranker) Rank(cars []models.Car, prefs models.Preferences) []models.Car {
	scored := make([]models.Car, len(cars))
	for i, c := range cars {
		c.MatchPercentage = r.scorer.Score(c, prefs)
		scored[i] = c
	}
	return SortByMatch(scored)
}

// Cards attaches tiers to cars for the stack view.
func Cards(cars []models.Car) []models.CardView {
	out := make([]models.CardView, len(cars))
	for i, c := range cars {
		out[i] = models.CardView{Car: c, Tier: string(TierFor(c.MatchPercentage))}
	}
	return out
}
