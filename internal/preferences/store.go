// Package preferences holds a user's match preferences.
package preferences

import (
	"sync"

	"carmatch-service/internal/models"
)

const (
	DefaultBudget = 50000
	DefaultWeight = 50
)

// Defaults returns the preferences every session starts with.
func Defaults() models.Preferences {
	return models.Preferences{
		Budget:            DefaultBudget,
		CarSize:           DefaultWeight,
		FuelEconomy:       DefaultWeight,
		Sportiness:        DefaultWeight,
		PriceImportance:   DefaultWeight,
		MileageImportance: DefaultWeight,
		MPGImportance:     DefaultWeight,
		SportinessWeight:  DefaultWeight,
		SizeWeight:        DefaultWeight,
	}
}

// Store holds one user's preferences. Values are stored as given; range
// checks are the caller's job.
type Store struct {
	mu    sync.RWMutex
	prefs models.Preferences
}

// NewStore creates a Store initialised to Defaults.
func NewStore() *Store {
	return &Store{prefs: Defaults()}
}

// Get returns the current preferences.
func (s *Store) Get() models.Preferences {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.prefs
}

// Update merges the provided fields and returns the result.
func (s *Store) Update(u models.PreferenceUpdate) models.Preferences {
	s.mu.Lock()
	defer s.mu.Unlock()
	merge(&s.prefs.Budget, u.Budget)
	merge(&s.prefs.CarSize, u.CarSize)
	merge(&s.prefs.FuelEconomy, u.FuelEconomy)
	merge(&s.prefs.Sportiness, u.Sportiness)
	merge(&s.prefs.PriceImportance, u.PriceImportance)
	merge(&s.prefs.MileageImportance, u.MileageImportance)
	merge(&s.prefs.MPGImportance, u.MPGImportance)
	merge(&s.prefs.SportinessWeight, u.SportinessWeight)
	merge(&s.prefs.SizeWeight, u.SizeWeight)
	return s.prefs
}

// ApplyOnboarding stores the first-run sliders. The size, economy and
// sportiness answers also seed the matching importance weights.
func (s *Store) ApplyOnboarding(req models.OnboardingRequest) models.Preferences {
	return s.Update(models.PreferenceUpdate{
		Budget:           &req.Budget,
		CarSize:          &req.CarSize,
		FuelEconomy:      &req.FuelEconomy,
		Sportiness:       &req.Sportiness,
		SizeWeight:       &req.CarSize,
		MPGImportance:    &req.FuelEconomy,
		SportinessWeight: &req.Sportiness,
	})
}

// Reset restores Defaults.
func (s *Store) Reset() models.Preferences {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.prefs = Defaults()
	return s.prefs
}

func merge(dst *int, v *int) {
	if v != nil {
		*dst = *v
	}
}
