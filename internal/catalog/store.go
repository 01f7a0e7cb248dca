// Package catalog holds the in-memory car catalog used for swiping and search.
package catalog

import (
	"strings"
	"sync"

	"carmatch-service/internal/models"
)

// Store is the mutable car catalog. It is constructed from a seed snapshot
// and Reset restores that snapshot.
type Store struct {
	mu   sync.RWMutex
	seed []models.Car
	cars []models.Car
}

// New creates a Store seeded with a copy of cars.
func New(seed []models.Car) *Store {
	s := &Store{seed: clone(seed)}
	s.cars = clone(s.seed)
	return s
}

// All returns a copy of every car in catalog order.
func (s *Store) All() []models.Car {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return clone(s.cars)
}

// Len returns the number of cars in the catalog.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.cars)
}

// Get returns the car with the given id.
func (s *Store) Get(id int) (models.Car, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if i := s.indexOf(id); i >= 0 {
		return s.cars[i], true
	}
	return models.Car{}, false
}

// Add appends car under the next free id and returns the stored record.
// Any id set on car is ignored.
func (s *Store) Add(car models.Car) models.Car {
	s.mu.Lock()
	defer s.mu.Unlock()
	car.ID = s.nextID()
	s.cars = append(s.cars, car)
	return car
}

// Update merges u into the car with the given id.
func (s *Store) Update(id int, u models.CarUpdate) (models.Car, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	i := s.indexOf(id)
	if i < 0 {
		return models.Car{}, false
	}
	s.cars[i] = u.Apply(s.cars[i])
	return s.cars[i], true
}

// Delete removes the car with the given id.
func (s *Store) Delete(id int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	i := s.indexOf(id)
	if i < 0 {
		return false
	}
	s.cars = append(s.cars[:i], s.cars[i+1:]...)
	return true
}

// Search returns cars whose name or body style contains q, ignoring case.
// A blank query returns the whole catalog.
func (s *Store) Search(q string) []models.Car {
	if strings.TrimSpace(q) == "" {
		return s.All()
	}
	needle := strings.ToLower(q)

	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Car, 0)
	for _, c := range s.cars {
		if strings.Contains(strings.ToLower(c.CarName), needle) ||
			strings.Contains(strings.ToLower(c.BodyStyle), needle) {
			out = append(out, c)
		}
	}
	return out
}

// Filter returns the cars matching every bound in f.
func (s *Store) Filter(f models.CarFilter) []models.Car {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Car, 0)
	for _, c := range s.cars {
		if f.Matches(c) {
			out = append(out, c)
		}
	}
	return out
}

// Reset restores the seed snapshot.
func (s *Store) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cars = clone(s.seed)
}

// NextID returns the id the next Add would assign.
func (s *Store) NextID() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.nextID()
}

// nextID is one past the current maximum, so the id of a deleted highest
// car is handed out again.
func (s *Store) nextID() int {
	highest := 0
	for _, c := range s.cars {
		highest = max(highest, c.ID)
	}
	return highest + 1
}

func (s *Store) indexOf(id int) int {
	for i, c := range s.cars {
		if c.ID == id {
			return i
		}
	}
	return -1
}

func clone(cars []models.Car) []models.Car {
	out := make([]models.Car, len(cars))
	copy(out, cars)
	return out
}
