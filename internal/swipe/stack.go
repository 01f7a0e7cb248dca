// Package swipe implements the swipe stack and the drag gesture state
// machine that decides like/pass for the top card.
package swipe

import (
	"sync"

	"carmatch-service/internal/models"
	"carmatch-service/internal/ranking"
)

// Stack is the ordered queue of cars awaiting a decision. Index 0 is the
// top, interactive card.
type Stack struct {
	mu   sync.RWMutex
	cars []models.Car
}

// NewStack creates a stack holding cars in the given order. Duplicate ids
// after the first occurrence are dropped.
func NewStack(cars []models.Car) *Stack {
	s := &Stack{}
	s.Replace(cars)
	return s
}

// Top returns the interactive card.
func (s *Stack) Top() (models.Car, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if len(s.cars) == 0 {
		return models.Car{}, false
	}
	return s.cars[0], true
}

// Cars returns a copy of the stack, top first.
func (s *Stack) Cars() []models.Car {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Car, len(s.cars))
	copy(out, s.cars)
	return out
}

// Len returns the number of cards left.
func (s *Stack) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.cars)
}

// Empty reports whether the stack is exhausted.
func (s *Stack) Empty() bool {
	return s.Len() == 0
}

// Find returns the car with the given id if it is still in the stack.
func (s *Stack) Find(id int) (models.Car, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, c := range s.cars {
		if c.ID == id {
			return c, true
		}
	}
	return models.Car{}, false
}

// Pop removes the car with the given id, leaving every other card in order.
// Removal is by id rather than position so a stale caller cannot drop the
// wrong card.
func (s *Stack) Pop(id int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	kept := s.cars[:0]
	removed := false
	for _, c := range s.cars {
		if c.ID == id {
			removed = true
			continue
		}
		kept = append(kept, c)
	}
	s.cars = kept
	return removed
}

// Replace swaps the stack contents, e.g. for a filtered view.
func (s *Stack) Replace(cars []models.Car) {
	seen := make(map[int]bool, len(cars))
	next := make([]models.Car, 0, len(cars))
	for _, c := range cars {
		if seen[c.ID] {
			continue
		}
		seen[c.ID] = true
		next = append(next, c)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.cars = next
}

// Reset re-seeds the stack from the full catalog sorted by match.
func (s *Stack) Reset(catalog []models.Car) {
	s.Replace(ranking.SortByMatch(catalog))
}

// Seed builds a stack from catalog ranked against prefs.
func Seed(catalog []models.Car, ranker *ranking.Ranker, prefs models.Preferences) *Stack {
	return NewStack(ranker.Rank(catalog, prefs))
}
