// Package liked holds the cars a user swiped right on.
package liked

import (
	"sync"

	"carmatch-service/internal/models"
)

// Collection is an insertion-ordered set of cars keyed by id.
type Collection struct {
	mu    sync.RWMutex
	order []int
	cars  map[int]models.Car
}

// NewCollection creates an empty collection.
func NewCollection() *Collection {
	return &Collection{cars: make(map[int]models.Car)}
}

// Add stores car unless a car with the same id is already present. It
// reports whether the car was added.
func (l *Collection) Add(car models.Car) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	if _, ok := l.cars[car.ID]; ok {
		return false
	}
	l.cars[car.ID] = car
	l.order = append(l.order, car.ID)
	return true
}

// Remove deletes the car with the given id.
func (l *Collection) Remove(id int) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	if _, ok := l.cars[id]; !ok {
		return false
	}
	delete(l.cars, id)
	for i, v := range l.order {
		if v == id {
			l.order = append(l.order[:i], l.order[i+1:]...)
			break
		}
	}
	return true
}

// Contains reports whether id has been liked.
func (l *Collection) Contains(id int) bool {
	l.mu.RLock()
	defer l.mu.RUnlock()
	_, ok := l.cars[id]
	return ok
}

// List returns the liked cars in the order they were liked.
func (l *Collection) List() []models.Car {
	l.mu.RLock()
	defer l.mu.RUnlock()
	out := make([]models.Car, 0, len(l.order))
	for _, id := range l.order {
		out = append(out, l.cars[id])
	}
	return out
}

// Len returns the number of liked cars.
func (l *Collection) Len() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return len(l.order)
}

// Clear empties the collection.
func (l *Collection) Clear() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.order = nil
	l.cars = make(map[int]models.Car)
}
