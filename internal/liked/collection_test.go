package liked

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"carmatch-service/internal/models"
)

func TestAddIsIdempotent(t *testing.T) {
	l := NewCollection()
	assert.True(t, l.Add(models.Car{ID: 1, CarName: "Civic"}))
	assert.False(t, l.Add(models.Car{ID: 1, CarName: "Civic again"}))

	assert.Equal(t, 1, l.Len())
	assert.Equal(t, "Civic", l.List()[0].CarName)
}

func TestListKeepsInsertionOrder(t *testing.T) {
	l := NewCollection()
	for _, id := range []int{5, 2, 9} {
		l.Add(models.Car{ID: id})
	}
	l.Add(models.Car{ID: 2})

	var got []int
	for _, c := range l.List() {
		got = append(got, c.ID)
	}
	assert.Equal(t, []int{5, 2, 9}, got)
}

func TestRemove(t *testing.T) {
	l := NewCollection()
	l.Add(models.Car{ID: 1})
	l.Add(models.Car{ID: 2})
	l.Add(models.Car{ID: 3})

	assert.True(t, l.Remove(2))
	assert.False(t, l.Remove(2))
	assert.False(t, l.Contains(2))
	assert.True(t, l.Contains(3))
	assert.Len(t, l.List(), 2)

	// removed cars can be liked again and go to the end
	assert.True(t, l.Add(models.Car{ID: 2}))
	assert.Equal(t, 2, l.List()[2].ID)
}

func TestClear(t *testing.T) {
	l := NewCollection()
	l.Add(models.Car{ID: 1})
	l.Clear()

	assert.Zero(t, l.Len())
	assert.Empty(t, l.List())
	assert.False(t, l.Contains(1))
}
