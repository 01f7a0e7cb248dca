package catalog

import (
	"encoding/json"
	"fmt"
	"os"

	"carmatch-service/internal/models"
)

// LoadSeedFile reads a JSON array of cars.
func LoadSeedFile(path string) ([]models.Car, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read seed file: %w", err)
	}
	return ParseSeed(data)
}

// ParseSeed decodes a JSON array of cars and rejects duplicate ids.
func ParseSeed(data []byte) ([]models.Car, error) {
	var cars []models.Car
	if err := json.Unmarshal(data, &cars); err != nil {
		return nil, fmt.Errorf("failed to decode seed: %w", err)
	}
	seen := make(map[int]bool, len(cars))
	for _, c := range cars {
		if seen[c.ID] {
			return nil, fmt.Errorf("duplicate car id %d in seed", c.ID)
		}
		seen[c.ID] = true
	}
	return cars, nil
}
