package repository

import (
	"context"
	"database/sql"
	"fmt"

	"carmatch-service/internal/models"
)

// CarRepository reads and seeds the catalog table. The in-memory catalog
// store stays authoritative at runtime; Postgres is only a seed source.
type CarRepository struct {
	db *sql.DB
}

func NewCarRepository(db *sql.DB) *CarRepository {
	return &CarRepository{db: db}
}

// ListCars returns every car ordered by id.
func (r *CarRepository) ListCars(ctx context.Context) ([]models.Car, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, car_name, year, mpg, horsepower, mileage,
		       match_percentage, price, body_style, image_url
		FROM cars
		ORDER BY id
	`)
	if err != nil {
		return nil, fmt.Errorf("query cars: %w", err)
	}
	defer rows.Close()

	cars := []models.Car{}
	for rows.Next() {
		var c models.Car
		if err := rows.Scan(
			&c.ID, &c.CarName, &c.Year, &c.MPG, &c.Horsepower, &c.Mileage,
			&c.MatchPercentage, &c.Price, &c.BodyStyle, &c.ImageURL,
		); err != nil {
			return nil, fmt.Errorf("scan car: %w", err)
		}
		cars = append(cars, c)
	}
	return cars, rows.Err()
}

// SeedCars inserts cars whose id is not present yet and returns how many
// rows were added.
func (r *CarRepository) SeedCars(ctx context.Context, cars []models.Car) (int, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("begin seed: %w", err)
	}
	defer tx.Rollback()

	inserted := 0
	for _, c := range cars {
		res, err := tx.ExecContext(ctx, `
			INSERT INTO cars (id, car_name, year, mpg, horsepower, mileage,
			                  match_percentage, price, body_style, image_url)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
			ON CONFLICT (id) DO NOTHING
		`, c.ID, c.CarName, c.Year, c.MPG, c.Horsepower, c.Mileage,
			c.MatchPercentage, c.Price, c.BodyStyle, c.ImageURL)
		if err != nil {
			return 0, fmt.Errorf("seed car %d: %w", c.ID, err)
		}
		if n, err := res.RowsAffected(); err == nil {
			inserted += int(n)
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("commit seed: %w", err)
	}
	return inserted, nil
}
