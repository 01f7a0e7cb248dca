package database

import (
	"database/sql"
	"fmt"
	"log/slog"

	_ "github.com/lib/pq"

	"carmatch-service/internal/config"
)

func NewPostgres(cfg config.DBConfig) (*sql.DB, error) {
	db, err := sql.Open("postgres", cfg.DSN())
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(10)

	slog.Info("connected to PostgreSQL", "db", cfg.DBName)

	if err := RunMigrations(db); err != nil {
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	return db, nil
}

// Migrations are applied in order on every start and must stay idempotent.
var Migrations = []string{
	`CREATE TABLE IF NOT EXISTS cars (
		id INTEGER PRIMARY KEY,
		car_name VARCHAR(200) NOT NULL,
		year INTEGER NOT NULL,
		mpg INTEGER NOT NULL DEFAULT 0,
		horsepower INTEGER NOT NULL DEFAULT 0,
		mileage INTEGER NOT NULL DEFAULT 0,
		match_percentage INTEGER NOT NULL DEFAULT 0,
		price INTEGER NOT NULL,
		body_style VARCHAR(50) NOT NULL DEFAULT '',
		image_url TEXT NOT NULL DEFAULT '',
		created_at TIMESTAMP DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS swipe_interactions (
		id SERIAL PRIMARY KEY,
		user_id VARCHAR(64) NOT NULL,
		car_id INTEGER NOT NULL,
		decision VARCHAR(8) NOT NULL CHECK (decision IN ('like', 'pass')),
		created_at TIMESTAMP DEFAULT NOW()
	)`,
	`CREATE INDEX IF NOT EXISTS idx_swipe_interactions_user_id ON swipe_interactions(user_id)`,
	`CREATE INDEX IF NOT EXISTS idx_swipe_interactions_car_id ON swipe_interactions(car_id)`,
}

// RunMigrations applies Migrations to db.
func RunMigrations(db *sql.DB) error {
	for _, m := range Migrations {
		if _, err := db.Exec(m); err != nil {
			return fmt.Errorf("migration failed: %w\nSQL: %s", err, m)
		}
	}

	slog.Info("database migrations completed")
	return nil
}
