package repository

import (
	"context"
	"database/sql"
	"fmt"

	"carmatch-service/internal/models"
)

// InteractionRepository persists like/pass decisions.
type InteractionRepository struct {
	db *sql.DB
}

func NewInteractionRepository(db *sql.DB) *InteractionRepository {
	return &InteractionRepository{db: db}
}

// Record stores a decision and returns its row id.
func (r *InteractionRepository) Record(ctx context.Context, userID string, carID int, decision models.Decision) (int, error) {
	var id int
	err := r.db.QueryRowContext(ctx, `
		INSERT INTO swipe_interactions (user_id, car_id, decision)
		VALUES ($1, $2, $3)
		RETURNING id
	`, userID, carID, string(decision)).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("insert interaction: %w", err)
	}
	return id, nil
}

// ListByUser returns a user's most recent decisions, newest first.
func (r *InteractionRepository) ListByUser(ctx context.Context, userID string, limit int) ([]models.Interaction, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, user_id, car_id, decision, created_at
		FROM swipe_interactions
		WHERE user_id = $1
		ORDER BY created_at DESC, id DESC
		LIMIT $2
	`, userID, limit)
	if err != nil {
		return nil, fmt.Errorf("query interactions: %w", err)
	}
	defer rows.Close()

	interactions := []models.Interaction{}
	for rows.Next() {
		var i models.Interaction
		var decision string
		if err := rows.Scan(&i.ID, &i.UserID, &i.CarID, &decision, &i.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan interaction: %w", err)
		}
		i.Decision = models.Decision(decision)
		interactions = append(interactions, i)
	}
	return interactions, rows.Err()
}

// DeleteByUser removes a user's history.
func (r *InteractionRepository) DeleteByUser(ctx context.Context, userID string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM swipe_interactions WHERE user_id = $1`, userID)
	if err != nil {
		return fmt.Errorf("delete interactions: %w", err)
	}
	return nil
}
