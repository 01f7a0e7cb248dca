package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"carmatch-service/internal/catalog"
	"carmatch-service/internal/metrics"
	"carmatch-service/internal/models"
	"carmatch-service/internal/ranking"
	"carmatch-service/internal/session"
	"carmatch-service/internal/swipe"
)

// DefaultViewportWidth is used when a gesture arrives without one.
const DefaultViewportWidth = 400

// InteractionStore persists decisions. It is optional.
type InteractionStore interface {
	Record(ctx context.Context, userID string, carID int, decision models.Decision) (int, error)
	ListByUser(ctx context.Context, userID string, limit int) ([]models.Interaction, error)
	DeleteByUser(ctx context.Context, userID string) error
}

// SwipeService applies like/pass decisions to a user's stack and liked set.
type SwipeService struct {
	sessions     *session.Manager
	catalog      *catalog.Store
	ranker       *ranking.Ranker
	interactions InteractionStore
	sleep        func(ctx context.Context, d time.Duration) error
}

// NewSwipeService creates a SwipeService. interactions may be nil.
func NewSwipeService(sessions *session.Manager, cat *catalog.Store, ranker *ranking.Ranker, interactions InteractionStore) *SwipeService {
	return &SwipeService{
		sessions:     sessions,
		catalog:      cat,
		ranker:       ranker,
		interactions: interactions,
		sleep:        sleepCtx,
	}
}

// Stack returns the user's remaining cards, top first.
func (s *SwipeService) Stack(userID string) models.StackResponse {
	cars := s.sessions.Get(userID).Stack.Cars()
	return models.StackResponse{Remaining: len(cars), Cards: ranking.Cards(cars)}
}

// Decide likes or passes on a car in the user's stack. A like adds the car
// to the liked set; both remove it from the stack.
func (s *SwipeService) Decide(ctx context.Context, userID string, carID int, decision models.Decision) (models.DecisionResponse, error) {
	return s.decide(ctx, userID, carID, decision, "button")
}

func (s *SwipeService) decide(ctx context.Context, userID string, carID int, decision models.Decision, source string) (models.DecisionResponse, error) {
	if !decision.Valid() {
		return models.DecisionResponse{}, ErrInvalidDecision
	}

	sess := s.sessions.Get(userID)
	car, ok := sess.Stack.Find(carID)
	if !ok || !sess.Stack.Pop(carID) {
		return models.DecisionResponse{}, fmt.Errorf("car %d: %w", carID, ErrCarNotInStack)
	}
	if decision == models.DecisionLike {
		sess.Liked.Add(car)
	}

	metrics.SwipeDecisions.WithLabelValues(string(decision), source).Inc()
	s.record(ctx, userID, carID, decision)

	return models.DecisionResponse{
		CarID:      carID,
		Decision:   decision,
		Remaining:  sess.Stack.Len(),
		LikedCount: sess.Liked.Len(),
	}, nil
}

func (s *SwipeService) record(ctx context.Context, userID string, carID int, decision models.Decision) {
	if s.interactions == nil {
		return
	}
	if _, err := s.interactions.Record(ctx, userID, carID, decision); err != nil {
		slog.Error("failed to record interaction", "user_id", userID, "car_id", carID, "error", err)
	}
}

// Gesture replays pointer events on the top card. A decided drag waits out
// the exit animation and then applies the decision; anything else leaves
// the stack untouched.
func (s *SwipeService) Gesture(ctx context.Context, userID string, req models.GestureRequest) (models.GestureResponse, error) {
	sess := s.sessions.Get(userID)
	top, ok := sess.Stack.Top()
	if !ok {
		return models.GestureResponse{}, ErrCarNotInStack
	}
	if req.CarID != 0 && req.CarID != top.ID {
		return models.GestureResponse{}, fmt.Errorf("car %d: %w", req.CarID, ErrNotTopCard)
	}

	width := req.ViewportWidth
	if width <= 0 {
		width = DefaultViewportWidth
	}
	verdict, err := swipe.NewGesture(width).Replay(req.Events)
	if err != nil {
		return models.GestureResponse{}, fmt.Errorf("%w: %v", ErrInvalidGesture, err)
	}
	metrics.GestureOutcomes.WithLabelValues(verdict.Phase.String()).Inc()

	resp := models.GestureResponse{
		CarID:     top.ID,
		Phase:     verdict.Phase.String(),
		Decision:  verdict.Decision,
		OffsetX:   verdict.Offset.X,
		OffsetY:   verdict.Offset.Y,
		Rotation:  verdict.Rotation,
		Remaining: sess.Stack.Len(),
	}
	if !verdict.Decision.Valid() {
		return resp, nil
	}

	if err := s.sleep(ctx, verdict.Settle); err != nil {
		return models.GestureResponse{}, err
	}
	result, err := s.decide(ctx, userID, top.ID, verdict.Decision, "gesture")
	if err != nil {
		return models.GestureResponse{}, err
	}
	resp.Remaining = result.Remaining
	return resp, nil
}

// ResetStack re-seeds the stack from the whole catalog.
func (s *SwipeService) ResetStack(userID string) models.StackResponse {
	sess := s.sessions.Get(userID)
	sess.Stack.Reset(s.ranker.Rank(s.catalog.All(), sess.Preferences.Get()))
	return s.Stack(userID)
}

// FilterStack replaces the stack with the catalog cars matching f.
func (s *SwipeService) FilterStack(userID string, f models.CarFilter) models.StackResponse {
	sess := s.sessions.Get(userID)
	sess.Stack.Replace(s.ranker.Rank(s.catalog.Filter(f), sess.Preferences.Get()))
	return s.Stack(userID)
}

// Liked returns the user's liked cars.
func (s *SwipeService) Liked(userID string) models.LikedResponse {
	cars := s.sessions.Get(userID).Liked.List()
	return models.LikedResponse{Total: len(cars), Data: cars}
}

// Unlike removes a car from the liked set.
func (s *SwipeService) Unlike(userID string, carID int) error {
	if !s.sessions.Get(userID).Liked.Remove(carID) {
		return ErrCarNotFound
	}
	return nil
}

// History returns persisted decisions. Without an interaction store it is
// always empty.
func (s *SwipeService) History(ctx context.Context, userID string, limit int) (models.HistoryResponse, error) {
	resp := models.HistoryResponse{UserID: userID, Interactions: []models.Interaction{}}
	if s.interactions == nil {
		return resp, nil
	}
	items, err := s.interactions.ListByUser(ctx, userID, limit)
	if err != nil {
		return resp, fmt.Errorf("failed to load history: %w", err)
	}
	if items != nil {
		resp.Interactions = items
	}
	return resp, nil
}

// ClearHistory deletes persisted decisions.
func (s *SwipeService) ClearHistory(ctx context.Context, userID string) error {
	if s.interactions == nil {
		return nil
	}
	if err := s.interactions.DeleteByUser(ctx, userID); err != nil {
		return fmt.Errorf("failed to clear history: %w", err)
	}
	return nil
}

func sleepCtx(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return nil
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
