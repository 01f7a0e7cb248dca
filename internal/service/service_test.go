package service

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"carmatch-service/internal/catalog"
	"carmatch-service/internal/listings"
	"carmatch-service/internal/models"
	"carmatch-service/internal/ranking"
	"carmatch-service/internal/session"
)

func testCatalog() *catalog.Store {
	return catalog.New([]models.Car{
		{ID: 1, CarName: "Honda Civic", Year: 2021, Price: 22500, BodyStyle: "Sedan", MatchPercentage: 87},
		{ID: 2, CarName: "Ford Mustang", Year: 2020, Price: 27800, BodyStyle: "Coupe", MatchPercentage: 64},
		{ID: 3, CarName: "Toyota RAV4", Year: 2022, Price: 29900, BodyStyle: "SUV", MatchPercentage: 92},
		{ID: 4, CarName: "Toyota Prius", Year: 2019, Price: 19800, BodyStyle: "Hatchback", MatchPercentage: 45},
	})
}

type fakeInteractions struct {
	mu      sync.Mutex
	records []models.Interaction
	err     error
}

func (f *fakeInteractions) Record(_ context.Context, userID string, carID int, d models.Decision) (int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return 0, f.err
	}
	f.records = append(f.records, models.Interaction{ID: len(f.records) + 1, UserID: userID, CarID: carID, Decision: d})
	return len(f.records), nil
}

func (f *fakeInteractions) ListByUser(_ context.Context, userID string, limit int) ([]models.Interaction, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	var out []models.Interaction
	for i := len(f.records) - 1; i >= 0 && len(out) < limit; i-- {
		if f.records[i].UserID == userID {
			out = append(out, f.records[i])
		}
	}
	return out, nil
}

func (f *fakeInteractions) DeleteByUser(_ context.Context, userID string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	kept := f.records[:0]
	for _, r := range f.records {
		if r.UserID != userID {
			kept = append(kept, r)
		}
	}
	f.records = kept
	return nil
}

type fixture struct {
	catalog      *catalog.Store
	sessions     *session.Manager
	swipe        *SwipeService
	interactions *fakeInteractions
	slept        []time.Duration
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	f := &fixture{catalog: testCatalog(), interactions: &fakeInteractions{}}
	ranker := ranking.NewRanker(nil)
	f.sessions = session.NewManager(f.catalog, ranker, listings.NewFixtureSource())
	f.swipe = NewSwipeService(f.sessions, f.catalog, ranker, f.interactions)
	f.swipe.sleep = func(_ context.Context, d time.Duration) error {
		f.slept = append(f.slept, d)
		return nil
	}
	return f
}

func stackIDs(r models.StackResponse) []int {
	out := make([]int, len(r.Cards))
	for i, c := range r.Cards {
		out[i] = c.ID
	}
	return out
}

func TestStackIsRankedWithTiers(t *testing.T) {
	f := newFixture(t)
	s := f.swipe.Stack("u1")

	assert.Equal(t, 4, s.Remaining)
	assert.Equal(t, []int{3, 1, 2, 4}, stackIDs(s))
	assert.Equal(t, "good", s.Cards[0].Tier)
	assert.Equal(t, "medium", s.Cards[2].Tier)
	assert.Equal(t, "severe", s.Cards[3].Tier)
}

func TestDecideLike(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	res, err := f.swipe.Decide(ctx, "u1", 1, models.DecisionLike)
	require.NoError(t, err)
	assert.Equal(t, models.DecisionResponse{CarID: 1, Decision: models.DecisionLike, Remaining: 3, LikedCount: 1}, res)

	assert.Equal(t, []int{3, 2, 4}, stackIDs(f.swipe.Stack("u1")))
	liked := f.swipe.Liked("u1")
	require.Equal(t, 1, liked.Total)
	assert.Equal(t, "Honda Civic", liked.Data[0].CarName)

	require.Len(t, f.interactions.records, 1)
	assert.Equal(t, models.DecisionLike, f.interactions.records[0].Decision)
}

func TestDecidePass(t *testing.T) {
	f := newFixture(t)

	res, err := f.swipe.Decide(context.Background(), "u1", 3, models.DecisionPass)
	require.NoError(t, err)
	assert.Equal(t, 3, res.Remaining)
	assert.Zero(t, res.LikedCount)
	assert.Equal(t, []int{1, 2, 4}, stackIDs(f.swipe.Stack("u1")))
}

func TestDecideErrors(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.swipe.Decide(ctx, "u1", 99, models.DecisionLike)
	assert.ErrorIs(t, err, ErrCarNotInStack)

	_, err = f.swipe.Decide(ctx, "u1", 1, models.DecisionNone)
	assert.ErrorIs(t, err, ErrInvalidDecision)

	_, err = f.swipe.Decide(ctx, "u1", 1, models.Decision("superlike"))
	assert.ErrorIs(t, err, ErrInvalidDecision)

	_, err = f.swipe.Decide(ctx, "u1", 1, models.DecisionPass)
	require.NoError(t, err)
	_, err = f.swipe.Decide(ctx, "u1", 1, models.DecisionLike)
	assert.ErrorIs(t, err, ErrCarNotInStack, "already decided")
	assert.Zero(t, f.swipe.Liked("u1").Total)
}

func TestDecideSurvivesRecorderFailure(t *testing.T) {
	f := newFixture(t)
	f.interactions.err = errors.New("db down")

	_, err := f.swipe.Decide(context.Background(), "u1", 1, models.DecisionLike)
	require.NoError(t, err)
	assert.Equal(t, 1, f.swipe.Liked("u1").Total)
}

func TestDecideWithoutRecorder(t *testing.T) {
	f := newFixture(t)
	svc := NewSwipeService(f.sessions, f.catalog, ranking.NewRanker(nil), nil)

	_, err := svc.Decide(context.Background(), "u1", 1, models.DecisionLike)
	require.NoError(t, err)

	h, err := svc.History(context.Background(), "u1", 10)
	require.NoError(t, err)
	assert.Empty(t, h.Interactions)
	assert.NotNil(t, h.Interactions)
	assert.NoError(t, svc.ClearHistory(context.Background(), "u1"))
}

func swipeEvents(dx, dy float64) []models.PointerEvent {
	return []models.PointerEvent{
		{Type: "down", X: 100, Y: 100},
		{Type: "move", X: 100 + dx/2, Y: 100 + dy/2},
		{Type: "move", X: 100 + dx, Y: 100 + dy},
		{Type: "up"},
	}
}

func TestGestureRightLikesTopCard(t *testing.T) {
	f := newFixture(t)

	res, err := f.swipe.Gesture(context.Background(), "u1", models.GestureRequest{
		CarID: 3, ViewportWidth: 390, Events: swipeEvents(150, 0),
	})
	require.NoError(t, err)

	assert.Equal(t, "decided-right", res.Phase)
	assert.Equal(t, models.DecisionLike, res.Decision)
	assert.Equal(t, 390.0, res.OffsetX)
	assert.Equal(t, 30.0, res.Rotation)
	assert.Equal(t, 3, res.Remaining)
	assert.Equal(t, []time.Duration{300 * time.Millisecond}, f.slept)
	assert.Equal(t, 1, f.swipe.Liked("u1").Total)
}

func TestGestureLeftPasses(t *testing.T) {
	f := newFixture(t)

	res, err := f.swipe.Gesture(context.Background(), "u1", models.GestureRequest{Events: swipeEvents(-150, 0)})
	require.NoError(t, err)

	assert.Equal(t, "decided-left", res.Phase)
	assert.Equal(t, -float64(DefaultViewportWidth), res.OffsetX)
	assert.Equal(t, []int{1, 2, 4}, stackIDs(f.swipe.Stack("u1")))
	assert.Zero(t, f.swipe.Liked("u1").Total)
}

func TestGestureShortDragReturns(t *testing.T) {
	f := newFixture(t)

	res, err := f.swipe.Gesture(context.Background(), "u1", models.GestureRequest{Events: swipeEvents(60, 60)})
	require.NoError(t, err)

	assert.Equal(t, "returning", res.Phase)
	assert.Equal(t, models.DecisionNone, res.Decision)
	assert.Zero(t, res.OffsetX)
	assert.Equal(t, 4, res.Remaining)
	assert.Empty(t, f.slept)
}

func TestGestureErrors(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.swipe.Gesture(ctx, "u1", models.GestureRequest{CarID: 1, Events: swipeEvents(150, 0)})
	assert.ErrorIs(t, err, ErrNotTopCard)

	_, err = f.swipe.Gesture(ctx, "u1", models.GestureRequest{Events: []models.PointerEvent{{Type: "wiggle"}}})
	assert.ErrorIs(t, err, ErrInvalidGesture)

	f.swipe.FilterStack("u1", models.CarFilter{BodyStyle: "Convertible"})
	_, err = f.swipe.Gesture(ctx, "u1", models.GestureRequest{Events: swipeEvents(150, 0)})
	assert.ErrorIs(t, err, ErrCarNotInStack)
}

func TestGestureCancelledDuringSettle(t *testing.T) {
	f := newFixture(t)
	f.swipe.sleep = sleepCtx

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := f.swipe.Gesture(ctx, "u1", models.GestureRequest{Events: swipeEvents(150, 0)})
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, 4, f.swipe.Stack("u1").Remaining)
}

func TestFilterAndResetStack(t *testing.T) {
	f := newFixture(t)

	maxPrice := 25000
	s := f.swipe.FilterStack("u1", models.CarFilter{MaxPrice: &maxPrice})
	assert.Equal(t, []int{1, 4}, stackIDs(s))

	_, err := f.swipe.Decide(context.Background(), "u1", 1, models.DecisionPass)
	require.NoError(t, err)

	s = f.swipe.ResetStack("u1")
	assert.Equal(t, []int{3, 1, 2, 4}, stackIDs(s))
}

func TestResetStackSeesCatalogChanges(t *testing.T) {
	f := newFixture(t)
	f.swipe.Stack("u1")

	f.catalog.Add(models.Car{CarName: "Mazda MX-5", MatchPercentage: 99})
	f.catalog.Delete(2)

	s := f.swipe.ResetStack("u1")
	assert.Equal(t, []int{5, 3, 1, 4}, stackIDs(s))
}

func TestUnlike(t *testing.T) {
	f := newFixture(t)
	_, err := f.swipe.Decide(context.Background(), "u1", 1, models.DecisionLike)
	require.NoError(t, err)

	require.NoError(t, f.swipe.Unlike("u1", 1))
	assert.ErrorIs(t, f.swipe.Unlike("u1", 1), ErrCarNotFound)
	assert.Zero(t, f.swipe.Liked("u1").Total)
}

func TestHistory(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	_, _ = f.swipe.Decide(ctx, "u1", 1, models.DecisionLike)
	_, _ = f.swipe.Decide(ctx, "u1", 2, models.DecisionPass)
	_, _ = f.swipe.Decide(ctx, "u2", 3, models.DecisionLike)

	h, err := f.swipe.History(ctx, "u1", 10)
	require.NoError(t, err)
	require.Len(t, h.Interactions, 2)
	assert.Equal(t, 2, h.Interactions[0].CarID)

	require.NoError(t, f.swipe.ClearHistory(ctx, "u1"))
	h, err = f.swipe.History(ctx, "u1", 10)
	require.NoError(t, err)
	assert.Empty(t, h.Interactions)

	h, err = f.swipe.History(ctx, "u2", 10)
	require.NoError(t, err)
	assert.Len(t, h.Interactions, 1)
}

func TestHistoryError(t *testing.T) {
	f := newFixture(t)
	f.interactions.err = errors.New("db down")

	_, err := f.swipe.History(context.Background(), "u1", 10)
	assert.ErrorContains(t, err, "db down")
}
