package models

import "time"

// Decision is the outcome of a swipe.
type Decision string

const (
	DecisionLike Decision = "like"
	DecisionPass Decision = "pass"
	DecisionNone Decision = "none"
)

// Valid reports whether d is a terminal like/pass decision.
func (d Decision) Valid() bool {
	return d == DecisionLike || d == DecisionPass
}

// DecisionRequest is the request body for an explicit like/pass.
type DecisionRequest struct {
	CarID    int      `json:"car_id"`
	Decision Decision `json:"decision"`
}

// PointerEvent is one recorded pointer/touch event.
type PointerEvent struct {
	Type string  `json:"type"` // down, move, up, leave
	X    float64 `json:"x"`
	Y    float64 `json:"y"`
}

// GestureRequest replays a drag on the top card.
type GestureRequest struct {
	CarID         int            `json:"car_id"`
	ViewportWidth float64        `json:"viewport_width"`
	Events        []PointerEvent `json:"events"`
}

// GestureResponse reports what a replayed drag did.
type GestureResponse struct {
	CarID     int      `json:"car_id"`
	Phase     string   `json:"phase"`
	Decision  Decision `json:"decision"`
	OffsetX   float64  `json:"offset_x"`
	OffsetY   float64  `json:"offset_y"`
	Rotation  float64  `json:"rotation"`
	Remaining int      `json:"remaining"`
}

// StackResponse is the current swipe stack.
type StackResponse struct {
	Remaining int        `json:"remaining"`
	Cards     []CardView `json:"cards"`
}

// CardView is a car in the stack plus its match tier.
type CardView struct {
	Car
	Tier string `json:"tier"`
}

// Interaction is a persisted like/pass decision.
type Interaction struct {
	ID        int       `json:"id"`
	UserID    string    `json:"user_id"`
	CarID     int       `json:"car_id"`
	Decision  Decision  `json:"decision"`
	CreatedAt time.Time `json:"created_at"`
}

// DecisionResponse reports the effect of a like/pass.
type DecisionResponse struct {
	CarID      int      `json:"car_id"`
	Decision   Decision `json:"decision"`
	Remaining  int      `json:"remaining"`
	LikedCount int      `json:"liked_count"`
}

// LikedResponse lists the liked cars in the order they were liked.
type LikedResponse struct {
	Total int   `json:"total"`
	Data  []Car `json:"data"`
}

// HistoryResponse lists persisted decisions, newest first.
type HistoryResponse struct {
	UserID       string        `json:"user_id"`
	Interactions []Interaction `json:"interactions"`
}
