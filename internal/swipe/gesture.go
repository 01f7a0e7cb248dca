package swipe

import (
	"fmt"
	"math"
	"time"

	"carmatch-service/internal/models"
)

// Phase is the state of a drag on the top card.
type Phase int

const (
	PhaseIdle Phase = iota
	PhaseDragging
	PhaseReturning
	PhaseDecidedLeft
	PhaseDecidedRight
)

func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseDragging:
		return "dragging"
	case PhaseReturning:
		return "returning"
	case PhaseDecidedLeft:
		return "decided-left"
	case PhaseDecidedRight:
		return "decided-right"
	}
	return fmt.Sprintf("phase(%d)", int(p))
}

// Cue is the visual hint shown while dragging.
type Cue int

const (
	CueNone Cue = iota
	CueLike
	CuePass
)

const (
	SwipeThreshold = 100.0
	CueThreshold   = 50.0
	RotationFactor = 0.1
	ExitRotation   = 30.0
	SettleDelay    = 300 * time.Millisecond
)

// Point is a screen position or displacement in pixels.
type Point struct {
	X, Y float64
}

// Gesture tracks one drag. Position, rotation and cue are all derived from
// the phase and displacement, so contradictory combinations cannot occur.
type Gesture struct {
	phase         Phase
	start         Point
	delta         Point
	viewportWidth float64
}

// NewGesture creates an idle gesture. viewportWidth is how far a decided
// card travels off screen.
func NewGesture(viewportWidth float64) *Gesture {
	return &Gesture{viewportWidth: viewportWidth}
}

// Phase returns the current phase.
func (g *Gesture) Phase() Phase { return g.phase }

// Down starts a drag at (x, y). It is ignored once a decision is made.
func (g *Gesture) Down(x, y float64) {
	if g.Decided() {
		return
	}
	g.phase = PhaseDragging
	g.start = Point{x, y}
	g.delta = Point{}
}

// Move updates the displacement while dragging.
func (g *Gesture) Move(x, y float64) {
	if g.phase != PhaseDragging {
		return
	}
	g.delta = Point{x - g.start.X, y - g.start.Y}
}

// Up ends the drag and evaluates it.
func (g *Gesture) Up() Verdict {
	if g.phase != PhaseDragging {
		return g.verdict()
	}

	dx := g.delta.X
	distance := math.Hypot(g.delta.X, g.delta.Y)
	switch {
	case dx > SwipeThreshold && distance > SwipeThreshold:
		g.phase = PhaseDecidedRight
	case dx < -SwipeThreshold && distance > SwipeThreshold:
		g.phase = PhaseDecidedLeft
	default:
		g.phase = PhaseReturning
	}
	return g.verdict()
}

// Leave is treated like Up: the pointer left the card mid-drag.
func (g *Gesture) Leave() Verdict {
	return g.Up()
}

// Decided reports whether the gesture reached a terminal decision.
func (g *Gesture) Decided() bool {
	return g.phase == PhaseDecidedLeft || g.phase == PhaseDecidedRight
}

// Offset is the card translation for the current phase.
func (g *Gesture) Offset() Point {
	switch g.phase {
	case PhaseDragging:
		return g.delta
	case PhaseDecidedRight:
		return Point{g.viewportWidth, g.delta.Y}
	case PhaseDecidedLeft:
		return Point{-g.viewportWidth, g.delta.Y}
	}
	return Point{}
}

// Rotation is the card tilt in degrees for the current phase.
func (g *Gesture) Rotation() float64 {
	switch g.phase {
	case PhaseDragging:
		return g.delta.X * RotationFactor
	case PhaseDecidedRight:
		return ExitRotation
	case PhaseDecidedLeft:
		return -ExitRotation
	}
	return 0
}

// Cue is the hint to show; only active while dragging.
func (g *Gesture) Cue() Cue {
	if g.phase != PhaseDragging {
		return CueNone
	}
	switch {
	case g.delta.X > CueThreshold:
		return CueLike
	case g.delta.X < -CueThreshold:
		return CuePass
	}
	return CueNone
}

// Verdict is the result of ending a drag.
type Verdict struct {
	Phase    Phase
	Decision models.Decision
	Offset   Point
	Rotation float64
	// Settle is how long the exit animation runs before the decision is
	// applied. Zero when there is no decision.
	Settle time.Duration
}

func (g *Gesture) verdict() Verdict {
	v := Verdict{
		Phase:    g.phase,
		Decision: models.DecisionNone,
		Offset:   g.Offset(),
		Rotation: g.Rotation(),
	}
	switch g.phase {
	case PhaseDecidedRight:
		v.Decision = models.DecisionLike
		v.Settle = SettleDelay
	case PhaseDecidedLeft:
		v.Decision = models.DecisionPass
		v.Settle = SettleDelay
	}
	return v
}

// Replay drives g through recorded pointer events and returns the verdict of
// the last release. Events after a decision are ignored. If the events never
// release the pointer, the verdict reflects the in-progress drag.
func (g *Gesture) Replay(events []models.PointerEvent) (Verdict, error) {
	for i, e := range events {
		switch e.Type {
		case "down":
			g.Down(e.X, e.Y)
		case "move":
			g.Move(e.X, e.Y)
		case "up":
			g.Up()
		case "leave":
			g.Leave()
		default:
			return Verdict{}, fmt.Errorf("event %d: unknown pointer event type %q", i, e.Type)
		}
		if g.Decided() {
			break
		}
	}
	return g.verdict(), nil
}
