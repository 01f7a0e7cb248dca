package listings

import (
	"context"
	"log/slog"
	"slices"
	"sync"
	"time"

	"carmatch-service/internal/models"
)

// DefaultDebounce is the quiet period after the last idle event before
// listings are fetched.
const DefaultDebounce = 300 * time.Millisecond

// ViewportConfig configures a Viewport. Zero values take defaults.
type ViewportConfig struct {
	Debounce    time.Duration
	ClusterCell float64
	// OnClick is notified with the listing id when a marker is clicked.
	OnClick func(id string)
	// OnChange is called after each applied fetch, outside the lock.
	OnChange func(models.ViewportState)
}

// Viewport is the map layer's listing state. Idle events are debounced,
// and a response is applied only if no newer fetch was issued after it.
type Viewport struct {
	source Source
	cfg    ViewportConfig

	ctx    context.Context
	cancel context.CancelFunc

	mu       sync.Mutex
	timer    *time.Timer
	seq      uint64
	closed   bool
	state    models.ViewportState
	listings map[string]models.CarListing
}

// NewViewport creates a viewport over source. It starts in the loading
// state until the first fetch lands.
func NewViewport(source Source, cfg ViewportConfig) *Viewport {
	if cfg.Debounce <= 0 {
		cfg.Debounce = DefaultDebounce
	}
	if cfg.ClusterCell == 0 {
		cfg.ClusterCell = DefaultClusterCell
	}
	ctx, cancel := context.WithCancel(context.Background())
	return &Viewport{
		source: source,
		cfg:    cfg,
		ctx:    ctx,
		cancel: cancel,
		state: models.ViewportState{
			Loading:  true,
			Label:    CountLabel(0),
			Markers:  []models.Marker{},
			Clusters: []models.MarkerCluster{},
		},
		listings: make(map[string]models.CarListing),
	}
}

// Idle records that the map settled on b. Only the last call within the
// debounce window triggers a fetch.
func (v *Viewport) Idle(b models.Bounds) {
	v.mu.Lock()
	defer v.mu.Unlock()
	if v.closed {
		return
	}
	if v.timer != nil {
		v.timer.Stop()
	}
	v.timer = time.AfterFunc(v.cfg.Debounce, func() { v.fetch(b) })
}

func (v *Viewport) fetch(b models.Bounds) {
	v.mu.Lock()
	if v.closed {
		v.mu.Unlock()
		return
	}
	v.seq++
	seq := v.seq
	v.state.Loading = true
	v.mu.Unlock()

	found, err := v.source.InBounds(v.ctx, b)

	v.mu.Lock()
	if v.closed || seq != v.seq {
		v.mu.Unlock()
		slog.Debug("discarding stale listings response", "seq", seq)
		return
	}

	v.state.Loading = false
	if err != nil {
		slog.Error("failed to load listings", "error", err)
		// The error replaces the map; markers from the last fetch are dropped.
		v.apply(b, nil)
		v.state.Error = "Error loading listings: " + err.Error()
	} else {
		v.apply(b, found)
	}
	state := v.snapshot()
	onChange := v.cfg.OnChange
	v.mu.Unlock()

	if onChange != nil {
		onChange(state)
	}
}

// apply replaces every marker with ones built from found. Callers hold mu.
func (v *Viewport) apply(b models.Bounds, found []models.CarListing) {
	markers := Markers(found)
	v.listings = make(map[string]models.CarListing, len(found))
	for _, l := range found {
		v.listings[l.ID] = l
	}
	v.state.Error = ""
	v.state.Bounds = &b
	v.state.Count = len(found)
	v.state.Label = CountLabel(len(found))
	v.state.Markers = markers
	v.state.Clusters = Cluster(markers, v.cfg.ClusterCell)
}

func (v *Viewport) snapshot() models.ViewportState {
	s := v.state
	s.Markers = slices.Clone(s.Markers)
	s.Clusters = slices.Clone(s.Clusters)
	return s
}

// State returns a copy of the current map layer state.
func (v *Viewport) State() models.ViewportState {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.snapshot()
}

// Click opens the popup for a displayed listing and notifies OnClick.
func (v *Viewport) Click(id string) (models.InfoWindow, bool) {
	v.mu.Lock()
	l, ok := v.listings[id]
	closed := v.closed
	v.mu.Unlock()
	if !ok || closed {
		return models.InfoWindow{}, false
	}
	if v.cfg.OnClick != nil {
		v.cfg.OnClick(id)
	}
	return Popup(l), true
}

// Close stops pending timers and drops any fetch still in flight.
func (v *Viewport) Close() {
	v.mu.Lock()
	defer v.mu.Unlock()
	if v.closed {
		return
	}
	v.closed = true
	if v.timer != nil {
		v.timer.Stop()
	}
	v.cancel()
}
