// Package session keeps the per-user state the app used to hold in the
// browser: preferences, the swipe stack, liked cars and the map viewport.
package session

import (
	"log/slog"
	"sync"

	"carmatch-service/internal/catalog"
	"carmatch-service/internal/liked"
	"carmatch-service/internal/listings"
	"carmatch-service/internal/metrics"
	"carmatch-service/internal/preferences"
	"carmatch-service/internal/ranking"
	"carmatch-service/internal/swipe"
)

// Session is one user's in-memory state.
type Session struct {
	UserID      string
	Preferences *preferences.Store
	Stack       *swipe.Stack
	Liked       *liked.Collection
	Viewport    *listings.Viewport
}

// Manager creates sessions on first use and tears them down on logout.
type Manager struct {
	catalog *catalog.Store
	ranker  *ranking.Ranker
	source  listings.Source

	mu       sync.Mutex
	sessions map[string]*Session
}

// NewManager creates a Manager. New stacks are ranked from the catalog's
// current contents; viewports query source.
func NewManager(cat *catalog.Store, ranker *ranking.Ranker, source listings.Source) *Manager {
	return &Manager{
		catalog:  cat,
		ranker:   ranker,
		source:   source,
		sessions: make(map[string]*Session),
	}
}

// Get returns the session for userID, creating it if needed.
func (m *Manager) Get(userID string) *Session {
	m.mu.Lock()
	defer m.mu.Unlock()

	if s, ok := m.sessions[userID]; ok {
		return s
	}

	prefs := preferences.NewStore()
	s := &Session{
		UserID:      userID,
		Preferences: prefs,
		Stack:       swipe.Seed(m.catalog.All(), m.ranker, prefs.Get()),
		Liked:       liked.NewCollection(),
		Viewport: listings.NewViewport(m.source, listings.ViewportConfig{
			OnClick: func(id string) {
				metrics.ListingClicks.Inc()
				slog.Info("listing clicked", "user_id", userID, "listing_id", id)
			},
		}),
	}
	m.sessions[userID] = s
	metrics.ActiveSessions.Set(float64(len(m.sessions)))
	slog.Debug("session created", "user_id", userID, "stack", s.Stack.Len())
	return s
}

// Drop discards userID's state. It reports whether a session existed.
func (m *Manager) Drop(userID string) bool {
	m.mu.Lock()
	s, ok := m.sessions[userID]
	delete(m.sessions, userID)
	metrics.ActiveSessions.Set(float64(len(m.sessions)))
	m.mu.Unlock()

	if !ok {
		return false
	}
	s.Viewport.Close()
	s.Liked.Clear()
	return true
}

// Len returns the number of live sessions.
func (m *Manager) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.sessions)
}
