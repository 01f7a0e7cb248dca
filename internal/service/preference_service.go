package service

import (
	"carmatch-service/internal/models"
	"carmatch-service/internal/preferences"
	"carmatch-service/internal/session"
)

// PreferenceService reads and edits a user's match preferences.
type PreferenceService struct {
	sessions *session.Manager
}

func NewPreferenceService(sessions *session.Manager) *PreferenceService {
	return &PreferenceService{sessions: sessions}
}

func (s *PreferenceService) Get(userID string) models.PreferencesResponse {
	return preferences.Describe(s.sessions.Get(userID).Preferences.Get())
}

func (s *PreferenceService) Update(userID string, u models.PreferenceUpdate) models.PreferencesResponse {
	return preferences.Describe(s.sessions.Get(userID).Preferences.Update(u))
}

// Onboard stores the first-run questionnaire.
func (s *PreferenceService) Onboard(userID string, req models.OnboardingRequest) models.PreferencesResponse {
	return preferences.Describe(s.sessions.Get(userID).Preferences.ApplyOnboarding(req))
}

func (s *PreferenceService) Reset(userID string) models.PreferencesResponse {
	return preferences.Describe(s.sessions.Get(userID).Preferences.Reset())
}
