// Package auth implements the demo login: every login succeeds after a
// short delay and yields a bearer token bound to a stored user record.
package auth

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"carmatch-service/internal/metrics"
	"carmatch-service/internal/models"
)

// KeyPrefix namespaces session records in Redis.
const KeyPrefix = "carmatch_auth:"

// Service issues and resolves session tokens. Records live in Redis when a
// client is configured and in process memory otherwise.
type Service struct {
	redis *redis.Client
	delay time.Duration
	ttl   time.Duration
	newID func() string

	mu    sync.RWMutex
	local map[string]string
}

// NewService creates an auth service. rdb may be nil.
func NewService(rdb *redis.Client, delay, ttl time.Duration) *Service {
	return &Service{
		redis: rdb,
		delay: delay,
		ttl:   ttl,
		newID: newUserID,
		local: make(map[string]string),
	}
}

// newUserID returns a random user id; every login is a new user.
func newUserID() string {
	return "user_" + uuid.NewString()
}

// Login waits the simulated delay and signs the user in. It fails only if
// ctx is cancelled or the record cannot be stored.
func (s *Service) Login(ctx context.Context, email, password, name string) (models.User, string, error) {
	if s.delay > 0 {
		t := time.NewTimer(s.delay)
		defer t.Stop()
		select {
		case <-ctx.Done():
			return models.User{}, "", ctx.Err()
		case <-t.C:
		}
	}

	if name == "" {
		name, _, _ = strings.Cut(email, "@")
	}
	user := models.User{
		ID:    s.newID(),
		Email: email,
		Name:  name,
	}

	data, err := json.Marshal(user)
	if err != nil {
		return models.User{}, "", fmt.Errorf("failed to encode user: %w", err)
	}

	token := uuid.NewString()
	if err := s.put(ctx, token, string(data)); err != nil {
		return models.User{}, "", fmt.Errorf("failed to store session: %w", err)
	}

	metrics.Logins.Inc()
	slog.Info("user logged in", "user_id", user.ID)
	return user, token, nil
}

// Current resolves token to its user. Missing, expired or unreadable
// records mean logged out; an unreadable record is removed.
func (s *Service) Current(ctx context.Context, token string) (models.User, bool) {
	if token == "" {
		return models.User{}, false
	}
	raw, err := s.get(ctx, token)
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			slog.Error("failed to read session", "error", err)
		}
		return models.User{}, false
	}

	var user models.User
	if err := json.Unmarshal([]byte(raw), &user); err != nil || user.ID == "" {
		slog.Warn("discarding corrupt session record")
		_ = s.del(ctx, token)
		return models.User{}, false
	}
	return user, true
}

// Logout removes the session record. Unknown tokens are ignored.
func (s *Service) Logout(ctx context.Context, token string) error {
	if err := s.del(ctx, token); err != nil {
		return fmt.Errorf("failed to remove session: %w", err)
	}
	return nil
}

func (s *Service) put(ctx context.Context, token, value string) error {
	if s.redis == nil {
		s.mu.Lock()
		defer s.mu.Unlock()
		s.local[token] = value
		return nil
	}
	return s.redis.Set(ctx, KeyPrefix+token, value, s.ttl).Err()
}

func (s *Service) get(ctx context.Context, token string) (string, error) {
	if s.redis == nil {
		s.mu.RLock()
		defer s.mu.RUnlock()
		v, ok := s.local[token]
		if !ok {
			return "", redis.Nil
		}
		return v, nil
	}
	return s.redis.Get(ctx, KeyPrefix+token).Result()
}

func (s *Service) del(ctx context.Context, token string) error {
	if s.redis == nil {
		s.mu.Lock()
		defer s.mu.Unlock()
		delete(s.local, token)
		return nil
	}
	return s.redis.Del(ctx, KeyPrefix+token).Err()
}
