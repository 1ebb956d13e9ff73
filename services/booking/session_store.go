package booking

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/go-redis/redis/v8"

	"github.com/robsonrdev/AgendaFacil-saas/models"
	"github.com/robsonrdev/AgendaFacil-saas/utils"
)

// SessionStore persists booking-flow sessions between requests. Entries
// expire on their own; an abandoned flow needs no cleanup.
type SessionStore interface {
	Get(ctx context.Context, sessionID string) (models.BookingSession, error)
	Save(ctx context.Context, session models.BookingSession) error
	Delete(ctx context.Context, sessionID string) error
}

// RedisSessionStore keeps sessions in the generic cache with a rolling TTL.
type RedisSessionStore struct {
	Client *redis.Client
}

// NewRedisSessionStore constructs a session store on the given Redis client.
func NewRedisSessionStore(client *redis.Client) *RedisSessionStore {
	return &RedisSessionStore{Client: client}
}

func sessionKey(sessionID string) string {
	return utils.BookingSessionPrefix + sessionID
}

// Get loads a session by ID.
func (s *RedisSessionStore) Get(ctx context.Context, sessionID string) (models.BookingSession, error) {
	var session models.BookingSession

	data, err := s.Client.Get(ctx, sessionKey(sessionID)).Bytes()
	if err == redis.Nil {
		return session, ErrSessionNotFound
	}
	if err != nil {
		return session, fmt.Errorf("failed to load booking session: %w", err)
	}
	if err := json.Unmarshal(data, &session); err != nil {
		return session, fmt.Errorf("failed to decode booking session: %w", err)
	}
	return session, nil
}

// Save writes a session and resets its TTL.
func (s *RedisSessionStore) Save(ctx context.Context, session models.BookingSession) error {
	data, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("failed to encode booking session: %w", err)
	}
	if err := s.Client.Set(ctx, sessionKey(session.ID), data, utils.BookingSessionTTL).Err(); err != nil {
		return fmt.Errorf("failed to store booking session: %w", err)
	}
	return nil
}

// Delete removes a session immediately.
func (s *RedisSessionStore) Delete(ctx context.Context, sessionID string) error {
	if err := s.Client.Del(ctx, sessionKey(sessionID)).Err(); err != nil {
		return fmt.Errorf("failed to delete booking session: %w", err)
	}
	return nil
}
