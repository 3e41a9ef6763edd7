// internal/domain/cart/store.go
package cart

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
)

// Store persists session carts. Get returns a fresh empty session when the
// id is unknown; callers cannot distinguish "never existed" from "expired",
// which matches the session-scoped ownership model.
type Store interface {
	Get(ctx context.Context, sessionID string) (*Session, error)
	Save(ctx context.Context, session *Session) error
	Delete(ctx context.Context, sessionID string) error
}

func cartKey(sessionID string) string {
	return fmt.Sprintf("cart:session:%s", sessionID)
}

// RedisStore keeps session carts in Redis with a rolling TTL
type RedisStore struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisStore creates a Redis-backed session cart store
func NewRedisStore(client *redis.Client, ttl time.Duration) *RedisStore {
	return &RedisStore{
		client: client,
		ttl:    ttl,
	}
}

// Get retrieves the session cart, or a fresh one when absent
func (s *RedisStore) Get(ctx context.Context, sessionID string) (*Session, error) {
	if sessionID == "" {
		return nil, fmt.Errorf("session id required")
	}

	data, err := s.client.Get(ctx, cartKey(sessionID)).Result()
	if err == redis.Nil {
		return newSession(sessionID, s.ttl), nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read cart session: %w", err)
	}

	var session Session
	if err := json.Unmarshal([]byte(data), &session); err != nil {
		return nil, fmt.Errorf("failed to decode cart session: %w", err)
	}

	return &session, nil
}

// Save writes the session cart, resetting its TTL
func (s *RedisStore) Save(ctx context.Context, session *Session) error {
	data, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("failed to encode cart session: %w", err)
	}

	return s.client.Set(ctx, cartKey(session.ID), data, s.ttl).Err()
}

// Delete removes the session cart
func (s *RedisStore) Delete(ctx context.Context, sessionID string) error {
	return s.client.Del(ctx, cartKey(sessionID)).Err()
}

// MemoryStore keeps session carts in process memory. It backs the cart when
// Redis is unreachable at startup, and the tests.
type MemoryStore struct {
	mu       sync.RWMutex
	sessions map[string]Session
	ttl      time.Duration
}

// NewMemoryStore creates an in-process session cart store
func NewMemoryStore(ttl time.Duration) *MemoryStore {
	return &MemoryStore{
		sessions: make(map[string]Session),
		ttl:      ttl,
	}
}

// Get retrieves a copy of the session cart, or a fresh one when absent
func (s *MemoryStore) Get(ctx context.Context, sessionID string) (*Session, error) {
	if sessionID == "" {
		return nil, fmt.Errorf("session id required")
	}

	s.mu.RLock()
	stored, ok := s.sessions[sessionID]
	s.mu.RUnlock()

	if !ok || time.Now().UTC().After(stored.ExpiresAt) {
		return newSession(sessionID, s.ttl), nil
	}

	session := stored
	session.Lines = make([]Line, len(stored.Lines))
	copy(session.Lines, stored.Lines)
	return &session, nil
}

// Save stores a copy of the session cart
func (s *MemoryStore) Save(ctx context.Context, session *Session) error {
	stored := *session
	stored.Lines = make([]Line, len(session.Lines))
	copy(stored.Lines, session.Lines)
	stored.ExpiresAt = time.Now().UTC().Add(s.ttl)

	s.mu.Lock()
	s.sessions[session.ID] = stored
	s.mu.Unlock()
	return nil
}

// Delete removes the session cart
func (s *MemoryStore) Delete(ctx context.Context, sessionID string) error {
	s.mu.Lock()
	delete(s.sessions, sessionID)
	s.mu.Unlock()
	return nil
}

func newSession(sessionID string, ttl time.Duration) *Session {
	now := time.Now().UTC()
	return &Session{
		ID:        sessionID,
		Lines:     []Line{},
		CreatedAt: now,
		UpdatedAt: now,
		ExpiresAt: now.Add(ttl),
	}
}
