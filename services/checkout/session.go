package checkout

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"handyhub/models"
	"handyhub/utils"

	"github.com/go-redis/redis/v8"
)

// SessionStore holds in-flight checkout sessions. Get returns (nil, nil)
// when no session exists; abandoning the flow simply lets the entry expire.
type SessionStore interface {
	Get(ctx context.Context, clientID string) (*models.CheckoutSession, error)
	Put(ctx context.Context, session *models.CheckoutSession) error
	Delete(ctx context.Context, clientID string) error
}

// RedisSessionStore keeps sessions as JSON under a TTL, the same way the
// cart store keeps entries but scoped to the workflow's lifetime.
type RedisSessionStore struct {
	Client *redis.Client
	TTL    time.Duration
}

// NewRedisSessionStore returns a SessionStore with the standard TTL.
func NewRedisSessionStore(client *redis.Client) *RedisSessionStore {
	return &RedisSessionStore{Client: client, TTL: utils.SessionTTL}
}

func sessionKey(clientID string) string {
	return utils.SessionKeyPrefix + clientID
}

func (s *RedisSessionStore) Get(ctx context.Context, clientID string) (*models.CheckoutSession, error) {
	data, err := s.Client.Get(ctx, sessionKey(clientID)).Result()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read checkout session: %w", err)
	}

	var session models.CheckoutSession
	if err := json.Unmarshal([]byte(data), &session); err != nil {
		return nil, fmt.Errorf("failed to parse checkout session: %w", err)
	}
	return &session, nil
}

func (s *RedisSessionStore) Put(ctx context.Context, session *models.CheckoutSession) error {
	data, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("failed to marshal checkout session: %w", err)
	}
	if err := s.Client.Set(ctx, sessionKey(session.ClientID), data, s.TTL).Err(); err != nil {
		return fmt.Errorf("failed to store checkout session: %w", err)
	}
	return nil
}

func (s *RedisSessionStore) Delete(ctx context.Context, clientID string) error {
	if err := s.Client.Del(ctx, sessionKey(clientID)).Err(); err != nil {
		return fmt.Errorf("failed to delete checkout session: %w", err)
	}
	return nil
}
