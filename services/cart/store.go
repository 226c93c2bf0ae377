package cart

import (
	"context"
	"encoding/json"
	"fmt"

	"handyhub/models"

	"github.com/go-redis/redis/v8"
)

// Store is the durable key/value store behind the cart engine. Load returns
// (nil, nil) when no entry exists for the client. Implementations hold one
// JSON document per client key; concurrent writers are last-write-wins.
type Store interface {
	Load(ctx context.Context, clientID string) ([]models.CartEntry, error)
	Save(ctx context.Context, clientID string, entries []models.CartEntry) error
	Delete(ctx context.Context, clientID string) error
}

// RedisStore persists carts as JSON under a prefixed client key. The same
// implementation backs both the live cart and the staged pending booking,
// distinguished by prefix.
type RedisStore struct {
	Client *redis.Client
	Prefix string
}

// NewRedisStore returns a Store writing under the given key prefix.
func NewRedisStore(client *redis.Client, prefix string) *RedisStore {
	return &RedisStore{Client: client, Prefix: prefix}
}

func (s *RedisStore) key(clientID string) string {
	return s.Prefix + clientID
}

// Load reads and decodes the client's entries. A missing key yields an
// empty cart, not an error.
func (s *RedisStore) Load(ctx context.Context, clientID string) ([]models.CartEntry, error) {
	data, err := s.Client.Get(ctx, s.key(clientID)).Result()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read cart store: %w", err)
	}

	var entries []models.CartEntry
	if err := json.Unmarshal([]byte(data), &entries); err != nil {
		return nil, fmt.Errorf("failed to parse cart payload: %w", err)
	}
	return entries, nil
}

// Save writes the client's entries through to the store.
func (s *RedisStore) Save(ctx context.Context, clientID string, entries []models.CartEntry) error {
	data, err := json.Marshal(entries)
	if err != nil {
		return fmt.Errorf("failed to marshal cart: %w", err)
	}
	if err := s.Client.Set(ctx, s.key(clientID), data, 0).Err(); err != nil {
		return fmt.Errorf("failed to write cart store: %w", err)
	}
	return nil
}

// Delete removes the client's key outright.
func (s *RedisStore) Delete(ctx context.Context, clientID string) error {
	if err := s.Client.Del(ctx, s.key(clientID)).Err(); err != nil {
		return fmt.Errorf("failed to clear cart store: %w", err)
	}
	return nil
}
