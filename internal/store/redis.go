package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/aitprint-portal/AITPRINT/internal/ledger"
)

const redisDocumentKey = "print_portal:document:v1"

// RedisStore keeps the serialized document under a single Redis key.
type RedisStore struct {
	client *redis.Client
	key    string
}

// NewRedisStore builds a Redis-backed document store.
func NewRedisStore(client *redis.Client) *RedisStore {
	return &RedisStore{client: client, key: redisDocumentKey}
}

// Load fetches and parses the stored document.
func (s *RedisStore) Load(ctx context.Context) (ledger.Document, error) {
	payload, err := s.client.Get(ctx, s.key).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return ledger.Document{}, ErrNoDocument
		}
		return ledger.Document{}, fmt.Errorf("redis get %s: %w", s.key, err)
	}

	var doc ledger.Document
	if err := json.Unmarshal([]byte(payload), &doc); err != nil {
		return ledger.Document{}, fmt.Errorf("%w: %v", ErrCorruptData, err)
	}
	return doc, nil
}

// Save overwrites the stored document. The key never expires.
func (s *RedisStore) Save(ctx context.Context, doc ledger.Document) error {
	payload, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("marshal document: %w", err)
	}
	if err := s.client.Set(ctx, s.key, payload, 0).Err(); err != nil {
		return fmt.Errorf("redis set %s: %w", s.key, err)
	}
	return nil
}
