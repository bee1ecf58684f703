package store

import (
	"context"
	"testing"

	miniredis "github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
)

func setupRedisStore(t *testing.T) (*RedisStore, *miniredis.Miniredis) {
	t.Helper()
	mr, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(mr.Close)

	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })

	return NewRedisStore(client), mr
}

func TestRedisStoreRoundTrip(t *testing.T) {
	ctx := context.Background()
	s, _ := setupRedisStore(t)

	_, err := s.Load(ctx)
	require.ErrorIs(t, err, ErrNoDocument)

	doc := sampleDocument(t)
	require.NoError(t, s.Save(ctx, doc))

	loaded, err := s.Load(ctx)
	require.NoError(t, err)
	requireSameDocument(t, doc, loaded)
}

func TestRedisStoreCorruptData(t *testing.T) {
	s, mr := setupRedisStore(t)
	require.NoError(t, mr.Set(redisDocumentKey, "{not json"))

	_, err := s.Load(context.Background())
	require.ErrorIs(t, err, ErrCorruptData)
}
