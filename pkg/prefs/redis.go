package prefs

import (
	"context"
	"errors"

	"github.com/redis/go-redis/v9"
)

// RedisStore persists the preference in Redis under the fixed Key, keeping
// it across process restarts.
type RedisStore struct {
	client *redis.Client
}

func NewRedisStore(client *redis.Client) *RedisStore {
	if client == nil {
		panic("prefs: nil redis client")
	}
	return &RedisStore{client: client}
}

func (s *RedisStore) Theme(ctx context.Context) (Theme, error) {
	val, err := s.client.Get(ctx, Key).Result()
	if errors.Is(err, redis.Nil) {
		return ThemeLight, nil
	}
	if err != nil {
		return ThemeLight, errors.Join(ErrStoreUnavailable, err)
	}

	t := Theme(val)
	if !t.Valid() {
		// Corrupted value reads as the default rather than an error.
		return ThemeLight, nil
	}
	return t, nil
}

func (s *RedisStore) SetTheme(ctx context.Context, t Theme) error {
	if !t.Valid() {
		return ErrInvalidTheme
	}
	if err := s.client.Set(ctx, Key, string(t), 0).Err(); err != nil {
		return errors.Join(ErrStoreUnavailable, err)
	}
	return nil
}
