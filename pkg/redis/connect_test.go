package redis_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/qrstudio/pkg/redis"
)

func TestConnectInvalidURL(t *testing.T) {
	t.Parallel()

	client, err := redis.Connect(context.Background(), redis.Config{
		ConnectionURL: "not-a-redis-url",
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, redis.ErrFailedToParseConnString)
	assert.Nil(t, client)
}

func TestConnectUnreachable(t *testing.T) {
	t.Parallel()

	// Reserved port on localhost with nothing listening; keep the retry
	// budget tight so the test stays fast.
	client, err := redis.Connect(context.Background(), redis.Config{
		ConnectionURL:  "redis://127.0.0.1:1/0",
		RetryAttempts:  2,
		RetryInterval:  10 * time.Millisecond,
		ConnectTimeout: time.Second,
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, redis.ErrNotReady)
	assert.Nil(t, client)
}

func TestHealthcheckNilClient(t *testing.T) {
	t.Parallel()

	probe := redis.Healthcheck(nil)
	err := probe(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, redis.ErrHealthcheckFailed)
}
