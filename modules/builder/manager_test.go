package builder_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/qrstudio/modules/builder"
	"github.com/dmitrymomot/qrstudio/pkg/studio"
)

func TestManagerEvictsOnLastRelease(t *testing.T) {
	t.Parallel()

	m := builder.NewManager(studio.WithQuietPeriod(5 * time.Millisecond))
	t.Cleanup(m.Close)

	for i := range 100 {
		m.Acquire(fmt.Sprintf("session-%d", i))
	}
	require.Equal(t, 100, m.Len())

	for i := range 100 {
		m.Release(fmt.Sprintf("session-%d", i))
	}
	assert.Equal(t, 0, m.Len(), "sessions must be evicted once their last stream ends")
}

func TestManagerReleaseClosesSession(t *testing.T) {
	t.Parallel()

	m := builder.NewManager(studio.WithQuietPeriod(5 * time.Millisecond))
	t.Cleanup(m.Close)

	sess := m.Acquire("a")
	events := sess.Subscribe(context.Background())

	m.Release("a")

	select {
	case _, ok := <-events:
		assert.False(t, ok, "eviction should close the session's event subscriptions")
	case <-time.After(time.Second):
		t.Fatal("subscription was not closed after eviction")
	}
}

func TestManagerKeepsSessionWhileStreamsRemain(t *testing.T) {
	t.Parallel()

	m := builder.NewManager(studio.WithQuietPeriod(5 * time.Millisecond))
	t.Cleanup(m.Close)

	first := m.Acquire("a")
	second := m.Acquire("a")
	assert.Same(t, first, second, "one browser gets one session across tabs")

	m.Release("a")
	assert.Equal(t, 1, m.Len(), "session must survive while another stream is attached")

	m.Release("a")
	assert.Equal(t, 0, m.Len())
}

func TestManagerReleaseUnknownID(t *testing.T) {
	t.Parallel()

	m := builder.NewManager()
	t.Cleanup(m.Close)

	m.Release("never-seen")
	assert.Equal(t, 0, m.Len())
}

func TestManagerGetWithoutStreamPersists(t *testing.T) {
	t.Parallel()

	m := builder.NewManager(studio.WithQuietPeriod(5 * time.Millisecond))
	t.Cleanup(m.Close)

	first := m.Get("a")
	second := m.Get("a")
	assert.Same(t, first, second)
	assert.Equal(t, 1, m.Len(), "unpinned sessions live until the manager closes")
}
