package builder

import (
	"sync"

	"github.com/dmitrymomot/qrstudio/pkg/studio"
)

// Manager owns one studio.Session per browser. Sessions are created lazily
// and evicted once their last event stream disconnects, so abandoned tabs
// and cookie-less one-shot visitors do not accumulate.
type Manager struct {
	mu      sync.Mutex
	entries map[string]*entry
	opts    []studio.Option
}

type entry struct {
	sess    *studio.Session
	streams int
}

// NewManager returns a Manager that creates sessions with the given studio
// options.
func NewManager(opts ...studio.Option) *Manager {
	return &Manager{
		entries: make(map[string]*entry),
		opts:    opts,
	}
}

// Get returns the session for the given ID, creating it if needed. The
// session is not pinned; it lives until its streams end or the Manager
// closes.
func (m *Manager) Get(id string) *studio.Session {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.get(id).sess
}

// Acquire returns the session for the given ID and pins it for the duration
// of one event stream. Every Acquire must be paired with a Release.
func (m *Manager) Acquire(id string) *studio.Session {
	m.mu.Lock()
	defer m.mu.Unlock()

	e := m.get(id)
	e.streams++
	return e.sess
}

// Release unpins one event stream. When the last stream for a session ends
// the session is closed and forgotten; a returning browser gets a fresh one.
func (m *Manager) Release(id string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	e, ok := m.entries[id]
	if !ok {
		return
	}
	e.streams--
	if e.streams <= 0 {
		e.sess.Close()
		delete(m.entries, id)
	}
}

// Len reports the number of live sessions.
func (m *Manager) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.entries)
}

// Close shuts down every session and forgets them.
func (m *Manager) Close() {
	m.mu.Lock()
	defer m.mu.Unlock()

	for id, e := range m.entries {
		e.sess.Close()
		delete(m.entries, id)
	}
}

// get returns the entry for id, creating it if needed. Caller holds mu.
func (m *Manager) get(id string) *entry {
	if e, ok := m.entries[id]; ok {
		return e
	}
	e := &entry{sess: studio.NewSession(m.opts...)}
	m.entries[id] = e
	return e
}
