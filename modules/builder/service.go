package builder

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/dmitrymomot/qrstudio/pkg/prefs"
	"github.com/dmitrymomot/qrstudio/pkg/studio"
)

// sessionCookie keys the per-browser studio session.
const sessionCookie = "qrstudio_sid"

// Service wires HTTP traffic to per-browser studio sessions and the theme
// preference store.
type Service struct {
	sessions *Manager
	prefs    prefs.Store
	log      *slog.Logger
}

// Option configures the builder service.
type Option func(*Service)

// WithLogger supplies an external slog.Logger instance. If nil, logs are discarded.
func WithLogger(l *slog.Logger) Option {
	return func(s *Service) { s.log = l }
}

// WithSessionOptions forwards studio options to every session the module
// creates. Used to swap the encoder in tests and to tune the quiet period.
func WithSessionOptions(opts ...studio.Option) Option {
	return func(s *Service) { s.sessions = NewManager(opts...) }
}

// New returns a Service persisting theme preferences in store.
func New(store prefs.Store, opts ...Option) *Service {
	if store == nil {
		panic("builder.New: store cannot be nil")
	}
	svc := &Service{
		sessions: NewManager(),
		prefs:    store,
	}
	for _, opt := range opts {
		opt(svc)
	}
	if svc.log == nil {
		svc.log = slog.New(slog.DiscardHandler)
	}
	return svc
}

// Handle returns the module router, ready to mount.
func (s *Service) Handle() http.Handler {
	r := chi.NewRouter()

	r.Get("/", s.page)
	r.Post("/edit", s.edit)
	r.Get("/stream", s.stream)
	r.Get("/download", s.download)
	r.Post("/copy", s.copy)
	r.Post("/share", s.share)
	r.Post("/theme", s.theme)

	return r
}

// Close shuts down all live sessions.
func (s *Service) Close() {
	s.sessions.Close()
}

// Sessions reports the number of live studio sessions.
func (s *Service) Sessions() int {
	return s.sessions.Len()
}

// sessionID resolves this browser's session identifier, minting the ID
// cookie on first contact.
func (s *Service) sessionID(w http.ResponseWriter, r *http.Request) string {
	if c, err := r.Cookie(sessionCookie); err == nil && c.Value != "" {
		return c.Value
	}

	id := uuid.NewString()
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookie,
		Value:    id,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	return id
}

// session resolves the studio session for this browser.
func (s *Service) session(w http.ResponseWriter, r *http.Request) *studio.Session {
	return s.sessions.Get(s.sessionID(w, r))
}
