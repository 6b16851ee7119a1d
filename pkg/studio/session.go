package studio

import (
	"context"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/dmitrymomot/qrstudio/pkg/debounce"
	"github.com/dmitrymomot/qrstudio/pkg/payload"
	"github.com/dmitrymomot/qrstudio/pkg/qrcode"
)

// Encoder turns a canonical payload string and render options into a raster
// image. qrcode.Render satisfies it through EncoderFunc.
type Encoder interface {
	Render(content string, opts qrcode.Options) (*qrcode.Result, error)
}

// EncoderFunc adapts a plain function to the Encoder interface.
type EncoderFunc func(content string, opts qrcode.Options) (*qrcode.Result, error)

func (f EncoderFunc) Render(content string, opts qrcode.Options) (*qrcode.Result, error) {
	return f(content, opts)
}

// snapshot captures the settled state handed to the encoder.
type snapshot struct {
	content string
	opts    qrcode.Options
}

// Session owns a single user's form state, render options and the latest
// rendered image, keeping the image consistent with the state through a
// debounced regeneration pipeline.
//
// The image exposed by Result always corresponds to the most recent settled
// state: a completion carrying a sequence number lower than the newest
// applied one is discarded rather than displayed.
type Session struct {
	enc    Encoder
	log    *slog.Logger
	deb    *debounce.Debouncer[snapshot]
	events *hub

	clip   Clipboard
	sharer Sharer
	saver  Saver

	mu      sync.Mutex
	record  payload.Record
	opts    qrcode.Options
	result  *qrcode.Result
	applied uint64 // sequence number of the render the current result came from
}

// NewSession creates a session with the default text payload and the given
// options.
func NewSession(opts ...Option) *Session {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(cfg)
	}
	if cfg.logger == nil {
		cfg.logger = slog.New(slog.DiscardHandler)
	}

	s := &Session{
		enc:    cfg.encoder,
		log:    cfg.logger,
		events: newHub(),
		clip:   cfg.clipboard,
		sharer: cfg.sharer,
		saver:  cfg.saver,
		record: payload.NewRecord(),
		opts:   cfg.renderOpts,
	}
	s.deb = debounce.New(cfg.quiet, s.regenerate)
	return s
}

// Apply sets a single form field and schedules a regeneration.
func (s *Session) Apply(f payload.Field, v string) {
	s.mu.Lock()
	s.record = s.record.Apply(f, v)
	s.mu.Unlock()
	s.schedule()
}

// SetType switches the payload type, discarding previous fields, and
// schedules a regeneration.
func (s *Session) SetType(t payload.Type) {
	s.mu.Lock()
	s.record = s.record.WithType(t)
	s.mu.Unlock()
	s.schedule()
}

// SetOptions replaces the render options and schedules a regeneration.
func (s *Session) SetOptions(opts qrcode.Options) {
	s.mu.Lock()
	s.opts = opts
	s.mu.Unlock()
	s.schedule()
}

// Record returns the current form state.
func (s *Session) Record() payload.Record {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.record
}

// RenderOptions returns the current render options.
func (s *Session) RenderOptions() qrcode.Options {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.opts
}

// Result returns the most recently displayed image, or nil before the first
// successful render.
func (s *Session) Result() *qrcode.Result {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.result
}

// Subscribe returns a channel of user-visible session events. The
// subscription ends when ctx is cancelled or the session closes.
func (s *Session) Subscribe(ctx context.Context) <-chan Event {
	return s.events.subscribe(ctx)
}

// Flush forces a pending regeneration to run immediately instead of waiting
// out the quiet period. Intended for tests and shutdown paths.
func (s *Session) Flush() {
	s.deb.Flush()
}

// Close stops the pipeline and closes all event subscriptions.
func (s *Session) Close() {
	s.deb.Stop()
	s.events.close()
}

func (s *Session) schedule() {
	s.mu.Lock()
	snap := snapshot{content: s.record.Encode(), opts: s.opts}
	s.mu.Unlock()
	s.deb.Trigger(snap)
}

// regenerate is the debounce callback: encode the settled state and install
// the result unless a newer render has been applied meanwhile.
func (s *Session) regenerate(seq uint64, snap snapshot) {
	if strings.TrimSpace(snap.content) == "" {
		// Empty content idles the pipeline; the previous image stays up.
		return
	}

	res, err := s.enc.Render(snap.content, snap.opts)
	if err != nil {
		s.log.Error("QR render failed",
			slog.Uint64("seq", seq),
			slog.Int("content_len", len(snap.content)),
			slog.Any("error", err),
		)
		s.events.publish(Event{Kind: EventError, Message: "Failed to generate QR code", At: time.Now()})
		return
	}

	s.mu.Lock()
	if seq < s.applied {
		s.mu.Unlock()
		// A fresher render already won; drop the stale completion.
		s.log.Debug("discarded stale render", slog.Uint64("seq", seq))
		return
	}
	s.applied = seq
	s.result = res
	s.mu.Unlock()

	s.events.publish(Event{Kind: EventSuccess, Message: "QR code generated", At: res.GeneratedAt})
}
