package studio

import (
	"log/slog"
	"time"

	"github.com/dmitrymomot/qrstudio/pkg/qrcode"
)

// DefaultQuietPeriod is the pause in input activity required before a
// regeneration fires.
const DefaultQuietPeriod = 300 * time.Millisecond

// Option configures a Session.
type Option func(*config)

type config struct {
	encoder    Encoder
	quiet      time.Duration
	logger     *slog.Logger
	renderOpts qrcode.Options
	clipboard  Clipboard
	sharer     Sharer
	saver      Saver
}

func defaultConfig() *config {
	return &config{
		encoder:    EncoderFunc(qrcode.Render),
		quiet:      DefaultQuietPeriod,
		renderOpts: qrcode.DefaultOptions(),
	}
}

// WithEncoder replaces the QR encoder. Nil encoders are ignored.
func WithEncoder(enc Encoder) Option {
	return func(c *config) {
		if enc != nil {
			c.encoder = enc
		}
	}
}

// WithQuietPeriod sets the debounce quiet period.
// Panics on non-positive durations to fail fast on wiring mistakes.
func WithQuietPeriod(d time.Duration) Option {
	if d <= 0 {
		panic("studio: quiet period must be positive")
	}
	return func(c *config) { c.quiet = d }
}

// WithLogger supplies an external slog.Logger instance.
func WithLogger(l *slog.Logger) Option {
	return func(c *config) {
		if l != nil {
			c.logger = l
		}
	}
}

// WithRenderOptions sets the initial render options.
func WithRenderOptions(opts qrcode.Options) Option {
	return func(c *config) { c.renderOpts = opts }
}

// WithClipboard sets the clipboard collaborator used by CopyContent and the
// Share fallback.
func WithClipboard(clip Clipboard) Option {
	return func(c *config) { c.clipboard = clip }
}

// WithSharer sets the optional native sharing collaborator.
func WithSharer(s Sharer) Option {
	return func(c *config) { c.sharer = s }
}

// WithSaver sets the collaborator Download persists images through.
func WithSaver(s Saver) Option {
	return func(c *config) { c.saver = s }
}
