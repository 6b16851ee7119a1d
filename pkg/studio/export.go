package studio

import (
	"context"
	"errors"
	"log/slog"
	"time"
)

// ShareRequest carries the image handed to a native share target.
type ShareRequest struct {
	Title    string
	Filename string
	Data     []byte
}

// Clipboard writes text to the host clipboard.
type Clipboard interface {
	Write(ctx context.Context, text string) error
}

// Sharer is an optional native sharing capability. Available must be probed
// before Share is called; hosts without the capability report false.
type Sharer interface {
	Available() bool
	Share(ctx context.Context, req ShareRequest) error
}

// Saver persists a rendered image under a suggested filename and returns the
// location it was saved to.
type Saver interface {
	Save(ctx context.Context, filename string, data []byte) (string, error)
}

// Download saves the current image under its timestamped filename and
// returns the saved location. With no successful render yet it is a no-op
// returning an empty path and no error.
func (s *Session) Download(ctx context.Context) (string, error) {
	res := s.Result()
	if res == nil {
		return "", nil
	}
	if s.saver == nil {
		return "", ErrNoSaver
	}

	path, err := s.saver.Save(ctx, res.Filename(), res.PNG)
	if err != nil {
		s.log.Error("download failed", slog.Any("error", err))
		s.events.publish(Event{Kind: EventError, Message: "Failed to save image", At: time.Now()})
		return "", errors.Join(ErrExportFailed, err)
	}

	s.events.publish(Event{Kind: EventSuccess, Message: "Image saved", At: time.Now()})
	return path, nil
}

// Share hands the current image to the native share target when one is
// available, otherwise falls back to copying the image data URI to the
// clipboard. With no successful render yet it is a no-op.
func (s *Session) Share(ctx context.Context) error {
	res := s.Result()
	if res == nil {
		return nil
	}

	if s.sharer != nil && s.sharer.Available() {
		req := ShareRequest{Title: "QR Code", Filename: res.Filename(), Data: res.PNG}
		if err := s.sharer.Share(ctx, req); err != nil {
			s.log.Error("share failed", slog.Any("error", err))
			s.events.publish(Event{Kind: EventError, Message: "Failed to share image", At: time.Now()})
			return errors.Join(ErrExportFailed, err)
		}
		s.events.publish(Event{Kind: EventSuccess, Message: "Image shared", At: time.Now()})
		return nil
	}

	if s.clip == nil {
		return ErrNoClipboard
	}
	if err := s.clip.Write(ctx, res.DataURI()); err != nil {
		s.log.Error("share clipboard fallback failed", slog.Any("error", err))
		s.events.publish(Event{Kind: EventError, Message: "Failed to copy image", At: time.Now()})
		return errors.Join(ErrExportFailed, err)
	}
	s.events.publish(Event{Kind: EventSuccess, Message: "Image copied to clipboard", At: time.Now()})
	return nil
}

// CopyContent copies the payload's textual content, not the image, to the
// clipboard.
func (s *Session) CopyContent(ctx context.Context) error {
	if s.clip == nil {
		return ErrNoClipboard
	}

	s.mu.Lock()
	text := s.record.Content()
	s.mu.Unlock()

	if err := s.clip.Write(ctx, text); err != nil {
		s.log.Error("copy failed", slog.Any("error", err))
		s.events.publish(Event{Kind: EventError, Message: "Failed to copy content", At: time.Now()})
		return errors.Join(ErrExportFailed, err)
	}

	s.events.publish(Event{Kind: EventSuccess, Message: "Copied to clipboard", At: time.Now()})
	return nil
}
