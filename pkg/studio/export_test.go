package studio_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/dmitrymomot/qrstudio/pkg/payload"
	"github.com/dmitrymomot/qrstudio/pkg/studio"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSharer struct {
	available bool
	err       error
	requests  []studio.ShareRequest
}

func (f *fakeSharer) Available() bool { return f.available }

func (f *fakeSharer) Share(ctx context.Context, req studio.ShareRequest) error {
	f.requests = append(f.requests, req)
	return f.err
}

type failingClipboard struct{}

func (failingClipboard) Write(ctx context.Context, text string) error {
	return errors.New("clipboard unavailable")
}

func renderedSession(t *testing.T, opts ...studio.Option) *studio.Session {
	t.Helper()
	base := []studio.Option{
		studio.WithEncoder(newFakeEncoder()),
		studio.WithQuietPeriod(10 * time.Millisecond),
	}
	sess := studio.NewSession(append(base, opts...)...)
	t.Cleanup(sess.Close)

	sess.Apply(payload.FieldContent, "hello")
	waitResult(t, sess, "hello")
	return sess
}

func TestDownload(t *testing.T) {
	t.Parallel()

	t.Run("no-op before first successful render", func(t *testing.T) {
		t.Parallel()
		saver, err := studio.NewDirSaver(t.TempDir())
		require.NoError(t, err)

		sess := studio.NewSession(
			studio.WithEncoder(newFakeEncoder()),
			studio.WithSaver(saver),
		)
		defer sess.Close()

		path, err := sess.Download(context.Background())

		require.NoError(t, err)
		assert.Empty(t, path, "download without an image must be a no-op")
	})

	t.Run("saves the image under its timestamped filename", func(t *testing.T) {
		t.Parallel()
		dir := t.TempDir()
		saver, err := studio.NewDirSaver(dir)
		require.NoError(t, err)

		sess := renderedSession(t, studio.WithSaver(saver))

		path, err := sess.Download(context.Background())

		require.NoError(t, err)
		require.NotEmpty(t, path)
		assert.Equal(t, dir, filepath.Dir(path))
		assert.Equal(t, sess.Result().Filename(), filepath.Base(path))

		data, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, sess.Result().PNG, data)
	})

	t.Run("returns ErrNoSaver without a saver", func(t *testing.T) {
		t.Parallel()
		sess := renderedSession(t)

		_, err := sess.Download(context.Background())

		assert.True(t, errors.Is(err, studio.ErrNoSaver))
	})
}

func TestShare(t *testing.T) {
	t.Parallel()

	t.Run("no-op before first successful render", func(t *testing.T) {
		t.Parallel()
		sess := studio.NewSession(studio.WithEncoder(newFakeEncoder()))
		defer sess.Close()

		require.NoError(t, sess.Share(context.Background()))
	})

	t.Run("uses the native sharer when available", func(t *testing.T) {
		t.Parallel()
		sharer := &fakeSharer{available: true}
		sess := renderedSession(t, studio.WithSharer(sharer))

		require.NoError(t, sess.Share(context.Background()))

		require.Len(t, sharer.requests, 1)
		assert.Equal(t, sess.Result().Filename(), sharer.requests[0].Filename)
		assert.Equal(t, sess.Result().PNG, sharer.requests[0].Data)
	})

	t.Run("falls back to the clipboard when sharing is unavailable", func(t *testing.T) {
		t.Parallel()
		sharer := &fakeSharer{available: false}
		clip := studio.NewMemoryClipboard()
		sess := renderedSession(t, studio.WithSharer(sharer), studio.WithClipboard(clip))

		require.NoError(t, sess.Share(context.Background()))

		assert.Empty(t, sharer.requests, "unavailable sharer must not be invoked")
		assert.Equal(t, sess.Result().DataURI(), clip.Text(), "fallback copies the image data URI")
	})

	t.Run("share failure surfaces an error event", func(t *testing.T) {
		t.Parallel()
		sharer := &fakeSharer{available: true, err: errors.New("denied")}
		sess := renderedSession(t, studio.WithSharer(sharer))
		events := sess.Subscribe(context.Background())

		err := sess.Share(context.Background())

		require.Error(t, err)
		assert.True(t, errors.Is(err, studio.ErrExportFailed))
		ev := waitEvent(t, events)
		assert.Equal(t, studio.EventError, ev.Kind)
	})
}

func TestCopyContent(t *testing.T) {
	t.Parallel()

	t.Run("copies the payload text, not the image", func(t *testing.T) {
		t.Parallel()
		clip := studio.NewMemoryClipboard()
		sess := renderedSession(t, studio.WithClipboard(clip))

		require.NoError(t, sess.CopyContent(context.Background()))

		assert.Equal(t, "hello", clip.Text())
	})

	t.Run("clipboard failure surfaces an error event", func(t *testing.T) {
		t.Parallel()
		sess := renderedSession(t, studio.WithClipboard(failingClipboard{}))
		events := sess.Subscribe(context.Background())

		err := sess.CopyContent(context.Background())

		require.Error(t, err)
		assert.True(t, errors.Is(err, studio.ErrExportFailed))
		ev := waitEvent(t, events)
		assert.Equal(t, studio.EventError, ev.Kind)
	})

	t.Run("returns ErrNoClipboard without a clipboard", func(t *testing.T) {
		t.Parallel()
		sess := renderedSession(t)

		err := sess.CopyContent(context.Background())

		assert.True(t, errors.Is(err, studio.ErrNoClipboard))
	})
}

func TestDirSaver(t *testing.T) {
	t.Parallel()

	t.Run("rejects empty directory", func(t *testing.T) {
		t.Parallel()
		_, err := studio.NewDirSaver("")
		assert.True(t, errors.Is(err, studio.ErrInvalidSaverDir))
	})

	t.Run("flattens traversal attempts", func(t *testing.T) {
		t.Parallel()
		dir := t.TempDir()
		saver, err := studio.NewDirSaver(dir)
		require.NoError(t, err)

		path, err := saver.Save(context.Background(), "../../escape.png", []byte("x"))

		require.NoError(t, err)
		assert.Equal(t, filepath.Join(dir, "escape.png"), path)
	})

	t.Run("respects context cancellation", func(t *testing.T) {
		t.Parallel()
		saver, err := studio.NewDirSaver(t.TempDir())
		require.NoError(t, err)

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		_, err = saver.Save(ctx, "a.png", []byte("x"))
		assert.ErrorIs(t, err, context.Canceled)
	})
}
