package qrcode

import (
	"bytes"
	"encoding/base64"
	"errors"
	"fmt"
	"image"
	"image/draw"
	"image/png"
	"strings"
	"time"

	skipqrcode "github.com/skip2/go-qrcode"
)

// Result is a rendered QR image together with the content it encodes and the
// generation timestamp used for filenames. Results are immutable: the
// pipeline replaces them wholesale, never patches them.
type Result struct {
	PNG         []byte
	Content     string
	GeneratedAt time.Time
}

// DataURI returns the image as a base64 data URI suitable for an <img> src
// attribute.
func (r *Result) DataURI() string {
	return "data:image/png;base64," + base64.StdEncoding.EncodeToString(r.PNG)
}

// Filename returns a timestamped name for saving the image.
func (r *Result) Filename() string {
	return "qrcode-" + r.GeneratedAt.Format("20060102-150405") + ".png"
}

// Render encodes content as a QR code PNG using the given options.
//
// Zero Width and negative Margin fall back to defaults. The quiet zone is
// drawn in the background color at exactly Margin pixels on each side; the
// code itself fills the remaining Width-2*Margin square.
func Render(content string, opts Options) (*Result, error) {
	if strings.TrimSpace(content) == "" {
		return nil, ErrEmptyContent
	}
	if opts.Width <= 0 {
		opts.Width = DefaultWidth
	}
	if opts.Margin < 0 {
		opts.Margin = 0
	}
	if opts.Margin*2 >= opts.Width {
		return nil, fmt.Errorf("%w: margin %dpx leaves no room at width %dpx", ErrInvalidOptions, opts.Margin, opts.Width)
	}

	level, ok := opts.Level.recoveryLevel()
	if !ok {
		return nil, fmt.Errorf("%w: unknown error-correction level %q", ErrInvalidOptions, opts.Level)
	}

	if opts.Foreground == "" {
		opts.Foreground = DefaultForeground
	}
	if opts.Background == "" {
		opts.Background = DefaultBackground
	}
	fg, err := parseHexColor(opts.Foreground)
	if err != nil {
		return nil, err
	}
	bg, err := parseHexColor(opts.Background)
	if err != nil {
		return nil, err
	}

	qr, err := skipqrcode.New(content, level)
	if err != nil {
		return nil, errors.Join(ErrRenderFailed, err)
	}
	qr.ForegroundColor = fg
	qr.BackgroundColor = bg
	// The upstream border is module-sized; the margin is applied in pixels
	// below instead.
	qr.DisableBorder = true

	inner := opts.Width - 2*opts.Margin
	code := qr.Image(inner)

	canvas := image.NewRGBA(image.Rect(0, 0, opts.Width, opts.Width))
	draw.Draw(canvas, canvas.Bounds(), image.NewUniform(bg), image.Point{}, draw.Src)
	offset := image.Pt(opts.Margin, opts.Margin)
	draw.Draw(canvas, code.Bounds().Add(offset), code, code.Bounds().Min, draw.Over)

	var buf bytes.Buffer
	if err := png.Encode(&buf, canvas); err != nil {
		return nil, errors.Join(ErrRenderFailed, err)
	}

	return &Result{
		PNG:         buf.Bytes(),
		Content:     content,
		GeneratedAt: time.Now(),
	}, nil
}

// Generate creates a QR code image in PNG format with the given content and
// default colors and margin. Size <= 0 falls back to the default 256px.
// Returns the image as a byte slice or an error if rendering fails.
func Generate(content string, size int) ([]byte, error) {
	opts := DefaultOptions()
	if size > 0 {
		opts.Width = size
	}
	res, err := Render(content, opts)
	if err != nil {
		return nil, err
	}
	return res.PNG, nil
}

// GenerateBase64Image creates a base64 data-URI representation of a QR code
// image with the given content, for direct embedding into HTML:
//
//	<img src="{{.QrCode}}">
func GenerateBase64Image(content string, size int) (string, error) {
	opts := DefaultOptions()
	if size > 0 {
		opts.Width = size
	}
	res, err := Render(content, opts)
	if err != nil {
		return "", err
	}
	return res.DataURI(), nil
}
