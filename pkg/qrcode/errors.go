package qrcode

import "errors"

var (
	// ErrEmptyContent is returned when the content string is empty or only whitespace.
	ErrEmptyContent = errors.New("content cannot be empty")
	// ErrInvalidOptions is returned when colors, level or the margin/width combination is invalid.
	ErrInvalidOptions = errors.New("invalid render options")
	// ErrRenderFailed is returned when the underlying library cannot encode the content.
	ErrRenderFailed = errors.New("failed to render QR code")
)
