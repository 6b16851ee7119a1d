package prefs

import "errors"

var (
	// ErrInvalidTheme is returned when storing a value that is neither light nor dark.
	ErrInvalidTheme = errors.New("invalid theme value")
	// ErrStoreUnavailable wraps backend failures while reading or writing the preference.
	ErrStoreUnavailable = errors.New("preference store unavailable")
)
