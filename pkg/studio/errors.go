package studio

import "errors"

var (
	// ErrNoClipboard is returned by export actions when no clipboard collaborator is configured.
	ErrNoClipboard = errors.New("no clipboard configured")
	// ErrNoSaver is returned by Download when no saver collaborator is configured.
	ErrNoSaver = errors.New("no saver configured")
	// ErrExportFailed wraps failures of download, share and copy actions.
	ErrExportFailed = errors.New("export failed")
)
