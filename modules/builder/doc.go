// Package builder is the web UI module for the QR studio. It exposes the
// editor page, a datastar signal endpoint that feeds the debounced
// generation pipeline, a server-sent event stream that pushes rendered
// codes back to the browser, and the export endpoints (download, copy,
// share) plus theme persistence.
//
// Each browser gets its own studio.Session, keyed by a cookie and managed
// by Manager. Mount the module on any chi router:
//
//	svc := builder.New(prefsStore, builder.WithLogger(log))
//	r.Mount("/", svc.Handle())
//	defer svc.Close()
package builder
