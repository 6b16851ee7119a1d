// Package httpserver wraps net/http.Server with graceful shutdown, signal
// handling and structured logging.
//
// Run blocks until the context is cancelled, an interrupt signal arrives or
// the server fails; in the first two cases the server drains in-flight
// requests within the configured shutdown timeout before returning.
//
// # Usage
//
//	srv := httpserver.New(
//		httpserver.WithAddr(":8080"),
//		httpserver.WithLogger(log),
//	)
//	if err := srv.Run(ctx, router); err != nil {
//		// handle error
//	}
//
// Configuration can also come from the environment through Config and
// NewFromConfig.
package httpserver
