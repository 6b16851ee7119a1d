// Package redis provides Redis connection management with retry logic and
// health checks.
//
// Connect parses a Redis URL, dials with configurable retry attempts and
// verifies the connection with PING before returning the client.
//
// # Usage
//
//	cfg := redis.Config{ConnectionURL: "redis://localhost:6379/0"}
//	client, err := redis.Connect(ctx, cfg)
//	if err != nil {
//		// handle error
//	}
//	defer client.Close()
//
// Healthcheck returns a probe function compatible with
// httpserver.HealthCheckHandler.
package redis
