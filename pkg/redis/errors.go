package redis

import "errors"

var (
	// ErrFailedToParseConnString indicates the Redis URL could not be parsed.
	ErrFailedToParseConnString = errors.New("failed to parse redis connection string")
	// ErrNotReady indicates the server did not answer PING within the retry budget.
	ErrNotReady = errors.New("redis is not ready")
	// ErrHealthcheckFailed indicates a failed health probe on an established connection.
	ErrHealthcheckFailed = errors.New("redis healthcheck failed")
)
