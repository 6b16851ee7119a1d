package logger

import "log/slog"

// Error creates an attribute for a single error under the key "error".
// If err is nil, it returns an empty Attr.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

// Component records the component name under the key "component".
func Component(name string) slog.Attr {
	return slog.String("component", name)
}

// SessionID records the builder session identifier under the key "session_id".
// If id is empty, it returns an empty Attr.
func SessionID(id string) slog.Attr {
	if id == "" {
		return slog.Attr{}
	}
	return slog.String("session_id", id)
}

// PayloadType records the payload type under the key "payload_type".
func PayloadType(t any) slog.Attr {
	return slog.Any("payload_type", t)
}
