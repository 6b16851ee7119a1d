// Package payload models the structured payloads a QR code can carry and
// turns them into the exact string handed to the encoder.
//
// Seven payload types are supported: free text, URL, contact card (vCard
// 3.0), Wi-Fi credentials, email, phone and SMS. Each type is a separate
// value type implementing the Payload interface, so invalid field/type
// combinations cannot be expressed. Formatting is total: it never returns an
// error, and absent fields degrade to empty slots in the output rather than
// dropping lines, producing a syntactically valid but possibly incomplete
// string.
//
// Record wraps the current payload as immutable form state. Every edit
// returns a new Record, which makes the state trivially safe to snapshot for
// the debounced regeneration pipeline.
//
// # Usage
//
//	rec := payload.NewRecord().
//		WithType(payload.TypeWiFi).
//		Apply(payload.FieldSSID, "Home").
//		Apply(payload.FieldPassword, "pw123")
//
//	rec.Encode() // "WIFI:T:WPA;S:Home;P:pw123;H:false;;"
//
// Payload values can also be built directly:
//
//	payload.Email{Address: "a@b.c", Subject: "Hi"}.Encode()
//
// # Compatibility
//
// The mailto and sms formats intentionally apply no percent-encoding to the
// subject and body fields so the output stays byte-compatible with the web
// tool this package replaces. Callers needing RFC-compliant links should
// escape fields before applying them.
package payload
