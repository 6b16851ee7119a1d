// Package studio glues form state, render options and the QR encoder into a
// live session: every edit schedules a debounced regeneration, and the
// resulting image is kept consistent with the most recent settled state.
//
// # Architecture
//
// A Session owns exactly one (Record, Options, Result) triple. Mutators
// (Apply, SetType, SetOptions) replace the state immutably and trigger the
// debouncer; when input activity pauses for the quiet period, the canonical
// payload string is handed to the Encoder. Completions carry the sequence
// number of the trigger that produced them, and a completion older than the
// newest applied one is discarded, so the displayed image always reflects
// the latest state even if encodes finish out of order.
//
// Empty content idles the pipeline: nothing is encoded and the previous
// image stays in place. Encoder failures likewise keep the previous image
// and surface as error events. No retries happen anywhere; the user
// re-triggers by editing input.
//
// Sessions publish user-visible events (generated, failed, export outcomes)
// to subscribers; slow subscribers drop events rather than block the
// pipeline.
//
// # Export actions
//
// Download, Share and CopyContent expose the current result through the
// Saver, Sharer and Clipboard collaborator interfaces. Share probes the
// optional native sharing capability and falls back to placing the image
// data URI on the clipboard.
//
// # Usage
//
//	sess := studio.NewSession(studio.WithQuietPeriod(300 * time.Millisecond))
//	defer sess.Close()
//
//	events := sess.Subscribe(ctx)
//	sess.SetType(payload.TypeURL)
//	sess.Apply(payload.FieldContent, "https://example.com")
//	// after the quiet period an EventSuccess arrives and sess.Result()
//	// returns the rendered image
package studio
