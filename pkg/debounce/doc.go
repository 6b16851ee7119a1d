// Package debounce coalesces bursts of triggers into a single callback
// invocation after a quiet period with no further activity.
//
// Every trigger is assigned a monotonically increasing sequence number that
// is passed to the callback, so callers running the callback asynchronously
// can discard completions that are older than the newest request
// (last-write-wins ordering).
//
// # Usage
//
//	d := debounce.New(300*time.Millisecond, func(seq uint64, s state) {
//		// runs once per settled burst with the latest state
//	})
//	defer d.Stop()
//
//	d.Trigger(s1)
//	d.Trigger(s2) // cancels the pending s1 callback
//	// after 300ms of silence the callback fires once with s2
//
// All methods are safe for concurrent use.
package debounce
