// Package qrcode renders payload strings as QR code PNG images with
// configurable colors, error-correction level, quiet-zone margin and pixel
// width.
//
// The package is a thin wrapper around github.com/skip2/go-qrcode that adds
// render options, input validation, and result helpers (data URI embedding
// and timestamped filenames) for the export actions built on top of it.
//
// # Architecture
//
// Render is the core entry point: it validates the options, delegates QR
// matrix generation to the upstream library, composites the matrix onto a
// background-colored canvas to honor the exact pixel margin, and returns a
// Result holding the PNG bytes together with the generation timestamp.
//
// Generate and GenerateBase64Image remain as convenience helpers rendering
// with default options at a given size.
//
// # Usage
//
//	import "github.com/dmitrymomot/qrstudio/pkg/qrcode"
//
//	res, err := qrcode.Render("https://example.com", qrcode.DefaultOptions())
//	if err != nil {
//		// handle error
//	}
//	res.DataURI()  // "data:image/png;base64,..." for <img> tags
//	res.Filename() // "qrcode-20250102-150405.png"
//
// # Error Handling
//
// The functions return well-defined sentinel errors:
//
//   - ErrEmptyContent   – the content argument was empty.
//   - ErrInvalidOptions – colors, level or margin/width combination invalid.
//   - ErrRenderFailed   – the underlying library could not encode the
//     content, e.g. data too long for the chosen error-correction level.
//
// Wrap your error handling with errors.Is for robust comparisons.
package qrcode
