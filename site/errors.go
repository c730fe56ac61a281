package site

import "errors"

// Error kinds for the build pipeline. Every failure is wrapped around one of
// these so callers can classify it with errors.Is. All of them are fatal to
// the batch; the build reports the first error and halts.
var (
	// ErrNotFound indicates a missing content root or template.
	ErrNotFound = errors.New("not found")

	// ErrMalformedContent indicates a source file that could not be read
	// or whose front matter could not be parsed.
	ErrMalformedContent = errors.New("malformed content")

	// ErrTemplate indicates a missing template or a template that failed
	// to execute.
	ErrTemplate = errors.New("template error")

	// ErrIO indicates a failure writing rendered output.
	ErrIO = errors.New("write error")
)
