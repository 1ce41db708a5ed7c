package econbrief

import "strings"

// Outcome classifies how a fetch ended.
type Outcome int

// Outcome constants for Document.Outcome.
const (
	OutcomeContent Outcome = iota
	OutcomeEmpty
	OutcomeError
)

// String returns a short label for logs.
func (o Outcome) String() string {
	switch o {
	case OutcomeContent:
		return "content"
	case OutcomeEmpty:
		return "empty"
	case OutcomeError:
		return "error"
	}
	return "unknown"
}

// Document is the raw result of a fetch. It is consumed once by an
// extractor and then discarded.
type Document struct {
	// URL is the address that was requested.
	URL string

	// HTML is the page markup. It may be set alongside Err when the server
	// answered with an error status, since challenge pages arrive that way.
	HTML string

	// StatusCode is the HTTP status of the main response when known, else 0.
	StatusCode int

	// Err is the underlying fetch failure, if any.
	Err error
}

// Outcome reports whether the fetch produced content, produced an empty
// page, or failed.
func (d *Document) Outcome() Outcome {
	switch {
	case d == nil:
		return OutcomeEmpty
	case d.Err != nil:
		return OutcomeError
	case strings.TrimSpace(d.HTML) == "":
		return OutcomeEmpty
	}
	return OutcomeContent
}
