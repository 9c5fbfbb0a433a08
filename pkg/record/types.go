// Package record recovers timestamped display records from loosely-formed
// JSON text.
package record

import "errors"

// ErrNoRecords is returned when no interpretable record can be recovered
// from the input under any parsing strategy.
var ErrNoRecords = errors.New("no valid records found")

// Record is a single timestamped entry recovered from the input.
// Immutable once extracted.
type Record struct {
	// Timestamp is Unix time in milliseconds.
	Timestamp int64

	// Display is the text to render.
	Display string
}
