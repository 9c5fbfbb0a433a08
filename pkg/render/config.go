// Package render formats records as word-wrapped, timestamp-aligned text
// blocks. All functions are pure; rendering never fails.
package render

// Config controls rendering. It is constructed once from CLI input and
// never mutated during a run.
type Config struct {
	// Width is the terminal column budget.
	Width int

	// TrimWords caps the display text at that many words before wrapping,
	// appending "..." when anything is dropped. Negative disables trimming.
	TrimWords int
}
