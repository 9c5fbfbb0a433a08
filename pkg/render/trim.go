package render

import "strings"

// TrimWords returns text truncated to max whitespace-delimited words, with a
// literal "..." appended when anything was dropped. Trimming twice with the
// same max yields the same text as trimming once.
func TrimWords(text string, max int) string {
	words := strings.Fields(text)
	if len(words) <= max {
		return text
	}
	return strings.Join(words[:max], " ") + "..."
}
