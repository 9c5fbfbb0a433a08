package render

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// Wrap greedily packs whitespace-delimited words into lines of at most
// width display cells. Words are never reordered or hyphenated; a single
// word wider than width occupies its own line, unbroken. Blank text yields
// a single empty line.
func Wrap(text string, width int) []string {
	words := strings.Fields(text)
	if len(words) == 0 {
		return []string{""}
	}

	var lines []string
	current := words[0]
	currentWidth := runewidth.StringWidth(words[0])

	for _, word := range words[1:] {
		w := runewidth.StringWidth(word)
		if currentWidth+1+w <= width {
			current += " " + word
			currentWidth += 1 + w
			continue
		}
		lines = append(lines, current)
		current = word
		currentWidth = w
	}

	return append(lines, current)
}
