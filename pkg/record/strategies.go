package record

import (
	"fmt"
	"strings"

	"github.com/valyala/fastjson"
)

// candidate is a parsed JSON value that may become a Record, together with a
// label for where it was found (used in skip diagnostics).
type candidate struct {
	value  *fastjson.Value
	origin string
}

// strategy is one way of recovering candidate objects from raw text.
// Strategies are tried in priority order; the first to yield at least one
// candidate wins. notes carry per-line skip diagnostics that are only
// surfaced when the strategy is chosen.
type strategy struct {
	name string

	// emptyOK marks a strategy whose successful parse of zero candidates is
	// a valid empty result (a strict empty array) rather than a miss.
	emptyOK bool

	run func(text string) (candidates []candidate, notes []string, ok bool)
}

// strategies returns the ordered fallback chain: strict JSON, bracket
// normalization, trailing-comma repair, newline-delimited objects, and a
// last-resort scan for balanced objects embedded in arbitrary text.
func strategies() []strategy {
	return []strategy{
		{name: "strict", emptyOK: true, run: parseStrict},
		{name: "bracket-wrap", run: parseBracketWrapped},
		{name: "comma-repair", run: parseCommaRepaired},
		{name: "line-delimited", run: parseLines},
		{name: "object-scan", run: parseObjectScan},
	}
}

// parseStrict parses the whole text as one JSON value. An array yields its
// elements as candidates, an object yields itself. Any other value type is a
// miss, not an error.
func parseStrict(text string) ([]candidate, []string, bool) {
	v, err := fastjson.Parse(text)
	if err != nil {
		return nil, nil, false
	}
	return enumerateTop(v)
}

// parseBracketWrapped retries the text wrapped in [ ] for files that are
// "almost" a JSON array with the outer brackets missing.
func parseBracketWrapped(text string) ([]candidate, []string, bool) {
	t := strings.TrimSpace(text)
	if t == "" || (strings.HasPrefix(t, "[") && strings.HasSuffix(t, "]")) {
		return nil, nil, false
	}
	v, err := fastjson.Parse("[" + t + "]")
	if err != nil {
		return nil, nil, false
	}
	return enumerateTop(v)
}

// parseCommaRepaired deletes dangling commas (a comma whose next non-space
// byte is ] or }) and retries the strict and bracket-wrapped parses. A comma
// dangling at the very end of a bracketless file only becomes visible once
// the wrap supplies the closing ], so the wrapped form is repaired too.
func parseCommaRepaired(text string) ([]candidate, []string, bool) {
	if repaired := repairDanglingCommas(text); repaired != text {
		if cands, notes, ok := parseStrict(repaired); ok {
			return cands, notes, ok
		}
		if cands, notes, ok := parseBracketWrapped(repaired); ok {
			return cands, notes, ok
		}
	}
	t := strings.TrimSpace(text)
	if t == "" || (strings.HasPrefix(t, "[") && strings.HasSuffix(t, "]")) {
		return nil, nil, false
	}
	v, err := fastjson.Parse(repairDanglingCommas("[" + t + "]"))
	if err != nil {
		return nil, nil, false
	}
	return enumerateTop(v)
}

// parseLines treats the text as newline-delimited JSON objects, optionally
// with a trailing comma per line. Lines that fail to parse are recorded as
// notes, not fatal.
func parseLines(text string) ([]candidate, []string, bool) {
	var cands []candidate
	var notes []string

	for i, line := range strings.Split(text, "\n") {
		trimmed := strings.TrimSpace(line)
		trimmed = strings.TrimSuffix(trimmed, ",")
		if strings.TrimSpace(trimmed) == "" {
			continue
		}

		v, err := fastjson.Parse(trimmed)
		if err != nil {
			notes = append(notes, fmt.Sprintf("line %d: %v", i+1, err))
			continue
		}
		if v.Type() != fastjson.TypeObject {
			notes = append(notes, fmt.Sprintf("line %d: not a JSON object", i+1))
			continue
		}
		cands = append(cands, candidate{value: v, origin: fmt.Sprintf("line %d", i+1)})
	}

	return cands, notes, len(cands) > 0
}

// parseObjectScan scans the raw text for balanced {...} spans and parses
// each span independently, recovering objects embedded in arbitrary junk.
func parseObjectScan(text string) ([]candidate, []string, bool) {
	var cands []candidate

	for i := 0; i < len(text); {
		if text[i] != '{' {
			i++
			continue
		}
		end, ok := matchObject(text, i)
		if !ok {
			i++
			continue
		}
		v, err := fastjson.Parse(text[i:end])
		if err != nil || v.Type() != fastjson.TypeObject {
			i++
			continue
		}
		cands = append(cands, candidate{value: v, origin: fmt.Sprintf("offset %d", i)})
		i = end
	}

	return cands, nil, len(cands) > 0
}

// enumerateTop turns a top-level JSON value into candidates: array elements
// in order, or a single object as the sole candidate.
func enumerateTop(v *fastjson.Value) ([]candidate, []string, bool) {
	switch v.Type() {
	case fastjson.TypeArray:
		arr, _ := v.Array()
		cands := make([]candidate, 0, len(arr))
		for i, el := range arr {
			cands = append(cands, candidate{value: el, origin: fmt.Sprintf("element %d", i+1)})
		}
		return cands, nil, true
	case fastjson.TypeObject:
		return []candidate{{value: v, origin: "object"}}, nil, true
	default:
		return nil, nil, false
	}
}

// repairDanglingCommas removes every comma whose next non-whitespace byte is
// a closing ] or }, iterating until a fixed point so stacked commas (",,]")
// are fully cleaned. Commas inside string literals are kept.
func repairDanglingCommas(text string) string {
	for {
		repaired := stripDanglingCommas(text)
		if repaired == text {
			return repaired
		}
		text = repaired
	}
}

func stripDanglingCommas(text string) string {
	var b strings.Builder
	b.Grow(len(text))

	inStr := false
	escaped := false
	for i := 0; i < len(text); i++ {
		c := text[i]
		if inStr {
			b.WriteByte(c)
			switch {
			case escaped:
				escaped = false
			case c == '\\':
				escaped = true
			case c == '"':
				inStr = false
			}
			continue
		}
		switch {
		case c == '"':
			inStr = true
		case c == ',':
			j := i + 1
			for j < len(text) && isJSONSpace(text[j]) {
				j++
			}
			if j < len(text) && (text[j] == ']' || text[j] == '}') {
				continue
			}
		}
		b.WriteByte(c)
	}
	return b.String()
}

// matchObject returns the index just past the balanced object starting at
// start, tracking brace depth outside string literals.
func matchObject(text string, start int) (int, bool) {
	depth := 0
	inStr := false
	escaped := false

	for i := start; i < len(text); i++ {
		c := text[i]
		if inStr {
			switch {
			case escaped:
				escaped = false
			case c == '\\':
				escaped = true
			case c == '"':
				inStr = false
			}
			continue
		}
		switch c {
		case '"':
			inStr = true
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return i + 1, true
			}
		}
	}
	return 0, false
}

func isJSONSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r'
}
