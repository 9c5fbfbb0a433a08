package record

import (
	"strings"
	"testing"
)

func TestParseStrict(t *testing.T) {
	tests := []struct {
		name       string
		input      string
		ok         bool
		candidates int
	}{
		{name: "array", input: `[{"a":1},{"b":2}]`, ok: true, candidates: 2},
		{name: "object", input: `{"a":1}`, ok: true, candidates: 1},
		{name: "empty array", input: `[]`, ok: true, candidates: 0},
		{name: "bare string", input: `"hello"`, ok: false},
		{name: "bare number", input: `7`, ok: false},
		{name: "invalid", input: `{"a":`, ok: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cands, _, ok := parseStrict(tt.input)
			if ok != tt.ok {
				t.Fatalf("parseStrict() ok = %v, want %v", ok, tt.ok)
			}
			if ok && len(cands) != tt.candidates {
				t.Errorf("parseStrict() yielded %d candidates, want %d", len(cands), tt.candidates)
			}
		})
	}
}

func TestParseBracketWrapped(t *testing.T) {
	cands, _, ok := parseBracketWrapped(`{"a":1}, {"b":2}`)
	if !ok {
		t.Fatal("parseBracketWrapped() failed on bracketless elements")
	}
	if len(cands) != 2 {
		t.Errorf("got %d candidates, want 2", len(cands))
	}

	// Already-bracketed text is left to the strict mode
	if _, _, ok := parseBracketWrapped(`[{"a":1}]`); ok {
		t.Error("parseBracketWrapped() should refuse already-bracketed text")
	}
}

func TestParseLines_LineNumbers(t *testing.T) {
	input := "{\"a\":1}\n\nnot json\n{\"b\":2},"

	cands, notes, ok := parseLines(input)
	if !ok {
		t.Fatal("parseLines() failed")
	}
	if len(cands) != 2 {
		t.Fatalf("got %d candidates, want 2", len(cands))
	}
	if cands[0].origin != "line 1" || cands[1].origin != "line 4" {
		t.Errorf("origins = %q, %q; want line 1, line 4", cands[0].origin, cands[1].origin)
	}
	if len(notes) != 1 || !strings.Contains(notes[0], "line 3") {
		t.Errorf("notes = %v, want one naming line 3", notes)
	}
}

func TestParseObjectScan_SkipsUnbalanced(t *testing.T) {
	input := `{broken {"timestamp": 1, "display": "a"}`

	cands, _, ok := parseObjectScan(input)
	if !ok {
		t.Fatal("parseObjectScan() failed")
	}
	if len(cands) != 1 {
		t.Fatalf("got %d candidates, want 1", len(cands))
	}
}

func TestRepairDanglingCommas(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "before bracket", input: `[1,]`, want: `[1]`},
		{name: "before brace", input: `{"a":1,}`, want: `{"a":1}`},
		{name: "with whitespace", input: "[1, \n ]", want: "[1 \n ]"},
		{name: "stacked", input: `[1,,,]`, want: `[1]`},
		{name: "separator kept", input: `[1,2]`, want: `[1,2]`},
		{name: "inside string kept", input: `["a,]",]`, want: `["a,]"]`},
		{name: "escaped quote in string", input: `["\",]",]`, want: `["\",]"]`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := repairDanglingCommas(tt.input); got != tt.want {
				t.Errorf("repairDanglingCommas(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestMatchObject(t *testing.T) {
	tests := []struct {
		name  string
		input string
		start int
		end   int
		ok    bool
	}{
		{name: "flat", input: `{"a":1}`, start: 0, end: 7, ok: true},
		{name: "nested", input: `{"a":{"b":2}}`, start: 0, end: 13, ok: true},
		{name: "brace in string", input: `{"a":"}"}`, start: 0, end: 9, ok: true},
		{name: "unterminated", input: `{"a":1`, start: 0, ok: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			end, ok := matchObject(tt.input, tt.start)
			if ok != tt.ok {
				t.Fatalf("matchObject() ok = %v, want %v", ok, tt.ok)
			}
			if ok && end != tt.end {
				t.Errorf("matchObject() end = %d, want %d", end, tt.end)
			}
		})
	}
}
