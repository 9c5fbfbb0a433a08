package record

import (
	"fmt"
	"io"

	"github.com/valyala/fastjson"
)

// Extractor recovers records from raw file text. It tolerates several input
// framings: a JSON array, a single object, newline-delimited objects,
// missing outer brackets, trailing commas, and objects embedded in other
// text.
type Extractor struct {
	diag io.Writer
}

// Option configures an Extractor.
type Option func(*Extractor)

// WithDiagnostics directs skipped-record warnings to w.
// Warnings are discarded by default.
func WithDiagnostics(w io.Writer) Option {
	return func(e *Extractor) { e.diag = w }
}

// New creates an Extractor with the given options.
func New(opts ...Option) *Extractor {
	e := &Extractor{diag: io.Discard}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Extract recovers an ordered sequence of records from raw text.
//
// Parsing strategies are tried in priority order and the first one to yield
// at least one candidate object wins; a strict parse of an empty array is a
// successful empty result. Candidates missing an integer "timestamp" or a
// string "display" field are skipped with a diagnostic. Returns ErrNoRecords
// when no strategy produces a valid record.
func (e *Extractor) Extract(raw string) ([]Record, error) {
	for _, s := range strategies() {
		candidates, notes, ok := s.run(raw)
		if !ok {
			continue
		}
		if len(candidates) == 0 {
			if s.emptyOK {
				return []Record{}, nil
			}
			continue
		}

		for _, note := range notes {
			e.warnf("skipping %s", note)
		}

		records := e.validate(candidates)
		if len(records) == 0 {
			return nil, ErrNoRecords
		}
		return records, nil
	}

	return nil, ErrNoRecords
}

// validate converts candidates to records, dropping malformed ones with a
// diagnostic. Order of appearance is preserved, duplicates included.
func (e *Extractor) validate(candidates []candidate) []Record {
	records := make([]Record, 0, len(candidates))
	for _, c := range candidates {
		rec, err := toRecord(c.value)
		if err != nil {
			e.warnf("skipping %s: %v", c.origin, err)
			continue
		}
		records = append(records, rec)
	}
	return records
}

// toRecord validates a candidate object: an integer "timestamp" (ms since
// epoch, non-negative) and a string "display" are both required.
func toRecord(v *fastjson.Value) (Record, error) {
	if v.Type() != fastjson.TypeObject {
		return Record{}, fmt.Errorf("not a JSON object")
	}

	ts := v.Get("timestamp")
	if ts == nil {
		return Record{}, fmt.Errorf("missing timestamp field")
	}
	if ts.Type() != fastjson.TypeNumber {
		return Record{}, fmt.Errorf("timestamp is %s, want integer", ts.Type())
	}
	ms, err := ts.Int64()
	if err != nil {
		return Record{}, fmt.Errorf("timestamp is not an integer")
	}
	if ms < 0 {
		return Record{}, fmt.Errorf("timestamp is negative")
	}

	d := v.Get("display")
	if d == nil {
		return Record{}, fmt.Errorf("missing display field")
	}
	if d.Type() != fastjson.TypeString {
		return Record{}, fmt.Errorf("display is %s, want string", d.Type())
	}

	return Record{Timestamp: ms, Display: string(d.GetStringBytes())}, nil
}

func (e *Extractor) warnf(format string, args ...any) {
	_, _ = fmt.Fprintf(e.diag, "warning: "+format+"\n", args...)
}
