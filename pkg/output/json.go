package output

import (
	"context"
	"encoding/json"
	"io"

	"github.com/jtarrant/chfmt/pkg/record"
	"github.com/jtarrant/chfmt/pkg/render"
)

// JSONRecord is one record in JSON output.
type JSONRecord struct {
	Timestamp int64  `json:"timestamp"`
	Time      string `json:"time"`
	Display   string `json:"display"`
}

// JSONFormatter re-emits the recovered records as a strictly valid,
// indented JSON array, turning a mangled input file into clean JSON.
type JSONFormatter struct{}

// NewJSONFormatter creates a JSON formatter.
func NewJSONFormatter() *JSONFormatter {
	return &JSONFormatter{}
}

// Name returns the format name.
func (f *JSONFormatter) Name() string {
	return "json"
}

// Format writes the records as an indented JSON array.
func (f *JSONFormatter) Format(ctx context.Context, recs []record.Record, w io.Writer) error {
	out := make([]JSONRecord, 0, len(recs))
	for _, rec := range recs {
		out = append(out, JSONRecord{
			Timestamp: rec.Timestamp,
			Time:      render.FormatTimestamp(rec.Timestamp),
			Display:   rec.Display,
		})
	}

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(out)
}
