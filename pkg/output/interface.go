// Package output renders extracted records in a selectable format.
package output

import (
	"context"
	"fmt"
	"io"

	"github.com/jtarrant/chfmt/pkg/record"
	"github.com/jtarrant/chfmt/pkg/render"
)

// Formatter renders a record sequence in a specific format.
type Formatter interface {
	// Format renders the records to the given writer.
	Format(ctx context.Context, recs []record.Record, w io.Writer) error

	// Name returns the format name (text, json).
	Name() string
}

// New returns the formatter for the given name.
func New(name string, cfg render.Config) (Formatter, error) {
	switch name {
	case "text":
		return NewTextFormatter(cfg), nil
	case "json":
		return NewJSONFormatter(), nil
	default:
		return nil, fmt.Errorf("unknown output format %q (use text or json)", name)
	}
}
