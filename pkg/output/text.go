package output

import (
	"context"
	"io"

	"github.com/jtarrant/chfmt/pkg/record"
	"github.com/jtarrant/chfmt/pkg/render"
)

// TextFormatter renders records as word-wrapped, timestamp-aligned text
// blocks. This is the default format.
type TextFormatter struct {
	cfg render.Config
}

// NewTextFormatter creates a text formatter with the given render config.
func NewTextFormatter(cfg render.Config) *TextFormatter {
	return &TextFormatter{cfg: cfg}
}

// Name returns the format name.
func (f *TextFormatter) Name() string {
	return "text"
}

// Format renders the records as text blocks.
func (f *TextFormatter) Format(ctx context.Context, recs []record.Record, w io.Writer) error {
	return render.WriteBlocks(w, recs, f.cfg)
}
