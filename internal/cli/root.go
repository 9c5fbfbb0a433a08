// Package cli provides the command-line interface for chfmt.
package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jtarrant/chfmt/internal/termwidth"
	"github.com/jtarrant/chfmt/pkg/output"
	"github.com/jtarrant/chfmt/pkg/record"
	"github.com/jtarrant/chfmt/pkg/render"
)

// Execute runs the root command and returns the exit code.
func Execute() int {
	rootCmd := NewRootCommand()

	if err := rootCmd.Execute(); err != nil {
		// Print error to stderr (SilenceErrors prevents Cobra from doing this)
		_, _ = fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 2 // Argument, file, or parse error
	}
	return 0
}

// Options holds command-line options for a render run.
type Options struct {
	Trim   int
	Width  int
	Output string
}

// NewRootCommand creates the root cobra command. The root action is the
// render run itself; the only subcommand is version.
func NewRootCommand() *cobra.Command {
	opts := &Options{}

	rootCmd := &cobra.Command{
		Use:   "chfmt [flags] <file>",
		Short: "Render timestamped JSON records as readable text",
		Long: `chfmt reads a file of JSON records and renders them as word-wrapped,
timestamp-aligned plain text.

Each record needs two fields:
  "timestamp"  Unix time in milliseconds
  "display"    text to display

The parser tolerates loosely-formed input: a JSON array, a single object,
newline-delimited objects, missing outer brackets, trailing commas, and
objects embedded in other text. Malformed records are skipped with a
warning on stderr.

Exit codes:
  0 - Records rendered (or the file held a valid empty array)
  2 - Bad arguments, unreadable file, or no records recovered`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runFormat(cmd, args, opts)
		},
	}

	rootCmd.Flags().IntVarP(&opts.Trim, "trim", "t", -1, "Truncate display text to N words, appending '...' if trimmed")
	rootCmd.Flags().IntVarP(&opts.Width, "width", "w", 0, "Target column width (default: detected terminal width)")
	rootCmd.Flags().StringVarP(&opts.Output, "output", "o", "text", "Output format (text|json)")

	rootCmd.AddCommand(NewVersionCommand())

	return rootCmd
}

func runFormat(cmd *cobra.Command, args []string, opts *Options) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	if cmd.Flags().Changed("trim") && opts.Trim < 0 {
		return fmt.Errorf("invalid --trim value %d: must be non-negative", opts.Trim)
	}
	if cmd.Flags().Changed("width") && opts.Width < 1 {
		return fmt.Errorf("invalid --width value %d: must be at least 1", opts.Width)
	}

	path := args[0]
	raw, err := os.ReadFile(path) // #nosec G304 -- user-provided paths are expected
	if err != nil {
		return fmt.Errorf("reading %s: %w", path, err)
	}

	width := opts.Width
	if width == 0 {
		width = termwidth.Width(os.Stdout)
	}

	cfg := render.Config{Width: width, TrimWords: -1}
	if cmd.Flags().Changed("trim") {
		cfg.TrimWords = opts.Trim
	}

	formatter, err := output.New(opts.Output, cfg)
	if err != nil {
		return err
	}

	extractor := record.New(record.WithDiagnostics(cmd.ErrOrStderr()))
	recs, err := extractor.Extract(string(raw))
	if err != nil {
		return fmt.Errorf("parsing %s: %w", path, err)
	}

	if err := formatter.Format(ctx, recs, cmd.OutOrStdout()); err != nil {
		return fmt.Errorf("formatting output: %w", err)
	}
	return nil
}
