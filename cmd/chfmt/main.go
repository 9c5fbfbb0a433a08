// chfmt - Human-Readable Record Rendering
//
// chfmt reads a file of timestamped JSON records, tolerating loosely-formed
// input, and prints them as word-wrapped, timestamp-aligned text.
package main

import (
	"os"

	"github.com/jtarrant/chfmt/internal/cli"
)

func main() {
	os.Exit(cli.Execute())
}
