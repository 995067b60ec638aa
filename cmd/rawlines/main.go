// rawlines - executable line counter
//
// rawlines classifies lines of Python source as executable versus blank,
// comment, or docstring, optionally strips entry-point blocks, and reports
// per-file counts.
package main

import (
	"os"

	"rawlines/internal/cli"
)

func main() {
	os.Exit(cli.Execute())
}
