// internal/app/app.go
package app

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"io/fs"
	"os"

	"github.com/charmbracelet/log"

	"fastakit-core/fasta"
	"fastakit-core/seq"
)

// Exit codes shared by all tools.
const (
	exitOK      = 0
	exitFailure = 1
	exitUsage   = 2
)

func newLogger(stderr io.Writer, name string, quiet bool) *log.Logger {
	lg := log.NewWithOptions(stderr, log.Options{Prefix: name})
	if quiet {
		lg.SetLevel(log.ErrorLevel)
	}
	return lg
}

// usageExit handles flag parse results shared by every tool: -h renders
// usage as success, anything else is a usage error.
func usageExit(fs *flag.FlagSet, err error, stdout, stderr io.Writer) int {
	if errors.Is(err, flag.ErrHelp) {
		fs.SetOutput(stdout)
		fs.Usage()
		return exitOK
	}
	fmt.Fprintln(stderr, err)
	fs.SetOutput(stderr)
	fs.Usage()
	return exitUsage
}

// describe names the failure kind for log output so users can tell a
// malformed file from a bad record or a missing one.
func describe(err error) string {
	var ferr *fasta.FormatError
	var serr *seq.Error
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return "input not found"
	case errors.As(err, &ferr):
		return "not a FASTA file"
	case errors.As(err, &serr):
		return "invalid record"
	default:
		return "read failed"
	}
}

// openDest resolves the -o flag: stdout passthrough or a created file.
func openDest(out string, stdout io.Writer) (io.Writer, func() error, error) {
	if out == "" || out == "-" {
		return stdout, func() error { return nil }, nil
	}
	fh, err := os.Create(out)
	if err != nil {
		return nil, nil, err
	}
	return fh, fh.Close, nil
}
