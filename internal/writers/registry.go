// internal/writers/registry.go
package writers

import (
	"errors"
	"fmt"
	"io"
	"syscall"

	"fastakit/pkg/api"
)

// StatsWriter serializes file statistics for one output format. All
// formats read from the stable pkg/api schema so text, TSV and JSON stay
// in lockstep.
type StatsWriter func(w io.Writer, st api.StatsV1) error

var statsWriters = map[string]StatsWriter{}

// RegisterStats installs a writer for format (last registration wins).
// Writer files call it from init.
func RegisterStats(format string, fn StatsWriter) { statsWriters[format] = fn }

// WriteStats dispatches to the writer registered for format.
func WriteStats(format string, w io.Writer, st api.StatsV1) error {
	fn, ok := statsWriters[format]
	if !ok {
		return fmt.Errorf("unknown stats format %q (no writer registered)", format)
	}
	return fn(w, st)
}

// IsBrokenPipe reports whether err came from a downstream consumer (such
// as `head`) closing early, which the tools treat as a clean exit.
func IsBrokenPipe(err error) bool {
	return err != nil && (errors.Is(err, syscall.EPIPE) || errors.Is(err, io.ErrClosedPipe))
}
