// internal/cli/common.go
package cli

import (
	"flag"
	"fmt"
	"strings"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/ianaindex"
)

// NewFlagSet returns a FlagSet that reports parse errors to the caller
// instead of exiting, with usage rendering deferred until asked for.
func NewFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.Usage = func() {}
	return fs
}

// ResolveEncoding maps an IANA charset name to a text decoder for the
// stream layer. Empty and UTF-8 names mean native passthrough (nil).
func ResolveEncoding(name string) (encoding.Encoding, error) {
	switch strings.ToLower(name) {
	case "", "utf-8", "utf8":
		return nil, nil
	}
	enc, err := ianaindex.IANA.Encoding(name)
	if err != nil || enc == nil {
		return nil, fmt.Errorf("unknown encoding %q", name)
	}
	return enc, nil
}

// inputPath returns the positional FASTA argument, defaulting to stdin.
func inputPath(fs *flag.FlagSet) string {
	if fs.NArg() > 0 {
		return fs.Arg(0)
	}
	return "-"
}
