// internal/cli/stats.go
package cli

import (
	"flag"
	"fmt"

	"fastakit/internal/version"
)

// StatsOptions holds the fastastats flags and arguments.
type StatsOptions struct {
	Path     string
	Output   string // text | tsv | json
	Pretty   bool
	Encoding string
	Quiet    bool
	Version  bool
}

// NewStatsFlagSet returns a configured FlagSet with custom usage.
func NewStatsFlagSet(name string) *flag.FlagSet {
	fs := NewFlagSet(name)
	fs.Usage = func() {
		fmt.Fprintf(fs.Output(),
			`%s: aggregate statistics over a FASTA file

Version: %s

Usage: %s [flags] [file.fasta|-]

`, name, version.Version, name)
		fs.PrintDefaults()
	}
	return fs
}

// ParseStats registers and parses the fastastats flags.
func ParseStats(fs *flag.FlagSet, argv []string) (StatsOptions, error) {
	var opt StatsOptions
	var help bool

	fs.StringVar(&opt.Output, "output", "text", "output format: text | tsv | json [text]")
	fs.BoolVar(&opt.Pretty, "pretty", false, "styled human-readable summary [false]")
	fs.StringVar(&opt.Encoding, "encoding", "", "IANA name of the source text encoding [utf-8]")
	fs.BoolVar(&opt.Quiet, "quiet", false, "suppress progress logging [false]")
	fs.BoolVar(&opt.Version, "v", false, "print version and exit (shorthand) [false]")
	fs.BoolVar(&opt.Version, "version", false, "print version and exit [false]")
	fs.BoolVar(&help, "h", false, "show this help message (shorthand) [false]")

	if err := fs.Parse(argv); err != nil {
		return opt, err
	}
	if help {
		fs.Usage()
		return opt, flag.ErrHelp
	}
	if opt.Version {
		return opt, nil
	}
	opt.Path = inputPath(fs)

	if opt.Output != "text" && opt.Output != "tsv" && opt.Output != "json" {
		return opt, fmt.Errorf("invalid --output %q", opt.Output)
	}
	if _, err := ResolveEncoding(opt.Encoding); err != nil {
		return opt, err
	}
	return opt, nil
}
