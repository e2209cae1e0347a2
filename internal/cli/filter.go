// internal/cli/filter.go
package cli

import (
	"errors"
	"flag"
	"fmt"

	"fastakit-core/seq"

	"fastakit/internal/version"
)

// FilterOptions holds the fastafilter flags and arguments.
type FilterOptions struct {
	Path       string
	Out        string // destination path, "-" for stdout
	MinLength  int
	Type       string // "", DNA, RNA, PROTEIN, UNKNOWN
	ID         string // keep only the record with this identifier
	NoValidate bool
	Encoding   string
	Quiet      bool
	Version    bool
}

// Alphabet resolves the --type flag; empty means no constraint.
func (o FilterOptions) Alphabet() (seq.Alphabet, error) {
	if o.Type == "" {
		return seq.Unknown, nil
	}
	return seq.ParseAlphabet(o.Type)
}

// NewFilterFlagSet returns a configured FlagSet with custom usage.
func NewFilterFlagSet(name string) *flag.FlagSet {
	fs := NewFlagSet(name)
	fs.Usage = func() {
		fmt.Fprintf(fs.Output(),
			`%s: copy FASTA records matching a predicate

Version: %s

Usage: %s [flags] [file.fasta|-]

`, name, version.Version, name)
		fs.PrintDefaults()
	}
	return fs
}

// ParseFilter registers and parses the fastafilter flags.
func ParseFilter(fs *flag.FlagSet, argv []string) (FilterOptions, error) {
	var opt FilterOptions
	var help bool

	fs.StringVar(&opt.Out, "o", "-", "destination file ('-' = stdout) [-]")
	fs.IntVar(&opt.MinLength, "min-length", 0, "minimum sequence length [0]")
	fs.StringVar(&opt.Type, "type", "", "keep only records of this alphabet: DNA | RNA | PROTEIN []")
	fs.StringVar(&opt.ID, "id", "", "keep only the record whose header token matches []")
	fs.BoolVar(&opt.NoValidate, "no-validate", false, "permit records with empty sequences [false]")
	fs.StringVar(&opt.Encoding, "encoding", "", "IANA name of the source text encoding [utf-8]")
	fs.BoolVar(&opt.Quiet, "quiet", false, "suppress the written-count log line [false]")
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

	if opt.MinLength < 0 {
		return opt, errors.New("--min-length must be >= 0")
	}
	if _, err := opt.Alphabet(); err != nil {
		return opt, err
	}
	if _, err := ResolveEncoding(opt.Encoding); err != nil {
		return opt, err
	}
	return opt, nil
}
