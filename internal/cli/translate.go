// internal/cli/translate.go
package cli

import (
	"flag"
	"fmt"

	"fastakit/internal/version"
)

// TranslateOptions holds the fastatranslate flags and arguments.
type TranslateOptions struct {
	Path     string
	Out      string // destination path, "-" for stdout
	Encoding string
	Quiet    bool
	Version  bool
}

// NewTranslateFlagSet returns a configured FlagSet with custom usage.
func NewTranslateFlagSet(name string) *flag.FlagSet {
	fs := NewFlagSet(name)
	fs.Usage = func() {
		fmt.Fprintf(fs.Output(),
			`%s: translate DNA/RNA records to protein

Version: %s

Usage: %s [flags] [file.fasta|-]

`, name, version.Version, name)
		fs.PrintDefaults()
	}
	return fs
}

// ParseTranslate registers and parses the fastatranslate flags.
func ParseTranslate(fs *flag.FlagSet, argv []string) (TranslateOptions, error) {
	var opt TranslateOptions
	var help bool

	fs.StringVar(&opt.Out, "o", "-", "destination file ('-' = stdout) [-]")
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

	if _, err := ResolveEncoding(opt.Encoding); err != nil {
		return opt, err
	}
	return opt, nil
}
