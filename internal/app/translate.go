// internal/app/translate.go
package app

import (
	"bufio"
	"context"
	"fmt"
	"io"

	"fastakit-core/fasta"
	"fastakit-core/seq"

	"fastakit/internal/cli"
	"fastakit/internal/version"
	"fastakit/internal/writers"
)

// RunTranslate is the fastatranslate entry point. Any non-nucleotide
// record aborts the run; partial output may already be flushed, matching
// the fail-at-detection policy of the core.
func RunTranslate(ctx context.Context, argv []string, stdout, stderr io.Writer) int {
	fs := cli.NewTranslateFlagSet("fastatranslate")
	fs.SetOutput(io.Discard)
	opts, err := cli.ParseTranslate(fs, argv)
	if err != nil {
		return usageExit(fs, err, stdout, stderr)
	}
	if opts.Version {
		fmt.Fprintf(stdout, "fastatranslate version %s\n", version.Version)
		return exitOK
	}

	lg := newLogger(stderr, "fastatranslate", opts.Quiet)

	enc, _ := cli.ResolveEncoding(opts.Encoding)
	stream, err := fasta.NewStreamEncoding(opts.Path, enc)
	if err != nil {
		lg.Error(describe(err), "path", opts.Path, "err", err)
		return exitFailure
	}

	dst, closeDst, err := openDest(opts.Out, stdout)
	if err != nil {
		lg.Error("cannot create output", "path", opts.Out, "err", err)
		return exitFailure
	}
	outw := bufio.NewWriter(dst)

	n := 0
	err = stream.Each(ctx, func(r *seq.Record) error {
		p, terr := r.Translate()
		if terr != nil {
			return terr
		}
		if _, werr := io.WriteString(outw, p.String()); werr != nil {
			return werr
		}
		n++
		return nil
	})
	if ferr := outw.Flush(); err == nil {
		err = ferr
	}
	if cerr := closeDst(); err == nil {
		err = cerr
	}
	if writers.IsBrokenPipe(err) {
		return exitOK
	}
	if err != nil {
		lg.Error(describe(err), "path", opts.Path, "err", err)
		return exitFailure
	}
	lg.Info("records translated", "count", n)
	return exitOK
}
