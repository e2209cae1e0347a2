// internal/app/filter.go
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

// RunFilter is the fastafilter entry point.
func RunFilter(ctx context.Context, argv []string, stdout, stderr io.Writer) int {
	fs := cli.NewFilterFlagSet("fastafilter")
	fs.SetOutput(io.Discard)
	opts, err := cli.ParseFilter(fs, argv)
	if err != nil {
		return usageExit(fs, err, stdout, stderr)
	}
	if opts.Version {
		fmt.Fprintf(stdout, "fastafilter version %s\n", version.Version)
		return exitOK
	}

	lg := newLogger(stderr, "fastafilter", opts.Quiet)

	enc, _ := cli.ResolveEncoding(opts.Encoding)
	stream, err := fasta.NewStreamEncoding(opts.Path, enc)
	if err != nil {
		lg.Error(describe(err), "path", opts.Path, "err", err)
		return exitFailure
	}

	alpha, _ := opts.Alphabet()
	fopts := fasta.FilterOptions{MinLength: opts.MinLength, Alphabet: alpha}
	keep := fasta.MinLengthFilter
	if opts.ID != "" {
		keep = func(r *seq.Record, o fasta.FilterOptions) bool {
			return r.ID() == opts.ID && fasta.MinLengthFilter(r, o)
		}
	}

	dst, closeDst, err := openDest(opts.Out, stdout)
	if err != nil {
		lg.Error("cannot create output", "path", opts.Out, "err", err)
		return exitFailure
	}
	outw := bufio.NewWriter(dst)

	write := stream.WriteFiltered
	if opts.NoValidate {
		write = stream.WriteFilteredLax
	}
	n, err := write(ctx, outw, keep, fopts)
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
	lg.Info("records written", "count", n)
	return exitOK
}
