// internal/app/stats.go
package app

import (
	"bufio"
	"context"
	"fmt"
	"io"

	"fastakit-core/fasta"

	"fastakit/internal/cli"
	"fastakit/internal/pretty"
	"fastakit/internal/version"
	"fastakit/internal/writers"
	"fastakit/pkg/api"
)

// RunStats is the fastastats entry point.
func RunStats(ctx context.Context, argv []string, stdout, stderr io.Writer) int {
	outw := bufio.NewWriter(stdout)
	defer func() { _ = outw.Flush() }()

	fs := cli.NewStatsFlagSet("fastastats")
	fs.SetOutput(io.Discard)
	opts, err := cli.ParseStats(fs, argv)
	if err != nil {
		return usageExit(fs, err, outw, stderr)
	}
	if opts.Version {
		fmt.Fprintf(outw, "fastastats version %s\n", version.Version)
		return exitOK
	}

	lg := newLogger(stderr, "fastastats", opts.Quiet)

	enc, _ := cli.ResolveEncoding(opts.Encoding)
	stream, err := fasta.NewStreamEncoding(opts.Path, enc)
	if err != nil {
		lg.Error(describe(err), "path", opts.Path, "err", err)
		return exitFailure
	}

	st, err := stream.Stats(ctx)
	if err != nil {
		lg.Error(describe(err), "path", opts.Path, "err", err)
		return exitFailure
	}
	lg.Debug("scanned", "path", opts.Path, "sequences", st.Sequences)

	payload := api.StatsFromCore(opts.Path, st)
	if opts.Pretty {
		_, err = io.WriteString(outw, pretty.RenderStats(payload))
	} else {
		err = writers.WriteStats(opts.Output, outw, payload)
	}
	if err == nil {
		err = outw.Flush()
	}
	if writers.IsBrokenPipe(err) {
		return exitOK
	}
	if err != nil {
		lg.Error("write failed", "err", err)
		return exitFailure
	}
	return exitOK
}
