// core/fasta/stream.go
package fasta

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"

	"fastakit-core/seq"
)

// EmitFunc receives each parsed record. Returning Stop ends the scan
// cleanly; any other non-nil error aborts it and propagates.
type EmitFunc func(*seq.Record) error

// ScanRecords parses FASTA from r line by line and emits one Record per
// entry, in source order. A line beginning with '>' starts a record and
// flushes the previous one; other lines accumulate, whitespace stripped;
// blank lines contribute nothing but do not terminate a record. The final
// pending record flushes at EOF.
//
// The first non-blank line must begin with '>' or a *FormatError is
// returned. With validate true, records go through full construction
// validation (empty sequences rejected); with validate false, bodiless
// headers flow through as length-0 records.
//
// Memory stays bounded by one record regardless of input size, and ctx is
// checked between lines so callers can cancel mid-file.
func ScanRecords(ctx context.Context, r io.Reader, validate bool, emit EmitFunc) error {
	err := scanRecords(ctx, r, validate, emit)
	if errors.Is(err, Stop) {
		return nil
	}
	return err
}

func scanRecords(ctx context.Context, r io.Reader, validate bool, emit EmitFunc) error {
	sc := bufio.NewScanner(r)
	const maxLine = 64 * 1024 * 1024 // allow very long single-line sequences (64 MiB)
	sc.Buffer(make([]byte, 64*1024), maxLine)

	var (
		header  string
		started bool
		body    = make([]byte, 0, 1<<16)
		lineNo  int
	)

	flush := func() error {
		var (
			rec *seq.Record
			err error
		)
		if validate {
			rec, err = seq.New(header, string(body))
		} else {
			rec, err = seq.NewAllowEmpty(header, string(body))
		}
		if err != nil {
			return fmt.Errorf("record %q: %w", header, err)
		}
		return emit(rec)
	}

	for sc.Scan() {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}
		lineNo++
		line := bytes.TrimSpace(sc.Bytes())
		if len(line) == 0 {
			continue
		}
		if line[0] == '>' {
			if started {
				if err := flush(); err != nil {
					return err
				}
				body = body[:0]
			}
			header = string(bytes.TrimSpace(line[1:]))
			started = true
			continue
		}
		if !started {
			return &FormatError{Line: lineNo, Msg: "first non-blank line does not start with '>'"}
		}
		for _, f := range bytes.Fields(line) {
			body = append(body, f...)
		}
	}
	if err := sc.Err(); err != nil {
		return fmt.Errorf("fasta scan: %w", err)
	}
	if started {
		return flush()
	}
	return nil
}
