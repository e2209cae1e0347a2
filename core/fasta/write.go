// core/fasta/write.go
package fasta

import (
	"context"
	"io"
	"os"

	"fastakit-core/seq"
)

// FilterOptions carries the recognized tuning knobs for filter predicates.
// Zero values mean "no constraint".
type FilterOptions struct {
	MinLength int
	Alphabet  seq.Alphabet
}

// FilterFunc decides whether a record is written by WriteFiltered.
type FilterFunc func(*seq.Record, FilterOptions) bool

// MinLengthFilter keeps records at least opts.MinLength long and, when
// opts.Alphabet is set, of that alphabet. The stock predicate for
// WriteFiltered.
func MinLengthFilter(r *seq.Record, opts FilterOptions) bool {
	if r.Len() < opts.MinLength {
		return false
	}
	if opts.Alphabet != seq.Unknown && r.Alphabet() != opts.Alphabet {
		return false
	}
	return true
}

// WriteFiltered scans the source and writes every record keep accepts to w
// in FASTA layout (60-column wrapped, as Record.String renders). It
// returns the number of records written. A nil keep writes everything.
func (s *Stream) WriteFiltered(ctx context.Context, w io.Writer, keep FilterFunc, opts FilterOptions) (int, error) {
	return s.writeFiltered(ctx, true, w, keep, opts)
}

// WriteFilteredLax is WriteFiltered with record validation disabled, so
// bodiless records can be copied through.
func (s *Stream) WriteFilteredLax(ctx context.Context, w io.Writer, keep FilterFunc, opts FilterOptions) (int, error) {
	return s.writeFiltered(ctx, false, w, keep, opts)
}

func (s *Stream) writeFiltered(ctx context.Context, validate bool, w io.Writer, keep FilterFunc, opts FilterOptions) (int, error) {
	written := 0
	err := s.each(ctx, validate, func(r *seq.Record) error {
		if keep != nil && !keep(r, opts) {
			return nil
		}
		if _, err := io.WriteString(w, r.String()); err != nil {
			return err
		}
		written++
		return nil
	})
	if err != nil {
		return written, err
	}
	return written, nil
}

// WriteFilteredFile is WriteFiltered onto a freshly created (or truncated)
// file at path.
func (s *Stream) WriteFilteredFile(ctx context.Context, path string, keep FilterFunc, opts FilterOptions) (int, error) {
	fh, err := os.Create(path)
	if err != nil {
		return 0, err
	}
	n, werr := s.WriteFiltered(ctx, fh, keep, opts)
	if cerr := fh.Close(); werr == nil {
		werr = cerr
	}
	return n, werr
}
