// core/fasta/stats.go
package fasta

import (
	"bufio"
	"bytes"
	"context"

	"fastakit-core/seq"
)

// FileStats aggregates one full pass over a FASTA source.
type FileStats struct {
	Sequences   int
	TotalLength int
	TypeCounts  map[seq.Alphabet]int
	MinLength   int
	MaxLength   int
	AvgLength   float64
}

// Count returns the number of records in the source. It runs a dedicated
// header-counting pass that never assembles residue bodies, and caches the
// result for the life of the Stream. The leading-'>' framing check still
// applies.
func (s *Stream) Count(ctx context.Context) (int, error) {
	if s.hasCount {
		return s.count, nil
	}
	rc, err := openReader(s.path, s.enc)
	if err != nil {
		return 0, err
	}
	defer rc.Close()

	sc := bufio.NewScanner(rc)
	sc.Buffer(make([]byte, 64*1024), 64*1024*1024)
	n, lineNo := 0, 0
	for sc.Scan() {
		select {
		case <-ctx.Done():
			return 0, ctx.Err()
		default:
		}
		lineNo++
		line := bytes.TrimSpace(sc.Bytes())
		if len(line) == 0 {
			continue
		}
		if line[0] == '>' {
			n++
		} else if n == 0 {
			return 0, &FormatError{Line: lineNo, Msg: "first non-blank line does not start with '>'"}
		}
	}
	if err := sc.Err(); err != nil {
		return 0, err
	}
	s.count, s.hasCount = n, true
	return n, nil
}

// GetByID returns the first record whose header's first whitespace-
// delimited token equals id exactly. Absence is not an error: the second
// return is false and the record nil.
func (s *Stream) GetByID(ctx context.Context, id string) (*seq.Record, bool, error) {
	var found *seq.Record
	err := s.Each(ctx, func(r *seq.Record) error {
		if r.ID() == id {
			found = r
			return Stop
		}
		return nil
	})
	if err != nil {
		return nil, false, err
	}
	return found, found != nil, nil
}

// EachType emits only the records whose alphabet equals a, preserving
// source order.
func (s *Stream) EachType(ctx context.Context, a seq.Alphabet, emit EmitFunc) error {
	return s.Each(ctx, func(r *seq.Record) error {
		if r.Alphabet() != a {
			return nil
		}
		return emit(r)
	})
}

// Stats computes aggregate statistics in a single validated pass and
// caches the record count as a side effect. An empty source yields the
// zero-valued stats rather than NaN averages.
func (s *Stream) Stats(ctx context.Context) (*FileStats, error) {
	st := &FileStats{TypeCounts: make(map[seq.Alphabet]int)}
	err := s.Each(ctx, func(r *seq.Record) error {
		n := r.Len()
		st.Sequences++
		st.TotalLength += n
		st.TypeCounts[r.Alphabet()]++
		if st.Sequences == 1 || n < st.MinLength {
			st.MinLength = n
		}
		if n > st.MaxLength {
			st.MaxLength = n
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	if st.Sequences > 0 {
		st.AvgLength = float64(st.TotalLength) / float64(st.Sequences)
	}
	s.count, s.hasCount = st.Sequences, true
	return st, nil
}
