// core/fasta/reader.go
package fasta

import (
	"bufio"
	"bytes"
	"context"

	"golang.org/x/text/encoding"

	"fastakit-core/seq"
)

// Stream reads FASTA records from a path-addressed resource. Every read
// operation re-opens the source, so iteration is restartable and each call
// is independent of prior ones. The underlying resource is treated as
// immutable for the Stream's lifetime; the record count is cached after
// the first full pass.
//
// A Stream is not safe for simultaneous use from multiple goroutines; use
// independent Streams over the same path instead.
type Stream struct {
	path string
	enc  encoding.Encoding

	count    int
	hasCount bool
}

// NewStream opens a FASTA source at path ("-" means stdin, and gzip input
// is unwrapped transparently). The resource is probe-opened so a missing
// file fails here, with the os.Open error returned unchanged:
// errors.Is(err, fs.ErrNotExist) identifies it.
func NewStream(path string) (*Stream, error) {
	return NewStreamEncoding(path, nil)
}

// NewStreamEncoding is NewStream with a caller-supplied text encoding for
// the source bytes. A nil encoding means UTF-8 passthrough.
func NewStreamEncoding(path string, enc encoding.Encoding) (*Stream, error) {
	if path != "-" {
		rc, err := openReader(path, enc)
		if err != nil {
			return nil, err
		}
		_ = rc.Close()
	}
	return &Stream{path: path, enc: enc}, nil
}

// Path returns the source path the stream was built over.
func (s *Stream) Path() string { return s.path }

// Each scans the source from the start and emits every record, fully
// validated. The file handle is released on all exit paths, including
// early Stop and errors.
func (s *Stream) Each(ctx context.Context, emit EmitFunc) error {
	return s.each(ctx, true, emit)
}

// EachLax is Each with record validation disabled: headers with no residue
// lines yield length-0 records instead of failing.
func (s *Stream) EachLax(ctx context.Context, emit EmitFunc) error {
	return s.each(ctx, false, emit)
}

func (s *Stream) each(ctx context.Context, validate bool, emit EmitFunc) error {
	rc, err := openReader(s.path, s.enc)
	if err != nil {
		return err
	}
	defer rc.Close()
	return ScanRecords(ctx, rc, validate, emit)
}

// Collect materializes all records into a slice. Intended for small inputs
// and tests; large files should iterate with Each.
func (s *Stream) Collect(ctx context.Context) ([]*seq.Record, error) {
	var recs []*seq.Record
	err := s.Each(ctx, func(r *seq.Record) error {
		recs = append(recs, r)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return recs, nil
}

// IsFastaFormat reports whether the first non-blank line of the source
// begins with '>'. It reads only as far as that line and never returns an
// error: unreadable or empty sources are simply not FASTA.
func (s *Stream) IsFastaFormat() bool {
	rc, err := openReader(s.path, s.enc)
	if err != nil {
		return false
	}
	defer rc.Close()

	sc := bufio.NewScanner(rc)
	sc.Buffer(make([]byte, 64*1024), 64*1024*1024)
	for sc.Scan() {
		line := bytes.TrimSpace(sc.Bytes())
		if len(line) == 0 {
			continue
		}
		return line[0] == '>'
	}
	return false
}
