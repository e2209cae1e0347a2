// core/fasta/reader_test.go
package fasta

import (
	"compress/gzip"
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"golang.org/x/text/encoding/charmap"

	"fastakit-core/seq"
)

const sample = `>seq1 description
ATGCGATCGA
TTAACCGG
>seq2 rna copy
AUGCGAUCGA
>seq3 peptide
MKAILVVLLYTRI
`

func writeFile(t *testing.T, name, data string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}

func newStream(t *testing.T, data string) *Stream {
	t.Helper()
	s, err := NewStream(writeFile(t, "in.fasta", data))
	if err != nil {
		t.Fatalf("NewStream: %v", err)
	}
	return s
}

func TestNewStreamMissingFile(t *testing.T) {
	_, err := NewStream(filepath.Join(t.TempDir(), "nope.fasta"))
	if !errors.Is(err, fs.ErrNotExist) {
		t.Fatalf("err = %v, want fs.ErrNotExist", err)
	}
}

func TestEachRestartable(t *testing.T) {
	s := newStream(t, sample)
	for pass := 0; pass < 2; pass++ {
		recs, err := s.Collect(context.Background())
		if err != nil {
			t.Fatalf("pass %d: %v", pass, err)
		}
		if len(recs) != 3 {
			t.Fatalf("pass %d: got %d records, want 3", pass, len(recs))
		}
		if recs[0].Residues() != "ATGCGATCGATTAACCGG" {
			t.Errorf("pass %d: record 0 residues = %q", pass, recs[0].Residues())
		}
	}
}

func TestIsFastaFormat(t *testing.T) {
	if !newStream(t, sample).IsFastaFormat() {
		t.Error("sample should be recognized as FASTA")
	}
	if !newStream(t, "\n\n>after blanks\nACGT\n").IsFastaFormat() {
		t.Error("leading blank lines should be skipped")
	}

	plain := newStream(t, "just some text\n")
	if plain.IsFastaFormat() {
		t.Error("plain text reported as FASTA")
	}
	// ...and the read operation reports the framing failure.
	err := plain.Each(context.Background(), func(*seq.Record) error { return nil })
	var ferr *FormatError
	if !errors.As(err, &ferr) {
		t.Fatalf("Each err = %v, want *FormatError", err)
	}

	if newStream(t, "").IsFastaFormat() {
		t.Error("empty file reported as FASTA")
	}
}

func TestStreamGzip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "in.fasta.gz")
	fh, err := os.Create(path)
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	gw := gzip.NewWriter(fh)
	if _, err := gw.Write([]byte(sample)); err != nil {
		t.Fatalf("write gz: %v", err)
	}
	if err := gw.Close(); err != nil {
		t.Fatalf("close gzip: %v", err)
	}
	if err := fh.Close(); err != nil {
		t.Fatalf("close file: %v", err)
	}

	s, err := NewStream(path)
	if err != nil {
		t.Fatalf("NewStream gz: %v", err)
	}
	recs, err := s.Collect(context.Background())
	if err != nil {
		t.Fatalf("collect gz: %v", err)
	}
	if len(recs) != 3 || recs[0].ID() != "seq1" {
		t.Fatalf("gzip parse failed, recs=%d", len(recs))
	}
}

func TestStreamEncoding(t *testing.T) {
	// Latin-1 bytes decode to the same ASCII content here; the point is
	// that the decoder is actually in the read path and harmless.
	path := writeFile(t, "latin1.fasta", sample)
	s, err := NewStreamEncoding(path, charmap.ISO8859_1)
	if err != nil {
		t.Fatalf("NewStreamEncoding: %v", err)
	}
	n, err := s.Count(context.Background())
	if err != nil || n != 3 {
		t.Fatalf("count = %d, %v; want 3", n, err)
	}
}

func TestEachLaxEndToEnd(t *testing.T) {
	s := newStream(t, ">empty_seq1\n\n>empty_seq2\n\n>normal_seq\nATGC\n")
	var recs []*seq.Record
	if err := s.EachLax(context.Background(), func(r *seq.Record) error {
		recs = append(recs, r)
		return nil
	}); err != nil {
		t.Fatalf("EachLax: %v", err)
	}
	if len(recs) != 3 {
		t.Fatalf("got %d records, want 3", len(recs))
	}
	if recs[0].Len() != 0 || recs[1].Len() != 0 || recs[2].Residues() != "ATGC" {
		t.Fatalf("unexpected records: %d, %d, %q", recs[0].Len(), recs[1].Len(), recs[2].Residues())
	}
}
