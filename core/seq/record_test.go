// core/seq/record_test.go
package seq

import (
	"errors"
	"strings"
	"testing"
)

func mustNew(t *testing.T, header, raw string) *Record {
	t.Helper()
	r, err := New(header, raw)
	if err != nil {
		t.Fatalf("New(%q, %q): %v", header, raw, err)
	}
	return r
}

func TestNewNormalizes(t *testing.T) {
	r := mustNew(t, "  seq1 description ", "at gc\nATG C\t")
	if r.Header() != "seq1 description" {
		t.Errorf("header = %q", r.Header())
	}
	if r.Residues() != "ATGCATGC" {
		t.Errorf("residues = %q", r.Residues())
	}
	if r.ID() != "seq1" {
		t.Errorf("ID = %q", r.ID())
	}
}

func TestNewRejects(t *testing.T) {
	cases := []struct {
		name, header, raw string
	}{
		{"empty sequence", "h", ""},
		{"whitespace only", "h", " \n\t"},
		{"empty header", "  ", "ATGC"},
		{"digits", "h", "123"},
		{"punctuation", "h", "ATG-C"},
		{"non-ascii", "h", "ATG\xc3\x9c"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, err := New(c.header, c.raw)
			if err == nil {
				t.Fatalf("New(%q, %q) succeeded, want error", c.header, c.raw)
			}
			var serr *Error
			if !errors.As(err, &serr) {
				t.Fatalf("error %v is not a *seq.Error", err)
			}
		})
	}
}

func TestNewAllowEmpty(t *testing.T) {
	r, err := NewAllowEmpty("lonely header", "")
	if err != nil {
		t.Fatalf("NewAllowEmpty: %v", err)
	}
	if r.Len() != 0 {
		t.Fatalf("Len = %d, want 0", r.Len())
	}
	if r.Alphabet() != Unknown {
		t.Fatalf("empty record alphabet = %v, want UNKNOWN", r.Alphabet())
	}
	// Symbol validation still applies.
	if _, err := NewAllowEmpty("h", "A1"); err == nil {
		t.Fatal("NewAllowEmpty accepted a digit")
	}
}

func TestAlphabetClassification(t *testing.T) {
	cases := []struct {
		raw  string
		want Alphabet
	}{
		{"ATGCGATCG", DNA},
		{"ATGCRYSWKMBD", DNA}, // IUPAC ambiguity codes
		{"AUGCGAUCG", RNA},
		{"MKAILVVLLYTRI", Protein},
		{"MKAIL*", Protein},
		{"ATGCGAUCGT", Unknown}, // T and U mixed
		{"ACG", DNA},            // nucleotide wins over amino-acid reading
		{"JJJ", Unknown},
	}
	for _, c := range cases {
		r := mustNew(t, "t", c.raw)
		if got := r.Alphabet(); got != c.want {
			t.Errorf("Alphabet(%q) = %v, want %v", c.raw, got, c.want)
		}
		// Memoized: second call must agree.
		if got := r.Alphabet(); got != c.want {
			t.Errorf("Alphabet(%q) second call = %v, want %v", c.raw, got, c.want)
		}
	}
}

func TestGCContent(t *testing.T) {
	r := mustNew(t, "balanced", "AATTGGCC")
	gc, err := r.GCContent()
	if err != nil {
		t.Fatalf("GCContent: %v", err)
	}
	if gc != 50.0 {
		t.Errorf("GC = %v, want 50.0", gc)
	}

	large := strings.Repeat("A", 1000) + strings.Repeat("T", 1000) +
		strings.Repeat("G", 1000) + strings.Repeat("C", 1000)
	gc, err = mustNew(t, "large", large).GCContent()
	if err != nil || gc != 50.0 {
		t.Errorf("large GC = %v, %v, want 50.0", gc, err)
	}

	if _, err := mustNew(t, "prot", "MKAIL").GCContent(); err == nil {
		t.Error("GCContent on protein should fail")
	}

	empty, _ := NewAllowEmpty("e", "")
	if gc, err := empty.GCContent(); err != nil || gc != 0 {
		t.Errorf("empty GC = %v, %v, want 0.0", gc, err)
	}
}

func TestComposition(t *testing.T) {
	r := mustNew(t, "balanced", "AATTGGCC")
	got := r.Composition()
	want := map[byte]int{'A': 2, 'T': 2, 'G': 2, 'C': 2}
	if len(got) != len(want) {
		t.Fatalf("composition = %v, want %v", got, want)
	}
	for k, v := range want {
		if got[k] != v {
			t.Errorf("composition[%c] = %d, want %d", k, got[k], v)
		}
	}

	// Length always equals the sum of the counts.
	for _, s := range []string{"A", "MKAIL*", "AUGC", "ATGCRYSWKMBD"} {
		r := mustNew(t, "t", s)
		sum := 0
		for _, n := range r.Composition() {
			sum += n
		}
		if sum != r.Len() {
			t.Errorf("composition sum of %q = %d, want %d", s, sum, r.Len())
		}
	}
}

func TestEqual(t *testing.T) {
	a := mustNew(t, "Test1", "ATGC")
	b := mustNew(t, "Test1", "atgc")
	c := mustNew(t, "Test2", "ATGC")
	d := mustNew(t, "Test1", "TTTT")
	if !a.Equal(b) {
		t.Error("records with equal header+residues should be equal")
	}
	if a.Equal(c) || a.Equal(d) || a.Equal(nil) {
		t.Error("records differing in header, residues or nil should not be equal")
	}
}

func TestString(t *testing.T) {
	short := mustNew(t, "Short", "ATGC")
	if got := short.String(); got != ">Short\nATGC\n" {
		t.Errorf("String = %q", got)
	}

	long := mustNew(t, "Long sequence", strings.Repeat("A", 100))
	lines := strings.Split(strings.TrimSuffix(long.String(), "\n"), "\n")
	if len(lines) != 3 {
		t.Fatalf("got %d lines, want 3 (header + 60 + 40)", len(lines))
	}
	if len(lines[1]) != LineWidth || len(lines[2]) != 40 {
		t.Errorf("line lengths = %d, %d; want %d, 40", len(lines[1]), len(lines[2]), LineWidth)
	}
	if strings.HasSuffix(long.String(), "\n\n") {
		t.Error("trailing blank line after final sequence line")
	}

	empty, _ := NewAllowEmpty("bare", "")
	if got := empty.String(); got != ">bare\n" {
		t.Errorf("empty record String = %q", got)
	}
}
