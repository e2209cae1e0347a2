// core/seq/record.go
package seq

import (
	"fmt"
	"strings"
	"unicode"
)

// LineWidth is the column at which String wraps sequence lines.
const LineWidth = 60

// Record is one FASTA entry: a header and its residue string, whitespace
// stripped and case-normalized at construction. Immutable afterwards.
//
// The cached alphabet is computed lazily on a pointer receiver; a Record is
// not safe for concurrent use while that field is still unset.
type Record struct {
	header   string
	residues string

	alpha    Alphabet
	hasAlpha bool
}

// New builds a validated Record. The raw sequence has all whitespace
// removed (including internal runs, since FASTA bodies may be wrapped) and
// is uppercased. It fails when the header is blank, the sequence is empty,
// or any residue is not an ASCII letter or the stop symbol '*'.
//
// Letters that fit no alphabet (or T/U mixes) are legal here and classify
// as Unknown; digits and punctuation are construction errors.
func New(header, raw string) (*Record, error) {
	r, err := build(header, raw)
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(header) == "" {
		return nil, &Error{Op: "new", Msg: "empty header"}
	}
	if r.residues == "" {
		return nil, &Error{Op: "new", Msg: "empty sequence"}
	}
	return r, nil
}

// NewAllowEmpty builds a Record without the non-empty checks. Residues are
// still restricted to letters and '*'. This is the validate=false path of
// the stream reader: headers with no body flow through as length-0 records.
func NewAllowEmpty(header, raw string) (*Record, error) {
	return build(header, raw)
}

func build(header, raw string) (*Record, error) {
	var b strings.Builder
	b.Grow(len(raw))
	for i := 0; i < len(raw); i++ {
		c := raw[i]
		switch {
		case c == ' ' || c == '\t' || c == '\n' || c == '\r' || c == '\v' || c == '\f':
			continue
		case c >= 'a' && c <= 'z':
			c -= 'a' - 'A'
		case c >= 'A' && c <= 'Z' || c == '*':
			// keep
		default:
			return nil, &Error{Op: "new", Msg: fmt.Sprintf("invalid residue %q at position %d", c, i+1)}
		}
		b.WriteByte(c)
	}
	return &Record{
		header:   strings.TrimSpace(header),
		residues: b.String(),
	}, nil
}

// derive builds a Record from residues this package already produced
// (complement/translation output), bypassing re-validation.
func derive(header, residues string) *Record {
	return &Record{header: header, residues: residues}
}

func (r *Record) Header() string   { return r.header }
func (r *Record) Residues() string { return r.residues }
func (r *Record) Len() int         { return len(r.residues) }

// ID returns the first whitespace-delimited token of the header, the part
// lookup-by-identifier matches against.
func (r *Record) ID() string {
	if i := strings.IndexFunc(r.header, unicode.IsSpace); i >= 0 {
		return r.header[:i]
	}
	return r.header
}

// Equal reports whether both header and residues match. Case and spacing
// were already normalized at construction.
func (r *Record) Equal(other *Record) bool {
	return other != nil && r.header == other.header && r.residues == other.residues
}

// Alphabet classifies the residues, memoizing the result.
func (r *Record) Alphabet() Alphabet {
	if !r.hasAlpha {
		r.alpha = classify(r.residues)
		r.hasAlpha = true
	}
	return r.alpha
}

// GCContent returns 100*(G+C)/len for nucleotide records. An empty record
// yields 0.0 rather than dividing by zero.
func (r *Record) GCContent() (float64, error) {
	if len(r.residues) == 0 {
		return 0, nil
	}
	if a := r.Alphabet(); a != DNA && a != RNA {
		return 0, &Error{Op: "gc", Msg: "GC content requires a DNA or RNA sequence, have " + a.String()}
	}
	gc := 0
	for i := 0; i < len(r.residues); i++ {
		if c := r.residues[i]; c == 'G' || c == 'C' {
			gc++
		}
	}
	return 100 * float64(gc) / float64(len(r.residues)), nil
}

// Composition counts each residue present. Absent residues have no entry.
func (r *Record) Composition() map[byte]int {
	m := make(map[byte]int)
	for i := 0; i < len(r.residues); i++ {
		m[r.residues[i]]++
	}
	return m
}

// String renders the record in FASTA layout: the '>' header line, then the
// residues wrapped at LineWidth columns, each line newline-terminated.
// A record with no residues renders the header line alone.
func (r *Record) String() string {
	var b strings.Builder
	b.Grow(len(r.header) + len(r.residues) + len(r.residues)/LineWidth + 3)
	b.WriteByte('>')
	b.WriteString(r.header)
	b.WriteByte('\n')
	for off := 0; off < len(r.residues); off += LineWidth {
		end := off + LineWidth
		if end > len(r.residues) {
			end = len(r.residues)
		}
		b.WriteString(r.residues[off:end])
		b.WriteByte('\n')
	}
	return b.String()
}
