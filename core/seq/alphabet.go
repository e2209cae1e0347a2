// core/seq/alphabet.go
package seq

import "fmt"

// Alphabet classifies a sequence by its residue character set.
type Alphabet int

const (
	Unknown Alphabet = iota
	DNA
	RNA
	Protein
)

func (a Alphabet) String() string {
	switch a {
	case DNA:
		return "DNA"
	case RNA:
		return "RNA"
	case Protein:
		return "PROTEIN"
	default:
		return "UNKNOWN"
	}
}

// ParseAlphabet converts a name as printed by Alphabet.String back into an
// Alphabet. Matching is exact (upper-case).
func ParseAlphabet(s string) (Alphabet, error) {
	switch s {
	case "DNA":
		return DNA, nil
	case "RNA":
		return RNA, nil
	case "PROTEIN":
		return Protein, nil
	case "UNKNOWN":
		return Unknown, nil
	}
	return Unknown, fmt.Errorf("unknown alphabet %q (expected DNA, RNA, PROTEIN or UNKNOWN)", s)
}

/* ------------------------- residue set membership ------------------------ */

// Bitmask per ASCII byte: which alphabets accept the residue.
const (
	inDNA = 1 << iota
	inRNA
	inProtein
)

var residueClass [256]byte

func init() {
	// Nucleotide codes incl. IUPAC ambiguity; DNA uses T, RNA uses U.
	for _, c := range []byte("ACGNRYSWKMBDHV") {
		residueClass[c] |= inDNA | inRNA
	}
	residueClass['T'] |= inDNA
	residueClass['U'] |= inRNA
	// The 20 standard amino acids plus the stop symbol.
	for _, c := range []byte("ACDEFGHIKLMNPQRSTVWY*") {
		residueClass[c] |= inProtein
	}
}

// classify returns the alphabet of residues, assuming the string already
// passed construction-time symbol validation. Empty input is Unknown.
func classify(residues string) Alphabet {
	if residues == "" {
		return Unknown
	}
	mask := byte(inDNA | inRNA | inProtein)
	for i := 0; i < len(residues); i++ {
		mask &= residueClass[residues[i]]
		if mask == 0 {
			return Unknown
		}
	}
	switch {
	case mask&inDNA != 0:
		return DNA
	case mask&inRNA != 0:
		return RNA
	default:
		return Protein
	}
}
