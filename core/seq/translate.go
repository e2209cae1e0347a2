// core/seq/translate.go
package seq

import "strings"

// UnknownAminoAcid is emitted for codons that cannot be resolved to a
// single amino acid (ambiguity codes).
const UnknownAminoAcid = 'X'

// Standard genetic code (NCBI translation table 1), DNA codons.
var codonTable = map[string]byte{
	"TTT": 'F', "TTC": 'F', "TTA": 'L', "TTG": 'L',
	"TCT": 'S', "TCC": 'S', "TCA": 'S', "TCG": 'S',
	"TAT": 'Y', "TAC": 'Y', "TAA": '*', "TAG": '*',
	"TGT": 'C', "TGC": 'C', "TGA": '*', "TGG": 'W',
	"CTT": 'L', "CTC": 'L', "CTA": 'L', "CTG": 'L',
	"CCT": 'P', "CCC": 'P', "CCA": 'P', "CCG": 'P',
	"CAT": 'H', "CAC": 'H', "CAA": 'Q', "CAG": 'Q',
	"CGT": 'R', "CGC": 'R', "CGA": 'R', "CGG": 'R',
	"ATT": 'I', "ATC": 'I', "ATA": 'I', "ATG": 'M',
	"ACT": 'T', "ACC": 'T', "ACA": 'T', "ACG": 'T',
	"AAT": 'N', "AAC": 'N', "AAA": 'K', "AAG": 'K',
	"AGT": 'S', "AGC": 'S', "AGA": 'R', "AGG": 'R',
	"GTT": 'V', "GTC": 'V', "GTA": 'V', "GTG": 'V',
	"GCT": 'A', "GCC": 'A', "GCA": 'A', "GCG": 'A',
	"GAT": 'D', "GAC": 'D', "GAA": 'E', "GAG": 'E',
	"GGT": 'G', "GGC": 'G', "GGA": 'G', "GGG": 'G',
}

// Translate maps consecutive non-overlapping codons through the standard
// genetic code and returns the protein as a new Record with the same
// header. RNA is accepted (U read as T). Trailing residues short of a full
// codon are dropped; codons containing ambiguity codes become
// UnknownAminoAcid rather than failing.
func (r *Record) Translate() (*Record, error) {
	a := r.Alphabet()
	if a != DNA && a != RNA {
		return nil, &Error{Op: "translate", Msg: "translation requires a DNA or RNA sequence, have " + a.String()}
	}
	var b strings.Builder
	b.Grow(len(r.residues) / 3)
	var codon [3]byte
	for i := 0; i+2 < len(r.residues); i += 3 {
		for j := 0; j < 3; j++ {
			c := r.residues[i+j]
			if c == 'U' {
				c = 'T'
			}
			codon[j] = c
		}
		aa, ok := codonTable[string(codon[:])]
		if !ok {
			aa = UnknownAminoAcid
		}
		b.WriteByte(aa)
	}
	return derive(r.header, b.String()), nil
}
