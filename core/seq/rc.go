// core/seq/rc.go
package seq

// Watson-Crick complement table over the IUPAC DNA codes. Palindromic
// classes (S = G/C, W = A/T) complement to themselves; R (A/G) pairs with
// Y (C/T), K (G/T) with M (A/C), B with V and D with H.
var complement [256]byte

func init() {
	complement['A'] = 'T'
	complement['T'] = 'A'
	complement['C'] = 'G'
	complement['G'] = 'C'
	complement['R'] = 'Y'
	complement['Y'] = 'R'
	complement['S'] = 'S'
	complement['W'] = 'W'
	complement['K'] = 'M'
	complement['M'] = 'K'
	complement['B'] = 'V'
	complement['V'] = 'B'
	complement['D'] = 'H'
	complement['H'] = 'D'
	complement['N'] = 'N'
}

// ReverseComplement returns a new Record with the residues reversed and
// complemented, keeping the header. Only DNA supports the operation; RNA
// reverse-complement is deliberately unsupported.
func (r *Record) ReverseComplement() (*Record, error) {
	if a := r.Alphabet(); a != DNA {
		return nil, &Error{Op: "revcomp", Msg: "reverse complement requires a DNA sequence, have " + a.String()}
	}
	n := len(r.residues)
	out := make([]byte, n)
	for i := 0; i < n; i++ {
		out[i] = complement[r.residues[n-1-i]]
	}
	return derive(r.header, string(out)), nil
}
