// core/fasta/errors.go
package fasta

import (
	"errors"
	"fmt"
)

// FormatError reports content that does not conform to FASTA framing.
// Resource-not-found is not wrapped here: NewStream returns the os.Open
// error unchanged, so callers test errors.Is(err, fs.ErrNotExist).
type FormatError struct {
	Line int // 1-based line of the offending content
	Msg  string
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("fasta: line %d: %s", e.Line, e.Msg)
}

// Stop is returned by an emit callback to end iteration early without
// reporting an error; Each and friends translate it to a nil return.
var Stop = errors.New("fasta: stop iteration")
