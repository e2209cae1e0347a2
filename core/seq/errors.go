// core/seq/errors.go
package seq

// Error reports an invalid sequence or an unsupported operation on one.
// Callers distinguish sequence failures from stream-level failures with
// errors.As.
type Error struct {
	Op  string // "new", "gc", "revcomp", "translate"
	Msg string
}

func (e *Error) Error() string { return "seq: " + e.Op + ": " + e.Msg }
