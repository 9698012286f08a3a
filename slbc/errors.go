package slbc

import "fmt"

// InputEncodingError reports an unrecognized IAST token or illegal
// character encountered by the tokenizer.
type InputEncodingError struct {
	Token string
	Pos   int
	Msg   string
}

func (e *InputEncodingError) Error() string {
	return fmt.Sprintf("input encoding: %s %q at position %d", e.Msg, e.Token, e.Pos)
}

// DomainError reports a violated algebra-kernel precondition: the
// operation was invoked on a byte of the wrong shape. This is always a
// programmer error, distinct from a data-level decode failure.
type DomainError struct {
	Byte      byte
	Operation string
	Msg       string
}

func (e *DomainError) Error() string {
	return fmt.Sprintf("domain error: 0x%02X is not valid for %s: %s", e.Byte, e.Operation, e.Msg)
}

// SpanError reports a malformed SAṄKHYĀ or NUM span.
type SpanError struct {
	Offset int
	Msg    string
}

func (e *SpanError) Error() string {
	return fmt.Sprintf("span error at offset %d: %s", e.Offset, e.Msg)
}

// InvariantError reports that the decoder state machine reached a
// transition it should never reach. Always a bug.
type InvariantError struct {
	State string
	Msg   string
}

func (e *InvariantError) Error() string {
	return fmt.Sprintf("invariant violated in state %s: %s", e.State, e.Msg)
}
