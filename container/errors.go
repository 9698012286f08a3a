package container

import "fmt"

// Error reports a container-format violation: bad magic, truncated
// header/chunk, malformed ULEB128, missing EOF chunk, or a non-zero
// reserved flag bit. Offset is the byte position in the file where the
// problem was detected.
type Error struct {
	Offset int
	Msg    string
}

func (e *Error) Error() string {
	return fmt.Sprintf("container error at offset %d: %s", e.Offset, e.Msg)
}
