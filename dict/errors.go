package dict

import "fmt"

// Error reports a DICT-chunk codec failure: a malformed payload, an
// external registry file that could not be resolved, or a
// registry-kind mismatch between the DICT chunk and the file it
// references. The decoder never silently drops an unresolved
// external reference; it always surfaces one of these.
type Error struct {
	Filename string
	Msg      string
}

func (e *Error) Error() string {
	if e.Filename != "" {
		return fmt.Sprintf("dict error (%s): %s", e.Filename, e.Msg)
	}
	return fmt.Sprintf("dict error: %s", e.Msg)
}
