package registry

import "fmt"

// Error reports a registry-format violation: a malformed header or
// entry, an ID collision on extension merge, an unavailable external
// file, or an ID referenced by a META tag that does not resolve.
// EntityID is -1 when the failure predates any entry (header-level).
type Error struct {
	EntityID int64
	Msg      string
}

func (e *Error) Error() string {
	if e.EntityID < 0 {
		return fmt.Sprintf("registry error: %s", e.Msg)
	}
	return fmt.Sprintf("registry error for ID %d: %s", e.EntityID, e.Msg)
}
