package registry

import (
	"fmt"
	"sync"

	"github.com/abhyagra/slbc/slbc"
)

// Table is an immutable-after-build, append-only merged registry for
// one Kind, keyed by entry ID. The shape mirrors the teacher's
// PoolRegistry (glyph/pool.go): a map-backed lookup behind an
// RWMutex, built up by successive Define-like calls before any
// concurrent readers attach. Extension-merge with an ID already
// present is a fatal error (never resolved by precedence) — an
// authoring error must be caught, not silently shadowed.
type Table struct {
	kind Kind

	mu      sync.RWMutex
	byID    map[uint64]Entry
	ordered []Entry
}

// NewTable creates an empty merged table for kind k.
func NewTable(k Kind) *Table {
	return &Table{kind: k, byID: make(map[uint64]Entry)}
}

// Load merges entries into the table. On the first call this
// typically loads the builtin/standard set (IDs up to StandardIDMax);
// subsequent calls load extensions. Any entry whose ID already exists
// in the table is a fatal error, regardless of whether the payload is
// identical — per the append-only-registries design note.
func (t *Table) Load(entries []Entry) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	for _, e := range entries {
		if e.KindOf() != t.kind {
			return &Error{EntityID: int64(e.ID), Msg: fmt.Sprintf("entry kind %s does not match table kind %s", e.KindOf(), t.kind)}
		}
		if _, exists := t.byID[e.ID]; exists {
			return &Error{EntityID: int64(e.ID), Msg: "ID already present in merged table; extension merge refused"}
		}
	}

	for _, e := range entries {
		t.byID[e.ID] = e
		t.ordered = append(t.ordered, e)
		slbc.Logger().Sugar().Debugf("registry: loaded %s entry id=%d iast=%q", t.kind, e.ID, e.IAST)
	}
	return nil
}

// Get resolves an entry by ID. It is the lookup a META tag's
// registry-ID reference goes through.
func (t *Table) Get(id uint64) (Entry, error) {
	t.mu.RLock()
	defer t.mu.RUnlock()

	e, ok := t.byID[id]
	if !ok {
		return Entry{}, &Error{EntityID: int64(id), Msg: "ID not resolvable in merged table"}
	}
	return e, nil
}

// All returns the table's entries in load order (builtin first, then
// extensions in the order they were merged).
func (t *Table) All() []Entry {
	t.mu.RLock()
	defer t.mu.RUnlock()
	out := make([]Entry, len(t.ordered))
	copy(out, t.ordered)
	return out
}

// Len returns the number of entries currently in the table.
func (t *Table) Len() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return len(t.ordered)
}
