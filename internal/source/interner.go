package source

import (
	"slices"
	"sync"
)

// StringID is a handle into an Interner. NoStringID never denotes a real
// interned string.
type StringID uint32

const NoStringID StringID = 0

// Interner is arena-backed unique string storage: each distinct string is
// stored once and handed out as a small comparable StringID. Safe for
// concurrent use; a module owns exactly one.
type Interner struct {
	mu    sync.RWMutex
	byID  []string // index -> string; byID[0] == "" for NoStringID
	index map[string]StringID
}

// NewInterner returns an empty interner with NoStringID pre-bound to "".
func NewInterner() *Interner {
	return &Interner{
		byID:  []string{""},
		index: map[string]StringID{"": NoStringID},
	}
}

// Intern stores s if not already present and returns its StringID.
func (i *Interner) Intern(s string) StringID {
	i.mu.RLock()
	if id, ok := i.index[s]; ok {
		i.mu.RUnlock()
		return id
	}
	i.mu.RUnlock()

	// Copy so the interner never holds onto a slice of a caller's buffer.
	cpy := string([]byte(s))

	i.mu.Lock()
	defer i.mu.Unlock()
	if id, ok := i.index[cpy]; ok {
		return id
	}
	id := StringID(len(i.byID))
	i.byID = append(i.byID, cpy)
	i.index[cpy] = id
	return id
}

// InternBytes is Intern without requiring the caller to allocate a string
// first.
func (i *Interner) InternBytes(b []byte) StringID {
	return i.Intern(string(b))
}

// Lookup returns the string for id, or ("", false) if id is out of range.
func (i *Interner) Lookup(id StringID) (string, bool) {
	i.mu.RLock()
	defer i.mu.RUnlock()
	if int(id) < 0 || int(id) >= len(i.byID) {
		return "", false
	}
	return i.byID[id], true
}

// MustLookup is Lookup but panics on an invalid id; invalid ids never arise
// from well-formed module state, so callers within a module may use this.
func (i *Interner) MustLookup(id StringID) string {
	s, ok := i.Lookup(id)
	if !ok {
		panic("source: invalid string ID")
	}
	return s
}

// Has reports whether id is in range.
func (i *Interner) Has(id StringID) bool {
	i.mu.RLock()
	defer i.mu.RUnlock()
	return int(id) >= 0 && int(id) < len(i.byID)
}

// Len returns the number of interned strings, including NoStringID's "".
func (i *Interner) Len() int {
	i.mu.RLock()
	defer i.mu.RUnlock()
	return len(i.byID)
}

// Snapshot returns a copy of every interned string, indexed by StringID.
func (i *Interner) Snapshot() []string {
	i.mu.RLock()
	defer i.mu.RUnlock()
	return slices.Clone(i.byID)
}
