package syntax

// NodeRef identifies a node in a Module's arena. The zero value, NoNodeRef,
// denotes "no node".
type NodeRef uint32

// NoNodeRef indicates no node.
const NoNodeRef NodeRef = 0

// IsValid reports whether ref names a real node.
func (ref NodeRef) IsValid() bool { return ref != NoNodeRef }

// TokenRef identifies a token in a Module's dense token vector by index.
// InvalidTokenRef is the module's single "expected but missing" sentinel
// (spec §9): rather than comparing pointer identity, which Go slices don't
// guarantee stays stable, code tests IsInvalid and Module.Token resolves it
// to the module's one sentinel instance.
type TokenRef uint32

// InvalidTokenRef is the per-module invalid-token sentinel.
const InvalidTokenRef TokenRef = ^TokenRef(0)

// IsInvalid reports whether ref is the sentinel.
func (ref TokenRef) IsInvalid() bool { return ref == InvalidTokenRef }
