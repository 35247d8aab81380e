package syntax

// Kind tags a Node's syntactic form. Only the import declaration family is
// concretely specified (spec §4.4); Unknown is this module's top-level
// recovery shape for input that isn't even the start of a known
// declaration (no grammar production in spec.md names it, but the parser
// needs somewhere to put the skipped tokens).
type Kind uint8

const (
	// Invalid is the zero Kind; no real node carries it.
	Invalid Kind = iota

	// Unknown wraps a run of top-level tokens the parser could not start a
	// declaration from. Only Consumed is populated.
	Unknown

	// ImportInvalidWithTokens is the recovery node for a malformed import
	// declaration: it captures the 'import' token, whatever was skipped
	// before the next boundary, and the terminating ';' (real or sentinel).
	ImportInvalidWithTokens

	// ImportPathSimple is `import STRING ;`.
	ImportPathSimple
	// ImportPathSimpleAliased is `import STRING 'as' IDENT ;`.
	ImportPathSimpleAliased
	// ImportNamedSimple is `import IDENT ;`.
	ImportNamedSimple
	// ImportNamedSimpleAliased is `import IDENT 'as' IDENT ;`.
	ImportNamedSimpleAliased
)

// kindNames gives each Kind the spelling the tree printer uses, matching
// the original implementation's SyntaxNode::KindToString.
var kindNames = map[Kind]string{
	Invalid:                  "Invalid",
	Unknown:                  "Unknown",
	ImportInvalidWithTokens:  "ImportInvalidWithTokens",
	ImportPathSimple:         "ImportPathSimple",
	ImportPathSimpleAliased:  "ImportPathSimpleAliased",
	ImportNamedSimple:        "ImportNamedSimple",
	ImportNamedSimpleAliased: "ImportNamedSimpleAliased",
}

// String returns the printer-facing spelling of k.
func (k Kind) String() string {
	if s, ok := kindNames[k]; ok {
		return s
	}
	return "Unknown"
}
