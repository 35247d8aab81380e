package syntax

import (
	"choir/internal/source"
	"choir/internal/token"
)

// Module is a bump-allocated arena holding one file's token vector, its
// node pool, the top-level declarations parsed from it, and a per-module
// string interner (spec §3 "Module"). Destroying a Module is just dropping
// it: every syntax child is owned transitively by its arena.
type Module struct {
	File     *source.File
	Tokens   []token.Token
	Interner *source.Interner

	nodes    *Arena[Node]
	TopLevel []NodeRef

	sentinel token.Token
}

// NewModule creates a Module over an already-lexed token vector (see
// lexer.Lex). The token vector must end with exactly one EOF token (I3).
func NewModule(file *source.File, tokens []token.Token, interner *source.Interner) *Module {
	return &Module{
		File:     file,
		Tokens:   tokens,
		Interner: interner,
		nodes:    NewArena[Node](8),
		sentinel: token.Token{Kind: token.Invalid, Artificial: true},
	}
}

// Token resolves ref to its token, substituting the module's single
// invalid-token sentinel for InvalidTokenRef (spec §9).
func (m *Module) Token(ref TokenRef) token.Token {
	if ref.IsInvalid() {
		return m.sentinel
	}
	return m.Tokens[ref]
}

// NewNode allocates n into the node arena and returns its NodeRef.
func (m *Module) NewNode(n Node) NodeRef {
	return NodeRef(m.nodes.Allocate(n))
}

// Node returns the node ref points to. NoNodeRef must never be dereferenced.
func (m *Module) Node(ref NodeRef) *Node {
	return m.nodes.Get(uint32(ref))
}

// PushTopLevel records ref as a top-level declaration, in source order.
func (m *Module) PushTopLevel(ref NodeRef) {
	m.TopLevel = append(m.TopLevel, ref)
}

// Text extracts the raw source text a token's location denotes, via the
// file registry. Use token.DecodeString/DecodeRune on top of this for a
// literal's decoded semantic value (e.g. an import path with its quotes
// stripped and escapes resolved).
func (m *Module) Text(ctx *source.Context, ref TokenRef) string {
	return ctx.Text(m.Token(ref).Location)
}
