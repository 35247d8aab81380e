package syntax

import "choir/internal/source"

// Child is one entry in a Node's ordered Children view: either a token or a
// child node, tagged by which field is meaningful.
type Child struct {
	IsToken bool
	Token   TokenRef
	Node    NodeRef
}

func tokenChild(ref TokenRef) Child { return Child{IsToken: true, Token: ref} }

// Node is a tagged variant over Kind. Downcasting is by Kind, not by Go
// type assertion: every syntactic form this parser produces fits in one
// struct shape, so the fields below are simply unused for kinds that don't
// need them. Each kind's Children method lists exactly the tokens/nodes
// that kind stores, in source order.
type Node struct {
	Kind     Kind
	Location source.Location

	// Import* fields. Not every kind uses every field; see Children.
	ImportTok TokenRef
	PathTok   TokenRef // StringLit, for the path forms
	NameTok   TokenRef // Ident, for the named forms
	AsTok     TokenRef // contextual 'as', for the aliased forms
	AliasTok  TokenRef // Ident, for the aliased forms
	SemiTok   TokenRef

	// Consumed holds tokens swallowed by error recovery: skipped tokens for
	// ImportInvalidWithTokens, the entire run for Unknown.
	Consumed []TokenRef
}

// Children returns an ordered view over every token and child node this
// node stores, covering the node's full source span (spec §8 property 8).
func (n *Node) Children() []Child {
	switch n.Kind {
	case Unknown:
		children := make([]Child, len(n.Consumed))
		for i, ref := range n.Consumed {
			children[i] = tokenChild(ref)
		}
		return children

	case ImportInvalidWithTokens:
		children := make([]Child, 0, len(n.Consumed)+2)
		children = append(children, tokenChild(n.ImportTok))
		for _, ref := range n.Consumed {
			children = append(children, tokenChild(ref))
		}
		children = append(children, tokenChild(n.SemiTok))
		return children

	case ImportPathSimple:
		return []Child{tokenChild(n.ImportTok), tokenChild(n.PathTok), tokenChild(n.SemiTok)}

	case ImportPathSimpleAliased:
		return []Child{
			tokenChild(n.ImportTok), tokenChild(n.PathTok),
			tokenChild(n.AsTok), tokenChild(n.AliasTok), tokenChild(n.SemiTok),
		}

	case ImportNamedSimple:
		return []Child{tokenChild(n.ImportTok), tokenChild(n.NameTok), tokenChild(n.SemiTok)}

	case ImportNamedSimpleAliased:
		return []Child{
			tokenChild(n.ImportTok), tokenChild(n.NameTok),
			tokenChild(n.AsTok), tokenChild(n.AliasTok), tokenChild(n.SemiTok),
		}

	default:
		return nil
	}
}
