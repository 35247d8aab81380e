package token

import "choir/internal/source"

// TriviaKind classifies a run of non-significant source text.
type TriviaKind uint8

const (
	WhiteSpace TriviaKind = iota
	LineComment
	BlockComment
	DocComment
)

// TriviaMode controls which trivia the lexer retains on produced tokens.
type TriviaMode uint8

const (
	// TriviaNone discards all trivia (it is still scanned, just not kept).
	TriviaNone TriviaMode = iota
	// TriviaDocumentationOnly keeps only DocComment trivia.
	TriviaDocumentationOnly
	// TriviaCommentsOnly keeps LineComment and BlockComment trivia.
	TriviaCommentsOnly
	// TriviaAll keeps every trivia kind.
	TriviaAll
)

// Trivia is a single run of whitespace or comment text attached to a token.
type Trivia struct {
	Kind     TriviaKind
	Location source.Location
}

// Keep reports whether a trivia of kind k should be retained under mode m.
func (m TriviaMode) Keep(k TriviaKind) bool {
	switch m {
	case TriviaNone:
		return false
	case TriviaDocumentationOnly:
		return k == DocComment
	case TriviaCommentsOnly:
		return k == LineComment || k == BlockComment
	case TriviaAll:
		return true
	default:
		return false
	}
}
