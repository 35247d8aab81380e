package token

import (
	"math/big"

	"choir/internal/source"
)

// Token is the lexer's unit of output: a kind, a packed source location, the
// interned lexeme, decoded literal values where applicable, and the trivia
// consumed immediately before and after it.
type Token struct {
	Kind     Kind
	Location source.Location
	Text     source.StringID

	// IntValue and FloatValue hold the arbitrary-precision decoded value of
	// IntLit/FloatLit tokens; nil otherwise.
	IntValue   *big.Int
	FloatValue *big.Float

	// Artificial marks a token synthesized by the lexer or parser rather
	// than scanned from source (e.g. the inserted "p0" exponent, or the
	// parser's single invalid-token sentinel).
	Artificial bool

	Leading  []Trivia
	Trailing []Trivia
}

// IsLiteral reports whether the token is a literal.
func (t Token) IsLiteral() bool { return t.Kind.IsLiteral() }

// IsKeyword reports whether the token is a keyword (including a
// contextually rewritten KwAs/KwFrom).
func (t Token) IsKeyword() bool { return t.Kind.IsKeyword() }

// IsIdent reports whether the token is a plain identifier.
func (t Token) IsIdent() bool { return t.Kind.IsIdent() }

// IsPunctOrOp reports whether the token is punctuation or an operator.
func (t Token) IsPunctOrOp() bool { return t.Kind.IsPunctOrOp() }
