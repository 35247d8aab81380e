package parser

import "choir/internal/token"

// Class is a bitmask of the seven recovery classes spec §4.4 names; a token
// may belong to zero or more at once.
type Class uint8

const (
	StmtDelimiter Class = 1 << iota
	DeclStart
	DeclEnd
	StmtStart
	StmtEnd
	ExprStart
	ExprEnd
)

// Has reports whether c includes flag.
func (c Class) Has(flag Class) bool { return c&flag != 0 }

// Classify returns the recovery classes k belongs to. Only the import
// declaration family is implemented by this parser, but classification
// covers the full keyword/punctuation set from spec §4.3 so recovery
// boundaries are meaningful even where k starts a production this parser
// doesn't build yet (spec §4.4: "other productions follow the same shape").
func Classify(k token.Kind) Class {
	var c Class

	switch k {
	case token.Semicolon:
		c |= StmtDelimiter | DeclEnd | StmtEnd
	case token.RBrace:
		c |= DeclEnd | StmtEnd | ExprEnd
	case token.RParen, token.RBracket:
		c |= ExprEnd
	case token.EOF:
		c |= DeclEnd | StmtEnd
	}

	switch k {
	case token.KwImport, token.KwExport, token.KwStruct, token.KwVariant,
		token.KwEnum, token.KwTemplate, token.KwAlias, token.KwTest,
		token.KwOperator, token.KwForeign:
		c |= DeclStart
	}

	switch k {
	case token.KwIf, token.KwFor, token.KwWhile, token.KwDo, token.KwSwitch,
		token.KwReturn, token.KwBreak, token.KwContinue, token.KwFallthrough,
		token.KwYield, token.KwUnreachable, token.KwDefer, token.KwDiscard,
		token.KwGoto, token.KwAssert, token.KwTry, token.KwVar, token.LBrace:
		c |= StmtStart
	}

	switch k {
	case token.Ident, token.IntLit, token.FloatLit, token.StringLit, token.RuneLit,
		token.KwTrue, token.KwFalse, token.KwNil, token.LParen, token.LBracket,
		token.Minus, token.Bang, token.Tilde, token.Amp, token.Star,
		token.KwNew, token.KwCast, token.KwNot:
		c |= ExprStart
	}

	return c
}
