package lexer

import (
	"choir/internal/source"
	"choir/internal/token"
)

// Lex drains a Lexer over file into a dense token vector ending in exactly
// one EndOfFile token (I3). The parser operates over this vector rather
// than a live Lexer stream so it can peek by arbitrary index, not just one
// token ahead (spec §4.4).
func Lex(file *source.File, opts Options) []token.Token {
	lx := New(file, opts)
	var toks []token.Token
	for {
		tok := lx.Next()
		toks = append(toks, tok)
		if tok.Kind == token.EOF {
			return toks
		}
	}
}
