package lexer

import (
	"choir/internal/source"
	"choir/internal/token"
)

// Options configures a Lexer instance.
type Options struct {
	// Interner receives content-bearing lexemes (identifiers, literals).
	Interner *source.Interner
	// Engine receives Error diagnostics for malformed input. May be nil in
	// tests that don't care about diagnostics, in which case errors are
	// silently dropped (the resulting token stream is still well-formed).
	Engine source.Engine
	// Trivia controls which trivia kinds are retained on tokens.
	Trivia token.TriviaMode
}
