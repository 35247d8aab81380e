// Package lexer scans Laye source bytes into a token stream (C6).
//
// A Lexer holds no state beyond one instance's cursor and a one-token
// lookahead buffer; concurrent use of the same instance is not safe, but a
// process may run many lexers in parallel, one per module (spec §5).
//
// Trivia (whitespace and comments) is split around each significant token:
// leading trivia runs up to the token's first byte; trailing trivia runs
// from the token's last byte to the next end-of-line or the start of the
// next token, whichever comes first. TriviaMode controls which kinds are
// retained on the token; trivia outside the kept kinds is still scanned (so
// token locations stay exact) but not recorded.
//
// Only content-bearing tokens (Ident, IntLit, FloatLit, StringLit, RuneLit)
// intern their lexeme into Token.Text; punctuation, operators, and keywords
// leave Text unset, since their spelling is implied entirely by Kind.
//
// The lexer never halts on error: invalid input produces an Error
// diagnostic through the installed source.Engine and a best-effort token
// (occasionally Invalid), and scanning resumes at the next byte.
package lexer

// maxTokenLength bounds a single token's byte length to guard against
// pathological input (e.g. an identifier or string literal running for
// megabytes on one line); exceeding it is reported, the token becomes
// Invalid, and the rest of the file is skipped. Trivia such as comments is
// not counted toward a token's length.
const maxTokenLength = 64 * 1024
