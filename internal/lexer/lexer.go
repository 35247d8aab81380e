package lexer

import (
	"fmt"

	"choir/internal/source"
	"choir/internal/token"

	"fortio.org/safecast"
)

// Lexer converts a single file's bytes into a stream of tokens.
type Lexer struct {
	file   *source.File
	cursor Cursor
	opts   Options
	look   *token.Token // one-token pushback/lookahead buffer
}

// New creates a Lexer over file's full content.
func New(file *source.File, opts Options) *Lexer {
	return &Lexer{
		file:   file,
		cursor: NewCursor(file),
		opts:   opts,
	}
}

// Next returns the next significant token, with its leading and trailing
// trivia attached. After EOF, Next always returns EOF again.
func (lx *Lexer) Next() token.Token {
	if lx.look != nil {
		tok := *lx.look
		lx.look = nil
		return tok
	}

	leading := lx.collectTrivia(false)

	if lx.cursor.EOF() {
		return token.Token{Kind: token.EOF, Location: lx.emptyLocation(), Leading: leading}
	}

	start := lx.cursor.Mark()
	ch := lx.cursor.Peek()

	var tok token.Token
	switch {
	case ch == '@':
		tok = lx.scanIdentOrKeyword()
	case isDecDigit(ch):
		tok = lx.scanNumber()
	case isIdentStartByte(ch):
		tok = lx.scanIdentOrKeyword()
	case ch >= utf8RuneSelf:
		tok = lx.scanIdentOrKeyword()
	case ch == '"':
		tok = lx.scanString()
	case ch == '\'':
		tok = lx.scanRune()
	default:
		tok = lx.scanOperatorOrPunct()
	}
	tok.Leading = leading
	lx.enforceTokenLength(&tok, start)
	tok.Trailing = lx.collectTrivia(true)
	return tok
}

// Peek returns the next token without consuming it.
func (lx *Lexer) Peek() token.Token {
	t := lx.Next()
	lx.look = &t
	return t
}

// Push injects a token back into the one-token lookahead buffer.
func (lx *Lexer) Push(tok token.Token) {
	lx.look = &tok
}

// emptyLocation returns a zero-length location at the current offset, used
// for EOF (zero length means Location.Valid() is false, matching the
// diagnostics engine's "no position" convention).
func (lx *Lexer) emptyLocation() source.Location {
	return source.NewLocation(lx.file.ID, lx.cursor.Off, 0)
}

// reportf reports an Error diagnostic at loc, formatted like fmt.Sprintf.
// A nil Engine silently drops the diagnostic.
func (lx *Lexer) reportf(loc source.Location, format string, args ...any) {
	if lx.opts.Engine == nil {
		return
	}
	lx.opts.Engine.Report(source.LevelError, loc, fmt.Sprintf(format, args...))
}

// enforceTokenLength guards against a pathological token (e.g. an
// identifier or string literal running for megabytes) consuming unbounded memory
// downstream; it reports, truncates the kind to Invalid, and fast-forwards
// the cursor to EOF so scanning terminates promptly. It measures the raw
// (unclamped) byte span, since Location.Len already saturates at 65535.
func (lx *Lexer) enforceTokenLength(tok *token.Token, start Mark) {
	length := lx.cursor.Off - uint32(start)
	if length <= maxTokenLength {
		return
	}
	lx.reportf(tok.Location, "token length %d exceeds limit %d", length, maxTokenLength)
	tok.Kind = token.Invalid
	if end, err := safecast.Conv[uint32](len(lx.file.Content)); err == nil {
		lx.cursor.Off = end
	}
}
