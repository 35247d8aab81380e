package lexer

import "choir/internal/token"

// scanString scans a double-quoted string literal with the escape grammar
// from spec §4.3. An unterminated string (EOF or a raw newline before the
// closing quote) is an Error; the token closes at that point.
func (lx *Lexer) scanString() token.Token {
	start := lx.cursor.Mark()
	lx.cursor.Bump() // opening '"'
	for {
		if lx.cursor.EOF() {
			lx.reportf(lx.cursor.LocationFrom(start), "unterminated string literal")
			return lx.emit(token.Invalid, start)
		}
		switch lx.cursor.Peek() {
		case '"':
			lx.cursor.Bump()
			return lx.emitInterned(token.StringLit, start)
		case '\\':
			lx.cursor.Bump()
			lx.scanEscape(start)
		case '\n':
			lx.reportf(lx.cursor.LocationFrom(start), "newline in string literal")
			return lx.emit(token.Invalid, start)
		default:
			lx.cursor.Bump()
		}
	}
}

// scanEscape scans one escape sequence body, having already consumed the
// backslash. Any follower not in the recognized set is an error; the
// literal character is still preserved (the lexer does not stop scanning).
func (lx *Lexer) scanEscape(litStart Mark) {
	if lx.cursor.EOF() {
		lx.reportf(lx.cursor.LocationFrom(litStart), "unterminated escape sequence")
		return
	}
	c := lx.cursor.Bump()
	switch c {
	case 'a', 'b', 'f', 'n', 'r', 't', 'v', '\\', '\'', '"':
	case 'u':
		lx.scanFixedHex(litStart, 4, `\u`)
	case 'U':
		lx.scanFixedHex(litStart, 8, `\U`)
	case 'x':
		lx.scanVariableHex(litStart, 1, 2)
	case '0', '1', '2', '3', '4', '5', '6', '7':
		for n := 1; n < 3 && isOctalByte(lx.cursor.Peek()); n++ {
			lx.cursor.Bump()
		}
	default:
		lx.reportf(lx.cursor.LocationFrom(litStart), "unknown escape sequence '\\%c'", c)
	}
}

func (lx *Lexer) scanFixedHex(litStart Mark, n int, prefix string) {
	for i := 0; i < n; i++ {
		if !isHexByte(lx.cursor.Peek()) {
			lx.reportf(lx.cursor.LocationFrom(litStart), "%s escape requires exactly %d hex digits", prefix, n)
			return
		}
		lx.cursor.Bump()
	}
}

func (lx *Lexer) scanVariableHex(litStart Mark, min, max int) {
	n := 0
	for n < max && isHexByte(lx.cursor.Peek()) {
		lx.cursor.Bump()
		n++
	}
	if n < min {
		lx.reportf(lx.cursor.LocationFrom(litStart), `\x escape requires at least %d hex digit`, min)
	}
}
