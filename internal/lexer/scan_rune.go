package lexer

import "choir/internal/token"

// scanRune scans a single-quoted rune literal. Exactly one codepoint (or
// one escape) is expected; zero or more than one is an Error (open
// question (b)), but the token still closes as RuneLit rather than Invalid.
func (lx *Lexer) scanRune() token.Token {
	start := lx.cursor.Mark()
	lx.cursor.Bump() // opening '\''
	count := 0
	for {
		if lx.cursor.EOF() {
			lx.reportf(lx.cursor.LocationFrom(start), "unterminated rune literal")
			return lx.emit(token.Invalid, start)
		}
		switch lx.cursor.Peek() {
		case '\'':
			lx.cursor.Bump()
			if count != 1 {
				if count == 0 {
					lx.reportf(lx.cursor.LocationFrom(start), "empty rune literal")
				} else {
					lx.reportf(lx.cursor.LocationFrom(start), "rune literal contains more than one codepoint")
				}
			}
			return lx.emitInterned(token.RuneLit, start)
		case '\n':
			lx.reportf(lx.cursor.LocationFrom(start), "newline in rune literal")
			return lx.emit(token.Invalid, start)
		case '\\':
			lx.cursor.Bump()
			lx.scanEscape(start)
			count++
		default:
			_, sz := lx.peekRune()
			if sz == 0 {
				sz = 1
			}
			for i := 0; i < sz; i++ {
				lx.cursor.Bump()
			}
			count++
		}
	}
}
