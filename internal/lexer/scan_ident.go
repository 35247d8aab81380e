package lexer

import "choir/internal/token"

// scanIdentOrKeyword scans a maximal identifier run and looks it up
// case-sensitively against the keyword table. A leading '@' forces
// identifier interpretation even if the run would otherwise match a
// keyword; if '@' is not followed by an identifier start, that is an
// error (open question (a): treated as Error rather than guessed at).
func (lx *Lexer) scanIdentOrKeyword() token.Token {
	start := lx.cursor.Mark()
	forced := false
	if lx.cursor.Peek() == '@' {
		forced = true
		lx.cursor.Bump()
	}

	r, sz := lx.peekRune()
	if sz == 0 || !isIdentStartRune(r) {
		loc := lx.cursor.LocationFrom(start)
		if forced {
			lx.reportf(loc, "'@' must be followed by an identifier")
		} else {
			lx.reportf(loc, "unexpected character")
		}
		if sz > 0 && !forced {
			lx.bumpRune()
		}
		return token.Token{Kind: token.Invalid, Location: lx.cursor.LocationFrom(start)}
	}

	lx.bumpRune()
	for {
		r2, sz2 := lx.peekRune()
		if sz2 == 0 || !isIdentContinueRune(r2) {
			break
		}
		lx.bumpRune()
	}

	loc := lx.cursor.LocationFrom(start)
	lexeme := lx.file.Content[start:lx.cursor.Off]

	if !forced {
		if k, ok := token.LookupKeyword(string(lexeme)); ok {
			return token.Token{Kind: k, Location: loc}
		}
	}
	return token.Token{Kind: token.Ident, Location: loc, Text: lx.opts.Interner.InternBytes(lexeme)}
}
