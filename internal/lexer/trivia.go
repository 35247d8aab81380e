package lexer

import "choir/internal/token"

// collectTrivia consumes a run of whitespace/comment trivia. In leading
// mode (stopAtNewline == false) it keeps consuming across line breaks,
// matching "leading until the next significant char". In trailing mode it
// stops as soon as it has consumed a run of newlines, matching "trailing
// until end-of-line or the next token starter" (spec §4.3). Trivia outside
// the configured TriviaMode is still scanned (so token locations stay
// exact) but not recorded.
func (lx *Lexer) collectTrivia(stopAtNewline bool) []token.Trivia {
	var out []token.Trivia
	for !lx.cursor.EOF() {
		start := lx.cursor.Mark()
		b := lx.cursor.Peek()

		switch {
		case b == ' ' || b == '\t' || b == '\r':
			for {
				c := lx.cursor.Peek()
				if c != ' ' && c != '\t' && c != '\r' {
					break
				}
				lx.cursor.Bump()
			}
			out = lx.appendTrivia(out, token.WhiteSpace, start)
			continue

		case b == '\n':
			for lx.cursor.Peek() == '\n' {
				lx.cursor.Bump()
			}
			out = lx.appendTrivia(out, token.WhiteSpace, start)
			if stopAtNewline {
				return out
			}
			continue
		}

		if b == '/' {
			if kind, ok := lx.scanCommentTrivia(); ok {
				out = lx.appendTrivia(out, kind, start)
				continue
			}
		}
		break
	}
	return out
}

func (lx *Lexer) appendTrivia(out []token.Trivia, kind token.TriviaKind, start Mark) []token.Trivia {
	if !lx.opts.Trivia.Keep(kind) {
		return out
	}
	return append(out, token.Trivia{Kind: kind, Location: lx.cursor.LocationFrom(start)})
}

// scanCommentTrivia scans "//", "///", or a (possibly nested) "/* ... */"
// starting at the current '/'. It reports ok == false and rewinds if '/'
// does not begin a comment, leaving it to be scanned as the Slash operator.
func (lx *Lexer) scanCommentTrivia() (token.TriviaKind, bool) {
	mark := lx.cursor.Mark()
	lx.cursor.Bump() // '/'
	switch lx.cursor.Peek() {
	case '/':
		lx.cursor.Bump()
		kind := token.LineComment
		if lx.cursor.Peek() == '/' {
			lx.cursor.Bump()
			kind = token.DocComment
		}
		for !lx.cursor.EOF() && lx.cursor.Peek() != '\n' {
			lx.cursor.Bump()
		}
		return kind, true

	case '*':
		lx.cursor.Bump()
		depth := 1
		for !lx.cursor.EOF() && depth > 0 {
			if b0, b1, ok := lx.cursor.Peek2(); ok {
				if b0 == '/' && b1 == '*' {
					lx.cursor.Bump()
					lx.cursor.Bump()
					depth++
					continue
				}
				if b0 == '*' && b1 == '/' {
					lx.cursor.Bump()
					lx.cursor.Bump()
					depth--
					continue
				}
			}
			lx.cursor.Bump()
		}
		if depth > 0 {
			lx.reportf(lx.cursor.LocationFrom(mark), "unterminated block comment")
		}
		return token.BlockComment, true

	default:
		lx.cursor.Reset(mark)
		return 0, false
	}
}
