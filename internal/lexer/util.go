package lexer

import (
	"fmt"
	"unicode"
	"unicode/utf8"

	"choir/internal/token"

	"fortio.org/safecast"
)

const utf8RuneSelf = 0x80

// peekRune decodes the rune starting at the cursor without consuming it.
func (lx *Lexer) peekRune() (r rune, size int) {
	if lx.cursor.EOF() {
		return utf8.RuneError, 0
	}
	b := lx.cursor.Peek()
	if b < utf8.RuneSelf {
		return rune(b), 1
	}
	r, sz := utf8.DecodeRune(lx.file.Content[lx.cursor.Off:])
	return r, sz
}

// bumpRune consumes the rune starting at the cursor.
func (lx *Lexer) bumpRune() {
	_, sz := lx.peekRune()
	if sz == 0 {
		return
	}
	usz, err := safecast.Conv[uint32](sz)
	if err != nil {
		panic(fmt.Errorf("lexer: bumpRune overflow: %w", err))
	}
	lx.cursor.Off += usz
}

// textBetween slices the file content between two marks.
func (lx *Lexer) textBetween(a, b Mark) string {
	return string(lx.file.Content[a:b])
}

// emit builds a token with no interned text: used for punctuation,
// operators, and keywords, whose spelling is implied by Kind alone (spec
// §4.3 "Ordering").
func (lx *Lexer) emit(kind token.Kind, start Mark) token.Token {
	return token.Token{Kind: kind, Location: lx.cursor.LocationFrom(start)}
}

// emitInterned builds a token whose lexeme is interned: used for
// content-bearing kinds (identifiers and literals).
func (lx *Lexer) emitInterned(kind token.Kind, start Mark) token.Token {
	loc := lx.cursor.LocationFrom(start)
	text := lx.opts.Interner.InternBytes(lx.file.Content[start:lx.cursor.Off])
	return token.Token{Kind: kind, Location: loc, Text: text}
}

// try3 consumes the next three bytes if they equal a, b, c.
func (lx *Lexer) try3(a, b, c byte) bool {
	b0, b1, b2, ok := lx.cursor.Peek3()
	if !ok || b0 != a || b1 != b || b2 != c {
		return false
	}
	lx.cursor.Bump()
	lx.cursor.Bump()
	lx.cursor.Bump()
	return true
}

// try2 consumes the next two bytes if they equal a, b.
func (lx *Lexer) try2(a, b byte) bool {
	b0, b1, ok := lx.cursor.Peek2()
	if !ok || b0 != a || b1 != b {
		return false
	}
	lx.cursor.Bump()
	lx.cursor.Bump()
	return true
}

// ===== Character classes (spec §4.3) =====

// isIdentStartByte follows the spec's identifier_start class literally:
// ASCII alphanumeric or '_'. Numeric dispatch in Next runs first, so a bare
// digit never actually reaches scanIdentOrKeyword except via a leading '@'.
func isIdentStartByte(b byte) bool {
	return b == '_' || (b >= '0' && b <= '9') || (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z')
}

func isIdentContinueByte(b byte) bool { return isIdentStartByte(b) }

// isIdentStartRune extends the ASCII rule to Unicode letters for non-ASCII
// input; the spec is silent on Unicode identifiers, so this follows the
// wider ecosystem convention of treating source as UTF-8 text throughout.
func isIdentStartRune(r rune) bool {
	if r < utf8RuneSelf {
		return isIdentStartByte(byte(r))
	}
	return unicode.IsLetter(r)
}

func isIdentContinueRune(r rune) bool {
	if r < utf8RuneSelf {
		return isIdentContinueByte(byte(r))
	}
	return unicode.IsLetter(r) || unicode.IsDigit(r)
}

func isDecDigit(b byte) bool { return b >= '0' && b <= '9' }

func isHexByte(b byte) bool {
	return isDecDigit(b) || (b >= 'a' && b <= 'f') || (b >= 'A' && b <= 'F')
}

func isOctalByte(b byte) bool { return b >= '0' && b <= '7' }

// digitValue returns the base-36 value of an alphanumeric ASCII byte.
func digitValue(c byte) (int, bool) {
	switch {
	case c >= '0' && c <= '9':
		return int(c - '0'), true
	case c >= 'a' && c <= 'z':
		return int(c-'a') + 10, true
	case c >= 'A' && c <= 'Z':
		return int(c-'A') + 10, true
	default:
		return 0, false
	}
}

// digitInRadix implements digit_in_radix(c, r): for r<=10, only '0'..'0'+r-1
// qualify; for r>10, 'a'..'a'+(r-11) and 'A'..'A'+(r-11) also qualify.
func digitInRadix(c byte, radix int) (int, bool) {
	v, ok := digitValue(c)
	if !ok || v >= radix {
		return 0, false
	}
	return v, true
}

func isAlnumByte(c byte) bool {
	_, ok := digitValue(c)
	return ok
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func stripUnderscores(s string) string {
	hasUnderscore := false
	for i := 0; i < len(s); i++ {
		if s[i] == '_' {
			hasUnderscore = true
			break
		}
	}
	if !hasUnderscore {
		return s
	}
	out := make([]byte, 0, len(s))
	for i := 0; i < len(s); i++ {
		if s[i] != '_' {
			out = append(out, s[i])
		}
	}
	return string(out)
}

// parseSmallDecimal parses a run of decimal digits (already underscore-
// stripped) into an int, used only for the small radix specifier before
// '#'; out-of-range results are clamped by the caller.
func parseSmallDecimal(s string) int {
	n := 0
	for i := 0; i < len(s); i++ {
		if !isDecDigit(s[i]) {
			continue
		}
		n = n*10 + int(s[i]-'0')
		if n > 1_000_000 {
			return n
		}
	}
	return n
}
