package lexer

import (
	"math/big"
	"strings"

	"choir/internal/token"
)

// scanNumber scans an integer or floating-point literal: a decimal integer,
// optionally reinterpreted as a <radix>#<digits> literal (radix clamped to
// [2,36]), optionally extended with a fractional part (radix 10 or 16
// only) and an exponent ('e' for radix 10, mandatory 'p' for radix 16).
// See spec §4.3 and scenarios S2/S3.
func (lx *Lexer) scanNumber() token.Token {
	start := lx.cursor.Mark()
	radix := 10

	headStart := lx.cursor.Mark()
	lx.scanDigitRun(10, start)
	mantissaDigits := lx.textBetween(headStart, lx.cursor.Mark())

	if lx.cursor.Peek() == '#' {
		lx.cursor.Bump() // '#'
		r := parseSmallDecimal(stripUnderscores(mantissaDigits))
		if r < 2 || r > 36 {
			lx.reportf(lx.cursor.LocationFrom(start), "radix %d is out of range; must be between 2 and 36", r)
			r = clampInt(r, 2, 36)
		}
		radix = r
		mantissaStart := lx.cursor.Mark()
		lx.scanDigitRun(radix, start)
		mantissaDigits = lx.textBetween(mantissaStart, lx.cursor.Mark())
	}

	kind := token.IntLit
	fracDigits := ""
	hasFrac := false
	if b0, b1, ok := lx.cursor.Peek2(); ok && b0 == '.' {
		if _, digOK := digitInRadix(b1, radix); digOK {
			lx.cursor.Bump() // '.'
			fracStart := lx.cursor.Mark()
			lx.scanDigitRun(radix, start)
			fracDigits = lx.textBetween(fracStart, lx.cursor.Mark())
			hasFrac = true
			kind = token.FloatLit
			if radix != 10 && radix != 16 {
				lx.reportf(lx.cursor.LocationFrom(start), "radix %d does not support fractional literals", radix)
			}
		}
	}

	expDigits := ""
	expNeg := false
	hasExp := false
	synthesizedExp := false
	switch {
	case radix == 10 && (lx.cursor.Peek() == 'e' || lx.cursor.Peek() == 'E'):
		kind = token.FloatLit
		lx.cursor.Bump()
		if lx.cursor.Peek() == '+' || lx.cursor.Peek() == '-' {
			expNeg = lx.cursor.Peek() == '-'
			lx.cursor.Bump()
		}
		expStart := lx.cursor.Mark()
		lx.scanDigitRun(10, start)
		expDigits = lx.textBetween(expStart, lx.cursor.Mark())
		hasExp = true

	case radix == 16 && hasFrac:
		kind = token.FloatLit
		if lx.cursor.Peek() == 'p' || lx.cursor.Peek() == 'P' {
			lx.cursor.Bump()
			if lx.cursor.Peek() == '+' || lx.cursor.Peek() == '-' {
				expNeg = lx.cursor.Peek() == '-'
				lx.cursor.Bump()
			}
			expStart := lx.cursor.Mark()
			lx.scanDigitRun(10, start)
			expDigits = lx.textBetween(expStart, lx.cursor.Mark())
			hasExp = true
		} else {
			// Spec §4.3: "a synthetic p0 is inserted" — the value is
			// computed from the mantissa alone (0x1.8 -> 0x1.8p0 == 1.5),
			// not rescaled to match whatever exponent a well-formed
			// sibling literal might have carried.
			lx.reportf(lx.cursor.LocationFrom(start), "hexadecimal float literals require an exponent delimited by 'p'.")
			synthesizedExp = true
			hasExp = true
			expDigits = "0"
		}
	}

	loc := lx.cursor.LocationFrom(start)
	tok := token.Token{
		Kind:       kind,
		Location:   loc,
		Artificial: synthesizedExp,
		Text:       lx.opts.Interner.InternBytes(lx.file.Content[start:lx.cursor.Off]),
	}
	if kind == token.IntLit {
		tok.IntValue = bigIntFromRadixDigits(stripUnderscores(mantissaDigits), radix)
	} else {
		tok.FloatValue = computeFloat(radix, mantissaDigits, fracDigits, hasExp, expNeg, expDigits)
	}
	return tok
}

// scanDigitRun consumes a run of digit_in_radix(radix) and '_' separator
// characters. A separator at the run's start/end, or doubled, is reported
// as misplaced; an alphanumeric byte that is out of range for radix stops
// the run (leaving that byte for the next token) and is reported, unless it
// is the 'e' or 'p' exponent marker that scanNumber consumes next.
func (lx *Lexer) scanDigitRun(radix int, litStart Mark) {
	sawDigit := false
	lastWasSep := false
	for {
		c := lx.cursor.Peek()
		if c == '_' {
			if !sawDigit || lastWasSep {
				lx.reportf(lx.cursor.LocationFrom(litStart), "misplaced digit separator")
			}
			lastWasSep = true
			lx.cursor.Bump()
			continue
		}
		if _, ok := digitInRadix(c, radix); ok {
			sawDigit = true
			lastWasSep = false
			lx.cursor.Bump()
			continue
		}
		if isAlnumByte(c) {
			// The exponent marker scanNumber consumes next is not a bad digit.
			text := lx.textBetween(litStart, lx.cursor.Mark())
			expMarker := (radix == 10 && (c == 'e' || c == 'E') && !strings.ContainsAny(text, "eEpP")) ||
				(radix == 16 && (c == 'p' || c == 'P') && strings.Contains(text, "."))
			if !expMarker {
				lx.reportf(lx.cursor.LocationFrom(litStart), "'%c' is not a valid digit in base %d.", rune(c), radix)
			}
		}
		break
	}
	if lastWasSep {
		lx.reportf(lx.cursor.LocationFrom(litStart), "misplaced digit separator")
	}
}

func bigIntFromRadixDigits(digits string, radix int) *big.Int {
	v := new(big.Int)
	base := big.NewInt(int64(radix))
	d := new(big.Int)
	for i := 0; i < len(digits); i++ {
		val, ok := digitInRadix(digits[i], radix)
		if !ok {
			continue
		}
		v.Mul(v, base)
		d.SetInt64(int64(val))
		v.Add(v, d)
	}
	return v
}

// computeFloat builds the arbitrary-precision value of a float literal.
// Radix 10 and 16 use Go's big.Float.Parse (IEEE round-to-nearest-ties-to-
// even, per property 5); any other radix (already reported as an error)
// falls back to direct summation.
func computeFloat(radix int, intDigits, fracDigits string, hasExp, expNeg bool, expDigits string) *big.Float {
	intClean := stripUnderscores(intDigits)
	fracClean := stripUnderscores(fracDigits)
	expClean := stripUnderscores(expDigits)

	switch radix {
	case 10:
		s := intClean
		if fracClean != "" {
			s += "." + fracClean
		}
		if hasExp {
			if expNeg {
				s += "e-"
			} else {
				s += "e+"
			}
			if expClean == "" {
				expClean = "0"
			}
			s += expClean
		}
		f, _, err := big.ParseFloat(s, 10, 64, big.ToNearestEven)
		if err != nil {
			return new(big.Float)
		}
		return f

	case 16:
		s := "0x" + intClean
		if fracClean != "" {
			s += "." + fracClean
		}
		if expNeg {
			s += "p-"
		} else {
			s += "p+"
		}
		if expClean == "" {
			expClean = "0"
		}
		s += expClean
		f, _, err := big.ParseFloat(s, 0, 64, big.ToNearestEven)
		if err != nil {
			return new(big.Float)
		}
		return f

	default:
		v := bigIntFromRadixDigits(intClean, radix)
		result := new(big.Float).SetPrec(64).SetInt(v)
		if fracClean != "" {
			fracVal := bigIntFromRadixDigits(fracClean, radix)
			denom := new(big.Int).Exp(big.NewInt(int64(radix)), big.NewInt(int64(len(fracClean))), nil)
			fracF := new(big.Float).SetPrec(64).SetInt(fracVal)
			denomF := new(big.Float).SetPrec(64).SetInt(denom)
			fracF.Quo(fracF, denomF)
			result.Add(result, fracF)
		}
		return result
	}
}
