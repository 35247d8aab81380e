package token

// keywords maps a maximal identifier run to its keyword Kind. Lookups are
// case-sensitive (unlike the teacher language this core was adapted from,
// Laye keywords do not fold case), and "as"/"from" are deliberately absent:
// they are contextual, recognized and rewritten by the parser rather than
// the lexer.
var keywords = map[string]Kind{
	"var":         KwVar,
	"void":        KwVoid,
	"noreturn":    KwNoreturn,
	"bool":        KwBool,
	"boolsized":   KwBoolSized,
	"int":         KwInt,
	"intsized":    KwIntSized,
	"floatsized":  KwFloatSized,
	"true":        KwTrue,
	"false":       KwFalse,
	"nil":         KwNil,
	"if":          KwIf,
	"else":        KwElse,
	"for":         KwFor,
	"while":       KwWhile,
	"do":          KwDo,
	"switch":      KwSwitch,
	"case":        KwCase,
	"default":     KwDefault,
	"return":      KwReturn,
	"break":       KwBreak,
	"continue":    KwContinue,
	"fallthrough": KwFallthrough,
	"yield":       KwYield,
	"unreachable": KwUnreachable,
	"defer":       KwDefer,
	"discard":     KwDiscard,
	"goto":        KwGoto,
	"xyzzy":       KwXyzzy,
	"assert":      KwAssert,
	"try":         KwTry,
	"catch":       KwCatch,
	"struct":      KwStruct,
	"variant":     KwVariant,
	"enum":        KwEnum,
	"template":    KwTemplate,
	"alias":       KwAlias,
	"test":        KwTest,
	"import":      KwImport,
	"export":      KwExport,
	"operator":    KwOperator,
	"mut":         KwMut,
	"new":         KwNew,
	"delete":      KwDelete,
	"cast":        KwCast,
	"is":          KwIs,
	"sizeof":      KwSizeof,
	"alignof":     KwAlignof,
	"offsetof":    KwOffsetof,
	"not":         KwNot,
	"and":         KwAnd,
	"or":          KwOr,
	"xor":         KwXor,
	"varargs":     KwVarargs,
	"const":       KwConst,
	"foreign":     KwForeign,
	"inline":      KwInline,
	"callconv":    KwCallconv,
	"pure":        KwPure,
	"discardable": KwDiscardable,
}

// LookupKeyword returns the keyword Kind for s, or (Ident, false) if s is a
// plain identifier or one of the contextual words "as"/"from".
func LookupKeyword(s string) (Kind, bool) {
	k, ok := keywords[s]
	if !ok {
		return Ident, false
	}
	return k, true
}

// IsContextualWord reports whether s is "as" or "from": lexed as Ident, and
// only ever promoted to KwAs/KwFrom by the parser.
func IsContextualWord(s string) bool {
	return s == "as" || s == "from"
}
