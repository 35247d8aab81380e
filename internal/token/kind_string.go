package token

// kindNames gives each Kind the spelling the tree printer and diagnostics
// use, matching the original implementation's SyntaxToken::KindToString.
var kindNames = map[Kind]string{
	Invalid: "Invalid",
	EOF:     "EndOfFile",
	Ident:   "Identifier",

	KwVar: "var", KwVoid: "void", KwNoreturn: "noreturn", KwBool: "bool",
	KwBoolSized: "boolsized", KwInt: "int", KwIntSized: "intsized",
	KwFloatSized: "floatsized", KwTrue: "true", KwFalse: "false", KwNil: "nil",
	KwIf: "if", KwElse: "else", KwFor: "for", KwWhile: "while", KwDo: "do",
	KwSwitch: "switch", KwCase: "case", KwDefault: "default",
	KwReturn: "return", KwBreak: "break", KwContinue: "continue",
	KwFallthrough: "fallthrough", KwYield: "yield", KwUnreachable: "unreachable",
	KwDefer: "defer", KwDiscard: "discard", KwGoto: "goto", KwXyzzy: "xyzzy",
	KwAssert: "assert", KwTry: "try", KwCatch: "catch", KwStruct: "struct",
	KwVariant: "variant", KwEnum: "enum", KwTemplate: "template",
	KwAlias: "alias", KwTest: "test", KwImport: "import", KwExport: "export",
	KwOperator: "operator", KwMut: "mut", KwNew: "new", KwDelete: "delete",
	KwCast: "cast", KwIs: "is", KwSizeof: "sizeof", KwAlignof: "alignof",
	KwOffsetof: "offsetof", KwNot: "not", KwAnd: "and", KwOr: "or",
	KwXor: "xor", KwVarargs: "varargs", KwConst: "const", KwForeign: "foreign",
	KwInline: "inline", KwCallconv: "callconv", KwPure: "pure",
	KwDiscardable: "discardable", KwAs: "as", KwFrom: "from",

	IntLit: "LiteralInteger", FloatLit: "LiteralFloat",
	StringLit: "LiteralString", RuneLit: "LiteralRune",

	Plus: "+", PlusPlus: "++", PlusEqual: "+=", PlusPercent: "+%",
	PlusPercentEqual: "+%=", PlusPipe: "+|", PlusPipeEqual: "+|=",

	Minus: "-", MinusMinus: "--", MinusEqual: "-=", MinusPercent: "-%",
	MinusPercentEqual: "-%=", MinusPipe: "-|", MinusPipeEqual: "-|=",

	Equal: "=", EqualEqual: "==", FatArrow: "=>",

	Less: "<", LessColon: "<:", LessEqual: "<=", LessEqualColon: "<=:",
	LessLess: "<<", LessLessEqual: "<<=", LessMinus: "<-",

	Greater: ">", GreaterEqual: ">=", GreaterGreater: ">>",
	GreaterGreaterEqual: ">>=",

	Colon: ":", ColonColon: "::", ColonGreater: ":>", ColonGreaterEqual: ":>=",

	Slash: "/", SlashEqual: "/=", SlashColon: "/:", SlashColonEqual: "/:=",

	Percent: "%", PercentEqual: "%=", PercentColon: "%:",
	PercentColonEqual: "%:=",

	Question: "?", QuestionQuestion: "??", QuestionQuestionEqual: "??=",

	Star: "*", StarEqual: "*=",
	Caret: "^", CaretEqual: "^=",
	Amp: "&", AmpEqual: "&=",
	Pipe: "|", PipeEqual: "|=",
	Tilde: "~", TildeEqual: "~=",
	Bang: "!", BangEqual: "!=",

	LParen: "(", RParen: ")", LBracket: "[", RBracket: "]",
	LBrace: "{", RBrace: "}", Dot: ".", Comma: ",", Semicolon: ";",
}

// String returns the printer-facing spelling of k.
func (k Kind) String() string {
	if s, ok := kindNames[k]; ok {
		return s
	}
	return "Unknown"
}
