package token

import "testing"

func TestIsLiteral(t *testing.T) {
	for _, k := range []Kind{IntLit, FloatLit, StringLit, RuneLit} {
		if !k.IsLiteral() {
			t.Errorf("%v should be a literal kind", k)
		}
	}
	if Ident.IsLiteral() {
		t.Error("Ident must not be a literal kind")
	}
}

func TestIsKeywordRange(t *testing.T) {
	if !KwImport.IsKeyword() {
		t.Error("KwImport must be a keyword")
	}
	if !KwAs.IsKeyword() || !KwFrom.IsKeyword() {
		t.Error("contextual KwAs/KwFrom must classify as keywords once rewritten")
	}
	if Ident.IsKeyword() {
		t.Error("Ident must not be a keyword")
	}
	if Plus.IsKeyword() {
		t.Error("Plus must not be a keyword")
	}
}

func TestIsPunctOrOp(t *testing.T) {
	for _, k := range []Kind{Plus, PlusPlus, LessEqualColon, ColonGreaterEqual, Semicolon} {
		if !k.IsPunctOrOp() {
			t.Errorf("%v should be punctuation/operator", k)
		}
	}
	if KwImport.IsPunctOrOp() {
		t.Error("KwImport must not be punctuation/operator")
	}
}
