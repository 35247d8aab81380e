package token

import "testing"

func TestLookupKeyword(t *testing.T) {
	cases := map[string]Kind{
		"import":      KwImport,
		"struct":      KwStruct,
		"xyzzy":       KwXyzzy,
		"discardable": KwDiscardable,
	}
	for text, want := range cases {
		got, ok := LookupKeyword(text)
		if !ok || got != want {
			t.Errorf("LookupKeyword(%q) = %v, %v; want %v, true", text, got, ok, want)
		}
	}
}

func TestAsFromAreNotKeywords(t *testing.T) {
	if _, ok := LookupKeyword("as"); ok {
		t.Error(`"as" must not be in the static keyword table (it is contextual)`)
	}
	if _, ok := LookupKeyword("from"); ok {
		t.Error(`"from" must not be in the static keyword table (it is contextual)`)
	}
	if !IsContextualWord("as") || !IsContextualWord("from") {
		t.Error("IsContextualWord must recognize both as and from")
	}
}

func TestKeywordLookupIsCaseSensitive(t *testing.T) {
	if _, ok := LookupKeyword("Import"); ok {
		t.Error("keyword lookup must be case-sensitive for Laye")
	}
}
