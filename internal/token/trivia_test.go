package token

import "testing"

func TestTriviaModeKeep(t *testing.T) {
	cases := []struct {
		mode TriviaMode
		kind TriviaKind
		want bool
	}{
		{TriviaNone, WhiteSpace, false},
		{TriviaNone, DocComment, false},
		{TriviaDocumentationOnly, DocComment, true},
		{TriviaDocumentationOnly, LineComment, false},
		{TriviaCommentsOnly, LineComment, true},
		{TriviaCommentsOnly, DocComment, false},
		{TriviaAll, WhiteSpace, true},
		{TriviaAll, BlockComment, true},
	}
	for _, c := range cases {
		if got := c.mode.Keep(c.kind); got != c.want {
			t.Errorf("mode %v keep %v = %v, want %v", c.mode, c.kind, got, c.want)
		}
	}
}
