package printer

import (
	"bytes"
	"strings"
	"testing"

	"choir/internal/parser"
	"choir/internal/source"
	"choir/internal/token"
)

func parseTest(t *testing.T, content string) (*source.Context, *source.File) {
	t.Helper()
	ctx := source.New()
	f, err := ctx.AddVirtual("test.laye", []byte(content))
	if err != nil {
		t.Fatalf("AddVirtual: %v", err)
	}
	return ctx, f
}

func TestPrintTokensCoversEveryToken(t *testing.T) {
	ctx, f := parseTest(t, `import "foo.laye";`)
	mod := parser.ParseFile(f, source.NewInterner(), nil, token.TriviaNone)

	var buf bytes.Buffer
	New(&buf, ctx, false).PrintTokens(mod)

	out := buf.String()
	lines := strings.Count(out, "\n")
	if lines != len(mod.Tokens) {
		t.Fatalf("PrintTokens wrote %d lines, want one per token (%d)", lines, len(mod.Tokens))
	}
	if !strings.Contains(out, "import") {
		t.Errorf("expected the import keyword token in output, got %q", out)
	}
	if !strings.Contains(out, `"foo.laye"`) {
		t.Errorf("expected the raw string lexeme in output, got %q", out)
	}
}

func TestPrintTreeImportPathSimple(t *testing.T) {
	ctx, f := parseTest(t, `import "foo.laye";`)
	mod := parser.ParseFile(f, source.NewInterner(), nil, token.TriviaNone)

	var buf bytes.Buffer
	New(&buf, ctx, false).PrintTree(mod)

	out := buf.String()
	if !strings.Contains(out, "ImportPathSimple") {
		t.Errorf("expected ImportPathSimple header, got %q", out)
	}
	if !strings.Contains(out, `"foo.laye"`) {
		t.Errorf("expected decoded path text, got %q", out)
	}
	if !strings.Contains(out, "├─") && !strings.Contains(out, "└─") {
		t.Errorf("expected a box-drawing rail for children, got %q", out)
	}
}

func TestPrintTreeAliasedImport(t *testing.T) {
	ctx, f := parseTest(t, `import "foo.laye" as bar;`)
	mod := parser.ParseFile(f, source.NewInterner(), nil, token.TriviaNone)

	var buf bytes.Buffer
	New(&buf, ctx, false).PrintTree(mod)

	out := buf.String()
	if !strings.Contains(out, "ImportPathSimpleAliased") {
		t.Errorf("expected ImportPathSimpleAliased header, got %q", out)
	}
	if !strings.Contains(out, "bar") {
		t.Errorf("expected alias name in output, got %q", out)
	}
}
