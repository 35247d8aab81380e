package graph

import (
	"testing"

	"choir/internal/parser"
	"choir/internal/source"
	"choir/internal/syntax"
	"choir/internal/token"
)

func mustModule(t *testing.T, ctx *source.Context, name, content string) *syntax.Module {
	t.Helper()
	f, err := ctx.AddVirtual(name, []byte(content))
	if err != nil {
		t.Fatalf("AddVirtual(%s): %v", name, err)
	}
	return parser.ParseFile(f, source.NewInterner(), nil, token.TriviaNone)
}

func TestBuildFromModulesNamedImport(t *testing.T) {
	ctx := source.New()
	mods := map[string]*syntax.Module{
		"a": mustModule(t, ctx, "a.laye", `import b;`),
		"b": mustModule(t, ctx, "b.laye", `import "c.laye";`),
		"c": mustModule(t, ctx, "c.laye", ``),
	}
	mods["c.laye"] = mods["c"] // path-form resolution target

	g := BuildFromModules(ctx, mods, nil)

	order, cyc := g.OrderedElements()
	if cyc != nil {
		t.Fatalf("unexpected cycle: %+v", cyc)
	}
	pos := make(map[string]int, len(order))
	for i, h := range order {
		pos[h] = i
	}
	if pos["c.laye"] >= pos["b"] {
		t.Errorf("c.laye must precede b: order=%v", order)
	}
	if pos["b"] >= pos["a"] {
		t.Errorf("b must precede a: order=%v", order)
	}
}

func TestBuildFromModulesUnresolvedImportReported(t *testing.T) {
	ctx := source.New()
	var reported []string
	engine := &recordingEngine{report: func(level source.Level, loc source.Location, msg string) {
		reported = append(reported, msg)
	}}
	mods := map[string]*syntax.Module{
		"a": mustModule(t, ctx, "a.laye", `import missing;`),
	}
	BuildFromModules(ctx, mods, engine)
	if len(reported) != 1 {
		t.Fatalf("expected exactly one diagnostic, got %v", reported)
	}
}

type recordingEngine struct {
	report func(level source.Level, loc source.Location, msg string)
}

func (r *recordingEngine) Report(level source.Level, loc source.Location, msg string) {
	r.report(level, loc, msg)
}

func (r *recordingEngine) HasErrors() bool { return true }
