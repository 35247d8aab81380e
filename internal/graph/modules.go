package graph

import (
	"fmt"
	"path/filepath"
	"sort"

	"choir/internal/source"
	"choir/internal/syntax"
	"choir/internal/token"
)

// BuildFromModules walks every parsed module's import declarations and
// assembles a Graph[string] of dependency edges, grounded on the teacher's
// internal/project/dag.BuildGraph (one pass over each module's declared
// imports, diagnostics reported through the shared engine rather than
// returned as errors) with the DFS ordering algorithm of §4.5 standing in
// for the teacher's Kahn's-algorithm topo sort.
//
// mods keys a parsed module under every name another module may reference
// it by: cmd/choir registers each file under its logical import name
// (its base filename, extension stripped) and its registered path, pointing
// at the same *syntax.Module, so both import forms ("import foo;" and
// 'import "foo.laye";') resolve against the same map.
//
// Unresolvable imports are reported through engine (if non-nil) and simply
// produce no edge — BuildFromModules never fails; callers inspect the
// resulting Graph (and its own OrderedElements cycle report) afterward.
func BuildFromModules(ctx *source.Context, mods map[string]*syntax.Module, engine source.Engine) *Graph[string] {
	g := New[string]()

	keys := make([]string, 0, len(mods))
	for k := range mods {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, key := range keys {
		mod := mods[key]
		g.AddNode(key)
		for _, ref := range mod.TopLevel {
			n := mod.Node(ref)
			switch n.Kind {
			case syntax.ImportPathSimple, syntax.ImportPathSimpleAliased:
				raw := mod.Text(ctx, n.PathTok)
				importPath := token.DecodeString(raw)
				targetKey := resolveImportPath(mod.File.Path, importPath)
				addOrReport(g, engine, key, targetKey, mods, n.Location, importPath)

			case syntax.ImportNamedSimple, syntax.ImportNamedSimpleAliased:
				name, _ := mod.Interner.Lookup(mod.Token(n.NameTok).Text)
				addOrReport(g, engine, key, name, mods, n.Location, name)
			}
		}
	}

	return g
}

func addOrReport(g *Graph[string], engine source.Engine, from, to string, mods map[string]*syntax.Module, loc source.Location, display string) {
	if _, ok := mods[to]; ok {
		g.AddEdge(from, to)
		return
	}
	if engine != nil {
		engine.Report(source.LevelError, loc, fmt.Sprintf("cannot resolve import %q", display))
	}
}

// resolveImportPath joins a string-literal import path against the
// directory of the importing file, the way a driver resolving a sibling
// source file would.
func resolveImportPath(fromFile, importPath string) string {
	if filepath.IsAbs(importPath) {
		return filepath.Clean(importPath)
	}
	return filepath.Clean(filepath.Join(filepath.Dir(fromFile), importPath))
}

// ReportCycle renders a cycle returned by Graph.OrderedElements through
// engine, anchored at the start of the dependent module's file since
// individual import edges carry no location once folded into the graph.
func ReportCycle(engine source.Engine, mods map[string]*syntax.Module, cyc *Cycle[string]) {
	if engine == nil || cyc == nil {
		return
	}
	mod, ok := mods[cyc.To]
	if !ok {
		return
	}
	loc := source.NewLocation(mod.File.ID, 0, 1)
	engine.Report(source.LevelError, loc, fmt.Sprintf("import cycle detected: %q -> %q", cyc.To, cyc.From))
}
