package main

import (
	"context"
	"path/filepath"
	"strings"
	"sync"

	"golang.org/x/sync/errgroup"

	"choir/internal/parser"
	"choir/internal/source"
	"choir/internal/syntax"
	"choir/internal/token"
)

// lexAndParseAll runs one lexer+parser instance per file, each in its own
// goroutine inside an errgroup (spec §5: "a process may hold many
// instances in parallel, one per module"), feeding the shared,
// lock-guarded Context and Engine. The returned map is keyed by the path
// as given on the command line, the file's registered (normalized) path,
// and its moduleKey, so internal/graph can resolve either import form
// against it.
func lexAndParseAll(ctx *source.Context, engine source.Engine, paths []string) (map[string]*syntax.Module, error) {
	mods := make(map[string]*syntax.Module, len(paths)*2)
	var mu sync.Mutex

	g, _ := errgroup.WithContext(context.Background())
	for _, p := range paths {
		g.Go(func() error {
			f, err := ctx.GetFile(p)
			if err != nil {
				return err
			}
			mod := parser.ParseFile(f, source.NewInterner(), engine, token.TriviaNone)

			mu.Lock()
			mods[p] = mod
			mods[f.Path] = mod
			mods[moduleKey(p)] = mod
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return mods, nil
}

// moduleKey is this driver's convention for the logical name a bare
// `import foo;` declaration resolves against: the file's base name with
// its extension stripped.
func moduleKey(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}
