// Package diag renders diagnostics: thread-safe reporting of source-anchored,
// optionally colored, caret-underlined messages with error-limit throttling.
//
// # Scope
//
// A diagnostic is {level, location, message}. Level is one of Note,
// Warning, Error, ICE (source.Level, aliased here). There is no fix/edit
// model and no batching step: Engine.Report renders immediately under its
// own lock, so callers see output in the exact order they reported it. A
// Note is accepted only after some non-Note diagnostic has been reported;
// since each Report call locks separately, a Note is not guaranteed to
// render directly after the diagnostic it qualifies when several
// goroutines report at once.
//
// # Error limit
//
// Engine is a one-way state machine: Open, then Throttled once the
// configured error limit is reached. A single throttling notice is printed
// on the transition; every Report call afterward is a no-op except for
// maintaining the monotone error flag.
//
// # Consumers
//
//   - internal/parser, internal/lexer, internal/graph report through the
//     source.Engine interface so they don't need to import this package.
//   - cmd/choir owns the concrete Engine, wires it into the Context, and
//     checks HasErrors at phase boundaries to choose an exit code.
package diag
