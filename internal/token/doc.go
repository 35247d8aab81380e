// Package token defines lexical token kinds and trivia for the Laye
// front end.
//
// Invariants:
//   - Token.Location.Pos()+Location.Len() <= file.size (I1).
//   - Token.Text is interned into the owning module's string interner, not a
//     raw slice of source bytes; use a source.Context to recover the lexeme.
//   - "as" and "from" are contextual: the lexer always produces Ident for
//     them, and the parser rewrites Token.Kind to KwAs/KwFrom in place when
//     a production expects that role.
package token
