// Package syntax holds the Laye concrete-syntax tree data model (C7):
// a per-module bump arena of nodes over a dense token vector, with a single
// invalid-token sentinel standing in for expected-but-absent tokens (spec
// §3, §4.4, §9).
//
// The node set is deliberately narrow: only the import declaration family is
// concretely specified (spec §4.4), so Kind enumerates five node shapes plus
// a generic Unknown used by the parser's top-level recovery. Node is a
// tagged variant over Kind; each kind's Children method returns an ordered
// view covering every token and child node it stores, which is what lets a
// parsed module satisfy the tree-coverage property (spec §8 property 8).
//
// Arena[T] and the TokenRef/NodeRef id types continue the generic typed-
// arena idiom the teacher module uses for its AST (internal/ast/arena.go,
// internal/ast/ids.go): NodeRef uses 1-based indices with a reserved zero
// for "no node". TokenRef is instead a plain 0-based index into the token
// vector and reserves its maximum value to mean "the module's sentinel
// token" — Go slices lack the stable addresses the original
// implementation compares sentinels by (spec §9's "implementations without
// stable addresses should use an explicit is_invalid flag").
package syntax
