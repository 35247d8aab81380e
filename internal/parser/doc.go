// Package parser implements the Laye recursive-descent parser (C7): one-
// token lookahead plus peek-by-index over a pre-lexed token vector,
// producing a loss-preserving syntax.Module.
//
// Only the import declaration family is concretely specified (spec §4.4);
// every other top-level token is wrapped in a syntax.Unknown recovery node
// so the tree still covers every input token (spec §8 property 8). The
// driver loop follows the teacher's internal/parser/parser.go stuck-
// detection idiom: if an iteration consumes no token, the parser forces one
// token of progress so malformed input can never stall it.
package parser
