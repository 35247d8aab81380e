package parser

import (
	"fmt"

	"choir/internal/lexer"
	"choir/internal/source"
	"choir/internal/syntax"
	"choir/internal/token"
)

// Options configures a Parser.
type Options struct {
	// Engine receives Error diagnostics. May be nil in tests that only care
	// about the produced tree.
	Engine source.Engine
}

// Parser is recursive-descent state over one module's pre-lexed token
// vector: one-token lookahead plus peek-by-index (spec §4.4).
type Parser struct {
	mod  *syntax.Module
	opts Options
	pos  int
}

// New creates a Parser positioned at the start of mod's token vector.
func New(mod *syntax.Module, opts Options) *Parser {
	return &Parser{mod: mod, opts: opts}
}

// ParseFile lexes file end to end and parses its import declarations,
// returning the resulting Module. This is the convenience entry point the
// CLI driver uses for --action=lex/parse.
func ParseFile(file *source.File, interner *source.Interner, engine source.Engine, trivia token.TriviaMode) *syntax.Module {
	toks := lexer.Lex(file, lexer.Options{Interner: interner, Engine: engine, Trivia: trivia})
	mod := syntax.NewModule(file, toks, interner)
	p := New(mod, Options{Engine: engine})
	p.ParseModule()
	return mod
}

// ParseModule parses every top-level declaration up to EOF.
func (p *Parser) ParseModule() {
	for !p.at(token.EOF) {
		before := p.pos
		if ref, ok := p.parseTopLevelDecl(); ok {
			p.mod.PushTopLevel(ref)
		}
		if p.pos == before {
			p.advance()
		}
	}
}

func (p *Parser) parseTopLevelDecl() (syntax.NodeRef, bool) {
	switch p.cur().Kind {
	case token.KwImport:
		return p.parseImportDecl()
	default:
		return p.parseUnknownDecl()
	}
}

// parseUnknownDecl handles top-level input that isn't even the start of a
// known declaration: it reports once, skips to the next declaration
// boundary, and wraps what it skipped in a syntax.Unknown node so every
// token still attaches to the tree (spec §8 property 8).
func (p *Parser) parseUnknownDecl() (syntax.NodeRef, bool) {
	p.reportf(p.cur().Location, "unexpected token at top level; expected a declaration")

	var consumed []syntax.TokenRef
	for !p.atDeclBoundary() {
		consumed = append(consumed, p.advance())
	}
	if p.at(token.Semicolon) {
		consumed = append(consumed, p.advance())
	}
	if len(consumed) == 0 {
		consumed = append(consumed, p.advance())
	}

	loc := p.mod.Token(consumed[0]).Location.Merge(p.mod.Token(consumed[len(consumed)-1]).Location)
	ref := p.mod.NewNode(syntax.Node{Kind: syntax.Unknown, Location: loc, Consumed: consumed})
	return ref, true
}

func (p *Parser) atDeclBoundary() bool {
	return Classify(p.cur().Kind).Has(DeclStart) || p.at(token.Semicolon) || p.at(token.EOF)
}

func (p *Parser) at(k token.Kind) bool { return p.cur().Kind == k }

func (p *Parser) cur() token.Token {
	if p.pos >= len(p.mod.Tokens) {
		return p.mod.Tokens[len(p.mod.Tokens)-1] // the EOF token
	}
	return p.mod.Tokens[p.pos]
}

// advance consumes the current token and returns its TokenRef. At EOF it
// does not move further forward, so repeated calls are safe.
func (p *Parser) advance() syntax.TokenRef {
	ref := syntax.TokenRef(p.pos)
	if p.cur().Kind != token.EOF {
		p.pos++
	}
	return ref
}

// atContextualWord reports whether the current token is the identifier
// spelling word (used for the contextual "as"/"from" keywords; spec §4.4).
func (p *Parser) atContextualWord(word string) bool {
	tok := p.cur()
	if tok.Kind != token.Ident {
		return false
	}
	s, ok := p.mod.Interner.Lookup(tok.Text)
	return ok && s == word
}

func (p *Parser) atContextualAs() bool { return p.atContextualWord("as") }

// rewriteAs consumes the current token, rewriting its Kind to KwAs in place
// to record that this occurrence took the contextual role (spec §4.4).
func (p *Parser) rewriteAs() syntax.TokenRef {
	p.mod.Tokens[p.pos].Kind = token.KwAs
	return p.advance()
}

// rewriteFrom is rewriteAs's counterpart for the contextual 'from' keyword.
func (p *Parser) rewriteFrom() syntax.TokenRef {
	p.mod.Tokens[p.pos].Kind = token.KwFrom
	return p.advance()
}

func (p *Parser) expectIdent() (syntax.TokenRef, bool) {
	if p.at(token.Ident) {
		return p.advance(), true
	}
	p.reportf(p.cur().Location, "expected an identifier, found %s", p.cur().Kind)
	return syntax.InvalidTokenRef, false
}

func (p *Parser) expectSemi() syntax.TokenRef {
	if p.at(token.Semicolon) {
		return p.advance()
	}
	p.reportf(p.cur().Location, "expected ';' to terminate the declaration")
	return syntax.InvalidTokenRef
}

func (p *Parser) reportf(loc source.Location, format string, args ...any) {
	if p.opts.Engine == nil {
		return
	}
	p.opts.Engine.Report(source.LevelError, loc, fmt.Sprintf(format, args...))
}
