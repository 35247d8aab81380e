package parser

import (
	"choir/internal/syntax"
	"choir/internal/token"
)

// parseImportDecl parses the import declaration family (spec §4.4):
//
//	import STRING ;                     -> ImportPathSimple
//	import STRING 'as' IDENT ;          -> ImportPathSimpleAliased
//	import IDENT ;                      -> ImportNamedSimple
//	import IDENT 'as' IDENT ;           -> ImportNamedSimpleAliased
//	import IDENT '::' …                 -> reserved, not yet implemented
//	import IDENT 'as' IDENT 'from' …    -> reserved, not yet implemented
//
// Anything else after 'import' falls through to ImportInvalidWithTokens.
func (p *Parser) parseImportDecl() (syntax.NodeRef, bool) {
	importTok := p.advance() // 'import'

	switch {
	case p.at(token.StringLit):
		return p.parseImportPathForm(importTok)
	case p.at(token.Ident):
		return p.parseImportNamedForm(importTok)
	default:
		p.reportf(p.cur().Location, "expected a string literal or an identifier in an import declaration")
		return p.finishImportInvalid(importTok, nil)
	}
}

func (p *Parser) parseImportPathForm(importTok syntax.TokenRef) (syntax.NodeRef, bool) {
	pathTok := p.advance()

	if p.atContextualAs() {
		asTok := p.rewriteAs()
		aliasTok, ok := p.expectIdent()
		if !ok {
			return p.finishImportInvalid(importTok, []syntax.TokenRef{pathTok, asTok})
		}
		semiTok := p.expectSemi()
		return p.finishImportNode(syntax.ImportPathSimpleAliased, importTok, syntax.Node{
			PathTok: pathTok, AsTok: asTok, AliasTok: aliasTok, SemiTok: semiTok,
		})
	}

	semiTok := p.expectSemi()
	return p.finishImportNode(syntax.ImportPathSimple, importTok, syntax.Node{PathTok: pathTok, SemiTok: semiTok})
}

func (p *Parser) parseImportNamedForm(importTok syntax.TokenRef) (syntax.NodeRef, bool) {
	nameTok := p.advance()

	if p.at(token.ColonColon) {
		return p.finishReservedImport(importTok, []syntax.TokenRef{nameTok})
	}

	if p.atContextualAs() {
		asTok := p.rewriteAs()
		aliasTok, ok := p.expectIdent()
		if !ok {
			return p.finishImportInvalid(importTok, []syntax.TokenRef{nameTok, asTok})
		}
		if p.atContextualWord("from") {
			fromTok := p.rewriteFrom()
			return p.finishReservedImport(importTok, []syntax.TokenRef{nameTok, asTok, aliasTok, fromTok})
		}
		semiTok := p.expectSemi()
		return p.finishImportNode(syntax.ImportNamedSimpleAliased, importTok, syntax.Node{
			NameTok: nameTok, AsTok: asTok, AliasTok: aliasTok, SemiTok: semiTok,
		})
	}

	semiTok := p.expectSemi()
	return p.finishImportNode(syntax.ImportNamedSimple, importTok, syntax.Node{NameTok: nameTok, SemiTok: semiTok})
}

// finishReservedImport handles the two forms spec §9 open question (c)
// reserves but leaves unimplemented: it reports and falls through to the
// same recovery path as any other malformed import.
func (p *Parser) finishReservedImport(importTok syntax.TokenRef, already []syntax.TokenRef) (syntax.NodeRef, bool) {
	p.reportf(p.mod.Token(importTok).Location, "reserved import form, not yet implemented")
	return p.finishImportInvalid(importTok, already)
}

func (p *Parser) finishImportNode(kind syntax.Kind, importTok syntax.TokenRef, fields syntax.Node) (syntax.NodeRef, bool) {
	fields.Kind = kind
	fields.ImportTok = importTok
	fields.Location = p.mod.Token(importTok).Location.Merge(p.mod.Token(fields.SemiTok).Location)
	return p.mod.NewNode(fields), true
}

// finishImportInvalid consumes tokens up to the next declaration/statement
// boundary and wraps the import token, whatever was skipped, and the
// terminating ';' (real or sentinel) in an ImportInvalidWithTokens node
// (spec §4.4, scenario S5).
func (p *Parser) finishImportInvalid(importTok syntax.TokenRef, already []syntax.TokenRef) (syntax.NodeRef, bool) {
	consumed := already
	for !p.atDeclBoundary() {
		consumed = append(consumed, p.advance())
	}
	semiTok := p.expectSemi()

	loc := p.mod.Token(importTok).Location.Merge(p.mod.Token(semiTok).Location)
	ref := p.mod.NewNode(syntax.Node{
		Kind:      syntax.ImportInvalidWithTokens,
		Location:  loc,
		ImportTok: importTok,
		Consumed:  consumed,
		SemiTok:   semiTok,
	})
	return ref, true
}
