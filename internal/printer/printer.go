package printer

import (
	"fmt"
	"io"

	"github.com/fatih/color"

	"choir/internal/source"
	"choir/internal/syntax"
	"choir/internal/token"
)

// Printer renders tokens and syntax trees to an io.Writer, optionally
// colorized, resolving token spellings through a source.Context.
type Printer struct {
	w     io.Writer
	ctx   *source.Context
	color bool
}

// New returns a Printer writing to w. useColor mirrors Context.UseColors /
// --color; it is captured once rather than read live so a single dump is
// internally consistent even if the flag changes mid-run.
func New(w io.Writer, ctx *source.Context, useColor bool) *Printer {
	return &Printer{w: w, ctx: ctx, color: useColor}
}

var (
	baseColor    = color.New(color.FgGreen)
	nameColor    = color.New(color.Reset)
	valueColor   = color.New(color.FgYellow)
	keywordColor = color.New(color.FgBlue)
	locColor     = color.New(color.FgMagenta)
)

func (p *Printer) paint(c *color.Color, s string) string {
	if !p.color {
		return s
	}
	c.EnableColor()
	return c.Sprint(s)
}

// PrintTokens dumps every token in mod's dense token vector, one per line,
// with no rail (a flat token stream has no tree structure to indent).
func (p *Printer) PrintTokens(mod *syntax.Module) {
	for _, tok := range mod.Tokens {
		p.writeToken(tok)
	}
}

// PrintTree dumps mod's top-level declarations, each as the root of its own
// rail-indented subtree.
func (p *Printer) PrintTree(mod *syntax.Module) {
	for _, ref := range mod.TopLevel {
		p.writeNode(mod, "", ref)
	}
}

func (p *Printer) writeToken(tok token.Token) {
	spelling := p.ctx.Text(tok.Location)
	header := fmt.Sprintf("%s <%d>", tok.Kind.String(), tok.Location.Pos())
	fmt.Fprintf(p.w, "%s %s\n", p.paint(baseColor, header), p.tokenDetail(tok, spelling))
}

func (p *Printer) tokenDetail(tok token.Token, spelling string) string {
	switch tok.Kind {
	case token.Ident:
		return p.paint(nameColor, spelling)
	case token.StringLit:
		return p.paint(valueColor, fmt.Sprintf("%q", token.DecodeString(spelling)))
	case token.RuneLit:
		return p.paint(valueColor, formatRune(token.DecodeRune(spelling)))
	case token.IntLit:
		if tok.IntValue != nil {
			return p.paint(valueColor, tok.IntValue.String())
		}
		return p.paint(valueColor, spelling)
	case token.FloatLit:
		if tok.FloatValue != nil {
			return p.paint(valueColor, tok.FloatValue.Text('g', -1))
		}
		return p.paint(valueColor, spelling)
	default:
		return p.paint(nameColor, fmt.Sprintf("[%s]", spelling))
	}
}

func formatRune(r rune) string {
	if r < 256 {
		return fmt.Sprintf("'%c'", r)
	}
	return fmt.Sprintf("'\\U%X'", r)
}

// writeNode prints node's own header line, then its children rail-indented
// under prefix. prefix is the rail text already accumulated for this
// node's own line (empty for a top-level declaration).
func (p *Printer) writeNode(mod *syntax.Module, prefix string, ref syntax.NodeRef) {
	n := mod.Node(ref)
	header := fmt.Sprintf("%s <%d>", n.Kind.String(), n.Location.Pos())
	detail := p.nodeDetail(mod, n)
	fmt.Fprintf(p.w, "%s%s\n", p.paint(baseColor, header), detail)
	p.writeChildren(mod, prefix, n.Children())
}

func (p *Printer) nodeDetail(mod *syntax.Module, n *syntax.Node) string {
	switch n.Kind {
	case syntax.ImportPathSimple:
		path := decodeModuleText(p, mod, n.PathTok)
		return " " + p.paint(valueColor, fmt.Sprintf("%q", path))
	case syntax.ImportPathSimpleAliased:
		path := decodeModuleText(p, mod, n.PathTok)
		alias := p.ctx.Text(mod.Token(n.AliasTok).Location)
		return fmt.Sprintf(" %s %s%s", p.paint(valueColor, fmt.Sprintf("%q", path)), p.paint(keywordColor, "as "), p.paint(nameColor, alias))
	default:
		return ""
	}
}

func decodeModuleText(p *Printer, mod *syntax.Module, ref syntax.TokenRef) string {
	return token.DecodeString(p.ctx.Text(mod.Token(ref).Location))
}

// writeChildren renders children under prefix, drawing "├─" for every
// child but the last and "└─" for the last, extending prefix by "│ " or
// "  " respectively for that child's own subtree (spec §4.6).
func (p *Printer) writeChildren(mod *syntax.Module, prefix string, children []syntax.Child) {
	for i, ch := range children {
		last := i == len(children)-1
		rail := "├─"
		childPrefix := prefix + "│ "
		if last {
			rail = "└─"
			childPrefix = prefix + "  "
		}
		fmt.Fprint(p.w, p.paint(baseColor, prefix+rail))
		if ch.IsToken {
			p.writeToken(mod.Token(ch.Token))
		} else {
			p.writeNode(mod, childPrefix, ch.Node)
		}
	}
}
