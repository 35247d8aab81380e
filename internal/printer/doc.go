// Package printer implements the shared tree/token dump used by the CLI's
// --action=lex and --action=parse (spec C9 Tree Printer). It renders a
// token or syntax node with a leading rail of Unicode box-drawing
// characters ("├─", "└─", "│ ", "  ") and per-kind detail — an
// identifier's text, a literal's value in its natural form, a rune as
// '<ch>' or '\UXXXX' — grounded directly on the original implementation's
// LayeSyntaxPrinter (original_source/choir/lib/Laye/SyntaxPrinter.cc) and
// its TreePrinterBase rail (tree_printer.hh), re-expressed without the
// mutable leading-string field that C++ version threads through method
// calls: Go's recursion passes the growing prefix by value instead.
package printer
