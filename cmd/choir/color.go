package main

import (
	"os"

	"golang.org/x/term"

	"choir/internal/config"
)

// isTerminal reports whether f is attached to an interactive terminal,
// continuing cmd/surge/main.go's isTerminal helper.
func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

// resolveColor decides whether output should be colorized: --verify always
// disables colors (spec §6), otherwise auto defers to the terminal check
// the teacher's isTerminal performs.
func resolveColor(mode config.ColorMode, verify bool, out *os.File) bool {
	if verify {
		return false
	}
	switch mode {
	case config.ColorAlways:
		return true
	case config.ColorNever:
		return false
	default:
		return isTerminal(out)
	}
}
