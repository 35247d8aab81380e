package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"choir/internal/config"
	"choir/internal/version"
)

// rootCmd is the choir driver: it lexes and parses every file named on the
// command line and runs the requested phase over them (spec §6 CLI
// surface), grounded on the teacher's cmd/surge/main.go cobra skeleton.
// Unlike the teacher, which dispatches to one subcommand per verb, this
// spec models the phase as a single --action flag (spec §4.6's own
// "--action=lex/parse" notation), so there is one root command rather
// than a tokenize/parse/diag/fmt/fix family.
var rootCmd = &cobra.Command{
	Use:   "choir [flags] <file...>",
	Short: "Choir: the Laye front end — lex, parse, and report diagnostics",
	Long:  "choir drives the Laye front end: lexing, parsing, module-order resolution, and diagnostic reporting over one or more source files.",
	Args:  cobra.ArbitraryArgs,
	RunE:  runDriver,
}

func init() {
	rootCmd.SilenceErrors = true
	rootCmd.SilenceUsage = true

	rootCmd.PersistentFlags().String("color", string(config.ColorAuto), "colorize diagnostics and tree dumps (auto|always|never)")
	rootCmd.PersistentFlags().Uint32("error-limit", 10, "stop reporting diagnostics after this many (0 disables)")
	rootCmd.PersistentFlags().Bool("verify", false, "run in verify-diagnostics mode (disables colors)")
	rootCmd.PersistentFlags().String("action", string(config.ActionLex), "phase to run (lex|parse|sema|compile)")
	rootCmd.PersistentFlags().StringP("lang", "x", "", "override file-kind detection (laye|c|c++)")
	rootCmd.PersistentFlags().String("config", "choir.toml", "path to an optional configuration file")

	rootCmd.AddCommand(versionCmd)
}

func main() {
	rootCmd.Version = version.Collect().Version
	if err := rootCmd.Execute(); err != nil {
		if msg := err.Error(); msg != "" {
			fmt.Fprintf(os.Stderr, "choir: %s\n", msg)
		}
		os.Exit(1)
	}
}
