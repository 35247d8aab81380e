package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"choir/internal/config"
	"choir/internal/diag"
	"choir/internal/graph"
	"choir/internal/printer"
	"choir/internal/source"
	"choir/internal/syntax"
)

// errDiagnosed is returned when the run failed only because the engine
// reported an Error/ICE; the engine has already printed it, so main must
// not print it again (spec §6 exit codes: "non-zero on any Error/ICE").
var errDiagnosed = errors.New("")

func runDriver(cmd *cobra.Command, args []string) error {
	flags := cmd.Flags()

	cfgPath, _ := flags.GetString("config")
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return err
	}
	applyFlagOverrides(flags, &cfg)

	if !validAction(cfg.Action) {
		return fmt.Errorf("unknown action %q (want lex|parse|sema|compile)", cfg.Action)
	}
	if cfg.FileKindOverride != "" && cfg.FileKindOverride != config.FileKindLaye {
		return fmt.Errorf("the %s front end is a stub in this build; only laye is implemented", cfg.FileKindOverride)
	}
	if len(args) == 0 {
		return fmt.Errorf("no input files")
	}
	for _, path := range args {
		kind := cfg.FileKindOverride
		if kind == "" {
			k, ok := config.ParseFileKind(filepath.Ext(path))
			if !ok {
				return fmt.Errorf("%s: unrecognized file extension %q", path, filepath.Ext(path))
			}
			kind = k
		}
		if kind != config.FileKindLaye {
			return fmt.Errorf("%s: the %s front end is a stub in this build", path, kind)
		}
	}

	useColor := resolveColor(cfg.Colors, cfg.Verify, os.Stderr)

	ctx := source.New()
	ctx.EnableColors(useColor)

	errLimit := uint32(10)
	if cfg.ErrorLimit != nil {
		errLimit = *cfg.ErrorLimit
	}
	engine := diag.NewEngine(os.Stderr, ctx, errLimit)
	engine.EnableColors(useColor)
	ctx.SetDiags(engine)

	mods, err := lexAndParseAll(ctx, engine, args)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	p := printer.New(out, ctx, useColor)

	switch cfg.Action {
	case config.ActionLex:
		for _, path := range args {
			p.PrintTokens(mods[path])
		}
	case config.ActionParse:
		for _, path := range args {
			p.PrintTree(mods[path])
		}
	case config.ActionSema, config.ActionCompile:
		reportModuleOrder(out, ctx, engine, mods)
		fmt.Fprintf(cmd.ErrOrStderr(), "choir: %s is not implemented in this build (semantic analysis and code generation are out of scope for this core)\n", cfg.Action)
	}

	if engine.HasErrors() {
		return errDiagnosed
	}
	return nil
}

func applyFlagOverrides(flags *pflag.FlagSet, cfg *config.Config) {
	if flags.Changed("color") {
		s, _ := flags.GetString("color")
		cfg.Colors = config.ColorMode(s)
	}
	if flags.Changed("error-limit") {
		n, _ := flags.GetUint32("error-limit")
		cfg.ErrorLimit = &n
	}
	if flags.Changed("verify") {
		v, _ := flags.GetBool("verify")
		cfg.Verify = v
	}
	if flags.Changed("action") {
		a, _ := flags.GetString("action")
		cfg.Action = config.Action(a)
	}
	if flags.Changed("lang") {
		lang, _ := flags.GetString("lang")
		cfg.FileKindOverride = config.FileKind(lang)
	}
}

func validAction(a config.Action) bool {
	switch a {
	case config.ActionLex, config.ActionParse, config.ActionSema, config.ActionCompile:
		return true
	default:
		return false
	}
}

// reportModuleOrder builds the module dependency graph (C8) across every
// parsed file and prints either the resolved order or the cycle that
// prevented one. This is the only sema/compile behavior implemented in
// this build; both actions are otherwise stubs (spec §1 Non-goals).
func reportModuleOrder(out io.Writer, ctx *source.Context, engine source.Engine, mods map[string]*syntax.Module) {
	g := graph.BuildFromModules(ctx, mods, engine)
	order, cyc := g.OrderedElements()
	if cyc != nil {
		graph.ReportCycle(engine, mods, cyc)
		return
	}
	fmt.Fprintln(out, "module order:")
	for _, key := range order {
		fmt.Fprintf(out, "  %s\n", key)
	}
}
