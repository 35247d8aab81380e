package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/BurntSushi/toml"
)

// ColorMode mirrors the CLI's --color flag (spec §6).
type ColorMode string

const (
	ColorAuto   ColorMode = "auto"
	ColorAlways ColorMode = "always"
	ColorNever  ColorMode = "never"
)

// Action selects what phase the driver runs (spec §6).
type Action string

const (
	ActionLex     Action = "lex"
	ActionParse   Action = "parse"
	ActionSema    Action = "sema"
	ActionCompile Action = "compile"
)

// FileKind overrides file-extension dispatch (spec §6 -x flag).
type FileKind string

const (
	FileKindLaye FileKind = "laye"
	FileKindC    FileKind = "c"
	FileKindCpp  FileKind = "c++"
)

// Config holds every option spec §9's Configuration section names. Zero
// value fields mean "unset"; Defaults fills them in, and cmd/choir's
// applyFlagOverrides lets CLI flags (always considered more specific)
// override a loaded file.
type Config struct {
	Colors           ColorMode `toml:"colors"`
	ErrorLimit       *uint32   `toml:"error_limit"`
	Verify           bool      `toml:"verify"`
	Action           Action    `toml:"action"`
	FileKindOverride FileKind  `toml:"file_kind_override"`
}

// Defaults returns the built-in option values (spec §6: --color auto,
// --error-limit 10, action lex, matching the --action flag's default).
func Defaults() Config {
	limit := uint32(10)
	return Config{
		Colors:     ColorAuto,
		ErrorLimit: &limit,
		Action:     ActionLex,
	}
}

// Load reads and validates a choir.toml file at path. A missing file is not
// an error: it returns Defaults() unchanged, matching the teacher's
// "no manifest, fall back" convention for an optional project file (see
// cmd/surge/project_manifest.go's loadProjectManifest).
func Load(path string) (Config, error) {
	cfg := Defaults()

	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("config: %s: %w", path, err)
	}

	var file Config
	meta, err := toml.DecodeFile(path, &file)
	if err != nil {
		return cfg, fmt.Errorf("config: %s: failed to parse TOML: %w", path, err)
	}

	if meta.IsDefined("colors") {
		if !validColorMode(file.Colors) {
			return cfg, fmt.Errorf("config: %s: invalid colors %q (want auto|always|never)", path, file.Colors)
		}
		cfg.Colors = file.Colors
	}
	if meta.IsDefined("error_limit") {
		cfg.ErrorLimit = file.ErrorLimit
	}
	if meta.IsDefined("verify") {
		cfg.Verify = file.Verify
	}
	if meta.IsDefined("action") {
		if !validAction(file.Action) {
			return cfg, fmt.Errorf("config: %s: invalid action %q (want lex|parse|sema|compile)", path, file.Action)
		}
		cfg.Action = file.Action
	}
	if meta.IsDefined("file_kind_override") {
		if !validFileKind(file.FileKindOverride) {
			return cfg, fmt.Errorf("config: %s: invalid file_kind_override %q (want laye|c|c++)", path, file.FileKindOverride)
		}
		cfg.FileKindOverride = file.FileKindOverride
	}

	return cfg, nil
}

func validColorMode(m ColorMode) bool {
	switch m {
	case ColorAuto, ColorAlways, ColorNever:
		return true
	default:
		return false
	}
}

func validAction(a Action) bool {
	switch a {
	case ActionLex, ActionParse, ActionSema, ActionCompile:
		return true
	default:
		return false
	}
}

func validFileKind(k FileKind) bool {
	switch k {
	case FileKindLaye, FileKindC, FileKindCpp, "":
		return true
	default:
		return false
	}
}

// ParseFileKind maps a file extension to its FileKind (spec §6 dispatch
// table). An unrecognized extension is a CLI error, not silently ignored.
func ParseFileKind(ext string) (FileKind, bool) {
	switch strings.ToLower(ext) {
	case ".laye":
		return FileKindLaye, true
	case ".c", ".h":
		return FileKindC, true
	case ".cpp", ".ixx", ".cc", ".ccm":
		return FileKindCpp, true
	default:
		return "", false
	}
}
