// Package config loads the options recognized by spec §9 ("Recognized
// options: colors, error_limit, verify, action, file_kind_override") from
// an optional choir.toml file, grounded on the teacher's
// cmd/surge/project_manifest.go (toml.DecodeFile plus
// meta.IsDefined-guarded field validation). CLI flags layer over whatever
// this file provides, the way cmd/surge/main.go layers cobra persistent
// flags over defaults.
package config
