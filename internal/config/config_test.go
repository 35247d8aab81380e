package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	want := Defaults()
	if cfg.Colors != want.Colors || cfg.Action != want.Action || *cfg.ErrorLimit != *want.ErrorLimit {
		t.Errorf("Load of missing file = %+v, want defaults %+v", cfg, want)
	}
}

func TestLoadOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "choir.toml")
	content := "colors = \"always\"\nerror_limit = 5\nverify = true\naction = \"parse\"\n"
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Colors != ColorAlways {
		t.Errorf("Colors = %q, want always", cfg.Colors)
	}
	if cfg.ErrorLimit == nil || *cfg.ErrorLimit != 5 {
		t.Errorf("ErrorLimit = %v, want 5", cfg.ErrorLimit)
	}
	if !cfg.Verify {
		t.Error("Verify = false, want true")
	}
	if cfg.Action != ActionParse {
		t.Errorf("Action = %q, want parse", cfg.Action)
	}
}

func TestLoadRejectsInvalidColors(t *testing.T) {
	path := filepath.Join(t.TempDir(), "choir.toml")
	if err := os.WriteFile(path, []byte(`colors = "rainbow"`+"\n"), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	if _, err := Load(path); err == nil {
		t.Fatal("expected an error for invalid colors value")
	}
}

func TestParseFileKind(t *testing.T) {
	cases := []struct {
		ext  string
		kind FileKind
		ok   bool
	}{
		{".laye", FileKindLaye, true},
		{".c", FileKindC, true},
		{".h", FileKindC, true},
		{".cpp", FileKindCpp, true},
		{".ccm", FileKindCpp, true},
		{".rs", "", false},
	}
	for _, c := range cases {
		kind, ok := ParseFileKind(c.ext)
		if kind != c.kind || ok != c.ok {
			t.Errorf("ParseFileKind(%q) = (%q, %v), want (%q, %v)", c.ext, kind, ok, c.kind, c.ok)
		}
	}
}
