package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	cfg, err := Load(t.TempDir())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Color != "" || len(cfg.IncludePaths) != 0 || cfg.LSP.LogFile != "" {
		t.Errorf("expected zero config, got %+v", cfg)
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	dir := t.TempDir()
	want := &Config{
		Color:        "never",
		IncludePaths: []string{"vendor/include", "../shared"},
		LSP:          LSPConfig{LogFile: "/tmp/wyst-lsp.log"},
	}

	if err := Save(dir, want); err != nil {
		t.Fatalf("save: %v", err)
	}

	got, err := Load(dir)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if got.Color != want.Color {
		t.Errorf("color: expected %q, got %q", want.Color, got.Color)
	}
	if len(got.IncludePaths) != 2 || got.IncludePaths[0] != "vendor/include" {
		t.Errorf("include_paths: expected %v, got %v", want.IncludePaths, got.IncludePaths)
	}
	if got.LSP.LogFile != want.LSP.LogFile {
		t.Errorf("lsp.log_file: expected %q, got %q", want.LSP.LogFile, got.LSP.LogFile)
	}
}

func TestLoadParsesYAML(t *testing.T) {
	dir := t.TempDir()
	raw := "color: always\nlsp:\n  log_file: lsp.log\n"
	if err := os.WriteFile(filepath.Join(dir, "wyst.yaml"), []byte(raw), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(dir)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Color != "always" || cfg.LSP.LogFile != "lsp.log" {
		t.Errorf("unexpected config: %+v", cfg)
	}
}

func TestLoadRejectsMalformedYAML(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "wyst.yaml"), []byte("color: [unclosed"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(dir); err == nil {
		t.Error("expected error for malformed yaml")
	}
}

func TestColorEnabled(t *testing.T) {
	checks := []struct {
		color string
		auto  bool
		want  bool
	}{
		{"always", false, true},
		{"never", true, false},
		{"", true, true},
		{"", false, false},
		{"auto", true, true}, // unknown values defer to detection
	}
	for _, c := range checks {
		cfg := &Config{Color: c.color}
		if got := cfg.ColorEnabled(c.auto); got != c.want {
			t.Errorf("ColorEnabled(%q, auto=%v): expected %v, got %v", c.color, c.auto, c.want, got)
		}
	}
}
