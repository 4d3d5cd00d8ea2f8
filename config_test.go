package notegen

import (
	"path/filepath"
	"testing"
)

func TestLoadConfigMissingFile(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "notegen.yaml"))
	if err != nil {
		t.Fatalf("LoadConfig on a missing file should fall back to defaults, got %v", err)
	}
	if cfg.ContentDir != "content" || cfg.OutputDir != "notes" || cfg.TemplatePath != "template.html" {
		t.Errorf("defaults not applied: %+v", cfg)
	}
	if cfg.IndexJSON != "notes-index.json" || cfg.IndexJS != "notes-data.js" {
		t.Errorf("artifact defaults not applied: %+v", cfg)
	}
}

func TestLoadConfigOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "notegen.yaml")
	writeFile(t, path, "siteName: My Notes\ncontentDir: src\nthumbnails: true\n")

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}
	if cfg.SiteName != "My Notes" {
		t.Errorf("SiteName = %q, want %q", cfg.SiteName, "My Notes")
	}
	if cfg.ContentDir != "src" {
		t.Errorf("ContentDir = %q, want %q", cfg.ContentDir, "src")
	}
	if !cfg.Thumbnails {
		t.Error("Thumbnails override was lost")
	}
	// Unset fields still get defaults.
	if cfg.OutputDir != "notes" || cfg.ThumbnailWidth != 480 {
		t.Errorf("defaults not applied to unset fields: %+v", cfg)
	}
}

func TestLoadConfigMalformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "notegen.yaml")
	writeFile(t, path, "siteName: [unclosed\n")

	if _, err := LoadConfig(path); err == nil {
		t.Fatal("LoadConfig accepted malformed YAML")
	}
}
