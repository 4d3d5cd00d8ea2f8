package notegen

import (
	"image"
	"image/jpeg"
	"image/png"
	"os"
	"path/filepath"
	"testing"
)

func writeTestPNG(t *testing.T, path string, w, h int) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir for %s: %v", path, err)
	}
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("create %s: %v", path, err)
	}
	defer f.Close()
	if err := png.Encode(f, image.NewRGBA(image.Rect(0, 0, w, h))); err != nil {
		t.Fatalf("encode png: %v", err)
	}
}

func TestGenerateThumbs(t *testing.T) {
	dir := t.TempDir()
	cfg := Config{
		ContentDir: filepath.Join(dir, "content"),
		OutputDir:  filepath.Join(dir, "notes"),
		Thumbnails: true,
	}
	cfg.setDefaults()
	writeTestPNG(t, filepath.Join(cfg.ContentDir, "images", "wide.png"), 960, 240)
	writeTestPNG(t, filepath.Join(cfg.ContentDir, "images", "small.png"), 100, 80)

	posts := []Post{
		{Slug: "wide", Image: "images/wide.png"},
		{Slug: "small", Image: "images/small.png"},
		{Slug: "remote", Image: "https://example.com/pic.png"},
		{Slug: "none", Image: ""},
	}
	if err := generateThumbs(cfg, posts); err != nil {
		t.Fatalf("generateThumbs failed: %v", err)
	}

	wide := decodeThumb(t, cfg, "wide.jpg")
	if got := wide.Bounds().Dx(); got != cfg.ThumbnailWidth {
		t.Errorf("wide thumb width = %d, want %d", got, cfg.ThumbnailWidth)
	}
	small := decodeThumb(t, cfg, "small.jpg")
	if got := small.Bounds().Dx(); got != 100 {
		t.Errorf("small thumb was upscaled to %d", got)
	}
	for _, absent := range []string{"remote.jpg", "none.jpg"} {
		if _, err := os.Stat(filepath.Join(cfg.OutputDir, "thumbs", absent)); !os.IsNotExist(err) {
			t.Errorf("unexpected thumb file %s", absent)
		}
	}
}

func TestGenerateThumbsSkipsUndecodable(t *testing.T) {
	dir := t.TempDir()
	cfg := Config{
		ContentDir: filepath.Join(dir, "content"),
		OutputDir:  filepath.Join(dir, "notes"),
		Thumbnails: true,
	}
	cfg.setDefaults()
	if err := os.MkdirAll(filepath.Join(cfg.ContentDir, "images"), 0o755); err != nil {
		t.Fatal(err)
	}
	writeFile(t, filepath.Join(cfg.ContentDir, "images", "bad.png"), "not an image")

	posts := []Post{{Slug: "bad", Image: "images/bad.png"}}
	if err := generateThumbs(cfg, posts); err != nil {
		t.Fatalf("generateThumbs should skip undecodable files, got %v", err)
	}
	if _, err := os.Stat(filepath.Join(cfg.OutputDir, "thumbs", "bad.jpg")); !os.IsNotExist(err) {
		t.Error("thumb was written for an undecodable image")
	}
}

func decodeThumb(t *testing.T, cfg Config, name string) image.Image {
	t.Helper()
	f, err := os.Open(filepath.Join(cfg.OutputDir, "thumbs", name))
	if err != nil {
		t.Fatalf("open thumb %s: %v", name, err)
	}
	defer f.Close()
	img, err := jpeg.Decode(f)
	if err != nil {
		t.Fatalf("decode thumb %s: %v", name, err)
	}
	return img
}
