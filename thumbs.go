package notegen

import (
	"bytes"
	"fmt"
	"image"
	_ "image/gif"
	"image/jpeg"
	_ "image/png"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/image/draw"
)

const thumbJPEGQuality = 80

// generateThumbs writes a width-capped JPEG copy of each post's thumbnail
// image into <out>/thumbs/<slug>.jpg. Only images hosted inside the
// content directory are processed; remote URLs and files that are missing
// or undecodable are skipped without failing the build. Output write
// errors are fatal like every other artifact write.
func generateThumbs(cfg Config, posts []Post) error {
	dir := filepath.Join(cfg.OutputDir, "thumbs")
	created := false

	for _, p := range posts {
		src := localImagePath(cfg.ContentDir, p.Image)
		if src == "" {
			continue
		}
		data, err := renderThumb(src, cfg.ThumbnailWidth)
		if err != nil {
			continue
		}
		if !created {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return fmt.Errorf("notegen: create thumbs dir: %w", err)
			}
			created = true
		}
		out := filepath.Join(dir, p.Slug+".jpg")
		if err := os.WriteFile(out, data, 0o644); err != nil {
			return fmt.Errorf("notegen: write thumb %s: %w", out, err)
		}
	}
	return nil
}

// localImagePath maps a thumbnail destination onto the content directory,
// or returns "" for remote and absent images.
func localImagePath(contentDir, dest string) string {
	if dest == "" {
		return ""
	}
	lower := strings.ToLower(dest)
	if strings.HasPrefix(lower, "http://") || strings.HasPrefix(lower, "https://") || strings.HasPrefix(lower, "data:") {
		return ""
	}
	return filepath.Join(contentDir, strings.TrimPrefix(dest, "/"))
}

// renderThumb decodes the image at path, scales it down to maxWidth when
// wider, and re-encodes it as JPEG.
func renderThumb(path string, maxWidth int) ([]byte, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode image: %w", err)
	}

	bounds := img.Bounds()
	if w := bounds.Dx(); w > maxWidth {
		newH := bounds.Dy() * maxWidth / w
		dst := image.NewRGBA(image.Rect(0, 0, maxWidth, newH))
		draw.CatmullRom.Scale(dst, dst.Bounds(), img, bounds, draw.Over, nil)
		img = dst
	}

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, img, &jpeg.Options{Quality: thumbJPEGQuality}); err != nil {
		return nil, fmt.Errorf("encode jpeg: %w", err)
	}
	return buf.Bytes(), nil
}
