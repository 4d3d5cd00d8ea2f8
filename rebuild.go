package notegen

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/eringen/notegen/markdown"
)

// Rebuild regenerates every output artifact from the Markdown sources:
// the JSON index, the JS data literal, one HTML page per post, plus the
// sitemap and feed. The first error aborts the run; there is no partial
// success and a re-run after a failure is idempotent and self-healing.
func Rebuild(cfg Config) (BuildResult, error) {
	cfg.setDefaults()

	// The skeleton must load before anything is written.
	tmpl, err := LoadPageTemplate(cfg.TemplatePath)
	if err != nil {
		return BuildResult{}, err
	}

	posts, err := loadPosts(cfg.ContentDir)
	if err != nil {
		return BuildResult{}, err
	}
	sortPosts(posts)

	if err := os.MkdirAll(cfg.OutputDir, 0o755); err != nil {
		return BuildResult{}, fmt.Errorf("notegen: create output dir: %w", err)
	}
	if err := writeIndexJSON(cfg.indexJSONPath(), posts); err != nil {
		return BuildResult{}, err
	}
	if err := writeIndexJS(cfg.indexJSPath(), posts); err != nil {
		return BuildResult{}, err
	}
	for _, p := range posts {
		out := filepath.Join(cfg.OutputDir, p.Slug+".html")
		if err := os.WriteFile(out, []byte(tmpl.Render(p)), 0o644); err != nil {
			return BuildResult{}, fmt.Errorf("notegen: write page %s: %w", out, err)
		}
	}
	if err := writeSitemap(filepath.Join(cfg.OutputDir, "sitemap.xml"), cfg, posts); err != nil {
		return BuildResult{}, err
	}
	if err := writeFeed(filepath.Join(cfg.OutputDir, "feed.xml"), cfg, posts); err != nil {
		return BuildResult{}, err
	}
	if cfg.Thumbnails {
		if err := generateThumbs(cfg, posts); err != nil {
			return BuildResult{}, err
		}
	}

	return BuildResult{
		Posts:     len(posts),
		OutputDir: cfg.OutputDir,
		IndexJSON: cfg.indexJSONPath(),
		IndexJS:   cfg.indexJSPath(),
	}, nil
}

// loadPosts builds one Post per Markdown file in dir. Slugs come from the
// file base name and are checked for shape and uniqueness before any
// artifact is written; a bad file fails the whole load rather than being
// skipped.
func loadPosts(dir string) ([]Post, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("notegen: read content dir %s: %w", dir, err)
	}

	renderer := markdown.New()
	seen := make(map[string]struct{})
	var posts []Post
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".md") {
			continue
		}
		slug := strings.TrimSuffix(entry.Name(), ".md")
		if !IsValidSlug(slug) {
			return nil, fmt.Errorf("notegen: invalid slug %q (want [a-z0-9-]+)", slug)
		}
		if _, dup := seen[slug]; dup {
			return nil, fmt.Errorf("notegen: duplicate slug %q", slug)
		}
		seen[slug] = struct{}{}

		raw, err := os.ReadFile(filepath.Join(dir, entry.Name()))
		if err != nil {
			return nil, fmt.Errorf("notegen: read %s: %w", entry.Name(), err)
		}
		title, date, summary, tags, body := splitFrontMatter(raw)
		contentHTML, thumb, err := renderer.Render(body)
		if err != nil {
			return nil, fmt.Errorf("notegen: render %s: %w", entry.Name(), err)
		}
		posts = append(posts, Post{
			Slug:        slug,
			Title:       title,
			Date:        date,
			Summary:     summary,
			Tags:        tags,
			Image:       thumb,
			ContentHTML: contentHTML,
		})
	}
	return posts, nil
}

// sortPosts orders the collection by date descending with slug ascending
// as tie-break. Undated posts carry the empty date, which lexically sorts
// after every real date in descending order, so they group at the end.
func sortPosts(posts []Post) {
	sort.SliceStable(posts, func(i, j int) bool {
		if posts[i].Date != posts[j].Date {
			return posts[i].Date > posts[j].Date
		}
		return posts[i].Slug < posts[j].Slug
	})
}
