package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"text/template"
	"time"

	"github.com/eringen/notegen"
	"github.com/eringen/notegen/scaffold"
)

// postData holds the template variables for the new-post stub.
type postData struct {
	Title string
	Date  string
}

// runNew creates a front-matter Markdown stub for slug in the content
// directory. The slug shape is validated and an existing file is never
// overwritten, so slugs stay unique before the pipeline ever sees them.
func runNew(slug, title string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	if !notegen.IsValidSlug(slug) {
		hint := notegen.Slugify(slug)
		if hint == "" {
			return fmt.Errorf("invalid slug %q (want [a-z0-9-]+)", slug)
		}
		return fmt.Errorf("invalid slug %q (want [a-z0-9-]+, e.g. %q)", slug, hint)
	}
	if title == "" {
		title = toTitle(slug)
	}

	path := filepath.Join(cfg.ContentDir, slug+".md")
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("post %q already exists at %s", slug, path)
	}

	content, err := scaffold.Templates.ReadFile("templates/post.md.tmpl")
	if err != nil {
		return fmt.Errorf("read post template: %w", err)
	}
	tmpl, err := template.New("post.md").Parse(string(content))
	if err != nil {
		return fmt.Errorf("parse post template: %w", err)
	}

	if err := os.MkdirAll(cfg.ContentDir, 0o755); err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()

	data := postData{Title: title, Date: time.Now().Format("2006-01-02")}
	if err := tmpl.Execute(f, data); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}

	fmt.Printf("  created %s\n", path)
	return nil
}

// toTitle converts a hyphenated slug to a title-case string.
// e.g. "my-note" -> "My Note"
func toTitle(s string) string {
	parts := strings.Split(s, "-")
	for i, p := range parts {
		if len(p) > 0 {
			parts[i] = strings.ToUpper(p[:1]) + p[1:]
		}
	}
	return strings.Join(parts, " ")
}
