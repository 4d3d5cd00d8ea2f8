package notegen

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config holds all paths and site settings for a notegen site.
// Zero values are filled in by setDefaults, so an empty Config builds a
// site from ./content into ./notes with ./template.html.
type Config struct {
	SiteName    string `yaml:"siteName"`    // Site name for feed and preview (default "Notes")
	SiteURL     string `yaml:"siteUrl"`     // Canonical URL (default "http://localhost:3000")
	Description string `yaml:"description"` // Site description for the feed

	ContentDir   string `yaml:"contentDir"`   // Markdown sources (default "content")
	OutputDir    string `yaml:"outputDir"`    // Generated site (default "notes")
	TemplatePath string `yaml:"templatePath"` // Page skeleton (default "template.html")

	IndexJSON string `yaml:"indexJson"` // JSON index filename (default "notes-index.json")
	IndexJS   string `yaml:"indexJs"`   // JS data literal filename (default "notes-data.js")

	Thumbnails     bool `yaml:"thumbnails"`     // Generate resized thumbnail files
	ThumbnailWidth int  `yaml:"thumbnailWidth"` // Max thumbnail width (default 480)
}

func (c *Config) setDefaults() {
	if c.SiteName == "" {
		c.SiteName = "Notes"
	}
	if c.SiteURL == "" {
		c.SiteURL = "http://localhost:3000"
	}
	if c.ContentDir == "" {
		c.ContentDir = "content"
	}
	if c.OutputDir == "" {
		c.OutputDir = "notes"
	}
	if c.TemplatePath == "" {
		c.TemplatePath = "template.html"
	}
	if c.IndexJSON == "" {
		c.IndexJSON = "notes-index.json"
	}
	if c.IndexJS == "" {
		c.IndexJS = "notes-data.js"
	}
	if c.ThumbnailWidth == 0 {
		c.ThumbnailWidth = 480
	}
}

// indexJSONPath returns the on-disk location of the JSON index artifact.
func (c *Config) indexJSONPath() string {
	return filepath.Join(c.OutputDir, c.IndexJSON)
}

// indexJSPath returns the on-disk location of the JS data artifact.
func (c *Config) indexJSPath() string {
	return filepath.Join(c.OutputDir, c.IndexJS)
}

// LoadConfig reads a YAML site file and applies defaults. A missing file
// is not an error: the zero Config with defaults is returned, so a bare
// directory of Markdown files still builds.
func LoadConfig(path string) (Config, error) {
	var cfg Config
	raw, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			cfg.setDefaults()
			return cfg, nil
		}
		return Config{}, fmt.Errorf("notegen: read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return Config{}, fmt.Errorf("notegen: parse config %s: %w", path, err)
	}
	cfg.setDefaults()
	return cfg, nil
}
