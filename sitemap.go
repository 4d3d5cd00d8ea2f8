package notegen

import (
	"encoding/xml"
	"fmt"
	"os"
)

type sitemapURLSet struct {
	XMLName xml.Name     `xml:"urlset"`
	XMLNS   string       `xml:"xmlns,attr"`
	URLs    []sitemapURL `xml:"url"`
}

type sitemapURL struct {
	Loc     string `xml:"loc"`
	LastMod string `xml:"lastmod,omitempty"`
}

// writeSitemap regenerates sitemap.xml for the notes section.
func writeSitemap(path string, cfg Config, posts []Post) error {
	urls := []sitemapURL{
		{Loc: BuildURL(cfg.SiteURL)},
	}
	for _, p := range posts {
		urls = append(urls, sitemapURL{
			Loc:     BuildURL(cfg.SiteURL, "notes", p.Slug+".html"),
			LastMod: p.Date,
		})
	}
	sitemap := sitemapURLSet{
		XMLNS: "http://www.sitemaps.org/schemas/sitemap/0.9",
		URLs:  urls,
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("notegen: write sitemap: %w", err)
	}
	defer f.Close()
	if _, err := f.WriteString(xml.Header); err != nil {
		return fmt.Errorf("notegen: write sitemap: %w", err)
	}
	enc := xml.NewEncoder(f)
	enc.Indent("", "  ")
	if err := enc.Encode(sitemap); err != nil {
		return fmt.Errorf("notegen: encode sitemap: %w", err)
	}
	if _, err := f.WriteString("\n"); err != nil {
		return fmt.Errorf("notegen: write sitemap: %w", err)
	}
	return nil
}
