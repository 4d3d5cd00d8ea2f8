package notegen

import (
	"encoding/xml"
	"fmt"
	"os"
	"time"
)

type rssXML struct {
	XMLName xml.Name   `xml:"rss"`
	Version string     `xml:"version,attr"`
	Channel rssChannel `xml:"channel"`
}

type rssChannel struct {
	Title       string    `xml:"title"`
	Link        string    `xml:"link"`
	Description string    `xml:"description"`
	Items       []rssItem `xml:"item"`
}

type rssItem struct {
	Title       string `xml:"title"`
	Link        string `xml:"link"`
	Description string `xml:"description"`
	PubDate     string `xml:"pubDate"`
	GUID        string `xml:"guid"`
}

// writeFeed regenerates feed.xml from the ordered collection. Undated
// posts get no pubDate rather than a fabricated one.
func writeFeed(path string, cfg Config, posts []Post) error {
	items := make([]rssItem, 0, len(posts))
	for _, p := range posts {
		pubDate := ""
		if t, err := time.Parse("2006-01-02", p.Date); err == nil {
			pubDate = t.Format(time.RFC1123Z)
		}
		postURL := BuildURL(cfg.SiteURL, "notes", p.Slug+".html")
		items = append(items, rssItem{
			Title:       p.Title,
			Link:        postURL,
			Description: p.Summary,
			PubDate:     pubDate,
			GUID:        postURL,
		})
	}
	feed := rssXML{
		Version: "2.0",
		Channel: rssChannel{
			Title:       cfg.SiteName,
			Link:        cfg.SiteURL,
			Description: cfg.Description,
			Items:       items,
		},
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("notegen: write feed: %w", err)
	}
	defer f.Close()
	if _, err := f.WriteString(xml.Header); err != nil {
		return fmt.Errorf("notegen: write feed: %w", err)
	}
	enc := xml.NewEncoder(f)
	enc.Indent("", "  ")
	if err := enc.Encode(feed); err != nil {
		return fmt.Errorf("notegen: encode feed: %w", err)
	}
	if _, err := f.WriteString("\n"); err != nil {
		return fmt.Errorf("notegen: write feed: %w", err)
	}
	return nil
}
