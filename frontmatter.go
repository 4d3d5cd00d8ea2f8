package notegen

import (
	"bytes"
	"strings"
	"time"

	"github.com/adrg/frontmatter"
)

// defaultTitle is used when front matter carries no usable title.
const defaultTitle = "Untitled"

// fmEnvelope is the loose shape decoded from a front-matter block. Tags is
// deliberately untyped: authors sometimes write a scalar or a malformed
// block there, and anything that is not a sequence of strings must degrade
// to an empty set instead of failing the file.
type fmEnvelope struct {
	Title   string `yaml:"title"`
	Date    string `yaml:"date"`
	Summary string `yaml:"summary"`
	Tags    any    `yaml:"tags"`
}

// splitFrontMatter separates the delimited YAML header from the Markdown
// body and applies the documented defaults: missing title -> "Untitled",
// missing/invalid tags -> empty, missing or malformed date -> "".
// A file with no recognizable header (or an unparseable one) yields empty
// metadata and the whole input as body.
func splitFrontMatter(source []byte) (title, date, summary string, tags []string, body []byte) {
	var meta fmEnvelope
	rest, err := frontmatter.Parse(bytes.NewReader(source), &meta)
	if err != nil {
		return defaultTitle, "", "", []string{}, source
	}

	title = strings.TrimSpace(meta.Title)
	if title == "" {
		title = defaultTitle
	}
	return title, normalizeDate(meta.Date), strings.TrimSpace(meta.Summary), normalizeTags(meta.Tags), rest
}

// normalizeDate keeps only well-formed YYYY-MM-DD values; anything else
// becomes the empty string so the post sorts with the undated group.
func normalizeDate(raw string) string {
	raw = strings.TrimSpace(raw)
	if _, err := time.Parse("2006-01-02", raw); err != nil {
		return ""
	}
	return raw
}

// normalizeTags turns the untyped tags value into a trimmed, deduplicated
// sequence of non-empty strings, preserving author order. Non-sequence
// values are treated as no tags at all.
func normalizeTags(raw any) []string {
	items, ok := raw.([]any)
	if !ok {
		return []string{}
	}
	seen := make(map[string]struct{}, len(items))
	tags := []string{}
	for _, item := range items {
		s, ok := item.(string)
		if !ok {
			continue
		}
		s = strings.TrimSpace(s)
		if s == "" {
			continue
		}
		if _, dup := seen[s]; dup {
			continue
		}
		seen[s] = struct{}{}
		tags = append(tags, s)
	}
	return tags
}
