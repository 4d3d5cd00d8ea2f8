package notegen

import (
	"encoding/json"
	"fmt"
	"os"
)

// indexGlobal is the browser-side binding the JS data literal assigns to.
const indexGlobal = "NOTES_DATA"

// writeIndexJSON writes the ordered collection as pretty-printed JSON with
// a trailing newline. ContentHTML is excluded via its struct tag, so the
// artifact round-trips byte-identically through decode/encode.
func writeIndexJSON(path string, posts []Post) error {
	data, err := json.MarshalIndent(posts, "", "  ")
	if err != nil {
		return fmt.Errorf("notegen: encode index: %w", err)
	}
	if err := os.WriteFile(path, append(data, '\n'), 0o644); err != nil {
		return fmt.Errorf("notegen: write %s: %w", path, err)
	}
	return nil
}

// writeIndexJS writes the script-loadable data literal: an IIFE assigning
// the derived record array to window.NOTES_DATA, so a static page can read
// the collection with a single <script> tag and no fetch or parser.
func writeIndexJS(path string, posts []Post) error {
	entries := make([]indexEntry, 0, len(posts))
	for _, p := range posts {
		entries = append(entries, deriveEntry(p))
	}
	data, err := json.MarshalIndent(entries, "  ", "  ")
	if err != nil {
		return fmt.Errorf("notegen: encode index data: %w", err)
	}
	literal := "(function () {\n  window." + indexGlobal + " = " + string(data) + ";\n})();\n"
	if err := os.WriteFile(path, []byte(literal), 0o644); err != nil {
		return fmt.Errorf("notegen: write %s: %w", path, err)
	}
	return nil
}

// deriveEntry computes the calendar and link fields the browser consumer
// expects. Year/YearMonth are plain prefixes of the YYYY-MM-DD date and
// stay empty for undated posts.
func deriveEntry(p Post) indexEntry {
	e := indexEntry{
		Slug:    p.Slug,
		Title:   p.Title,
		Date:    p.Date,
		Summary: p.Summary,
		Tags:    p.Tags,
		Image:   p.Image,
		Href:    p.Slug + ".html",
		Path:    "notes/" + p.Slug + ".html",
	}
	if len(p.Date) >= 4 {
		e.Year = p.Date[:4]
	}
	if len(p.Date) >= 7 {
		e.YearMonth = p.Date[:7]
	}
	return e
}
