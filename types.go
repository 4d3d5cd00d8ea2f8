package notegen

// Post is the core content type built from one Markdown source file.
// ContentHTML is only used while rendering the per-post page; it is
// never written into the metadata artifacts.
type Post struct {
	Slug        string   `json:"slug"`
	Title       string   `json:"title"`
	Date        string   `json:"date"`
	Summary     string   `json:"summary"`
	Tags        []string `json:"tags"`
	Image       string   `json:"image"`
	ContentHTML string   `json:"-"`
}

// indexEntry is one record of the script-loadable data literal. It carries
// the calendar fields derived from Date plus the href/path a browser-side
// consumer needs to link the rendered page without any further parsing.
type indexEntry struct {
	Slug      string   `json:"slug"`
	Title     string   `json:"title"`
	Date      string   `json:"date"`
	Summary   string   `json:"summary"`
	Tags      []string `json:"tags"`
	Image     string   `json:"image"`
	Href      string   `json:"href"`
	Year      string   `json:"year"`
	YearMonth string   `json:"yearMonth"`
	Path      string   `json:"path"`
}

// BuildResult summarizes a successful rebuild for the caller to report.
type BuildResult struct {
	Posts     int
	OutputDir string
	IndexJSON string
	IndexJS   string
}
