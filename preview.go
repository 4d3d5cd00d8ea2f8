package notegen

import (
	"encoding/json"
	"fmt"
	"net/http"
	"os"

	"github.com/a-h/templ"
	"github.com/labstack/echo/v4"

	"github.com/eringen/notegen/views"
)

// Preview serves the generated site on addr: the output directory under
// /notes/ and a templ-rendered index page at /. It reads the JSON index
// artifact on every request so a rebuild shows up on refresh.
func Preview(cfg Config, addr string) error {
	cfg.setDefaults()

	e := echo.New()
	e.HideBanner = true
	e.Static("/notes", cfg.OutputDir)
	e.GET("/", func(c echo.Context) error {
		notes, err := readIndex(cfg.indexJSONPath())
		if err != nil {
			return echo.NewHTTPError(http.StatusInternalServerError,
				fmt.Sprintf("no index at %s; run notegen build first", cfg.indexJSONPath()))
		}
		return render(c, http.StatusOK, views.Index(cfg.SiteName, notes))
	})

	if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

func readIndex(path string) ([]views.Note, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var posts []Post
	if err := json.Unmarshal(raw, &posts); err != nil {
		return nil, err
	}
	notes := make([]views.Note, 0, len(posts))
	for _, p := range posts {
		notes = append(notes, views.Note{
			Slug:    p.Slug,
			Title:   p.Title,
			Date:    p.Date,
			Summary: p.Summary,
			Tags:    p.Tags,
		})
	}
	return notes, nil
}

// render writes a templ component as an HTML response.
func render(c echo.Context, code int, cmp templ.Component) error {
	c.Response().Header().Set(echo.HeaderContentType, echo.MIMETextHTMLCharsetUTF8)
	c.Response().WriteHeader(code)
	return cmp.Render(c.Request().Context(), c.Response().Writer)
}
