package notegen

import (
	"net/url"
	"path"
	"regexp"
	"strings"
)

var reSlug = regexp.MustCompile(`^[a-z0-9-]+$`)

// IsValidSlug reports whether s is a usable post identifier: lowercase
// letters, digits, and hyphens only.
func IsValidSlug(s string) bool {
	return reSlug.MatchString(s)
}

// Slugify converts a title to a URL-safe slug.
func Slugify(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	var b strings.Builder
	prev := false
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
			prev = false
		default:
			if !prev && b.Len() > 0 {
				b.WriteByte('-')
				prev = true
			}
		}
	}
	return strings.TrimRight(b.String(), "-")
}

// BuildURL joins a base URL with path segments.
func BuildURL(base string, pathSegments ...string) string {
	u, err := url.Parse(base)
	if err != nil {
		return base
	}
	u.Path = path.Join(u.Path, path.Join(pathSegments...))
	return u.String()
}
