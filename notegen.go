// Package notegen is a static notes/blog pipeline built with Go, goldmark,
// and templ. It rebuilds a directory of Markdown files into a sorted JSON
// index, a script-loadable data literal, and one rendered HTML page per
// post, with auto-embedding of bare YouTube/Twitter links and automatic
// thumbnail discovery.
//
// The library exposes the pipeline as plain functions over an explicit
// Config; the notegen CLI handles flags, environment, and process exit.
package notegen

import "os"

// EnvOr returns the value of the environment variable key, or fallback if empty.
func EnvOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
