package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/eringen/notegen"
)

// version is set at build time via ldflags.
var version = "dev"

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	var err error
	switch os.Args[1] {
	case "build":
		err = runBuild()
	case "new":
		if len(os.Args) < 3 {
			fmt.Fprintln(os.Stderr, "Usage: notegen new <slug> [title...]")
			os.Exit(1)
		}
		title := strings.Join(os.Args[3:], " ")
		err = runNew(os.Args[2], title)
	case "init":
		if len(os.Args) < 3 {
			fmt.Fprintln(os.Stderr, "Usage: notegen init <project-name>")
			os.Exit(1)
		}
		err = runInit(os.Args[2])
	case "preview":
		addr := ":3000"
		if len(os.Args) > 2 {
			addr = os.Args[2]
		}
		err = runPreview(addr)
	case "version":
		fmt.Printf("notegen %s\n", version)
	case "help", "-h", "--help":
		printUsage()
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n\n", os.Args[1])
		printUsage()
		os.Exit(1)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// loadConfig reads the site file next to the working directory, honoring
// the NOTEGEN_CONFIG override. A missing file falls back to defaults.
func loadConfig() (notegen.Config, error) {
	return notegen.LoadConfig(notegen.EnvOr("NOTEGEN_CONFIG", "notegen.yaml"))
}

func runBuild() error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	res, err := notegen.Rebuild(cfg)
	if err != nil {
		return err
	}
	fmt.Printf("Built %d posts into %s/\n", res.Posts, res.OutputDir)
	fmt.Printf("  index: %s\n", res.IndexJSON)
	fmt.Printf("  data:  %s\n", res.IndexJS)
	return nil
}

func runPreview(addr string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	fmt.Printf("Previewing %s on http://localhost%s/\n", cfg.SiteName, addr)
	return notegen.Preview(cfg, addr)
}

func printUsage() {
	fmt.Println(`notegen - a static notes/blog pipeline built with Go, goldmark, and templ

Usage:
  notegen <command> [arguments]

Commands:
  build            Rebuild the index and all note pages
  new <slug>       Create a new Markdown note with front matter
  init <name>      Create a new notegen project
  preview [addr]   Serve the generated site locally (default :3000)
  version          Print the notegen version
  help             Show this help message

Examples:
  notegen init mynotes
  notegen new first-post My First Post
  notegen build`)
}
