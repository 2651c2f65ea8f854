// Package main renders the cdiscount command reference as markdown pages,
// man pages or YAML.
package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"slices"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"github.com/spf13/cobra/doc"

	"github.com/donaldgifford/cdiscount-sdk/cmd/cdiscount/cmd"
)

var formats = []string{"markdown", "man", "yaml"}

func main() {
	output := flag.String("output", "docs/cli", "output directory")
	format := flag.String("format", "markdown", "one of markdown, man or yaml")
	flag.Parse()

	if err := generate(cmd.Root(), *format, *output); err != nil {
		log.Fatal("generating docs", "format", *format, "err", err)
	}
	log.Info("CLI docs generated", "format", *format, "dir", *output)
}

// generate writes one page per command under root into dir.
func generate(root *cobra.Command, format, dir string) error {
	if !slices.Contains(formats, format) {
		return fmt.Errorf("unknown format %q", format)
	}
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}

	root.DisableAutoGenTag = true

	switch format {
	case "man":
		return doc.GenManTree(root, &doc.GenManHeader{
			Title:   "CDISCOUNT",
			Section: "1",
			Source:  "cdiscount-sdk",
			Manual:  "Cdiscount seller API",
		}, dir)
	case "yaml":
		return doc.GenYamlTree(root, dir)
	default:
		return doc.GenMarkdownTreeCustom(root, dir, frontMatter, link)
	}
}

// frontMatter titles each markdown page for static site generators.
func frontMatter(filename string) string {
	base := filepath.Base(filename)
	name := base[:len(base)-len(filepath.Ext(base))]
	return fmt.Sprintf("---\ntitle: %q\n---\n\n", name)
}

func link(name string) string {
	return name
}
