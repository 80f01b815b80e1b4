package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/urfave/cli/v2"
	"golang.org/x/term"
	"gopkg.in/yaml.v3"

	"github.com/envmatrix/mcfg/internal/conf"
	"github.com/envmatrix/mcfg/internal/document"
	"github.com/envmatrix/mcfg/internal/l10n"
	"github.com/envmatrix/mcfg/internal/matrix"
)

// loadDocument reads the document named by the command's first argument,
// applying the configured duplicate policy. The --strict flag, where a
// command defines it, forces the strict policy.
func loadDocument(c *cli.Context) (*document.Document, error) {
	path := c.Args().First()
	if path == "" {
		return nil, cli.Exit(l10n.T("usage: %v %v FILE", ShortName, c.Command.Name), 2)
	}

	opts := document.Options{Duplicates: conf.Configuration.Duplicates}
	if c.Bool("strict") {
		opts.Duplicates = document.Strict
	}

	doc, err := document.Load(path, opts)
	if err != nil {
		return nil, cli.Exit(err, 1)
	}
	return doc, nil
}

// matrixOptions derives the typed-view options from configuration and the
// command's --strict flag.
func matrixOptions(c *cli.Context) matrix.Options {
	return matrix.Options{StrictRefs: conf.Configuration.StrictRefs || c.Bool("strict")}
}

// isTerminal reports whether f is attached to a terminal. Output meant
// for pipelines stays undecorated.
func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

// renderShow renders the parsed document with line annotations.
func renderShow(doc *document.Document) string {
	var b strings.Builder
	for i, section := range doc.Sections {
		if i > 0 {
			b.WriteString("\n")
		}
		fmt.Fprintf(&b, "[%s] (line %d)\n", section.Name, section.Line)
		for _, setting := range section.Settings {
			if setting.Scalar() {
				fmt.Fprintf(&b, "  %s = %s\n", setting.Key, setting.Value())
				continue
			}
			fmt.Fprintf(&b, "  %s =\n", setting.Key)
			for _, value := range setting.Values {
				fmt.Fprintf(&b, "    %s\n", value)
			}
		}
	}
	return b.String()
}

// renderExport encodes the document's mapping in the requested format.
func renderExport(doc *document.Document, format string) ([]byte, error) {
	mapping := doc.Mapping()
	switch format {
	case "json":
		data, err := json.MarshalIndent(mapping, "", "  ")
		if err != nil {
			return nil, err
		}
		return append(data, '\n'), nil
	case "yaml":
		return yaml.Marshal(mapping)
	case "toml":
		var b bytes.Buffer
		if err := toml.NewEncoder(&b).Encode(mapping); err != nil {
			return nil, err
		}
		return b.Bytes(), nil
	}
	return nil, fmt.Errorf(l10n.T("unknown export format %q"), format)
}
