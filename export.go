package main

import (
	"os"

	"github.com/urfave/cli/v2"

	"github.com/envmatrix/mcfg/internal/l10n"
)

var exportCommand = &cli.Command{
	Name:      "export",
	Usage:     l10n.T("write the parsed document as a structured mapping"),
	ArgsUsage: "FILE",
	Flags: []cli.Flag{
		&cli.StringFlag{
			Name:  "format",
			Value: "json",
			Usage: l10n.T("output `FORMAT`: json, yaml or toml"),
		},
	},
	Action: exportAction,
}

func exportAction(c *cli.Context) error {
	doc, err := loadDocument(c)
	if err != nil {
		return err
	}

	data, err := renderExport(doc, c.String("format"))
	if err != nil {
		return cli.Exit(err, 1)
	}
	if _, err := os.Stdout.Write(data); err != nil {
		return cli.Exit(err, 1)
	}
	return nil
}
