package main

import (
	"fmt"

	"github.com/urfave/cli/v2"

	"github.com/envmatrix/mcfg/internal/l10n"
	"github.com/envmatrix/mcfg/internal/matrix"
)

var envsCommand = &cli.Command{
	Name:      "envs",
	Usage:     l10n.T("list the environments a document declares"),
	ArgsUsage: "FILE",
	Flags: []cli.Flag{
		&cli.BoolFlag{
			Name:  "strict",
			Usage: l10n.T("fail on duplicate keys and unresolved environment references"),
		},
	},
	Action: envsAction,
}

func envsAction(c *cli.Context) error {
	doc, err := loadDocument(c)
	if err != nil {
		return err
	}

	m, err := matrix.FromDocument(doc, matrixOptions(c))
	if err != nil {
		return cli.Exit(err, 1)
	}

	for _, name := range m.EnvNames {
		if m.Resolved(name) {
			fmt.Println(name)
		} else {
			fmt.Println(name, l10n.T("(unresolved)"))
		}
	}
	return nil
}
