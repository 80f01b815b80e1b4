package main

import (
	"fmt"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/envmatrix/mcfg/internal/l10n"
	"github.com/envmatrix/mcfg/internal/matrix"
)

var validateCommand = &cli.Command{
	Name:      "validate",
	Usage:     l10n.T("check a document for syntax, duplicate and reference errors"),
	ArgsUsage: "FILE",
	Flags: []cli.Flag{
		&cli.BoolFlag{
			Name:  "strict",
			Usage: l10n.T("fail on duplicate keys and unresolved environment references"),
		},
	},
	Action: validateAction,
}

func validateAction(c *cli.Context) error {
	doc, err := loadDocument(c)
	if err != nil {
		return err
	}

	m, err := matrix.FromDocument(doc, matrixOptions(c))
	if err != nil {
		return cli.Exit(err, 1)
	}

	if isTerminal(os.Stdout) {
		fmt.Println(l10n.T("%v: OK (%v sections, %v environments)",
			c.Args().First(), len(doc.Sections), len(m.EnvNames)))
	} else {
		fmt.Println("OK")
	}
	return nil
}
